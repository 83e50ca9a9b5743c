// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"unsafe"
)

// Context is the set of OpenGL 4.5 entry points used by grr. Every
// method maps to exactly one GL call; slices replace pointer and
// count pairs.
type Context interface {
	GetError() Enum
	GetString(name Enum) string
	GetInteger(pname Enum) int
	Enable(cap Enum)
	Disable(cap Enum)
	Enablei(cap Enum, index uint32)
	Disablei(cap Enum, index uint32)
	ClipControl(origin, depth Enum)
	Finish()
	Flush()

	CreateBuffer() Buffer
	DeleteBuffers(bufs []Buffer)
	NamedBufferStorage(buf Buffer, size int, data unsafe.Pointer, flags Enum)
	NamedBufferSubData(buf Buffer, offset int, data []byte)
	MapNamedBufferRange(buf Buffer, offset, length int, access Enum) unsafe.Pointer
	FlushMappedNamedBufferRange(buf Buffer, offset, length int)
	UnmapNamedBuffer(buf Buffer) bool
	GetNamedBufferParameteri64(buf Buffer, pname Enum) int64
	CopyNamedBufferSubData(src, dst Buffer, srcOffset, dstOffset, size int)
	ClearNamedBufferSubData(buf Buffer, internalFormat Enum, offset, size int, format, typ Enum, data []byte)
	BindBuffer(target Enum, buf Buffer)
	BindBuffersRange(target Enum, first uint32, bufs []Buffer, offsets, sizes []int)

	CreateTexture(target Enum) Texture
	GenTexture() Texture
	DeleteTextures(texs []Texture)
	TextureStorage1D(tex Texture, levels int, format Enum, width int)
	TextureStorage2D(tex Texture, levels int, format Enum, width, height int)
	TextureStorage3D(tex Texture, levels int, format Enum, width, height, depth int)
	TextureStorage2DMultisample(tex Texture, samples int, format Enum, width, height int, fixedLocations bool)
	TextureStorage3DMultisample(tex Texture, samples int, format Enum, width, height, depth int, fixedLocations bool)
	TextureView(view Texture, target Enum, orig Texture, format Enum, minLevel, numLevels, minLayer, numLayers uint32)
	TextureSubImage1D(tex Texture, level, x, width int, format, typ Enum, pixels unsafe.Pointer)
	TextureSubImage2D(tex Texture, level, x, y, width, height int, format, typ Enum, pixels unsafe.Pointer)
	TextureSubImage3D(tex Texture, level, x, y, z, width, height, depth int, format, typ Enum, pixels unsafe.Pointer)
	GetTextureSubImage(tex Texture, level, x, y, z, width, height, depth int, format, typ Enum, bufSize int, pixels unsafe.Pointer)
	CopyImageSubData(src Texture, srcTarget Enum, srcLevel, srcX, srcY, srcZ int, dst Texture, dstTarget Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int)
	GenerateTextureMipmap(tex Texture)
	BindTextures(first uint32, texs []Texture)
	BindImageTextures(first uint32, texs []Texture)
	PixelStorei(pname Enum, param int)
	ReadnPixels(x, y, width, height int, format, typ Enum, bufSize int, data unsafe.Pointer)

	CreateSampler() Sampler
	DeleteSamplers(samplers []Sampler)
	SamplerParameteri(s Sampler, pname Enum, param int)
	SamplerParameterf(s Sampler, pname Enum, param float32)
	SamplerParameterfv(s Sampler, pname Enum, params []float32)
	BindSamplers(first uint32, samplers []Sampler)

	CreateVertexArray() VertexArray
	DeleteVertexArrays(vaos []VertexArray)
	BindVertexArray(vao VertexArray)
	EnableVertexArrayAttrib(vao VertexArray, index uint32)
	VertexArrayAttribFormat(vao VertexArray, index uint32, size int, typ Enum, normalized bool, offset uint32)
	VertexArrayAttribIFormat(vao VertexArray, index uint32, size int, typ Enum, offset uint32)
	VertexArrayAttribLFormat(vao VertexArray, index uint32, size int, typ Enum, offset uint32)
	VertexArrayAttribBinding(vao VertexArray, index, binding uint32)
	VertexArrayVertexBuffers(vao VertexArray, first uint32, bufs []Buffer, offsets []int, strides []int32)
	VertexArrayBindingDivisor(vao VertexArray, binding, divisor uint32)
	VertexArrayElementBuffer(vao VertexArray, buf Buffer)

	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	ProgramUniform1ui(p Program, location int, v uint32)
	ProgramUniform1f(p Program, location int, v float32)
	ProgramUniform3f(p Program, location int, x, y, z float32)
	ProgramUniformMatrix3fv(p Program, location int, m []float32)
	ProgramUniformMatrix4fv(p Program, location int, m []float32)

	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha Enum)
	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcA, dstA Enum)
	BlendColor(r, g, b, a float32)
	DepthMask(mask bool)
	DepthFunc(fn Enum)
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	PolygonMode(face, mode Enum)
	PolygonOffset(factor, units float32)
	FrontFace(mode Enum)
	CullFace(mode Enum)
	MinSampleShading(value float32)
	SampleMaski(index uint32, mask uint32)
	PrimitiveRestartIndex(index uint32)
	ViewportArrayv(first uint32, v []float32)
	DepthRangeArrayv(first uint32, v []float64)
	ScissorArrayv(first uint32, v []int32)

	DrawArraysInstancedBaseInstance(mode Enum, first, count, instances int, baseInstance uint32)
	DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int, typ Enum, offset int, instances, baseVertex int, baseInstance uint32)
	MultiDrawArraysIndirect(mode Enum, indirect unsafe.Pointer, drawCount, stride int)
	MultiDrawElementsIndirect(mode, typ Enum, indirect unsafe.Pointer, drawCount, stride int)
	DispatchCompute(x, y, z uint32)
	DispatchComputeIndirect(offset int)

	CreateFramebuffer() Framebuffer
	DeleteFramebuffers(fbs []Framebuffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	CheckNamedFramebufferStatus(fb Framebuffer, target Enum) Enum
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffers(rbs []Renderbuffer)
	NamedRenderbufferStorage(rb Renderbuffer, format Enum, width, height int)
	NamedRenderbufferStorageMultisample(rb Renderbuffer, samples int, format Enum, width, height int)
	NamedFramebufferTexture(fb Framebuffer, attachment Enum, tex Texture, level int)
	NamedFramebufferTextureLayer(fb Framebuffer, attachment Enum, tex Texture, level, layer int)
	NamedFramebufferRenderbuffer(fb Framebuffer, attachment Enum, rb Renderbuffer)
	NamedFramebufferDrawBuffers(fb Framebuffer, bufs []Enum)
	ClearNamedFramebufferiv(fb Framebuffer, buffer Enum, drawBuffer int, value []int32)
	ClearNamedFramebufferuiv(fb Framebuffer, buffer Enum, drawBuffer int, value []uint32)
	ClearNamedFramebufferfv(fb Framebuffer, buffer Enum, drawBuffer int, value []float32)
	ClearNamedFramebufferfi(fb Framebuffer, buffer Enum, drawBuffer int, depth float32, stencil int32)
	InvalidateNamedFramebufferSubData(fb Framebuffer, attachments []Enum, x, y, width, height int)
	BlitNamedFramebuffer(src, dst Framebuffer, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter Enum)

	MemoryBarrier(barriers Enum)
	MemoryBarrierByRegion(barriers Enum)
	TextureBarrier()

	CreateQuery(target Enum) Query
	DeleteQueries(queries []Query)
	BeginQueryIndexed(target Enum, index uint32, q Query)
	EndQueryIndexed(target Enum, index uint32)
	QueryCounter(q Query, target Enum)
	GetQueryObjectui64(q Query, pname Enum) uint64
	GetQueryBufferObjectui64v(q Query, buf Buffer, pname Enum, offset int)
	BeginConditionalRender(q Query, mode Enum)
	EndConditionalRender()

	DebugMessageCallback(cb DebugProc)
	DebugMessageControl(source, typ, severity Enum, ids []uint32, enabled bool)
	DebugMessageInsert(source, typ Enum, id uint32, severity Enum, msg string)
	ObjectLabel(identifier Enum, name uint32, label string)
	PushDebugGroup(source Enum, id uint32, msg string)
	PopDebugGroup()
}

// DebugProc receives messages from the context debug output.
type DebugProc func(source, typ Enum, id uint32, severity Enum, message string)

// NewContext is set by the driver package that links the native
// OpenGL bindings. A nil NewContext means no driver is linked.
var NewContext func(load func(name string) unsafe.Pointer) (Context, error)

// ParseGLVersion parses a desktop OpenGL version string such as
// "4.6.0 NVIDIA 535.54".
func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}
