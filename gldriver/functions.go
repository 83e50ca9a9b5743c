// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package gldriver

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	igl "gioui.org/grr/internal/gl"
)

// functions implements igl.Context on top of the go-gl bindings. The
// bindings are process global so the type carries no state.
type functions struct{}

var _ igl.Context = functions{}

func init() {
	igl.NewContext = newContext
}

func newContext(load func(name string) unsafe.Pointer) (igl.Context, error) {
	var err error
	if load == nil {
		err = gl.Init()
	} else {
		err = gl.InitWithProcAddrFunc(withSystemFallback(load))
	}
	if err != nil {
		return nil, fmt.Errorf("gldriver: %w", err)
	}
	if gl.GetString(gl.VERSION) == nil {
		return nil, errors.New("gldriver: no current context")
	}
	return functions{}, nil
}

// ptr returns a pointer to the first element of s, or nil for an
// empty slice.
func ptr[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func (functions) GetError() igl.Enum {
	return igl.Enum(gl.GetError())
}

func (functions) GetString(name igl.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (functions) GetInteger(pname igl.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (functions) Enable(cap igl.Enum)  { gl.Enable(uint32(cap)) }
func (functions) Disable(cap igl.Enum) { gl.Disable(uint32(cap)) }

func (functions) Enablei(cap igl.Enum, index uint32) {
	gl.Enablei(uint32(cap), index)
}

func (functions) Disablei(cap igl.Enum, index uint32) {
	gl.Disablei(uint32(cap), index)
}

func (functions) ClipControl(origin, depth igl.Enum) {
	gl.ClipControl(uint32(origin), uint32(depth))
}

func (functions) Finish() { gl.Finish() }
func (functions) Flush()  { gl.Flush() }

func (functions) CreateBuffer() igl.Buffer {
	var b uint32
	gl.CreateBuffers(1, &b)
	return igl.Buffer{V: b}
}

func (functions) DeleteBuffers(bufs []igl.Buffer) {
	gl.DeleteBuffers(int32(len(bufs)), (*uint32)(unsafe.Pointer(ptr(bufs))))
}

func (functions) NamedBufferStorage(buf igl.Buffer, size int, data unsafe.Pointer, flags igl.Enum) {
	gl.NamedBufferStorage(buf.V, size, data, uint32(flags))
}

func (functions) NamedBufferSubData(buf igl.Buffer, offset int, data []byte) {
	gl.NamedBufferSubData(buf.V, offset, len(data), unsafe.Pointer(ptr(data)))
}

func (functions) MapNamedBufferRange(buf igl.Buffer, offset, length int, access igl.Enum) unsafe.Pointer {
	return gl.MapNamedBufferRange(buf.V, offset, length, uint32(access))
}

func (functions) FlushMappedNamedBufferRange(buf igl.Buffer, offset, length int) {
	gl.FlushMappedNamedBufferRange(buf.V, offset, length)
}

func (functions) UnmapNamedBuffer(buf igl.Buffer) bool {
	return gl.UnmapNamedBuffer(buf.V)
}

func (functions) GetNamedBufferParameteri64(buf igl.Buffer, pname igl.Enum) int64 {
	var v int64
	gl.GetNamedBufferParameteri64v(buf.V, uint32(pname), &v)
	return v
}

func (functions) CopyNamedBufferSubData(src, dst igl.Buffer, srcOffset, dstOffset, size int) {
	gl.CopyNamedBufferSubData(src.V, dst.V, srcOffset, dstOffset, size)
}

func (functions) ClearNamedBufferSubData(buf igl.Buffer, internalFormat igl.Enum, offset, size int, format, typ igl.Enum, data []byte) {
	gl.ClearNamedBufferSubData(buf.V, uint32(internalFormat), offset, size, uint32(format), uint32(typ), unsafe.Pointer(ptr(data)))
}

func (functions) BindBuffer(target igl.Enum, buf igl.Buffer) {
	gl.BindBuffer(uint32(target), buf.V)
}

func (functions) BindBuffersRange(target igl.Enum, first uint32, bufs []igl.Buffer, offsets, sizes []int) {
	gl.BindBuffersRange(uint32(target), first, int32(len(bufs)), (*uint32)(unsafe.Pointer(ptr(bufs))), ptr(offsets), ptr(sizes))
}

func (functions) CreateTexture(target igl.Enum) igl.Texture {
	var t uint32
	gl.CreateTextures(uint32(target), 1, &t)
	return igl.Texture{V: t}
}

func (functions) GenTexture() igl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return igl.Texture{V: t}
}

func (functions) DeleteTextures(texs []igl.Texture) {
	gl.DeleteTextures(int32(len(texs)), (*uint32)(unsafe.Pointer(ptr(texs))))
}

func (functions) TextureStorage1D(tex igl.Texture, levels int, format igl.Enum, width int) {
	gl.TextureStorage1D(tex.V, int32(levels), uint32(format), int32(width))
}

func (functions) TextureStorage2D(tex igl.Texture, levels int, format igl.Enum, width, height int) {
	gl.TextureStorage2D(tex.V, int32(levels), uint32(format), int32(width), int32(height))
}

func (functions) TextureStorage3D(tex igl.Texture, levels int, format igl.Enum, width, height, depth int) {
	gl.TextureStorage3D(tex.V, int32(levels), uint32(format), int32(width), int32(height), int32(depth))
}

func (functions) TextureStorage2DMultisample(tex igl.Texture, samples int, format igl.Enum, width, height int, fixedLocations bool) {
	gl.TextureStorage2DMultisample(tex.V, int32(samples), uint32(format), int32(width), int32(height), fixedLocations)
}

func (functions) TextureStorage3DMultisample(tex igl.Texture, samples int, format igl.Enum, width, height, depth int, fixedLocations bool) {
	gl.TextureStorage3DMultisample(tex.V, int32(samples), uint32(format), int32(width), int32(height), int32(depth), fixedLocations)
}

func (functions) TextureView(view igl.Texture, target igl.Enum, orig igl.Texture, format igl.Enum, minLevel, numLevels, minLayer, numLayers uint32) {
	gl.TextureView(view.V, uint32(target), orig.V, uint32(format), minLevel, numLevels, minLayer, numLayers)
}

func (functions) TextureSubImage1D(tex igl.Texture, level, x, width int, format, typ igl.Enum, pixels unsafe.Pointer) {
	gl.TextureSubImage1D(tex.V, int32(level), int32(x), int32(width), uint32(format), uint32(typ), pixels)
}

func (functions) TextureSubImage2D(tex igl.Texture, level, x, y, width, height int, format, typ igl.Enum, pixels unsafe.Pointer) {
	gl.TextureSubImage2D(tex.V, int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), pixels)
}

func (functions) TextureSubImage3D(tex igl.Texture, level, x, y, z, width, height, depth int, format, typ igl.Enum, pixels unsafe.Pointer) {
	gl.TextureSubImage3D(tex.V, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(typ), pixels)
}

func (functions) GetTextureSubImage(tex igl.Texture, level, x, y, z, width, height, depth int, format, typ igl.Enum, bufSize int, pixels unsafe.Pointer) {
	gl.GetTextureSubImage(tex.V, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(typ), int32(bufSize), pixels)
}

func (functions) CopyImageSubData(src igl.Texture, srcTarget igl.Enum, srcLevel, srcX, srcY, srcZ int, dst igl.Texture, dstTarget igl.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	gl.CopyImageSubData(
		src.V, uint32(srcTarget), int32(srcLevel), int32(srcX), int32(srcY), int32(srcZ),
		dst.V, uint32(dstTarget), int32(dstLevel), int32(dstX), int32(dstY), int32(dstZ),
		int32(width), int32(height), int32(depth),
	)
}

func (functions) GenerateTextureMipmap(tex igl.Texture) {
	gl.GenerateTextureMipmap(tex.V)
}

func (functions) BindTextures(first uint32, texs []igl.Texture) {
	gl.BindTextures(first, int32(len(texs)), (*uint32)(unsafe.Pointer(ptr(texs))))
}

func (functions) BindImageTextures(first uint32, texs []igl.Texture) {
	gl.BindImageTextures(first, int32(len(texs)), (*uint32)(unsafe.Pointer(ptr(texs))))
}

func (functions) PixelStorei(pname igl.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (functions) ReadnPixels(x, y, width, height int, format, typ igl.Enum, bufSize int, data unsafe.Pointer) {
	gl.ReadnPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), int32(bufSize), data)
}

func (functions) CreateSampler() igl.Sampler {
	var s uint32
	gl.CreateSamplers(1, &s)
	return igl.Sampler{V: s}
}

func (functions) DeleteSamplers(samplers []igl.Sampler) {
	gl.DeleteSamplers(int32(len(samplers)), (*uint32)(unsafe.Pointer(ptr(samplers))))
}

func (functions) SamplerParameteri(s igl.Sampler, pname igl.Enum, param int) {
	gl.SamplerParameteri(s.V, uint32(pname), int32(param))
}

func (functions) SamplerParameterf(s igl.Sampler, pname igl.Enum, param float32) {
	gl.SamplerParameterf(s.V, uint32(pname), param)
}

func (functions) SamplerParameterfv(s igl.Sampler, pname igl.Enum, params []float32) {
	gl.SamplerParameterfv(s.V, uint32(pname), ptr(params))
}

func (functions) BindSamplers(first uint32, samplers []igl.Sampler) {
	gl.BindSamplers(first, int32(len(samplers)), (*uint32)(unsafe.Pointer(ptr(samplers))))
}

func (functions) CreateVertexArray() igl.VertexArray {
	var a uint32
	gl.CreateVertexArrays(1, &a)
	return igl.VertexArray{V: a}
}

func (functions) DeleteVertexArrays(vaos []igl.VertexArray) {
	gl.DeleteVertexArrays(int32(len(vaos)), (*uint32)(unsafe.Pointer(ptr(vaos))))
}

func (functions) BindVertexArray(vao igl.VertexArray) {
	gl.BindVertexArray(vao.V)
}

func (functions) EnableVertexArrayAttrib(vao igl.VertexArray, index uint32) {
	gl.EnableVertexArrayAttrib(vao.V, index)
}

func (functions) VertexArrayAttribFormat(vao igl.VertexArray, index uint32, size int, typ igl.Enum, normalized bool, offset uint32) {
	gl.VertexArrayAttribFormat(vao.V, index, int32(size), uint32(typ), normalized, offset)
}

func (functions) VertexArrayAttribIFormat(vao igl.VertexArray, index uint32, size int, typ igl.Enum, offset uint32) {
	gl.VertexArrayAttribIFormat(vao.V, index, int32(size), uint32(typ), offset)
}

func (functions) VertexArrayAttribLFormat(vao igl.VertexArray, index uint32, size int, typ igl.Enum, offset uint32) {
	gl.VertexArrayAttribLFormat(vao.V, index, int32(size), uint32(typ), offset)
}

func (functions) VertexArrayAttribBinding(vao igl.VertexArray, index, binding uint32) {
	gl.VertexArrayAttribBinding(vao.V, index, binding)
}

func (functions) VertexArrayVertexBuffers(vao igl.VertexArray, first uint32, bufs []igl.Buffer, offsets []int, strides []int32) {
	gl.VertexArrayVertexBuffers(vao.V, first, int32(len(bufs)), (*uint32)(unsafe.Pointer(ptr(bufs))), ptr(offsets), ptr(strides))
}

func (functions) VertexArrayBindingDivisor(vao igl.VertexArray, binding, divisor uint32) {
	gl.VertexArrayBindingDivisor(vao.V, binding, divisor)
}

func (functions) VertexArrayElementBuffer(vao igl.VertexArray, buf igl.Buffer) {
	gl.VertexArrayElementBuffer(vao.V, buf.V)
}

func (functions) CreateShader(typ igl.Enum) igl.Shader {
	return igl.Shader{V: gl.CreateShader(uint32(typ))}
}

func (functions) ShaderSource(s igl.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.V, 1, csources, nil)
	free()
}

func (functions) CompileShader(s igl.Shader) {
	gl.CompileShader(s.V)
}

func (functions) GetShaderi(s igl.Shader, pname igl.Enum) int {
	var v int32
	gl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (f functions) GetShaderInfoLog(s igl.Shader) string {
	n := f.GetShaderi(s, gl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(s.V, int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (functions) DeleteShader(s igl.Shader) {
	gl.DeleteShader(s.V)
}

func (functions) CreateProgram() igl.Program {
	return igl.Program{V: gl.CreateProgram()}
}

func (functions) AttachShader(p igl.Program, s igl.Shader) {
	gl.AttachShader(p.V, s.V)
}

func (functions) DetachShader(p igl.Program, s igl.Shader) {
	gl.DetachShader(p.V, s.V)
}

func (functions) LinkProgram(p igl.Program) {
	gl.LinkProgram(p.V)
}

func (functions) GetProgrami(p igl.Program, pname igl.Enum) int {
	var v int32
	gl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (f functions) GetProgramInfoLog(p igl.Program) string {
	n := f.GetProgrami(p, gl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(p.V, int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (functions) DeleteProgram(p igl.Program) {
	gl.DeleteProgram(p.V)
}

func (functions) UseProgram(p igl.Program) {
	gl.UseProgram(p.V)
}

func (functions) ProgramUniform1ui(p igl.Program, location int, v uint32) {
	gl.ProgramUniform1ui(p.V, int32(location), v)
}

func (functions) ProgramUniform1f(p igl.Program, location int, v float32) {
	gl.ProgramUniform1f(p.V, int32(location), v)
}

func (functions) ProgramUniform3f(p igl.Program, location int, x, y, z float32) {
	gl.ProgramUniform3f(p.V, int32(location), x, y, z)
}

func (functions) ProgramUniformMatrix3fv(p igl.Program, location int, m []float32) {
	gl.ProgramUniformMatrix3fv(p.V, int32(location), int32(len(m)/9), false, ptr(m))
}

func (functions) ProgramUniformMatrix4fv(p igl.Program, location int, m []float32) {
	gl.ProgramUniformMatrix4fv(p.V, int32(location), int32(len(m)/16), false, ptr(m))
}

func (functions) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha igl.Enum) {
	gl.BlendEquationSeparatei(buf, uint32(modeRGB), uint32(modeAlpha))
}

func (functions) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcA, dstA igl.Enum) {
	gl.BlendFuncSeparatei(buf, uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (functions) BlendColor(r, g, b, a float32) {
	gl.BlendColor(r, g, b, a)
}

func (functions) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (functions) DepthFunc(fn igl.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (functions) StencilFuncSeparate(face, fn igl.Enum, ref int32, mask uint32) {
	gl.StencilFuncSeparate(uint32(face), uint32(fn), ref, mask)
}

func (functions) StencilOpSeparate(face, sfail, dpfail, dppass igl.Enum) {
	gl.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (functions) PolygonMode(face, mode igl.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (functions) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (functions) FrontFace(mode igl.Enum) {
	gl.FrontFace(uint32(mode))
}

func (functions) CullFace(mode igl.Enum) {
	gl.CullFace(uint32(mode))
}

func (functions) MinSampleShading(value float32) {
	gl.MinSampleShading(value)
}

func (functions) SampleMaski(index uint32, mask uint32) {
	gl.SampleMaski(index, mask)
}

func (functions) PrimitiveRestartIndex(index uint32) {
	gl.PrimitiveRestartIndex(index)
}

func (functions) ViewportArrayv(first uint32, v []float32) {
	gl.ViewportArrayv(first, int32(len(v)/4), ptr(v))
}

func (functions) DepthRangeArrayv(first uint32, v []float64) {
	gl.DepthRangeArrayv(first, int32(len(v)/2), ptr(v))
}

func (functions) ScissorArrayv(first uint32, v []int32) {
	gl.ScissorArrayv(first, int32(len(v)/4), ptr(v))
}

func (functions) DrawArraysInstancedBaseInstance(mode igl.Enum, first, count, instances int, baseInstance uint32) {
	gl.DrawArraysInstancedBaseInstance(uint32(mode), int32(first), int32(count), int32(instances), baseInstance)
}

func (functions) DrawElementsInstancedBaseVertexBaseInstance(mode igl.Enum, count int, typ igl.Enum, offset int, instances, baseVertex int, baseInstance uint32) {
	gl.DrawElementsInstancedBaseVertexBaseInstance(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset), int32(instances), int32(baseVertex), baseInstance)
}

func (functions) MultiDrawArraysIndirect(mode igl.Enum, indirect unsafe.Pointer, drawCount, stride int) {
	gl.MultiDrawArraysIndirect(uint32(mode), indirect, int32(drawCount), int32(stride))
}

func (functions) MultiDrawElementsIndirect(mode, typ igl.Enum, indirect unsafe.Pointer, drawCount, stride int) {
	gl.MultiDrawElementsIndirect(uint32(mode), uint32(typ), indirect, int32(drawCount), int32(stride))
}

func (functions) DispatchCompute(x, y, z uint32) {
	gl.DispatchCompute(x, y, z)
}

func (functions) DispatchComputeIndirect(offset int) {
	gl.DispatchComputeIndirect(offset)
}

func (functions) CreateFramebuffer() igl.Framebuffer {
	var fb uint32
	gl.CreateFramebuffers(1, &fb)
	return igl.Framebuffer{V: fb}
}

func (functions) DeleteFramebuffers(fbs []igl.Framebuffer) {
	gl.DeleteFramebuffers(int32(len(fbs)), (*uint32)(unsafe.Pointer(ptr(fbs))))
}

func (functions) BindFramebuffer(target igl.Enum, fb igl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), fb.V)
}

func (functions) CheckNamedFramebufferStatus(fb igl.Framebuffer, target igl.Enum) igl.Enum {
	return igl.Enum(gl.CheckNamedFramebufferStatus(fb.V, uint32(target)))
}

func (functions) CreateRenderbuffer() igl.Renderbuffer {
	var rb uint32
	gl.CreateRenderbuffers(1, &rb)
	return igl.Renderbuffer{V: rb}
}

func (functions) DeleteRenderbuffers(rbs []igl.Renderbuffer) {
	gl.DeleteRenderbuffers(int32(len(rbs)), (*uint32)(unsafe.Pointer(ptr(rbs))))
}

func (functions) NamedRenderbufferStorage(rb igl.Renderbuffer, format igl.Enum, width, height int) {
	gl.NamedRenderbufferStorage(rb.V, uint32(format), int32(width), int32(height))
}

func (functions) NamedRenderbufferStorageMultisample(rb igl.Renderbuffer, samples int, format igl.Enum, width, height int) {
	gl.NamedRenderbufferStorageMultisample(rb.V, int32(samples), uint32(format), int32(width), int32(height))
}

func (functions) NamedFramebufferTexture(fb igl.Framebuffer, attachment igl.Enum, tex igl.Texture, level int) {
	gl.NamedFramebufferTexture(fb.V, uint32(attachment), tex.V, int32(level))
}

func (functions) NamedFramebufferTextureLayer(fb igl.Framebuffer, attachment igl.Enum, tex igl.Texture, level, layer int) {
	gl.NamedFramebufferTextureLayer(fb.V, uint32(attachment), tex.V, int32(level), int32(layer))
}

func (functions) NamedFramebufferRenderbuffer(fb igl.Framebuffer, attachment igl.Enum, rb igl.Renderbuffer) {
	gl.NamedFramebufferRenderbuffer(fb.V, uint32(attachment), gl.RENDERBUFFER, rb.V)
}

func (functions) NamedFramebufferDrawBuffers(fb igl.Framebuffer, bufs []igl.Enum) {
	gl.NamedFramebufferDrawBuffers(fb.V, int32(len(bufs)), (*uint32)(unsafe.Pointer(ptr(bufs))))
}

func (functions) ClearNamedFramebufferiv(fb igl.Framebuffer, buffer igl.Enum, drawBuffer int, value []int32) {
	gl.ClearNamedFramebufferiv(fb.V, uint32(buffer), int32(drawBuffer), ptr(value))
}

func (functions) ClearNamedFramebufferuiv(fb igl.Framebuffer, buffer igl.Enum, drawBuffer int, value []uint32) {
	gl.ClearNamedFramebufferuiv(fb.V, uint32(buffer), int32(drawBuffer), ptr(value))
}

func (functions) ClearNamedFramebufferfv(fb igl.Framebuffer, buffer igl.Enum, drawBuffer int, value []float32) {
	gl.ClearNamedFramebufferfv(fb.V, uint32(buffer), int32(drawBuffer), ptr(value))
}

func (functions) ClearNamedFramebufferfi(fb igl.Framebuffer, buffer igl.Enum, drawBuffer int, depth float32, stencil int32) {
	gl.ClearNamedFramebufferfi(fb.V, uint32(buffer), int32(drawBuffer), depth, stencil)
}

func (functions) InvalidateNamedFramebufferSubData(fb igl.Framebuffer, attachments []igl.Enum, x, y, width, height int) {
	gl.InvalidateNamedFramebufferSubData(fb.V, int32(len(attachments)), (*uint32)(unsafe.Pointer(ptr(attachments))), int32(x), int32(y), int32(width), int32(height))
}

func (functions) BlitNamedFramebuffer(src, dst igl.Framebuffer, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter igl.Enum) {
	gl.BlitNamedFramebuffer(src.V, dst.V,
		int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		uint32(mask), uint32(filter))
}

func (functions) MemoryBarrier(barriers igl.Enum) {
	gl.MemoryBarrier(uint32(barriers))
}

func (functions) MemoryBarrierByRegion(barriers igl.Enum) {
	gl.MemoryBarrierByRegion(uint32(barriers))
}

func (functions) TextureBarrier() {
	gl.TextureBarrier()
}

func (functions) CreateQuery(target igl.Enum) igl.Query {
	var q uint32
	gl.CreateQueries(uint32(target), 1, &q)
	return igl.Query{V: q}
}

func (functions) DeleteQueries(queries []igl.Query) {
	gl.DeleteQueries(int32(len(queries)), (*uint32)(unsafe.Pointer(ptr(queries))))
}

func (functions) BeginQueryIndexed(target igl.Enum, index uint32, q igl.Query) {
	gl.BeginQueryIndexed(uint32(target), index, q.V)
}

func (functions) EndQueryIndexed(target igl.Enum, index uint32) {
	gl.EndQueryIndexed(uint32(target), index)
}

func (functions) QueryCounter(q igl.Query, target igl.Enum) {
	gl.QueryCounter(q.V, uint32(target))
}

func (functions) GetQueryObjectui64(q igl.Query, pname igl.Enum) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(q.V, uint32(pname), &v)
	return v
}

func (functions) GetQueryBufferObjectui64v(q igl.Query, buf igl.Buffer, pname igl.Enum, offset int) {
	gl.GetQueryBufferObjectui64v(q.V, buf.V, uint32(pname), offset)
}

func (functions) BeginConditionalRender(q igl.Query, mode igl.Enum) {
	gl.BeginConditionalRender(q.V, uint32(mode))
}

func (functions) EndConditionalRender() {
	gl.EndConditionalRender()
}

func (functions) DebugMessageCallback(cb igl.DebugProc) {
	if cb == nil {
		gl.DebugMessageCallback(nil, nil)
		return
	}
	gl.DebugMessageCallback(func(source, typ, id, severity uint32, length int32, message string, _ unsafe.Pointer) {
		cb(igl.Enum(source), igl.Enum(typ), id, igl.Enum(severity), message)
	}, nil)
}

func (functions) DebugMessageControl(source, typ, severity igl.Enum, ids []uint32, enabled bool) {
	gl.DebugMessageControl(uint32(source), uint32(typ), uint32(severity), int32(len(ids)), ptr(ids), enabled)
}

func (functions) DebugMessageInsert(source, typ igl.Enum, id uint32, severity igl.Enum, msg string) {
	gl.DebugMessageInsert(uint32(source), uint32(typ), id, uint32(severity), int32(len(msg)), cstr(msg))
}

func (functions) ObjectLabel(identifier igl.Enum, name uint32, label string) {
	gl.ObjectLabel(uint32(identifier), name, int32(len(label)), cstr(label))
}

func (functions) PushDebugGroup(source igl.Enum, id uint32, msg string) {
	gl.PushDebugGroup(uint32(source), id, int32(len(msg)), cstr(msg))
}

func (functions) PopDebugGroup() {
	gl.PopDebugGroup()
}
