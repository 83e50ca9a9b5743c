// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest implements a recording gl.Context for tests that
// must not depend on a native OpenGL implementation.
package gltest

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/grr/internal/gl"
)

// Call is a single recorded entry point invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a gl.Context that records every call except GetError.
// Object names are handed out from a single increasing counter.
type Recorder struct {
	Calls []Call

	// Errors is drained by GetError, one value per call.
	Errors []gl.Enum
	// Strings and Integers back GetString and GetInteger.
	Strings  map[gl.Enum]string
	Integers map[gl.Enum]int

	CompileFail bool
	CompileLog  string
	LinkFail    bool
	LinkLog     string

	FramebufferStatus gl.Enum
	QueryResult       uint64

	// DebugProc is the callback most recently installed.
	DebugProc gl.DebugProc

	next    uint32
	storage map[uint32][]byte
}

var _ gl.Context = (*Recorder)(nil)

// New returns a Recorder that reports an OpenGL 4.6 core context.
func New() *Recorder {
	return &Recorder{
		Strings: map[gl.Enum]string{
			gl.VERSION:                  "4.6.0 gltest",
			gl.RENDERER:                 "gltest",
			gl.VENDOR:                   "gioui.org",
			gl.SHADING_LANGUAGE_VERSION: "4.60",
		},
		Integers: map[gl.Enum]int{
			gl.MAX_TEXTURE_SIZE:                   16384,
			gl.MAX_3D_TEXTURE_SIZE:                2048,
			gl.MAX_ARRAY_TEXTURE_LAYERS:           2048,
			gl.MAX_COLOR_ATTACHMENTS:              8,
			gl.MAX_SAMPLES:                        8,
			gl.MAX_VERTEX_ATTRIBS:                 16,
			gl.MAX_VIEWPORTS:                      16,
			gl.MAX_UNIFORM_BUFFER_BINDINGS:        84,
			gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS: 16,
		},
		FramebufferStatus: gl.FRAMEBUFFER_COMPLETE,
		storage:           make(map[uint32][]byte),
	}
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Find returns every recorded call with the given name.
func (r *Recorder) Find(name string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Last returns the most recent call with the given name.
func (r *Recorder) Last(name string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Has reports whether a call with the given name was recorded.
func (r *Recorder) Has(name string) bool {
	return slices.ContainsFunc(r.Calls, func(c Call) bool { return c.Name == name })
}

// Index returns the position of the first call with the given name,
// or -1.
func (r *Recorder) Index(name string) int {
	return slices.IndexFunc(r.Calls, func(c Call) bool { return c.Name == name })
}

// Distinct returns the sorted set of recorded call names.
func (r *Recorder) Distinct() []string {
	set := make(map[string]struct{})
	for _, c := range r.Calls {
		set[c.Name] = struct{}{}
	}
	names := maps.Keys(set)
	slices.Sort(names)
	return names
}

// Storage returns the bytes backing a buffer created through the
// recorder.
func (r *Recorder) Storage(buf gl.Buffer) []byte {
	return r.storage[buf.V]
}

func (r *Recorder) rec(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) gen() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) GetError() gl.Enum {
	if len(r.Errors) == 0 {
		return gl.NO_ERROR
	}
	err := r.Errors[0]
	r.Errors = r.Errors[1:]
	return err
}

func (r *Recorder) GetString(name gl.Enum) string {
	r.rec("GetString", name)
	return r.Strings[name]
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	r.rec("GetInteger", pname)
	return r.Integers[pname]
}

func (r *Recorder) Enable(cap gl.Enum)  { r.rec("Enable", cap) }
func (r *Recorder) Disable(cap gl.Enum) { r.rec("Disable", cap) }

func (r *Recorder) Enablei(cap gl.Enum, index uint32)  { r.rec("Enablei", cap, index) }
func (r *Recorder) Disablei(cap gl.Enum, index uint32) { r.rec("Disablei", cap, index) }

func (r *Recorder) ClipControl(origin, depth gl.Enum) { r.rec("ClipControl", origin, depth) }
func (r *Recorder) Finish()                           { r.rec("Finish") }
func (r *Recorder) Flush()                            { r.rec("Flush") }

func (r *Recorder) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: r.gen()}
	r.rec("CreateBuffer", b)
	return b
}

func (r *Recorder) DeleteBuffers(bufs []gl.Buffer) {
	r.rec("DeleteBuffers", slices.Clone(bufs))
	for _, b := range bufs {
		delete(r.storage, b.V)
	}
}

func (r *Recorder) NamedBufferStorage(buf gl.Buffer, size int, data unsafe.Pointer, flags gl.Enum) {
	r.rec("NamedBufferStorage", buf, size, data != nil, flags)
	mem := make([]byte, size)
	if data != nil {
		copy(mem, unsafe.Slice((*byte)(data), size))
	}
	r.storage[buf.V] = mem
}

func (r *Recorder) NamedBufferSubData(buf gl.Buffer, offset int, data []byte) {
	r.rec("NamedBufferSubData", buf, offset, len(data))
	copy(r.storage[buf.V][offset:], data)
}

func (r *Recorder) MapNamedBufferRange(buf gl.Buffer, offset, length int, access gl.Enum) unsafe.Pointer {
	r.rec("MapNamedBufferRange", buf, offset, length, access)
	mem := r.storage[buf.V]
	if length == 0 || offset+length > len(mem) {
		return nil
	}
	return unsafe.Pointer(&mem[offset])
}

func (r *Recorder) FlushMappedNamedBufferRange(buf gl.Buffer, offset, length int) {
	r.rec("FlushMappedNamedBufferRange", buf, offset, length)
}

func (r *Recorder) UnmapNamedBuffer(buf gl.Buffer) bool {
	r.rec("UnmapNamedBuffer", buf)
	return true
}

func (r *Recorder) GetNamedBufferParameteri64(buf gl.Buffer, pname gl.Enum) int64 {
	r.rec("GetNamedBufferParameteri64", buf, pname)
	if pname == gl.BUFFER_SIZE {
		return int64(len(r.storage[buf.V]))
	}
	return 0
}

func (r *Recorder) CopyNamedBufferSubData(src, dst gl.Buffer, srcOffset, dstOffset, size int) {
	r.rec("CopyNamedBufferSubData", src, dst, srcOffset, dstOffset, size)
}

func (r *Recorder) ClearNamedBufferSubData(buf gl.Buffer, internalFormat gl.Enum, offset, size int, format, typ gl.Enum, data []byte) {
	r.rec("ClearNamedBufferSubData", buf, internalFormat, offset, size, format, typ, slices.Clone(data))
}

func (r *Recorder) BindBuffer(target gl.Enum, buf gl.Buffer) { r.rec("BindBuffer", target, buf) }

func (r *Recorder) BindBuffersRange(target gl.Enum, first uint32, bufs []gl.Buffer, offsets, sizes []int) {
	r.rec("BindBuffersRange", target, first, slices.Clone(bufs), slices.Clone(offsets), slices.Clone(sizes))
}

func (r *Recorder) CreateTexture(target gl.Enum) gl.Texture {
	t := gl.Texture{V: r.gen()}
	r.rec("CreateTexture", target, t)
	return t
}

func (r *Recorder) GenTexture() gl.Texture {
	t := gl.Texture{V: r.gen()}
	r.rec("GenTexture", t)
	return t
}

func (r *Recorder) DeleteTextures(texs []gl.Texture) { r.rec("DeleteTextures", slices.Clone(texs)) }

func (r *Recorder) TextureStorage1D(tex gl.Texture, levels int, format gl.Enum, width int) {
	r.rec("TextureStorage1D", tex, levels, format, width)
}

func (r *Recorder) TextureStorage2D(tex gl.Texture, levels int, format gl.Enum, width, height int) {
	r.rec("TextureStorage2D", tex, levels, format, width, height)
}

func (r *Recorder) TextureStorage3D(tex gl.Texture, levels int, format gl.Enum, width, height, depth int) {
	r.rec("TextureStorage3D", tex, levels, format, width, height, depth)
}

func (r *Recorder) TextureStorage2DMultisample(tex gl.Texture, samples int, format gl.Enum, width, height int, fixedLocations bool) {
	r.rec("TextureStorage2DMultisample", tex, samples, format, width, height, fixedLocations)
}

func (r *Recorder) TextureStorage3DMultisample(tex gl.Texture, samples int, format gl.Enum, width, height, depth int, fixedLocations bool) {
	r.rec("TextureStorage3DMultisample", tex, samples, format, width, height, depth, fixedLocations)
}

func (r *Recorder) TextureView(view gl.Texture, target gl.Enum, orig gl.Texture, format gl.Enum, minLevel, numLevels, minLayer, numLayers uint32) {
	r.rec("TextureView", view, target, orig, format, minLevel, numLevels, minLayer, numLayers)
}

func (r *Recorder) TextureSubImage1D(tex gl.Texture, level, x, width int, format, typ gl.Enum, pixels unsafe.Pointer) {
	r.rec("TextureSubImage1D", tex, level, x, width, format, typ, uintptr(pixels))
}

func (r *Recorder) TextureSubImage2D(tex gl.Texture, level, x, y, width, height int, format, typ gl.Enum, pixels unsafe.Pointer) {
	r.rec("TextureSubImage2D", tex, level, x, y, width, height, format, typ, uintptr(pixels))
}

func (r *Recorder) TextureSubImage3D(tex gl.Texture, level, x, y, z, width, height, depth int, format, typ gl.Enum, pixels unsafe.Pointer) {
	r.rec("TextureSubImage3D", tex, level, x, y, z, width, height, depth, format, typ, uintptr(pixels))
}

func (r *Recorder) GetTextureSubImage(tex gl.Texture, level, x, y, z, width, height, depth int, format, typ gl.Enum, bufSize int, pixels unsafe.Pointer) {
	r.rec("GetTextureSubImage", tex, level, x, y, z, width, height, depth, format, typ, bufSize, uintptr(pixels))
}

func (r *Recorder) CopyImageSubData(src gl.Texture, srcTarget gl.Enum, srcLevel, srcX, srcY, srcZ int, dst gl.Texture, dstTarget gl.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	r.rec("CopyImageSubData", src, srcTarget, srcLevel, srcX, srcY, srcZ, dst, dstTarget, dstLevel, dstX, dstY, dstZ, width, height, depth)
}

func (r *Recorder) GenerateTextureMipmap(tex gl.Texture) { r.rec("GenerateTextureMipmap", tex) }

func (r *Recorder) BindTextures(first uint32, texs []gl.Texture) {
	r.rec("BindTextures", first, slices.Clone(texs))
}

func (r *Recorder) BindImageTextures(first uint32, texs []gl.Texture) {
	r.rec("BindImageTextures", first, slices.Clone(texs))
}

func (r *Recorder) PixelStorei(pname gl.Enum, param int) { r.rec("PixelStorei", pname, param) }

func (r *Recorder) ReadnPixels(x, y, width, height int, format, typ gl.Enum, bufSize int, data unsafe.Pointer) {
	r.rec("ReadnPixels", x, y, width, height, format, typ, bufSize, uintptr(data))
}

func (r *Recorder) CreateSampler() gl.Sampler {
	s := gl.Sampler{V: r.gen()}
	r.rec("CreateSampler", s)
	return s
}

func (r *Recorder) DeleteSamplers(samplers []gl.Sampler) {
	r.rec("DeleteSamplers", slices.Clone(samplers))
}

func (r *Recorder) SamplerParameteri(s gl.Sampler, pname gl.Enum, param int) {
	r.rec("SamplerParameteri", s, pname, param)
}

func (r *Recorder) SamplerParameterf(s gl.Sampler, pname gl.Enum, param float32) {
	r.rec("SamplerParameterf", s, pname, param)
}

func (r *Recorder) SamplerParameterfv(s gl.Sampler, pname gl.Enum, params []float32) {
	r.rec("SamplerParameterfv", s, pname, slices.Clone(params))
}

func (r *Recorder) BindSamplers(first uint32, samplers []gl.Sampler) {
	r.rec("BindSamplers", first, slices.Clone(samplers))
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	v := gl.VertexArray{V: r.gen()}
	r.rec("CreateVertexArray", v)
	return v
}

func (r *Recorder) DeleteVertexArrays(vaos []gl.VertexArray) {
	r.rec("DeleteVertexArrays", slices.Clone(vaos))
}

func (r *Recorder) BindVertexArray(vao gl.VertexArray) { r.rec("BindVertexArray", vao) }

func (r *Recorder) EnableVertexArrayAttrib(vao gl.VertexArray, index uint32) {
	r.rec("EnableVertexArrayAttrib", vao, index)
}

func (r *Recorder) VertexArrayAttribFormat(vao gl.VertexArray, index uint32, size int, typ gl.Enum, normalized bool, offset uint32) {
	r.rec("VertexArrayAttribFormat", vao, index, size, typ, normalized, offset)
}

func (r *Recorder) VertexArrayAttribIFormat(vao gl.VertexArray, index uint32, size int, typ gl.Enum, offset uint32) {
	r.rec("VertexArrayAttribIFormat", vao, index, size, typ, offset)
}

func (r *Recorder) VertexArrayAttribLFormat(vao gl.VertexArray, index uint32, size int, typ gl.Enum, offset uint32) {
	r.rec("VertexArrayAttribLFormat", vao, index, size, typ, offset)
}

func (r *Recorder) VertexArrayAttribBinding(vao gl.VertexArray, index, binding uint32) {
	r.rec("VertexArrayAttribBinding", vao, index, binding)
}

func (r *Recorder) VertexArrayVertexBuffers(vao gl.VertexArray, first uint32, bufs []gl.Buffer, offsets []int, strides []int32) {
	r.rec("VertexArrayVertexBuffers", vao, first, slices.Clone(bufs), slices.Clone(offsets), slices.Clone(strides))
}

func (r *Recorder) VertexArrayBindingDivisor(vao gl.VertexArray, binding, divisor uint32) {
	r.rec("VertexArrayBindingDivisor", vao, binding, divisor)
}

func (r *Recorder) VertexArrayElementBuffer(vao gl.VertexArray, buf gl.Buffer) {
	r.rec("VertexArrayElementBuffer", vao, buf)
}

func (r *Recorder) CreateShader(typ gl.Enum) gl.Shader {
	s := gl.Shader{V: r.gen()}
	r.rec("CreateShader", typ, s)
	return s
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) { r.rec("ShaderSource", s, src) }
func (r *Recorder) CompileShader(s gl.Shader)            { r.rec("CompileShader", s) }

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	r.rec("GetShaderi", s, pname)
	switch pname {
	case gl.COMPILE_STATUS:
		if r.CompileFail {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(r.CompileLog)
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	r.rec("GetShaderInfoLog", s)
	return r.CompileLog
}

func (r *Recorder) DeleteShader(s gl.Shader) { r.rec("DeleteShader", s) }

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program{V: r.gen()}
	r.rec("CreateProgram", p)
	return p
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) { r.rec("AttachShader", p, s) }
func (r *Recorder) DetachShader(p gl.Program, s gl.Shader) { r.rec("DetachShader", p, s) }
func (r *Recorder) LinkProgram(p gl.Program)               { r.rec("LinkProgram", p) }

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	r.rec("GetProgrami", p, pname)
	switch pname {
	case gl.LINK_STATUS:
		if r.LinkFail {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(r.LinkLog)
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	r.rec("GetProgramInfoLog", p)
	return r.LinkLog
}

func (r *Recorder) DeleteProgram(p gl.Program) { r.rec("DeleteProgram", p) }
func (r *Recorder) UseProgram(p gl.Program)    { r.rec("UseProgram", p) }

func (r *Recorder) ProgramUniform1ui(p gl.Program, location int, v uint32) {
	r.rec("ProgramUniform1ui", p, location, v)
}

func (r *Recorder) ProgramUniform1f(p gl.Program, location int, v float32) {
	r.rec("ProgramUniform1f", p, location, v)
}

func (r *Recorder) ProgramUniform3f(p gl.Program, location int, x, y, z float32) {
	r.rec("ProgramUniform3f", p, location, x, y, z)
}

func (r *Recorder) ProgramUniformMatrix3fv(p gl.Program, location int, m []float32) {
	r.rec("ProgramUniformMatrix3fv", p, location, slices.Clone(m))
}

func (r *Recorder) ProgramUniformMatrix4fv(p gl.Program, location int, m []float32) {
	r.rec("ProgramUniformMatrix4fv", p, location, slices.Clone(m))
}

func (r *Recorder) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha gl.Enum) {
	r.rec("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
}

func (r *Recorder) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcA, dstA gl.Enum) {
	r.rec("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcA, dstA)
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.rec("BlendColor", red, green, blue, alpha)
}

func (r *Recorder) DepthMask(mask bool)  { r.rec("DepthMask", mask) }
func (r *Recorder) DepthFunc(fn gl.Enum) { r.rec("DepthFunc", fn) }

func (r *Recorder) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) {
	r.rec("StencilFuncSeparate", face, fn, ref, mask)
}

func (r *Recorder) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	r.rec("StencilOpSeparate", face, sfail, dpfail, dppass)
}

func (r *Recorder) PolygonMode(face, mode gl.Enum)      { r.rec("PolygonMode", face, mode) }
func (r *Recorder) PolygonOffset(factor, units float32) { r.rec("PolygonOffset", factor, units) }
func (r *Recorder) FrontFace(mode gl.Enum)              { r.rec("FrontFace", mode) }
func (r *Recorder) CullFace(mode gl.Enum)               { r.rec("CullFace", mode) }
func (r *Recorder) MinSampleShading(value float32)      { r.rec("MinSampleShading", value) }
func (r *Recorder) SampleMaski(index uint32, mask uint32) {
	r.rec("SampleMaski", index, mask)
}
func (r *Recorder) PrimitiveRestartIndex(index uint32) { r.rec("PrimitiveRestartIndex", index) }

func (r *Recorder) ViewportArrayv(first uint32, v []float32) {
	r.rec("ViewportArrayv", first, slices.Clone(v))
}

func (r *Recorder) DepthRangeArrayv(first uint32, v []float64) {
	r.rec("DepthRangeArrayv", first, slices.Clone(v))
}

func (r *Recorder) ScissorArrayv(first uint32, v []int32) {
	r.rec("ScissorArrayv", first, slices.Clone(v))
}

func (r *Recorder) DrawArraysInstancedBaseInstance(mode gl.Enum, first, count, instances int, baseInstance uint32) {
	r.rec("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

func (r *Recorder) DrawElementsInstancedBaseVertexBaseInstance(mode gl.Enum, count int, typ gl.Enum, offset int, instances, baseVertex int, baseInstance uint32) {
	r.rec("DrawElementsInstancedBaseVertexBaseInstance", mode, count, typ, offset, instances, baseVertex, baseInstance)
}

func (r *Recorder) MultiDrawArraysIndirect(mode gl.Enum, indirect unsafe.Pointer, drawCount, stride int) {
	r.rec("MultiDrawArraysIndirect", mode, uintptr(indirect), drawCount, stride)
}

func (r *Recorder) MultiDrawElementsIndirect(mode, typ gl.Enum, indirect unsafe.Pointer, drawCount, stride int) {
	r.rec("MultiDrawElementsIndirect", mode, typ, uintptr(indirect), drawCount, stride)
}

func (r *Recorder) DispatchCompute(x, y, z uint32) { r.rec("DispatchCompute", x, y, z) }
func (r *Recorder) DispatchComputeIndirect(offset int) {
	r.rec("DispatchComputeIndirect", offset)
}

func (r *Recorder) CreateFramebuffer() gl.Framebuffer {
	f := gl.Framebuffer{V: r.gen()}
	r.rec("CreateFramebuffer", f)
	return f
}

func (r *Recorder) DeleteFramebuffers(fbs []gl.Framebuffer) {
	r.rec("DeleteFramebuffers", slices.Clone(fbs))
}

func (r *Recorder) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	r.rec("BindFramebuffer", target, fb)
}

func (r *Recorder) CheckNamedFramebufferStatus(fb gl.Framebuffer, target gl.Enum) gl.Enum {
	r.rec("CheckNamedFramebufferStatus", fb, target)
	return r.FramebufferStatus
}

func (r *Recorder) CreateRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer{V: r.gen()}
	r.rec("CreateRenderbuffer", rb)
	return rb
}

func (r *Recorder) DeleteRenderbuffers(rbs []gl.Renderbuffer) {
	r.rec("DeleteRenderbuffers", slices.Clone(rbs))
}

func (r *Recorder) NamedRenderbufferStorage(rb gl.Renderbuffer, format gl.Enum, width, height int) {
	r.rec("NamedRenderbufferStorage", rb, format, width, height)
}

func (r *Recorder) NamedRenderbufferStorageMultisample(rb gl.Renderbuffer, samples int, format gl.Enum, width, height int) {
	r.rec("NamedRenderbufferStorageMultisample", rb, samples, format, width, height)
}

func (r *Recorder) NamedFramebufferTexture(fb gl.Framebuffer, attachment gl.Enum, tex gl.Texture, level int) {
	r.rec("NamedFramebufferTexture", fb, attachment, tex, level)
}

func (r *Recorder) NamedFramebufferTextureLayer(fb gl.Framebuffer, attachment gl.Enum, tex gl.Texture, level, layer int) {
	r.rec("NamedFramebufferTextureLayer", fb, attachment, tex, level, layer)
}

func (r *Recorder) NamedFramebufferRenderbuffer(fb gl.Framebuffer, attachment gl.Enum, rb gl.Renderbuffer) {
	r.rec("NamedFramebufferRenderbuffer", fb, attachment, rb)
}

func (r *Recorder) NamedFramebufferDrawBuffers(fb gl.Framebuffer, bufs []gl.Enum) {
	r.rec("NamedFramebufferDrawBuffers", fb, slices.Clone(bufs))
}

func (r *Recorder) ClearNamedFramebufferiv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, value []int32) {
	r.rec("ClearNamedFramebufferiv", fb, buffer, drawBuffer, slices.Clone(value))
}

func (r *Recorder) ClearNamedFramebufferuiv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, value []uint32) {
	r.rec("ClearNamedFramebufferuiv", fb, buffer, drawBuffer, slices.Clone(value))
}

func (r *Recorder) ClearNamedFramebufferfv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, value []float32) {
	r.rec("ClearNamedFramebufferfv", fb, buffer, drawBuffer, slices.Clone(value))
}

func (r *Recorder) ClearNamedFramebufferfi(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, depth float32, stencil int32) {
	r.rec("ClearNamedFramebufferfi", fb, buffer, drawBuffer, depth, stencil)
}

func (r *Recorder) InvalidateNamedFramebufferSubData(fb gl.Framebuffer, attachments []gl.Enum, x, y, width, height int) {
	r.rec("InvalidateNamedFramebufferSubData", fb, slices.Clone(attachments), x, y, width, height)
}

func (r *Recorder) BlitNamedFramebuffer(src, dst gl.Framebuffer, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter gl.Enum) {
	r.rec("BlitNamedFramebuffer", src, dst, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (r *Recorder) MemoryBarrier(barriers gl.Enum)         { r.rec("MemoryBarrier", barriers) }
func (r *Recorder) MemoryBarrierByRegion(barriers gl.Enum) { r.rec("MemoryBarrierByRegion", barriers) }
func (r *Recorder) TextureBarrier()                        { r.rec("TextureBarrier") }

func (r *Recorder) CreateQuery(target gl.Enum) gl.Query {
	q := gl.Query{V: r.gen()}
	r.rec("CreateQuery", target, q)
	return q
}

func (r *Recorder) DeleteQueries(queries []gl.Query) { r.rec("DeleteQueries", slices.Clone(queries)) }

func (r *Recorder) BeginQueryIndexed(target gl.Enum, index uint32, q gl.Query) {
	r.rec("BeginQueryIndexed", target, index, q)
}

func (r *Recorder) EndQueryIndexed(target gl.Enum, index uint32) {
	r.rec("EndQueryIndexed", target, index)
}

func (r *Recorder) QueryCounter(q gl.Query, target gl.Enum) { r.rec("QueryCounter", q, target) }

func (r *Recorder) GetQueryObjectui64(q gl.Query, pname gl.Enum) uint64 {
	r.rec("GetQueryObjectui64", q, pname)
	return r.QueryResult
}

func (r *Recorder) GetQueryBufferObjectui64v(q gl.Query, buf gl.Buffer, pname gl.Enum, offset int) {
	r.rec("GetQueryBufferObjectui64v", q, buf, pname, offset)
}

func (r *Recorder) BeginConditionalRender(q gl.Query, mode gl.Enum) {
	r.rec("BeginConditionalRender", q, mode)
}

func (r *Recorder) EndConditionalRender() { r.rec("EndConditionalRender") }

func (r *Recorder) DebugMessageCallback(cb gl.DebugProc) {
	r.rec("DebugMessageCallback", cb != nil)
	r.DebugProc = cb
}

func (r *Recorder) DebugMessageControl(source, typ, severity gl.Enum, ids []uint32, enabled bool) {
	r.rec("DebugMessageControl", source, typ, severity, slices.Clone(ids), enabled)
}

func (r *Recorder) DebugMessageInsert(source, typ gl.Enum, id uint32, severity gl.Enum, msg string) {
	r.rec("DebugMessageInsert", source, typ, id, severity, msg)
	if r.DebugProc != nil {
		r.DebugProc(source, typ, id, severity, msg)
	}
}

func (r *Recorder) ObjectLabel(identifier gl.Enum, name uint32, label string) {
	r.rec("ObjectLabel", identifier, name, label)
}

func (r *Recorder) PushDebugGroup(source gl.Enum, id uint32, msg string) {
	r.rec("PushDebugGroup", source, id, msg)
}

func (r *Recorder) PopDebugGroup() { r.rec("PopDebugGroup") }
