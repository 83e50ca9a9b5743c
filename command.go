// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/unsafe"
)

// Primitive is the topology of assembled vertices.
type Primitive uint8

const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	LinesAdjacency
	LineStripAdjacency
	TrianglesAdjacency
	TriangleStripAdjacency
	Patches
)

// IndexType is the element type of an index buffer.
type IndexType uint8

const (
	IndexU8 IndexType = iota
	IndexU16
	IndexU32
)

// Viewport maps normalized device coordinates to a framebuffer
// rectangle and depth range.
type Viewport struct {
	X, Y, W, H float32
	N, F       float64
}

// Constant is a uniform value written directly to a pipeline.
type Constant interface {
	set(ctx gl.Context, p gl.Program, location int)
}

type (
	ConstantU32  uint32
	ConstantF32  float32
	ConstantVec3 [3]float32
)

// ConstantMat3x3 is a column major 3x3 matrix.
type ConstantMat3x3 [3][3]float32

// ConstantMat4x4 is a column major 4x4 matrix.
type ConstantMat4x4 [4][4]float32

func (c ConstantU32) set(ctx gl.Context, p gl.Program, location int) {
	ctx.ProgramUniform1ui(p, location, uint32(c))
}

func (c ConstantF32) set(ctx gl.Context, p gl.Program, location int) {
	ctx.ProgramUniform1f(p, location, float32(c))
}

func (c ConstantVec3) set(ctx gl.Context, p gl.Program, location int) {
	ctx.ProgramUniform3f(p, location, c[0], c[1], c[2])
}

func (c ConstantMat3x3) set(ctx gl.Context, p gl.Program, location int) {
	ctx.ProgramUniformMatrix3fv(p, location, unsafe.SliceOf[float32](unsafe.DataPointer(c[:]), 9))
}

func (c ConstantMat4x4) set(ctx gl.Context, p gl.Program, location int) {
	ctx.ProgramUniformMatrix4fv(p, location, unsafe.SliceOf[float32](unsafe.DataPointer(c[:]), 16))
}

// DrawIndirectCmd is the layout of an indirect draw command.
type DrawIndirectCmd struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

// DrawIndexedIndirectCmd is the layout of an indirect indexed draw
// command.
type DrawIndexedIndirectCmd struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}

// BindUniformConstants writes constants to consecutive uniform
// locations of pipeline starting at first.
func (d *Device) BindUniformConstants(pipeline Pipeline, first uint32, constants []Constant) {
	for i, c := range constants {
		c.set(d.ctx, pipeline.id, int(first)+i)
	}
}

// SetViewport sets consecutive viewports starting at first.
func (d *Device) SetViewport(first uint32, viewports []Viewport) {
	rects := make([]float32, 0, 4*len(viewports))
	depths := make([]float64, 0, 2*len(viewports))
	for _, v := range viewports {
		rects = append(rects, v.X, v.Y, v.W, v.H)
		depths = append(depths, v.N, v.F)
	}
	d.ctx.ViewportArrayv(first, rects)
	d.ctx.DepthRangeArrayv(first, depths)
}

// SetScissor sets consecutive scissor rectangles starting at first.
func (d *Device) SetScissor(first uint32, scissors []Region) {
	rects := make([]int32, 0, 4*len(scissors))
	for _, s := range scissors {
		rects = append(rects, s.X, s.Y, s.W, s.H)
	}
	d.ctx.ScissorArrayv(first, rects)
}

// Draw assembles vertices from the bound vertex array.
func (d *Device) Draw(prim Primitive, vertices, instances Range) {
	d.ctx.DrawArraysInstancedBaseInstance(prim.glEnum(),
		int(vertices.Start), int(vertices.Len()), int(instances.Len()), instances.Start)
}

// DrawIndexed assembles vertices through the bound index buffer.
// Indices are counted in elements of typ.
func (d *Device) DrawIndexed(prim Primitive, typ IndexType, indices, instances Range, baseVertex int32) {
	d.ctx.DrawElementsInstancedBaseVertexBaseInstance(prim.glEnum(),
		int(indices.Len()), typ.glEnum(), int(indices.Start)*typ.Size(),
		int(instances.Len()), int(baseVertex), instances.Start)
}

// DrawIndirect issues count DrawIndirectCmds read from the bound
// draw indirect buffer at offset.
func (d *Device) DrawIndirect(prim Primitive, offset int, count, stride uint32) {
	d.ctx.MultiDrawArraysIndirect(prim.glEnum(), unsafe.Offset(offset), int(count), int(stride))
}

// DrawIndirectFromHost issues draw commands stored in host memory.
func (d *Device) DrawIndirectFromHost(prim Primitive, cmds []DrawIndirectCmd) {
	d.ctx.MultiDrawArraysIndirect(prim.glEnum(), unsafe.DataPointer(cmds), len(cmds), unsafe.SizeOf[DrawIndirectCmd]())
}

// DrawIndexedIndirect issues count DrawIndexedIndirectCmds read from
// the bound draw indirect buffer at offset.
func (d *Device) DrawIndexedIndirect(prim Primitive, typ IndexType, offset int, count, stride uint32) {
	d.ctx.MultiDrawElementsIndirect(prim.glEnum(), typ.glEnum(), unsafe.Offset(offset), int(count), int(stride))
}

// DrawIndexedIndirectFromHost issues indexed draw commands stored in
// host memory.
func (d *Device) DrawIndexedIndirectFromHost(prim Primitive, typ IndexType, cmds []DrawIndexedIndirectCmd) {
	d.ctx.MultiDrawElementsIndirect(prim.glEnum(), typ.glEnum(), unsafe.DataPointer(cmds), len(cmds), unsafe.SizeOf[DrawIndexedIndirectCmd]())
}

// Dispatch runs x*y*z work groups of the bound compute pipeline.
func (d *Device) Dispatch(x, y, z uint32) {
	d.ctx.DispatchCompute(x, y, z)
}

// DispatchIndirect runs the work groups counted by the dispatch
// indirect buffer at offset.
func (d *Device) DispatchIndirect(offset int) {
	d.ctx.DispatchComputeIndirect(offset)
}

func (p Primitive) glEnum() gl.Enum {
	switch p {
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	case Triangles:
		return gl.TRIANGLES
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case LinesAdjacency:
		return gl.LINES_ADJACENCY
	case LineStripAdjacency:
		return gl.LINE_STRIP_ADJACENCY
	case TrianglesAdjacency:
		return gl.TRIANGLES_ADJACENCY
	case TriangleStripAdjacency:
		return gl.TRIANGLE_STRIP_ADJACENCY
	case Patches:
		return gl.PATCHES
	default:
		panic("grr: unsupported primitive")
	}
}

// Size returns the size of an index in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	default:
		panic("grr: unsupported index type")
	}
}

func (t IndexType) glEnum() gl.Enum {
	switch t {
	case IndexU8:
		return gl.UNSIGNED_BYTE
	case IndexU16:
		return gl.UNSIGNED_SHORT
	case IndexU32:
		return gl.UNSIGNED_INT
	default:
		panic("grr: unsupported index type")
	}
}
