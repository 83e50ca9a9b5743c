// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func TestDraw(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.Draw(Triangles, Range{3, 9}, Range{1, 5})
	d.DrawIndexed(TriangleStrip, IndexU16, Range{10, 40}, Range{0, 1}, -4)
	d.DrawIndexed(Lines, IndexU32, Range{5, 7}, Range{2, 3}, 0)
	assert.Equal(t, []gltest.Call{
		{Name: "DrawArraysInstancedBaseInstance", Args: []any{gl.Enum(gl.TRIANGLES), 3, 6, 4, uint32(1)}},
		{Name: "DrawElementsInstancedBaseVertexBaseInstance", Args: []any{gl.Enum(gl.TRIANGLE_STRIP), 30, gl.Enum(gl.UNSIGNED_SHORT), 20, 1, -4, uint32(0)}},
		{Name: "DrawElementsInstancedBaseVertexBaseInstance", Args: []any{gl.Enum(gl.LINES), 2, gl.Enum(gl.UNSIGNED_INT), 20, 1, 0, uint32(2)}},
	}, ctx.Calls)
}

func TestIndirectCommandLayout(t *testing.T) {
	assert.Equal(t, uintptr(16), unsafe.Sizeof(DrawIndirectCmd{}))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(DrawIndexedIndirectCmd{}))
}

func TestDrawIndirect(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.DrawIndirect(Points, 64, 3, 16)
	d.DrawIndexedIndirect(Patches, IndexU8, 128, 2, 32)
	assert.Equal(t, []gltest.Call{
		{Name: "MultiDrawArraysIndirect", Args: []any{gl.Enum(gl.POINTS), uintptr(64), 3, 16}},
		{Name: "MultiDrawElementsIndirect", Args: []any{gl.Enum(gl.PATCHES), gl.Enum(gl.UNSIGNED_BYTE), uintptr(128), 2, 32}},
	}, ctx.Calls)
}

func TestDrawIndirectFromHost(t *testing.T) {
	d, ctx := newTestDevice(t)
	draws := []DrawIndirectCmd{{VertexCount: 3, InstanceCount: 1}, {VertexCount: 6, InstanceCount: 2}}
	indexed := []DrawIndexedIndirectCmd{{IndexCount: 36, InstanceCount: 1, BaseVertex: -1}}
	d.DrawIndirectFromHost(Triangles, draws)
	d.DrawIndexedIndirectFromHost(Triangles, IndexU32, indexed)
	assert.Equal(t, []gltest.Call{
		{Name: "MultiDrawArraysIndirect", Args: []any{gl.Enum(gl.TRIANGLES), uintptr(unsafe.Pointer(&draws[0])), 2, 16}},
		{Name: "MultiDrawElementsIndirect", Args: []any{gl.Enum(gl.TRIANGLES), gl.Enum(gl.UNSIGNED_INT),
			uintptr(unsafe.Pointer(&indexed[0])), 1, 20}},
	}, ctx.Calls)
}

func TestDispatch(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.Dispatch(8, 4, 1)
	d.DispatchIndirect(12)
	assert.Equal(t, []gltest.Call{
		{Name: "DispatchCompute", Args: []any{uint32(8), uint32(4), uint32(1)}},
		{Name: "DispatchComputeIndirect", Args: []any{12}},
	}, ctx.Calls)
}

func TestUniformConstants(t *testing.T) {
	d, ctx := newTestDevice(t)
	p := Pipeline{id: gl.Program{V: 7}}
	d.BindUniformConstants(p, 2, []Constant{
		ConstantU32(9),
		ConstantF32(0.5),
		ConstantVec3{1, 2, 3},
		ConstantMat3x3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		ConstantMat4x4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {5, 6, 7, 1}},
	})
	assert.Equal(t, []gltest.Call{
		{Name: "ProgramUniform1ui", Args: []any{p.id, 2, uint32(9)}},
		{Name: "ProgramUniform1f", Args: []any{p.id, 3, float32(0.5)}},
		{Name: "ProgramUniform3f", Args: []any{p.id, 4, float32(1), float32(2), float32(3)}},
		{Name: "ProgramUniformMatrix3fv", Args: []any{p.id, 5, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}}},
		{Name: "ProgramUniformMatrix4fv", Args: []any{p.id, 6, []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 6, 7, 1}}},
	}, ctx.Calls)
}

func TestViewportAndScissor(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.SetViewport(1, []Viewport{
		{X: 0, Y: 0, W: 640, H: 480, N: 0, F: 1},
		{X: 10, Y: 20, W: 30, H: 40, N: 0.25, F: 0.75},
	})
	d.SetScissor(0, []Region{{X: 1, Y: 2, W: 3, H: 4}})
	assert.Equal(t, []gltest.Call{
		{Name: "ViewportArrayv", Args: []any{uint32(1), []float32{0, 0, 640, 480, 10, 20, 30, 40}}},
		{Name: "DepthRangeArrayv", Args: []any{uint32(1), []float64{0, 1, 0.25, 0.75}}},
		{Name: "ScissorArrayv", Args: []any{uint32(0), []int32{1, 2, 3, 4}}},
	}, ctx.Calls)
}

func TestPrimitiveEnums(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.TRIANGLE_STRIP_ADJACENCY), TriangleStripAdjacency.glEnum())
	assert.Equal(t, 2, IndexU16.Size())
	assert.Panics(t, func() { Primitive(99).glEnum() })
	assert.Panics(t, func() { IndexType(3).Size() })
}
