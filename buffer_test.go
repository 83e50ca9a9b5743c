// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func TestCreateBuffer(t *testing.T) {
	d, ctx := newTestDevice(t)
	buf, err := d.CreateBuffer(256, MemoryDeviceLocal|MemoryDynamic)
	require.NoError(t, err)
	assert.Equal(t, 256, buf.Size())
	assert.Equal(t, CreationFlags(gl.DYNAMIC_STORAGE_BIT), buf.Flags())
	assert.Equal(t, []gltest.Call{
		{Name: "CreateBuffer", Args: []any{buf.id}},
		{Name: "NamedBufferStorage", Args: []any{buf.id, 256, false, gl.Enum(gl.DYNAMIC_STORAGE_BIT)}},
	}, ctx.Calls)
}

func TestCreateBufferFromHost(t *testing.T) {
	d, ctx := newTestDevice(t)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf, err := d.CreateBufferFromHost(data, MemoryDeviceLocal)
	require.NoError(t, err)
	call, ok := ctx.Last("NamedBufferStorage")
	require.True(t, ok)
	assert.Equal(t, []any{buf.id, 8, true, gl.Enum(0)}, call.Args)
	assert.Equal(t, data, ctx.Storage(buf.id))
}

func TestCreateBufferError(t *testing.T) {
	d, ctx := newTestDevice(t)
	ctx.Errors = []gl.Enum{gl.NO_ERROR, gl.OUT_OF_MEMORY}
	_, err := d.CreateBuffer(1<<10, MemoryDeviceLocal)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, []string{"CreateBuffer", "NamedBufferStorage", "DeleteBuffers"}, ctx.Names())
}

func TestMapBuffer(t *testing.T) {
	d, ctx := newTestDevice(t)
	buf, err := d.CreateBuffer(64, MemoryCPUMapWrite|MemoryCoherent)
	require.NoError(t, err)
	ctx.Reset()

	mem := d.MapBuffer(buf, 16, 32, MappingUnsynchronized)
	require.Len(t, mem, 32)
	for i := range mem {
		mem[i] = byte(i)
	}
	assert.True(t, d.UnmapBuffer(buf))
	assert.Equal(t, byte(31), ctx.Storage(buf.id)[47])

	want := gl.Enum(gl.MAP_WRITE_BIT | gl.MAP_COHERENT_BIT | gl.MAP_PERSISTENT_BIT | gl.MAP_UNSYNCHRONIZED_BIT)
	assert.Equal(t, []gltest.Call{
		{Name: "MapNamedBufferRange", Args: []any{buf.id, 16, 32, want}},
		{Name: "UnmapNamedBuffer", Args: []any{buf.id}},
	}, ctx.Calls)
}

func TestMapBufferAs(t *testing.T) {
	d, _ := newTestDevice(t)
	buf, err := d.CreateBuffer(64, MemoryCPUMapRead|MemoryCPUMapWrite)
	require.NoError(t, err)

	words := MapBufferAs[uint32](d, buf, 0, 64, 0)
	assert.Len(t, words, 16)
	cmds := MapBufferAs[DrawIndirectCmd](d, buf, 0, 48, 0)
	assert.Len(t, cmds, 3)

	assert.Panics(t, func() { MapBufferAs[uint32](d, buf, 0, 6, 0) })
	assert.Panics(t, func() { MapBufferAs[struct{}](d, buf, 0, 8, 0) })
}

func TestBufferUpdates(t *testing.T) {
	d, ctx := newTestDevice(t)
	buf, err := d.CreateBuffer(16, MemoryDeviceLocal|MemoryDynamic)
	require.NoError(t, err)
	ctx.Reset()

	d.CopyHostToBuffer(buf, 4, []byte{9, 9})
	d.FlushMappedBufferRange(buf, 0, 8)
	d.DeleteBuffers([]Buffer{buf})
	assert.Equal(t, []gltest.Call{
		{Name: "NamedBufferSubData", Args: []any{buf.id, 4, 2}},
		{Name: "FlushMappedNamedBufferRange", Args: []any{buf.id, 0, 8}},
		{Name: "DeleteBuffers", Args: []any{[]gl.Buffer{buf.id}}},
	}, ctx.Calls)
}

func TestBindBufferRanges(t *testing.T) {
	d, ctx := newTestDevice(t)
	a := Buffer{id: gl.Buffer{V: 4}, size: 512}
	b := Buffer{id: gl.Buffer{V: 7}, size: 256}
	d.BindUniformBuffers(1, []BufferRange{{Buffer: a, Offset: 0, Size: 256}, {Buffer: a, Offset: 256, Size: 256}})
	d.BindStorageBuffers(0, []BufferRange{{Buffer: b, Offset: 64, Size: 128}})
	d.BindDrawIndirectBuffer(b)
	d.UnbindDrawIndirectBuffer()
	d.BindDispatchIndirectBuffer(a)
	d.BindParameterBuffer(b)
	assert.Equal(t, []gltest.Call{
		{Name: "BindBuffersRange", Args: []any{gl.Enum(gl.UNIFORM_BUFFER), uint32(1), []gl.Buffer{a.id, a.id}, []int{0, 256}, []int{256, 256}}},
		{Name: "BindBuffersRange", Args: []any{gl.Enum(gl.SHADER_STORAGE_BUFFER), uint32(0), []gl.Buffer{b.id}, []int{64}, []int{128}}},
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.DRAW_INDIRECT_BUFFER), b.id}},
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.DRAW_INDIRECT_BUFFER), gl.Buffer{}}},
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.DISPATCH_INDIRECT_BUFFER), a.id}},
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.PARAMETER_BUFFER), b.id}},
	}, ctx.Calls)
}
