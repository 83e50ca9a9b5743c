// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/unsafe"
)

// Buffer is a linear block of device memory.
type Buffer struct {
	id    gl.Buffer
	size  int
	flags CreationFlags
}

// BufferRange is a byte range of a buffer.
type BufferRange struct {
	Buffer Buffer
	Offset int
	Size   int
}

// Size returns the size in bytes the buffer was created with.
func (b Buffer) Size() int {
	return b.size
}

// Flags returns the storage flags the buffer was created with.
func (b Buffer) Flags() CreationFlags {
	return b.flags
}

// CreateBuffer allocates an uninitialized buffer of size bytes.
func (d *Device) CreateBuffer(size int, memory MemoryFlags) (Buffer, error) {
	return d.createBuffer(size, nil, memory)
}

// CreateBufferFromHost allocates a buffer initialized with data.
func (d *Device) CreateBufferFromHost(data []byte, memory MemoryFlags) (Buffer, error) {
	return d.createBuffer(len(data), data, memory)
}

func (d *Device) createBuffer(size int, data []byte, memory MemoryFlags) (Buffer, error) {
	flags := memory.CreationFlags()
	buf := d.ctx.CreateBuffer()
	if err := d.getError(); err != nil {
		return Buffer{}, fmt.Errorf("grr: create buffer: %w", err)
	}
	d.ctx.NamedBufferStorage(buf, size, unsafe.DataPointer(data), gl.Enum(flags))
	if err := d.getError(); err != nil {
		d.ctx.DeleteBuffers([]gl.Buffer{buf})
		return Buffer{}, fmt.Errorf("grr: allocate %d byte buffer: %w", size, err)
	}
	return Buffer{id: buf, size: size, flags: flags}, nil
}

// MapBuffer maps length bytes of buf starting at offset. The access
// directions are those buf was created with.
func (d *Device) MapBuffer(buf Buffer, offset, length int, mapping MappingFlags) []byte {
	access := MappingAccess(buf.flags, mapping)
	p := d.ctx.MapNamedBufferRange(buf.id, offset, length, gl.Enum(access))
	return unsafe.SliceOf[byte](p, length)
}

// MapBufferAs maps length bytes of buf starting at offset as a slice
// of T. It panics if length is not a multiple of the size of T.
func MapBufferAs[T any](d *Device, buf Buffer, offset, length int, mapping MappingFlags) []T {
	stride := unsafe.SizeOf[T]()
	if stride == 0 || length%stride != 0 {
		panic(fmt.Sprintf("grr: mapping length %d is not a multiple of the element size %d", length, stride))
	}
	access := MappingAccess(buf.flags, mapping)
	p := d.ctx.MapNamedBufferRange(buf.id, offset, length, gl.Enum(access))
	return unsafe.SliceOf[T](p, length/stride)
}

// UnmapBuffer ends the mapping of buf. It returns false if the buffer
// contents were corrupted while mapped.
func (d *Device) UnmapBuffer(buf Buffer) bool {
	return d.ctx.UnmapNamedBuffer(buf.id)
}

// FlushMappedBufferRange makes host writes to a mapped range visible.
func (d *Device) FlushMappedBufferRange(buf Buffer, offset, length int) {
	d.ctx.FlushMappedNamedBufferRange(buf.id, offset, length)
}

// CopyHostToBuffer updates buffer contents. The buffer must have been
// created with MemoryDynamic.
func (d *Device) CopyHostToBuffer(buf Buffer, offset int, data []byte) {
	d.ctx.NamedBufferSubData(buf.id, offset, data)
}

// DeleteBuffer deletes buf.
func (d *Device) DeleteBuffer(buf Buffer) {
	d.DeleteBuffers([]Buffer{buf})
}

// DeleteBuffers deletes bufs in a single call.
func (d *Device) DeleteBuffers(bufs []Buffer) {
	ids := make([]gl.Buffer, len(bufs))
	for i, b := range bufs {
		ids[i] = b.id
	}
	d.ctx.DeleteBuffers(ids)
}

// BindUniformBuffers binds ranges to consecutive uniform buffer
// indices starting at first.
func (d *Device) BindUniformBuffers(first uint32, ranges []BufferRange) {
	d.bindBufferRanges(gl.UNIFORM_BUFFER, first, ranges)
}

// BindStorageBuffers binds ranges to consecutive shader storage
// buffer indices starting at first.
func (d *Device) BindStorageBuffers(first uint32, ranges []BufferRange) {
	d.bindBufferRanges(gl.SHADER_STORAGE_BUFFER, first, ranges)
}

func (d *Device) bindBufferRanges(target gl.Enum, first uint32, ranges []BufferRange) {
	bufs := make([]gl.Buffer, len(ranges))
	offsets := make([]int, len(ranges))
	sizes := make([]int, len(ranges))
	for i, r := range ranges {
		bufs[i] = r.Buffer.id
		offsets[i] = r.Offset
		sizes[i] = r.Size
	}
	d.ctx.BindBuffersRange(target, first, bufs, offsets, sizes)
}

// BindDrawIndirectBuffer sets the source of indirect draw commands.
func (d *Device) BindDrawIndirectBuffer(buf Buffer) {
	d.ctx.BindBuffer(gl.DRAW_INDIRECT_BUFFER, buf.id)
}

// UnbindDrawIndirectBuffer clears the indirect draw binding.
func (d *Device) UnbindDrawIndirectBuffer() {
	d.ctx.BindBuffer(gl.DRAW_INDIRECT_BUFFER, gl.Buffer{})
}

// BindDispatchIndirectBuffer sets the source of indirect dispatches.
func (d *Device) BindDispatchIndirectBuffer(buf Buffer) {
	d.ctx.BindBuffer(gl.DISPATCH_INDIRECT_BUFFER, buf.id)
}

// UnbindDispatchIndirectBuffer clears the indirect dispatch binding.
func (d *Device) UnbindDispatchIndirectBuffer() {
	d.ctx.BindBuffer(gl.DISPATCH_INDIRECT_BUFFER, gl.Buffer{})
}

// BindParameterBuffer sets the source of indirect draw counts.
func (d *Device) BindParameterBuffer(buf Buffer) {
	d.ctx.BindBuffer(gl.PARAMETER_BUFFER, buf.id)
}

func (d *Device) bindPixelUnpackBuffer(buf Buffer) {
	d.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, buf.id)
}

func (d *Device) unbindPixelUnpackBuffer() {
	d.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, gl.Buffer{})
}

func (d *Device) bindPixelPackBuffer(buf Buffer) {
	d.ctx.BindBuffer(gl.PIXEL_PACK_BUFFER, buf.id)
}

func (d *Device) unbindPixelPackBuffer() {
	d.ctx.BindBuffer(gl.PIXEL_PACK_BUFFER, gl.Buffer{})
}

func (d *Device) bufferSize(buf Buffer) int {
	return int(d.ctx.GetNamedBufferParameteri64(buf.id, gl.BUFFER_SIZE))
}
