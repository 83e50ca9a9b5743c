// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"gioui.org/grr/internal/gl"
)

// Barrier is a set of memory access types made visible by
// MemoryBarrier.
type Barrier uint32

const (
	BarrierVertexAttributeRead    Barrier = gl.VERTEX_ATTRIB_ARRAY_BARRIER_BIT
	BarrierIndexRead              Barrier = gl.ELEMENT_ARRAY_BARRIER_BIT
	BarrierUniformRead            Barrier = gl.UNIFORM_BARRIER_BIT
	BarrierSampledImageRead       Barrier = gl.TEXTURE_FETCH_BARRIER_BIT
	BarrierStorageImageRW         Barrier = gl.SHADER_IMAGE_ACCESS_BARRIER_BIT
	BarrierIndirectCommandRead    Barrier = gl.COMMAND_BARRIER_BIT
	BarrierBufferImageTransferRW  Barrier = gl.PIXEL_BUFFER_BARRIER_BIT
	BarrierImageTransferRW        Barrier = gl.TEXTURE_UPDATE_BARRIER_BIT
	BarrierBufferTransferRW       Barrier = gl.BUFFER_UPDATE_BARRIER_BIT
	BarrierFramebufferRW          Barrier = gl.FRAMEBUFFER_BARRIER_BIT
	BarrierTransformFeedbackWrite Barrier = gl.TRANSFORM_FEEDBACK_BARRIER_BIT
	BarrierAtomicCounterRW        Barrier = gl.ATOMIC_COUNTER_BARRIER_BIT
	BarrierStorageBufferRW        Barrier = gl.SHADER_STORAGE_BARRIER_BIT
	// BarrierInputAttachmentRead orders reads of texels that earlier
	// draws wrote through a framebuffer attachment.
	BarrierInputAttachmentRead Barrier = 0x80000000

	BarrierAll Barrier = gl.ALL_BARRIER_BITS
)

// RegionBarrier is the subset of Barrier valid for by-region
// barriers.
type RegionBarrier uint32

const (
	RegionBarrierUniformRead      RegionBarrier = gl.UNIFORM_BARRIER_BIT
	RegionBarrierSampledImageRead RegionBarrier = gl.TEXTURE_FETCH_BARRIER_BIT
	RegionBarrierStorageImageRW   RegionBarrier = gl.SHADER_IMAGE_ACCESS_BARRIER_BIT
	RegionBarrierStorageBufferRW  RegionBarrier = gl.SHADER_STORAGE_BARRIER_BIT
	RegionBarrierFramebufferRW    RegionBarrier = gl.FRAMEBUFFER_BARRIER_BIT
	RegionBarrierAtomicCounterRW  RegionBarrier = gl.ATOMIC_COUNTER_BARRIER_BIT
)

var barrierNames = []flagName[Barrier]{
	{BarrierVertexAttributeRead, "VertexAttributeRead"},
	{BarrierIndexRead, "IndexRead"},
	{BarrierUniformRead, "UniformRead"},
	{BarrierSampledImageRead, "SampledImageRead"},
	{BarrierStorageImageRW, "StorageImageRW"},
	{BarrierIndirectCommandRead, "IndirectCommandRead"},
	{BarrierBufferImageTransferRW, "BufferImageTransferRW"},
	{BarrierImageTransferRW, "ImageTransferRW"},
	{BarrierBufferTransferRW, "BufferTransferRW"},
	{BarrierFramebufferRW, "FramebufferRW"},
	{BarrierTransformFeedbackWrite, "TransformFeedbackWrite"},
	{BarrierAtomicCounterRW, "AtomicCounterRW"},
	{BarrierStorageBufferRW, "StorageBufferRW"},
	{BarrierInputAttachmentRead, "InputAttachmentRead"},
}

func (b Barrier) String() string {
	return flagString(b, barrierNames)
}

// MemoryBarrier orders the memory accesses in flags of earlier
// commands before those of later commands.
func (d *Device) MemoryBarrier(flags Barrier) {
	if flags&BarrierInputAttachmentRead != 0 {
		d.ctx.TextureBarrier()
	}
	flags &^= BarrierInputAttachmentRead
	if flags == 0 {
		return
	}
	d.ctx.MemoryBarrier(gl.Enum(flags))
}

// MemoryBarrierByRegion is like MemoryBarrier, limited to accesses
// by fragments of the same framebuffer region.
func (d *Device) MemoryBarrierByRegion(flags RegionBarrier) {
	d.ctx.MemoryBarrierByRegion(gl.Enum(flags))
}
