// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"
	stdunsafe "unsafe"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/unsafe"
)

// MemoryLayout is the byte layout of pixel data in host memory or in
// a buffer.
type MemoryLayout struct {
	BaseFormat   BaseFormat
	FormatLayout FormatLayout
	// RowLength is the number of pixels per row. Zero means rows are
	// as wide as the transferred region.
	RowLength uint32
	// ImageHeight is the number of rows per image of a layered or 3D
	// region. Zero means the region height.
	ImageHeight uint32
	// Alignment is the row alignment in bytes: 1, 2, 4 or 8.
	Alignment uint32
}

// SubresourceLayers selects a mip level and a range of array layers.
type SubresourceLayers struct {
	Level  uint32
	Layers Range
}

// Offset is a texel position.
type Offset struct {
	X, Y, Z int32
}

// Extent is a size in texels.
type Extent struct {
	Width, Height, Depth uint32
}

// HostImageCopy describes a transfer between host memory and an
// image.
type HostImageCopy struct {
	HostLayout       MemoryLayout
	ImageSubresource SubresourceLayers
	ImageOffset      Offset
	ImageExtent      Extent
}

// BufferImageCopy describes a transfer between a buffer and an image.
type BufferImageCopy struct {
	BufferOffset     int
	BufferLayout     MemoryLayout
	ImageSubresource SubresourceLayers
	ImageOffset      Offset
	ImageExtent      Extent
}

// ImageCopy describes a copy between two images.
type ImageCopy struct {
	SrcSubresource SubresourceLayers
	SrcOffset      Offset
	DstSubresource SubresourceLayers
	DstOffset      Offset
	Extent         Extent
}

func (d *Device) setUnpackParams(l MemoryLayout) {
	d.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, int(l.alignment()))
	d.ctx.PixelStorei(gl.UNPACK_IMAGE_HEIGHT, int(l.ImageHeight))
	d.ctx.PixelStorei(gl.UNPACK_ROW_LENGTH, int(l.RowLength))
}

func (d *Device) setPackParams(l MemoryLayout) {
	d.ctx.PixelStorei(gl.PACK_ALIGNMENT, int(l.alignment()))
	d.ctx.PixelStorei(gl.PACK_IMAGE_HEIGHT, int(l.ImageHeight))
	d.ctx.PixelStorei(gl.PACK_ROW_LENGTH, int(l.RowLength))
}

func (l MemoryLayout) alignment() uint32 {
	if l.Alignment == 0 {
		return 4
	}
	return l.Alignment
}

// CopyHostToImage uploads data to a region of image.
func (d *Device) CopyHostToImage(data []byte, image Image, region HostImageCopy) error {
	d.unbindPixelUnpackBuffer()
	d.setUnpackParams(region.HostLayout)
	return d.copyToImage(image, region.ImageSubresource, region.ImageOffset, region.ImageExtent,
		region.HostLayout, unsafe.DataPointer(data))
}

// CopyBufferToImage uploads buffer contents to a region of image.
func (d *Device) CopyBufferToImage(buf Buffer, image Image, region BufferImageCopy) error {
	d.bindPixelUnpackBuffer(buf)
	defer d.unbindPixelUnpackBuffer()
	d.setUnpackParams(region.BufferLayout)
	return d.copyToImage(image, region.ImageSubresource, region.ImageOffset, region.ImageExtent,
		region.BufferLayout, unsafe.Offset(region.BufferOffset))
}

func (d *Device) copyToImage(image Image, sub SubresourceLayers, off Offset, ext Extent, layout MemoryLayout, pixels stdunsafe.Pointer) error {
	format, typ := layout.BaseFormat.glEnum(), layout.FormatLayout.glEnum()
	level := int(sub.Level)
	single := sub.Layers.Start == 0 && sub.Layers.End <= 1
	switch image.target {
	case Target1D:
		if !single {
			break
		}
		d.ctx.TextureSubImage1D(image.id, level, int(off.X), int(ext.Width), format, typ, pixels)
		return nil
	case Target1DArray:
		d.ctx.TextureSubImage2D(image.id, level, int(off.X), int(sub.Layers.Start),
			int(ext.Width), int(sub.Layers.Len()), format, typ, pixels)
		return nil
	case Target2D:
		if !single {
			break
		}
		d.ctx.TextureSubImage2D(image.id, level, int(off.X), int(off.Y),
			int(ext.Width), int(ext.Height), format, typ, pixels)
		return nil
	case Target2DArray, TargetCube, TargetCubeArray:
		// Cube faces are addressed as layers.
		d.ctx.TextureSubImage3D(image.id, level, int(off.X), int(off.Y), int(sub.Layers.Start),
			int(ext.Width), int(ext.Height), int(sub.Layers.Len()), format, typ, pixels)
		return nil
	case Target3D:
		if !single {
			break
		}
		d.ctx.TextureSubImage3D(image.id, level, int(off.X), int(off.Y), int(off.Z),
			int(ext.Width), int(ext.Height), int(ext.Depth), format, typ, pixels)
		return nil
	}
	return fmt.Errorf("%w: upload to %v image layers [%d, %d)", ErrUnsupportedTransfer,
		image.target, sub.Layers.Start, sub.Layers.End)
}

// subresourceRegion maps a region of the layers of image to a texel
// region in the coordinate space of its target.
func subresourceRegion(image Image, sub SubresourceLayers, off Offset, ext Extent) (Offset, Extent, error) {
	switch image.target {
	case Target1D:
		return Offset{X: off.X}, Extent{ext.Width, 1, 1}, nil
	case Target1DArray:
		return Offset{X: off.X, Y: int32(sub.Layers.Start)}, Extent{ext.Width, sub.Layers.Len(), 1}, nil
	case Target2D:
		return Offset{X: off.X, Y: off.Y}, Extent{ext.Width, ext.Height, 1}, nil
	case Target2DArray, TargetCube, TargetCubeArray:
		return Offset{off.X, off.Y, int32(sub.Layers.Start)}, Extent{ext.Width, ext.Height, sub.Layers.Len()}, nil
	case Target3D:
		return off, ext, nil
	default:
		return Offset{}, Extent{}, fmt.Errorf("%w: %v image region", ErrUnsupportedTransfer, image.target)
	}
}

// CopyImageToHost downloads a region of image into dst.
func (d *Device) CopyImageToHost(image Image, dst []byte, region HostImageCopy) error {
	off, ext, err := subresourceRegion(image, region.ImageSubresource, region.ImageOffset, region.ImageExtent)
	if err != nil {
		return err
	}
	d.unbindPixelPackBuffer()
	d.setPackParams(region.HostLayout)
	d.getImage(image, region.ImageSubresource.Level, off, ext, region.HostLayout, len(dst), unsafe.DataPointer(dst))
	return nil
}

// CopyImageToBuffer downloads a region of image into buf.
func (d *Device) CopyImageToBuffer(image Image, buf Buffer, region BufferImageCopy) error {
	off, ext, err := subresourceRegion(image, region.ImageSubresource, region.ImageOffset, region.ImageExtent)
	if err != nil {
		return err
	}
	d.bindPixelPackBuffer(buf)
	defer d.unbindPixelPackBuffer()
	d.setPackParams(region.BufferLayout)
	size := d.bufferSize(buf) - region.BufferOffset
	d.getImage(image, region.ImageSubresource.Level, off, ext, region.BufferLayout, size, unsafe.Offset(region.BufferOffset))
	return nil
}

func (d *Device) getImage(image Image, level uint32, off Offset, ext Extent, layout MemoryLayout, size int, pixels stdunsafe.Pointer) {
	d.ctx.GetTextureSubImage(image.id, int(level),
		int(off.X), int(off.Y), int(off.Z),
		int(ext.Width), int(ext.Height), int(ext.Depth),
		layout.BaseFormat.glEnum(), layout.FormatLayout.glEnum(), size, pixels)
}

// CopyAttachmentToHost reads a region of the read framebuffer into
// dst.
func (d *Device) CopyAttachmentToHost(region Region, layout MemoryLayout, dst []byte) {
	d.unbindPixelPackBuffer()
	d.setPackParams(layout)
	d.ctx.ReadnPixels(int(region.X), int(region.Y), int(region.W), int(region.H),
		layout.BaseFormat.glEnum(), layout.FormatLayout.glEnum(), len(dst), unsafe.DataPointer(dst))
}

// CopyAttachmentToBuffer reads a region of the read framebuffer into
// a buffer range.
func (d *Device) CopyAttachmentToBuffer(region Region, layout MemoryLayout, dst BufferRange) {
	d.bindPixelPackBuffer(dst.Buffer)
	defer d.unbindPixelPackBuffer()
	d.setPackParams(layout)
	d.ctx.ReadnPixels(int(region.X), int(region.Y), int(region.W), int(region.H),
		layout.BaseFormat.glEnum(), layout.FormatLayout.glEnum(), dst.Size, unsafe.Offset(dst.Offset))
}

// CopyImage copies texels between two images of compatible formats.
func (d *Device) CopyImage(src, dst Image, region ImageCopy) error {
	srcOff, _, err := subresourceRegion(src, region.SrcSubresource, region.SrcOffset, region.Extent)
	if err != nil {
		return err
	}
	dstOff, ext, err := subresourceRegion(dst, region.DstSubresource, region.DstOffset, region.Extent)
	if err != nil {
		return err
	}
	d.ctx.CopyImageSubData(
		src.id, src.target.glEnum(), int(region.SrcSubresource.Level), int(srcOff.X), int(srcOff.Y), int(srcOff.Z),
		dst.id, dst.target.glEnum(), int(region.DstSubresource.Level), int(dstOff.X), int(dstOff.Y), int(dstOff.Z),
		int(ext.Width), int(ext.Height), int(ext.Depth),
	)
	return nil
}

// CopyBuffer copies size bytes between buffers.
func (d *Device) CopyBuffer(src Buffer, srcOffset int, dst Buffer, dstOffset int, size int) {
	d.ctx.CopyNamedBufferSubData(src.id, dst.id, srcOffset, dstOffset, size)
}

// FillBuffer fills a buffer range with value, converted from the
// base format and layout to format.
func (d *Device) FillBuffer(r BufferRange, format Format, base BaseFormat, layout FormatLayout, value []byte) {
	d.ctx.ClearNamedBufferSubData(r.Buffer.id, format.glEnum(), r.Offset, r.Size, base.glEnum(), layout.glEnum(), value)
}
