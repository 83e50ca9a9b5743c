// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// rgbaLayout is the layout of *image.RGBA pixels with the given
// stride.
func rgbaLayout(stride int) MemoryLayout {
	return MemoryLayout{
		BaseFormat:   BaseRGBA,
		FormatLayout: LayoutU8,
		RowLength:    uint32(stride / 4),
		Alignment:    4,
	}
}

// toRGBA returns img as an *image.RGBA with its origin at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// UploadImage converts img to 8-bit RGBA and uploads it to the first
// layer of level of dst. The rows of img are uploaded bottom up
// without flipping.
func (d *Device) UploadImage(dst Image, level uint32, img image.Image) error {
	rgba := toRGBA(img)
	size := rgba.Rect.Size()
	return d.CopyHostToImage(rgba.Pix, dst, HostImageCopy{
		HostLayout:       rgbaLayout(rgba.Stride),
		ImageSubresource: SubresourceLayers{Level: level, Layers: Range{0, 1}},
		ImageExtent:      Extent{Width: uint32(size.X), Height: uint32(size.Y), Depth: 1},
	})
}

// UploadImageMipmaps uploads img to the base level of dst and fills
// every other level with bilinear downscales of img.
func (d *Device) UploadImageMipmaps(dst Image, img image.Image) error {
	src := toRGBA(img)
	if err := d.UploadImage(dst, 0, src); err != nil {
		return err
	}
	size := src.Rect.Size()
	for level := uint32(1); level < dst.levels; level++ {
		size = image.Pt(max(size.X/2, 1), max(size.Y/2, 1))
		mip := image.NewRGBA(image.Rectangle{Max: size})
		draw.BiLinear.Scale(mip, mip.Rect, src, src.Rect, draw.Src, nil)
		if err := d.UploadImage(dst, level, mip); err != nil {
			return fmt.Errorf("grr: upload mip level %d: %w", level, err)
		}
		src = mip
	}
	return nil
}

// ReadAttachmentImage reads region of the read framebuffer. The
// returned image has its rows in top down order.
func (d *Device) ReadAttachmentImage(region Region) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(region.W), int(region.H)))
	d.CopyAttachmentToHost(region, rgbaLayout(img.Stride), img.Pix)
	flipRows(img)
	return img
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
