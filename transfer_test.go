// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

var rgba8Layout = MemoryLayout{BaseFormat: BaseRGBA, FormatLayout: LayoutU8}

func testImage(target Target) Image {
	return Image{id: gl.Texture{V: 50}, target: target, format: R8G8B8A8Unorm, levels: 1}
}

func TestCopyHostToImage(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(Target2D)
	data := make([]byte, 4*4*4)
	err := d.CopyHostToImage(data, img, HostImageCopy{
		HostLayout:       MemoryLayout{BaseFormat: BaseRGBA, FormatLayout: LayoutU8, RowLength: 8, Alignment: 1},
		ImageSubresource: SubresourceLayers{Level: 2, Layers: Range{0, 1}},
		ImageOffset:      Offset{X: 1, Y: 2},
		ImageExtent:      Extent{4, 4, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []gltest.Call{
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.PIXEL_UNPACK_BUFFER), gl.Buffer{}}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.UNPACK_ALIGNMENT), 1}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.UNPACK_IMAGE_HEIGHT), 0}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.UNPACK_ROW_LENGTH), 8}},
		{Name: "TextureSubImage2D", Args: []any{img.id, 2, 1, 2, 4, 4,
			gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), uintptr(unsafe.Pointer(&data[0]))}},
	}, ctx.Calls)
}

func TestCopyToImageTargets(t *testing.T) {
	tests := []struct {
		target Target
		layers Range
		name   string
		args   []any
	}{
		{Target1D, Range{0, 1}, "TextureSubImage1D", []any{0, 3, 16}},
		{Target1DArray, Range{2, 5}, "TextureSubImage2D", []any{0, 3, 2, 16, 3}},
		{Target2D, Range{0, 0}, "TextureSubImage2D", []any{0, 3, 4, 16, 8}},
		{Target2DArray, Range{1, 3}, "TextureSubImage3D", []any{0, 3, 4, 1, 16, 8, 2}},
		{Target3D, Range{0, 1}, "TextureSubImage3D", []any{0, 3, 4, 5, 16, 8, 2}},
		{TargetCube, Range{0, 6}, "TextureSubImage3D", []any{0, 3, 4, 0, 16, 8, 6}},
		{TargetCubeArray, Range{6, 12}, "TextureSubImage3D", []any{0, 3, 4, 6, 16, 8, 6}},
	}
	for _, test := range tests {
		d, ctx := newTestDevice(t)
		img := testImage(test.target)
		err := d.CopyBufferToImage(Buffer{id: gl.Buffer{V: 9}}, img, BufferImageCopy{
			BufferOffset:     256,
			BufferLayout:     rgba8Layout,
			ImageSubresource: SubresourceLayers{Layers: test.layers},
			ImageOffset:      Offset{3, 4, 5},
			ImageExtent:      Extent{16, 8, 2},
		})
		require.NoError(t, err, test.target.String())
		call, ok := ctx.Last(test.name)
		require.True(t, ok, test.target.String())
		args := append([]any{img.id}, test.args...)
		args = append(args, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), uintptr(256))
		assert.Equal(t, args, call.Args, test.target.String())

		// The unpack buffer is released after the upload.
		last := ctx.Calls[len(ctx.Calls)-1]
		assert.Equal(t, gltest.Call{Name: "BindBuffer", Args: []any{gl.Enum(gl.PIXEL_UNPACK_BUFFER), gl.Buffer{}}}, last)
	}
}

func TestUnsupportedTransfers(t *testing.T) {
	d, ctx := newTestDevice(t)
	for _, c := range []struct {
		target Target
		layers Range
	}{
		{Target1D, Range{1, 2}},
		{Target2D, Range{0, 2}},
		{Target3D, Range{2, 3}},
		{Target2DMultisample, Range{0, 1}},
		{Target2DMultisampleArray, Range{0, 2}},
	} {
		err := d.CopyHostToImage(nil, testImage(c.target), HostImageCopy{
			HostLayout:       rgba8Layout,
			ImageSubresource: SubresourceLayers{Layers: c.layers},
			ImageExtent:      Extent{1, 1, 1},
		})
		assert.ErrorIs(t, err, ErrUnsupportedTransfer, c.target.String())
	}

	ctx.Reset()
	err := d.CopyImageToHost(testImage(Target2DMultisample), make([]byte, 16), HostImageCopy{HostLayout: rgba8Layout})
	assert.ErrorIs(t, err, ErrUnsupportedTransfer)
	assert.Empty(t, ctx.Calls)
}

func TestCopyCubeFaceToHost(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(TargetCube)
	err := d.CopyImageToHost(img, make([]byte, 4*4*4), HostImageCopy{
		HostLayout:       rgba8Layout,
		ImageSubresource: SubresourceLayers{Layers: Range{4, 5}},
		ImageExtent:      Extent{4, 4, 1},
	})
	require.NoError(t, err)
	call, ok := ctx.Last("GetTextureSubImage")
	require.True(t, ok)
	assert.Equal(t, []any{img.id, 0, 0, 0, 4, 4, 4, 1}, call.Args[:8])
}

func TestCopyImageToHost(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(Target2DArray)
	dst := make([]byte, 2*2*3*4)
	err := d.CopyImageToHost(img, dst, HostImageCopy{
		HostLayout:       MemoryLayout{BaseFormat: BaseRGBA, FormatLayout: LayoutU8, Alignment: 8},
		ImageSubresource: SubresourceLayers{Level: 1, Layers: Range{2, 5}},
		ImageOffset:      Offset{X: 6, Y: 7},
		ImageExtent:      Extent{2, 2, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []gltest.Call{
		{Name: "BindBuffer", Args: []any{gl.Enum(gl.PIXEL_PACK_BUFFER), gl.Buffer{}}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.PACK_ALIGNMENT), 8}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.PACK_IMAGE_HEIGHT), 0}},
		{Name: "PixelStorei", Args: []any{gl.Enum(gl.PACK_ROW_LENGTH), 0}},
		{Name: "GetTextureSubImage", Args: []any{img.id, 1, 6, 7, 2, 2, 2, 3,
			gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), len(dst), uintptr(unsafe.Pointer(&dst[0]))}},
	}, ctx.Calls)
}

func TestCopyImageToBuffer(t *testing.T) {
	d, ctx := newTestDevice(t)
	buf, err := d.CreateBuffer(1024, MemoryDeviceLocal)
	require.NoError(t, err)
	ctx.Reset()
	img := testImage(Target3D)
	err = d.CopyImageToBuffer(img, buf, BufferImageCopy{
		BufferOffset: 24,
		BufferLayout: MemoryLayout{BaseFormat: BaseR, FormatLayout: LayoutF32},
		ImageOffset:  Offset{1, 2, 3},
		ImageExtent:  Extent{4, 4, 4},
	})
	require.NoError(t, err)
	call, ok := ctx.Last("GetTextureSubImage")
	require.True(t, ok)
	assert.Equal(t, []any{img.id, 0, 1, 2, 3, 4, 4, 4,
		gl.Enum(gl.RED), gl.Enum(gl.FLOAT), 1000, uintptr(24)}, call.Args)
	assert.Equal(t, gltest.Call{Name: "BindBuffer", Args: []any{gl.Enum(gl.PIXEL_PACK_BUFFER), buf.id}}, ctx.Calls[0])
	assert.Equal(t, gltest.Call{Name: "BindBuffer", Args: []any{gl.Enum(gl.PIXEL_PACK_BUFFER), gl.Buffer{}}}, ctx.Calls[len(ctx.Calls)-1])
}

func TestCopyAttachment(t *testing.T) {
	d, ctx := newTestDevice(t)
	dst := make([]byte, 64)
	d.CopyAttachmentToHost(Region{X: 1, Y: 2, W: 4, H: 4}, rgba8Layout, dst)
	call, ok := ctx.Last("ReadnPixels")
	require.True(t, ok)
	assert.Equal(t, []any{1, 2, 4, 4, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), 64, uintptr(unsafe.Pointer(&dst[0]))}, call.Args)

	ctx.Reset()
	buf := Buffer{id: gl.Buffer{V: 3}}
	d.CopyAttachmentToBuffer(Region{W: 2, H: 2}, rgba8Layout, BufferRange{Buffer: buf, Offset: 32, Size: 16})
	call, _ = ctx.Last("ReadnPixels")
	assert.Equal(t, []any{0, 0, 2, 2, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), 16, uintptr(32)}, call.Args)
	assert.Equal(t, "BindBuffer", ctx.Calls[0].Name)
}

func TestCopyImage(t *testing.T) {
	d, ctx := newTestDevice(t)
	src := testImage(Target2DArray)
	dst := Image{id: gl.Texture{V: 51}, target: Target2D}
	err := d.CopyImage(src, dst, ImageCopy{
		SrcSubresource: SubresourceLayers{Level: 1, Layers: Range{3, 4}},
		SrcOffset:      Offset{X: 8},
		DstSubresource: SubresourceLayers{Layers: Range{0, 1}},
		DstOffset:      Offset{Y: 2},
		Extent:         Extent{16, 16, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []gltest.Call{{Name: "CopyImageSubData", Args: []any{
		src.id, gl.Enum(gl.TEXTURE_2D_ARRAY), 1, 8, 0, 3,
		dst.id, gl.Enum(gl.TEXTURE_2D), 0, 0, 2, 0,
		16, 16, 1,
	}}}, ctx.Calls)
}

func TestBufferTransfers(t *testing.T) {
	d, ctx := newTestDevice(t)
	a := Buffer{id: gl.Buffer{V: 1}}
	b := Buffer{id: gl.Buffer{V: 2}}
	d.CopyBuffer(a, 16, b, 32, 64)
	d.FillBuffer(BufferRange{Buffer: b, Offset: 0, Size: 128}, R32Uint, BaseR, LayoutU32, []byte{0xff, 0, 0, 0})
	assert.Equal(t, []gltest.Call{
		{Name: "CopyNamedBufferSubData", Args: []any{a.id, b.id, 16, 32, 64}},
		{Name: "ClearNamedBufferSubData", Args: []any{b.id, gl.Enum(gl.R32UI), 0, 128,
			gl.Enum(gl.RED), gl.Enum(gl.UNSIGNED_INT), []byte{0xff, 0, 0, 0}}},
	}, ctx.Calls)
}
