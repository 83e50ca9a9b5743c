// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
)

func TestFlipRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	flipRows(img)
	for y := 0; y < 3; y++ {
		assert.Equal(t, uint8(2-y), img.RGBAAt(0, y).R)
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, toRGBA(src))

	gray := image.NewGray(image.Rect(2, 2, 5, 4))
	gray.SetGray(2, 2, color.Gray{Y: 200})
	rgba := toRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Rect)
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, rgba.RGBAAt(0, 0))
}

func TestUploadImage(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(Target2D)
	src := image.NewNRGBA(image.Rect(0, 0, 6, 2))
	require.NoError(t, d.UploadImage(img, 0, src))
	stores := ctx.Find("PixelStorei")
	require.Len(t, stores, 3)
	assert.Equal(t, []any{gl.Enum(gl.UNPACK_ALIGNMENT), 4}, stores[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.UNPACK_ROW_LENGTH), 6}, stores[2].Args)
	call, ok := ctx.Last("TextureSubImage2D")
	require.True(t, ok)
	assert.Equal(t, []any{0, 0, 0, 6, 2, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE)}, call.Args[1:8])
}

func TestUploadImageMipmaps(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(Target2D)
	img.levels = 4
	require.NoError(t, d.UploadImageMipmaps(img, image.NewRGBA(image.Rect(0, 0, 16, 4))))
	var sizes [][2]any
	for i, c := range ctx.Find("TextureSubImage2D") {
		assert.Equal(t, i, c.Args[1])
		sizes = append(sizes, [2]any{c.Args[4], c.Args[5]})
	}
	assert.Equal(t, [][2]any{{16, 4}, {8, 2}, {4, 1}, {2, 1}}, sizes)
}

func TestUploadImageUnsupported(t *testing.T) {
	d, _ := newTestDevice(t)
	err := d.UploadImage(testImage(Target2DMultisample), 0, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	assert.ErrorIs(t, err, ErrUnsupportedTransfer)
}

func TestUploadImageCube(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := testImage(TargetCube)
	require.NoError(t, d.UploadImage(img, 0, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	call, ok := ctx.Last("TextureSubImage3D")
	require.True(t, ok)
	assert.Equal(t, []any{img.id, 0, 0, 0, 0, 4, 4, 1}, call.Args[:8])
}

func TestReadAttachmentImage(t *testing.T) {
	d, ctx := newTestDevice(t)
	img := d.ReadAttachmentImage(Region{X: 4, Y: 8, W: 10, H: 5})
	assert.Equal(t, image.Rect(0, 0, 10, 5), img.Rect)
	call, ok := ctx.Last("ReadnPixels")
	require.True(t, ok)
	assert.Equal(t, []any{4, 8, 10, 5, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), len(img.Pix)}, call.Args[:7])
}
