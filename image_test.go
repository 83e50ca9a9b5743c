// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func TestImageTarget(t *testing.T) {
	tests := []struct {
		typ  ImageType
		want Target
	}{
		{Image1D(64, 1), Target1D},
		{Image1D(64, 0), Target1D},
		{Image1D(64, 4), Target1DArray},
		{Image2D(8, 8, 1, 1), Target2D},
		{Image2D(8, 8, 0, 0), Target2D},
		{Image2D(8, 8, 6, 1), TargetCube},
		{Image2D(8, 8, 12, 1), TargetCubeArray},
		{Image2D(8, 8, 7, 1), Target2DArray},
		{Image2D(8, 8, 2, 1), Target2DArray},
		{Image2D(8, 8, 1, 4), Target2DMultisample},
		{Image2D(8, 8, 6, 4), Target2DMultisampleArray},
		{Image3D(8, 8, 8), Target3D},
	}
	for _, test := range tests {
		got, err := test.typ.Target()
		require.NoError(t, err, test.typ.String())
		assert.Equal(t, test.want, got, test.typ.String())
	}
}

func TestImageTargetUnsupported(t *testing.T) {
	for _, typ := range []ImageType{
		{Dim: Dim1D, Width: 8, Samples: 4},
		{Dim: Dim3D, Width: 8, Height: 8, Depth: 8, Samples: 2},
		{Width: 8},
	} {
		_, err := typ.Target()
		assert.ErrorIs(t, err, ErrUnsupportedImageType, typ.String())
		_, err = typ.ViewType()
		assert.ErrorIs(t, err, ErrUnsupportedImageType, typ.String())
	}
}

func TestImageViewType(t *testing.T) {
	tests := []struct {
		typ    ImageType
		view   ImageViewType
		layers uint32
	}{
		{Image1D(16, 1), ViewD1, 1},
		{Image1D(16, 3), ViewD1Array, 3},
		{Image2D(16, 16, 1, 1), ViewD2, 1},
		{Image2D(16, 16, 1, 8), ViewD2, 1},
		{Image2D(16, 16, 6, 1), ViewCube, 6},
		{Image2D(16, 16, 18, 1), ViewCubeArray, 18},
		{Image2D(16, 16, 5, 1), ViewD2Array, 5},
		{Image2D(16, 16, 5, 4), ViewD2Array, 5},
		{Image3D(16, 16, 16), ViewD3, 1},
	}
	for _, test := range tests {
		view, err := test.typ.ViewType()
		require.NoError(t, err)
		assert.Equal(t, test.view, view, test.typ.String())
		assert.Equal(t, test.layers, test.typ.NumLayers(), test.typ.String())
	}
}

func TestCreateImageStorage(t *testing.T) {
	tests := []struct {
		typ  ImageType
		call gltest.Call
	}{
		{Image1D(64, 1), gltest.Call{Name: "TextureStorage1D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 64}}},
		{Image1D(64, 5), gltest.Call{Name: "TextureStorage2D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 64, 5}}},
		{Image2D(32, 16, 1, 1), gltest.Call{Name: "TextureStorage2D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 32, 16}}},
		{Image2D(32, 16, 4, 1), gltest.Call{Name: "TextureStorage3D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 32, 16, 4}}},
		{Image2D(32, 32, 12, 1), gltest.Call{Name: "TextureStorage3D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 32, 32, 12}}},
		{Image3D(8, 4, 2), gltest.Call{Name: "TextureStorage3D", Args: []any{gl.Texture{V: 1}, 3, gl.Enum(gl.RGBA8), 8, 4, 2}}},
		{Image2D(32, 16, 1, 4), gltest.Call{Name: "TextureStorage2DMultisample", Args: []any{gl.Texture{V: 1}, 4, gl.Enum(gl.RGBA8), 32, 16, true}}},
		{Image2D(32, 16, 3, 4), gltest.Call{Name: "TextureStorage3DMultisample", Args: []any{gl.Texture{V: 1}, 4, gl.Enum(gl.RGBA8), 32, 16, 3, true}}},
	}
	for _, test := range tests {
		d, ctx := newTestDevice(t)
		img, err := d.CreateImage(test.typ, R8G8B8A8Unorm, 3)
		require.NoError(t, err)
		require.Len(t, ctx.Calls, 2, test.typ.String())
		assert.Equal(t, "CreateTexture", ctx.Calls[0].Name)
		assert.Equal(t, test.call, ctx.Calls[1], test.typ.String())
		assert.Equal(t, uint32(3), img.Levels())
		assert.Equal(t, R8G8B8A8Unorm, img.Format())
	}
}

func TestCreateImageError(t *testing.T) {
	d, ctx := newTestDevice(t)
	ctx.Errors = []gl.Enum{gl.NO_ERROR, gl.OUT_OF_MEMORY}
	_, err := d.CreateImage(Image2D(1<<15, 1<<15, 1, 1), R32G32B32A32Sfloat, 1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	call, ok := ctx.Last("DeleteTextures")
	require.True(t, ok)
	assert.Equal(t, []any{[]gl.Texture{{V: 1}}}, call.Args)

	ctx.Reset()
	_, err = d.CreateImage(ImageType{Dim: Dim3D, Width: 4, Height: 4, Depth: 4, Samples: 4}, R8Unorm, 1)
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Empty(t, ctx.Calls)
}

func TestCubeMapAndView(t *testing.T) {
	d, ctx := newTestDevice(t)
	img, view, err := d.CreateImageAndView(Image2D(512, 512, 6, 1), R8G8B8A8Srgb, 1)
	require.NoError(t, err)
	assert.Equal(t, TargetCube, img.Target())
	assert.Equal(t, []gltest.Call{
		{Name: "CreateTexture", Args: []any{gl.Enum(gl.TEXTURE_CUBE_MAP), img.id}},
		{Name: "TextureStorage2D", Args: []any{img.id, 1, gl.Enum(gl.SRGB8_ALPHA8), 512, 512}},
		{Name: "GenTexture", Args: []any{view.id}},
		{Name: "TextureView", Args: []any{view.id, gl.Enum(gl.TEXTURE_CUBE_MAP), img.id, gl.Enum(gl.SRGB8_ALPHA8),
			uint32(0), uint32(1), uint32(0), uint32(6)}},
	}, ctx.Calls)
}

func TestMultisampleViewTarget(t *testing.T) {
	d, ctx := newTestDevice(t)
	img, err := d.CreateImage(Image2D(64, 64, 1, 4), D24UnormS8Uint, 1)
	require.NoError(t, err)
	_, err = d.CreateImageView(img, ViewD2, D24UnormS8Uint, SubresourceRange{Levels: Range{0, 1}, Layers: Range{0, 1}})
	require.NoError(t, err)
	call, ok := ctx.Last("TextureView")
	require.True(t, ok)
	assert.Equal(t, gl.Enum(gl.TEXTURE_2D_MULTISAMPLE), call.Args[1])

	arr, err := d.CreateImage(Image2D(64, 64, 4, 4), R8Unorm, 1)
	require.NoError(t, err)
	_, err = d.CreateImageView(arr, ViewD2Array, R8Unorm, SubresourceRange{Levels: Range{0, 1}, Layers: Range{1, 3}})
	require.NoError(t, err)
	call, _ = ctx.Last("TextureView")
	assert.Equal(t, gl.Enum(gl.TEXTURE_2D_MULTISAMPLE_ARRAY), call.Args[1])
	assert.Equal(t, []any{uint32(0), uint32(1), uint32(1), uint32(2)}, call.Args[4:])
}

func TestBindImageViews(t *testing.T) {
	d, ctx := newTestDevice(t)
	views := []ImageView{{id: gl.Texture{V: 3}}, {id: gl.Texture{V: 9}}}
	d.BindImageViews(2, views)
	d.BindStorageImageViews(0, views[:1])
	d.GenerateMipmaps(Image{id: gl.Texture{V: 3}})
	assert.Equal(t, []gltest.Call{
		{Name: "BindTextures", Args: []any{uint32(2), []gl.Texture{{V: 3}, {V: 9}}}},
		{Name: "BindImageTextures", Args: []any{uint32(0), []gl.Texture{{V: 3}}}},
		{Name: "GenerateTextureMipmap", Args: []any{gl.Texture{V: 3}}},
	}, ctx.Calls)
}
