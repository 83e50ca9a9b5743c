// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"github.com/gogpu/gputypes"
)

// Conversions from WebGPU descriptor types, for sharing resource
// descriptions with gputypes based renderers.

var webgpuFormats = map[gputypes.TextureFormat]Format{
	gputypes.TextureFormatR8Unorm:              R8Unorm,
	gputypes.TextureFormatR8Snorm:              R8Snorm,
	gputypes.TextureFormatR8Uint:               R8Uint,
	gputypes.TextureFormatR8Sint:               R8Sint,
	gputypes.TextureFormatRG8Unorm:             R8G8Unorm,
	gputypes.TextureFormatRG8Uint:              R8G8Uint,
	gputypes.TextureFormatRGBA8Unorm:           R8G8B8A8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb:       R8G8B8A8Srgb,
	gputypes.TextureFormatR16Uint:              R16Uint,
	gputypes.TextureFormatR16Sint:              R16Sint,
	gputypes.TextureFormatR16Float:             R16Sfloat,
	gputypes.TextureFormatRG16Float:            R16G16Sfloat,
	gputypes.TextureFormatRGBA16Float:          R16G16B16A16Sfloat,
	gputypes.TextureFormatR32Uint:              R32Uint,
	gputypes.TextureFormatR32Sint:              R32Sint,
	gputypes.TextureFormatR32Float:             R32Sfloat,
	gputypes.TextureFormatRG32Float:            R32G32Sfloat,
	gputypes.TextureFormatRGBA32Float:          R32G32B32A32Sfloat,
	gputypes.TextureFormatRGBA32Uint:           R32G32B32A32Uint,
	gputypes.TextureFormatDepth16Unorm:         D16Unorm,
	gputypes.TextureFormatDepth24Plus:          D24Unorm,
	gputypes.TextureFormatDepth32Float:         D32Sfloat,
	gputypes.TextureFormatDepth24PlusStencil8:  D24UnormS8Uint,
	gputypes.TextureFormatDepth32FloatStencil8: D32SfloatS8Uint,
	gputypes.TextureFormatStencil8:             S8Uint,
}

var webgpuVertexFormats = map[gputypes.VertexFormat]VertexFormat{
	gputypes.VertexFormatUint8x2:   Xy8Uint,
	gputypes.VertexFormatUint8x4:   Xyzw8Uint,
	gputypes.VertexFormatSint8x2:   Xy8Int,
	gputypes.VertexFormatSint8x4:   Xyzw8Int,
	gputypes.VertexFormatUnorm8x2:  Xy8Unorm,
	gputypes.VertexFormatUnorm8x4:  Xyzw8Unorm,
	gputypes.VertexFormatSnorm8x2:  Xy8Inorm,
	gputypes.VertexFormatSnorm8x4:  Xyzw8Inorm,
	gputypes.VertexFormatUint16x2:  Xy16Uint,
	gputypes.VertexFormatUint16x4:  Xyzw16Uint,
	gputypes.VertexFormatSint16x2:  Xy16Int,
	gputypes.VertexFormatSint16x4:  Xyzw16Int,
	gputypes.VertexFormatUnorm16x2: Xy16Unorm,
	gputypes.VertexFormatUnorm16x4: Xyzw16Unorm,
	gputypes.VertexFormatSnorm16x2: Xy16Inorm,
	gputypes.VertexFormatSnorm16x4: Xyzw16Inorm,
	gputypes.VertexFormatFloat16x2: Xy16Float,
	gputypes.VertexFormatFloat16x4: Xyzw16Float,
	gputypes.VertexFormatFloat32:   X32Float,
	gputypes.VertexFormatFloat32x2: Xy32Float,
	gputypes.VertexFormatFloat32x3: Xyz32Float,
	gputypes.VertexFormatFloat32x4: Xyzw32Float,
	gputypes.VertexFormatUint32:    X32Uint,
	gputypes.VertexFormatUint32x2:  Xy32Uint,
	gputypes.VertexFormatUint32x3:  Xyz32Uint,
	gputypes.VertexFormatUint32x4:  Xyzw32Uint,
	gputypes.VertexFormatSint32:    X32Int,
	gputypes.VertexFormatSint32x2:  Xy32Int,
	gputypes.VertexFormatSint32x3:  Xyz32Int,
	gputypes.VertexFormatSint32x4:  Xyzw32Int,
}

// FormatFromWebGPU returns the image format matching f.
func FormatFromWebGPU(f gputypes.TextureFormat) (Format, bool) {
	format, ok := webgpuFormats[f]
	return format, ok
}

// VertexFormatFromWebGPU returns the vertex format matching f.
func VertexFormatFromWebGPU(f gputypes.VertexFormat) (VertexFormat, bool) {
	format, ok := webgpuVertexFormats[f]
	return format, ok
}

// ImageTypeFromWebGPU returns the shape of a texture with dimension
// dim and size. For 1D and 2D textures DepthOrArrayLayers counts
// layers.
func ImageTypeFromWebGPU(dim gputypes.TextureDimension, size gputypes.Extent3D, samples uint32) (ImageType, bool) {
	switch dim {
	case gputypes.TextureDimension1D:
		return ImageType{Dim: Dim1D, Width: size.Width, Layers: size.DepthOrArrayLayers, Samples: samples}, true
	case gputypes.TextureDimension2D:
		return Image2D(size.Width, size.Height, size.DepthOrArrayLayers, samples), true
	case gputypes.TextureDimension3D:
		typ := Image3D(size.Width, size.Height, size.DepthOrArrayLayers)
		typ.Samples = samples
		return typ, true
	default:
		return ImageType{}, false
	}
}

// ViewTypeForWebGPU returns the view type matching dim.
func ViewTypeForWebGPU(dim gputypes.TextureViewDimension) (ImageViewType, bool) {
	switch dim {
	case gputypes.TextureViewDimension1D:
		return ViewD1, true
	case gputypes.TextureViewDimension2D:
		return ViewD2, true
	case gputypes.TextureViewDimension2DArray:
		return ViewD2Array, true
	case gputypes.TextureViewDimensionCube:
		return ViewCube, true
	case gputypes.TextureViewDimensionCubeArray:
		return ViewCubeArray, true
	case gputypes.TextureViewDimension3D:
		return ViewD3, true
	default:
		return 0, false
	}
}
