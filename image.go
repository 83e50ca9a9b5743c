// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// Dim is the dimensionality of an image. Layers do not change the
// dimensionality.
type Dim uint8

const (
	Dim1D Dim = iota + 1
	Dim2D
	Dim3D
)

// ImageType is the shape of an image. The texture target is derived
// from it; callers never pick one directly.
//
// Zero Layers or Samples count as 1. Height is ignored for 1D images,
// Depth for 1D and 2D images and Layers for 3D images.
type ImageType struct {
	Dim     Dim
	Width   uint32
	Height  uint32
	Depth   uint32
	Layers  uint32
	Samples uint32
}

// Image1D returns the shape of a 1D image with layers array layers.
func Image1D(width, layers uint32) ImageType {
	return ImageType{Dim: Dim1D, Width: width, Layers: layers, Samples: 1}
}

// Image2D returns the shape of a 2D image. Six layers make a cube
// map and multiples of six a cube map array.
func Image2D(width, height, layers, samples uint32) ImageType {
	return ImageType{Dim: Dim2D, Width: width, Height: height, Layers: layers, Samples: samples}
}

// Image3D returns the shape of a 3D image.
func Image3D(width, height, depth uint32) ImageType {
	return ImageType{Dim: Dim3D, Width: width, Height: height, Depth: depth, Layers: 1, Samples: 1}
}

func (t ImageType) layers() uint32 {
	if t.Layers == 0 {
		return 1
	}
	return t.Layers
}

func (t ImageType) samples() uint32 {
	if t.Samples == 0 {
		return 1
	}
	return t.Samples
}

// Target is a texture target.
type Target uint8

const (
	Target1D Target = iota
	Target1DArray
	Target2D
	TargetCube
	TargetCubeArray
	Target2DArray
	Target2DMultisample
	Target2DMultisampleArray
	Target3D
)

// Storage is the allocation family of a target.
type Storage uint8

const (
	Storage1D Storage = iota
	Storage2D
	Storage3D
	Storage2DMultisample
	Storage3DMultisample
)

// Target resolves the texture target of the shape t.
func (t ImageType) Target() (Target, error) {
	layers, samples := t.layers(), t.samples()
	switch t.Dim {
	case Dim1D:
		if samples > 1 {
			break
		}
		if layers == 1 {
			return Target1D, nil
		}
		return Target1DArray, nil
	case Dim2D:
		switch {
		case samples == 1 && layers == 1:
			return Target2D, nil
		case samples == 1 && layers == 6:
			return TargetCube, nil
		case samples == 1 && layers%6 == 0:
			return TargetCubeArray, nil
		case samples == 1:
			return Target2DArray, nil
		case layers == 1:
			return Target2DMultisample, nil
		default:
			return Target2DMultisampleArray, nil
		}
	case Dim3D:
		if samples > 1 {
			break
		}
		return Target3D, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedImageType, t)
}

// NumLayers returns the number of array layers of t. Cube maps have
// six layers per cube.
func (t ImageType) NumLayers() uint32 {
	if t.Dim == Dim3D {
		return 1
	}
	return t.layers()
}

// ViewType returns the type of the view covering the whole image.
func (t ImageType) ViewType() (ImageViewType, error) {
	target, err := t.Target()
	if err != nil {
		return 0, err
	}
	switch target {
	case Target1D:
		return ViewD1, nil
	case Target1DArray:
		return ViewD1Array, nil
	case Target2D, Target2DMultisample:
		return ViewD2, nil
	case TargetCube:
		return ViewCube, nil
	case TargetCubeArray:
		return ViewCubeArray, nil
	case Target2DArray, Target2DMultisampleArray:
		return ViewD2Array, nil
	default:
		return ViewD3, nil
	}
}

func (t ImageType) String() string {
	switch t.Dim {
	case Dim1D:
		return fmt.Sprintf("D1{width: %d, layers: %d, samples: %d}", t.Width, t.layers(), t.samples())
	case Dim2D:
		return fmt.Sprintf("D2{width: %d, height: %d, layers: %d, samples: %d}", t.Width, t.Height, t.layers(), t.samples())
	case Dim3D:
		return fmt.Sprintf("D3{width: %d, height: %d, depth: %d, samples: %d}", t.Width, t.Height, t.Depth, t.samples())
	default:
		return fmt.Sprintf("ImageType{dim: %d}", t.Dim)
	}
}

// Storage returns the allocation family of t.
func (t Target) Storage() Storage {
	switch t {
	case Target1D:
		return Storage1D
	case Target1DArray, Target2D, TargetCube:
		return Storage2D
	case Target2DArray, TargetCubeArray, Target3D:
		return Storage3D
	case Target2DMultisample:
		return Storage2DMultisample
	case Target2DMultisampleArray:
		return Storage3DMultisample
	default:
		panic("grr: unsupported target")
	}
}

// Multisampled reports whether t is a multisample target.
func (t Target) Multisampled() bool {
	return t == Target2DMultisample || t == Target2DMultisampleArray
}

func (t Target) String() string {
	switch t {
	case Target1D:
		return "1D"
	case Target1DArray:
		return "1DArray"
	case Target2D:
		return "2D"
	case TargetCube:
		return "Cube"
	case TargetCubeArray:
		return "CubeArray"
	case Target2DArray:
		return "2DArray"
	case Target2DMultisample:
		return "2DMultisample"
	case Target2DMultisampleArray:
		return "2DMultisampleArray"
	case Target3D:
		return "3D"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

func (t Target) glEnum() gl.Enum {
	switch t {
	case Target1D:
		return gl.TEXTURE_1D
	case Target1DArray:
		return gl.TEXTURE_1D_ARRAY
	case Target2D:
		return gl.TEXTURE_2D
	case TargetCube:
		return gl.TEXTURE_CUBE_MAP
	case TargetCubeArray:
		return gl.TEXTURE_CUBE_MAP_ARRAY
	case Target2DArray:
		return gl.TEXTURE_2D_ARRAY
	case Target2DMultisample:
		return gl.TEXTURE_2D_MULTISAMPLE
	case Target2DMultisampleArray:
		return gl.TEXTURE_2D_MULTISAMPLE_ARRAY
	case Target3D:
		return gl.TEXTURE_3D
	default:
		panic("grr: unsupported target")
	}
}

// ImageViewType is the type of an image view.
type ImageViewType uint8

const (
	ViewD1 ImageViewType = iota
	ViewD2
	ViewD3
	ViewCube
	ViewD1Array
	ViewD2Array
	ViewCubeArray
)

// target returns the view target for a view of an image with the
// target parent. Views of multisample images stay multisampled.
func (v ImageViewType) target(parent Target) gl.Enum {
	switch v {
	case ViewD1:
		return gl.TEXTURE_1D
	case ViewD2:
		if parent == Target2DMultisample {
			return gl.TEXTURE_2D_MULTISAMPLE
		}
		return gl.TEXTURE_2D
	case ViewD3:
		return gl.TEXTURE_3D
	case ViewCube:
		return gl.TEXTURE_CUBE_MAP
	case ViewD1Array:
		return gl.TEXTURE_1D_ARRAY
	case ViewD2Array:
		if parent == Target2DMultisampleArray {
			return gl.TEXTURE_2D_MULTISAMPLE_ARRAY
		}
		return gl.TEXTURE_2D_ARRAY
	case ViewCubeArray:
		return gl.TEXTURE_CUBE_MAP_ARRAY
	default:
		panic("grr: unsupported image view type")
	}
}

func (v ImageViewType) String() string {
	switch v {
	case ViewD1:
		return "D1"
	case ViewD2:
		return "D2"
	case ViewD3:
		return "D3"
	case ViewCube:
		return "Cube"
	case ViewD1Array:
		return "D1Array"
	case ViewD2Array:
		return "D2Array"
	case ViewCubeArray:
		return "CubeArray"
	default:
		return fmt.Sprintf("ImageViewType(%d)", uint8(v))
	}
}

// Range is a half open range [Start, End).
type Range struct {
	Start, End uint32
}

// Len returns the number of elements in r.
func (r Range) Len() uint32 {
	return r.End - r.Start
}

// SubresourceRange selects mip levels and array layers of an image.
type SubresourceRange struct {
	Levels Range
	Layers Range
}

// Image is formatted texture storage.
type Image struct {
	id     gl.Texture
	target Target
	typ    ImageType
	format Format
	levels uint32
}

// ImageView aliases a subresource range of an image. A view must not
// outlive its image.
type ImageView struct {
	id gl.Texture
}

// Target returns the texture target selected for the image type.
func (img Image) Target() Target  { return img.target }
// Type returns the shape the image was created with.
func (img Image) Type() ImageType { return img.typ }
// Format returns the storage format.
func (img Image) Format() Format  { return img.format }
// Levels returns the number of mip levels.
func (img Image) Levels() uint32  { return img.levels }

// CreateImage allocates immutable storage for an image of shape typ
// with levels mip levels.
func (d *Device) CreateImage(typ ImageType, format Format, levels uint32) (Image, error) {
	target, err := typ.Target()
	if err != nil {
		return Image{}, err
	}
	tex := d.ctx.CreateTexture(target.glEnum())
	if err := d.getError(); err != nil {
		return Image{}, fmt.Errorf("grr: create image: %w", err)
	}
	f := format.glEnum()
	w, h := int(typ.Width), int(typ.Height)
	layers, samples := int(typ.layers()), int(typ.samples())
	switch target.Storage() {
	case Storage1D:
		d.ctx.TextureStorage1D(tex, int(levels), f, w)
	case Storage2D:
		if target == Target1DArray {
			h = layers
		}
		d.ctx.TextureStorage2D(tex, int(levels), f, w, h)
	case Storage3D:
		depth := layers
		if target == Target3D {
			depth = int(typ.Depth)
		}
		d.ctx.TextureStorage3D(tex, int(levels), f, w, h, depth)
	case Storage2DMultisample:
		d.ctx.TextureStorage2DMultisample(tex, samples, f, w, h, true)
	case Storage3DMultisample:
		d.ctx.TextureStorage3DMultisample(tex, samples, f, w, h, layers, true)
	}
	if err := d.getError(); err != nil {
		d.ctx.DeleteTextures([]gl.Texture{tex})
		return Image{}, fmt.Errorf("grr: allocate %v %v image: %w", typ, format, err)
	}
	return Image{id: tex, target: target, typ: typ, format: format, levels: levels}, nil
}

// CreateImageView creates a view of a subresource range of image,
// reinterpreted with format.
func (d *Device) CreateImageView(image Image, typ ImageViewType, format Format, r SubresourceRange) (ImageView, error) {
	target := typ.target(image.target)
	view := d.ctx.GenTexture()
	if err := d.getError(); err != nil {
		return ImageView{}, fmt.Errorf("grr: create image view: %w", err)
	}
	d.ctx.TextureView(view, target, image.id, format.glEnum(),
		r.Levels.Start, r.Levels.Len(), r.Layers.Start, r.Layers.Len())
	if err := d.getError(); err != nil {
		d.ctx.DeleteTextures([]gl.Texture{view})
		return ImageView{}, fmt.Errorf("grr: create %v image view: %w", typ, err)
	}
	return ImageView{id: view}, nil
}

// CreateImageAndView creates an image and a view covering all of its
// levels and layers.
func (d *Device) CreateImageAndView(typ ImageType, format Format, levels uint32) (Image, ImageView, error) {
	viewType, err := typ.ViewType()
	if err != nil {
		return Image{}, ImageView{}, err
	}
	image, err := d.CreateImage(typ, format, levels)
	if err != nil {
		return Image{}, ImageView{}, err
	}
	view, err := d.CreateImageView(image, viewType, format, SubresourceRange{
		Levels: Range{0, levels},
		Layers: Range{0, typ.NumLayers()},
	})
	if err != nil {
		d.DeleteImage(image)
		return Image{}, ImageView{}, err
	}
	return image, view, nil
}

// DeleteImage deletes image. Views of it stay valid.
func (d *Device) DeleteImage(image Image) {
	d.DeleteImages([]Image{image})
}

// DeleteImages deletes images in a single call.
func (d *Device) DeleteImages(images []Image) {
	ids := make([]gl.Texture, len(images))
	for i, img := range images {
		ids[i] = img.id
	}
	d.ctx.DeleteTextures(ids)
}

// DeleteImageView deletes view.
func (d *Device) DeleteImageView(view ImageView) {
	d.DeleteImageViews([]ImageView{view})
}

// DeleteImageViews deletes views in a single call.
func (d *Device) DeleteImageViews(views []ImageView) {
	d.ctx.DeleteTextures(viewIDs(views))
}

// BindImageViews binds views to consecutive texture units starting at
// first, for sampling.
func (d *Device) BindImageViews(first uint32, views []ImageView) {
	d.ctx.BindTextures(first, viewIDs(views))
}

// BindStorageImageViews binds views to consecutive image units
// starting at first, for load and store access.
func (d *Device) BindStorageImageViews(first uint32, views []ImageView) {
	d.ctx.BindImageTextures(first, viewIDs(views))
}

// GenerateMipmaps fills every level of image below the base level.
// The downscaling filter is implementation dependent.
func (d *Device) GenerateMipmaps(image Image) {
	d.ctx.GenerateTextureMipmap(image.id)
}

func viewIDs(views []ImageView) []gl.Texture {
	ids := make([]gl.Texture, len(views))
	for i, v := range views {
		ids[i] = v.id
	}
	return ids
}
