// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// Format is a sized storage format for images and renderbuffers.
type Format uint8

// BaseFormat describes the channel layout of a Format, independent
// of bit width and encoding.
type BaseFormat uint8

// FormatLayout is the scalar encoding of pixel data in host or buffer
// memory during transfers.
type FormatLayout uint8

const (
	R8Unorm Format = iota
	R8Snorm
	R8Uint
	R8Sint
	R8G8Unorm
	R8G8Uint
	R8G8B8Unorm
	R8G8B8Srgb
	R8G8B8A8Unorm
	R8G8B8A8Srgb
	R16Unorm
	R16Uint
	R16Sint
	R16Sfloat
	R16G16Sfloat
	R16G16B16Sfloat
	R16G16B16A16Sfloat
	R32Uint
	R32Sint
	R32Sfloat
	R32G32Sfloat
	R32G32B32Sfloat
	R32G32B32A32Sfloat
	R32G32B32A32Uint
	A2B10G10R10Unorm
	B10G11R11Ufloat
	D16Unorm
	D24Unorm
	D32Sfloat
	D24UnormS8Uint
	D32SfloatS8Uint
	S8Uint

	formatCount
)

const (
	BaseR BaseFormat = iota
	BaseRG
	BaseRGB
	BaseRGBA
	BaseDepth
	BaseDepthStencil
	BaseStencil
)

const (
	LayoutU8 FormatLayout = iota
	LayoutU16
	LayoutU32
	LayoutI8
	LayoutI16
	LayoutI32
	LayoutF16
	LayoutF32
)

type formatInfo struct {
	name     string
	internal gl.Enum
	base     BaseFormat
}

var formats = [formatCount]formatInfo{
	R8Unorm:            {"R8Unorm", gl.R8, BaseR},
	R8Snorm:            {"R8Snorm", gl.R8_SNORM, BaseR},
	R8Uint:             {"R8Uint", gl.R8UI, BaseR},
	R8Sint:             {"R8Sint", gl.R8I, BaseR},
	R8G8Unorm:          {"R8G8Unorm", gl.RG8, BaseRG},
	R8G8Uint:           {"R8G8Uint", gl.RG8UI, BaseRG},
	R8G8B8Unorm:        {"R8G8B8Unorm", gl.RGB8, BaseRGB},
	R8G8B8Srgb:         {"R8G8B8Srgb", gl.SRGB8, BaseRGB},
	R8G8B8A8Unorm:      {"R8G8B8A8Unorm", gl.RGBA8, BaseRGBA},
	R8G8B8A8Srgb:       {"R8G8B8A8Srgb", gl.SRGB8_ALPHA8, BaseRGBA},
	R16Unorm:           {"R16Unorm", gl.R16, BaseR},
	R16Uint:            {"R16Uint", gl.R16UI, BaseR},
	R16Sint:            {"R16Sint", gl.R16I, BaseR},
	R16Sfloat:          {"R16Sfloat", gl.R16F, BaseR},
	R16G16Sfloat:       {"R16G16Sfloat", gl.RG16F, BaseRG},
	R16G16B16Sfloat:    {"R16G16B16Sfloat", gl.RGB16F, BaseRGB},
	R16G16B16A16Sfloat: {"R16G16B16A16Sfloat", gl.RGBA16F, BaseRGBA},
	R32Uint:            {"R32Uint", gl.R32UI, BaseR},
	R32Sint:            {"R32Sint", gl.R32I, BaseR},
	R32Sfloat:          {"R32Sfloat", gl.R32F, BaseR},
	R32G32Sfloat:       {"R32G32Sfloat", gl.RG32F, BaseRG},
	R32G32B32Sfloat:    {"R32G32B32Sfloat", gl.RGB32F, BaseRGB},
	R32G32B32A32Sfloat: {"R32G32B32A32Sfloat", gl.RGBA32F, BaseRGBA},
	R32G32B32A32Uint:   {"R32G32B32A32Uint", gl.RGBA32UI, BaseRGBA},
	A2B10G10R10Unorm:   {"A2B10G10R10Unorm", gl.RGB10_A2, BaseRGBA},
	B10G11R11Ufloat:    {"B10G11R11Ufloat", gl.R11F_G11F_B10F, BaseRGB},
	D16Unorm:           {"D16Unorm", gl.DEPTH_COMPONENT16, BaseDepth},
	D24Unorm:           {"D24Unorm", gl.DEPTH_COMPONENT24, BaseDepth},
	D32Sfloat:          {"D32Sfloat", gl.DEPTH_COMPONENT32F, BaseDepth},
	D24UnormS8Uint:     {"D24UnormS8Uint", gl.DEPTH24_STENCIL8, BaseDepthStencil},
	D32SfloatS8Uint:    {"D32SfloatS8Uint", gl.DEPTH32F_STENCIL8, BaseDepthStencil},
	S8Uint:             {"S8Uint", gl.STENCIL_INDEX8, BaseStencil},
}

func (f Format) info() formatInfo {
	if f >= formatCount {
		panic(fmt.Sprintf("grr: unsupported format %d", uint8(f)))
	}
	return formats[f]
}

// BaseFormat returns the channel layout of f.
func (f Format) BaseFormat() BaseFormat {
	return f.info().base
}

// IsDepth reports whether f has a depth channel.
func (f Format) IsDepth() bool {
	b := f.BaseFormat()
	return b == BaseDepth || b == BaseDepthStencil
}

// IsStencil reports whether f has a stencil channel.
func (f Format) IsStencil() bool {
	b := f.BaseFormat()
	return b == BaseStencil || b == BaseDepthStencil
}

func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formats[f].name
}

func (f Format) glEnum() gl.Enum {
	return f.info().internal
}

// NumComponents returns the number of channels of b.
func (b BaseFormat) NumComponents() int {
	switch b {
	case BaseR, BaseDepth, BaseStencil:
		return 1
	case BaseRG, BaseDepthStencil:
		return 2
	case BaseRGB:
		return 3
	case BaseRGBA:
		return 4
	default:
		panic("grr: unsupported base format")
	}
}

func (b BaseFormat) String() string {
	switch b {
	case BaseR:
		return "R"
	case BaseRG:
		return "RG"
	case BaseRGB:
		return "RGB"
	case BaseRGBA:
		return "RGBA"
	case BaseDepth:
		return "Depth"
	case BaseDepthStencil:
		return "DepthStencil"
	case BaseStencil:
		return "Stencil"
	default:
		return fmt.Sprintf("BaseFormat(%d)", uint8(b))
	}
}

func (b BaseFormat) glEnum() gl.Enum {
	switch b {
	case BaseR:
		return gl.RED
	case BaseRG:
		return gl.RG
	case BaseRGB:
		return gl.RGB
	case BaseRGBA:
		return gl.RGBA
	case BaseDepth:
		return gl.DEPTH_COMPONENT
	case BaseDepthStencil:
		return gl.DEPTH_STENCIL
	case BaseStencil:
		return gl.STENCIL_INDEX
	default:
		panic("grr: unsupported base format")
	}
}

// Size returns the size in bytes of one scalar.
func (l FormatLayout) Size() int {
	switch l {
	case LayoutU8, LayoutI8:
		return 1
	case LayoutU16, LayoutI16, LayoutF16:
		return 2
	case LayoutU32, LayoutI32, LayoutF32:
		return 4
	default:
		panic("grr: unsupported format layout")
	}
}

func (l FormatLayout) String() string {
	switch l {
	case LayoutU8:
		return "U8"
	case LayoutU16:
		return "U16"
	case LayoutU32:
		return "U32"
	case LayoutI8:
		return "I8"
	case LayoutI16:
		return "I16"
	case LayoutI32:
		return "I32"
	case LayoutF16:
		return "F16"
	case LayoutF32:
		return "F32"
	default:
		return fmt.Sprintf("FormatLayout(%d)", uint8(l))
	}
}

func (l FormatLayout) glEnum() gl.Enum {
	switch l {
	case LayoutU8:
		return gl.UNSIGNED_BYTE
	case LayoutU16:
		return gl.UNSIGNED_SHORT
	case LayoutU32:
		return gl.UNSIGNED_INT
	case LayoutI8:
		return gl.BYTE
	case LayoutI16:
		return gl.SHORT
	case LayoutI32:
		return gl.INT
	case LayoutF16:
		return gl.HALF_FLOAT
	case LayoutF32:
		return gl.FLOAT
	default:
		panic("grr: unsupported format layout")
	}
}
