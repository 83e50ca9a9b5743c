// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// Filter is a texel filtering mode.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterLinear
)

// SamplerAddress controls texture coordinates outside [0, 1].
type SamplerAddress uint8

const (
	AddressRepeat SamplerAddress = iota
	AddressMirrorRepeat
	AddressClampEdge
	AddressClampBorder
	AddressMirrorClampEdge
)

// SamplerDesc describes a Sampler.
type SamplerDesc struct {
	MinFilter Filter
	MagFilter Filter
	// MipMap selects filtering between mip levels. Nil disables
	// mipmapping.
	MipMap *Filter
	// Address is the addressing mode of the u, v and w coordinates.
	Address     [3]SamplerAddress
	LodBias     float32
	LodMin      float32
	LodMax      float32
	Compare     *Compare
	BorderColor [4]float32
}

// Sampler holds the texture sampling state.
type Sampler struct {
	id gl.Sampler
}

// CreateSampler creates a sampler from desc.
func (d *Device) CreateSampler(desc SamplerDesc) (Sampler, error) {
	s := d.ctx.CreateSampler()
	if err := d.getError(); err != nil {
		return Sampler{}, fmt.Errorf("grr: create sampler: %w", err)
	}
	ctx := d.ctx
	ctx.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, int(minFilter(desc.MinFilter, desc.MipMap)))
	ctx.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, int(desc.MagFilter.glEnum()))
	ctx.SamplerParameteri(s, gl.TEXTURE_WRAP_S, int(desc.Address[0].glEnum()))
	ctx.SamplerParameteri(s, gl.TEXTURE_WRAP_T, int(desc.Address[1].glEnum()))
	ctx.SamplerParameteri(s, gl.TEXTURE_WRAP_R, int(desc.Address[2].glEnum()))
	ctx.SamplerParameterf(s, gl.TEXTURE_LOD_BIAS, desc.LodBias)
	ctx.SamplerParameterf(s, gl.TEXTURE_MIN_LOD, desc.LodMin)
	ctx.SamplerParameterf(s, gl.TEXTURE_MAX_LOD, desc.LodMax)
	if desc.Compare != nil {
		ctx.SamplerParameteri(s, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		ctx.SamplerParameteri(s, gl.TEXTURE_COMPARE_FUNC, int(desc.Compare.glEnum()))
	} else {
		ctx.SamplerParameteri(s, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	ctx.SamplerParameterfv(s, gl.TEXTURE_BORDER_COLOR, desc.BorderColor[:])
	return Sampler{id: s}, nil
}

// DeleteSampler deletes s.
func (d *Device) DeleteSampler(s Sampler) {
	d.DeleteSamplers([]Sampler{s})
}

// DeleteSamplers deletes samplers in a single call.
func (d *Device) DeleteSamplers(samplers []Sampler) {
	ids := make([]gl.Sampler, len(samplers))
	for i, s := range samplers {
		ids[i] = s.id
	}
	d.ctx.DeleteSamplers(ids)
}

// BindSamplers binds samplers to consecutive texture units starting
// at first.
func (d *Device) BindSamplers(first uint32, samplers []Sampler) {
	ids := make([]gl.Sampler, len(samplers))
	for i, s := range samplers {
		ids[i] = s.id
	}
	d.ctx.BindSamplers(first, ids)
}

func minFilter(filter Filter, mip *Filter) gl.Enum {
	if mip == nil {
		return filter.glEnum()
	}
	switch {
	case filter == FilterNearest && *mip == FilterNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case filter == FilterLinear && *mip == FilterNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case filter == FilterNearest && *mip == FilterLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	default:
		return gl.LINEAR_MIPMAP_LINEAR
	}
}

func (f Filter) glEnum() gl.Enum {
	switch f {
	case FilterNearest:
		return gl.NEAREST
	case FilterLinear:
		return gl.LINEAR
	default:
		panic("grr: unsupported filter")
	}
}

func (a SamplerAddress) glEnum() gl.Enum {
	switch a {
	case AddressRepeat:
		return gl.REPEAT
	case AddressMirrorRepeat:
		return gl.MIRRORED_REPEAT
	case AddressClampEdge:
		return gl.CLAMP_TO_EDGE
	case AddressClampBorder:
		return gl.CLAMP_TO_BORDER
	case AddressMirrorClampEdge:
		return gl.MIRROR_CLAMP_TO_EDGE
	default:
		panic("grr: unsupported sampler address mode")
	}
}
