// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/grr/internal/gl"
)

var channelPattern = regexp.MustCompile(`[RGBADS]\d+`)

func TestFormatChannels(t *testing.T) {
	for f := Format(0); f < formatCount; f++ {
		name := f.String()
		channels := len(channelPattern.FindAllString(name, -1))
		assert.Equal(t, channels, f.BaseFormat().NumComponents(), name)
		assert.NotZero(t, f.glEnum(), name)
	}
}

func TestFormatColorSpace(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.RGBA8), R8G8B8A8Unorm.glEnum())
	assert.Equal(t, gl.Enum(gl.SRGB8_ALPHA8), R8G8B8A8Srgb.glEnum())
	assert.Equal(t, gl.Enum(gl.SRGB8), R8G8B8Srgb.glEnum())
	assert.Equal(t, gl.Enum(gl.RGB10_A2), A2B10G10R10Unorm.glEnum())
	assert.Equal(t, gl.Enum(gl.R11F_G11F_B10F), B10G11R11Ufloat.glEnum())
}

func TestFormatAspects(t *testing.T) {
	tests := []struct {
		f              Format
		depth, stencil bool
	}{
		{R8G8B8A8Srgb, false, false},
		{D16Unorm, true, false},
		{D32Sfloat, true, false},
		{D24UnormS8Uint, true, true},
		{D32SfloatS8Uint, true, true},
		{S8Uint, false, true},
	}
	for _, test := range tests {
		assert.Equal(t, test.depth, test.f.IsDepth(), test.f.String())
		assert.Equal(t, test.stencil, test.f.IsStencil(), test.f.String())
	}
}

func TestFormatOutOfRange(t *testing.T) {
	assert.Equal(t, "Format(200)", Format(200).String())
	assert.Panics(t, func() { Format(200).BaseFormat() })
	assert.Panics(t, func() { FormatLayout(99).Size() })
}

func TestFormatLayout(t *testing.T) {
	sizes := map[FormatLayout]int{
		LayoutU8: 1, LayoutI8: 1,
		LayoutU16: 2, LayoutI16: 2, LayoutF16: 2,
		LayoutU32: 4, LayoutI32: 4, LayoutF32: 4,
	}
	for l, size := range sizes {
		assert.Equal(t, size, l.Size(), l.String())
	}
	assert.Equal(t, gl.Enum(gl.HALF_FLOAT), LayoutF16.glEnum())
	assert.Equal(t, gl.Enum(gl.DEPTH_STENCIL), BaseDepthStencil.glEnum())
	assert.Equal(t, gl.Enum(gl.STENCIL_INDEX), BaseStencil.glEnum())
}
