// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func TestMemoryBarrier(t *testing.T) {
	tests := []struct {
		flags Barrier
		calls []gltest.Call
	}{
		{BarrierStorageBufferRW | BarrierUniformRead, []gltest.Call{
			{Name: "MemoryBarrier", Args: []any{gl.Enum(gl.SHADER_STORAGE_BARRIER_BIT | gl.UNIFORM_BARRIER_BIT)}},
		}},
		{BarrierInputAttachmentRead, []gltest.Call{
			{Name: "TextureBarrier"},
		}},
		{BarrierInputAttachmentRead | BarrierFramebufferRW, []gltest.Call{
			{Name: "TextureBarrier"},
			{Name: "MemoryBarrier", Args: []any{gl.Enum(gl.FRAMEBUFFER_BARRIER_BIT)}},
		}},
		{0, nil},
	}
	for _, test := range tests {
		d, ctx := newTestDevice(t)
		d.MemoryBarrier(test.flags)
		assert.Equal(t, test.calls, ctx.Calls, test.flags.String())
	}
}

func TestMemoryBarrierByRegion(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.MemoryBarrierByRegion(RegionBarrierFramebufferRW | RegionBarrierSampledImageRead)
	assert.Equal(t, []gltest.Call{
		{Name: "MemoryBarrierByRegion", Args: []any{gl.Enum(gl.FRAMEBUFFER_BARRIER_BIT | gl.TEXTURE_FETCH_BARRIER_BIT)}},
	}, ctx.Calls)
}

func TestBarrierString(t *testing.T) {
	assert.Equal(t, "UniformRead|StorageBufferRW", (BarrierUniformRead | BarrierStorageBufferRW).String())
	assert.Equal(t, "InputAttachmentRead", BarrierInputAttachmentRead.String())
	assert.Equal(t, "0", Barrier(0).String())
}
