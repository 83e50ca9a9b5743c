// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func enable(cap gl.Enum) gltest.Call  { return gltest.Call{Name: "Enable", Args: []any{cap}} }
func disable(cap gl.Enum) gltest.Call { return gltest.Call{Name: "Disable", Args: []any{cap}} }

func TestInputAssemblyState(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.BindInputAssemblyState(InputAssembly{PrimitiveRestart: true, RestartIndex: 0xffff})
	d.BindInputAssemblyState(InputAssembly{})
	assert.Equal(t, []gltest.Call{
		enable(gl.PRIMITIVE_RESTART),
		{Name: "PrimitiveRestartIndex", Args: []any{uint32(0xffff)}},
		disable(gl.PRIMITIVE_RESTART),
	}, ctx.Calls)
}

func TestColorBlendState(t *testing.T) {
	d, ctx := newTestDevice(t)
	premul := BlendChannel{SrcFactor: BlendOne, DstFactor: BlendOneMinusSrcAlpha, Op: BlendOpAdd}
	d.BindColorBlendState(ColorBlend{
		Attachments: []ColorBlendAttachment{
			{BlendEnable: true, Color: premul, Alpha: BlendChannel{SrcFactor: BlendOne, DstFactor: BlendZero, Op: BlendOpMax}},
			{BlendEnable: false, Color: premul, Alpha: premul},
		},
		Constants: &[4]float32{0.1, 0.2, 0.3, 0.4},
	})
	assert.Equal(t, []gltest.Call{
		{Name: "Enablei", Args: []any{gl.Enum(gl.BLEND), uint32(0)}},
		{Name: "BlendEquationSeparatei", Args: []any{uint32(0), gl.Enum(gl.FUNC_ADD), gl.Enum(gl.MAX)}},
		{Name: "BlendFuncSeparatei", Args: []any{uint32(0), gl.Enum(gl.ONE), gl.Enum(gl.ONE_MINUS_SRC_ALPHA), gl.Enum(gl.ONE), gl.Enum(gl.ZERO)}},
		{Name: "Disablei", Args: []any{gl.Enum(gl.BLEND), uint32(1)}},
		{Name: "BlendColor", Args: []any{float32(0.1), float32(0.2), float32(0.3), float32(0.4)}},
	}, ctx.Calls)
}

// Binding the same state twice issues the same calls; nothing is
// cached between binds.
func TestStateReplay(t *testing.T) {
	d, ctx := newTestDevice(t)
	state := DepthStencil{DepthTest: true, DepthWrite: true, DepthCompare: CompareGreaterEqual}
	d.BindDepthStencilState(state)
	first := ctx.Calls
	ctx.Reset()
	d.BindDepthStencilState(state)
	assert.Equal(t, first, ctx.Calls)
}

func TestDepthStencilState(t *testing.T) {
	d, ctx := newTestDevice(t)
	front := StencilFace{Fail: StencilOpZero, Pass: StencilOpReplace, DepthFail: StencilOpIncrementWrap,
		CompareOp: CompareEqual, CompareMask: 0xff, Reference: 3}
	d.BindDepthStencilState(DepthStencil{StencilTest: true, StencilFront: front, StencilBack: StencilKeep})
	assert.Equal(t, []gltest.Call{
		disable(gl.DEPTH_TEST),
		enable(gl.STENCIL_TEST),
		{Name: "StencilFuncSeparate", Args: []any{gl.Enum(gl.FRONT), gl.Enum(gl.EQUAL), int32(3), uint32(0xff)}},
		{Name: "StencilOpSeparate", Args: []any{gl.Enum(gl.FRONT), gl.Enum(gl.ZERO), gl.Enum(gl.INCR_WRAP), gl.Enum(gl.REPLACE)}},
		{Name: "StencilFuncSeparate", Args: []any{gl.Enum(gl.BACK), gl.Enum(gl.ALWAYS), int32(0), ^uint32(0)}},
		{Name: "StencilOpSeparate", Args: []any{gl.Enum(gl.BACK), gl.Enum(gl.KEEP), gl.Enum(gl.KEEP), gl.Enum(gl.KEEP)}},
	}, ctx.Calls)
}

func TestRasterizationState(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.BindRasterizationState(Rasterization{
		DepthClamp:      true,
		PolygonMode:     PolygonLine,
		CullMode:        CullBack,
		FrontFace:       FrontFaceClockwise,
		DepthBias:       true,
		DepthBiasFactor: 1.5,
		DepthBiasUnits:  2,
	})
	assert.Equal(t, []gltest.Call{
		enable(gl.DEPTH_CLAMP),
		disable(gl.RASTERIZER_DISCARD),
		enable(gl.POLYGON_OFFSET_LINE),
		{Name: "PolygonOffset", Args: []any{float32(1.5), float32(2)}},
		{Name: "PolygonMode", Args: []any{gl.Enum(gl.FRONT_AND_BACK), gl.Enum(gl.LINE)}},
		{Name: "FrontFace", Args: []any{gl.Enum(gl.CW)}},
		enable(gl.CULL_FACE),
		{Name: "CullFace", Args: []any{gl.Enum(gl.BACK)}},
	}, ctx.Calls)

	ctx.Reset()
	d.BindRasterizationState(Rasterization{})
	assert.Equal(t, []gltest.Call{
		disable(gl.DEPTH_CLAMP),
		disable(gl.RASTERIZER_DISCARD),
		disable(gl.POLYGON_OFFSET_FILL),
		{Name: "PolygonMode", Args: []any{gl.Enum(gl.FRONT_AND_BACK), gl.Enum(gl.FILL)}},
		{Name: "FrontFace", Args: []any{gl.Enum(gl.CCW)}},
		disable(gl.CULL_FACE),
	}, ctx.Calls)
}

func TestMultisampleState(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.BindMultisampleState(&Multisample{
		SampleShading:    true,
		MinSampleShading: 0.25,
		SampleMask:       0x1_0000_000f,
		AlphaToCoverage:  true,
	})
	assert.Equal(t, []gltest.Call{
		enable(gl.MULTISAMPLE),
		enable(gl.SAMPLE_SHADING),
		{Name: "MinSampleShading", Args: []any{float32(0.25)}},
		{Name: "SampleMaski", Args: []any{uint32(0), uint32(0xf)}},
		{Name: "SampleMaski", Args: []any{uint32(1), uint32(1)}},
		enable(gl.SAMPLE_ALPHA_TO_COVERAGE),
		disable(gl.SAMPLE_ALPHA_TO_ONE),
	}, ctx.Calls)

	ctx.Reset()
	d.BindMultisampleState(nil)
	assert.Equal(t, []gltest.Call{disable(gl.MULTISAMPLE)}, ctx.Calls)
}

func TestStateEnums(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.ONE_MINUS_SRC1_ALPHA), BlendOneMinusSrc1Alpha.glEnum())
	assert.Equal(t, gl.Enum(gl.FUNC_REVERSE_SUBTRACT), BlendOpReverseSubtract.glEnum())
	assert.Equal(t, gl.Enum(gl.DECR), StencilOpDecrementClamp.glEnum())
	assert.Equal(t, gl.Enum(gl.NEVER), CompareNever.glEnum())
	assert.Panics(t, func() { CullNone.glEnum() })
}
