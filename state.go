// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"gioui.org/grr/internal/gl"
)

// Compare is a comparison function for depth, stencil and sampler
// comparisons.
type Compare uint8

const (
	CompareLess Compare = iota
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
	CompareEqual
	CompareNotEqual
	CompareAlways
	CompareNever
)

// InputAssembly is the primitive assembly state.
type InputAssembly struct {
	// PrimitiveRestart enables restarting strips at the index
	// RestartIndex.
	PrimitiveRestart bool
	RestartIndex     uint32
}

type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontBack
)

type FrontFace uint8

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// Rasterization is the rasterizer state.
type Rasterization struct {
	DepthClamp        bool
	RasterizerDiscard bool
	PolygonMode       PolygonMode
	CullMode          CullMode
	FrontFace         FrontFace
	// DepthBias enables the depth offset for the primitives of the
	// current polygon mode.
	DepthBias       bool
	DepthBiasFactor float32
	DepthBiasUnits  float32
}

type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
	BlendSrcAlphaSaturate
	BlendSrc1Color
	BlendOneMinusSrc1Color
	BlendSrc1Alpha
	BlendOneMinusSrc1Alpha
)

type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// BlendChannel is the blend equation of the color or alpha channels.
type BlendChannel struct {
	SrcFactor BlendFactor
	DstFactor BlendFactor
	Op        BlendOp
}

// ColorBlendAttachment is the blend state of a single color
// attachment. Color and Alpha are ignored when BlendEnable is false.
type ColorBlendAttachment struct {
	BlendEnable bool
	Color       BlendChannel
	Alpha       BlendChannel
}

// ColorBlend is the per attachment blend state. Attachment i of the
// slice configures draw buffer i.
type ColorBlend struct {
	Attachments []ColorBlendAttachment
	// Constants, if set, is the constant blend color.
	Constants *[4]float32
}

type StencilOp uint8

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// StencilFace is the stencil state of one face orientation.
type StencilFace struct {
	Fail        StencilOp
	Pass        StencilOp
	DepthFail   StencilOp
	CompareOp   Compare
	CompareMask uint32
	Reference   uint32
}

// StencilKeep always passes and never writes.
var StencilKeep = StencilFace{
	Fail:        StencilOpKeep,
	Pass:        StencilOpKeep,
	DepthFail:   StencilOpKeep,
	CompareOp:   CompareAlways,
	CompareMask: ^uint32(0),
	Reference:   0,
}

// DepthStencil is the depth and stencil test state. The front and
// back faces are configured independently.
type DepthStencil struct {
	DepthTest    bool
	DepthWrite   bool
	DepthCompare Compare
	StencilTest  bool
	StencilFront StencilFace
	StencilBack  StencilFace
}

// Multisample is the multisample rasterization state.
type Multisample struct {
	SampleShading    bool
	MinSampleShading float32
	SampleMask       uint64
	AlphaToCoverage  bool
	AlphaToOne       bool
}

// BindInputAssemblyState replaces the primitive assembly state.
func (d *Device) BindInputAssemblyState(state InputAssembly) {
	if state.PrimitiveRestart {
		d.ctx.Enable(gl.PRIMITIVE_RESTART)
		d.ctx.PrimitiveRestartIndex(state.RestartIndex)
	} else {
		d.ctx.Disable(gl.PRIMITIVE_RESTART)
	}
}

// BindColorBlendState writes the blend state of every attachment in
// state. Slots past the end of state.Attachments are not touched.
func (d *Device) BindColorBlendState(state ColorBlend) {
	for i, att := range state.Attachments {
		slot := uint32(i)
		if !att.BlendEnable {
			d.ctx.Disablei(gl.BLEND, slot)
			continue
		}
		d.ctx.Enablei(gl.BLEND, slot)
		d.ctx.BlendEquationSeparatei(slot, att.Color.Op.glEnum(), att.Alpha.Op.glEnum())
		d.ctx.BlendFuncSeparatei(slot,
			att.Color.SrcFactor.glEnum(), att.Color.DstFactor.glEnum(),
			att.Alpha.SrcFactor.glEnum(), att.Alpha.DstFactor.glEnum(),
		)
	}
	if c := state.Constants; c != nil {
		d.ctx.BlendColor(c[0], c[1], c[2], c[3])
	}
}

// BindDepthStencilState replaces the depth and stencil test state.
func (d *Device) BindDepthStencilState(state DepthStencil) {
	if state.DepthTest {
		d.ctx.Enable(gl.DEPTH_TEST)
		d.ctx.DepthMask(state.DepthWrite)
		d.ctx.DepthFunc(state.DepthCompare.glEnum())
	} else {
		d.ctx.Disable(gl.DEPTH_TEST)
	}
	if state.StencilTest {
		d.ctx.Enable(gl.STENCIL_TEST)
		d.bindStencilFace(gl.FRONT, state.StencilFront)
		d.bindStencilFace(gl.BACK, state.StencilBack)
	} else {
		d.ctx.Disable(gl.STENCIL_TEST)
	}
}

func (d *Device) bindStencilFace(face gl.Enum, s StencilFace) {
	d.ctx.StencilFuncSeparate(face, s.CompareOp.glEnum(), int32(s.Reference), s.CompareMask)
	d.ctx.StencilOpSeparate(face, s.Fail.glEnum(), s.DepthFail.glEnum(), s.Pass.glEnum())
}

// BindRasterizationState replaces the rasterizer state.
func (d *Device) BindRasterizationState(state Rasterization) {
	d.setEnabled(gl.DEPTH_CLAMP, state.DepthClamp)
	d.setEnabled(gl.RASTERIZER_DISCARD, state.RasterizerDiscard)
	d.setEnabled(state.PolygonMode.offsetCap(), state.DepthBias)
	if state.DepthBias {
		d.ctx.PolygonOffset(state.DepthBiasFactor, state.DepthBiasUnits)
	}
	d.ctx.PolygonMode(gl.FRONT_AND_BACK, state.PolygonMode.glEnum())
	d.ctx.FrontFace(state.FrontFace.glEnum())
	if state.CullMode == CullNone {
		d.ctx.Disable(gl.CULL_FACE)
	} else {
		d.ctx.Enable(gl.CULL_FACE)
		d.ctx.CullFace(state.CullMode.glEnum())
	}
}

// BindMultisampleState replaces the multisample state. A nil state
// disables multisampling.
func (d *Device) BindMultisampleState(state *Multisample) {
	if state == nil {
		d.ctx.Disable(gl.MULTISAMPLE)
		return
	}
	d.ctx.Enable(gl.MULTISAMPLE)
	if state.SampleShading {
		d.ctx.Enable(gl.SAMPLE_SHADING)
		d.ctx.MinSampleShading(state.MinSampleShading)
	} else {
		d.ctx.Disable(gl.SAMPLE_SHADING)
	}
	d.ctx.SampleMaski(0, uint32(state.SampleMask))
	d.ctx.SampleMaski(1, uint32(state.SampleMask>>32))
	d.setEnabled(gl.SAMPLE_ALPHA_TO_COVERAGE, state.AlphaToCoverage)
	d.setEnabled(gl.SAMPLE_ALPHA_TO_ONE, state.AlphaToOne)
}

func (d *Device) setEnabled(cap gl.Enum, enable bool) {
	if enable {
		d.ctx.Enable(cap)
	} else {
		d.ctx.Disable(cap)
	}
}

func (c Compare) glEnum() gl.Enum {
	switch c {
	case CompareLess:
		return gl.LESS
	case CompareLessEqual:
		return gl.LEQUAL
	case CompareGreater:
		return gl.GREATER
	case CompareGreaterEqual:
		return gl.GEQUAL
	case CompareEqual:
		return gl.EQUAL
	case CompareNotEqual:
		return gl.NOTEQUAL
	case CompareAlways:
		return gl.ALWAYS
	case CompareNever:
		return gl.NEVER
	default:
		panic("grr: unsupported compare function")
	}
}

func (m PolygonMode) glEnum() gl.Enum {
	switch m {
	case PolygonFill:
		return gl.FILL
	case PolygonLine:
		return gl.LINE
	case PolygonPoint:
		return gl.POINT
	default:
		panic("grr: unsupported polygon mode")
	}
}

// offsetCap returns the depth offset capability matching m.
func (m PolygonMode) offsetCap() gl.Enum {
	switch m {
	case PolygonFill:
		return gl.POLYGON_OFFSET_FILL
	case PolygonLine:
		return gl.POLYGON_OFFSET_LINE
	case PolygonPoint:
		return gl.POLYGON_OFFSET_POINT
	default:
		panic("grr: unsupported polygon mode")
	}
}

func (m CullMode) glEnum() gl.Enum {
	switch m {
	case CullFront:
		return gl.FRONT
	case CullBack:
		return gl.BACK
	case CullFrontBack:
		return gl.FRONT_AND_BACK
	default:
		panic("grr: unsupported cull mode")
	}
}

func (f FrontFace) glEnum() gl.Enum {
	switch f {
	case FrontFaceCounterClockwise:
		return gl.CCW
	case FrontFaceClockwise:
		return gl.CW
	default:
		panic("grr: unsupported front face")
	}
}

func (f BlendFactor) glEnum() gl.Enum {
	switch f {
	case BlendZero:
		return gl.ZERO
	case BlendOne:
		return gl.ONE
	case BlendSrcColor:
		return gl.SRC_COLOR
	case BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case BlendDstColor:
		return gl.DST_COLOR
	case BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case BlendSrcAlpha:
		return gl.SRC_ALPHA
	case BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendDstAlpha:
		return gl.DST_ALPHA
	case BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case BlendConstantColor:
		return gl.CONSTANT_COLOR
	case BlendOneMinusConstantColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case BlendConstantAlpha:
		return gl.CONSTANT_ALPHA
	case BlendOneMinusConstantAlpha:
		return gl.ONE_MINUS_CONSTANT_ALPHA
	case BlendSrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	case BlendSrc1Color:
		return gl.SRC1_COLOR
	case BlendOneMinusSrc1Color:
		return gl.ONE_MINUS_SRC1_COLOR
	case BlendSrc1Alpha:
		return gl.SRC1_ALPHA
	case BlendOneMinusSrc1Alpha:
		return gl.ONE_MINUS_SRC1_ALPHA
	default:
		panic("grr: unsupported blend factor")
	}
}

func (o BlendOp) glEnum() gl.Enum {
	switch o {
	case BlendOpAdd:
		return gl.FUNC_ADD
	case BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case BlendOpReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case BlendOpMin:
		return gl.MIN
	case BlendOpMax:
		return gl.MAX
	default:
		panic("grr: unsupported blend op")
	}
}

func (o StencilOp) glEnum() gl.Enum {
	switch o {
	case StencilOpKeep:
		return gl.KEEP
	case StencilOpZero:
		return gl.ZERO
	case StencilOpReplace:
		return gl.REPLACE
	case StencilOpIncrementClamp:
		return gl.INCR
	case StencilOpDecrementClamp:
		return gl.DECR
	case StencilOpInvert:
		return gl.INVERT
	case StencilOpIncrementWrap:
		return gl.INCR_WRAP
	case StencilOpDecrementWrap:
		return gl.DECR_WRAP
	default:
		panic("grr: unsupported stencil op")
	}
}
