// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// Framebuffer is a set of render target attachments.
type Framebuffer struct {
	id gl.Framebuffer
}

// DefaultFramebuffer is the framebuffer of the window system.
var DefaultFramebuffer = Framebuffer{}

// Renderbuffer is an image used only as a render target.
type Renderbuffer struct {
	id gl.Renderbuffer
}

// Attachment is an attachment point of a framebuffer.
type Attachment struct {
	kind  attachmentKind
	index uint32
}

type attachmentKind uint8

const (
	attachColor attachmentKind = iota
	attachDepth
	attachStencil
	attachDepthStencil
)

var (
	AttachmentDepth        = Attachment{kind: attachDepth}
	AttachmentStencil      = Attachment{kind: attachStencil}
	AttachmentDepthStencil = Attachment{kind: attachDepthStencil}
)

// AttachmentColor returns the color attachment point i.
func AttachmentColor(i uint32) Attachment {
	return Attachment{kind: attachColor, index: i}
}

// AttachmentView is the image attached to a framebuffer: either an
// image view, attached at its base level, or a renderbuffer.
type AttachmentView interface {
	attach(ctx gl.Context, fb gl.Framebuffer, at gl.Enum)
}

func (v ImageView) attach(ctx gl.Context, fb gl.Framebuffer, at gl.Enum) {
	ctx.NamedFramebufferTexture(fb, at, v.id, 0)
}

func (r Renderbuffer) attach(ctx gl.Context, fb gl.Framebuffer, at gl.Enum) {
	ctx.NamedFramebufferRenderbuffer(fb, at, r.id)
}

// ImageLayer attaches a single layer of a layered image view.
type ImageLayer struct {
	View  ImageView
	Level uint32
	Layer uint32
}

func (l ImageLayer) attach(ctx gl.Context, fb gl.Framebuffer, at gl.Enum) {
	ctx.NamedFramebufferTextureLayer(fb, at, l.View.id, int(l.Level), int(l.Layer))
}

// FramebufferAttachment pairs an attachment point with its image.
type FramebufferAttachment struct {
	Attachment Attachment
	View       AttachmentView
}

// ClearAttachment is a single clear operation.
type ClearAttachment interface {
	clear(ctx gl.Context, fb gl.Framebuffer)
}

// ClearColorInt clears color attachment Index with signed values.
type ClearColorInt struct {
	Index uint32
	Value [4]int32
}

// ClearColorUint clears color attachment Index with unsigned values.
type ClearColorUint struct {
	Index uint32
	Value [4]uint32
}

// ClearColorFloat clears color attachment Index with float values.
type ClearColorFloat struct {
	Index uint32
	Value [4]float32
}

// ClearDepth clears the depth attachment.
type ClearDepth float32

// ClearStencil clears the stencil attachment.
type ClearStencil int32

// ClearDepthStencil clears the combined depth stencil attachment.
type ClearDepthStencil struct {
	Depth   float32
	Stencil int32
}

func (c ClearColorInt) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferiv(fb, gl.COLOR, int(c.Index), c.Value[:])
}

func (c ClearColorUint) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferuiv(fb, gl.COLOR, int(c.Index), c.Value[:])
}

func (c ClearColorFloat) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferfv(fb, gl.COLOR, int(c.Index), c.Value[:])
}

func (c ClearDepth) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferfv(fb, gl.DEPTH, 0, []float32{float32(c)})
}

func (c ClearStencil) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferiv(fb, gl.STENCIL, 0, []int32{int32(c)})
}

func (c ClearDepthStencil) clear(ctx gl.Context, fb gl.Framebuffer) {
	ctx.ClearNamedFramebufferfi(fb, gl.DEPTH_STENCIL, 0, c.Depth, c.Stencil)
}

// FramebufferStatus is the completeness of a framebuffer.
type FramebufferStatus uint8

const (
	FramebufferComplete FramebufferStatus = iota
	FramebufferUndefined
	FramebufferIncompleteAttachment
	FramebufferMissingAttachment
	FramebufferIncompleteDrawBuffer
	FramebufferIncompleteReadBuffer
	FramebufferUnsupported
	FramebufferIncompleteMultisample
	FramebufferIncompleteLayerTargets
)

// BlitMask selects the buffers copied by a framebuffer blit.
type BlitMask uint8

const (
	BlitColor BlitMask = 1 << iota
	BlitDepth
	BlitStencil
)

// Region is an integer rectangle in framebuffer coordinates. The
// origin is the lower left corner.
type Region struct {
	X, Y int32
	W, H int32
}

// CreateFramebuffer creates an empty framebuffer.
func (d *Device) CreateFramebuffer() (Framebuffer, error) {
	fb := d.ctx.CreateFramebuffer()
	if err := d.getError(); err != nil {
		return Framebuffer{}, fmt.Errorf("grr: create framebuffer: %w", err)
	}
	return Framebuffer{id: fb}, nil
}

// DeleteFramebuffer deletes fb.
func (d *Device) DeleteFramebuffer(fb Framebuffer) {
	d.DeleteFramebuffers([]Framebuffer{fb})
}

// DeleteFramebuffers deletes fbs in a single call.
func (d *Device) DeleteFramebuffers(fbs []Framebuffer) {
	ids := make([]gl.Framebuffer, len(fbs))
	for i, fb := range fbs {
		ids[i] = fb.id
	}
	d.ctx.DeleteFramebuffers(ids)
}

// CreateRenderbuffer allocates a width by height render target.
// Samples greater than 1 allocate multisampled storage.
func (d *Device) CreateRenderbuffer(format Format, width, height, samples uint32) (Renderbuffer, error) {
	rb := d.ctx.CreateRenderbuffer()
	if err := d.getError(); err != nil {
		return Renderbuffer{}, fmt.Errorf("grr: create renderbuffer: %w", err)
	}
	if samples > 1 {
		d.ctx.NamedRenderbufferStorageMultisample(rb, int(samples), format.glEnum(), int(width), int(height))
	} else {
		d.ctx.NamedRenderbufferStorage(rb, format.glEnum(), int(width), int(height))
	}
	if err := d.getError(); err != nil {
		d.ctx.DeleteRenderbuffers([]gl.Renderbuffer{rb})
		return Renderbuffer{}, fmt.Errorf("grr: allocate %dx%d %v renderbuffer: %w", width, height, format, err)
	}
	return Renderbuffer{id: rb}, nil
}

// DeleteRenderbuffer deletes rb.
func (d *Device) DeleteRenderbuffer(rb Renderbuffer) {
	d.DeleteRenderbuffers([]Renderbuffer{rb})
}

// DeleteRenderbuffers deletes rbs in a single call.
func (d *Device) DeleteRenderbuffers(rbs []Renderbuffer) {
	ids := make([]gl.Renderbuffer, len(rbs))
	for i, rb := range rbs {
		ids[i] = rb.id
	}
	d.ctx.DeleteRenderbuffers(ids)
}

// BindFramebuffer sets the target of draw and clear commands.
func (d *Device) BindFramebuffer(fb Framebuffer) {
	d.ctx.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.id)
}

// BindReadFramebuffer sets the source of attachment reads.
func (d *Device) BindReadFramebuffer(fb Framebuffer) {
	d.ctx.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.id)
}

// BindAttachments attaches images to fb. It panics for the default
// framebuffer.
func (d *Device) BindAttachments(fb Framebuffer, attachments []FramebufferAttachment) {
	if !fb.id.Valid() {
		panic("grr: the default framebuffer can't be changed")
	}
	for _, a := range attachments {
		a.View.attach(d.ctx, fb.id, a.Attachment.glEnum())
	}
}

// SetColorAttachments selects the color attachments written by
// fragment outputs. It panics for the default framebuffer.
func (d *Device) SetColorAttachments(fb Framebuffer, attachments []uint32) {
	if !fb.id.Valid() {
		panic("grr: the default framebuffer can't be changed")
	}
	bufs := make([]gl.Enum, len(attachments))
	for i, a := range attachments {
		bufs[i] = AttachmentColor(a).glEnum()
	}
	d.ctx.NamedFramebufferDrawBuffers(fb.id, bufs)
}

// ClearAttachment clears a single attachment of fb.
func (d *Device) ClearAttachment(fb Framebuffer, c ClearAttachment) {
	c.clear(d.ctx, fb.id)
}

// InvalidateAttachments discards the contents of attachments inside
// region.
func (d *Device) InvalidateAttachments(fb Framebuffer, attachments []Attachment, region Region) {
	ids := make([]gl.Enum, len(attachments))
	for i, a := range attachments {
		ids[i] = a.glEnum()
	}
	d.ctx.InvalidateNamedFramebufferSubData(fb.id, ids, int(region.X), int(region.Y), int(region.W), int(region.H))
}

// BlitFramebuffer copies src rectangle of the src framebuffer to the
// dst rectangle of dst, scaling with filter.
func (d *Device) BlitFramebuffer(src Framebuffer, srcRect Region, dst Framebuffer, dstRect Region, mask BlitMask, filter Filter) {
	d.ctx.BlitNamedFramebuffer(src.id, dst.id,
		int(srcRect.X), int(srcRect.Y), int(srcRect.X+srcRect.W), int(srcRect.Y+srcRect.H),
		int(dstRect.X), int(dstRect.Y), int(dstRect.X+dstRect.W), int(dstRect.Y+dstRect.H),
		mask.glEnum(), filter.glEnum())
}

// FramebufferStatus reports the completeness of fb as a draw target.
func (d *Device) FramebufferStatus(fb Framebuffer) FramebufferStatus {
	return framebufferStatusFromGL(d.ctx.CheckNamedFramebufferStatus(fb.id, gl.DRAW_FRAMEBUFFER))
}

func (a Attachment) glEnum() gl.Enum {
	switch a.kind {
	case attachColor:
		return gl.Enum(gl.COLOR_ATTACHMENT0 + a.index)
	case attachDepth:
		return gl.DEPTH_ATTACHMENT
	case attachStencil:
		return gl.STENCIL_ATTACHMENT
	case attachDepthStencil:
		return gl.DEPTH_STENCIL_ATTACHMENT
	default:
		panic("grr: unsupported attachment")
	}
}

func (a Attachment) String() string {
	switch a.kind {
	case attachColor:
		return fmt.Sprintf("color%d", a.index)
	case attachDepth:
		return "depth"
	case attachStencil:
		return "stencil"
	default:
		return "depth stencil"
	}
}

func (m BlitMask) glEnum() gl.Enum {
	var e gl.Enum
	if m&BlitColor != 0 {
		e |= gl.COLOR_BUFFER_BIT
	}
	if m&BlitDepth != 0 {
		e |= gl.DEPTH_BUFFER_BIT
	}
	if m&BlitStencil != 0 {
		e |= gl.STENCIL_BUFFER_BIT
	}
	return e
}

func framebufferStatusFromGL(e gl.Enum) FramebufferStatus {
	switch e {
	case gl.FRAMEBUFFER_COMPLETE:
		return FramebufferComplete
	case gl.FRAMEBUFFER_UNDEFINED:
		return FramebufferUndefined
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return FramebufferIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACH:
		return FramebufferMissingAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return FramebufferIncompleteDrawBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return FramebufferIncompleteReadBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return FramebufferIncompleteMultisample
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return FramebufferIncompleteLayerTargets
	default:
		return FramebufferUnsupported
	}
}

func (s FramebufferStatus) String() string {
	switch s {
	case FramebufferComplete:
		return "complete"
	case FramebufferUndefined:
		return "undefined"
	case FramebufferIncompleteAttachment:
		return "incomplete attachment"
	case FramebufferMissingAttachment:
		return "missing attachment"
	case FramebufferIncompleteDrawBuffer:
		return "incomplete draw buffer"
	case FramebufferIncompleteReadBuffer:
		return "incomplete read buffer"
	case FramebufferIncompleteMultisample:
		return "incomplete multisample"
	case FramebufferIncompleteLayerTargets:
		return "incomplete layer targets"
	default:
		return "unsupported"
	}
}
