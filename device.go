// SPDX-License-Identifier: Unlicense OR MIT

// Package grr is a thin, descriptor driven layer over OpenGL 4.5 core
// contexts with direct state access.
//
// Resources, pipelines and fixed function state are described with
// plain values and translated into context calls when they are
// created or bound. A Device does no state tracking, caching or
// validation beyond resolving targets and formats, and is not safe
// for concurrent use.
//
// The package does not link a native OpenGL implementation. Programs
// import gioui.org/grr/gldriver for that, usually through
// gioui.org/grr/app.
package grr

import (
	"fmt"
	"log/slog"
	"unsafe"

	"gioui.org/grr/internal/gl"
)

// Loader resolves an OpenGL entry point of the current context.
type Loader func(name string) unsafe.Pointer

// Options configure a Device.
type Options struct {
	// Logger receives shader logs, and debug messages when no debug
	// callback is set. The default is slog.Default().
	Logger *slog.Logger
	// Debug enables the debug output of the context. Nil disables it.
	Debug *Debug
}

// Debug configures the debug output of a context.
type Debug struct {
	// Callback receives the messages. If nil, messages are written to
	// the device logger.
	Callback DebugCallback
	// Report selects the severities that are reported.
	Report DebugReport
}

// Device wraps a current OpenGL context.
//
// The context must stay current on the calling thread for every
// Device method.
type Device struct {
	ctx  gl.Context
	log  *slog.Logger
	info Info
}

// Info describes the context of a Device.
type Info struct {
	Version  [2]int
	Vendor   string
	Renderer string
	GLSL     string
}

// Limits are implementation limits of the context.
type Limits struct {
	MaxTextureSize          int
	Max3DTextureSize        int
	MaxArrayTextureLayers   int
	MaxColorAttachments     int
	MaxSamples              int
	MaxVertexAttributes     int
	MaxViewports            int
	MaxUniformBuffers       int
	MaxShaderStorageBuffers int
}

// New creates a Device for the context current on the calling
// thread. The loader is used once to resolve every entry point.
func New(load Loader, opts Options) (*Device, error) {
	if gl.NewContext == nil {
		return nil, ErrNoDriver
	}
	ctx, err := gl.NewContext(load)
	if err != nil {
		return nil, fmt.Errorf("grr: load OpenGL functions: %w", err)
	}
	return newDevice(ctx, opts)
}

func newDevice(ctx gl.Context, opts Options) (*Device, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	glVer := ctx.GetString(gl.VERSION)
	ver, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, fmt.Errorf("grr: %w", err)
	}
	if ver[0] < 4 || ver[0] == 4 && ver[1] < 5 {
		return nil, fmt.Errorf("%w (have %d.%d)", ErrVersion, ver[0], ver[1])
	}
	d := &Device{
		ctx: ctx,
		log: logger,
		info: Info{
			Version:  ver,
			Vendor:   ctx.GetString(gl.VENDOR),
			Renderer: ctx.GetString(gl.RENDERER),
			GLSL:     ctx.GetString(gl.SHADING_LANGUAGE_VERSION),
		},
	}
	if opts.Debug != nil {
		d.enableDebugOutput(*opts.Debug)
	}
	// sRGB framebuffers, lower left origin with [0, 1] depth and
	// scissoring are always on.
	ctx.Enable(gl.FRAMEBUFFER_SRGB)
	ctx.ClipControl(gl.LOWER_LEFT, gl.ZERO_TO_ONE)
	ctx.Enable(gl.SCISSOR_TEST)
	logger.Info("grr: device created",
		"version", glVer,
		"renderer", d.info.Renderer,
		"vendor", d.info.Vendor,
		"debug", opts.Debug != nil,
	)
	return d, nil
}

// Info returns the context description.
func (d *Device) Info() Info {
	return d.info
}

// Limits queries the implementation limits.
func (d *Device) Limits() Limits {
	return Limits{
		MaxTextureSize:          d.ctx.GetInteger(gl.MAX_TEXTURE_SIZE),
		Max3DTextureSize:        d.ctx.GetInteger(gl.MAX_3D_TEXTURE_SIZE),
		MaxArrayTextureLayers:   d.ctx.GetInteger(gl.MAX_ARRAY_TEXTURE_LAYERS),
		MaxColorAttachments:     d.ctx.GetInteger(gl.MAX_COLOR_ATTACHMENTS),
		MaxSamples:              d.ctx.GetInteger(gl.MAX_SAMPLES),
		MaxVertexAttributes:     d.ctx.GetInteger(gl.MAX_VERTEX_ATTRIBS),
		MaxViewports:            d.ctx.GetInteger(gl.MAX_VIEWPORTS),
		MaxUniformBuffers:       d.ctx.GetInteger(gl.MAX_UNIFORM_BUFFER_BINDINGS),
		MaxShaderStorageBuffers: d.ctx.GetInteger(gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS),
	}
}

// Flush submits the recorded commands.
func (d *Device) Flush() {
	d.ctx.Flush()
}

// Finish blocks until every submitted command has completed.
func (d *Device) Finish() {
	d.ctx.Finish()
}

// Error returns the next error flag of the context, or nil.
func (d *Device) Error() error {
	return d.getError()
}

func (d *Device) getError() error {
	return errorFromGL(d.ctx.GetError())
}
