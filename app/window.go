// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package app

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/grr"
	_ "gioui.org/grr/gldriver"
)

func init() {
	// glfw calls must be made from the main thread.
	runtime.LockOSThread()
}

// Window is an operating system window with a current OpenGL context.
type Window struct {
	// Device records work for the window context.
	Device *grr.Device

	win *glfw.Window
	cnf Config
}

// NewWindow creates a window and makes its context current on the
// calling thread.
func NewWindow(opts ...Option) (*Window, error) {
	cnf := newConfig(opts)
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(cnf.Debug))
	glfw.WindowHint(glfw.Visible, boolHint(!cnf.Hidden))
	glfw.WindowHint(glfw.Samples, cnf.Samples)
	win, err := glfw.CreateWindow(cnf.Size.X, cnf.Size.Y, cnf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("app: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cnf.SwapInterval)

	devOpts := grr.Options{Logger: cnf.Logger}
	if cnf.Debug {
		devOpts.Debug = &grr.Debug{Report: grr.DebugWarning | grr.DebugError | grr.DebugPerformanceWarning}
	}
	dev, err := grr.New(glfw.GetProcAddress, devOpts)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	cnf.Logger.Debug("app: window created", "title", cnf.Title, "size", cnf.Size)
	return &Window{Device: dev, win: win, cnf: cnf}, nil
}

// Config returns the configuration the window was created with.
func (w *Window) Config() Config {
	return w.cnf
}

// FramebufferSize returns the size of the default framebuffer in
// pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the default framebuffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Close destroys the window and releases the windowing system.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

// PollEvents processes pending window events.
func PollEvents() {
	glfw.PollEvents()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
