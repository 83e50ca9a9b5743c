// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"log/slog"
)

// Config describes a Window.
type Config struct {
	// Title is the window title.
	Title string
	// Size is the requested size of the window in screen coordinates.
	Size image.Point
	// Hidden windows are never shown. They are useful for offscreen
	// work and queries.
	Hidden bool
	// Samples is the number of samples of the default framebuffer.
	Samples int
	// Debug requests a debug context and routes its messages to
	// the device.
	Debug bool
	// SwapInterval is the number of screen updates to wait for in
	// SwapBuffers. Zero disables vsync.
	SwapInterval int
	// Logger receives device and window log output.
	Logger *slog.Logger
}

// Option configures a window.
type Option func(cnf *Config)

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the size of the window.
func Size(w, h int) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Point{X: w, Y: h}
	}
}

// Hidden keeps the window invisible.
func Hidden() Option {
	return func(cnf *Config) {
		cnf.Hidden = true
	}
}

// Samples sets the sample count of the default framebuffer.
func Samples(n int) Option {
	if n < 0 {
		panic("sample count must not be negative")
	}
	return func(cnf *Config) {
		cnf.Samples = n
	}
}

// Debug requests a debug context.
func Debug() Option {
	return func(cnf *Config) {
		cnf.Debug = true
	}
}

// SwapInterval sets the swap interval. Zero disables vsync.
func SwapInterval(n int) Option {
	return func(cnf *Config) {
		cnf.SwapInterval = n
	}
}

// Logger sets the logger of the window and its device.
func Logger(l *slog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

func newConfig(opts []Option) Config {
	cnf := Config{
		Title:        "grr",
		Size:         image.Pt(800, 600),
		SwapInterval: 1,
	}
	for _, o := range opts {
		o(&cnf)
	}
	if cnf.Logger == nil {
		cnf.Logger = slog.Default()
	}
	return cnf
}
