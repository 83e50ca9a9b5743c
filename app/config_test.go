// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cnf := newConfig(nil)
	assert.Equal(t, "grr", cnf.Title)
	assert.Equal(t, image.Pt(800, 600), cnf.Size)
	assert.Equal(t, 1, cnf.SwapInterval)
	assert.False(t, cnf.Hidden)
	assert.Same(t, slog.Default(), cnf.Logger)
}

func TestConfigOptions(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	cnf := newConfig([]Option{
		Title("info"),
		Size(64, 32),
		Hidden(),
		Samples(4),
		Debug(),
		SwapInterval(0),
		Logger(l),
	})
	assert.Equal(t, Config{
		Title:        "info",
		Size:         image.Pt(64, 32),
		Hidden:       true,
		Samples:      4,
		Debug:        true,
		SwapInterval: 0,
		Logger:       l,
	}, cnf)
}

func TestInvalidOptions(t *testing.T) {
	assert.Panics(t, func() { Size(0, 10) })
	assert.Panics(t, func() { Size(10, -1) })
	assert.Panics(t, func() { Samples(-1) })
}
