// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

// Command grrinfo prints the OpenGL context description and limits
// seen by grr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"gioui.org/grr"
	"gioui.org/grr/app"
)

var (
	debug   = flag.Bool("debug", false, "create a debug context and log its messages")
	limits  = flag.Bool("limits", true, "print implementation limits")
	capture = flag.String("capture", "", "clear a small framebuffer and write it as PNG to the named file")
	verbose = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "grrinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(out io.Writer) error {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts := []app.Option{app.Title("grrinfo"), app.Size(64, 64), app.Hidden(), app.Logger(logger)}
	if *debug {
		opts = append(opts, app.Debug())
	}
	w, err := app.NewWindow(opts...)
	if err != nil {
		return err
	}
	defer w.Close()
	d := w.Device

	info := d.Info()
	fmt.Fprintf(out, "version:  %d.%d\n", info.Version[0], info.Version[1])
	fmt.Fprintf(out, "vendor:   %s\n", info.Vendor)
	fmt.Fprintf(out, "renderer: %s\n", info.Renderer)
	fmt.Fprintf(out, "glsl:     %s\n", info.GLSL)
	if *limits {
		printLimits(out, d.Limits())
	}
	if *capture != "" {
		if err := captureTo(d, *capture); err != nil {
			return err
		}
	}
	if err := d.Error(); err != nil {
		return err
	}
	return nil
}

func printLimits(out io.Writer, l grr.Limits) {
	rows := []struct {
		name string
		v    int
	}{
		{"max texture size", l.MaxTextureSize},
		{"max 3d texture size", l.Max3DTextureSize},
		{"max array texture layers", l.MaxArrayTextureLayers},
		{"max color attachments", l.MaxColorAttachments},
		{"max samples", l.MaxSamples},
		{"max vertex attributes", l.MaxVertexAttributes},
		{"max viewports", l.MaxViewports},
		{"max uniform buffers", l.MaxUniformBuffers},
		{"max storage buffers", l.MaxShaderStorageBuffers},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-26s %d\n", r.name+":", r.v)
	}
}

func captureTo(d *grr.Device, path string) error {
	const size = 16
	rb, err := d.CreateRenderbuffer(grr.R8G8B8A8Unorm, size, size, 1)
	if err != nil {
		return err
	}
	defer d.DeleteRenderbuffer(rb)
	fb, err := d.CreateFramebuffer()
	if err != nil {
		return err
	}
	defer d.DeleteFramebuffer(fb)
	d.BindAttachments(fb, []grr.FramebufferAttachment{
		{Attachment: grr.AttachmentColor(0), View: rb},
	})
	if s := d.FramebufferStatus(fb); s != grr.FramebufferComplete {
		return fmt.Errorf("capture framebuffer incomplete: %v", s)
	}
	d.ClearAttachment(fb, grr.ClearColorFloat{Index: 0, Value: [4]float32{0.2, 0.4, 0.8, 1}})
	d.BindReadFramebuffer(fb)
	pix := d.ReadAttachmentImage(grr.Region{W: size, H: size})
	d.BindReadFramebuffer(grr.DefaultFramebuffer)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pix); err != nil {
		f.Close()
		return err
	}
	return errors.Join(f.Close(), d.Error())
}
