// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a display.Drawer that emulates a small
// monochrome OLED panel on the terminal (stdout) using ANSI color codes.
//
// It accepts the same page-format pixel stream as the oled package, so the
// whole rendering pipeline can be exercised while you are waiting for the
// actual panel to come by mail.
package termview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/tinyoled/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel dimensions. H must be a multiple of 8,
	// matching the page layout of the real controller.
	W int
	H int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Writer overrides the colorable stdout, mainly for captures and tests.
	Writer io.Writer
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	img     *image1bit.VerticalLSB

	buf    bytes.Buffer
	frames int
}

var (
	lit   = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	unlit = color.NRGBA{0x30, 0x30, 0x30, 0xFF}
)

// New returns a Dev that displays at the console.
//
// Permits local testing of the glyph renderers and display code paths.
func New(opts *Opts) (*Dev, error) {
	if opts.W <= 0 || opts.H <= 0 || opts.H&7 != 0 {
		return nil, fmt.Errorf("termview: invalid dimensions %dx%d", opts.W, opts.H)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		palette: *p,
		img:     image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermView{%s}", d.img.Bounds().Max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write accepts a full frame of page-format pixels, the same stream the
// real panel takes, and renders it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.img.Pix) {
		return 0, fmt.Errorf("termview: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.img.Pix), len(pixels))
	}
	copy(d.img.Pix, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.img, r.Intersect(d.Bounds()), src, sp)
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call. After the first frame the cursor moves back up so animations
	// redraw in place.
	d.buf.Reset()
	if d.frames > 0 {
		fmt.Fprintf(&d.buf, "\033[%dA", d.img.Bounds().Dy())
	}
	d.frames++
	for y := 0; y < d.img.Bounds().Dy(); y++ {
		_, _ = d.buf.WriteString("\r")
		for x := 0; x < d.img.Bounds().Dx(); x++ {
			c := unlit
			if d.img.BitAt(x, y) {
				c = lit
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
