// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements the 1-bit pixel format of SSD1306-class
// controllers as a standard library image.
//
// The controller's RAM is organized in pages, horizontal bands 8 pixels
// high. Each byte covers one column of a band, least significant bit on top.
// VerticalLSB stores its pixels in exactly that layout, so its Pix buffer
// can be streamed to the display without conversion.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color, either On or Off.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color model for Bit.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// convertBit thresholds on the green channel, which carries most of the
// luminosity.
func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		_, g, _, _ := c.RGBA()
		return Bit(g >= 0x8000)
	}
}

// VerticalLSB is a 1-bit image in the controller's page layout.
//
// It implements image.Image and draw.Image.
type VerticalLSB struct {
	// Pix holds the pixels, one byte per column of an 8 pixel high band,
	// LSB on top, bands in order from the top of the image.
	Pix []byte
	// Stride is the Pix offset between vertically adjacent bands.
	Stride int
	// Rect is the image bounds. Its height is a multiple of 8.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized (all Off) image. The height of r is
// rounded up to a multiple of 8 to cover whole bands.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	bands := (r.Dy() + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*bands),
		Stride: w,
		Rect:   image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+bands*8),
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the specialized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !image.Pt(x, y).In(i.Rect) {
		return Off
	}
	offset, mask := i.pixelOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the specialized version of Set().
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !image.Pt(x, y).In(i.Rect) {
		return
	}
	offset, mask := i.pixelOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

func (i *VerticalLSB) pixelOffset(x, y int) (int, byte) {
	x -= i.Rect.Min.X
	y -= i.Rect.Min.Y
	return (y/8)*i.Stride + x, 1 << uint(y&7)
}
