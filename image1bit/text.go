// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawText draws s into dst with the 7x13 basic font, the dot of the first
// glyph at p. It is a convenience for host-side composition; glyph-accurate
// column rendering lives in the oled/glyph package.
func DrawText(dst *VerticalLSB, p image.Point, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(On),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}
