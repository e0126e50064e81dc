// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"image"
	"image/draw"
	"log"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/tinyoled/image1bit"
	"github.com/GermanBionicSystems/tinyoled/termview"
)

// Example rasterizes a TrueType banner at panel resolution and shows it on
// the terminal emulation of the display. The same image could be handed to
// oled.Dev.Draw unchanged.
func Example() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 24})

	dc := gg.NewContext(128, 32)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face)
	dc.DrawStringAnchored("tinyoled", 64, 14, 0.5, 0.5)

	// Threshold the grayscale rendering into the panel's 1-bit page format.
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
	draw.Src.Draw(img, img.Bounds(), dc.Image(), image.Point{})

	view, err := termview.New(&termview.Opts{W: 128, H: 32})
	if err != nil {
		log.Fatal(err)
	}
	defer view.Halt()
	if err := view.Draw(view.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
}
