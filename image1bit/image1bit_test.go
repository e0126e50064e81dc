// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewVerticalLSB(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 32))
	if len(img.Pix) != 512 {
		t.Fatalf("Pix holds %d bytes, want 512", len(img.Pix))
	}
	if img.Bounds() != image.Rect(0, 0, 128, 32) {
		t.Fatalf("Bounds() = %s", img.Bounds())
	}
	// Height gets rounded up to whole bands.
	img = NewVerticalLSB(image.Rect(0, 0, 8, 9))
	if img.Bounds().Dy() != 16 {
		t.Errorf("Bounds().Dy() = %d, want 16", img.Bounds().Dy())
	}
	if len(img.Pix) != 16 {
		t.Errorf("Pix holds %d bytes, want 16", len(img.Pix))
	}
}

func TestSetBit(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))
	img.SetBit(3, 0, On)
	img.SetBit(3, 7, On)
	img.SetBit(3, 8, On)
	if img.Pix[3] != 0x81 {
		t.Errorf("Pix[3] = %#02x, want 0x81: LSB is the top pixel", img.Pix[3])
	}
	if img.Pix[16+3] != 0x01 {
		t.Errorf("Pix[19] = %#02x, want 0x01: second band starts at y=8", img.Pix[16+3])
	}
	img.SetBit(3, 7, Off)
	if img.Pix[3] != 0x01 {
		t.Errorf("Pix[3] = %#02x after clearing bit, want 0x01", img.Pix[3])
	}
	if !img.BitAt(3, 0) || img.BitAt(3, 7) {
		t.Error("BitAt() disagrees with SetBit()")
	}
	// Out of bounds is a no-op, not a panic.
	img.SetBit(-1, 99, On)
	if img.BitAt(-1, 99) != Off {
		t.Error("out of bounds BitAt() should read Off")
	}
}

func TestBitModel(t *testing.T) {
	if BitModel.Convert(color.White) != On {
		t.Error("white should convert to On")
	}
	if BitModel.Convert(color.Black) != Off {
		t.Error("black should convert to Off")
	}
	if On.String() != "On" || Off.String() != "Off" {
		t.Error("Bit.String()")
	}
	if r, _, _, a := On.RGBA(); r != 0xFFFF || a != 0xFFFF {
		t.Error("On.RGBA()")
	}
}

func TestDraw(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 32, 8))
	draw.Src.Draw(img, image.Rect(0, 0, 8, 8), image.NewUniform(color.White), image.Point{})
	for x := 0; x < 8; x++ {
		if img.Pix[x] != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0xff", x, img.Pix[x])
		}
	}
	for x := 8; x < 32; x++ {
		if img.Pix[x] != 0x00 {
			t.Fatalf("Pix[%d] = %#02x, want 0x00", x, img.Pix[x])
		}
	}
}

func TestDrawText(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 64, 16))
	DrawText(img, image.Point{X: 0, Y: 12}, "Hi")
	set := 0
	for _, b := range img.Pix {
		for ; b != 0; b >>= 1 {
			if b&1 != 0 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("DrawText() painted no pixels")
	}
}
