// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStretch(t *testing.T) {
	// Each of the two input bits must fill 4 consecutive output bits.
	for _, tc := range []struct {
		in   byte
		want byte
	}{
		{0x0, 0x00},
		{0x1, 0x0F},
		{0x2, 0xF0},
		{0x3, 0xFF},
	} {
		if got := Stretch(tc.in); got != tc.want {
			t.Errorf("Stretch(%#x) = %#02x, want %#02x", tc.in, got, tc.want)
		}
	}
	// Bits above the low pair must not leak into the result.
	for _, in := range []byte{0x4, 0xFC} {
		if got := Stretch(in); got != 0x00 {
			t.Errorf("Stretch(%#02x) = %#02x, want 0x00", in, got)
		}
	}
}

func TestFontTables(t *testing.T) {
	if len(Font5x8) != 64*5 {
		t.Errorf("Font5x8 holds %d bytes, want %d", len(Font5x8), 64*5)
	}
	if len(Digits3x8) != 20*3 {
		t.Errorf("Digits3x8 holds %d bytes, want %d", len(Digits3x8), 20*3)
	}
	if got, want := Digits3x8[0:3], []byte{0x7F, 0x41, 0x7F}; !bytes.Equal(got, want) {
		t.Errorf("digit 0 glyph = %#02x, want %#02x", got, want)
	}
}

func TestChar(t *testing.T) {
	got := Char('A')
	want := []byte{0x00, 0x7C, 0x12, 0x11, 0x12, 0x7C}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Char('A') difference (-got +want):\n%s", diff)
	}
	// Out-of-table characters render as a space, not garbage.
	if got := Char(0x7F); !bytes.Equal(got, make([]byte, CharWidth)) {
		t.Errorf("Char(0x7f) = %#02x, want all blank", got)
	}
	if got := Char(0x01); !bytes.Equal(got, make([]byte, CharWidth)) {
		t.Errorf("Char(0x01) = %#02x, want all blank", got)
	}
}

func TestText(t *testing.T) {
	// "A!": spacer + 'A' columns, spacer + '!' columns, 12 bytes total.
	got := Text("A!")
	want := []byte{
		0x00, 0x7C, 0x12, 0x11, 0x12, 0x7C,
		0x00, 0x00, 0x00, 0x2F, 0x00, 0x00,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Text(\"A!\") difference (-got +want):\n%s", diff)
	}
	if got := Text(""); len(got) != 0 {
		t.Errorf("Text(\"\") = %d bytes, want none", len(got))
	}
}

func TestDigitShape(t *testing.T) {
	for v := byte(0); v < 20; v++ {
		got := Digit(v)
		if len(got) != DigitWidth {
			t.Fatalf("Digit(%d) = %d bytes, want %d", v, len(got), DigitWidth)
		}
		if !bytes.Equal(got[:8], make([]byte, 8)) {
			t.Errorf("Digit(%d) spacer not blank: %#02x", v, got[:8])
		}
	}
	// Codes beyond the table render as Blank.
	if !bytes.Equal(Digit(20), Digit(Blank)) {
		t.Error("Digit(20) should render as Blank")
	}
}

func TestDigitStretching(t *testing.T) {
	// Digit 1 is {0x00, 0x00, 0x7F}: two blank source bytes, then a full
	// vertical bar missing only the bottommost original pixel. Stretched,
	// the bar becomes {0xFF, 0xFF, 0xFF, 0x0F} down the four pages,
	// repeated over the last four columns.
	got := Digit(1)
	bar := []byte{0xFF, 0xFF, 0xFF, 0x0F}
	// 8 spacer + 4 blank columns + 6 blank columns, then 4 bar columns.
	blank := 8 + (4+6)*4
	if !bytes.Equal(got[:blank], make([]byte, blank)) {
		t.Errorf("Digit(1) leading bytes not blank: %#02x", got[:blank])
	}
	for col := 0; col < 4; col++ {
		off := blank + col*4
		if !bytes.Equal(got[off:off+4], bar) {
			t.Errorf("Digit(1) column %d = %#02x, want %#02x", col, got[off:off+4], bar)
		}
	}
}

func TestDigitMiddleRepeat(t *testing.T) {
	// The middle source byte of digit 0 is 0x41: bits 0 and 6 set, so the
	// first and last 2-bit groups each stretch to 0x0F on pages 0 and 3.
	got := Digit(0)
	mid := []byte{0x0F, 0x00, 0x00, 0x0F}
	for col := 0; col < 6; col++ {
		off := 8 + 4*4 + col*4
		if !bytes.Equal(got[off:off+4], mid) {
			t.Errorf("Digit(0) middle column %d = %#02x, want %#02x", col, got[off:off+4], mid)
		}
	}
}
