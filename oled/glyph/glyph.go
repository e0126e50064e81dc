// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph turns characters and digit codes into the column-byte
// sequences an SSD1306-class controller consumes.
//
// Two renderers are provided. Char and Text use a 5x8 ASCII font, one page
// tall, suitable for the controller's horizontal addressing mode. Digit uses
// a compact 3x8 digit font stretched 4x vertically and 4x to 6x horizontally
// into 16-column numerals that fill a 128x32 panel eight to a row, which
// needs the vertical addressing mode so consecutive bytes run down the
// pages before advancing a column.
package glyph

// Width of one rendered symbol in bytes, spacer included.
const (
	CharWidth  = 6  // 1 spacer column + 5 glyph columns
	DigitWidth = 64 // 8 spacer bytes + 3 stretched source bytes at 4x/6x/4x
)

const (
	charBase    = 32 // first symbol in Font5x8
	charColumns = 5
)

// Char renders a single ASCII character: one blank spacer column followed by
// the five glyph columns. Characters outside the table render as a space.
func Char(c byte) []byte {
	if c < charBase || int(c-charBase)*charColumns >= len(Font5x8) {
		c = ' '
	}
	off := int(c-charBase) * charColumns
	out := make([]byte, 1, CharWidth)
	return append(out, Font5x8[off:off+charColumns]...)
}

// Text renders s one character at a time, in order. The result is meant to
// be streamed in a single data transaction at the current cursor position.
func Text(s string) []byte {
	out := make([]byte, 0, len(s)*CharWidth)
	for i := 0; i < len(s); i++ {
		out = append(out, Char(s[i])...)
	}
	return out
}

// Stretch doubles the two low bits of b twice over, so that bit 0 fills the
// low nibble and bit 1 the high nibble of the result. It is the vertical 4x
// expansion of the big-digit renderer, applied to one 2-bit group at a time.
func Stretch(b byte) byte {
	b = ((b & 2) << 3) | (b & 1) // split the 2 LSB into the nibbles
	b |= b << 1                  // double the bits
	b |= b << 2                  // double them again = 4 times
	return b
}

// Digit renders one big-digit cell for code v (0-15 for hex digits, or one
// of Dot, Colon, Minus, Blank). Eight zero bytes of spacing come first, then
// each of the three source bytes is expanded into four vertically stretched
// bytes, written 4 times over in the x direction, 6 times for the middle
// byte to widen its stroke. Codes beyond the table render as Blank.
func Digit(v byte) []byte {
	if int(v)*3 >= len(Digits3x8) {
		v = Blank
	}
	off := int(v) * 3
	out := make([]byte, 8, DigitWidth)
	for i := 0; i < 3; i++ {
		b := Digits3x8[off+i]
		var sb [4]byte
		for j := range sb {
			sb[j] = Stretch(b)
			b >>= 2
		}
		rep := 4
		if i == 1 {
			rep = 6
		}
		for ; rep > 0; rep-- {
			out = append(out, sb[:]...)
		}
	}
	return out
}
