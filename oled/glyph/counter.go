// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

// Counter is a 24-bit hexadecimal counter laid out as an 8-cell big-digit
// frame: the high sub-counter, a colon that blinks in step with the low
// sub-counter, the middle sub-counter, a dot, then the low sub-counter.
//
// The zero value is a counter at 0.
type Counter struct {
	low, mid, high uint8
}

// Increment adds one. An 8-bit sub-counter wrapping from 0xFF to 0x00
// carries exactly one increment into the next sub-counter.
func (c *Counter) Increment() {
	c.low++
	if c.low == 0 {
		c.mid++
		if c.mid == 0 {
			c.high++
		}
	}
}

// Value returns the current 24-bit value.
func (c *Counter) Value() uint32 {
	return uint32(c.high)<<16 | uint32(c.mid)<<8 | uint32(c.low)
}

// Frame returns the 8 digit codes for the current value, highest order
// first, ready for the big-digit renderer. The colon cell toggles on bit 3
// of the low sub-counter, so its blink rate tracks increments, not time.
func (c *Counter) Frame() [8]byte {
	f := [8]byte{
		c.high >> 4, c.high & 0x0F, Blank,
		c.mid >> 4, c.mid & 0x0F, Dot,
		c.low >> 4, c.low & 0x0F,
	}
	if c.low&0x08 != 0 {
		f[2] = Colon
	}
	return f
}
