// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled controls a monochrome OLED display via an SSD1306-class
// controller over I²C, with the smallest command set that gets pixels on the
// glass.
//
// Unlike full-featured SSD1306 drivers there is no variant detection, no
// differential updates and no read-back: a fixed init table brings the panel
// up, then raw column bytes are streamed at the cursor. That makes every
// write fire-and-forget; a disconnected or misbehaving panel is
// indistinguishable from a working one at the API level, which is the
// expected trade-off when the bus itself (see package i2cbang) never checks
// acknowledgments.
//
// The glyph subpackage renders text and big digits into the column-byte
// format the controller consumes.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package oled
