// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinyoled drives a small SSD1306-class monochrome OLED from plain
// GPIO pins, for hosts that have no usable hardware I²C peripheral.
//
// The module is split the periph.io way, one package per concern:
//
//   - i2cbang: a software (bitbanged) I²C master over two open-drain lines.
//   - oled: a minimal SSD1306 driver with a fixed init table, cursor, clear,
//     text and big-digit rendering.
//   - oled/glyph: compact column-byte fonts and the stretch expansion that
//     turns 3x8 digit cells into 4x-scaled numerals.
//   - image1bit: the controller's vertical-LSB page format as an image.Image.
//   - termview: a terminal emulation of the panel for hardware-free hacking.
package tinyoled
