// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/tinyoled/image1bit"
	"github.com/GermanBionicSystems/tinyoled/oled/glyph"
)

const (
	_SETLOWCOLUMN     = 0x00
	_SETHIGHCOLUMN    = 0x10
	_MEMORYMODE       = 0x20
	_PAGEADDR         = 0x22
	_CHARGEPUMP       = 0x8D
	_SETSEGMENTREMAP  = 0xA1
	_SETMULTIPLEX     = 0xA8
	_DISPLAYOFF       = 0xAE
	_DISPLAYON        = 0xAF
	_PAGESTARTADDRESS = 0xB0
	_COMSCANDEC       = 0xC8
	_SETDISPLAYOFFSET = 0xD3
	_SETPRECHARGE     = 0xD9
	_SETCOMPINS       = 0xDA
	_SETVCOMDETECT    = 0xDB
)

const (
	i2cCmd  = 0x00 // I²C transaction has a stream of command bytes
	i2cData = 0x40 // I²C transaction has a stream of data bytes
)

// AddrMode is the controller's memory addressing mode: the order in which
// the write pointer auto-increments through display RAM.
type AddrMode byte

// Possible addressing modes.
const (
	// Horizontal advances column by column through a page, then moves to
	// the next page. Suits the one-page-high text renderer.
	Horizontal AddrMode = 0x00
	// Vertical advances page by page down a column, then moves to the next
	// column. The big-digit renderer emits bytes in this order.
	Vertical AddrMode = 0x01
)

// DefaultOpts is the recommended default options: the common 128x32 module
// at its usual address.
var DefaultOpts = Opts{
	W:    128,
	H:    32,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// Mode is the memory addressing mode set at init time.
	Mode AddrMode
	// Rotated mounts the panel upside down: segment remap plus reversed COM
	// scan direction.
	Rotated bool
	// Addr is the 7-bit I²C address of the display. 0 means DefaultOpts.Addr.
	Addr uint16
}

// Dev is an open handle to the display controller.
type Dev struct {
	c    conn.Conn
	rect image.Rectangle
	mode AddrMode
	// halted tracks a Halt() so the next command transparently re-enables
	// the display, the way the bigger ssd1306 driver behaves.
	halted bool
}

// NewI2C returns a Dev ready for writes: the init table has been sent and
// the display is on, showing whatever was in its RAM.
//
// Callers typically follow up with Clear().
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	if opts.W < 8 || opts.W > 128 || opts.W&7 != 0 {
		return nil, fmt.Errorf("oled: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 64 || opts.H&7 != 0 {
		return nil, fmt.Errorf("oled: invalid height %d", opts.H)
	}
	d := &Dev{
		c:    &i2c.Dev{Bus: bus, Addr: addr},
		rect: image.Rect(0, 0, opts.W, opts.H),
		mode: opts.Mode,
	}
	if err := d.sendCommand(initCmd(opts)); err != nil {
		return nil, err
	}
	return d, nil
}

func initCmd(opts *Opts) []byte {
	// COM pin configuration, see page 40: sequential for short panels,
	// alternative for 64 lines.
	hwLayout := byte(0x02)
	if opts.H > 32 {
		hwLayout = 0x12
	}
	c := []byte{
		_SETMULTIPLEX, byte(opts.H - 1),
		_PAGEADDR, 0x00, byte(opts.H/8 - 1),
		_MEMORYMODE, byte(opts.Mode),
		_SETDISPLAYOFFSET, 0x00,
		_SETCOMPINS, hwLayout,
		_SETVCOMDETECT, 0x40,
		_SETPRECHARGE, 0xF1,
		_CHARGEPUMP, 0x14, // the charge pump must be on before display on
		_DISPLAYON,
	}
	if opts.Rotated {
		c = append(c, _SETSEGMENTREMAP, _COMSCANDEC)
	}
	return c
}

func (d *Dev) String() string {
	return fmt.Sprintf("oled.Dev{%s, %s}", d.c, d.rect.Max)
}

// SetCursor moves the RAM write pointer to the given column and page. The
// next data write starts there and auto-increments per the addressing mode.
func (d *Dev) SetCursor(col, page int) error {
	if col < 0 || col >= d.rect.Dx() {
		return fmt.Errorf("oled: invalid column %d", col)
	}
	if page < 0 || page >= d.rect.Dy()/8 {
		return fmt.Errorf("oled: invalid page %d", page)
	}
	return d.sendCommand([]byte{
		_SETLOWCOLUMN | byte(col)&0x0F,
		_SETHIGHCOLUMN | byte(col)>>4,
		_PAGESTARTADDRESS | byte(page),
	})
}

// Clear resets the cursor to the origin and zeroes the full panel RAM in a
// single data transaction.
func (d *Dev) Clear() error {
	if err := d.SetCursor(0, 0); err != nil {
		return err
	}
	return d.sendData(make([]byte, d.frameSize()))
}

// Write streams raw page-format pixel bytes from the current cursor in one
// data transaction. The stream must cover the full frame; use SetCursor plus
// Text/BigDigits for partial updates.
//
// This accepts the content of image1bit.VerticalLSB.Pix when the display is
// in Horizontal addressing mode.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != d.frameSize() {
		return 0, fmt.Errorf("oled: invalid pixel stream length; expected %d bytes, got %d bytes", d.frameSize(), len(pixels))
	}
	if err := d.sendData(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Text renders s with the 5x8 font at the current cursor, one spacer column
// ahead of every glyph, all within a single data transaction. Requires
// Horizontal addressing mode to line up.
func (d *Dev) Text(s string) error {
	if len(s) == 0 {
		return nil
	}
	return d.sendData(glyph.Text(s))
}

// BigDigits renders frame with the stretched 3x8 digit font, one 16-column
// cell per code, in a single data transaction. Eight cells fill a 128 pixel
// wide panel. Requires Vertical addressing mode on a 32 line panel.
func (d *Dev) BigDigits(frame []byte) error {
	if len(frame) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(frame)*glyph.DigitWidth)
	for _, v := range frame {
		buf = append(buf, glyph.Digit(v)...)
	}
	return d.sendData(buf)
}

// SetVerticalShift shifts the display output by line rows without touching
// RAM. Sweeping it 0..31 scrolls the panel contents out of view.
func (d *Dev) SetVerticalShift(line int) error {
	if line < 0 || line >= 64 {
		return fmt.Errorf("oled: invalid shift %d", line)
	}
	return d.sendCommand([]byte{_SETDISPLAYOFFSET, byte(line)})
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// The full frame is re-sent on every call; this driver keeps no shadow
// buffer to diff against. Only usable in Horizontal addressing mode.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.mode != Horizontal {
		return fmt.Errorf("oled: Draw requires horizontal addressing mode")
	}
	var pix []byte
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, page layout already: fast path.
		pix = img.Pix
	} else {
		next := image1bit.NewVerticalLSB(d.rect)
		draw.Src.Draw(next, r, src, sp)
		pix = next.Pix
	}
	if err := d.SetCursor(0, 0); err != nil {
		return err
	}
	return d.sendData(pix)
}

// Halt turns the display off. Any following write turns it back on.
func (d *Dev) Halt() error {
	d.halted = false
	err := d.sendCommand([]byte{_DISPLAYOFF})
	if err == nil {
		d.halted = true
	}
	return err
}

func (d *Dev) frameSize() int {
	return d.rect.Dx() * d.rect.Dy() / 8
}

func (d *Dev) sendCommand(c []byte) error {
	if d.halted {
		c = append([]byte{_DISPLAYON}, c...)
		d.halted = false
	}
	return d.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

func (d *Dev) sendData(c []byte) error {
	if d.halted {
		if err := d.sendCommand(nil); err != nil {
			return err
		}
	}
	return d.c.Tx(append([]byte{i2cData}, c...), nil)
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
