// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cbang

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultOpts is the recommended default options: fast mode with the host
// pulling the released lines up in addition to the external resistors.
var DefaultOpts = Opts{
	Freq: 400 * physic.KiloHertz,
	Pull: gpio.PullUp,
}

// Opts defines the options for the bus.
type Opts struct {
	// SDA and SCL are the two bus lines. Both must be pulled up to Vcc; the
	// master only ever drives them LOW or releases them.
	SDA gpio.PinIO
	SCL gpio.PinIO
	// Freq is the target bus clock. The master sleeps half a clock period
	// around each toggle of SCL. A value of 0 removes all explicit wait
	// states; the pulse widths are then whatever the host's GPIO toggle rate
	// produces, which is only correct on hosts slow enough to stay within
	// the slave's supported bit rate.
	Freq physic.Frequency
	// Pull is applied to a line when it is released. Use gpio.Float when the
	// host's internal pull-up conflicts with the bus voltage.
	Pull gpio.Pull
}

// Bus is an open handle to the software I²C master. It implements
// i2c.BusCloser.
//
// The two lines are the only shared resource. The bus does no locking of its
// own: exactly one transaction may be in flight and the caller is trusted
// not to interleave two, so a Bus must not be used from more than one
// goroutine at a time.
type Bus struct {
	sda   gpio.PinIO
	scl   gpio.PinIO
	pull  gpio.Pull
	half  time.Duration
	sleep func(time.Duration)
}

// New returns a software I²C master over the two pins in opts.
//
// Both lines are released on return, relying on the pull-ups to establish
// the idle HIGH bus state. That precondition must hold before the first
// transaction starts.
func New(opts *Opts) (*Bus, error) {
	if opts.SDA == nil || opts.SCL == nil {
		return nil, errors.New("i2cbang: both SDA and SCL pins are required")
	}
	b := &Bus{sda: opts.SDA, scl: opts.SCL, pull: opts.Pull, sleep: time.Sleep}
	if err := b.SetSpeed(opts.Freq); err != nil {
		return nil, err
	}
	if err := b.sdaRelease(); err != nil {
		return nil, err
	}
	if err := b.sclRelease(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bus) String() string {
	return fmt.Sprintf("i2cbang(%s, %s)", b.sda, b.scl)
}

// SetSpeed changes the bus clock. 0 removes all explicit wait states, see
// Opts.Freq.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	if f < 0 {
		return fmt.Errorf("i2cbang: invalid frequency %s", f)
	}
	if f == 0 {
		b.half = 0
		return nil
	}
	b.half = f.Period() / 2
	return nil
}

// Close releases both lines, leaving the bus idle.
func (b *Bus) Close() error {
	if err := b.sclRelease(); err != nil {
		return err
	}
	return b.sdaRelease()
}

// Tx runs a single transaction to the 7-bit address addr: w is written,
// then, if r is not empty, a repeated start is signaled and len(r) bytes are
// read back with an ACK on every byte but the last.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr >= 0x80 {
		return fmt.Errorf("i2cbang: invalid address %#x", addr)
	}
	if len(w) == 0 && len(r) == 0 {
		return nil
	}
	if len(w) != 0 {
		if err := b.Start(byte(addr) << 1); err != nil {
			return err
		}
		for _, v := range w {
			if err := b.WriteByte(v); err != nil {
				_ = b.Stop()
				return err
			}
		}
	}
	if len(r) != 0 {
		if len(w) != 0 {
			// Repeated start. SDA is already released after the write's ACK
			// slot; raising SCL back recreates the start precondition.
			if err := b.sclRelease(); err != nil {
				return err
			}
			b.wait()
		}
		if err := b.Start(byte(addr)<<1 | 1); err != nil {
			return err
		}
		for i := range r {
			v, err := b.ReadByte(i < len(r)-1)
			if err != nil {
				_ = b.Stop()
				return err
			}
			r[i] = v
		}
	}
	return b.Stop()
}

// Start opens a transaction: SDA falls while SCL is still HIGH, SCL follows,
// then addr is transmitted as the first byte. addr is the full first byte,
// the 7-bit slave address shifted left by one with the R/W bit in bit 0.
//
// The bus must be idle, both lines HIGH. Every Start must be paired with
// exactly one Stop.
func (b *Bus) Start(addr byte) error {
	if err := b.sdaLow(); err != nil {
		return err
	}
	b.wait()
	if err := b.sclLow(); err != nil {
		return err
	}
	b.wait()
	return b.WriteByte(addr)
}

// Stop closes the transaction: SDA is driven LOW, SCL released HIGH, then
// SDA released so it rises while the clock is already HIGH.
func (b *Bus) Stop() error {
	if err := b.sdaLow(); err != nil {
		return err
	}
	b.wait()
	if err := b.sclRelease(); err != nil {
		return err
	}
	b.wait()
	if err := b.sdaRelease(); err != nil {
		return err
	}
	b.wait()
	return nil
}

// WriteByte transmits one byte, MSB first, then clocks the slave's ACK slot.
// The acknowledge value is discarded, see the package documentation.
//
// Each bit drives SDA LOW first and only releases it for a 1 bit; the slave
// samples while SCL is HIGH.
func (b *Bus) WriteByte(v byte) error {
	for i := 0; i < 8; i++ {
		if err := b.sdaLow(); err != nil {
			return err
		}
		if v&0x80 != 0 {
			if err := b.sdaRelease(); err != nil {
				return err
			}
		}
		if err := b.clockPulse(); err != nil {
			return err
		}
		v <<= 1
	}
	// 9th clock pulse: hand SDA to the slave for the ACK bit.
	if err := b.sdaRelease(); err != nil {
		return err
	}
	return b.clockPulse()
}

// ReadByte clocks in one byte, MSB first. ack states whether more bytes are
// wanted: true drives the ACK bit LOW, false leaves the slot released so the
// slave sees a NACK and stops driving the line.
func (b *Bus) ReadByte(ack bool) (byte, error) {
	if err := b.sdaRelease(); err != nil {
		return 0, err
	}
	var v byte
	for i := 0; i < 8; i++ {
		v <<= 1
		if err := b.sclRelease(); err != nil {
			return 0, err
		}
		b.wait()
		if b.sda.Read() == gpio.High {
			v |= 1
		}
		if err := b.sclLow(); err != nil {
			return 0, err
		}
		b.wait()
	}
	if ack {
		if err := b.sdaLow(); err != nil {
			return 0, err
		}
	}
	if err := b.clockPulse(); err != nil {
		return 0, err
	}
	// Leave SDA released so the line is in a known state for what follows.
	if err := b.sdaRelease(); err != nil {
		return 0, err
	}
	return v, nil
}

// clockPulse raises SCL for half a period and drops it again. The slave is
// assumed to never stretch the clock, so the HIGH phase is not verified.
func (b *Bus) clockPulse() error {
	if err := b.sclRelease(); err != nil {
		return err
	}
	b.wait()
	if err := b.sclLow(); err != nil {
		return err
	}
	b.wait()
	return nil
}

func (b *Bus) sdaLow() error     { return b.sda.Out(gpio.Low) }
func (b *Bus) sdaRelease() error { return b.sda.In(b.pull, gpio.NoEdge) }
func (b *Bus) sclLow() error     { return b.scl.Out(gpio.Low) }
func (b *Bus) sclRelease() error { return b.scl.In(b.pull, gpio.NoEdge) }

func (b *Bus) wait() {
	if b.half > 0 {
		b.sleep(b.half)
	}
}

var _ i2c.BusCloser = &Bus{}
var _ fmt.Stringer = &Bus{}
