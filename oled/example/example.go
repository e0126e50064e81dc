// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/tinyoled/i2cbang"
	"github.com/GermanBionicSystems/tinyoled/oled"
	"github.com/GermanBionicSystems/tinyoled/oled/glyph"
)

// Example runs a 24-bit hexadecimal counter as eight big digits on a 128x32
// OLED wired to two plain GPIO pins.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Any two GPIO pins work; the module's pull-ups keep the bus HIGH.
	sda := gpioreg.ByName("GPIO2")
	scl := gpioreg.ByName("GPIO3")
	if sda == nil || scl == nil {
		log.Fatal("failed to find the bus pins")
	}

	opts := i2cbang.DefaultOpts
	opts.SDA = sda
	opts.SCL = scl
	bus, err := i2cbang.New(&opts)
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	// The big-digit renderer emits bytes column by column, so the panel
	// runs in vertical addressing mode.
	dopts := oled.DefaultOpts
	dopts.Mode = oled.Vertical
	dev, err := oled.NewI2C(bus, &dopts)
	if err != nil {
		log.Fatalf("failed to initialize display: %s", err)
	}
	if err := dev.Clear(); err != nil {
		log.Fatal(err)
	}

	var c glyph.Counter
	for {
		f := c.Frame()
		if err := dev.BigDigits(f[:]); err != nil {
			log.Fatal(err)
		}
		c.Increment()
	}
}
