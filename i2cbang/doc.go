// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cbang implements an I²C master in software on two GPIO pins.
//
// It is meant for hosts without a usable hardware I²C peripheral. Both lines
// are treated as open-drain: they are either driven LOW or released and
// pulled HIGH by external resistors, never driven HIGH. Many breakout
// modules, SSD1306 OLED boards included, have the pull-ups integrated.
//
// The implementation is deliberately minimal:
//
//   - the slave must support the bus clock the master is configured for
//     (fast mode 400kbps by default),
//   - the slave must not stretch the clock,
//   - the acknowledge bit sent by the slave on writes is ignored.
//
// The last point means there is no failure path at the protocol level: a
// missing or wedged slave does not produce an error, the transaction just
// falls on deaf ears. Errors returned by this package only reflect GPIO
// configuration problems.
package i2cbang
