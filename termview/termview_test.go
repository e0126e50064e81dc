// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/tinyoled/image1bit"
)

func TestNew(t *testing.T) {
	if _, err := New(&Opts{W: 128, H: 12}); err == nil {
		t.Fatal("expected failure on a height that is not a multiple of 8")
	}
	if _, err := New(&Opts{W: 0, H: 8}); err == nil {
		t.Fatal("expected failure on zero width")
	}
	d, err := New(&Opts{W: 128, H: 32})
	if err != nil {
		t.Fatal(err)
	}
	if d.Bounds() != image.Rect(0, 0, 128, 32) {
		t.Errorf("Bounds() = %s", d.Bounds())
	}
	if s := d.String(); s != "TermView{(128,32)}" {
		t.Errorf("String() = %q", s)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&Opts{W: 16, H: 8, Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Write(make([]byte, 3)); err == nil {
		t.Fatal("expected failure on a short pixel stream")
	}
	n, err := d.Write(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("Write() = %d, want 16", n)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 8 {
		t.Errorf("rendered %d lines, want 8", strings.Count(out, "\n"))
	}
	if !strings.Contains(out, "\033[") {
		t.Error("no ANSI escape codes in the output")
	}

	// The second frame rewinds the cursor to redraw in place.
	buf.Reset()
	if _, err := d.Write(make([]byte, 16)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\033[8A") {
		t.Error("second frame does not rewind the cursor")
	}
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&Opts{W: 16, H: 8, Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	img := image1bit.NewVerticalLSB(d.Bounds())
	img.SetBit(0, 0, image1bit.On)
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("Draw() produced no output")
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&Opts{W: 8, H: 8, Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\033[0m") {
		t.Error("Halt() must reset the terminal colors")
	}
}
