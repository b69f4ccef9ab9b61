// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"
)

func mustNew(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNew(t *testing.T) {
	b := mustNew(t, 4, 3)
	if got, want := b.Size(), (image.Point{4, 3}); got != want {
		t.Errorf("Size: got %v, want %v", got, want)
	}
	if got, want := len(b.Pix), 4*3*BytesPerPixel; got != want {
		t.Errorf("len(Pix): got %d, want %d", got, want)
	}
	if b.Stride != 12 {
		t.Errorf("Stride: got %d, want 12", b.Stride)
	}
	if b.Dirty() {
		t.Error("new buffer is dirty")
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, sz := range []image.Point{{0, 1}, {1, 0}, {-3, 2}, {2, -3}} {
		if _, err := New(sz.X, sz.Y); !xerrors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d): got %v, want ErrInvalidSize", sz.X, sz.Y, err)
		}
	}
}

func TestPutAt(t *testing.T) {
	const w, h = 5, 4
	tests := []struct {
		x, y int
		c    Color
	}{
		{0, 0, Color{1, 2, 3}},
		{w - 1, 0, Color{0xff, 0, 0}},
		{0, h - 1, Color{0, 0xff, 0}},
		{w - 1, h - 1, Color{0, 0, 0xff}},
		{2, 1, Color{0x80, 0x40, 0x20}},
	}
	for _, tc := range tests {
		b := mustNew(t, w, h)
		if err := b.Put(tc.x, tc.y, tc.c); err != nil {
			t.Errorf("Put(%d, %d): %v", tc.x, tc.y, err)
			continue
		}
		if got := b.RGBAt(tc.x, tc.y); got != tc.c {
			t.Errorf("RGBAt(%d, %d): got %v, want %v", tc.x, tc.y, got, tc.c)
		}
		i := tc.y*w*3 + tc.x*3
		if diff := cmp.Diff([]uint8{tc.c.R, tc.c.G, tc.c.B}, b.Pix[i:i+3]); diff != "" {
			t.Errorf("Pix at (%d, %d) mismatch (-want +got):\n%s", tc.x, tc.y, diff)
		}
		if !b.Dirty() {
			t.Errorf("Put(%d, %d) did not mark dirty", tc.x, tc.y)
		}
	}
}

func TestPutSameValueMarksDirty(t *testing.T) {
	b := mustNew(t, 2, 2)
	if err := b.Put(1, 1, Color{}); err != nil {
		t.Fatal(err)
	}
	if !b.Dirty() {
		t.Error("writing an unchanged value did not mark dirty")
	}
}

func TestPutOutOfBounds(t *testing.T) {
	const w, h = 3, 2
	for _, p := range []image.Point{{w, 0}, {0, h}, {w, h}, {-1, 0}, {0, -1}} {
		b := mustNew(t, w, h)
		err := b.Put(p.X, p.Y, Color{9, 9, 9})
		if !xerrors.Is(err, ErrOutOfBounds) {
			t.Errorf("Put(%d, %d): got %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if b.Dirty() {
			t.Errorf("Put(%d, %d) marked dirty", p.X, p.Y)
		}
		if diff := cmp.Diff(make([]uint8, w*h*3), b.Pix); diff != "" {
			t.Errorf("Put(%d, %d) changed pixels (-want +got):\n%s", p.X, p.Y, diff)
		}
	}
}

func TestClear(t *testing.T) {
	b := mustNew(t, 3, 3)
	for i := range b.Pix {
		b.Pix[i] = 0xaa
	}
	b.MarkClean()
	b.Clear()
	if diff := cmp.Diff(make([]uint8, 27), b.Pix); diff != "" {
		t.Errorf("Clear mismatch (-want +got):\n%s", diff)
	}
	if !b.Dirty() {
		t.Error("Clear did not mark dirty")
	}
}

func TestRoundTrip(t *testing.T) {
	const w, h = 16, 9
	b := mustNew(t, w, h)
	want := make([]Color, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Color{uint8(x * 13), uint8(y * 29), uint8(x ^ y)}
			want = append(want, c)
			if err := b.Put(x, y, c); err != nil {
				t.Fatal(err)
			}
		}
	}
	got := make([]Color, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got = append(got, b.RGBAt(x, y))
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestColorModel(t *testing.T) {
	tests := []struct {
		in   color.Color
		want Color
	}{
		{Color{1, 2, 3}, Color{1, 2, 3}},
		{color.RGBA{0x10, 0x20, 0x30, 0xff}, Color{0x10, 0x20, 0x30}},
		{color.RGBA64{0x12ff, 0x3400, 0xffff, 0xffff}, Color{0x12, 0x34, 0xff}},
		{color.Gray{0x7f}, Color{0x7f, 0x7f, 0x7f}},
		{color.Transparent, Color{}},
	}
	for _, tc := range tests {
		if got := ColorModel.Convert(tc.in); got != tc.want {
			t.Errorf("Convert(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDrawInterop(t *testing.T) {
	b := mustNew(t, 4, 4)
	var _ draw.Image = b
	red := image.NewUniform(color.RGBA{0xff, 0, 0, 0xff})
	draw.Draw(b, image.Rect(1, 1, 3, 3), red, image.Point{}, draw.Src)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Color{}
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = Color{0xff, 0, 0}
			}
			if got := b.RGBAt(x, y); got != want {
				t.Errorf("(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
	if !b.Dirty() {
		t.Error("draw.Draw did not mark dirty")
	}

	// Out-of-range Set is ignored.
	b.MarkClean()
	b.Set(4, 0, color.White)
	if b.Dirty() {
		t.Error("out-of-range Set marked dirty")
	}
}

func TestDrawImage(t *testing.T) {
	b := mustNew(t, 8, 6)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{0x20, 0x40, 0x60, 0xff}), image.Point{}, draw.Src)
	b.DrawImage(src)
	want := Color{0x20, 0x40, 0x60}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := b.RGBAt(x, y); got != want {
				t.Fatalf("(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
	if !b.Dirty() {
		t.Error("DrawImage did not mark dirty")
	}
}
