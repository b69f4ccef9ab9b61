// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer provides the CPU-side pixel buffer that pix uploads to the
// GPU.
//
// A Buffer holds 8-bit RGB triples with no alpha and no row padding, in the
// same layout as the texture it is copied into. Every write marks the
// buffer dirty; the owner of the texture clears the mark once the pixels
// have been uploaded.
package buffer

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/xerrors"
)

// BytesPerPixel is the size of one Color in a Buffer's Pix slice.
const BytesPerPixel = 3

var (
	// ErrOutOfBounds is returned when a pixel coordinate lies outside
	// the buffer.
	ErrOutOfBounds = xerrors.New("buffer: pixel out of bounds")

	// ErrInvalidSize is returned when a buffer is requested with a
	// non-positive width or height.
	ErrInvalidSize = xerrors.New("buffer: invalid size")
)

// Color is an opaque 24-bit color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ColorModel converts any color.Color to a Color by dropping the low byte
// of each channel. Alpha is discarded, so translucent colors come out as
// if composited over black.
var ColorModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Buffer is an in-memory RGB image whose size is fixed at creation.
//
// Buffer implements draw.Image, so anything that renders into a
// draw.Image can render into it.
type Buffer struct {
	// Pix holds the pixels in row-major order starting at the top-left
	// corner. The pixel at (x, y) starts at Pix[y*Stride + x*3].
	Pix []uint8
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the buffer's bounds. Rect.Min is always (0, 0).
	Rect image.Rectangle

	dirty bool
}

// New returns a zeroed (black) Buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, xerrors.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Buffer{
		Pix:    make([]uint8, width*height*BytesPerPixel),
		Stride: width * BytesPerPixel,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Size returns the width and height of the buffer.
func (b *Buffer) Size() image.Point { return b.Rect.Max }

func (b *Buffer) ColorModel() color.Model { return ColorModel }

func (b *Buffer) Bounds() image.Rectangle { return b.Rect }

// At implements image.Image. Out-of-range coordinates return black.
func (b *Buffer) At(x, y int) color.Color {
	return b.RGBAt(x, y)
}

// RGBAt returns the color at (x, y), or the zero Color if (x, y) is out of
// range.
func (b *Buffer) RGBAt(x, y int) Color {
	if !(image.Point{x, y}.In(b.Rect)) {
		return Color{}
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return Color{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// Set implements draw.Image. Like image.RGBA.Set, it silently ignores
// out-of-range coordinates.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetRGB(x, y, ColorModel.Convert(c).(Color))
}

// SetRGB sets the color at (x, y) and reports whether (x, y) was in range.
// An in-range write always marks the buffer dirty, even if the pixel
// already held c.
func (b *Buffer) SetRGB(x, y int, c Color) bool {
	if !(image.Point{x, y}.In(b.Rect)) {
		return false
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	b.dirty = true
	return true
}

// Put is SetRGB that reports an out-of-range coordinate as an error
// wrapping ErrOutOfBounds. The buffer is left untouched in that case.
func (b *Buffer) Put(x, y int, c Color) error {
	if !b.SetRGB(x, y, c) {
		return xerrors.Errorf("(%d, %d) not in %v: %w", x, y, b.Rect, ErrOutOfBounds)
	}
	return nil
}

// Clear sets every pixel to black and marks the buffer dirty.
func (b *Buffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
	b.dirty = true
}

// DrawImage scales src to cover the whole buffer and marks it dirty.
func (b *Buffer) DrawImage(src image.Image) {
	xdraw.ApproxBiLinear.Scale(b, b.Rect, src, src.Bounds(), xdraw.Src, nil)
	b.dirty = true
}

// Dirty reports whether the buffer changed since the last MarkClean.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean records that the current contents have reached the GPU.
func (b *Buffer) MarkClean() { b.dirty = false }
