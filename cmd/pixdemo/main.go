// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pixdemo opens a window and animates a software-rendered pattern in it.
//
// Usage:
//
//	pixdemo [flags]
//
// The flags are:
//
//	-title string
//		window title (default "pixdemo")
//	-width, -height int
//		size of the pixel buffer and window (default 320x240)
//	-pattern string
//		xor, noise or gradient (default "xor")
//	-image path
//		show a PNG, JPEG, GIF, BMP or WebP image, scaled to fit, instead
//		of a pattern
//	-frames int
//		exit after this many frames; 0 runs until the window is closed
//	-vsync
//		synchronize frames with the display (default true)
//	-json
//		log JSON instead of human-readable text
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix"
	"github.com/KarlZylinski/pix/buffer"
	"github.com/KarlZylinski/pix/driver"
)

var (
	title     = flag.String("title", "pixdemo", "window title")
	width     = flag.Int("width", 320, "buffer width in pixels")
	height    = flag.Int("height", 240, "buffer height in pixels")
	pattern   = flag.String("pattern", "xor", "pattern to animate: xor, noise or gradient")
	imagePath = flag.String("image", "", "image file to show instead of a pattern")
	frames    = flag.Int("frames", 0, "exit after this many frames (0 = until closed)")
	vsync     = flag.Bool("vsync", true, "synchronize with the display refresh")
	jsonLog   = flag.Bool("json", false, "log JSON")
)

func main() {
	flag.Parse()

	var (
		log *zap.Logger
		err error
	)
	if *jsonLog {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pixdemo:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("pixdemo failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	draw, err := painter(*pattern, *imagePath)
	if err != nil {
		return err
	}

	s, err := driver.NewScreen(&pix.Options{
		Title:  *title,
		Width:  *width,
		Height: *height,
		VSync:  *vsync,
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	for frame := 0; s.IsOpen() && (*frames == 0 || frame < *frames); frame++ {
		s.ProcessEvents()
		draw(s.Buffer(), frame)
		if err := s.Present(); err != nil {
			return err
		}
	}
	st := s.Stats()
	log.Info("done", zap.Uint64("frames", st.Frames), zap.Uint64("uploads", st.Uploads))
	return nil
}

// painter returns a function that renders frame n of the named pattern into
// a buffer, or one that draws the image at path once.
func painter(name, path string) (func(b *buffer.Buffer, n int), error) {
	if path != "" {
		m, err := decode(path)
		if err != nil {
			return nil, err
		}
		return func(b *buffer.Buffer, n int) {
			if n == 0 {
				b.DrawImage(m)
			}
		}, nil
	}

	switch name {
	case "xor":
		return xor, nil
	case "noise":
		return noise, nil
	case "gradient":
		return gradient, nil
	}
	return nil, xerrors.Errorf("pixdemo: unknown pattern %q", name)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, xerrors.Errorf("pixdemo: decoding %s: %w", path, err)
	}
	return m, nil
}

func xor(b *buffer.Buffer, n int) {
	sz := b.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			v := uint8((x ^ y) + n)
			b.SetRGB(x, y, buffer.Color{R: v, G: v << 1, B: 0xff - v})
		}
	}
}

func noise(b *buffer.Buffer, n int) {
	sz := b.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			v := uint8(rand.Intn(256))
			b.SetRGB(x, y, buffer.Color{R: v, G: v, B: v})
		}
	}
}

// gradient only draws on the first frame, so later frames exercise the
// no-upload path.
func gradient(b *buffer.Buffer, n int) {
	if n != 0 {
		return
	}
	sz := b.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			b.SetRGB(x, y, buffer.Color{
				R: uint8(x * 255 / sz.X),
				G: uint8(y * 255 / sz.Y),
				B: 0x40,
			})
		}
	}
}
