// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pix puts a software pixel buffer on screen.
//
// A program writes pixels into a Screen's buffer with Put, then calls
// Present once per frame to copy the buffer into a GPU texture and draw it
// across the whole window. The texture is only re-uploaded when the buffer
// changed since the previous Present.
//
// Screens are created with a Driver, which supplies the native window and
// its OpenGL context. The driver package provides the default driver for
// the system:
//
//	package main
//
//	import (
//		"github.com/KarlZylinski/pix"
//		"github.com/KarlZylinski/pix/driver"
//	)
//
//	func main() {
//		s, err := pix.New(driver.Default(), &pix.Options{Width: 320, Height: 240})
//		if err != nil {
//			handleError(err)
//			return
//		}
//		defer s.Close()
//		for s.IsOpen() {
//			s.ProcessEvents()
//			draw(s)
//			if err := s.Present(); err != nil {
//				handleError(err)
//				return
//			}
//		}
//	}
//
// A Screen is not safe for concurrent use. All of its methods must be
// called from the goroutine that created it.
package pix

import (
	"go.uber.org/zap"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix/buffer"
	"github.com/KarlZylinski/pix/gpu"
)

// Screen is one window showing one pixel buffer.
type Screen struct {
	log   *zap.Logger
	win   Window
	glctx gpu.Context
	buf   *buffer.Buffer
	p     *presenter

	dead   bool // the window was asked to close
	closed bool
	stats  Stats
}

// Stats counts the work a Screen has done.
type Stats struct {
	// Frames is the number of successful Present calls.
	Frames uint64
	// Uploads is the number of times the buffer was copied to the GPU.
	Uploads uint64
}

// New opens a window through d and prepares it to show a buffer of
// opts.Width by opts.Height pixels. The buffer starts black.
//
// New either fully succeeds or returns an error having released the window
// and every GL object it created.
func New(d Driver, opts *Options) (*Screen, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.logger()

	buf, err := buffer.New(opts.Width, opts.Height)
	if err != nil {
		return nil, xerrors.Errorf("pix: %w", err)
	}

	wopts := opts.windowOptions()
	win, err := d.NewWindow(wopts)
	if err != nil {
		return nil, xerrors.Errorf("pix: creating window: %w", err)
	}

	glctx := win.Context()
	p, err := newPresenter(glctx, buf.Size())
	if err != nil {
		win.Release()
		return nil, xerrors.Errorf("pix: preparing GPU resources: %w", err)
	}
	glctx.Viewport(0, 0, wopts.Width, wopts.Height)

	log.Info("window opened",
		zap.String("title", wopts.Title),
		zap.Int("width", wopts.Width),
		zap.Int("height", wopts.Height),
		zap.Bool("vsync", wopts.VSync))

	return &Screen{
		log:   log,
		win:   win,
		glctx: glctx,
		buf:   buf,
		p:     p,
	}, nil
}

// Buffer returns the screen's pixel buffer. Writes to it through its own
// methods are shown by the next Present. Code that modifies Pix directly
// must call Buffer's Set methods or Clear, or the change may not be
// uploaded.
func (s *Screen) Buffer() *buffer.Buffer { return s.buf }

// Stats returns the screen's counters.
func (s *Screen) Stats() Stats { return s.stats }

// Put sets the pixel at (x, y), where (0, 0) is the top-left corner. It
// returns an error wrapping buffer.ErrOutOfBounds, and changes nothing, if
// (x, y) is outside the buffer.
func (s *Screen) Put(x, y int, r, g, b uint8) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.buf.Put(x, y, buffer.Color{R: r, G: g, B: b}); err != nil {
		return xerrors.Errorf("pix: %w", err)
	}
	return nil
}

// At returns the pixel at (x, y) as last written, or black if (x, y) is
// outside the buffer.
func (s *Screen) At(x, y int) buffer.Color {
	return s.buf.RGBAt(x, y)
}

// Clear sets every pixel to black.
func (s *Screen) Clear() error {
	if s.closed {
		return ErrClosed
	}
	s.buf.Clear()
	return nil
}

// Present draws the buffer to the window and swaps the window's buffers.
// The buffer is uploaded to the GPU only if it changed since the last
// successful upload. If the upload fails the buffer stays marked as changed
// and the next Present tries again.
func (s *Screen) Present() error {
	if s.closed {
		return ErrClosed
	}
	s.win.Context()
	s.p.bind()
	if s.buf.Dirty() {
		if err := s.p.upload(s.buf.Pix); err != nil {
			s.log.Warn("texture upload failed", zap.Error(err))
			return err
		}
		s.buf.MarkClean()
		s.stats.Uploads++
		s.log.Debug("texture uploaded", zap.Uint64("uploads", s.stats.Uploads))
	}
	s.p.draw()
	s.win.SwapBuffers()
	if code := s.glctx.GetError(); code != gpu.NO_ERROR {
		err := &GLError{Op: "draw", Code: code}
		s.log.Warn("draw failed", zap.Error(err))
		return err
	}
	s.stats.Frames++
	return nil
}

// ProcessEvents handles every pending window system event without
// blocking. It must be called regularly, typically once per frame, or the
// window stops responding.
//
// Other than tracking close requests and keeping the GL viewport matched
// to the window's drawable size, events are ignored.
func (s *Screen) ProcessEvents() {
	if s.closed {
		return
	}
	for _, e := range s.win.PumpEvents() {
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead && !s.dead {
				s.dead = true
				s.log.Info("window close requested")
			}
		case size.Event:
			s.win.Context().Viewport(0, 0, e.WidthPx, e.HeightPx)
		}
		s.log.Debug("event", zap.Any("event", e))
	}
}

// IsOpen reports whether the window is open: it has neither been asked to
// close nor been closed with Close.
func (s *Screen) IsOpen() bool {
	return !s.closed && !s.dead && s.win.IsOpen()
}

// Close deletes the screen's GL objects and destroys its window. Calling
// Close more than once is a no-op.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.win.Context()
	s.p.release()
	s.win.Release()
	s.log.Info("window closed", zap.Uint64("frames", s.stats.Frames), zap.Uint64("uploads", s.stats.Uploads))
	return nil
}
