// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivertest provides a pix.Driver whose windows exist only in
// memory, for testing programs built on pix without a display.
package drivertest

import (
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"

	"github.com/KarlZylinski/pix"
	"github.com/KarlZylinski/pix/gpu"
	"github.com/KarlZylinski/pix/gpu/gputest"
	"github.com/KarlZylinski/pix/internal/pump"
)

// Driver is a pix.Driver that records the windows it creates.
type Driver struct {
	// Err, if non-nil, is returned by NewWindow instead of a window.
	Err error

	// GL, if non-nil, is used as the context of the next window created.
	// Otherwise each window gets a fresh gputest.Context.
	GL *gputest.Context

	// Windows lists every window created, in order.
	Windows []*Window
}

var _ pix.Driver = (*Driver)(nil)

// NewWindow implements pix.Driver. The new window's first PumpEvents
// reports it becoming focused and its size, as a real window would.
func (d *Driver) NewWindow(opts *pix.WindowOptions) (pix.Window, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	glctx := d.GL
	if glctx == nil {
		glctx = new(gputest.Context)
	}
	d.GL = nil
	w := &Window{
		Title:  opts.GetTitle(),
		Width:  opts.Width,
		Height: opts.Height,
		VSync:  opts.VSync,
		GL:     glctx,
		stage:  lifecycle.StageFocused,
	}
	w.q.Send(lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused})
	w.q.Send(size.Event{
		WidthPx:     opts.Width,
		HeightPx:    opts.Height,
		WidthPt:     geom.Pt(opts.Width),
		HeightPt:    geom.Pt(opts.Height),
		PixelsPerPt: 1,
	})
	d.Windows = append(d.Windows, w)
	return w, nil
}

// Window is an in-memory pix.Window.
type Window struct {
	Title         string
	Width, Height int
	VSync         bool

	// GL is the window's context.
	GL *gputest.Context

	// Swaps counts SwapBuffers calls, Pumps PumpEvents calls, and
	// Releases Release calls.
	Swaps, Pumps, Releases int

	q       pump.Queue
	stage   lifecycle.Stage
	closing bool
	shut    bool
}

var _ pix.Window = (*Window)(nil)

func (w *Window) Context() gpu.Context { return w.GL }

// Send queues an event for the next PumpEvents.
func (w *Window) Send(event interface{}) { w.q.Send(event) }

// RequestClose simulates the user closing the window. The window reports
// itself closed once the request has been pumped.
func (w *Window) RequestClose() {
	w.q.Send(lifecycle.Event{From: w.stage, To: lifecycle.StageDead})
	w.stage = lifecycle.StageDead
	w.closing = true
}

// Resize simulates the drawable area changing size, as on a move to a
// display with a different pixel density.
func (w *Window) Resize(widthPx, heightPx int) {
	w.q.Send(size.Event{
		WidthPx:     widthPx,
		HeightPx:    heightPx,
		WidthPt:     geom.Pt(w.Width),
		HeightPt:    geom.Pt(w.Height),
		PixelsPerPt: float32(widthPx) / float32(w.Width),
	})
}

func (w *Window) PumpEvents() []interface{} {
	w.Pumps++
	events := w.q.Drain()
	if w.closing {
		w.closing = false
		w.shut = true
	}
	return events
}

func (w *Window) SwapBuffers() { w.Swaps++ }

func (w *Window) IsOpen() bool { return !w.shut }

func (w *Window) Release() {
	w.Releases++
	w.shut = true
}
