// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import "go.uber.org/zap"

// DefaultTitle is the window title used when Options.Title is empty.
const DefaultTitle = "pix"

// Options are the arguments to New.
type Options struct {
	// Title is the window title. It defaults to DefaultTitle.
	Title string

	// Width and Height are the size of the pixel buffer and of the
	// window's drawable area. Both must be positive.
	Width, Height int

	// VSync synchronizes Present with the display refresh.
	VSync bool

	// Logger receives the Screen's log output. A nil Logger discards it.
	Logger *zap.Logger
}

func (o *Options) windowOptions() *WindowOptions {
	title := o.Title
	if title == "" {
		title = DefaultTitle
	}
	return &WindowOptions{
		Title:  title,
		Width:  o.Width,
		Height: o.Height,
		VSync:  o.VSync,
	}
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger.Named("pix")
}
