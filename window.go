// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"unicode/utf8"

	"github.com/KarlZylinski/pix/gpu"
)

// Driver creates native windows with an OpenGL context attached.
type Driver interface {
	// NewWindow opens a window whose drawable area is exactly
	// opts.Width by opts.Height pixels and makes its context current.
	NewWindow(opts *WindowOptions) (Window, error)
}

// Window is an open native window and its rendering context.
type Window interface {
	// Context makes the window's GL context current on the calling
	// thread, if it is not already, and returns it.
	Context() gpu.Context

	// PumpEvents drains pending window system events without blocking and
	// returns them, oldest first. Events are values from the
	// golang.org/x/mobile/event packages, such as lifecycle.Event and
	// size.Event.
	PumpEvents() []interface{}

	// SwapBuffers shows the frame rendered since the last swap.
	SwapBuffers()

	// IsOpen reports whether the window is still open: it has been neither
	// released nor asked to close.
	IsOpen() bool

	// Release destroys the window and its context. It is safe to call
	// more than once.
	Release()
}

// WindowOptions are the arguments to Driver.NewWindow.
type WindowOptions struct {
	// Title is the window title. It must be valid UTF-8.
	Title string

	// Width and Height are the size of the drawable area, in pixels.
	Width, Height int

	// VSync synchronizes SwapBuffers with the display refresh.
	VSync bool
}

// GetTitle returns a sanitized form of o.Title. In particular, its length
// will not exceed 4096, and it may be further truncated so that it is valid
// UTF-8 and will not contain the NUL byte.
//
// o may be nil, in which case "" is returned.
func (o *WindowOptions) GetTitle() string {
	if o == nil {
		return ""
	}
	return sanitizeUTF8(o.Title, 4096)
}

func sanitizeUTF8(s string, n int) string {
	if n < len(s) {
		s = s[:n]
	}
	i := 0
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 || (r == utf8.RuneError && n == 1) {
			break
		}
		i += n
	}
	return s[:i]
}
