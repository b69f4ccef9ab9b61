// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwdriver provides a pix.Driver that opens windows with GLFW
// and draws into them with a desktop OpenGL 4.1 core profile context.
//
// GLFW must be called from the main OS thread. Importing this package locks
// the main goroutine to the main thread, so windows must be created, used
// and released from the main goroutine.
package glfwdriver

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix"
	"github.com/KarlZylinski/pix/gpu"
	"github.com/KarlZylinski/pix/gpu/gl41"
	"github.com/KarlZylinski/pix/internal/pump"
)

func init() {
	// It might not be necessary, but it probably doesn't hurt to try to make
	// 'the main thread' be 'the GLFW / OpenGL thread'.
	runtime.LockOSThread()
}

// refs counts the open windows. GLFW is initialized while it is positive.
var refs int

func acquire() error {
	if refs == 0 {
		if err := glfw.Init(); err != nil {
			return xerrors.Errorf("glfwdriver: %w", err)
		}
	}
	refs++
	return nil
}

func unacquire() {
	refs--
	if refs == 0 {
		glfw.Terminate()
	}
}

// Driver is the GLFW pix.Driver. The zero value is ready to use.
type Driver struct{}

var _ pix.Driver = Driver{}

// New returns the GLFW driver.
func New() Driver { return Driver{} }

// NewWindow implements pix.Driver. The window is not resizable, and its
// context is current on return.
func (Driver) NewWindow(opts *pix.WindowOptions) (_ pix.Window, err error) {
	if err := acquire(); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			unacquire()
		}
	}()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// GLFW sizes the client area, so the platform accounts for borders and
	// the caption bar.
	gw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.GetTitle(), nil, nil)
	if err != nil {
		return nil, xerrors.Errorf("glfwdriver: creating window: %w", err)
	}
	gw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	glctx, err := gl41.New()
	if err != nil {
		gw.Destroy()
		return nil, xerrors.Errorf("glfwdriver: %w", err)
	}

	w := &window{gw: gw, glctx: glctx, stage: lifecycle.StageDead}
	gw.SetCloseCallback(func(*glfw.Window) {
		w.setStage(lifecycle.StageDead)
	})
	gw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			w.setStage(lifecycle.StageFocused)
		} else {
			w.setStage(lifecycle.StageVisible)
		}
	})
	gw.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			w.setStage(lifecycle.StageAlive)
		} else {
			w.setStage(lifecycle.StageVisible)
		}
	})
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.sendSize(width, height)
	})

	w.setStage(lifecycle.StageFocused)
	w.sendSize(gw.GetFramebufferSize())
	return w, nil
}

type window struct {
	gw    *glfw.Window
	glctx *gl41.Context

	q        pump.Queue
	stage    lifecycle.Stage
	closing  bool // a close was requested; stage stays StageDead
	released bool
}

func (w *window) setStage(to lifecycle.Stage) {
	if w.closing || to == w.stage {
		return
	}
	w.closing = to == lifecycle.StageDead
	w.q.Send(lifecycle.Event{From: w.stage, To: to})
	w.stage = to
}

func (w *window) sendSize(widthPx, heightPx int) {
	widthPt, heightPt := w.gw.GetSize()
	ppp := float32(1)
	if widthPt > 0 {
		ppp = float32(widthPx) / float32(widthPt)
	}
	w.q.Send(size.Event{
		WidthPx:     widthPx,
		HeightPx:    heightPx,
		WidthPt:     geom.Pt(widthPt),
		HeightPt:    geom.Pt(heightPt),
		PixelsPerPt: ppp,
	})
}

func (w *window) Context() gpu.Context {
	if !w.released && glfw.GetCurrentContext() != w.gw {
		w.gw.MakeContextCurrent()
	}
	return w.glctx
}

func (w *window) PumpEvents() []interface{} {
	if w.released {
		return nil
	}
	glfw.PollEvents()
	return w.q.Drain()
}

func (w *window) SwapBuffers() {
	if w.released {
		return
	}
	w.gw.SwapBuffers()
}

func (w *window) IsOpen() bool {
	return !w.released && !w.gw.ShouldClose()
}

func (w *window) Release() {
	if w.released {
		return
	}
	w.released = true
	if glfw.GetCurrentContext() == w.gw {
		glfw.DetachCurrentContext()
	}
	w.gw.Destroy()
	unacquire()
}
