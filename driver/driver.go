// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the default driver for opening a pix.Screen.
//
// It imports the GLFW driver, which needs cgo. Programs built without cgo
// get a driver whose NewWindow always fails with ErrNoDriver.
package driver

import (
	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix"
)

// ErrNoDriver is returned by the fallback driver's NewWindow.
var ErrNoDriver = xerrors.New("driver: no driver for opening a window")

// Default returns the default driver for the system.
func Default() pix.Driver {
	return defaultDriver()
}

// NewScreen opens a Screen with the default driver.
func NewScreen(opts *pix.Options) (*pix.Screen, error) {
	return pix.New(Default(), opts)
}
