// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo

package driver

import "github.com/KarlZylinski/pix"

func defaultDriver() pix.Driver { return stub{} }

type stub struct{}

func (stub) NewWindow(opts *pix.WindowOptions) (pix.Window, error) {
	return nil, ErrNoDriver
}
