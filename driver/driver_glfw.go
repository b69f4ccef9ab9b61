// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package driver

import (
	"github.com/KarlZylinski/pix"
	"github.com/KarlZylinski/pix/driver/glfwdriver"
)

func defaultDriver() pix.Driver { return glfwdriver.New() }
