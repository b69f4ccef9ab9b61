// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix/gpu"
)

// ErrClosed is returned by operations on a Screen after Close.
var ErrClosed = xerrors.New("pix: screen closed")

// GLError reports an error code raised by the GL during an operation.
type GLError struct {
	Op   string // "init", "upload" or "draw"
	Code gpu.Enum
}

func (e *GLError) Error() string {
	return fmt.Sprintf("pix: %s: GL error %v", e.Op, e.Code)
}
