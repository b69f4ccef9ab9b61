// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// The GL enumerants used by pix. Values match the Khronos headers.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	TRIANGLES        = 0x0004
	DEPTH_TEST       = 0x0B71
	UNPACK_ALIGNMENT = 0x0CF5
	TEXTURE_2D       = 0x0DE1
	UNSIGNED_BYTE    = 0x1401
	FLOAT            = 0x1406
	RGB              = 0x1907

	NEAREST            = 0x2600
	LINEAR             = 0x2601
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	CLAMP_TO_EDGE      = 0x812F
	TEXTURE0           = 0x84C0

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)

var enumNames = map[Enum]string{
	NO_ERROR:                      "NO_ERROR",
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

// String returns the name of an error enumerant, or its hex value.
func (e Enum) String() string {
	if s, ok := enumNames[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}
