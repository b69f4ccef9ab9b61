// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Enum is equivalent to GLenum, and is normally used with one of the
// constants defined in this package.
type Enum uint32

// Handles are structs rather than bare integers so that a Texture cannot
// be passed where a Buffer is expected.

// Attrib identifies the location of a specific attribute variable.
type Attrib struct {
	Value uint
}

// Program identifies a compiled shader program.
type Program struct {
	// Init is set by CreateProgram, as some GL drivers (in particular,
	// ANGLE) return true for glIsProgram(0).
	Init  bool
	Value uint32
}

// Shader identifies a GLSL shader.
type Shader struct {
	Value uint32
}

// Buffer identifies a GL buffer object.
type Buffer struct {
	Value uint32
}

// Texture identifies a GL texture unit.
type Texture struct {
	Value uint32
}

// Uniform identifies the location of a specific uniform variable.
type Uniform struct {
	Value int32
}

// VertexArray identifies a vertex array object.
type VertexArray struct {
	Value uint32
}

func (v Attrib) String() string      { return fmt.Sprintf("Attrib(%d)", v.Value) }
func (v Program) String() string     { return fmt.Sprintf("Program(%d)", v.Value) }
func (v Shader) String() string      { return fmt.Sprintf("Shader(%d)", v.Value) }
func (v Buffer) String() string      { return fmt.Sprintf("Buffer(%d)", v.Value) }
func (v Texture) String() string     { return fmt.Sprintf("Texture(%d)", v.Value) }
func (v Uniform) String() string     { return fmt.Sprintf("Uniform(%d)", v.Value) }
func (v VertexArray) String() string { return fmt.Sprintf("VertexArray(%d)", v.Value) }
