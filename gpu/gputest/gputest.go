// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a gpu.Context that records calls instead of
// drawing, for testing code that drives OpenGL.
package gputest

import "github.com/KarlZylinski/pix/gpu"

// Upload records one TexImage2D or TexSubImage2D call.
type Upload struct {
	Texture       gpu.Texture
	X, Y          int
	Width, Height int
	Format, Type  gpu.Enum
	// Data is a copy of the uploaded bytes, or nil if none were given.
	Data []byte
}

// Context is a recording gpu.Context. Handles are allocated from a single
// counter starting at 1 and never reused.
//
// The zero value is ready to use.
type Context struct {
	// Fail names a Create method (such as "CreateTexture") that returns
	// the zero handle, simulating resource exhaustion.
	Fail string
	// CompileLog, when non-empty, makes every shader compile fail with
	// this info log.
	CompileLog string
	// LinkLog, when non-empty, makes every program link fail with this
	// info log.
	LinkLog string
	// Errors is returned, one per call, by GetError. Once it is empty,
	// GetError reports gpu.NO_ERROR.
	Errors []gpu.Enum

	// Calls lists the method names called, in order.
	Calls []string
	// Allocs holds the texture storage allocations (TexImage2D).
	Allocs []Upload
	// Uploads holds the texture updates (TexSubImage2D).
	Uploads []Upload
	// ViewportRect is the last viewport set, as x, y, width, height.
	ViewportRect [4]int
	// Draws counts DrawArrays calls and Vertices the vertices they drew.
	Draws, Vertices int

	// Bound state, as last set.
	BoundProgram     gpu.Program
	ActiveUnit       gpu.Enum
	BoundTexture     gpu.Texture
	BoundArrayBuffer gpu.Buffer
	BoundVertexArray gpu.VertexArray
	Samplers         map[int32]int
	Enabled          map[uint]bool
	Disabled         map[gpu.Enum]bool
	PixelStore       map[gpu.Enum]int32
	TexParams        map[gpu.Enum]int
	Buffers          map[uint32][]byte
	Sources          map[uint32]string
	Pointers         map[uint]Pointer

	next uint32
	live map[uint32]string
}

// Pointer records a VertexAttribPointer call.
type Pointer struct {
	Size           int
	Type           gpu.Enum
	Normalized     bool
	Stride, Offset int
}

var _ gpu.Context = (*Context)(nil)

// Count returns how many times the named method was called.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call == name {
			n++
		}
	}
	return n
}

// Live returns the number of created objects that have not been deleted.
func (c *Context) Live() int { return len(c.live) }

// LiveKinds returns the kind ("texture", "buffer", "program", "shader",
// "vertexarray") of every live object, keyed by handle.
func (c *Context) LiveKinds() map[uint32]string {
	m := make(map[uint32]string, len(c.live))
	for k, v := range c.live {
		m[k] = v
	}
	return m
}

func (c *Context) record(name string) { c.Calls = append(c.Calls, name) }

func (c *Context) alloc(name, kind string) uint32 {
	c.record(name)
	if c.Fail == name {
		return 0
	}
	if c.live == nil {
		c.live = make(map[uint32]string)
	}
	c.next++
	c.live[c.next] = kind
	return c.next
}

func (c *Context) free(name string, v uint32) {
	c.record(name)
	delete(c.live, v)
}

func (c *Context) ActiveTexture(texture gpu.Enum) {
	c.record("ActiveTexture")
	c.ActiveUnit = texture
}

func (c *Context) AttachShader(p gpu.Program, s gpu.Shader) { c.record("AttachShader") }

func (c *Context) BindBuffer(target gpu.Enum, b gpu.Buffer) {
	c.record("BindBuffer")
	if target == gpu.ARRAY_BUFFER {
		c.BoundArrayBuffer = b
	}
}

func (c *Context) BindTexture(target gpu.Enum, t gpu.Texture) {
	c.record("BindTexture")
	c.BoundTexture = t
}

func (c *Context) BindVertexArray(va gpu.VertexArray) {
	c.record("BindVertexArray")
	c.BoundVertexArray = va
}

func (c *Context) BufferData(target gpu.Enum, src []byte, usage gpu.Enum) {
	c.record("BufferData")
	if c.Buffers == nil {
		c.Buffers = make(map[uint32][]byte)
	}
	c.Buffers[c.BoundArrayBuffer.Value] = append([]byte(nil), src...)
}

func (c *Context) CompileShader(s gpu.Shader) { c.record("CompileShader") }

func (c *Context) CreateBuffer() gpu.Buffer {
	return gpu.Buffer{Value: c.alloc("CreateBuffer", "buffer")}
}

func (c *Context) CreateProgram() gpu.Program {
	v := c.alloc("CreateProgram", "program")
	return gpu.Program{Init: v != 0, Value: v}
}

func (c *Context) CreateShader(ty gpu.Enum) gpu.Shader {
	return gpu.Shader{Value: c.alloc("CreateShader", "shader")}
}

func (c *Context) CreateTexture() gpu.Texture {
	return gpu.Texture{Value: c.alloc("CreateTexture", "texture")}
}

func (c *Context) CreateVertexArray() gpu.VertexArray {
	return gpu.VertexArray{Value: c.alloc("CreateVertexArray", "vertexarray")}
}

func (c *Context) DeleteBuffer(v gpu.Buffer) { c.free("DeleteBuffer", v.Value) }

func (c *Context) DeleteProgram(p gpu.Program) { c.free("DeleteProgram", p.Value) }

func (c *Context) DeleteShader(s gpu.Shader) { c.free("DeleteShader", s.Value) }

func (c *Context) DeleteTexture(v gpu.Texture) { c.free("DeleteTexture", v.Value) }

func (c *Context) DeleteVertexArray(v gpu.VertexArray) { c.free("DeleteVertexArray", v.Value) }

func (c *Context) Disable(cap gpu.Enum) {
	c.record("Disable")
	if c.Disabled == nil {
		c.Disabled = make(map[gpu.Enum]bool)
	}
	c.Disabled[cap] = true
}

func (c *Context) DrawArrays(mode gpu.Enum, first, count int) {
	c.record("DrawArrays")
	c.Draws++
	c.Vertices += count
}

func (c *Context) EnableVertexAttribArray(a gpu.Attrib) {
	c.record("EnableVertexAttribArray")
	if c.Enabled == nil {
		c.Enabled = make(map[uint]bool)
	}
	c.Enabled[a.Value] = true
}

func (c *Context) GetError() gpu.Enum {
	c.record("GetError")
	if len(c.Errors) == 0 {
		return gpu.NO_ERROR
	}
	e := c.Errors[0]
	c.Errors = c.Errors[1:]
	return e
}

func (c *Context) GetProgrami(p gpu.Program, pname gpu.Enum) int {
	c.record("GetProgrami")
	if pname == gpu.LINK_STATUS && c.LinkLog != "" {
		return gpu.FALSE
	}
	return gpu.TRUE
}

func (c *Context) GetProgramInfoLog(p gpu.Program) string {
	c.record("GetProgramInfoLog")
	return c.LinkLog
}

func (c *Context) GetShaderi(s gpu.Shader, pname gpu.Enum) int {
	c.record("GetShaderi")
	if pname == gpu.COMPILE_STATUS && c.CompileLog != "" {
		return gpu.FALSE
	}
	return gpu.TRUE
}

func (c *Context) GetShaderInfoLog(s gpu.Shader) string {
	c.record("GetShaderInfoLog")
	return c.CompileLog
}

// GetUniformLocation returns location 0 for every name.
func (c *Context) GetUniformLocation(p gpu.Program, name string) gpu.Uniform {
	c.record("GetUniformLocation")
	return gpu.Uniform{Value: 0}
}

func (c *Context) LinkProgram(p gpu.Program) { c.record("LinkProgram") }

func (c *Context) PixelStorei(pname gpu.Enum, param int32) {
	c.record("PixelStorei")
	if c.PixelStore == nil {
		c.PixelStore = make(map[gpu.Enum]int32)
	}
	c.PixelStore[pname] = param
}

func (c *Context) ShaderSource(s gpu.Shader, src string) {
	c.record("ShaderSource")
	if c.Sources == nil {
		c.Sources = make(map[uint32]string)
	}
	c.Sources[s.Value] = src
}

func (c *Context) TexImage2D(target gpu.Enum, level int, internalFormat int, width, height int, format gpu.Enum, ty gpu.Enum, data []byte) {
	c.record("TexImage2D")
	c.Allocs = append(c.Allocs, Upload{
		Texture: c.BoundTexture,
		Width:   width,
		Height:  height,
		Format:  format,
		Type:    ty,
		Data:    clone(data),
	})
}

func (c *Context) TexParameteri(target, pname gpu.Enum, param int) {
	c.record("TexParameteri")
	if c.TexParams == nil {
		c.TexParams = make(map[gpu.Enum]int)
	}
	c.TexParams[pname] = param
}

func (c *Context) TexSubImage2D(target gpu.Enum, level int, x, y, width, height int, format, ty gpu.Enum, data []byte) {
	c.record("TexSubImage2D")
	c.Uploads = append(c.Uploads, Upload{
		Texture: c.BoundTexture,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Format:  format,
		Type:    ty,
		Data:    clone(data),
	})
}

func (c *Context) Uniform1i(dst gpu.Uniform, v int) {
	c.record("Uniform1i")
	if c.Samplers == nil {
		c.Samplers = make(map[int32]int)
	}
	c.Samplers[dst.Value] = v
}

func (c *Context) UseProgram(p gpu.Program) {
	c.record("UseProgram")
	c.BoundProgram = p
}

func (c *Context) VertexAttribPointer(dst gpu.Attrib, size int, ty gpu.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer")
	if c.Pointers == nil {
		c.Pointers = make(map[uint]Pointer)
	}
	c.Pointers[dst.Value] = Pointer{size, ty, normalized, stride, offset}
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("Viewport")
	c.ViewportRect = [4]int{x, y, width, height}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
