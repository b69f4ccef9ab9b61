// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl41 implements gpu.Context on top of a desktop OpenGL 4.1 core
// profile context, using the go-gl bindings.
//
// The context must already be current on the calling thread when New is
// called, and stay current for as long as the returned Context is used.
package gl41

import (
	"bytes"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix/gpu"
)

// Context is a gpu.Context backed by the current OpenGL context.
type Context struct{}

var _ gpu.Context = (*Context)(nil)

// New loads the OpenGL function pointers for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, xerrors.Errorf("gl41: %w", err)
	}
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (*Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*Context) ActiveTexture(texture gpu.Enum) { gl.ActiveTexture(uint32(texture)) }

func (*Context) AttachShader(p gpu.Program, s gpu.Shader) { gl.AttachShader(p.Value, s.Value) }

func (*Context) BindBuffer(target gpu.Enum, b gpu.Buffer) { gl.BindBuffer(uint32(target), b.Value) }

func (*Context) BindTexture(target gpu.Enum, t gpu.Texture) { gl.BindTexture(uint32(target), t.Value) }

func (*Context) BindVertexArray(va gpu.VertexArray) { gl.BindVertexArray(va.Value) }

func (*Context) BufferData(target gpu.Enum, src []byte, usage gpu.Enum) {
	gl.BufferData(uint32(target), len(src), ptr(src), uint32(usage))
}

func (*Context) CompileShader(s gpu.Shader) { gl.CompileShader(s.Value) }

func (*Context) CreateBuffer() gpu.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gpu.Buffer{Value: b}
}

func (*Context) CreateProgram() gpu.Program {
	return gpu.Program{Init: true, Value: gl.CreateProgram()}
}

func (*Context) CreateShader(ty gpu.Enum) gpu.Shader {
	return gpu.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (*Context) CreateTexture() gpu.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gpu.Texture{Value: t}
}

func (*Context) CreateVertexArray() gpu.VertexArray {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return gpu.VertexArray{Value: va}
}

func (*Context) DeleteBuffer(v gpu.Buffer) { gl.DeleteBuffers(1, &v.Value) }

func (*Context) DeleteProgram(p gpu.Program) { gl.DeleteProgram(p.Value) }

func (*Context) DeleteShader(s gpu.Shader) { gl.DeleteShader(s.Value) }

func (*Context) DeleteTexture(v gpu.Texture) { gl.DeleteTextures(1, &v.Value) }

func (*Context) DeleteVertexArray(v gpu.VertexArray) { gl.DeleteVertexArrays(1, &v.Value) }

func (*Context) Disable(cap gpu.Enum) { gl.Disable(uint32(cap)) }

func (*Context) DrawArrays(mode gpu.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Context) EnableVertexAttribArray(a gpu.Attrib) { gl.EnableVertexAttribArray(uint32(a.Value)) }

func (*Context) GetError() gpu.Enum { return gpu.Enum(gl.GetError()) }

func (*Context) GetProgrami(p gpu.Program, pname gpu.Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (*Context) GetProgramInfoLog(p gpu.Program) string {
	var n int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(p.Value, n, nil, &buf[0])
	return string(bytes.TrimRight(buf, "\x00"))
}

func (*Context) GetShaderi(s gpu.Shader, pname gpu.Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (*Context) GetShaderInfoLog(s gpu.Shader) string {
	var n int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(s.Value, n, nil, &buf[0])
	return string(bytes.TrimRight(buf, "\x00"))
}

func (*Context) GetUniformLocation(p gpu.Program, name string) gpu.Uniform {
	return gpu.Uniform{Value: gl.GetUniformLocation(p.Value, gl.Str(name+"\x00"))}
}

func (*Context) LinkProgram(p gpu.Program) { gl.LinkProgram(p.Value) }

func (*Context) PixelStorei(pname gpu.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

func (*Context) ShaderSource(s gpu.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.Value, 1, csources, nil)
	free()
}

func (*Context) TexImage2D(target gpu.Enum, level int, internalFormat int, width, height int, format gpu.Enum, ty gpu.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr(data))
}

func (*Context) TexParameteri(target, pname gpu.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (*Context) TexSubImage2D(target gpu.Enum, level int, x, y, width, height int, format, ty gpu.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(data))
}

func (*Context) Uniform1i(dst gpu.Uniform, v int) { gl.Uniform1i(dst.Value, int32(v)) }

func (*Context) UseProgram(p gpu.Program) { gl.UseProgram(p.Value) }

func (*Context) VertexAttribPointer(dst gpu.Attrib, size int, ty gpu.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (*Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ptr returns a pointer to the first byte of b, or nil if b is empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
