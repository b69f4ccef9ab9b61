// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu describes the part of OpenGL that pix draws with.
//
// Context mirrors the method set of golang.org/x/mobile/gl.Context, and the
// handle types and enum constants follow that package, so callers write
// TEXTURE_2D and Texture regardless of which binding sits underneath.
// Package gl41 implements it for desktop OpenGL 4.1 core profiles and
// package gputest records calls for tests.
package gpu

// Context is a current OpenGL context.
//
// All methods must be called on the goroutine (and OS thread) that made
// the context current.
type Context interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindTexture(target Enum, t Texture)
	BindVertexArray(va VertexArray)
	BufferData(target Enum, src []byte, usage Enum)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	DeleteBuffer(v Buffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(v Texture)
	DeleteVertexArray(v VertexArray)
	Disable(cap Enum)
	DrawArrays(mode Enum, first, count int)
	EnableVertexAttribArray(a Attrib)
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int32)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format Enum, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte)
	Uniform1i(dst Uniform, v int)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
