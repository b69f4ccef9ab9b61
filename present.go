// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"image"

	"golang.org/x/xerrors"

	"github.com/KarlZylinski/pix/gpu"
)

// posAttrib is the vertex shader's in_position location.
var posAttrib = gpu.Attrib{Value: 0}

// presenter owns the GL objects that put the pixel buffer on screen: one
// texture the size of the buffer, and the full-screen quad that samples
// it.
type presenter struct {
	glctx gpu.Context
	size  image.Point

	vao     gpu.VertexArray
	texture gpu.Texture
	quad    gpu.Buffer
	program gpu.Program
	sampler gpu.Uniform
}

// newPresenter creates the presenter's GL objects in glctx. If any step
// fails, the objects created so far are deleted before returning.
func newPresenter(glctx gpu.Context, size image.Point) (_ *presenter, err error) {
	p := &presenter{glctx: glctx, size: size}
	defer func() {
		if err != nil {
			p.release()
		}
	}()

	glctx.Disable(gpu.DEPTH_TEST)
	// Rows of 3-byte pixels are generally not 4-byte aligned.
	glctx.PixelStorei(gpu.UNPACK_ALIGNMENT, 1)

	p.vao = glctx.CreateVertexArray()
	if p.vao.Value == 0 {
		return nil, xerrors.New("pix: no vertex arrays available")
	}
	glctx.BindVertexArray(p.vao)

	p.texture = glctx.CreateTexture()
	if p.texture.Value == 0 {
		return nil, xerrors.New("pix: no textures available")
	}
	glctx.BindTexture(gpu.TEXTURE_2D, p.texture)
	glctx.TexImage2D(gpu.TEXTURE_2D, 0, gpu.RGB, size.X, size.Y, gpu.RGB, gpu.UNSIGNED_BYTE, nil)
	glctx.TexParameteri(gpu.TEXTURE_2D, gpu.TEXTURE_MAG_FILTER, gpu.NEAREST)
	glctx.TexParameteri(gpu.TEXTURE_2D, gpu.TEXTURE_MIN_FILTER, gpu.NEAREST)
	glctx.TexParameteri(gpu.TEXTURE_2D, gpu.TEXTURE_WRAP_S, gpu.CLAMP_TO_EDGE)
	glctx.TexParameteri(gpu.TEXTURE_2D, gpu.TEXTURE_WRAP_T, gpu.CLAMP_TO_EDGE)

	p.quad = glctx.CreateBuffer()
	if p.quad.Value == 0 {
		return nil, xerrors.New("pix: no buffers available")
	}
	glctx.BindBuffer(gpu.ARRAY_BUFFER, p.quad)
	glctx.BufferData(gpu.ARRAY_BUFFER, quadXYZ, gpu.STATIC_DRAW)

	p.program, err = gpu.CompileProgram(glctx, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p.sampler = glctx.GetUniformLocation(p.program, samplerName)
	if p.sampler.Value < 0 {
		return nil, xerrors.Errorf("pix: program has no %s uniform", samplerName)
	}

	if code := glctx.GetError(); code != gpu.NO_ERROR {
		return nil, &GLError{Op: "init", Code: code}
	}
	return p, nil
}

// bind makes the program and texture current.
func (p *presenter) bind() {
	p.glctx.UseProgram(p.program)
	p.glctx.ActiveTexture(gpu.TEXTURE0)
	p.glctx.BindTexture(gpu.TEXTURE_2D, p.texture)
}

// upload replaces the whole texture with pix, which must hold exactly
// size.X*size.Y RGB triples. The texture must be bound.
func (p *presenter) upload(pix []byte) error {
	p.glctx.TexSubImage2D(gpu.TEXTURE_2D, 0, 0, 0, p.size.X, p.size.Y, gpu.RGB, gpu.UNSIGNED_BYTE, pix)
	if code := p.glctx.GetError(); code != gpu.NO_ERROR {
		return &GLError{Op: "upload", Code: code}
	}
	return nil
}

// draw samples the bound texture across the full-screen quad.
func (p *presenter) draw() {
	p.glctx.BindVertexArray(p.vao)
	p.glctx.BindBuffer(gpu.ARRAY_BUFFER, p.quad)
	p.glctx.Uniform1i(p.sampler, 0)
	p.glctx.EnableVertexAttribArray(posAttrib)
	p.glctx.VertexAttribPointer(posAttrib, coordsPerVertex, gpu.FLOAT, false, 0, 0)
	p.glctx.DrawArrays(gpu.TRIANGLES, 0, vertexCount)
}

// release deletes every GL object the presenter created, in reverse
// order of creation. It is safe to call on a partially built presenter.
func (p *presenter) release() {
	if p.program.Value != 0 {
		p.glctx.DeleteProgram(p.program)
		p.program = gpu.Program{}
	}
	if p.quad.Value != 0 {
		p.glctx.DeleteBuffer(p.quad)
		p.quad = gpu.Buffer{}
	}
	if p.texture.Value != 0 {
		p.glctx.DeleteTexture(p.texture)
		p.texture = gpu.Texture{}
	}
	if p.vao.Value != 0 {
		p.glctx.DeleteVertexArray(p.vao)
		p.vao = gpu.VertexArray{}
	}
}
