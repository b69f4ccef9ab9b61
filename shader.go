// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// quadXYZ is two triangles covering the whole viewport, in clip space.
var quadXYZ = f32.Bytes(binary.LittleEndian,
	-1, -1, 0,
	+1, -1, 0,
	-1, +1, 0,
	-1, +1, 0,
	+1, -1, 0,
	+1, +1, 0,
)

const (
	coordsPerVertex = 3
	vertexCount     = 6
)

// samplerName is the name of the fragment shader's only uniform.
const samplerName = "texture_sampler"

// The vertex shader derives texture coordinates from the clip-space
// position, flipping Y so that buffer row 0 lands at the top of the window.
const vertexSrc = `#version 410 core
layout(location = 0) in vec3 in_position;
out vec2 texcoord;
void main() {
	texcoord = (vec2(in_position.x, -in_position.y) + vec2(1, 1)) * 0.5;
	gl_Position = vec4(in_position, 1);
}
`

const fragmentSrc = `#version 410 core
in vec2 texcoord;
uniform sampler2D texture_sampler;
out vec4 color;
void main() {
	color = texture(texture_sampler, texcoord);
}
`
