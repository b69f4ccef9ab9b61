// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "golang.org/x/xerrors"

// CompileProgram compiles and links a vertex and fragment shader pair.
// On failure nothing is left allocated and the error carries the driver's
// info log.
func CompileProgram(glctx Context, vSrc, fSrc string) (Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return Program{}, xerrors.New("gpu: no programs available")
	}

	vertexShader, err := compileShader(glctx, VERTEX_SHADER, vSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return Program{}, err
	}
	fragmentShader, err := compileShader(glctx, FRAGMENT_SHADER, fSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return Program{}, xerrors.Errorf("gpu: program link: %s", glctx.GetProgramInfoLog(program))
	}
	return program, nil
}

func compileShader(glctx Context, shaderType Enum, src string) (Shader, error) {
	shader := glctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return Shader{}, xerrors.Errorf("gpu: could not create shader (type %v)", shaderType)
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return Shader{}, xerrors.Errorf("gpu: shader compile: %s", glctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}
