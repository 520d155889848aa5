// This file is part of Babo.
//
// Babo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Babo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Babo.  If not, see <https://www.gnu.org/licenses/>.

// Package shader compiles GLSL shader stages and links them into programs.
// Programs expose typed uniform setters backed by a lazily populated
// location cache.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Kind of shader stage.
type Kind int

// List of valid Kind values.
const (
	Vertex Kind = iota
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

func (k Kind) glEnum() uint32 {
	switch k {
	case Vertex:
		return gl.VERTEX_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

// Shader is a single compiled shader stage. It is only needed for as long as
// it takes to link a Program; once linked the stage object should be
// discarded with Delete().
type Shader struct {
	handle uint32
	kind   Kind

	// path is empty unless the shader was compiled with CompileFile()
	path string
}

// Compile a shader stage from source text.
func Compile(kind Kind, source string) (*Shader, error) {
	handle := gl.CreateShader(kind.glEnum())

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	if !statusOK(handle, false) {
		log := infoLog(handle, false)
		gl.DeleteShader(handle)
		return nil, fmt.Errorf("shader: %s: %w", kind, &CompileError{Log: log})
	}

	return &Shader{handle: handle, kind: kind}, nil
}

// CompileFile compiles a shader stage from the contents of the named file.
func CompileFile(kind Kind, path string) (*Shader, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}

	sh, err := Compile(kind, string(source))
	if err != nil {
		return nil, err
	}
	sh.path = path

	return sh, nil
}

// Handle of the underlying GL shader object.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Kind of the shader stage.
func (sh *Shader) Kind() Kind {
	return sh.kind
}

// Path of the source file, or the empty string if the shader was compiled
// directly from source text.
func (sh *Shader) Path() string {
	return sh.path
}

// Delete the underlying GL shader object. The stage is no longer needed once
// a program has been linked from it.
func (sh *Shader) Delete() {
	if sh.handle != 0 {
		gl.DeleteShader(sh.handle)
		sh.handle = 0
	}
}

// statusOK queries the compile or link status of a shader or program
// object. the status query is a side-channel separate from the GL error
// queue; it catches compiler diagnostics that glGetError never reports
func statusOK(handle uint32, isProgram bool) bool {
	var status int32
	if isProgram {
		gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	} else {
		gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	}
	return status == gl.TRUE
}

// infoLog retrieves the compiler/linker log for a shader or program object.
// the length is queried first and a buffer of exactly that size is allocated
// before being filled.
func infoLog(handle uint32, isProgram bool) string {
	var length int32
	if isProgram {
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
	} else {
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
	}

	if length <= 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(length+1))
	if isProgram {
		gl.GetProgramInfoLog(handle, length, &length, gl.Str(log))
	} else {
		gl.GetShaderInfoLog(handle, length, &length, gl.Str(log))
	}

	return strings.TrimRight(log, "\x00")
}
