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

package shader

import (
	"fmt"

	"github.com/baboengine/babo/render/glcheck"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program. It exclusively owns its GL program
// object.
//
// Uniform locations are resolved once per distinct name and cached for the
// lifetime of the program. The cache is never invalidated; this is correct
// only because uniform names are static string literals throughout the
// project.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// Link shader stages into a Program. The stages are detached on success and
// are not retained; the caller should Delete() them once linking has
// completed.
func Link(shaders ...*Shader) (*Program, error) {
	handle := gl.CreateProgram()

	for _, sh := range shaders {
		gl.AttachShader(handle, sh.Handle())
	}

	gl.LinkProgram(handle)

	if !statusOK(handle, true) {
		log := infoLog(handle, true)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("shader: %w", &LinkError{Log: log})
	}

	for _, sh := range shaders {
		gl.DetachShader(handle, sh.Handle())
	}

	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// Handle of the underlying GL program object.
func (prg *Program) Handle() uint32 {
	return prg.handle
}

// Use makes the program the currently active program. Uniform setters are
// only meaningful once the program is in use.
func (prg *Program) Use() {
	gl.UseProgram(prg.handle)
}

// Destroy the underlying GL program object. Safe to call more than once.
func (prg *Program) Destroy() {
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}

func (prg *Program) location(name string) (int32, error) {
	if loc, ok := prg.locations[name]; ok {
		return loc, nil
	}

	loc := gl.GetUniformLocation(prg.handle, gl.Str(name+"\x00"))
	if loc == -1 {
		return -1, fmt.Errorf("shader: %w", &UniformNotFoundError{Name: name})
	}

	prg.locations[name] = loc
	return loc, nil
}

// SetFloat sets a scalar float uniform.
func (prg *Program) SetFloat(name string, value float32) error {
	loc, err := prg.location(name)
	if err != nil {
		return err
	}
	return glcheck.Call("Uniform1f", func() {
		gl.Uniform1f(loc, value)
	})
}

// SetInt sets a scalar integer uniform. Also used for sampler bindings.
func (prg *Program) SetInt(name string, value int32) error {
	loc, err := prg.location(name)
	if err != nil {
		return err
	}
	return glcheck.Call("Uniform1i", func() {
		gl.Uniform1i(loc, value)
	})
}

// SetVec3 sets a vec3 uniform.
func (prg *Program) SetVec3(name string, value mgl32.Vec3) error {
	loc, err := prg.location(name)
	if err != nil {
		return err
	}
	return glcheck.Call("Uniform3f", func() {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	})
}

// SetVec4 sets a vec4 uniform.
func (prg *Program) SetVec4(name string, value mgl32.Vec4) error {
	loc, err := prg.location(name)
	if err != nil {
		return err
	}
	return glcheck.Call("Uniform4f", func() {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	})
}

// SetMat4 sets a mat4 uniform.
func (prg *Program) SetMat4(name string, value mgl32.Mat4) error {
	loc, err := prg.location(name)
	if err != nil {
		return err
	}
	return glcheck.Call("UniformMatrix4fv", func() {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	})
}
