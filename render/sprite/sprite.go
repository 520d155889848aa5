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

// Package sprite draws one textured, transformed quad per call. The
// renderer owns a static unit-quad vertex buffer and the sprite shader
// program; it carries no other state between calls.
package sprite

import (
	"fmt"

	"github.com/baboengine/babo/render/glcheck"
	"github.com/baboengine/babo/render/shader"
	"github.com/baboengine/babo/render/shaders"
	"github.com/baboengine/babo/render/texture"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// unit quad. two triangles covering [0,1]x[0,1], position and UV
// coinciding. four floats per vertex
var quad = []float32{
	// pos    // uv
	0, 1, 0, 1,
	1, 0, 1, 0,
	0, 0, 0, 0,

	0, 1, 0, 1,
	1, 1, 1, 1,
	1, 0, 1, 0,
}

// Renderer draws sprites.
type Renderer struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
}

// New is the preferred method of initialisation for the Renderer type. The
// sprite shader pair is compiled from embedded source and the unit-quad
// buffer is allocated.
func New() (*Renderer, error) {
	vert, err := shader.Compile(shader.Vertex, string(shaders.SpriteVertexShader))
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	defer vert.Delete()

	frag, err := shader.Compile(shader.Fragment, string(shaders.SpriteFragmentShader))
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	defer frag.Delete()

	program, err := shader.Link(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}

	rnd := &Renderer{program: program}

	if err := rnd.setupQuad(); err != nil {
		rnd.Destroy()
		return nil, err
	}

	return rnd, nil
}

func (rnd *Renderer) setupQuad() error {
	if err := glcheck.Call("GenVertexArrays", func() {
		gl.GenVertexArrays(1, &rnd.vao)
	}); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	gl.BindVertexArray(rnd.vao)

	if err := glcheck.Call("GenBuffers", func() {
		gl.GenBuffers(1, &rnd.vbo)
	}); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)

	if err := glcheck.Call("BufferData", func() {
		gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	}); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	// two attributes, position and uv, at a stride of 4 floats
	position := gl.GetAttribLocation(rnd.program.Handle(), gl.Str("position\x00"))
	uv := gl.GetAttribLocation(rnd.program.Handle(), gl.Str("uv\x00"))

	gl.VertexAttribPointerWithOffset(uint32(position), 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(uint32(position))
	gl.VertexAttribPointerWithOffset(uint32(uv), 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(uint32(uv))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return glcheck.Check("VertexAttribPointer")
}

// transform composes the final vertex transform for a sprite. the rotation
// pivots around the sprite's own center, not its origin corner
func transform(projection mgl32.Mat4, view mgl32.Mat4,
	position mgl32.Vec3, size mgl32.Vec2, rotation float32) mgl32.Mat4 {

	model := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	model = model.Mul4(mgl32.Translate3D(size.X()/2, size.Y()/2, 0))
	model = model.Mul4(mgl32.HomogRotate3DZ(rotation))
	model = model.Mul4(mgl32.Translate3D(-size.X()/2, -size.Y()/2, 0))
	model = model.Mul4(mgl32.Scale3D(size.X(), size.Y(), 1))

	return projection.Mul4(view).Mul4(model)
}

// Draw one textured quad. Alpha blending is enabled for the duration of the
// call and disabled afterwards.
func (rnd *Renderer) Draw(tex *texture.Texture,
	projection mgl32.Mat4, view mgl32.Mat4,
	position mgl32.Vec3, size mgl32.Vec2, rotation float32,
	color mgl32.Vec3) error {

	if err := glcheck.Call("Enable", func() {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	defer gl.Disable(gl.BLEND)

	rnd.program.Use()

	gl.BindVertexArray(rnd.vao)
	defer gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
	tex.Bind()

	if err := rnd.program.SetInt("image", 0); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	if err := rnd.program.SetMat4("transform", transform(projection, view, position, size, rotation)); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	if err := rnd.program.SetVec3("spriteColor", color); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	if err := glcheck.Call("DrawArrays", func() {
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	return nil
}

// Destroy the renderer's GL resources. Safe to call more than once.
func (rnd *Renderer) Destroy() {
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.vao != 0 {
		gl.DeleteVertexArrays(1, &rnd.vao)
		rnd.vao = 0
	}
	rnd.program.Destroy()
}
