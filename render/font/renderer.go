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

package font

import (
	"fmt"

	"github.com/baboengine/babo/logger"
	"github.com/baboengine/babo/render/glcheck"
	"github.com/baboengine/babo/render/shader"
	"github.com/baboengine/babo/render/shaders"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// text is always projected through this fixed orthographic transform,
// whatever the caller's camera or viewport. TestFixedTextProjection pins the
// dimensions
var textProjection = mgl32.Ortho(0, 1280, 720, 0, -1, 1)

// Renderer draws text runs. It owns the text shader program and a single
// dynamic vertex buffer sized for exactly one glyph quad; every character of
// a run is streamed through that one buffer.
type Renderer struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
}

// one quad, 6 vertices of 4 floats
const quadFloats = 6 * 4

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer() (*Renderer, error) {
	vert, err := shader.Compile(shader.Vertex, string(shaders.FontVertexShader))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	defer vert.Delete()

	frag, err := shader.Compile(shader.Fragment, string(shaders.FontFragmentShader))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	defer frag.Delete()

	program, err := shader.Link(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
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
		return fmt.Errorf("font: %w", err)
	}
	gl.BindVertexArray(rnd.vao)

	if err := glcheck.Call("GenBuffers", func() {
		gl.GenBuffers(1, &rnd.vbo)
	}); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)

	// allocated once at quad size. Draw() updates the contents with
	// BufferSubData rather than reallocating
	if err := glcheck.Call("BufferData", func() {
		gl.BufferData(gl.ARRAY_BUFFER, quadFloats*4, nil, gl.DYNAMIC_DRAW)
	}); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	vertex := gl.GetAttribLocation(rnd.program.Handle(), gl.Str("vertex\x00"))
	gl.VertexAttribPointerWithOffset(uint32(vertex), 4, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(uint32(vertex))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return glcheck.Check("VertexAttribPointer")
}

// LoadFont opens the named font file at the given pixel size and eagerly
// rasterizes basic ASCII into the glyph cache.
func (rnd *Renderer) LoadFont(path string, pixelSize uint32) (*Font, error) {
	face, err := openFace(path, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("font: %w", &LoadError{Path: path, Err: err})
	}

	fnt := newFont(face)
	if err := fnt.loadDefaultGlyphs(); err != nil {
		fnt.Destroy()
		return nil, err
	}

	logger.Logf("font", "%s (%dpx)", path, pixelSize)

	return fnt, nil
}

// pen tracks the baseline position while a text run is laid out.
type pen struct {
	x float32
	y float32
}

// advance the pen past the drawn character. a newline resets the horizontal
// position and moves the baseline down by the newline glyph's own bitmap
// height; TestNewlineLineHeight pins that choice of line height
func (p pen) advance(ch *Character, r rune, scale float32) pen {
	p.x += float32(uint32(ch.Advance)>>6) * scale
	if r == '\n' {
		p.x = 0
		p.y += ch.Size.Y() * scale
	}
	return p
}

// quadVertices computes the screen-space quad for a character drawn at the
// given pen position.
func quadVertices(ch *Character, x float32, y float32, scale float32) [quadFloats]float32 {
	xpos := x + ch.Bearing.X()*scale
	ypos := y - (ch.Size.Y()-ch.Bearing.Y())*scale

	w := ch.Size.X() * scale
	h := ch.Size.Y() * scale

	return [quadFloats]float32{
		xpos, ypos + h, 0, 0,
		xpos, ypos, 0, 1,
		xpos + w, ypos, 1, 1,

		xpos, ypos + h, 0, 0,
		xpos + w, ypos, 1, 1,
		xpos + w, ypos + h, 1, 0,
	}
}

// layout walks a text run, loading each character's glyph and emitting its
// quad. the final pen position is returned
func layout(fnt *Font, text string, x float32, y float32, scale float32,
	emit func(*Character, [quadFloats]float32) error) (pen, error) {

	p := pen{x: x, y: y}

	for _, r := range text {
		ch, err := fnt.LoadGlyph(r)
		if err != nil {
			return p, err
		}

		if err := emit(ch, quadVertices(ch, p.x, p.y, scale)); err != nil {
			return p, err
		}

		p = p.advance(ch, r, scale)
	}

	return p, nil
}

// Draw a text run with its top-left pen position at (x,y). Glyphs absent
// from the font's cache are rasterized as they are encountered.
func (rnd *Renderer) Draw(fnt *Font, text string, x float32, y float32,
	scale float32, color mgl32.Vec3) error {

	rnd.program.Use()

	if err := rnd.program.SetVec3("textColor", color); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	if err := rnd.program.SetMat4("transform", textProjection); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	if err := rnd.program.SetInt("text", 0); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(rnd.vao)
	defer func() {
		gl.BindVertexArray(0)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}()

	_, err := layout(fnt, text, x, y, scale, func(ch *Character, verts [quadFloats]float32) error {
		if err := glcheck.Call("Enable", func() {
			gl.Enable(gl.BLEND)
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		}); err != nil {
			return fmt.Errorf("font: %w", err)
		}

		ch.Texture.Bind()

		gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
		if err := glcheck.Call("BufferSubData", func() {
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, quadFloats*4, gl.Ptr(&verts[0]))
		}); err != nil {
			return fmt.Errorf("font: %w", err)
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)

		if err := glcheck.Call("DrawArrays", func() {
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}); err != nil {
			return fmt.Errorf("font: %w", err)
		}

		return nil
	})

	return err
}

// Destroy the renderer's GL resources. Fonts loaded through the renderer
// are not destroyed; they are owned by the caller. Safe to call more than
// once.
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
