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

// Package font rasterizes glyphs on demand into a per-font glyph cache and
// streams one textured quad per character to draw a text run.
package font

import (
	"fmt"
	"sync"

	"github.com/baboengine/babo/render/glcheck"
	"github.com/baboengine/babo/render/texture"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// LoadError is returned when a font face cannot be opened or prepared at the
// requested pixel size.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// GlyphError is returned when a single character cannot be rasterized.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyph %q: %v", e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// Character is one rasterized glyph: its texture, the bitmap dimensions in
// pixels, the bearing from the pen position to the bitmap's top-left, and
// the horizontal pen advance in 1/64 pixel units.
type Character struct {
	Texture *texture.Texture
	Size    mgl32.Vec2
	Bearing mgl32.Vec2
	Advance float32
}

// Font pairs a rasterizer face with a glyph cache. The cache grows
// monotonically; a character is rasterized at most once for the lifetime of
// the Font.
type Font struct {
	face Face

	// the glyph cache is the only state in the rendering core that can be
	// mutated from more than one goroutine. everything else is affinitized
	// to the GL thread
	crit   sync.Mutex
	glyphs map[rune]*Character

	// replaced during testing so that glyph loading can be exercised without
	// a GL context
	makeTexture func(Bitmap) (*texture.Texture, error)
}

func newFont(face Face) *Font {
	return &Font{
		face:        face,
		glyphs:      make(map[rune]*Character),
		makeTexture: glyphTexture,
	}
}

// glyphTexture builds a single-channel texture from a rasterized glyph.
func glyphTexture(bm Bitmap) (*texture.Texture, error) {
	// single channel bitmaps are tightly packed; the default unpack
	// alignment of 4 would skew any row not a multiple of 4 bytes
	if err := glcheck.Call("PixelStorei", func() {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}); err != nil {
		return nil, err
	}

	return texture.New(bm.Pixels, bm.Width, bm.Height,
		gl.RED, gl.RED,
		gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE, gl.LINEAR, gl.LINEAR)
}

// LoadGlyph returns the Character for r, rasterizing it on first use. A
// cached entry is returned without touching the rasterizer again.
func (fnt *Font) LoadGlyph(r rune) (*Character, error) {
	fnt.crit.Lock()
	defer fnt.crit.Unlock()

	if ch, ok := fnt.glyphs[r]; ok {
		return ch, nil
	}

	bm, err := fnt.face.Glyph(r)
	if err != nil {
		return nil, fmt.Errorf("font: %w", &GlyphError{Rune: r, Err: err})
	}

	tex, err := fnt.makeTexture(bm)
	if err != nil {
		return nil, fmt.Errorf("font: %w", &GlyphError{Rune: r, Err: err})
	}

	ch := &Character{
		Texture: tex,
		Size:    mgl32.Vec2{float32(bm.Width), float32(bm.Height)},
		Bearing: mgl32.Vec2{float32(bm.Left), float32(bm.Top)},
		Advance: float32(bm.Advance),
	}
	fnt.glyphs[r] = ch

	return ch, nil
}

// loadDefaultGlyphs eagerly rasterizes basic ASCII. a failure for any
// character aborts the load
func (fnt *Font) loadDefaultGlyphs() error {
	for r := rune(0); r < 128; r++ {
		if _, err := fnt.LoadGlyph(r); err != nil {
			return err
		}
	}
	return nil
}

// Destroy the glyph textures and close the rasterizer face. Safe to call
// more than once.
func (fnt *Font) Destroy() {
	fnt.crit.Lock()
	defer fnt.crit.Unlock()

	for _, ch := range fnt.glyphs {
		if ch.Texture != nil {
			ch.Texture.Destroy()
		}
	}
	clear(fnt.glyphs)

	if fnt.face != nil {
		_ = fnt.face.Close()
		fnt.face = nil
	}
}
