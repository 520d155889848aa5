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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/baboengine/babo/render/texture"
	"github.com/baboengine/babo/test"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/fixed"
)

// countingFace records how often each rune is rasterized. the rasterization
// work for a cached glyph must be proportional to 1, not to the number of
// loads
type countingFace struct {
	crit          sync.Mutex
	counts        map[rune]int
	newlineHeight int32
	failOn        rune
}

func newCountingFace() *countingFace {
	return &countingFace{counts: make(map[rune]int)}
}

func (f *countingFace) Glyph(r rune) (Bitmap, error) {
	f.crit.Lock()
	defer f.crit.Unlock()

	if f.failOn != 0 && r == f.failOn {
		return Bitmap{}, fmt.Errorf("rasterizer fault")
	}

	f.counts[r]++

	if r == '\n' {
		return Bitmap{Height: f.newlineHeight}, nil
	}

	// real rasterizers produce a non-nil, zero-length pixel buffer for
	// zero-size glyphs like space and the control characters
	if r <= ' ' {
		return Bitmap{Pixels: []uint8{}, Advance: fixed.I(7)}, nil
	}

	return Bitmap{
		Pixels:  make([]uint8, 6*8),
		Width:   6,
		Height:  8,
		Left:    1,
		Top:     7,
		Advance: fixed.I(7),
	}, nil
}

func (f *countingFace) Close() error {
	return nil
}

// newTestFont bypasses glyph texture creation so that cache behaviour can be
// exercised without a GL context.
func newTestFont(face Face) *Font {
	fnt := newFont(face)
	fnt.makeTexture = func(_ Bitmap) (*texture.Texture, error) {
		return nil, nil
	}
	return fnt
}

func TestGlyphCacheMemoization(t *testing.T) {
	face := newCountingFace()
	fnt := newTestFont(face)

	first, err := fnt.LoadGlyph('A')
	if !test.ExpectedSuccess(t, err) {
		return
	}

	for i := 0; i < 100; i++ {
		ch, err := fnt.LoadGlyph('A')
		if !test.ExpectedSuccess(t, err) {
			return
		}
		if ch != first {
			t.Fatalf("cached load returned a different Character")
		}
	}

	test.Equate(t, face.counts['A'], 1)
	test.EquateFloat32(t, first.Bearing.X(), 1)
	test.EquateFloat32(t, first.Bearing.Y(), 7)
	test.EquateFloat32(t, first.Advance, float32(fixed.I(7)))
}

func TestGlyphCacheConcurrentLoads(t *testing.T) {
	face := newCountingFace()
	fnt := newTestFont(face)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = fnt.LoadGlyph('Q')
		}()
	}
	wg.Wait()

	test.Equate(t, face.counts['Q'], 1)
}

func TestLoadGlyphEmptyBitmap(t *testing.T) {
	face := newCountingFace()
	fnt := newFont(face)

	var bitmaps []Bitmap
	fnt.makeTexture = func(bm Bitmap) (*texture.Texture, error) {
		bitmaps = append(bitmaps, bm)
		return nil, nil
	}

	ch, err := fnt.LoadGlyph(' ')
	if !test.ExpectedSuccess(t, err) {
		return
	}

	// the empty bitmap reaches texture creation as a non-nil, zero-length
	// pixel buffer and must not fail or panic on the way
	test.Equate(t, len(bitmaps), 1)
	if bitmaps[0].Pixels == nil {
		t.Fatalf("empty glyph bitmap should carry a non-nil pixel buffer")
	}
	test.Equate(t, len(bitmaps[0].Pixels), 0)

	test.EquateFloat32(t, ch.Size.X(), 0)
	test.EquateFloat32(t, ch.Size.Y(), 0)
	test.EquateFloat32(t, ch.Advance, float32(fixed.I(7)))
}

func TestLoadDefaultGlyphs(t *testing.T) {
	face := newCountingFace()
	fnt := newTestFont(face)

	test.ExpectedSuccess(t, fnt.loadDefaultGlyphs())
	test.Equate(t, len(fnt.glyphs), 128)

	for r := rune(0); r < 128; r++ {
		test.Equate(t, face.counts[r], 1)
	}
}

func TestLoadDefaultGlyphsAbortsOnFailure(t *testing.T) {
	face := newCountingFace()
	face.failOn = 'b'
	fnt := newTestFont(face)

	err := fnt.loadDefaultGlyphs()
	if !test.ExpectedFailure(t, err) {
		return
	}

	var ge *GlyphError
	if !errors.As(err, &ge) {
		t.Fatalf("error is not a GlyphError (%T)", err)
	}
	test.Equate(t, ge.Rune, 'b')
}

func TestLayoutEmptyString(t *testing.T) {
	face := newCountingFace()
	fnt := newTestFont(face)

	emitted := 0
	p, err := layout(fnt, "", 10, 20, 1, func(_ *Character, _ [quadFloats]float32) error {
		emitted++
		return nil
	})
	test.ExpectedSuccess(t, err)

	// zero glyph loads and zero draws
	test.Equate(t, emitted, 0)
	test.Equate(t, len(face.counts), 0)
	test.EquateFloat32(t, p.x, 10)
	test.EquateFloat32(t, p.y, 20)
}

func TestLayoutPenAdvance(t *testing.T) {
	face := newCountingFace()
	fnt := newTestFont(face)

	p, err := layout(fnt, "ab", 0, 0, 2, func(_ *Character, _ [quadFloats]float32) error {
		return nil
	})
	test.ExpectedSuccess(t, err)

	// advance is stored in 1/64 pixel units: (448 >> 6) * scale per glyph
	test.EquateFloat32(t, p.x, 28)
	test.EquateFloat32(t, p.y, 0)
}

func TestNewlineLineHeight(t *testing.T) {
	face := newCountingFace()
	face.newlineHeight = 16
	fnt := newTestFont(face)

	p, err := layout(fnt, "\n\n", 5, 10, 2, func(_ *Character, _ [quadFloats]float32) error {
		return nil
	})
	test.ExpectedSuccess(t, err)

	// a newline resets the horizontal pen and advances vertically by the
	// newline glyph's own bitmap height. a real face rasterizes newline with
	// a zero-height bitmap; the instrumented face makes the behaviour
	// observable
	test.EquateFloat32(t, p.x, 0)
	test.EquateFloat32(t, p.y, 10+2*16*2)

	test.Equate(t, face.counts['\n'], 1)
}

func TestQuadVertices(t *testing.T) {
	ch := &Character{
		Size:    mgl32.Vec2{6, 8},
		Bearing: mgl32.Vec2{1, 7},
	}

	verts := quadVertices(ch, 10, 20, 1)

	// top-left corner: x + bearing, pen y - (height - bearing) + height
	test.EquateFloat32(t, verts[0], 11)
	test.EquateFloat32(t, verts[1], 27)

	// bottom-right corner
	test.EquateFloat32(t, verts[20], 17)
	test.EquateFloat32(t, verts[21], 27)

	// UV corners
	test.EquateFloat32(t, verts[2], 0)
	test.EquateFloat32(t, verts[3], 0)
	test.EquateFloat32(t, verts[10], 1)
	test.EquateFloat32(t, verts[11], 1)
}

func TestFixedTextProjection(t *testing.T) {
	// text is always drawn through a hard-coded 1280x720 projection
	test.EquateMat4(t, textProjection, mgl32.Ortho(0, 1280, 720, 0, -1, 1))
}
