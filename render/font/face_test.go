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
	"testing"

	"github.com/baboengine/babo/test"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the face adapter works with any x/image font.Face. basicfont gives us a
// face with known metrics and no file IO
func TestFaceAdapterMetrics(t *testing.T) {
	face := &imageFace{face: basicfont.Face7x13}

	bm, err := face.Glyph('A')
	if !test.ExpectedSuccess(t, err) {
		return
	}

	// Face7x13: 6px wide bitmaps, 13px tall (11 ascent + 2 descent), 7px
	// advance
	test.Equate(t, int(bm.Width), 6)
	test.Equate(t, int(bm.Height), 13)
	test.Equate(t, int(bm.Left), 0)
	test.Equate(t, int(bm.Top), 11)
	test.Equate(t, int(bm.Advance), int(fixed.I(7)))
	test.Equate(t, len(bm.Pixels), 6*13)

	// 'A' has at least one covered pixel
	covered := false
	for _, p := range bm.Pixels {
		if p != 0 {
			covered = true
			break
		}
	}
	test.Equate(t, covered, true)
}

func TestFaceAdapterMissingGlyph(t *testing.T) {
	face := &imageFace{face: basicfont.Face7x13}

	// Face7x13 has no glyph outside its two unicode ranges
	_, err := face.Glyph('世')
	test.ExpectedFailure(t, err)
}
