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

package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/baboengine/babo/test"
)

func TestPixelPointer(t *testing.T) {
	// a zero-size glyph bitmap arrives as a non-nil, zero-length slice. both
	// that and a nil buffer must select the null data pointer; indexing the
	// first element of an empty slice panics
	test.Equate(t, pixelPtr(nil) == nil, true)
	test.Equate(t, pixelPtr([]uint8{}) == nil, true)

	pixels := []uint8{0xff, 0x00, 0x00, 0xff}
	test.Equate(t, pixelPtr(pixels) != nil, true)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := decode(filepath.Join(t.TempDir(), "no-such-file.png"))
	if !test.ExpectedFailure(t, err) {
		return
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error is not a DecodeError (%T)", err)
	}
}

func TestDecodeBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := decode(path)
	if !test.ExpectedFailure(t, err) {
		return
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error is not a DecodeError (%T)", err)
	}
	test.Equate(t, de.Path, path)
}

func TestDecodePixelOrder(t *testing.T) {
	// 2x2 image: red top-left, blue bottom-right. the decoded buffer must be
	// top-to-bottom RGBA
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "pixels.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	decoded, err := decode(path)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	b := decoded.Bounds()
	test.Equate(t, b.Dx(), 2)
	test.Equate(t, b.Dy(), 2)

	// first pixel of the buffer is the top-left pixel of the image
	test.Equate(t, int(decoded.Pix[0]), 255)
	test.Equate(t, int(decoded.Pix[2]), 0)

	// last pixel of the buffer is the bottom-right pixel
	last := decoded.PixOffset(1, 1)
	test.Equate(t, int(decoded.Pix[last]), 0)
	test.Equate(t, int(decoded.Pix[last+2]), 255)
}
