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
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a rasterized glyph. Pixels is a single-channel coverage buffer,
// one byte per pixel, rows ordered top-to-bottom. Left and Top locate the
// bitmap relative to the pen position (positive Top extends above the
// baseline). Advance is the horizontal pen advance in 1/64 pixel units.
type Bitmap struct {
	Pixels  []uint8
	Width   int32
	Height  int32
	Left    int32
	Top     int32
	Advance fixed.Int26_6
}

// Face rasterizes glyphs for a single font at a fixed pixel size.
type Face interface {
	Glyph(r rune) (Bitmap, error)
	Close() error
}

// imageFace adapts an x/image font.Face to the Face interface.
type imageFace struct {
	face font.Face
}

// openFace opens the named font file and prepares a face at the given pixel
// size.
func openFace(path string, pixelSize uint32) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return &imageFace{face: face}, nil
}

func (f *imageFace) Glyph(r rune) (Bitmap, error) {
	// dot at the origin so the glyph rectangle doubles as the bearing
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Bitmap{}, fmt.Errorf("no glyph for %q", r)
	}

	w := dr.Dx()
	h := dr.Dy()
	pixels := make([]uint8, w*h)

	if w > 0 && h > 0 {
		alpha, isAlpha := mask.(*image.Alpha)
		if !isAlpha {
			// the opentype rasterizer always produces an alpha mask but the
			// font.Face interface doesn't promise one
			alpha = image.NewAlpha(image.Rect(0, 0, w, h))
			draw.Draw(alpha, alpha.Bounds(), mask, maskp, draw.Src)
			maskp = image.Point{}
		}
		for y := 0; y < h; y++ {
			row := (maskp.Y+y)*alpha.Stride + maskp.X
			copy(pixels[y*w:(y+1)*w], alpha.Pix[row:row+w])
		}
	}

	return Bitmap{
		Pixels:  pixels,
		Width:   int32(w),
		Height:  int32(h),
		Left:    int32(dr.Min.X),
		Top:     int32(-dr.Min.Y),
		Advance: advance,
	}, nil
}

func (f *imageFace) Close() error {
	if closer, ok := f.face.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
