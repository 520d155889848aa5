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

// Package texture manages GL image resources. A texture is created once,
// from raw pixel data or from an image file, and its dimensions never change
// thereafter. Wrap and filter state is mutable and is reapplied to the bound
// GL object on every mutator call.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"unsafe"

	// register the decoders recognised by NewFromFile
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/baboengine/babo/logger"
	"github.com/baboengine/babo/render/glcheck"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// DecodeError is returned when an image file cannot be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Texture is a single GL image resource. The handle is non-zero and is
// exclusively owned by the Texture for its lifetime.
type Texture struct {
	handle uint32
	width  int32
	height int32

	internalFormat int32
	format         uint32

	wrapS     int32
	wrapT     int32
	filterMin int32
	filterMag int32
}

// New creates a texture of the given size from raw pixel data. A nil or
// empty pixels argument allocates the GL image without initial data, which
// is what we want for streaming/dynamic textures and for zero-size glyph
// bitmaps.
func New(pixels []uint8, width int32, height int32,
	internalFormat int32, format uint32,
	wrapS int32, wrapT int32, filterMin int32, filterMag int32) (*Texture, error) {

	tex := &Texture{
		width:          width,
		height:         height,
		internalFormat: internalFormat,
		format:         format,
		wrapS:          wrapS,
		wrapT:          wrapT,
		filterMin:      filterMin,
		filterMag:      filterMag,
	}

	if err := glcheck.Call("GenTextures", func() {
		gl.GenTextures(1, &tex.handle)
	}); err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	tex.Bind()

	if err := glcheck.Call("TexImage2D", func() {
		gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0,
			format, gl.UNSIGNED_BYTE, pixelPtr(pixels))
	}); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("texture: %w", err)
	}

	if err := tex.applyState(); err != nil {
		tex.Destroy()
		return nil, err
	}

	return tex, nil
}

// NewFromFile creates a texture from the named image file. PNG, JPEG and BMP
// files are recognised. Mipmaps are generated and a default sampling policy
// is applied: repeat wrapping, linear-mipmap-linear minification and linear
// magnification.
func NewFromFile(path string) (*Texture, error) {
	img, err := decode(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	b := img.Bounds()
	tex, err := New(img.Pix, int32(b.Dx()), int32(b.Dy()),
		gl.RGBA, gl.RGBA,
		gl.REPEAT, gl.REPEAT, gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR)
	if err != nil {
		return nil, err
	}

	if err := tex.GenerateMipmap(); err != nil {
		tex.Destroy()
		return nil, err
	}

	logger.Logf("texture", "%s (%dx%d)", path, b.Dx(), b.Dy())

	return tex, nil
}

// pixelPtr selects the data pointer for a TexImage2D upload. A nil or
// zero-length buffer selects the null pointer; rasterizers hand back non-nil
// empty slices for zero-size glyphs and gl.Ptr cannot take an empty slice
// (it indexes the first element).
func pixelPtr(pixels []uint8) unsafe.Pointer {
	if len(pixels) == 0 {
		return nil
	}
	return gl.Ptr(pixels)
}

// decode the named image file into a top-to-bottom RGBA pixel buffer.
func decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	return img, nil
}

// Handle of the underlying GL texture object.
func (tex *Texture) Handle() uint32 {
	return tex.handle
}

// Width of the texture in pixels. Fixed at creation.
func (tex *Texture) Width() int32 {
	return tex.width
}

// Height of the texture in pixels. Fixed at creation.
func (tex *Texture) Height() int32 {
	return tex.height
}

// Bind the texture on the active texture unit.
func (tex *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)
}

// GenerateMipmap for the texture. The texture is left bound.
func (tex *Texture) GenerateMipmap() error {
	tex.Bind()
	if err := glcheck.Call("GenerateMipmap", func() {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}); err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	return nil
}

// Destroy the underlying GL texture object. Safe to call more than once.
func (tex *Texture) Destroy() {
	if tex.handle != 0 {
		gl.DeleteTextures(1, &tex.handle)
		tex.handle = 0
	}
}

// applyState reapplies every wrap/filter field to the bound texture.
func (tex *Texture) applyState() error {
	tex.Bind()
	for _, p := range []struct {
		pname uint32
		param int32
	}{
		{gl.TEXTURE_WRAP_S, tex.wrapS},
		{gl.TEXTURE_WRAP_T, tex.wrapT},
		{gl.TEXTURE_MIN_FILTER, tex.filterMin},
		{gl.TEXTURE_MAG_FILTER, tex.filterMag},
	} {
		p := p
		if err := glcheck.Call("TexParameteri", func() {
			gl.TexParameteri(gl.TEXTURE_2D, p.pname, p.param)
		}); err != nil {
			return fmt.Errorf("texture: %w", err)
		}
	}
	return nil
}

// The mutators below rebind the texture and reapply only the requested state
// field. The previously bound texture is not restored afterwards; callers
// must not assume texture binding state survives a mutator call.

// SetWrapS sets the wrap mode for the S axis.
func (tex *Texture) SetWrapS(wrap int32) error {
	tex.wrapS = wrap
	return tex.parameter(gl.TEXTURE_WRAP_S, wrap)
}

// SetWrapT sets the wrap mode for the T axis.
func (tex *Texture) SetWrapT(wrap int32) error {
	tex.wrapT = wrap
	return tex.parameter(gl.TEXTURE_WRAP_T, wrap)
}

// SetWrap sets the wrap mode for both axes.
func (tex *Texture) SetWrap(wrapS int32, wrapT int32) error {
	if err := tex.SetWrapS(wrapS); err != nil {
		return err
	}
	return tex.SetWrapT(wrapT)
}

// SetFilterMin sets the minification filter.
func (tex *Texture) SetFilterMin(filter int32) error {
	tex.filterMin = filter
	return tex.parameter(gl.TEXTURE_MIN_FILTER, filter)
}

// SetFilterMag sets the magnification filter.
func (tex *Texture) SetFilterMag(filter int32) error {
	tex.filterMag = filter
	return tex.parameter(gl.TEXTURE_MAG_FILTER, filter)
}

// SetFilter sets both the minification and magnification filters.
func (tex *Texture) SetFilter(filterMin int32, filterMag int32) error {
	if err := tex.SetFilterMin(filterMin); err != nil {
		return err
	}
	return tex.SetFilterMag(filterMag)
}

func (tex *Texture) parameter(pname uint32, param int32) error {
	tex.Bind()
	if err := glcheck.Call("TexParameteri", func() {
		gl.TexParameteri(gl.TEXTURE_2D, pname, param)
	}); err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	return nil
}
