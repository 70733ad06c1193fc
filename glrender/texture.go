//go:build !tinygo && cgo

package glrender

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// Texture is a 2D RGBA texture with repeat wrapping and nearest filtering.
type Texture struct {
	id            uint32
	width, height int
}

// NewTexture uploads img to a new texture and generates its mipmaps.
// Rows are uploaded in memory order: callers flip images beforehand
// so the first row is the bottom of the picture, see [LoadImage].
func NewTexture(img *image.RGBA) (*Texture, error) {
	t := &Texture{}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	if err := t.Replace(img); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Replace uploads img over the texture contents, resizing storage if needed.
func (t *Texture) Replace(img *image.RGBA) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return errors.New("empty texture image")
	} else if img.Stride != 4*w {
		return errors.New("texture image rows must be contiguous")
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	if w == t.width && h == t.height {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
		t.width, t.height = w, h
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return glgl.Err()
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Delete releases the texture. It is safe to call more than once.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
