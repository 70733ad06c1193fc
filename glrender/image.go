package glrender

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/golang/freetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image file at path and returns it ready for [NewTexture]:
// converted to RGBA and flipped so the first row is the bottom of the picture,
// matching OpenGL's bottom-left texture origin.
func LoadImage(path string) (*image.RGBA, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, err := DecodeImage(fp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage is the reader variant of [LoadImage]. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FlipVertical(img), nil
}

// FlipVertical returns an RGBA copy of img with rows in reverse order and bounds starting at the origin.
func FlipVertical(img image.Image) *image.RGBA {
	return transform.FlipV(toRGBA(img))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

// Dirt palette used by [PlaceholderImage].
var dirtPalette = [...]color.RGBA{
	{R: 0x6b, G: 0x4a, B: 0x2b, A: 0xff},
	{R: 0x5a, G: 0x3d, B: 0x22, A: 0xff},
	{R: 0x79, G: 0x55, B: 0x34, A: 0xff},
	{R: 0x4b, G: 0x33, B: 0x1c, A: 0xff},
}

// PlaceholderImage generates a blocky dirt texture of the given size with label
// written across it. It stands in for image files that cannot be loaded.
// Like [LoadImage] the result is flipped for upload.
func PlaceholderImage(width, height int, label string) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", width, height)
	}
	const block = 8
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h := uint32((x/block)*73856093 ^ (y/block)*19349663)
			img.SetRGBA(x, y, dirtPalette[(h>>7)%uint32(len(dirtPalette))])
		}
	}
	if label != "" {
		if err := drawLabel(img, label); err != nil {
			return nil, err
		}
	}
	return transform.FlipV(img), nil
}

func drawLabel(dst *image.RGBA, label string) error {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return err
	}
	size := float64(dst.Rect.Dy()) / 10
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.White)
	c.SetHinting(font.HintingFull)
	pt := freetype.Pt(int(size/2), dst.Rect.Dy()/2+int(size/2))
	_, err = c.DrawString(label, pt)
	return err
}
