package micro

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoding
	"io"

	_ "golang.org/x/image/bmp" // register BMP decoding
)

// ErrUnsupportedImage is returned when an image cannot be decoded.
var ErrUnsupportedImage = errors.New("micro: unsupported image")

// LoadImage decodes a BMP or PNG image into a FrameBuffer.
//
// Paletted images keep their own indices, so artwork drawn against the game
// palette loads unchanged. Other images are mapped to the nearest entry of
// pal. Fully transparent pixels become Unset.
func LoadImage(r io.Reader, pal Palette) (*FrameBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	fb := ImageToFrameBuffer(img, pal)
	Logger().Debug("micro: image loaded", "format", format, "w", fb.width, "h", fb.height)
	return fb, nil
}

// ImageToFrameBuffer converts img into palette indices. See LoadImage.
func ImageToFrameBuffer(img image.Image, pal Palette) *FrameBuffer {
	b := img.Bounds()
	fb := NewFrameBuffer(b.Dx(), b.Dy())

	if p, ok := img.(*image.Paletted); ok {
		for y := 0; y < fb.height; y++ {
			for x := 0; x < fb.width; x++ {
				i := p.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
				if _, _, _, a := p.Palette[i].RGBA(); a == 0 {
					continue
				}
				fb.pix[x+y*fb.width] = ColorIndex(i)
			}
		}
		return fb
	}

	// Most art uses few distinct colors; memoize the nearest lookup.
	nearest := make(map[color.RGBA]ColorIndex)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if c.A == 0 {
				continue
			}
			i, ok := nearest[c]
			if !ok {
				i = pal.Nearest(c)
				nearest[c] = i
			}
			fb.pix[x+y*fb.width] = i
		}
	}
	return fb
}
