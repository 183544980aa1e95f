package micro

import (
	"image"
	"image/color"
)

// RenderImage converts fb into an RGBA image by looking every pixel up in
// pal. Unset pixels show bg.
func RenderImage(fb *FrameBuffer, pal Palette, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	RenderInto(img, fb, pal, bg)
	return img
}

// RenderInto is RenderImage into a preallocated image. dst must be at least
// fb's size; extra area is left untouched.
func RenderInto(dst *image.RGBA, fb *FrameBuffer, pal Palette, bg color.RGBA) {
	b := dst.Bounds()
	w := min(fb.width, b.Dx())
	h := min(fb.height, b.Dy())
	for y := 0; y < h; y++ {
		off := dst.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			c := bg
			if i := fb.pix[x+y*fb.width]; i != Unset {
				c = pal.Color(i)
			}
			dst.Pix[off] = c.R
			dst.Pix[off+1] = c.G
			dst.Pix[off+2] = c.B
			dst.Pix[off+3] = c.A
			off += 4
		}
	}
}
