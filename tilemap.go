package micro

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a requested region does not lie entirely
// within its source grid.
var ErrOutOfBounds = errors.New("micro: section out of bounds")

// Section returns a copy of the w x h region whose top-left corner is (x, y).
// A region that is not fully inside the buffer is an error rather than a
// partial copy, since clipping here would silently shift tile layout.
func (fb *FrameBuffer) Section(x, y, w, h int) (*FrameBuffer, error) {
	return MatrixSection(fb.pix, fb.width, fb.height, x, y, w, h)
}

// MatrixSection extracts the w x h region at (x, y) from a row-major matrix
// of size matrixW x matrixH.
func MatrixSection(matrix []ColorIndex, matrixW, matrixH, x, y, w, h int) (*FrameBuffer, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > matrixW || y+h > matrixH || len(matrix) < matrixW*matrixH {
		if debugEnabled() {
			Logger().Debug("micro: section rejected",
				"x", x, "y", y, "w", w, "h", h, "srcW", matrixW, "srcH", matrixH)
		}
		return nil, fmt.Errorf("%w: region (%d,%d %dx%d) in %dx%d", ErrOutOfBounds, x, y, w, h, matrixW, matrixH)
	}

	section := &FrameBuffer{width: w, height: h, pix: make([]ColorIndex, w*h)}
	if w == 0 || h == 0 {
		section.width, section.height = 0, 0
		section.pix = section.pix[:0]
		return section, nil
	}
	for j := 0; j < h; j++ {
		src := matrix[x+(y+j)*matrixW : x+w+(y+j)*matrixW]
		copy(section.pix[j*w:(j+1)*w], src)
	}
	return section, nil
}

// WriteInto pastes src into dst so that src's (0, 0) lands on dst's
// (posX, posY), and returns the number of pixels written.
//
// PixelOverwrite replaces destination values unconditionally, Unset
// included. Source pixels that fall outside dst are always discarded; no
// overflow mode wraps or grows the destination. An unknown pixel mode or
// writing a buffer into itself is a no-op.
func WriteInto(src, dst *FrameBuffer, posX, posY int, pm PixelMode, om OverflowMode) int {
	if src == nil || dst == nil {
		return 0
	}
	if src == dst {
		Logger().Warn("micro: source and destination are the same buffer")
		return 0
	}
	if pm != PixelOverwrite {
		Logger().Warn("micro: unsupported pixel mode", "mode", string(pm))
		return 0
	}
	if om != OverflowCutoff {
		Logger().Debug("micro: overflow mode treated as cutoff", "mode", string(om))
	}

	// Clip the source rectangle against the destination once instead of
	// testing every pixel.
	x0 := max(0, -posX)
	y0 := max(0, -posY)
	x1 := min(src.width, dst.width-posX)
	y1 := min(src.height, dst.height-posY)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	for y := y0; y < y1; y++ {
		srcRow := src.pix[x0+y*src.width : x1+y*src.width]
		d := (posY+y)*dst.width + posX
		copy(dst.pix[d+x0:d+x1], srcRow)
	}
	return (x1 - x0) * (y1 - y0)
}

// GenerateTileMap builds a new (unitsX*tileSize) x (unitsY*tileSize) grid by
// repeating the tileSize x tileSize corner of tile in row-major order.
// Tile pixels beyond tile's own bounds are left Unset.
func GenerateTileMap(tile *FrameBuffer, unitsX, unitsY, tileSize int) *FrameBuffer {
	if unitsX <= 0 || unitsY <= 0 || tileSize <= 0 {
		return NewFrameBuffer(0, 0)
	}
	result := NewFrameBuffer(unitsX*tileSize, unitsY*tileSize)
	if tile == nil {
		return result
	}

	cw := min(tileSize, tile.width)
	ch := min(tileSize, tile.height)
	for j := 0; j < unitsY; j++ {
		for i := 0; i < unitsX; i++ {
			offX, offY := i*tileSize, j*tileSize
			for y := 0; y < ch; y++ {
				d := (offY+y)*result.width + offX
				copy(result.pix[d:d+cw], tile.pix[y*tile.width:y*tile.width+cw])
			}
		}
	}
	return result
}
