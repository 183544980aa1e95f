package micro

// FrameBuffer is a fixed-size grid of palette indices stored row-major
// (index x + y*width). A pixel nothing has drawn to holds Unset.
//
// Every write is bounds-checked: coordinates outside the grid are silently
// clipped, because shape primitives routinely compute bounding boxes that
// extend past the edges. No FrameBuffer method panics on coordinates.
//
// The external loop replaces or clears the buffer once per frame; nothing in
// micro retains a FrameBuffer across frames.
type FrameBuffer struct {
	width  int
	height int
	pix    []ColorIndex
}

// NewFrameBuffer allocates a w x h buffer with every pixel Unset.
// Non-positive dimensions produce an empty buffer that clips every write.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	fb := &FrameBuffer{width: w, height: h, pix: make([]ColorIndex, w*h)}
	fb.Clear()
	return fb
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Len returns width*height.
func (fb *FrameBuffer) Len() int { return len(fb.pix) }

// Pix returns the backing slice, indexed x + y*Width(). It MUST NOT be
// resized; writing through it bypasses bounds checking.
func (fb *FrameBuffer) Pix() []ColorIndex { return fb.pix }

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Set writes c at (x, y). Out-of-range coordinates are a no-op.
func (fb *FrameBuffer) Set(x, y int, c ColorIndex) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.pix[x+y*fb.width] = c
}

// At returns the index stored at (x, y) and whether the pixel is set.
// Out-of-range coordinates report (Unset, false).
func (fb *FrameBuffer) At(x, y int) (ColorIndex, bool) {
	if !fb.InBounds(x, y) {
		return Unset, false
	}
	c := fb.pix[x+y*fb.width]
	return c, c != Unset
}

// Clear resets every pixel to Unset.
func (fb *FrameBuffer) Clear() {
	fb.Fill(Unset)
}

// Fill sets every pixel to c.
func (fb *FrameBuffer) Fill(c ColorIndex) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// Clone returns an independent copy of the buffer.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	out := &FrameBuffer{width: fb.width, height: fb.height, pix: make([]ColorIndex, len(fb.pix))}
	copy(out.pix, fb.pix)
	return out
}

// Equal reports whether both buffers have the same size and contents.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if other == nil || fb.width != other.width || fb.height != other.height {
		return false
	}
	for i, c := range fb.pix {
		if other.pix[i] != c {
			return false
		}
	}
	return true
}

// CountSet returns the number of pixels that are not Unset.
func (fb *FrameBuffer) CountSet() int {
	n := 0
	for _, c := range fb.pix {
		if c != Unset {
			n++
		}
	}
	return n
}
