package micro

// Shape primitives. Every routine scan-converts in integer pixel space and
// writes through bounds checks, so shapes that hang off the edge of the
// buffer are clipped rather than rejected.

// DrawRect fills the rectangle [x, x+w) x [y, y+h) clipped to the buffer.
// A rectangle entirely outside the buffer costs nothing.
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c ColorIndex) {
	startX := max(0, x)
	startY := max(0, y)
	endX := min(x+w, fb.width)
	endY := min(y+h, fb.height)

	for j := startY; j < endY; j++ {
		row := fb.pix[j*fb.width : (j+1)*fb.width]
		for i := startX; i < endX; i++ {
			row[i] = c
		}
	}
}

// DrawEllipse fills an ellipse centered at (x, y) with full width w and
// height h. A pixel at offset (dx, dy) from the center is included when
// dx²/a² + dy²/b² <= 1 with a = w/2 and b = h/2 (integer halves).
//
// The test is evaluated as dx²b² + dy²a² <= a²b² so a zero semi-axis
// degenerates to a line instead of dividing by zero.
func (fb *FrameBuffer) DrawEllipse(x, y, w, h int, c ColorIndex) {
	a := int64(w / 2)
	b := int64(h / 2)
	aa, bb := a*a, b*b
	limit := aa * bb

	for i := 0; i < w; i++ {
		dx := int64(i) - a
		for j := 0; j < h; j++ {
			dy := int64(j) - b
			if dx*dx*bb+dy*dy*aa <= limit {
				fb.Set(x+int(dx), y+int(dy), c)
			}
		}
	}
}

// DrawRhombus fills a diamond inscribed in the box with top-left corner
// (x, y) and size w x h: a pixel (i, j) of the box is included when
// |i-cx|/cx + |j-cy|/cy <= 1 with cx = w/2 and cy = h/2.
//
// Unlike the shape it was modeled on, every pixel is bounds-checked like the
// other primitives.
func (fb *FrameBuffer) DrawRhombus(x, y, w, h int, c ColorIndex) {
	if w <= 0 || h <= 0 {
		return
	}
	cx := float64(w) / 2
	cy := float64(h) / 2

	for i := 0; i < w; i++ {
		dx := absFloat(float64(i)-cx) / cx
		for j := 0; j < h; j++ {
			dy := absFloat(float64(j)-cy) / cy
			if dx+dy <= 1 {
				fb.Set(x+i, y+j, c)
			}
		}
	}
}

// DrawTriangle fills the isosceles triangle inscribed in the box (x, y, w, h):
// apex at (x+w/2, y), base corners at (x, y+h) and (x+w, y+h). Membership is
// decided with barycentric coordinates over the triangle's bounding box
// clipped to the buffer. A zero-area triangle draws nothing.
func (fb *FrameBuffer) DrawTriangle(x, y, w, h int, c ColorIndex) {
	x1, y1 := float64(x)+float64(w)/2, float64(y)
	x2, y2 := float64(x), float64(y+h)
	x3, y3 := float64(x+w), float64(y+h)

	den := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if den == 0 {
		return
	}

	minX := max(min(x, x+w), 0)
	maxX := min(max(x, x+w), fb.width-1)
	minY := max(min(y, y+h), 0)
	maxY := min(max(y, y+h), fb.height-1)

	for py := minY; py <= maxY; py++ {
		fy := float64(py)
		for px := minX; px <= maxX; px++ {
			fx := float64(px)
			alpha := ((y2-y3)*(fx-x3) + (x3-x2)*(fy-y3)) / den
			beta := ((y3-y1)*(fx-x3) + (x1-x3)*(fy-y3)) / den
			gamma := 1 - alpha - beta
			if alpha >= 0 && alpha <= 1 && beta >= 0 && beta <= 1 && gamma >= 0 && gamma <= 1 {
				fb.pix[px+py*fb.width] = c
			}
		}
	}
}

// DrawLine draws a line from (x1, y1) to (x2, y2) inclusive using Bresenham
// stepping. It visits exactly max(|dx|, |dy|)+1 pixels and clips each one.
func (fb *FrameBuffer) DrawLine(x1, y1, x2, y2 int, c ColorIndex) {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	for {
		fb.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the closed outline through points, joining the last
// point back to the first. Fewer than three points is a no-op.
func (fb *FrameBuffer) DrawPolygon(points []Point, c ColorIndex) {
	if len(points) < 3 {
		return
	}
	for i, p1 := range points {
		p2 := points[(i+1)%len(points)]
		fb.DrawLine(p1.X, p1.Y, p2.X, p2.Y, c)
	}
}

// DrawImage copies src into the buffer with its top-left corner at (x, y).
// Unset source pixels are transparent; pixels falling outside are clipped.
func (fb *FrameBuffer) DrawImage(src *FrameBuffer, x, y int) {
	if src == nil || src == fb {
		return
	}
	for j := 0; j < src.height; j++ {
		for i := 0; i < src.width; i++ {
			if c := src.pix[i+j*src.width]; c != Unset {
				fb.Set(x+i, y+j, c)
			}
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
