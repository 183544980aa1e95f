package micro

// ColorIndex is a palette index stored in a FrameBuffer. It is not a color
// value; presentation looks it up in a Palette.
type ColorIndex int16

// Unset marks a pixel that nothing has drawn to this frame. Presentation
// skips it (the background shows through) rather than treating it as index 0.
const Unset ColorIndex = -1

// Point is an integer pixel coordinate in raster space.
type Point struct {
	X, Y int
}

// Vec2 is a 2D vector used for simulation positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r and other overlap on both axes.
// Rectangles that share only an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// PixelMode selects how WriteInto combines source and destination pixels.
type PixelMode string

const (
	PixelOverwrite PixelMode = "overwrite" // replace destination unconditionally
)

// OverflowMode selects how WriteInto treats source pixels that land outside
// the destination.
type OverflowMode string

const (
	OverflowCutoff OverflowMode = "cutoff" // discard out-of-bounds pixels
)

// Tag names the semantic category of a Collider. The set is open; the
// constants below are the stock categories games are expected to share.
type Tag string

const (
	TagFloor       Tag = "floor"
	TagCeiling     Tag = "ceiling"
	TagPlatform    Tag = "platform"
	TagWall        Tag = "wall"
	TagSideTop     Tag = "side_top"
	TagSideBottom  Tag = "side_bottom"
	TagSideLeft    Tag = "side_left"
	TagSideRight   Tag = "side_right"
	TagBody        Tag = "body"
	TagHead        Tag = "head"
	TagHand        Tag = "hand"
	TagFoot        Tag = "foot"
	TagTail        Tag = "tail"
	TagWing        Tag = "wing"
	TagPlayer      Tag = "player"
	TagEnemy       Tag = "enemy"
	TagProjectile  Tag = "projectile"
	TagCollectible Tag = "collectible"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ceilDiv returns ceil(a/b) for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
