package micro

// Scene is a virtual viewport over a set of entities: it tracks an origin
// and keeps each entity's ViewportX/ViewportY equal to its position minus
// that origin.
//
// Scenes do not order drawing. To layer, use several scenes and draw them in
// the order desired; overlap within one scene has no defined priority.
type Scene struct {
	OriginX, OriginY float64

	entities []Entity
}

// NewScene creates an empty scene with its origin at (0, 0).
func NewScene() *Scene {
	return &Scene{}
}

// Add tracks entities in the scene.
func (s *Scene) Add(entities ...Entity) {
	for _, e := range entities {
		if e != nil {
			s.entities = append(s.entities, e)
		}
	}
}

// Remove stops tracking e. It reports whether e was tracked.
func (s *Scene) Remove(e Entity) bool {
	if e == nil {
		return false
	}
	target := e.Base()
	for i, x := range s.entities {
		if x.Base() == target {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Entities returns the tracked entities. The returned slice MUST NOT be mutated.
func (s *Scene) Entities() []Entity { return s.entities }

// SetOrigin moves the scene origin to (x, y).
func (s *Scene) SetOrigin(x, y float64) {
	s.OriginX, s.OriginY = x, y
}

// Pan moves the scene origin by (dx, dy).
func (s *Scene) Pan(dx, dy float64) {
	s.OriginX += dx
	s.OriginY += dy
}

// Update recomputes the viewport position of every tracked entity.
func (s *Scene) Update() {
	for _, e := range s.entities {
		o := e.Base()
		o.ViewportX = o.X - s.OriginX
		o.ViewportY = o.Y - s.OriginY
	}
}

// WorldToView converts a world position to viewport coordinates.
func (s *Scene) WorldToView(x, y float64) (float64, float64) {
	return x - s.OriginX, y - s.OriginY
}

// ViewToWorld converts viewport coordinates to a world position.
func (s *Scene) ViewToWorld(x, y float64) (float64, float64) {
	return x + s.OriginX, y + s.OriginY
}

// View returns the w x h section of a world-sized pixel grid whose top-left
// is the scene origin (rounded down). It fails with ErrOutOfBounds when the
// view extends past the world.
func (s *Scene) View(world *FrameBuffer, w, h int) (*FrameBuffer, error) {
	return world.Section(floorInt(s.OriginX), floorInt(s.OriginY), w, h)
}

func floorInt(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}
