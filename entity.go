package micro

// entityIDCounter is a plain counter (no atomic: micro is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// passCounter stamps each EntityManager pass so entities shifted by a
// mid-frame Destroy are neither skipped nor visited twice.
var passCounter uint64

func nextPass() uint64 {
	passCounter++
	return passCounter
}

// Entity is implemented by every game object an EntityManager drives.
// Concrete kinds embed Object for the shared state and supply the two
// behaviors; the manager never needs to know the concrete type.
type Entity interface {
	// Base returns the shared simulation state. Object implements it, so
	// embedding Object is enough.
	Base() *Object
	// Update advances the entity by dt seconds.
	Update(dt float64)
	// OnCollide reacts to a contact detected this frame.
	OnCollide(c Collision)
}

// Object is the state every entity shares: its authoritative position, an
// optional display position relative to a Scene origin, a liveness flag and
// its colliders, which are positioned relative to X and Y.
type Object struct {
	ID uint32

	// Simulation coordinates.
	X, Y float64

	// Display position (position minus the owning Scene's origin).
	// Maintained by Scene.Update; unused by collision.
	ViewportX, ViewportY float64

	Alive bool

	// Colliders may be empty: the entity is then updated but never tested
	// for collisions.
	Colliders []Collider

	// OnDestroy is the teardown hook run by EntityManager.Destroy.
	OnDestroy func()

	// Stamps of the last manager pass that updated this object and the
	// last pair scan that tested it.
	visited, scanned uint64
}

// NewObject returns a live object at (x, y) with a fresh ID.
func NewObject(x, y float64) Object {
	return Object{
		ID:        nextEntityID(),
		X:         x,
		Y:         y,
		ViewportX: x,
		ViewportY: y,
		Alive:     true,
	}
}

// Base returns o.
func (o *Object) Base() *Object { return o }

// Position returns (X, Y).
func (o *Object) Position() Vec2 { return Vec2{o.X, o.Y} }

// SetPosition moves the object.
func (o *Object) SetPosition(x, y float64) {
	o.X, o.Y = x, y
}

// AddCollider attaches c to the object.
func (o *Object) AddCollider(c Collider) {
	o.Colliders = append(o.Colliders, c)
}

// Box returns the world-space rectangle of collider i.
func (o *Object) Box(i int) Rect {
	return ColliderBox(o.Position(), o.Colliders[i])
}

// Snapshot captures the object's current state.
func (o *Object) Snapshot() Snapshot {
	s := Snapshot{ID: o.ID, X: o.X, Y: o.Y}
	if len(o.Colliders) > 0 {
		s.Colliders = make([]Collider, len(o.Colliders))
		copy(s.Colliders, o.Colliders)
	}
	return s
}

func (o *Object) destroy() {
	if o.OnDestroy != nil {
		o.OnDestroy()
	}
}

// Snapshot is an immutable copy of an entity's state taken before any
// collision reaction for a contact runs.
type Snapshot struct {
	ID        uint32
	X, Y      float64
	Colliders []Collider
}

// Position returns (X, Y).
func (s Snapshot) Position() Vec2 { return Vec2{s.X, s.Y} }

// Collision carries one contact to an entity's OnCollide.
type Collision struct {
	// Tag is the category of the other entity's colliding collider.
	Tag Tag

	// Collider is the receiver's own collider involved in the contact.
	Collider Collider

	// OtherCollider is the other entity's collider; its Tag equals Tag.
	OtherCollider Collider

	// Other is the entity collided with.
	Other Entity

	// Self and OtherState are the two entities as they were before either
	// reaction ran.
	Self       Snapshot
	OtherState Snapshot
}

// CollisionEvent describes a contact between two entities, reported once per
// pair per frame to a CollisionSink.
type CollisionEvent struct {
	Frame     uint64
	A, B      Snapshot
	ColliderA Collider
	ColliderB Collider
}

// CollisionSink is the interface for optional ECS integration. When set on
// an EntityManager, every contact is forwarded after both reactions ran.
type CollisionSink interface {
	EmitCollision(event CollisionEvent)
}
