package micro

// EntityManager owns an ordered collection of entities and drives them once
// per frame. Insertion order is the iteration order for both updates and
// collision testing.
//
// Collision detection is a plain pairwise scan, O(n²) in the number of
// entities with colliders, recomputed from scratch every frame.
type EntityManager struct {
	entities []Entity
	sink     CollisionSink
	frame    uint64

	// Per-frame counters, reset by Update.
	stats FrameStats
}

// FrameStats counts the work done by the last Update.
type FrameStats struct {
	Updated    int // Update calls made
	PairsTried int // entity pairs tested
	Contacts   int // pairs that collided
}

// NewEntityManager returns an empty manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// Push appends entities to the end of the collection.
func (m *EntityManager) Push(entities ...Entity) {
	for _, e := range entities {
		if e != nil {
			m.entities = append(m.entities, e)
		}
	}
}

// Len returns the number of entities.
func (m *EntityManager) Len() int { return len(m.entities) }

// At returns the entity at index i, or nil when i is out of range.
func (m *EntityManager) At(i int) Entity {
	if i < 0 || i >= len(m.entities) {
		return nil
	}
	return m.entities[i]
}

// Entities returns the collection. The returned slice MUST NOT be mutated.
func (m *EntityManager) Entities() []Entity { return m.entities }

// IndexOf returns the index of e, or -1.
func (m *EntityManager) IndexOf(e Entity) int {
	if e == nil {
		return -1
	}
	target := e.Base()
	for i, x := range m.entities {
		if x.Base() == target {
			return i
		}
	}
	return -1
}

// Destroy runs the teardown hook of the entity at index i and removes it.
// Later entities shift down by one, so indices are not stable across a
// Destroy. It reports false when i is out of range.
func (m *EntityManager) Destroy(i int) bool {
	if i < 0 || i >= len(m.entities) {
		return false
	}
	m.entities[i].Base().destroy()
	copy(m.entities[i:], m.entities[i+1:])
	m.entities[len(m.entities)-1] = nil
	m.entities = m.entities[:len(m.entities)-1]
	return true
}

// Sweep destroys every entity whose Alive flag is false, preserving the
// order of the rest, and returns how many were removed.
func (m *EntityManager) Sweep() int {
	removed := 0
	for i := 0; i < len(m.entities); {
		if m.entities[i].Base().Alive {
			i++
			continue
		}
		m.Destroy(i)
		removed++
	}
	return removed
}

// SetCollisionSink sets the optional ECS bridge.
func (m *EntityManager) SetCollisionSink(sink CollisionSink) {
	m.sink = sink
}

// Frame returns the number of Update calls made so far.
func (m *EntityManager) Frame() uint64 { return m.frame }

// Stats returns the counters of the last Update.
func (m *EntityManager) Stats() FrameStats { return m.stats }

// Update advances one frame. For each entity in order:
//
//  1. An entity without colliders is updated and the scan moves on.
//  2. Otherwise it is tested against every later entity that has colliders.
//     For each such pair, the first overlapping collider combination fires
//     OnCollide on both entities and ends the scan of that pair.
//  3. The entity is then updated.
//
// Because updates are interleaved with the scan, an entity is tested
// against later entities that still hold last frame's position.
//
// Callbacks may Push or Destroy. Entities pushed mid-frame are processed in
// the same frame; an entity destroyed mid-frame is not updated afterwards,
// and the entities that shift into its slot are neither skipped nor
// processed twice.
func (m *EntityManager) Update(dt float64) {
	m.frame++
	m.stats = FrameStats{}
	pass := nextPass()

	for i := 0; i < len(m.entities); i = m.resume(i, pass) {
		e := m.entities[i]
		e.Base().visited = pass
		if len(e.Base().Colliders) == 0 {
			e.Update(dt)
			m.stats.Updated++
			continue
		}

		var gone bool
		if i, gone = m.scan(i, e); gone {
			continue
		}
		e.Update(dt)
		m.stats.Updated++
	}
}

// scan tests e, at index i, against every later entity with colliders. It
// returns e's index after the callbacks ran, or gone when one of them
// destroyed e.
func (m *EntityManager) scan(i int, e Entity) (int, bool) {
	start := i
	stamp := nextPass()
	for j := i + 1; j < len(m.entities); {
		other := m.entities[j]
		ob := other.Base()
		ob.scanned = stamp
		if len(ob.Colliders) == 0 {
			j++
			continue
		}
		m.stats.PairsTried++
		if !m.collide(e, other) {
			j++
			continue
		}
		m.stats.Contacts++

		// Callbacks may have reshaped the collection.
		if i = m.locate(i, e); i < 0 {
			return start, true
		}
		j = max(i+1, min(j, len(m.entities)))
		for j-1 > i && m.entities[j-1].Base().scanned != stamp {
			j--
		}
		for j < len(m.entities) && m.entities[j].Base().scanned == stamp {
			j++
		}
	}
	return i, false
}

// resume returns the index of the first entity not yet visited by pass.
// Visited entities always form a prefix: Destroy keeps order and Push
// appends.
func (m *EntityManager) resume(i int, pass uint64) int {
	i = max(0, min(i, len(m.entities)))
	for i > 0 && m.entities[i-1].Base().visited != pass {
		i--
	}
	for i < len(m.entities) && m.entities[i].Base().visited == pass {
		i++
	}
	return i
}

// locate returns the index of e, checking hint first, or -1.
func (m *EntityManager) locate(hint int, e Entity) int {
	if hint >= 0 && hint < len(m.entities) && m.entities[hint].Base() == e.Base() {
		return hint
	}
	return m.IndexOf(e)
}

// collide tests every collider combination of a and b and reports the first
// contact found to both entities.
func (m *EntityManager) collide(a, b Entity) bool {
	oa, ob := a.Base(), b.Base()
	pa, pb := oa.Position(), ob.Position()

	for _, ca := range oa.Colliders {
		boxA := ColliderBox(pa, ca)
		for _, cb := range ob.Colliders {
			if !boxA.Overlaps(ColliderBox(pb, cb)) {
				continue
			}

			sa, sb := oa.Snapshot(), ob.Snapshot()
			a.OnCollide(Collision{
				Tag:           cb.Tag,
				Collider:      ca,
				OtherCollider: cb,
				Other:         b,
				Self:          sa,
				OtherState:    sb,
			})
			b.OnCollide(Collision{
				Tag:           ca.Tag,
				Collider:      cb,
				OtherCollider: ca,
				Other:         a,
				Self:          sb,
				OtherState:    sa,
			})
			if m.sink != nil {
				m.sink.EmitCollision(CollisionEvent{
					Frame:     m.frame,
					A:         sa,
					B:         sb,
					ColliderA: ca,
					ColliderB: cb,
				})
			}
			return true
		}
	}
	return false
}
