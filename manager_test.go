package micro

import (
	"reflect"
	"testing"
)

type recordingSink struct {
	events []CollisionEvent
}

func (s *recordingSink) EmitCollision(e CollisionEvent) { s.events = append(s.events, e) }

func TestEntityManagerSingleContactScenario(t *testing.T) {
	fb := NewFrameBuffer(256, 256)
	a := newTestEntity("a", 0, 0, box(TagBody, 10, 10))
	b := newTestEntity("b", 5, 5, box(TagBody, 10, 10))

	sink := &recordingSink{}
	m := NewEntityManager()
	m.SetCollisionSink(sink)
	m.Push(a, b)
	m.Update(1.0 / 60)

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want exactly 1 pair", len(sink.events))
	}
	if len(a.contacts) != 1 || len(b.contacts) != 1 {
		t.Fatalf("reactions a=%d b=%d, want 1 each", len(a.contacts), len(b.contacts))
	}
	if a.contacts[0].Other != Entity(b) || b.contacts[0].Other != Entity(a) {
		t.Error("reaction reports the wrong partner")
	}
	if a.updates != 1 || b.updates != 1 {
		t.Errorf("updates a=%d b=%d, want 1 each", a.updates, b.updates)
	}

	ev := sink.events[0]
	if ev.A.ID != a.ID || ev.B.ID != b.ID || ev.Frame != 1 {
		t.Errorf("event = %+v", ev)
	}
	if st := m.Stats(); st.PairsTried != 1 || st.Contacts != 1 || st.Updated != 2 {
		t.Errorf("stats = %+v", st)
	}
	if fb.CountSet() != 0 {
		t.Error("collision touched the frame buffer")
	}
}

func TestEntityManagerCollisionDetails(t *testing.T) {
	a := newTestEntity("a", 0, 0, box(TagPlayer, 10, 10))
	b := newTestEntity("b", 5, 0, box(TagEnemy, 10, 10))
	m := NewEntityManager()
	m.Push(a, b)
	m.Update(0)

	ca := a.contacts[0]
	if ca.Tag != TagEnemy || ca.Collider.Tag != TagPlayer || ca.OtherCollider.Tag != TagEnemy {
		t.Errorf("a's view: tag=%s own=%s other=%s", ca.Tag, ca.Collider.Tag, ca.OtherCollider.Tag)
	}
	cb := b.contacts[0]
	if cb.Tag != TagPlayer || cb.Collider.Tag != TagEnemy {
		t.Errorf("b's view: tag=%s own=%s", cb.Tag, cb.Collider.Tag)
	}
	if ca.Self.ID != a.ID || ca.OtherState.ID != b.ID {
		t.Error("a's snapshots swapped")
	}
	if cb.Self.ID != b.ID || cb.OtherState.ID != a.ID {
		t.Error("b's snapshots swapped")
	}
}

// mover shifts itself when it collides, so later reactions can observe it.
type mover struct {
	testEntity
}

func (m *mover) OnCollide(c Collision) {
	m.testEntity.OnCollide(c)
	m.X += 100
}

func TestEntityManagerSnapshotsTakenBeforeReactions(t *testing.T) {
	a := &mover{*newTestEntity("a", 0, 0, box(TagBody, 10, 10))}
	b := newTestEntity("b", 5, 0, box(TagBody, 10, 10))
	m := NewEntityManager()
	m.Push(a, b)
	m.Update(0)

	if a.X != 100 {
		t.Fatalf("a.X = %v, want 100 after its reaction", a.X)
	}
	if got := b.contacts[0].OtherState.X; got != 0 {
		t.Errorf("b saw a at x=%v, want pre-reaction 0", got)
	}
	if got := b.contacts[0].Self.X; got != 5 {
		t.Errorf("b's own snapshot x=%v, want 5", got)
	}
}

func TestEntityManagerFirstColliderPairOnly(t *testing.T) {
	a := newTestEntity("a", 0, 0,
		NewCollider(TagHead, 0, 0, 10, 10),
		NewCollider(TagBody, 0, 0, 10, 10),
	)
	b := newTestEntity("b", 5, 5,
		NewCollider(TagHand, 0, 0, 10, 10),
		NewCollider(TagFoot, 0, 0, 10, 10),
	)
	m := NewEntityManager()
	m.Push(a, b)
	m.Update(0)

	if len(a.contacts) != 1 || len(b.contacts) != 1 {
		t.Fatalf("reactions a=%d b=%d, want 1 each", len(a.contacts), len(b.contacts))
	}
	if a.contacts[0].Collider.Tag != TagHead || a.contacts[0].Tag != TagHand {
		t.Errorf("first pair = %s/%s, want head/hand", a.contacts[0].Collider.Tag, a.contacts[0].Tag)
	}
}

func TestEntityManagerNoCollidersNeverTested(t *testing.T) {
	a := newTestEntity("a", 0, 0, box(TagBody, 10, 10))
	ghost := newTestEntity("ghost", 0, 0)
	b := newTestEntity("b", 50, 50, box(TagBody, 10, 10))
	m := NewEntityManager()
	m.Push(a, ghost, b)
	m.Update(0)

	if len(ghost.contacts) != 0 || len(a.contacts) != 0 {
		t.Error("entity without colliders took part in collision")
	}
	if ghost.updates != 1 {
		t.Errorf("ghost updates = %d, want 1", ghost.updates)
	}
	if st := m.Stats(); st.PairsTried != 1 {
		t.Errorf("PairsTried = %d, want 1", st.PairsTried)
	}
}

func TestEntityManagerOrdering(t *testing.T) {
	var log []string
	a := newTestEntity("a", 0, 0, box(TagBody, 10, 10))
	b := newTestEntity("b", 5, 0, box(TagBody, 10, 10))
	c := newTestEntity("c", 100, 0)
	d := newTestEntity("d", 8, 0, box(TagBody, 10, 10))
	for _, e := range []*testEntity{a, b, c, d} {
		e.log = &log
	}

	m := NewEntityManager()
	m.Push(a, b, c, d)
	m.Update(0)

	want := []string{
		"collide a", "collide b", // a vs b
		"collide a", "collide d", // a vs d
		"update a",
		"collide b", "collide d", // b vs d
		"update b",
		"update c",
		"update d",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("order =\n%v\nwant\n%v", log, want)
	}
}

func TestEntityManagerPairsTestedBeforeUpdate(t *testing.T) {
	// b moves away in its own update, but the b/c pair is tested first, so
	// the contact is still reported this frame.
	a := newTestEntity("a", 0, 0, box(TagBody, 10, 10))
	b := newTestEntity("b", 50, 0, box(TagBody, 10, 10))
	c := newTestEntity("c", 55, 0, box(TagBody, 10, 10))
	b.onUpdate = func(e *testEntity) { e.X = 500 }

	m := NewEntityManager()
	m.Push(a, b, c)
	m.Update(0)

	if len(c.contacts) != 1 {
		t.Fatalf("c contacts = %d, want 1 (b tested before its update)", len(c.contacts))
	}
	m.Update(0)
	if len(c.contacts) != 1 {
		t.Errorf("c contacts = %d after b moved away, want still 1", len(c.contacts))
	}
}

func TestEntityManagerDestroy(t *testing.T) {
	a := newTestEntity("a", 0, 0)
	b := newTestEntity("b", 0, 0)
	c := newTestEntity("c", 0, 0)
	destroyed := ""
	b.OnDestroy = func() { destroyed = "b" }

	m := NewEntityManager()
	m.Push(a, b, c)

	if !m.Destroy(1) {
		t.Fatal("Destroy(1) = false")
	}
	if destroyed != "b" {
		t.Error("teardown hook not run")
	}
	if m.Len() != 2 || m.At(0) != Entity(a) || m.At(1) != Entity(c) {
		t.Errorf("after destroy: len=%d", m.Len())
	}
	if m.IndexOf(c) != 1 {
		t.Errorf("IndexOf(c) = %d, want 1 (indices shift down)", m.IndexOf(c))
	}
	if m.Destroy(5) || m.Destroy(-1) {
		t.Error("out-of-range Destroy reported true")
	}
	if m.At(9) != nil {
		t.Error("At out of range should be nil")
	}
}

func TestEntityManagerSweep(t *testing.T) {
	var torn []string
	mk := func(name string, alive bool) *testEntity {
		e := newTestEntity(name, 0, 0)
		e.Alive = alive
		e.OnDestroy = func() { torn = append(torn, name) }
		return e
	}
	a, b, c, d := mk("a", false), mk("b", true), mk("c", false), mk("d", true)

	m := NewEntityManager()
	m.Push(a, b, c, d)
	if n := m.Sweep(); n != 2 {
		t.Errorf("Sweep = %d, want 2", n)
	}
	if !reflect.DeepEqual(torn, []string{"a", "c"}) {
		t.Errorf("teardown order = %v", torn)
	}
	if m.Len() != 2 || m.At(0) != Entity(b) || m.At(1) != Entity(d) {
		t.Error("survivors out of order")
	}
}

func TestEntityManagerPushDuringUpdate(t *testing.T) {
	m := NewEntityManager()
	spawned := newTestEntity("spawned", 0, 0)
	a := newTestEntity("a", 0, 0)
	a.onUpdate = func(e *testEntity) {
		if e.updates == 1 {
			m.Push(spawned)
		}
	}
	m.Push(a, nil)
	m.Update(0)

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (nil ignored)", m.Len())
	}
	if spawned.updates != 1 {
		t.Errorf("entity pushed mid-frame updated %d times, want 1", spawned.updates)
	}
}

func TestEntityManagerDestroySelfInCollision(t *testing.T) {
	m := NewEntityManager()
	projectile := newTestEntity("projectile", 0, 0, box(TagBody, 10, 10))
	target := newTestEntity("target", 5, 5, box(TagBody, 10, 10))
	bystander := newTestEntity("bystander", 50, 50)
	projectile.onCollide = func(e *testEntity, _ Collision) {
		m.Destroy(m.IndexOf(e))
	}
	m.Push(projectile, target, bystander)
	m.Update(1)

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if projectile.updates != 0 {
		t.Errorf("destroyed entity updated %d times, want 0", projectile.updates)
	}
	if target.updates != 1 || len(target.contacts) != 1 {
		t.Errorf("target updates=%d contacts=%d, want 1 and 1", target.updates, len(target.contacts))
	}
	if bystander.updates != 1 {
		t.Errorf("bystander updated %d times, want 1", bystander.updates)
	}
}

func TestEntityManagerDestroyOtherInCollision(t *testing.T) {
	m := NewEntityManager()
	a := newTestEntity("a", 0, 0, box(TagBody, 10, 10))
	b := newTestEntity("b", 0, 0, box(TagBody, 10, 10))
	c := newTestEntity("c", 0, 0, box(TagBody, 10, 10))
	b.onCollide = func(e *testEntity, _ Collision) {
		m.Destroy(m.IndexOf(e))
	}
	m.Push(a, b, c)
	m.Update(1)

	if len(a.contacts) != 2 {
		t.Errorf("a contacts = %d, want 2 (b and the shifted c)", len(a.contacts))
	}
	if len(c.contacts) != 1 {
		t.Errorf("c contacts = %d, want 1", len(c.contacts))
	}
	if a.updates != 1 || b.updates != 0 || c.updates != 1 {
		t.Errorf("updates a=%d b=%d c=%d, want 1 0 1", a.updates, b.updates, c.updates)
	}
	if got := m.Stats().Updated; got != 2 {
		t.Errorf("Stats.Updated = %d, want 2", got)
	}
}

func TestEntityManagerDestroyEarlierDuringUpdate(t *testing.T) {
	m := NewEntityManager()
	a := newTestEntity("a", 0, 0)
	b := newTestEntity("b", 0, 0)
	c := newTestEntity("c", 0, 0)
	b.onUpdate = func(*testEntity) {
		m.Destroy(m.IndexOf(a))
	}
	m.Push(a, b, c)
	m.Update(1)

	if a.updates != 1 || b.updates != 1 || c.updates != 1 {
		t.Errorf("updates a=%d b=%d c=%d, want 1 each", a.updates, b.updates, c.updates)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestEntityManagerFrameCounter(t *testing.T) {
	m := NewEntityManager()
	m.Update(0)
	m.Update(0)
	if m.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", m.Frame())
	}
}

func BenchmarkEntityManagerUpdate_200(b *testing.B) {
	m := NewEntityManager()
	for i := 0; i < 200; i++ {
		m.Push(newTestEntity("e", float64(i%20*12), float64(i/20*12), box(TagBody, 10, 10)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Update(1.0 / 60)
	}
}
