package micro

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func frames(n int) []*FrameBuffer {
	out := make([]*FrameBuffer, n)
	for i := range out {
		out[i] = NewFrameBuffer(1, 1)
		out[i].Set(0, 0, ColorIndex(i))
	}
	return out
}

func TestAnimationLoop(t *testing.T) {
	f := frames(3)
	a := NewAnimation(10, true, f...)

	steps := []struct {
		dt   float64
		want int
	}{
		{0.05, 0},
		{0.1, 1},
		{0.1, 2},
		{0.1, 0}, // wrapped
		{0.1, 1},
	}
	for i, st := range steps {
		a.Update(st.dt)
		if got := a.FrameIndex(); got != st.want {
			t.Errorf("step %d: frame = %d, want %d", i, got, st.want)
		}
	}
	if a.Done() {
		t.Error("looping animation reported done")
	}
	if a.CurrentFrame() != f[1] {
		t.Error("CurrentFrame does not match FrameIndex")
	}
}

func TestAnimationOnce(t *testing.T) {
	a := NewAnimation(10, false, frames(3)...)
	a.Update(0.5)
	if !a.Done() {
		t.Fatal("animation not done after its duration")
	}
	if got := a.FrameIndex(); got != 2 {
		t.Errorf("frame = %d, want last frame 2", got)
	}
	a.Update(0.1)
	if got := a.FrameIndex(); got != 2 {
		t.Errorf("frame after done = %d, want 2", got)
	}

	a.Reset()
	if a.Done() || a.FrameIndex() != 0 {
		t.Error("Reset did not rewind")
	}
	a.Update(0.15)
	if got := a.FrameIndex(); got != 1 {
		t.Errorf("frame after reset = %d, want 1", got)
	}
}

func TestAnimationDegenerate(t *testing.T) {
	empty := NewAnimation(10, true)
	empty.Update(1)
	if empty.FrameIndex() != -1 || empty.CurrentFrame() != nil {
		t.Error("empty animation should have no frame")
	}

	still := NewAnimation(0, true, frames(2)...)
	still.Update(1)
	if still.FrameIndex() != 0 {
		t.Error("zero FPS should hold the first frame")
	}
}

func TestTweenPosition(t *testing.T) {
	o := NewObject(0, 0)
	g := TweenPosition(&o, 10, 20, 1, ease.Linear)

	g.Update(0.5)
	if math.Abs(o.X-5) > 1e-4 || math.Abs(o.Y-10) > 1e-4 {
		t.Errorf("halfway = (%v,%v), want (5,10)", o.X, o.Y)
	}
	if g.Done {
		t.Error("done too early")
	}
	g.Update(0.5)
	if math.Abs(o.X-10) > 1e-4 || math.Abs(o.Y-20) > 1e-4 {
		t.Errorf("end = (%v,%v), want (10,20)", o.X, o.Y)
	}
	if !g.Done {
		t.Error("not done at the end")
	}
}

func TestTweenPositionStopsWhenDead(t *testing.T) {
	o := NewObject(3, 4)
	g := TweenPosition(&o, 10, 20, 1, ease.Linear)
	o.Alive = false
	g.Update(0.5)
	if !g.Done {
		t.Error("tween on a dead object should finish")
	}
	if o.X != 3 || o.Y != 4 {
		t.Error("dead object was moved")
	}
}
