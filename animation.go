package micro

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation cycles through bitmap frames at a fixed rate. Call Update(dt)
// every frame and draw CurrentFrame.
//
// Frame selection is driven by a linear tween over the frame indices, so
// the frame shown after t seconds is floor(t * FPS), wrapped when looping.
type Animation struct {
	Frames []*FrameBuffer
	FPS    float64
	Loop   bool

	tween   *gween.Tween
	value   float32
	elapsed float64
	done    bool
}

// NewAnimation returns an animation over frames playing at fps.
func NewAnimation(fps float64, loop bool, frames ...*FrameBuffer) *Animation {
	return &Animation{Frames: frames, FPS: fps, Loop: loop}
}

// duration returns the length of one pass over all frames in seconds.
func (a *Animation) duration() float64 {
	if a.FPS <= 0 {
		return 0
	}
	return float64(len(a.Frames)) / a.FPS
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	d := a.duration()
	if d == 0 || a.done || dt <= 0 {
		return
	}
	if a.tween == nil {
		a.tween = gween.New(0, float32(len(a.Frames)), float32(d), ease.Linear)
	}

	a.elapsed += dt
	if a.elapsed >= d {
		if !a.Loop {
			a.elapsed = d
			a.value = float32(len(a.Frames) - 1)
			a.done = true
			return
		}
		a.elapsed = math.Mod(a.elapsed, d)
		a.tween.Reset()
		a.value, _ = a.tween.Update(float32(a.elapsed))
		return
	}
	a.value, _ = a.tween.Update(float32(dt))
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.value = 0
	a.done = false
	if a.tween != nil {
		a.tween.Reset()
	}
}

// Done reports whether a non-looping animation has reached its last frame.
func (a *Animation) Done() bool { return a.done }

// FrameIndex returns the index of the frame to show.
func (a *Animation) FrameIndex() int {
	if len(a.Frames) == 0 {
		return -1
	}
	i := int(a.value)
	return min(max(i, 0), len(a.Frames)-1)
}

// CurrentFrame returns the frame to show, or nil when there are none.
func (a *Animation) CurrentFrame() *FrameBuffer {
	i := a.FrameIndex()
	if i < 0 {
		return nil
	}
	return a.Frames[i]
}

// TweenGroup moves an Object's position over time. Create one with
// TweenPosition and call Update(dt) each frame.
//
// There is no global animation manager; callers run Update themselves.
type TweenGroup struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	target *Object
	Done   bool
}

// TweenPosition creates a TweenGroup that moves obj to (toX, toY) over
// duration seconds using the easing function. Colliders follow, since they
// are positioned relative to the object.
func TweenPosition(obj *Object, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		tweenX: gween.New(float32(obj.X), float32(toX), duration, fn),
		tweenY: gween.New(float32(obj.Y), float32(toY), duration, fn),
		target: obj,
	}
}

// Update advances the tween by dt seconds and writes the position. If the
// target is no longer alive, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.target.Alive {
		g.Done = true
		return
	}
	x, doneX := g.tweenX.Update(dt)
	y, doneY := g.tweenY.Update(dt)
	g.target.X = float64(x)
	g.target.Y = float64(y)
	g.Done = doneX && doneY
}
