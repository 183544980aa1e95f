package micro

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Input names a logical control. Games poll inputs by name instead of by
// physical key, so bindings can change without touching game code.
type Input string

const (
	InputP1Up        Input = "p1-up"
	InputP1Left      Input = "p1-left"
	InputP1Down      Input = "p1-down"
	InputP1Right     Input = "p1-right"
	InputP1Primary   Input = "p1-primary"
	InputP1Secondary Input = "p1-secondary"

	InputP2Up        Input = "p2-up"
	InputP2Left      Input = "p2-left"
	InputP2Down      Input = "p2-down"
	InputP2Right     Input = "p2-right"
	InputP2Primary   Input = "p2-primary"
	InputP2Secondary Input = "p2-secondary"

	InputMouseLeft   Input = "mouse-left"
	InputMouseMiddle Input = "mouse-middle"
	InputMouseRight  Input = "mouse-right"
)

// KeyBinding maps a physical key to a logical input.
type KeyBinding struct {
	Key   ebiten.Key
	Input Input
}

// MouseBinding maps a mouse button to a logical input.
type MouseBinding struct {
	Button ebiten.MouseButton
	Input  Input
}

// DefaultKeyBindings: player one on WASD with Q/E, player two on the arrow
// keys with right Alt/Ctrl.
var DefaultKeyBindings = []KeyBinding{
	{ebiten.KeyW, InputP1Up},
	{ebiten.KeyA, InputP1Left},
	{ebiten.KeyS, InputP1Down},
	{ebiten.KeyD, InputP1Right},
	{ebiten.KeyQ, InputP1Primary},
	{ebiten.KeyE, InputP1Secondary},
	{ebiten.KeyArrowUp, InputP2Up},
	{ebiten.KeyArrowLeft, InputP2Left},
	{ebiten.KeyArrowDown, InputP2Down},
	{ebiten.KeyArrowRight, InputP2Right},
	{ebiten.KeyAltRight, InputP2Primary},
	{ebiten.KeyControlRight, InputP2Secondary},
}

// DefaultMouseBindings maps the three mouse buttons.
var DefaultMouseBindings = []MouseBinding{
	{ebiten.MouseButtonLeft, InputMouseLeft},
	{ebiten.MouseButtonMiddle, InputMouseMiddle},
	{ebiten.MouseButtonRight, InputMouseRight},
}

// InputState tracks which logical inputs are held, in the order they were
// pressed, and where the mouse is in buffer pixels. Call Poll once per frame.
type InputState struct {
	KeyBindings   []KeyBinding
	MouseBindings []MouseBinding

	// Device readers; default to ebiten. Replaced in tests.
	keyPressed   func(ebiten.Key) bool
	mousePressed func(ebiten.MouseButton) bool
	cursor       func() (int, int)

	pressed  []Input
	injected []Input // in injection order
	mouse    Point
}

// NewInputState returns an input state using the default bindings.
func NewInputState() *InputState {
	return &InputState{
		KeyBindings:   DefaultKeyBindings,
		MouseBindings: DefaultMouseBindings,
		keyPressed:    ebiten.IsKeyPressed,
		mousePressed:  ebiten.IsMouseButtonPressed,
		cursor:        ebiten.CursorPosition,
	}
}

// Poll reads the devices. pixelW and pixelH are the size of one buffer pixel
// in cursor units; the mouse position is rounded to the nearest pixel.
func (s *InputState) Poll(pixelW, pixelH float64) {
	held := make(map[Input]bool, len(s.pressed)+len(s.injected))
	for _, b := range s.KeyBindings {
		if s.keyPressed(b.Key) {
			held[b.Input] = true
		}
	}
	for _, b := range s.MouseBindings {
		if s.mousePressed(b.Button) {
			held[b.Input] = true
		}
	}
	for _, in := range s.injected {
		held[in] = true
	}

	// Keep still-held inputs in their original order, then append new ones
	// in binding order, then unbound injected ones in injection order.
	kept := s.pressed[:0]
	for _, in := range s.pressed {
		if held[in] {
			kept = append(kept, in)
			delete(held, in)
		}
	}
	s.pressed = kept
	for _, b := range s.KeyBindings {
		if held[b.Input] {
			s.pressed = append(s.pressed, b.Input)
			delete(held, b.Input)
		}
	}
	for _, b := range s.MouseBindings {
		if held[b.Input] {
			s.pressed = append(s.pressed, b.Input)
			delete(held, b.Input)
		}
	}
	for _, in := range s.injected {
		if held[in] {
			s.pressed = append(s.pressed, in)
			delete(held, in)
		}
	}

	if pixelW > 0 && pixelH > 0 {
		cx, cy := s.cursor()
		s.mouse = Point{
			X: int(math.Round(float64(cx) / pixelW)),
			Y: int(math.Round(float64(cy) / pixelH)),
		}
	}
}

// Pressed reports whether in is held.
func (s *InputState) Pressed(in Input) bool {
	for _, p := range s.pressed {
		if p == in {
			return true
		}
	}
	return false
}

// Inputs returns the held inputs in press order.
func (s *InputState) Inputs() []Input {
	out := make([]Input, len(s.pressed))
	copy(out, s.pressed)
	return out
}

// MousePos returns the cursor position in buffer pixels.
func (s *InputState) MousePos() Point { return s.mouse }

// InjectPress holds in until InjectRelease, as if its key were down.
// Takes effect on the next Poll.
func (s *InputState) InjectPress(in Input) {
	for _, x := range s.injected {
		if x == in {
			return
		}
	}
	s.injected = append(s.injected, in)
}

// InjectRelease releases an injected input.
func (s *InputState) InjectRelease(in Input) {
	for i, x := range s.injected {
		if x == in {
			s.injected = append(s.injected[:i], s.injected[i+1:]...)
			return
		}
	}
}
