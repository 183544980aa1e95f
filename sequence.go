package micro

// Sequence is a self-contained game state (a level, a pause menu, a title
// screen) that owns its entities and scenes and forwards each frame to them.
type Sequence struct {
	Name     string
	Entities *EntityManager
	Scenes   []*Scene

	// Optional hooks.
	OnStart func()
	OnEnd   func()
	OnDraw  func(fb *FrameBuffer)
}

// NewSequence returns a sequence with an empty entity manager.
func NewSequence(name string) *Sequence {
	return &Sequence{Name: name, Entities: NewEntityManager()}
}

// Start runs the OnStart hook.
func (s *Sequence) Start() {
	if s.OnStart != nil {
		s.OnStart()
	}
}

// End runs the OnEnd hook.
func (s *Sequence) End() {
	if s.OnEnd != nil {
		s.OnEnd()
	}
}

// Update advances the entities by dt, then refreshes every scene's viewport
// positions.
func (s *Sequence) Update(dt float64) {
	if s.Entities != nil {
		s.Entities.Update(dt)
	}
	for _, sc := range s.Scenes {
		sc.Update()
	}
}

// Draw runs the OnDraw hook against fb.
func (s *Sequence) Draw(fb *FrameBuffer) {
	if s.OnDraw != nil {
		s.OnDraw(fb)
	}
}

// SequenceStack decides which sequence runs each frame: only the one on top
// of the stack is advanced and drawn.
type SequenceStack struct {
	stack []*Sequence
}

// Push starts seq and places it on top of the stack.
func (st *SequenceStack) Push(seq *Sequence) {
	if seq == nil {
		return
	}
	st.stack = append(st.stack, seq)
	seq.Start()
}

// Pop ends and removes the top sequence and returns it, or nil when empty.
func (st *SequenceStack) Pop() *Sequence {
	if len(st.stack) == 0 {
		return nil
	}
	top := st.stack[len(st.stack)-1]
	st.stack[len(st.stack)-1] = nil
	st.stack = st.stack[:len(st.stack)-1]
	top.End()
	return top
}

// Top returns the running sequence, or nil when empty.
func (st *SequenceStack) Top() *Sequence {
	if len(st.stack) == 0 {
		return nil
	}
	return st.stack[len(st.stack)-1]
}

// Len returns the stack depth.
func (st *SequenceStack) Len() int { return len(st.stack) }

// Update advances the top sequence.
func (st *SequenceStack) Update(dt float64) {
	if top := st.Top(); top != nil {
		top.Update(dt)
	}
}

// Draw draws the top sequence.
func (st *SequenceStack) Draw(fb *FrameBuffer) {
	if top := st.Top(); top != nil {
		top.Draw(fb)
	}
}
