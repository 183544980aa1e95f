package micro

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action in a test script.
type scriptStep struct {
	Action string `json:"action"`
	Input  Input  `json:"input,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type testScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner plays a scripted sequence of input presses, releases, waits and
// screenshots, one step per frame. Attach it through RunConfig.TestRunner.
//
// Actions:
//
//	{"action": "press", "input": "p1-right"}
//	{"action": "release", "input": "p1-right"}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-jump"}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("micro: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("micro: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release":
			if st.Input == "" {
				return nil, fmt.Errorf("micro: parse test script: step %d: %s needs an input", i, st.Action)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("micro: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the script by one frame. Injected presses take effect on the
// following Poll.
func (r *TestRunner) step(in *InputState, shot func(label string)) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		in.InjectPress(st.Input)
	case "release":
		in.InjectRelease(st.Input)
	case "screenshot":
		if shot != nil {
			shot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
