package drawer

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	T      float64 `json:"t,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded gesture, one step per frame, into a
// Dispatcher. Targets are looked up by name in the map passed to Step.
//
//	{"steps": [
//	  {"action": "down", "target": "panel", "x": 100, "y": 100, "t": 0},
//	  {"action": "move", "x": 70, "y": 100, "t": 16},
//	  {"action": "up", "x": 70, "y": 100, "t": 32},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "closed"}
//	]}
type ScriptRunner struct {
	// OnScreenshot handles "screenshot" steps. Nil skips them.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("drawer: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("drawer: parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "down", "move", "up", "touchstart", "touchmove", "touchend", "click", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("drawer: parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next step, or counts down a wait. Call it once per frame.
func (r *ScriptRunner) Step(d *Dispatcher, targets map[string]Element) {
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

	target := targets[st.Target]
	switch st.Action {
	case "down":
		d.InjectMouseDown(target, st.X, st.Y, st.T)
	case "move":
		d.InjectMouseMove(target, st.X, st.Y, st.T)
	case "up":
		d.InjectMouseUp(target, st.X, st.Y, st.T)
	case "touchstart":
		d.InjectTouchStart(target, st.X, st.Y, st.T)
	case "touchmove":
		d.InjectTouchMove(target, st.X, st.Y, st.T)
	case "touchend":
		d.InjectTouchEnd(target, st.T)
	case "click":
		d.InjectClick(target, st.X, st.Y, st.T)
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
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

// Run executes every remaining step, calling frame after each one so the
// caller can advance clocks and animations.
func (r *ScriptRunner) Run(d *Dispatcher, targets map[string]Element, frame func()) {
	for !r.done {
		r.Step(d, targets)
		if frame != nil {
			frame()
		}
	}
}
