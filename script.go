package logo

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action of a capture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	T      float64 `json:"t,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a capture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences clock seeks, waits, screenshots and exit across frames so
// chosen instants of the animation can be rendered deterministically.
//
// Actions:
//
//	{"action": "seek", "t": 12.5}          pin the clock to t seconds
//	{"action": "wait", "frames": 3}        let frames pass
//	{"action": "screenshot", "label": "x"} capture the next frame
//	{"action": "exit"}                     end the loop
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON capture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "seek", "wait", "screenshot", "exit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Driver.Update.
func (s *Script) step(d *Driver) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "seek":
		d.SetClock(&FixedClock{T: st.T})
	case "screenshot":
		d.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "exit":
		d.RequestExit()
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
