package picket

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ID     int     `json:"id,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON gesture script against a document for
// automated interaction testing. Call Step once per frame; each call
// executes one action ("wait" consumes its frame count).
//
// Supported actions: press, release, click, touchstart, touchend, wait.
type ScriptRunner struct {
	doc       *Document
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script targeting doc. Scripts with no
// steps or with unknown actions are rejected at load time.
func LoadScript(jsonData []byte, doc *Document) (*ScriptRunner, error) {
	if doc == nil {
		panic("picket: LoadScript called with nil document")
	}
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "click", "touchstart", "touchend", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{doc: doc, steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, injecting the next action into the
// document. Calling Step after completion is a no-op.
func (r *ScriptRunner) Step() {
	if r.done {
		return
	}
	// Count down wait frames.
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
		r.doc.InjectPress(st.X, st.Y)
	case "release":
		r.doc.InjectRelease(st.X, st.Y)
	case "click":
		r.doc.InjectClick(st.X, st.Y)
	case "touchstart":
		id := st.ID
		if id == 0 {
			id = 1
		}
		r.doc.InjectTouchStart(id, st.X, st.Y)
	case "touchend":
		id := st.ID
		if id == 0 {
			id = 1
		}
		r.doc.InjectTouchEnd(id, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
