package picket

import (
	"strings"
	"testing"
)

// withDebugMode enables debug mode for the test and restores the previous
// state afterwards. Debug mode is package-global, so tests touching it must
// not leak it into their neighbors.
func withDebugMode(t *testing.T, doc *Document) {
	t.Helper()
	prev := globalDebug
	doc.SetDebugMode(true)
	t.Cleanup(func() {
		doc.SetDebugMode(prev)
	})
}

func TestDebugModeDisposedParentPanics(t *testing.T) {
	doc := NewDocument()
	withDebugMode(t, doc)

	parent := NewNode("parent")
	doc.Root().AddChild(parent)
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for AddChild on a disposed node, got none")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "disposed") {
			t.Errorf("panic = %v, want a message mentioning the disposed node", r)
		}
	}()
	parent.AddChild(NewNode("child"))
}

func TestDebugModeDisposedChildPanics(t *testing.T) {
	doc := NewDocument()
	withDebugMode(t, doc)

	child := NewNode("child")
	child.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for adding a disposed child, got none")
		}
	}()
	doc.Root().AddChild(child)
}

func TestReleaseModeSkipsDisposedChecks(t *testing.T) {
	doc := NewDocument()
	doc.SetDebugMode(false)

	parent := NewNode("parent")
	doc.Root().AddChild(parent)
	parent.Dispose()

	// Without debug mode the disposed check is skipped entirely; the
	// operation proceeds (and is the caller's bug to find).
	parent.AddChild(NewNode("child"))
}

func TestDebugModeDispatchLogsWithoutPanic(t *testing.T) {
	doc := NewDocument()
	withDebugMode(t, doc)

	box := NewNode("box")
	box.Width, box.Height = 10, 10
	doc.Root().AddChild(box)

	// Dispatch logging paths must tolerate both hit and empty-space events.
	doc.InjectClick(5, 5)
	doc.InjectClick(500, 500)
}

func TestDebugModeDeepTreeWarnsWithoutPanic(t *testing.T) {
	doc := NewDocument()
	withDebugMode(t, doc)

	n := doc.Root()
	for i := 0; i < debugMaxTreeDepth+2; i++ {
		child := NewNode("deep")
		n.AddChild(child)
		n = child
	}
}
