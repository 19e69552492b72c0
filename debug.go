package picket

import (
	"fmt"
	"os"
)

// globalDebug enables disposed-node panics and stderr diagnostics.
// Toggled via Document.SetDebugMode.
var globalDebug bool

// debugLog prints a diagnostic line to stderr when debug mode is on.
func debugLog(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[picket] "+format+"\n", args...)
}

// debugLogDispatch prints one dispatched event to stderr.
func (d *Document) debugLogDispatch(ev Event) {
	target := "<none>"
	if ev.Target != nil {
		target = ev.Target.Name
	}
	_, _ = fmt.Fprintf(os.Stderr, "[picket] dispatch %s target=%q at (%.1f, %.1f) button=%s id=%d\n",
		ev.Kind, target, ev.X, ev.Y, ev.Button, ev.PointerID)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called when debug mode is on; in release
// mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("picket debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[picket] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[picket] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
