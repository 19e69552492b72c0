package picket

import "time"

// InteractionSink is the interface for optional instrumentation. When set on
// a Document, every dispatched event is forwarded to the sink after document
// listeners and per-node callbacks have run.
type InteractionSink interface {
	Record(ev Event)
}

// Document is an event-dispatch root: it owns a node tree, the
// document-level listener registry, and the input profile that decides which
// event families reach it. Embedded documents (hosted by Frame nodes) are
// dispatch roots of their own — an event occurring over a frame dispatches
// inside the embedded document, in its coordinate space, exactly like input
// inside a nested sub-view.
type Document struct {
	root    *Node
	profile InputProfile
	reg     listenerRegistry
	sink    InteractionSink
	debug   bool
}

// NewDocument creates a document with a pre-created root node covering the
// whole coordinate space. The profile defaults to ProfilePointer.
func NewDocument() *Document {
	root := NewNode("root")
	d := &Document{root: root}
	root.doc = d
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Profile returns the document's input profile.
func (d *Document) Profile() InputProfile {
	return d.profile
}

// SetProfile sets the input profile. Detectors read the profile when they
// attach; changing it afterwards requires re-attaching them.
func (d *Document) SetProfile(p InputProfile) {
	d.profile = p
}

// SetSink sets the optional instrumentation sink.
func (d *Document) SetSink(sink InteractionSink) {
	d.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and every
// dispatched event is logged to stderr.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// On registers a document-level listener for the given event kind and
// returns a handle that removes it. Listeners fire in registration order.
func (d *Document) On(kind EventKind, fn func(Event)) ListenerHandle {
	return d.reg.add(kind, fn)
}

// Dispatch delivers a low-level event to this document: document-level
// listeners first, then the target node's OnPress/OnRelease callback, then
// the sink. Dispatch is synchronous and single-threaded; one event completes
// before the next is processed. The event's Document field is stamped with d.
func (d *Document) Dispatch(ev Event) {
	ev.Document = d
	if d.debug {
		d.debugLogDispatch(ev)
	}
	d.reg.fire(ev)
	if ev.Target != nil {
		switch {
		case ev.Kind.IsPress() && ev.Target.OnPress != nil:
			ev.Target.OnPress(ev)
		case ev.Kind.IsRelease() && ev.Target.OnRelease != nil:
			ev.Target.OnRelease(ev)
		}
	}
	if d.sink != nil {
		d.sink.Record(ev)
	}
}

// --- Dispatch root enumeration ---

// Documents returns doc followed by every document embedded by frames within
// its tree, recursively, in depth-first tree order. This is the list of
// dispatch roots an OutsideDetector subscribes to. It is a pure query of the
// current topology; detectors evaluate it at attach time only, so frame
// topology changes require re-attaching.
func Documents(doc *Document) []*Document {
	return appendDocuments(nil, doc)
}

func appendDocuments(dst []*Document, doc *Document) []*Document {
	dst = append(dst, doc)
	return appendEmbedded(dst, doc.root)
}

func appendEmbedded(dst []*Document, n *Node) []*Document {
	if n.embedded != nil {
		dst = appendDocuments(dst, n.embedded)
	}
	for _, child := range n.children {
		dst = appendEmbedded(dst, child)
	}
	return dst
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width/Height box. Zero-size
// nodes without a HitShape are not hit-testable (their children still are).
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// rebuildSortedChildren refreshes n.sortedChildren in ascending ZIndex order.
// Stable insertion sort: equal ZIndex keeps insertion order.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// sortedChildrenOf returns n's children in ZIndex order, rebuilding the
// cached order if stale.
func sortedChildrenOf(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.childrenSorted || len(n.sortedChildren) != len(n.children) {
		rebuildSortedChildren(n)
	}
	return n.sortedChildren
}

// hitTest finds the topmost interactable node at (x, y) in document
// coordinates. Returns nil if nothing is hit. Frames are returned as
// themselves; callers descend into the embedded document.
func (d *Document) hitTest(x, y float64) *Node {
	return hitNode(d.root, x, y)
}

// hitNode hit-tests n and its subtree. (x, y) is given in the coordinate
// space of n's parent. Children are tested topmost-first (reverse ZIndex
// order, later siblings above earlier ones); invisible or non-interactable
// subtrees are transparent to hits.
func hitNode(n *Node, x, y float64) *Node {
	if !n.Visible || !n.Interactable {
		return nil
	}
	lx := x - n.X
	ly := y - n.Y

	sorted := sortedChildrenOf(n)
	for i := len(sorted) - 1; i >= 0; i-- {
		if hit := hitNode(sorted[i], lx, ly); hit != nil {
			return hit
		}
	}
	if nodeContainsLocal(n, lx, ly) {
		return n
	}
	return nil
}

// documentOffset returns n's top-left corner in its document's coordinates.
func documentOffset(n *Node) (float64, float64) {
	var x, y float64
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// resolveTarget hit-tests (x, y) and descends through frames: when the
// topmost hit is a frame, the point is translated into the embedded
// document's space and resolution continues there. It returns the document
// the event belongs to, the target node, and the position in that document's
// coordinates. A miss at the top level yields a nil target; a miss inside a
// frame yields the embedded document's root, keeping the target within the
// frame's subtree for containment walks.
func (d *Document) resolveTarget(x, y float64) (*Document, *Node, float64, float64) {
	hit := d.hitTest(x, y)
	if hit != nil && hit.embedded != nil {
		fx, fy := documentOffset(hit)
		doc, node, lx, ly := hit.embedded.resolveTarget(x-fx, y-fy)
		if node == nil {
			node = doc.root
		}
		return doc, node, lx, ly
	}
	return d, hit, x, y
}

// --- Synthetic event injection ---

// pressKind returns the press/release kinds the document's profile delivers
// for mouse-driven input.
func (d *Document) pressKind() (press, release EventKind) {
	if d.profile == ProfileMouseTouch {
		return MouseDown, MouseUp
	}
	return PointerDown, PointerUp
}

// touchKind returns the press/release kinds the document's profile delivers
// for touch contacts. Pointer-capable hosts deliver touches as pointer events.
func (d *Document) touchKind() (press, release EventKind) {
	if d.profile == ProfileMouseTouch {
		return TouchStart, TouchEnd
	}
	return PointerDown, PointerUp
}

// inject resolves the target for (x, y), descending into embedded documents,
// and dispatches the event synchronously in the document it lands in. A zero
// time is left zero; receivers substitute time.Now().
func (d *Document) inject(kind EventKind, x, y float64, button Button, pointerID int, t time.Time) {
	target, node, lx, ly := d.resolveTarget(x, y)
	target.Dispatch(Event{
		Kind:      kind,
		Target:    node,
		X:         lx,
		Y:         ly,
		Button:    button,
		PointerID: pointerID,
		Time:      t,
	})
}

// InjectPress synthesizes a primary-button press at (x, y): a PointerDown
// under ProfilePointer, a MouseDown under ProfileMouseTouch. The event is
// dispatched synchronously, descending into embedded documents.
func (d *Document) InjectPress(x, y float64) {
	press, _ := d.pressKind()
	d.inject(press, x, y, ButtonLeft, 0, time.Time{})
}

// InjectRelease synthesizes a primary-button release at (x, y).
func (d *Document) InjectRelease(x, y float64) {
	_, release := d.pressKind()
	d.inject(release, x, y, ButtonLeft, 0, time.Time{})
}

// InjectClick is a convenience that injects a press followed by a release
// at the same coordinates.
func (d *Document) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectTouchStart synthesizes the beginning of a touch contact: a
// TouchStart under ProfileMouseTouch, a PointerDown under ProfilePointer.
// id distinguishes concurrent contacts and should be non-zero.
func (d *Document) InjectTouchStart(id int, x, y float64) {
	press, _ := d.touchKind()
	d.inject(press, x, y, ButtonLeft, id, time.Time{})
}

// InjectTouchEnd synthesizes the end of a touch contact.
func (d *Document) InjectTouchEnd(id int, x, y float64) {
	_, release := d.touchKind()
	d.inject(release, x, y, ButtonLeft, id, time.Time{})
}
