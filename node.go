package picket

// nodeIDCounter is a plain counter (no atomic — picket is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental tree element. Regions handed to an OutsideDetector
// are ordinary nodes; containment means "descendant of or equal to". A single
// flat struct is used for all node roles to avoid interface dispatch on the
// hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry: an axis-aligned box relative to the parent's origin.
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	Alpha        float64

	// Ordering among siblings: higher ZIndex is hit-tested first.
	ZIndex int

	// Metadata
	UserData any

	// Hit testing: overrides the Width/Height box when set.
	HitShape HitShape

	// Per-node callbacks (nil by default; zero cost when unused).
	// Document listeners fire first, then these.
	OnPress   func(Event)
	OnRelease func(Event)

	// Frame embedding: non-nil when this node hosts an embedded document.
	embedded *Document

	// Document links. doc is set on a Document's root only; hostFrame is set
	// on an embedded document's root and points at the hosting frame node.
	doc       *Document
	hostFrame *Node

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Interactable = true
	n.Alpha = 1
	n.childrenSorted = true
}

// NewNode creates an interactable box node.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewFrame creates a frame node hosting an embedded document. Events that hit
// the frame's box dispatch inside the embedded document, in its coordinate
// space. A document can be embedded by at most one frame at a time.
// Panics if doc is nil or already embedded elsewhere.
func NewFrame(name string, doc *Document) *Node {
	if doc == nil {
		panic("picket: cannot embed nil document")
	}
	if doc.root.hostFrame != nil {
		panic("picket: document is already embedded by another frame")
	}
	n := &Node{Name: name, embedded: doc}
	nodeDefaults(n)
	doc.root.hostFrame = n
	return n
}

// Embedded returns the document this frame hosts, or nil for ordinary nodes.
func (n *Node) Embedded() *Document {
	return n.embedded
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this node, or a document
// embedded within child's subtree hosts this node (either would create a cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("picket: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("picket: adding child would create a cycle")
	}
	if embedsHost(child, n) {
		panic("picket: adding child would embed an enclosing document")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("picket: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("picket: adding child would create a cycle")
	}
	if embedsHost(child, n) {
		panic("picket: adding child would embed an enclosing document")
	}
	if index < 0 || index > len(n.children) {
		panic("picket: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("picket: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("picket: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childrenSorted = false
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("picket: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("picket: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.childrenSorted = false
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Containment ---

// Contains reports whether other is n or a descendant of n within the same
// document tree. A disposed n or nil other never contains/is contained;
// this reports false rather than faulting.
func (n *Node) Contains(other *Node) bool {
	if n == nil || n.disposed || other == nil {
		return false
	}
	return isAncestor(n, other)
}

// containsComposed reports whether node is region or a descendant of region,
// crossing embedded-document boundaries upward: walking off the root of an
// embedded document continues from its hosting frame. This is the containment
// test outside-interaction detection uses, so content inside a frame nested
// under the region still counts as inside.
func containsComposed(region, node *Node) bool {
	if region == nil || region.disposed {
		return false
	}
	for n := node; n != nil; {
		if n == region {
			return true
		}
		if n.Parent != nil {
			n = n.Parent
			continue
		}
		n = n.hostFrame
	}
	return false
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. An embedded document is
// released (it can be embedded again) but its nodes are not disposed.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnPress = nil
	n.OnRelease = nil
	if n.embedded != nil {
		n.embedded.root.hostFrame = nil
		n.embedded = nil
	}
	n.doc = nil
	n.hostFrame = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Document returns the document owning the tree this node is mounted in, or
// nil for an unmounted tree. An embedded document owns its own tree; use the
// hosting frame's node to reach the outer document.
func (n *Node) Document() *Document {
	return ownerDocument(n)
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// embedsHost reports whether any document embedded within child's subtree
// (transitively, through nested frames) encloses parent — that is, owns the
// tree parent is mounted in or a tree parent's host chain passes through.
// Mounting child under parent would then nest a document inside itself.
func embedsHost(child, parent *Node) bool {
	var hosts map[*Document]bool
	for n := parent; n != nil; {
		if n.Parent != nil {
			n = n.Parent
			continue
		}
		if n.doc != nil {
			if hosts == nil {
				hosts = make(map[*Document]bool)
			}
			hosts[n.doc] = true
		}
		n = n.hostFrame
	}
	if len(hosts) == 0 {
		return false
	}
	return subtreeEmbedsAny(child, hosts)
}

func subtreeEmbedsAny(n *Node, hosts map[*Document]bool) bool {
	if n.embedded != nil {
		if hosts[n.embedded] {
			return true
		}
		if subtreeEmbedsAny(n.embedded.root, hosts) {
			return true
		}
	}
	for _, child := range n.children {
		if subtreeEmbedsAny(child, hosts) {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// ownerDocument returns the document owning the tree n is mounted in, or nil
// for an unmounted tree. Embedded documents own their own trees.
func ownerDocument(n *Node) *Document {
	for p := n; p != nil; p = p.Parent {
		if p.Parent == nil {
			return p.doc
		}
	}
	return nil
}
