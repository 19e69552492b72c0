package picket

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.Interactable {
		t.Error("Interactable should be true")
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Parent != nil || n.NumChildren() != 0 {
		t.Error("new node should be detached and childless")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewNode("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewNode("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- AddChildAt ---

func TestAddChildAt(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1) // insert between a and c

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtOutOfBoundsPanic(t *testing.T) {
	parent := NewNode("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.AddChildAt(NewNode("c"), 5)
}

// --- RemoveChild / RemoveChildAt / RemoveChildren ---

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveChildAt(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	removed := parent.RemoveChildAt(1)
	if removed != b {
		t.Error("removed should be b")
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Error("remaining children should be [a, c]")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChildren()
	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should be detached")
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("RemoveChildren should not dispose children")
	}
}

func TestRemoveFromParentNoParent(t *testing.T) {
	n := NewNode("loner")
	n.RemoveFromParent() // should not panic
}

// --- SetChildIndex / SetZIndex ---

func TestSetChildIndex(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.SetChildIndex(c, 0)
	if parent.ChildAt(0) != c || parent.ChildAt(1) != a || parent.ChildAt(2) != b {
		t.Error("children order should be [c, a, b]")
	}

	parent.SetChildIndex(c, 2)
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestSetZIndexMarksParentUnsorted(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	sortedChildrenOf(parent) // force a sorted rebuild

	child.SetZIndex(5)
	if parent.childrenSorted {
		t.Error("parent should be marked unsorted after a ZIndex change")
	}
}

// --- Contains ---

func TestContains(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	other := NewNode("other")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if !root.Contains(root) {
		t.Error("node should contain itself")
	}
	if !root.Contains(leaf) {
		t.Error("root should contain leaf")
	}
	if !mid.Contains(leaf) {
		t.Error("mid should contain leaf")
	}
	if leaf.Contains(mid) {
		t.Error("leaf should not contain its ancestor")
	}
	if root.Contains(other) {
		t.Error("root should not contain a detached node")
	}
	if root.Contains(nil) {
		t.Error("nil is never contained")
	}
}

func TestContainsDisposedRegion(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)
	root.Dispose()

	if root.Contains(child) {
		t.Error("disposed node should contain nothing")
	}
}

// --- Composed containment across frames ---

func TestContainsComposedCrossesFrames(t *testing.T) {
	outer := NewDocument()
	inner := NewDocument()

	region := NewNode("region")
	outer.Root().AddChild(region)

	frame := NewFrame("frame", inner)
	region.AddChild(frame)

	embeddedChild := NewNode("embedded-child")
	inner.Root().AddChild(embeddedChild)

	if !containsComposed(region, embeddedChild) {
		t.Error("node inside a frame under the region should count as inside")
	}
	if !containsComposed(region, frame) {
		t.Error("the frame itself should count as inside")
	}

	sibling := NewNode("sibling")
	outer.Root().AddChild(sibling)
	if containsComposed(region, sibling) {
		t.Error("sibling outside the region should not count as inside")
	}
	if containsComposed(region, nil) {
		t.Error("nil node is never inside")
	}
}

func TestContainsComposedRegionInsideFrame(t *testing.T) {
	outer := NewDocument()
	inner := NewDocument()
	frame := NewFrame("frame", inner)
	outer.Root().AddChild(frame)

	region := NewNode("region")
	inner.Root().AddChild(region)
	item := NewNode("item")
	region.AddChild(item)

	if !containsComposed(region, item) {
		t.Error("item under region should be inside")
	}
	// A node in the outer document is not under the region.
	outerNode := NewNode("outer-node")
	outer.Root().AddChild(outerNode)
	if containsComposed(region, outerNode) {
		t.Error("outer-document node should not count as inside")
	}
}

// --- Frames ---

func TestNewFrameNilDocPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil document, got none")
		}
	}()
	NewFrame("frame", nil)
}

func TestNewFrameDoubleEmbedPanic(t *testing.T) {
	doc := NewDocument()
	NewFrame("first", doc)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for double embed, got none")
		}
	}()
	NewFrame("second", doc)
}

func TestFrameEmbedCyclePanic(t *testing.T) {
	outer := NewDocument()
	inner := NewDocument()
	frame := NewFrame("frame", inner)
	outer.Root().AddChild(frame)

	// A frame embedding the outer document mounted inside the inner one
	// would nest the outer document inside itself.
	evil := NewFrame("evil", outer)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for embedding an enclosing document, got none")
		}
	}()
	inner.Root().AddChild(evil)
}

func TestFrameEmbedded(t *testing.T) {
	doc := NewDocument()
	frame := NewFrame("frame", doc)
	if frame.Embedded() != doc {
		t.Error("Embedded should return the hosted document")
	}
	if NewNode("plain").Embedded() != nil {
		t.Error("plain nodes host nothing")
	}
}

// --- Dispose ---

func TestDisposeDetachesAndMarks(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if parent.NumChildren() != 0 {
		t.Error("dispose should detach from parent")
	}
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("dispose should mark the whole subtree")
	}
	if child.OnPress != nil || child.HitShape != nil || child.UserData != nil {
		t.Error("dispose should clear references")
	}
}

func TestDisposeReleasesEmbeddedDocument(t *testing.T) {
	outer := NewDocument()
	inner := NewDocument()
	frame := NewFrame("frame", inner)
	outer.Root().AddChild(frame)

	innerChild := NewNode("inner-child")
	inner.Root().AddChild(innerChild)

	frame.Dispose()

	if inner.Root().IsDisposed() || innerChild.IsDisposed() {
		t.Error("disposing a frame should not dispose the embedded document's nodes")
	}
	// The document can be embedded again.
	frame2 := NewFrame("frame2", inner)
	if frame2.Embedded() != inner {
		t.Error("document should be embeddable after its frame is disposed")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose() // should not panic
}

// --- Owning document ---

func TestNodeDocument(t *testing.T) {
	doc := NewDocument()
	child := NewNode("child")
	leaf := NewNode("leaf")
	doc.Root().AddChild(child)
	child.AddChild(leaf)

	if leaf.Document() != doc {
		t.Error("leaf's owner should be doc")
	}
	if doc.Root().Document() != doc {
		t.Error("root's owner should be doc")
	}
	if NewNode("loose").Document() != nil {
		t.Error("unmounted node has no owner")
	}
}

func TestNodeDocumentEmbedded(t *testing.T) {
	outer := NewDocument()
	inner := NewDocument()
	frame := NewFrame("frame", inner)
	outer.Root().AddChild(frame)
	item := NewNode("item")
	inner.Root().AddChild(item)

	if item.Document() != inner {
		t.Error("embedded content is owned by the embedded document")
	}
	if frame.Document() != outer {
		t.Error("the frame node itself is owned by the outer document")
	}
}
