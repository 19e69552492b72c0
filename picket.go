package picket

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EventFamily identifies which input event family an event belongs to.
// A platform exposes either the unified pointer family or the legacy
// mouse and touch pair, never a mix (see InputProfile).
type EventFamily uint8

const (
	FamilyPointer EventFamily = iota // unified pointer events (mouse, touch, pen behind one API)
	FamilyMouse                      // legacy mouse events
	FamilyTouch                      // legacy touch events
)

// String returns a human-readable family name.
func (f EventFamily) String() string {
	switch f {
	case FamilyPointer:
		return "pointer"
	case FamilyMouse:
		return "mouse"
	case FamilyTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// EventKind identifies a kind of low-level input event dispatched at the
// document level.
type EventKind uint8

const (
	PointerDown EventKind = iota // pointer family press
	PointerUp                    // pointer family release
	MouseDown                    // mouse family press
	MouseUp                      // mouse family release
	TouchStart                   // touch family press
	TouchEnd                     // touch family release
)

// numEventKinds sizes kind-indexed listener tables.
const numEventKinds = 6

// Family returns the event family this kind belongs to.
func (k EventKind) Family() EventFamily {
	switch k {
	case PointerDown, PointerUp:
		return FamilyPointer
	case MouseDown, MouseUp:
		return FamilyMouse
	default:
		return FamilyTouch
	}
}

// IsPress reports whether this kind begins a gesture.
func (k EventKind) IsPress() bool {
	return k == PointerDown || k == MouseDown || k == TouchStart
}

// IsRelease reports whether this kind ends a gesture.
func (k EventKind) IsRelease() bool {
	return k == PointerUp || k == MouseUp || k == TouchEnd
}

// String returns the conventional lowercase event name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case TouchStart:
		return "touchstart"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Button identifies a pointer or mouse button. ButtonLeft is the primary
// button; touch events carry ButtonLeft since touch has no button concept.
type Button uint8

const (
	ButtonLeft   Button = iota // primary (left) mouse button
	ButtonRight                // secondary (right) mouse button
	ButtonMiddle               // middle mouse button (scroll wheel click)
)

// String returns a human-readable button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// InputProfile describes the input capability of the host platform: either
// unified pointer events are available, or the legacy mouse/touch pair is
// delivered instead. The profile decides which event kinds a document's
// drivers synthesize and which kinds an OutsideDetector subscribes to.
// Profiles are mutually exclusive; a document never mixes families per event.
type InputProfile uint8

const (
	ProfilePointer    InputProfile = iota // unified pointer events (default)
	ProfileMouseTouch                     // separate mouse and touch streams, with synthetic mouse echoes after touch
)

// String returns a human-readable profile name.
func (p InputProfile) String() string {
	switch p {
	case ProfilePointer:
		return "pointer"
	case ProfileMouseTouch:
		return "mouse+touch"
	default:
		return "unknown"
	}
}
