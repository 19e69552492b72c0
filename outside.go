package picket

import "time"

// defaultEchoWindow is how long after a touch release a synthetic mouse echo
// is expected. 350ms covers the emulation delay observed on legacy hosts; it
// is a heuristic, not a platform guarantee. Adjust with SetEchoWindow.
const defaultEchoWindow = 350 * time.Millisecond

// gestureState tracks the single in-flight gesture of a detector.
type gestureState uint8

const (
	gestureIdle           gestureState = iota // no gesture in flight
	gesturePressedInside                      // press landed inside the region
	gesturePressedOutside                     // press landed outside the region
)

func (g gestureState) String() string {
	switch g {
	case gestureIdle:
		return "idle"
	case gesturePressedInside:
		return "pressedInside"
	case gesturePressedOutside:
		return "pressedOutside"
	default:
		return "unknown"
	}
}

// OutsideDetector watches a document's event stream and invokes OnOutside
// exactly once when a complete press-then-release gesture began outside the
// region: a press on the region node or any of its descendants (crossing
// frame boundaries) counts as inside, everything else as outside. The call
// happens synchronously at release time with the release event. Gestures
// that start inside never fire, no matter where they end; releases with no
// tracked press never fire.
//
// A detector subscribes to the region's document and to every document
// embedded by frames within it, so interactions inside nested sub-documents
// are seen too. The subscription list is evaluated once per Attach; frames
// added or removed afterwards require a re-attach.
//
// At most one gesture is tracked at a time. A second press before a release
// overwrites the tracked state; the deciding press is always the most
// recent one.
type OutsideDetector struct {
	// OnOutside is the notification callback. It is read at fire time, so
	// swapping it mid-gesture takes effect for that gesture's release. A nil
	// callback drops the notification.
	OnOutside func(Event)

	region  *Node
	enabled bool
	active  bool // listeners currently installed

	state        gestureState
	echoWindow   time.Duration
	lastTouchEnd time.Time // zero means no echo marker

	handles []ListenerHandle
}

// NewOutsideDetector creates a detector for the given region. The detector
// starts enabled but does not observe events until Attach is called.
func NewOutsideDetector(region *Node) *OutsideDetector {
	if region == nil {
		panic("picket: NewOutsideDetector called with nil region")
	}
	return &OutsideDetector{
		region:     region,
		enabled:    true,
		echoWindow: defaultEchoWindow,
	}
}

// Region returns the region the detector watches.
func (det *OutsideDetector) Region() *Node {
	return det.region
}

// Enabled reports whether the detector is enabled.
func (det *OutsideDetector) Enabled() bool {
	return det.enabled
}

// SetEchoWindow adjusts how long after a touch release synthetic mouse
// events are suppressed. Zero disables suppression entirely. Negative
// durations panic.
func (det *OutsideDetector) SetEchoWindow(d time.Duration) {
	if d < 0 {
		panic("picket: SetEchoWindow called with negative duration")
	}
	det.echoWindow = d
}

// Attach subscribes the detector to the region's document and every document
// embedded within it. Attaching twice is a no-op. Panics if the region is
// not mounted in a document. A disabled detector remembers the attach and
// installs its listeners when re-enabled.
func (det *OutsideDetector) Attach() {
	if det.active {
		return
	}
	doc := ownerDocument(det.region)
	if doc == nil {
		panic("picket: Attach called on a detector whose region is not mounted in a document")
	}
	det.active = true
	if det.enabled {
		det.subscribe(doc)
	}
}

// Detach removes every subscription and discards any in-flight gesture.
// Safe to call mid-gesture and idempotent. The detector can be re-attached.
func (det *OutsideDetector) Detach() {
	det.active = false
	det.unsubscribe()
}

// SetEnabled toggles the detector. Disabling removes the listeners and
// discards the in-flight gesture; re-enabling starts fresh with no replay of
// events seen while disabled.
func (det *OutsideDetector) SetEnabled(enabled bool) {
	if det.enabled == enabled {
		return
	}
	det.enabled = enabled
	if !det.active {
		return
	}
	if enabled {
		if doc := ownerDocument(det.region); doc != nil {
			det.subscribe(doc)
		}
	} else {
		det.unsubscribe()
	}
}

// subscribe installs listeners at every dispatch root reachable from doc.
// The event kinds are chosen once from the region document's profile:
// pointer-capable documents deliver pointer events only, mouse/touch
// documents deliver both of those families.
func (det *OutsideDetector) subscribe(doc *Document) {
	var kinds []EventKind
	if doc.profile == ProfileMouseTouch {
		kinds = []EventKind{MouseDown, MouseUp, TouchStart, TouchEnd}
	} else {
		kinds = []EventKind{PointerDown, PointerUp}
	}
	roots := Documents(doc)
	for _, root := range roots {
		for _, kind := range kinds {
			det.handles = append(det.handles, root.On(kind, det.handle))
		}
	}
	debugLog("detector attached to %d document(s), region=%q", len(roots), det.region.Name)
}

// unsubscribe removes all listeners and resets gesture and echo state.
func (det *OutsideDetector) unsubscribe() {
	for _, h := range det.handles {
		h.Remove()
	}
	det.handles = nil
	det.state = gestureIdle
	det.lastTouchEnd = time.Time{}
}

// handle is the single listener installed for every subscribed kind.
// Listener removal takes effect on the next event, so a detector torn down
// during dispatch guards here instead.
func (det *OutsideDetector) handle(ev Event) {
	if !det.active || !det.enabled {
		return
	}
	switch {
	case ev.Kind.IsPress():
		det.handlePress(ev)
	case ev.Kind.IsRelease():
		det.handleRelease(ev)
	}
}

// handlePress records where a qualifying press landed relative to the
// region. Presses never notify.
func (det *OutsideDetector) handlePress(ev Event) {
	if ev.Kind.Family() != FamilyTouch && ev.Button != ButtonLeft {
		return
	}
	if det.swallowEcho(ev) {
		return
	}
	if containsComposed(det.region, ev.Target) {
		det.state = gesturePressedInside
	} else {
		det.state = gesturePressedOutside
	}
	debugLog("press %s at (%.0f, %.0f) -> %s", ev.Kind, ev.X, ev.Y, det.state)
}

// handleRelease completes the in-flight gesture. The notification fires only
// when the tracked press was outside; the state is cleared either way. A
// release with no tracked press is ignored.
func (det *OutsideDetector) handleRelease(ev Event) {
	if ev.Kind.Family() != FamilyTouch && ev.Button != ButtonLeft {
		return
	}
	if ev.Kind == TouchEnd {
		det.lastTouchEnd = ev.when()
	} else if det.swallowEcho(ev) {
		return
	}
	state := det.state
	det.state = gestureIdle
	if state != gesturePressedOutside {
		return
	}
	debugLog("outside gesture completed by %s at (%.0f, %.0f)", ev.Kind, ev.X, ev.Y)
	if fn := det.OnOutside; fn != nil {
		fn(ev)
	}
}

// swallowEcho reports whether ev is a synthetic mouse echo of a recent touch
// release and must be dropped without touching gesture state. The echo
// marker is stamped by TouchEnd and cleared by the echoed MouseUp or by
// window expiry. A zero window admits everything, even echoes stamped with
// the touch end's own timestamp. Negative elapsed time (clock skew) expires
// the marker.
func (det *OutsideDetector) swallowEcho(ev Event) bool {
	if det.echoWindow == 0 {
		return false
	}
	if ev.Kind.Family() != FamilyMouse || det.lastTouchEnd.IsZero() {
		return false
	}
	elapsed := ev.when().Sub(det.lastTouchEnd)
	if elapsed < 0 || elapsed > det.echoWindow {
		det.lastTouchEnd = time.Time{}
		return false
	}
	if ev.Kind == MouseUp {
		det.lastTouchEnd = time.Time{}
	}
	debugLog("swallowed synthetic %s echo (%.0fms after touch end)", ev.Kind, float64(elapsed)/float64(time.Millisecond))
	return true
}
