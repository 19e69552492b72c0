package picket

import "time"

// Event is a normalized low-level input event dispatched at the document
// level. Events are values; handlers must not retain pointers into them.
type Event struct {
	Kind     EventKind
	Target   *Node     // topmost node hit, or nil for empty space
	Document *Document // dispatch root the event belongs to
	X, Y     float64   // position in the owning document's coordinates
	Button   Button    // meaningful for pointer/mouse kinds; ButtonLeft for touch
	// PointerID distinguishes concurrent contact points: 0 is the mouse
	// pointer, touch contacts use the id the driver assigned.
	PointerID int
	// Time is when the event occurred. The zero value means "now";
	// receivers that need a clock substitute time.Now().
	Time time.Time
}

// when returns the event time, substituting the wall clock for the zero value.
func (ev Event) when() time.Time {
	if ev.Time.IsZero() {
		return time.Now()
	}
	return ev.Time
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(Event)
}

// listenerRegistry holds document-level listeners indexed by event kind.
type listenerRegistry struct {
	kinds  [numEventKinds][]listener
	nextID uint32
}

// ListenerHandle allows removing a registered document-level listener.
type ListenerHandle struct {
	id   uint32
	reg  *listenerRegistry
	kind EventKind
}

// Remove unregisters this listener so it no longer fires. Removing twice,
// or removing a zero handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.kind, h.id)
}

func (r *listenerRegistry) add(kind EventKind, fn func(Event)) ListenerHandle {
	r.nextID++
	id := r.nextID
	r.kinds[kind] = append(r.kinds[kind], listener{id: id, fn: fn})
	return ListenerHandle{id: id, reg: r, kind: kind}
}

// remove deletes the listener with the given id. The entry is removed from
// the slice to avoid nil iteration waste.
func (r *listenerRegistry) remove(kind EventKind, id uint32) {
	s := r.kinds[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			r.kinds[kind] = s[:len(s)-1]
			return
		}
	}
}

// fire invokes every listener registered for ev.Kind in registration order.
// It iterates a snapshot so listeners may add or remove listeners (including
// themselves) during dispatch; such changes take effect for the next event.
func (r *listenerRegistry) fire(ev Event) {
	live := r.kinds[ev.Kind]
	if len(live) == 0 {
		return
	}
	snapshot := make([]listener, len(live))
	copy(snapshot, live)
	for _, l := range snapshot {
		l.fn(ev)
	}
}
