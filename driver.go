package picket

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// inputSample is one tick's worth of raw input state. Polling is separated
// from synthesis so the edge-detection and echo rules are testable without a
// window.
type inputSample struct {
	mouseX, mouseY      float64
	left, right, middle bool
	touches             []touchSample
	now                 time.Time // zero means time.Now()
}

type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

// EbitenDriver polls Ebitengine mouse and touch state once per tick and
// synthesizes the document's low-level event stream from the edges it
// detects. Which kinds it emits follows the document's profile:
// ProfilePointer turns everything into pointer events (mouse is pointer 0,
// touches occupy slots 1-9), ProfileMouseTouch keeps mouse and touch as
// separate families.
type EbitenDriver struct {
	// MouseEmulation makes every touch release emit a synthetic
	// MouseDown+MouseUp pair at the touch point, the way legacy hosts
	// translate taps into clicks. Defaults to on for ProfileMouseTouch
	// documents; it has no effect under ProfilePointer.
	MouseEmulation bool

	doc *Document

	mouseDown   bool
	mouseButton Button // captured at press time

	touchIDs  []ebiten.TouchID
	touchUsed [maxPointers]bool
	touchMap  [maxPointers]ebiten.TouchID
	touchDown [maxPointers]bool
	touchX    [maxPointers]float64
	touchY    [maxPointers]float64
}

// NewEbitenDriver creates a driver feeding doc.
func NewEbitenDriver(doc *Document) *EbitenDriver {
	if doc == nil {
		panic("picket: NewEbitenDriver called with nil document")
	}
	return &EbitenDriver{
		doc:            doc,
		MouseEmulation: doc.profile == ProfileMouseTouch,
	}
}

// Update polls the current input state and dispatches the resulting events.
// Call once per Ebitengine tick, before game logic that reacts to them.
func (d *EbitenDriver) Update() {
	d.feed(d.poll())
}

// poll reads the raw Ebitengine input state for this tick.
func (d *EbitenDriver) poll() inputSample {
	mx, my := ebiten.CursorPosition()
	s := inputSample{
		mouseX: float64(mx),
		mouseY: float64(my),
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	for _, tid := range d.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.touches = append(s.touches, touchSample{id: tid, x: float64(tx), y: float64(ty)})
	}
	return s
}

// feed runs edge detection against the previous tick's state and dispatches
// press/release events for every transition.
func (d *EbitenDriver) feed(s inputSample) {
	now := s.now
	if now.IsZero() {
		now = time.Now()
	}
	d.feedMouse(s, now)
	d.feedTouches(s, now)
}

// feedMouse handles the mouse (pointer 0). If a button is already down, the
// button captured at press time is kept until release so the pair matches.
func (d *EbitenDriver) feedMouse(s inputSample, now time.Time) {
	pressed := s.left || s.right || s.middle
	button := d.mouseButton
	if !d.mouseDown {
		if s.left {
			button = ButtonLeft
		} else if s.right {
			button = ButtonRight
		} else {
			button = ButtonMiddle
		}
	}

	if pressed && !d.mouseDown {
		d.mouseDown = true
		d.mouseButton = button
		press, _ := d.doc.pressKind()
		d.doc.inject(press, s.mouseX, s.mouseY, button, 0, now)
	} else if !pressed && d.mouseDown {
		d.mouseDown = false
		_, release := d.doc.pressKind()
		d.doc.inject(release, s.mouseX, s.mouseY, d.mouseButton, 0, now)
	}
}

// feedTouches handles touch contacts (pointers 1-9). A touch ID present this
// tick but absent last tick is a press; an ID that vanishes is a release at
// its last known position.
func (d *EbitenDriver) feedTouches(s inputSample, now time.Time) {
	press, release := d.doc.touchKind()

	var activeSlots [maxPointers]bool
	for _, t := range s.touches {
		slot := d.touchSlot(t.id)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		if !d.touchDown[slot] {
			d.touchDown[slot] = true
			d.doc.inject(press, t.x, t.y, ButtonLeft, slot, now)
		}
		d.touchX[slot] = t.x
		d.touchY[slot] = t.y
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && !activeSlots[i] {
			x, y := d.touchX[i], d.touchY[i]
			if d.touchDown[i] {
				d.doc.inject(release, x, y, ButtonLeft, i, now)
				if d.MouseEmulation && d.doc.profile == ProfileMouseTouch {
					d.doc.inject(MouseDown, x, y, ButtonLeft, 0, now)
					d.doc.inject(MouseUp, x, y, ButtonLeft, 0, now)
				}
			}
			d.touchDown[i] = false
			d.touchUsed[i] = false
			d.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns the
// existing slot or allocates a new one. Returns -1 if all slots are taken.
func (d *EbitenDriver) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && d.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !d.touchUsed[i] {
			d.touchUsed[i] = true
			d.touchMap[i] = tid
			return i
		}
	}
	return -1
}
