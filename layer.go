package picket

import "github.com/tanema/gween/ease"

// Layer wraps a region that dismisses itself when the user presses outside
// it: a popup, a dropdown, a context panel. It owns an OutsideDetector wired
// to Dismiss, so the usual lifecycle is just Show, then Update each frame if
// a fade is configured.
type Layer struct {
	// OnDismiss fires after the region is hidden, once per dismissal. It is
	// read at call time, so it can be swapped while the layer is showing.
	OnDismiss func()

	region   *Node
	det      *OutsideDetector
	fadeDur  float32
	fadeEase ease.TweenFunc
	fade     *TweenGroup
	shown    bool
	fading   bool
	disposed bool
}

// NewLayer creates a layer around region. Panics if region is nil or not
// mounted in a document; the region stays as the caller built it until Show.
func NewLayer(region *Node) *Layer {
	if region == nil {
		panic("picket: NewLayer called with nil region")
	}
	if ownerDocument(region) == nil {
		panic("picket: NewLayer called with a region that is not mounted in a document")
	}
	l := &Layer{region: region}
	l.det = NewOutsideDetector(region)
	l.det.OnOutside = func(Event) { l.Dismiss() }
	return l
}

// Region returns the wrapped region node.
func (l *Layer) Region() *Node {
	return l.region
}

// Detector returns the layer's outside detector, for tuning the echo window
// or toggling it directly.
func (l *Layer) Detector() *OutsideDetector {
	return l.det
}

// Shown reports whether the layer is currently showing (fading out counts
// as not shown).
func (l *Layer) Shown() bool {
	return l.shown
}

// SetFade configures a fade-out of the given duration in seconds for
// Dismiss. A nil easing function means linear; zero duration restores
// immediate hiding. Panics on negative durations.
func (l *Layer) SetFade(duration float32, fn ease.TweenFunc) {
	if duration < 0 {
		panic("picket: SetFade called with negative duration")
	}
	l.fadeDur = duration
	l.fadeEase = fn
}

// Show makes the region visible at full alpha and attaches the detector.
// Showing an already-shown layer resets the alpha and cancels a running
// fade. Showing a disposed layer is a no-op.
func (l *Layer) Show() {
	if l.disposed {
		return
	}
	l.fade = nil
	l.fading = false
	l.region.Visible = true
	l.region.Alpha = 1
	l.det.Attach()
	l.shown = true
}

// Dismiss hides the layer. The detector is detached immediately, so no
// further outside notification can arrive, then the region either hides at
// once or fades out over the configured duration. OnDismiss fires after the
// region is hidden. Dismissing a layer that is not showing is a no-op.
func (l *Layer) Dismiss() {
	if l.disposed || !l.shown {
		return
	}
	l.det.Detach()
	l.shown = false

	if l.fadeDur > 0 {
		fn := l.fadeEase
		if fn == nil {
			fn = ease.Linear
		}
		l.fade = TweenAlpha(l.region, 0, l.fadeDur, fn)
		l.fading = true
		return
	}
	l.region.Visible = false
	l.dismissed()
}

// Update steps a running fade by dt seconds. Call once per frame; it is a
// no-op when no fade is running.
func (l *Layer) Update(dt float32) {
	if !l.fading || l.fade == nil {
		return
	}
	l.fade.Update(dt)
	if !l.fade.Done {
		return
	}
	l.fade = nil
	l.fading = false
	l.region.Visible = false
	l.dismissed()
}

func (l *Layer) dismissed() {
	if fn := l.OnDismiss; fn != nil {
		fn()
	}
}

// Dispose detaches the detector and hides the region immediately, without a
// fade and without firing OnDismiss. The region node itself is left to its
// owner. Further calls on the layer are no-ops.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.det.Detach()
	if l.shown || l.fading {
		l.region.Visible = false
	}
	l.fade = nil
	l.fading = false
	l.shown = false
}
