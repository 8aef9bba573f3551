package drawer

import "time"

const (
	overlayOpacity    = 0.5
	overlayTransition = 300 * time.Millisecond
)

// Overlay is the dimming backdrop behind an open drawer. Its opacity fades
// between 0 and 0.5; it only takes clicks while visible.
type Overlay struct {
	animator *Animator
	visible  bool
	opacity  Measure
}

func newOverlay(animator *Animator) *Overlay {
	return &Overlay{animator: animator, opacity: Measure{Unitless: true}}
}

// Visible reports whether the overlay is shown (and accepts clicks).
func (o *Overlay) Visible() bool { return o.visible }

// Opacity returns the current backdrop opacity.
func (o *Overlay) Opacity() float64 { return o.opacity.Value }

func (o *Overlay) setVisible(v bool) {
	if o.visible == v {
		return
	}
	o.visible = v
	to := 0.0
	if v {
		to = overlayOpacity
	}
	o.animator.Animate(Tween{
		Field:    &o.opacity,
		To:       Measure{Value: to, Unitless: true},
		Duration: overlayTransition,
	})
}
