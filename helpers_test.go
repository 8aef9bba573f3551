package drawer

import (
	"math"
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fixture is a mounted Swipable around a 300px wide panel.
type fixture struct {
	clock *fakeClock
	anim  *Animator
	src   *Dispatcher
	root  *Box
	panel *Box
	sw    *Swipable

	offsets []Measure
}

func newFixture(opts Options) *fixture {
	f := &fixture{clock: newFakeClock()}
	f.anim = NewAnimator(f.clock)
	f.src = NewDispatcher()
	f.root = NewBox("root", Rect{Width: 800, Height: 600})
	f.panel = NewBox("panel", Rect{Width: 300, Height: 600})
	f.root.AddChild(f.panel)

	userUpdate := opts.OnUpdateOffset
	opts.OnUpdateOffset = func(m Measure) {
		f.offsets = append(f.offsets, m)
		if userUpdate != nil {
			userUpdate(m)
		}
	}
	f.sw = NewSwipable(f.panel, f.anim, opts)
	f.sw.Mount(f.src)
	f.offsets = nil
	return f
}

// frame advances the clock by one nominal frame and steps the animator.
func (f *fixture) frame() {
	f.clock.Advance(frameBudget)
	f.anim.Update()
}

// frames runs n frames.
func (f *fixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.frame()
	}
}

// settle runs frames until no animation is running, up to a limit.
func (f *fixture) settle() {
	for i := 0; i < 120 && f.anim.Running() > 0; i++ {
		f.frame()
	}
}

// drag presses at xs[0], moves through the rest 16ms apart and releases
// at the last point. It returns the trailing click event.
func (f *fixture) drag(y float64, xs ...float64) *InputEvent {
	ts := 0.0
	f.src.InjectMouseDown(f.panel, xs[0], y, ts)
	for _, x := range xs[1:] {
		ts += 16
		f.src.InjectMouseMove(f.panel, x, y, ts)
	}
	last := xs[len(xs)-1]
	f.src.InjectMouseUp(f.panel, last, y, ts)
	return f.src.InjectClick(f.panel, last, y, ts)
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
