package drawer

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	targetFPS         = 60
	frameBudget       = time.Second / targetFPS
	maxTimeMultiplier = 2 // caps the catch-up after a stalled frame

	minMomentumDuration = 40 * time.Millisecond
	maxMomentumDuration = time.Second
)

// Tween describes one animation of a Measure field.
//
// With Duration set the value follows an ease-out curve p*(2-p). With
// Duration zero and Speed non-zero the value starts moving at |Speed| units
// per second and decelerates at a constant rate until it lands on To.
//
// Acceleration scales that deceleration. At 1 the motion just comes to rest
// on To; above 1 (up to 2) it settles sooner and arrives with some speed
// left. The settle time is clamped to [40ms, 1s]; at either bound the
// starting speed gives way so the motion still ends on To without
// overshooting or speeding up.
type Tween struct {
	Field        *Measure
	To           Measure
	Duration     time.Duration
	Speed        float64
	Acceleration float64 // deceleration factor in [1, 2], 1 when zero
	OnUpdate     func(Measure)
}

// Animation is a handle to one in-flight Tween.
type Animation struct {
	field    *Measure
	to       Measure
	tween    *gween.Tween
	onUpdate func(Measure)
	last     time.Time
	started  bool
	stopped  bool
}

// Stop halts the animation at its current value. Calling Stop more than
// once, or after the animation finished, is a no-op.
func (an *Animation) Stop() {
	if an != nil {
		an.stopped = true
	}
}

// IsStopped reports whether the animation was stopped or has finished.
func (an *Animation) IsStopped() bool {
	return an == nil || an.stopped
}

// Field returns the measure this animation writes to.
func (an *Animation) Field() *Measure {
	return an.field
}

// Animator owns every running Animation and advances them once per frame.
// At most one animation drives a given field at a time: starting a new one
// stops the others on the same field.
//
// The Animator is not safe for concurrent use; drive it from the game loop.
type Animator struct {
	clock      Clock
	animations []*Animation
}

// NewAnimator creates an Animator. A nil clock uses SystemClock.
func NewAnimator(clock Clock) *Animator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Animator{clock: clock}
}

// Clock returns the animator's time source.
func (a *Animator) Clock() Clock { return a.clock }

// Running returns the number of animations that are still advancing.
func (a *Animator) Running() int {
	n := 0
	for _, an := range a.animations {
		if !an.stopped {
			n++
		}
	}
	return n
}

// Animate starts t and runs its first frame immediately.
func (a *Animator) Animate(t Tween) *Animation {
	origin := *t.Field
	to := resolveUnit(origin, t.To)

	an := &Animation{
		field:    t.Field,
		to:       to,
		onUpdate: t.OnUpdate,
	}

	for _, other := range a.animations {
		if other.field == t.Field {
			other.Stop()
		}
	}

	duration := t.Duration
	curve := ease.OutQuad
	if duration <= 0 && t.Speed != 0 {
		delta := to.Value - origin.Value
		duration = momentumDuration(delta, t.Speed, t.Acceleration)
		curve = decelerate(momentumSlope(delta, t.Speed, duration))
	}
	if duration <= 0 {
		an.stopped = true
		an.apply(to)
		a.prune()
		return an
	}

	an.tween = gween.New(float32(origin.Value), float32(to.Value), float32(duration.Seconds()), curve)
	a.animations = append(a.animations, an)
	an.step(a.clock.Now())
	a.prune()
	return an
}

// Update advances every running animation by the time elapsed since its
// previous frame.
func (a *Animator) Update() {
	if len(a.animations) == 0 {
		return
	}
	now := a.clock.Now()
	// OnUpdate callbacks may start new animations; iterate a snapshot.
	snapshot := append([]*Animation(nil), a.animations...)
	for _, an := range snapshot {
		an.step(now)
	}
	a.prune()
}

// StopAll stops every running animation.
func (a *Animator) StopAll() {
	for _, an := range a.animations {
		an.Stop()
	}
	a.prune()
}

func (a *Animator) prune() {
	kept := a.animations[:0]
	for _, an := range a.animations {
		if !an.stopped {
			kept = append(kept, an)
		}
	}
	for i := len(kept); i < len(a.animations); i++ {
		a.animations[i] = nil
	}
	a.animations = kept
}

func (an *Animation) step(now time.Time) {
	if an.stopped {
		return
	}
	mult := 1.0
	if an.started {
		mult = float64(now.Sub(an.last)) / float64(frameBudget)
		if mult > maxTimeMultiplier {
			mult = maxTimeMultiplier
		}
		if mult < 0 {
			mult = 0
		}
	}
	an.started = true
	an.last = now

	dt := float32(frameBudget.Seconds() * mult)
	v, done := an.tween.Update(dt)
	value := an.to.With(float64(v))
	if done {
		value = an.to
		an.stopped = true
	}
	an.apply(value)
}

func (an *Animation) apply(v Measure) {
	*an.field = v
	if an.onUpdate != nil {
		an.onUpdate(v)
	}
}

// resolveUnit decides which unit the emitted values carry. A unit-suffixed
// target wins. A zero unitless target is unit-agnostic and keeps the
// origin's unit.
func resolveUnit(origin, to Measure) Measure {
	if to.Unitless && to.IsZero() && !origin.Unitless {
		return origin.With(0)
	}
	return to
}

// momentumDuration returns how long the settle takes: the time a body
// starting at |speed| needs to cover delta with its deceleration scaled by
// accel. With accel 1 that is a full stop, 2d/v0.
func momentumDuration(delta, speed, accel float64) time.Duration {
	accel = clampAccel(accel)
	v0 := math.Abs(speed)
	d := math.Abs(delta)
	if d == 0 {
		return 0
	}
	if v0 == 0 {
		return maxMomentumDuration
	}
	dur := time.Duration(2 * d / (v0 * accel) * float64(time.Second))
	if dur < minMomentumDuration {
		dur = minMomentumDuration
	}
	if dur > maxMomentumDuration {
		dur = maxMomentumDuration
	}
	return dur
}

func clampAccel(accel float64) float64 {
	if accel < 1 {
		return 1
	}
	if accel > 2 {
		return 2
	}
	return accel
}

// momentumSlope returns the starting slope of the normalized curve, the
// release speed relative to the mean speed delta/duration. It is kept in
// [1, 2] so the curve never overshoots nor speeds up.
func momentumSlope(delta, speed float64, duration time.Duration) float64 {
	if delta == 0 || duration <= 0 {
		return 2
	}
	k := math.Abs(speed) * duration.Seconds() / math.Abs(delta)
	return math.Max(1, math.Min(2, k))
}

// decelerate returns a constant-deceleration curve with starting slope k:
// f(u) = k*u - (k-1)*u*u. k = 2 is ease.OutQuad; k = 1 is linear.
func decelerate(k float64) ease.TweenFunc {
	kf := float32(k)
	return func(t, b, c, d float32) float32 {
		u := t / d
		return b + c*(kf*u-(kf-1)*u*u)
	}
}
