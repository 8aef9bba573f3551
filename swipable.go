package drawer

import (
	"math"
	"time"
)

const (
	dragThresholdX          = 15.0 // px of horizontal travel that commits a drag
	scrollThresholdY        = 10.0 // px of vertical travel that commits a scroll
	rubberBandingMultiplier = 0.3

	snapBackDuration      = 200 * time.Millisecond
	positionDuration      = 250 * time.Millisecond
	momentumAcceleration  = 1.25
	defaultMomentumWindow = 100 * time.Millisecond
)

// Options configures a Swipable. Start from DefaultOptions; the zero value
// has Enabled false.
type Options struct {
	// Enabled is the master switch. Disabling mid-drag aborts the gesture.
	Enabled bool

	// OnSwipeLeft and OnSwipeRight are called when a release commits a
	// swipe. A nil handler disables swiping in that direction; drags that
	// way are rubber-banded or clamped.
	OnSwipeLeft  func()
	OnSwipeRight func()

	// OnTriggerChange fires whenever the would-commit decision changes
	// during a drag, including a new release speed in the same direction.
	// It receives nil when a release would snap back.
	OnTriggerChange func(*Trigger)

	OnLockScroll   func()
	OnUnlockScroll func()
	OnDragStart    func()
	OnDragEnd      func()

	// OnSetPosition applies each offset. Defaults to TranslateX.
	OnSetPosition PositionSetter
	// OnUpdateOffset is notified of each applied offset.
	OnUpdateOffset func(Measure)
	// Element overrides the element passed to OnSetPosition. Defaults to
	// the wrapped container.
	Element Element

	// Threshold is the minimum offset magnitude needed to commit a swipe.
	Threshold float64
	// RubberBanding selects elastic resistance instead of a hard clamp for
	// drags toward a side with no handler.
	RubberBanding bool

	// Position is the externally controlled resting position.
	Position      Position
	PositionLeft  Measure
	PositionRight Measure

	// PreserveMomentum carries the release velocity into the settle
	// animation when the position changes within MomentumWindow.
	PreserveMomentum bool
	MomentumWindow   time.Duration

	// AllowOutsideDrag lets drags start outside the wrapped container.
	AllowOutsideDrag bool

	// SampleWindow is how many recent samples feed the release speed.
	SampleWindow int
	// FrameRate converts the mean per-sample delta into px/s.
	FrameRate float64
}

// DefaultOptions returns the options a Swipable uses when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		Enabled:          true,
		Position:         PositionCenter,
		PositionLeft:     Percent(-100),
		PositionRight:    Percent(100),
		PreserveMomentum: true,
		MomentumWindow:   defaultMomentumWindow,
		SampleWindow:     defaultSampleWindow,
		FrameRate:        defaultFrameRate,
	}
}

func (o *Options) normalize() {
	if o.OnSetPosition == nil {
		o.OnSetPosition = TranslateX
	}
	if o.MomentumWindow <= 0 {
		o.MomentumWindow = defaultMomentumWindow
	}
	if o.SampleWindow < 2 {
		o.SampleWindow = defaultSampleWindow
	}
	if o.FrameRate <= 0 {
		o.FrameRate = defaultFrameRate
	}
}

// restingOffset maps the options' Position to its offset.
func (o *Options) restingOffset() Measure {
	switch o.Position {
	case PositionLeft:
		return o.PositionLeft
	case PositionRight:
		return o.PositionRight
	default:
		return Px(0)
	}
}

// dragState is the per-gesture state. It is replaced wholesale on every
// pointer down and reset on release.
type dragState struct {
	phase   Phase
	start   Vec2
	history []PointerSample
	trigger *Trigger
}

// Swipable turns pointer input into a horizontal offset for one element.
// It owns no application state: the host supplies the resting Position and
// flips it from the swipe callbacks.
type Swipable struct {
	opts      Options
	container Element
	animator  *Animator
	store     EventStore

	drag        dragState
	wasDragging bool // suppresses the click that follows a drag release

	offset    Measure
	animValue Measure // the field the animator drives
	anim      *Animation

	momentum      float64
	hasMomentum   bool
	momentumUntil time.Time

	mounted  bool
	removers []func()
}

// NewSwipable creates a recognizer for container. A nil animator gets a
// private one driven by the system clock; the host reaches it through
// Animator and calls its Update each frame.
func NewSwipable(container Element, animator *Animator, opts Options) *Swipable {
	opts.normalize()
	if animator == nil {
		animator = NewAnimator(nil)
	}
	return &Swipable{
		opts:      opts,
		container: container,
		animator:  animator,
		offset:    opts.restingOffset(),
	}
}

// SetEventStore forwards gesture events to store. Pass nil to detach.
func (s *Swipable) SetEventStore(store EventStore) {
	s.store = store
}

// Options returns the current options.
func (s *Swipable) Options() Options { return s.opts }

// Animator returns the animator driving snap-backs and position changes.
func (s *Swipable) Animator() *Animator { return s.animator }

// Offset returns the offset most recently applied.
func (s *Swipable) Offset() Measure { return s.offset }

// Phase returns the classification of the current gesture.
func (s *Swipable) Phase() Phase { return s.drag.phase }

// Trigger returns the current would-commit decision, nil if none.
func (s *Swipable) Trigger() *Trigger { return s.drag.trigger }

// Mount subscribes to src and applies the resting offset.
func (s *Swipable) Mount(src EventSource) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.removers = append(s.removers,
		src.AddListener(InputDown, false, s.handleDown),
		src.AddListener(InputMove, false, s.handleMove),
		src.AddListener(InputUp, false, s.handleUp),
		src.AddListener(InputClick, true, s.handleClick),
	)
	s.setOffset(s.offset)
}

// Unmount removes every listener and stops any running animation.
func (s *Swipable) Unmount() {
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.anim.Stop()
	s.mounted = false
	s.drag = dragState{}
}

// Update replaces the options, reacting to the changes the way a prop
// update would: disabling aborts an active gesture and a new resting
// position is animated to.
func (s *Swipable) Update(opts Options) {
	opts.normalize()
	prev := s.opts
	s.opts = opts

	aborted := false
	if prev.Enabled && !opts.Enabled && s.drag.phase != PhaseIdle {
		aborted = s.abort()
	}

	if prev.Position != opts.Position || prev.restingOffset() != opts.restingOffset() || aborted {
		s.updatePosition()
	}
}

// abort drops the active gesture without firing a swipe. Hooks acquired by
// a committed drag are released. It reports whether a drag was committed.
func (s *Swipable) abort() bool {
	wasDrag := s.drag.phase == PhaseDragging
	s.drag = dragState{}
	if wasDrag {
		call(s.opts.OnDragEnd)
		call(s.opts.OnUnlockScroll)
		s.emit(EventDragEnd, nil)
	}
	return wasDrag
}

func (s *Swipable) handleDown(e *InputEvent) {
	if s.drag.phase != PhaseIdle || !s.opts.Enabled {
		return
	}
	if !s.opts.AllowOutsideDrag && (s.container == nil || !s.container.Contains(e.Target)) {
		return
	}
	sample, ok := SampleFromEvent(e)
	if !ok {
		return
	}

	s.anim.Stop()
	s.drag = dragState{
		phase:   PhasePending,
		start:   sample.Pos(),
		history: []PointerSample{sample},
	}
	s.dispatchTrigger(nil)
}

func (s *Swipable) handleMove(e *InputEvent) {
	if s.drag.phase != PhasePending && s.drag.phase != PhaseDragging {
		return
	}
	sample, ok := SampleFromEvent(e)
	if !ok {
		return
	}
	if last := s.drag.history[len(s.drag.history)-1]; sample.Source != last.Source {
		return
	}

	distance := sample.Pos().Sub(s.drag.start)

	if s.drag.phase == PhasePending {
		if math.Abs(distance.X) >= dragThresholdX {
			s.drag.phase = PhaseDragging
			call(s.opts.OnDragStart)
			call(s.opts.OnLockScroll)
			s.emit(EventDragStart, nil)
		} else if math.Abs(distance.Y) >= scrollThresholdY {
			s.drag.phase = PhaseScrolling
		}
		return
	}

	offset := distance.X
	if !s.opts.Enabled ||
		(s.opts.OnSwipeLeft == nil && offset < 0) ||
		(s.opts.OnSwipeRight == nil && offset > 0) {
		offset = s.limit(offset)
	}
	s.setOffset(Px(offset))
	s.drag.history = append(s.drag.history, sample)

	trigger := s.checkTrigger()
	if !sameTrigger(s.drag.trigger, trigger) {
		s.dispatchTrigger(trigger)
	}
	s.drag.trigger = trigger
}

// limit applies rubber banding or stops the drag at the bound.
func (s *Swipable) limit(offset float64) float64 {
	if s.opts.RubberBanding {
		return offset * rubberBandingMultiplier
	}
	return 0
}

func (s *Swipable) handleUp(e *InputEvent) {
	wasDrag := s.drag.phase == PhaseDragging
	var trigger *Trigger
	if wasDrag {
		e.PreventDefault()
		e.StopPropagation()
		trigger = s.checkTrigger()
	}
	s.wasDragging = wasDrag
	// Reset before calling out so hosts that update options from a swipe
	// handler see an idle recognizer.
	s.drag = dragState{}
	if !wasDrag {
		return
	}

	if trigger != nil {
		switch trigger.Direction {
		case DirectionLeft:
			if s.opts.PreserveMomentum {
				s.setMomentum(trigger.Speed, s.opts.PositionLeft)
			}
			s.emit(EventSwipeLeft, trigger)
			call(s.opts.OnSwipeLeft)
		case DirectionRight:
			if s.opts.PreserveMomentum {
				s.setMomentum(trigger.Speed, s.opts.PositionRight)
			}
			s.emit(EventSwipeRight, trigger)
			call(s.opts.OnSwipeRight)
		}
	} else {
		s.animValue = s.offset
		s.anim = s.animator.Animate(Tween{
			Field:    &s.animValue,
			To:       Px(0),
			Duration: snapBackDuration,
			OnUpdate: s.setOffset,
		})
	}

	call(s.opts.OnDragEnd)
	call(s.opts.OnUnlockScroll)
	s.emit(EventDragEnd, nil)
}

// handleClick runs in the capture phase and swallows the click a browser
// fires after releasing a drag.
func (s *Swipable) handleClick(e *InputEvent) {
	if s.wasDragging || s.drag.phase != PhaseIdle {
		e.PreventDefault()
		e.StopPropagation()
	}
	s.wasDragging = false
}

// checkTrigger decides whether releasing now commits a swipe.
func (s *Swipable) checkTrigger() *Trigger {
	if !s.opts.Enabled {
		return nil
	}
	speed := releaseSpeed(s.drag.history, s.opts.SampleWindow, s.opts.FrameRate)
	offset := s.offset.Value

	if s.opts.OnSwipeLeft != nil && speed < 0 && offset < -s.opts.Threshold {
		return &Trigger{Direction: DirectionLeft, Speed: speed}
	}
	if s.opts.OnSwipeRight != nil && speed > 0 && offset > s.opts.Threshold {
		return &Trigger{Direction: DirectionRight, Speed: speed}
	}
	return nil
}

// setMomentum records the release speed for a position change arriving
// within MomentumWindow. Percentage targets get the offset and speed
// converted against the container width.
func (s *Swipable) setMomentum(speed float64, target Measure) {
	if target.Unit == "%" && s.container != nil {
		width := s.container.Bounds().Width
		if converted, ok := s.offset.In(target, width); ok && width > 0 {
			s.offset = converted
			speed = speed / width * 100
		}
	}
	s.momentum = speed
	s.hasMomentum = true
	s.momentumUntil = s.animator.Clock().Now().Add(s.opts.MomentumWindow)
}

// updatePosition animates from the current offset to the resting offset.
func (s *Swipable) updatePosition() {
	target := s.opts.restingOffset()
	useMomentum := s.hasMomentum && s.animator.Clock().Now().Before(s.momentumUntil)
	s.hasMomentum = false

	from := s.offset
	if !target.IsZero() && s.container != nil {
		if converted, ok := from.In(target, s.container.Bounds().Width); ok {
			from = converted
		}
	}
	s.animValue = from

	t := Tween{
		Field:    &s.animValue,
		To:       target,
		OnUpdate: s.setOffset,
	}
	if useMomentum {
		t.Speed = s.momentum
		t.Acceleration = momentumAcceleration
	} else {
		t.Duration = positionDuration
	}
	s.anim = s.animator.Animate(t)
}

func (s *Swipable) setOffset(offset Measure) {
	if s.mounted {
		el := s.opts.Element
		if el == nil {
			el = s.container
		}
		s.opts.OnSetPosition(el, offset)
		if s.opts.OnUpdateOffset != nil {
			s.opts.OnUpdateOffset(offset)
		}
	}
	s.offset = offset
}

func (s *Swipable) dispatchTrigger(t *Trigger) {
	if s.opts.OnTriggerChange != nil {
		s.opts.OnTriggerChange(t)
	}
	s.emit(EventTriggerChange, t)
}

func (s *Swipable) emit(t EventType, trigger *Trigger) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(GestureEvent{Type: t, Offset: s.offset, Trigger: trigger})
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
