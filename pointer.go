package drawer

// InputSource identifies which kind of device produced a sample.
type InputSource uint8

const (
	SourceMouse InputSource = iota
	SourceTouch
)

func (s InputSource) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// InputKind identifies a raw input event.
type InputKind uint8

const (
	InputDown  InputKind = iota // mousedown / touchstart
	InputMove                   // mousemove / touchmove
	InputUp                     // mouseup / touchend
	InputClick                  // click, delivered after InputUp
)

// InputEvent is a raw pointer event as delivered by an EventSource.
// Mouse-style events set HasCoords and X, Y. Touch events list the touch
// points still in contact; a touchend usually has none.
type InputEvent struct {
	Kind      InputKind
	HasCoords bool
	X, Y      float64
	Touches   []Vec2
	TimeStamp float64 // milliseconds, only meaningful relative to other events
	Target    Element

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault marks the event so the host skips its default action
// (following a link, for example).
func (e *InputEvent) PreventDefault() { e.defaultPrevented = true }

// StopPropagation stops delivery to the remaining listeners.
func (e *InputEvent) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *InputEvent) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether StopPropagation was called.
func (e *InputEvent) PropagationStopped() bool { return e.propagationStopped }

// PointerSample is one normalized pointer position.
type PointerSample struct {
	X, Y      float64
	Source    InputSource
	TimeStamp float64
}

// Pos returns the sample position as a vector.
func (p PointerSample) Pos() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// SampleFromEvent normalizes e into a PointerSample. It reports false when
// the event carries no position, such as a touchend with no remaining touches.
func SampleFromEvent(e *InputEvent) (PointerSample, bool) {
	if e == nil {
		return PointerSample{}, false
	}
	if e.HasCoords {
		return PointerSample{X: e.X, Y: e.Y, Source: SourceMouse, TimeStamp: e.TimeStamp}, true
	}
	if len(e.Touches) > 0 {
		t := e.Touches[0]
		return PointerSample{X: t.X, Y: t.Y, Source: SourceTouch, TimeStamp: e.TimeStamp}, true
	}
	return PointerSample{}, false
}
