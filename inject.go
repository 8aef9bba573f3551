package drawer

// InjectMouseDown dispatches a mousedown at (x, y) originating on target.
func (d *Dispatcher) InjectMouseDown(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputDown, HasCoords: true, X: x, Y: y, TimeStamp: ts, Target: target})
}

// InjectMouseMove dispatches a mousemove at (x, y).
func (d *Dispatcher) InjectMouseMove(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputMove, HasCoords: true, X: x, Y: y, TimeStamp: ts, Target: target})
}

// InjectMouseUp dispatches a mouseup at (x, y).
func (d *Dispatcher) InjectMouseUp(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputUp, HasCoords: true, X: x, Y: y, TimeStamp: ts, Target: target})
}

// InjectTouchStart dispatches a touchstart with a single touch point.
func (d *Dispatcher) InjectTouchStart(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputDown, Touches: []Vec2{{X: x, Y: y}}, TimeStamp: ts, Target: target})
}

// InjectTouchMove dispatches a touchmove with a single touch point.
func (d *Dispatcher) InjectTouchMove(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputMove, Touches: []Vec2{{X: x, Y: y}}, TimeStamp: ts, Target: target})
}

// InjectTouchEnd dispatches a touchend with no remaining touch points.
func (d *Dispatcher) InjectTouchEnd(target Element, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputUp, TimeStamp: ts, Target: target})
}

// InjectClick dispatches a click at (x, y). The returned event reports
// whether a listener suppressed it.
func (d *Dispatcher) InjectClick(target Element, x, y, ts float64) *InputEvent {
	return d.inject(&InputEvent{Kind: InputClick, HasCoords: true, X: x, Y: y, TimeStamp: ts, Target: target})
}

// InjectDrag dispatches a full mouse drag: press at from, moves linearly
// interpolated over steps frames frameMs apart, release at to, then the
// trailing click a browser would fire. It returns the click event.
func (d *Dispatcher) InjectDrag(target Element, from, to Vec2, steps int, t0, frameMs float64) *InputEvent {
	if steps < 1 {
		steps = 1
	}
	d.InjectMouseDown(target, from.X, from.Y, t0)
	ts := t0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		ts = t0 + float64(i)*frameMs
		d.InjectMouseMove(target, from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t, ts)
	}
	d.InjectMouseUp(target, to.X, to.Y, ts)
	return d.InjectClick(target, to.X, to.Y, ts)
}

func (d *Dispatcher) inject(e *InputEvent) *InputEvent {
	d.Dispatch(e)
	return e
}
