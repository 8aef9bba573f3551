package drawer

import "testing"

func TestSampleFromEvent(t *testing.T) {
	s, ok := SampleFromEvent(&InputEvent{HasCoords: true, X: 12, Y: 34, TimeStamp: 5})
	if !ok || s.Source != SourceMouse || s.X != 12 || s.Y != 34 || s.TimeStamp != 5 {
		t.Errorf("mouse sample = %+v, %v", s, ok)
	}

	s, ok = SampleFromEvent(&InputEvent{Touches: []Vec2{{X: 1, Y: 2}, {X: 9, Y: 9}}})
	if !ok || s.Source != SourceTouch || s.Pos() != (Vec2{X: 1, Y: 2}) {
		t.Errorf("touch sample = %+v, %v; want the first touch", s, ok)
	}

	if _, ok := SampleFromEvent(&InputEvent{Kind: InputUp}); ok {
		t.Error("touchend without touches should not yield a sample")
	}
	if _, ok := SampleFromEvent(nil); ok {
		t.Error("nil event should not yield a sample")
	}
}

func TestInputEventFlags(t *testing.T) {
	e := &InputEvent{}
	if e.DefaultPrevented() || e.PropagationStopped() {
		t.Fatal("fresh event should have no flags set")
	}
	e.PreventDefault()
	e.StopPropagation()
	if !e.DefaultPrevented() || !e.PropagationStopped() {
		t.Error("flags not recorded")
	}
}

func TestSameTrigger(t *testing.T) {
	left := &Trigger{Direction: DirectionLeft, Speed: -100}
	fasterLeft := &Trigger{Direction: DirectionLeft, Speed: -900}
	right := &Trigger{Direction: DirectionRight, Speed: 100}

	if !sameTrigger(nil, nil) {
		t.Error("nil and nil should match")
	}
	if sameTrigger(nil, left) || sameTrigger(left, nil) {
		t.Error("nil and a trigger should differ")
	}
	if sameTrigger(left, fasterLeft) {
		t.Error("a new speed should count as a change")
	}
	if !sameTrigger(left, &Trigger{Direction: DirectionLeft, Speed: -100}) {
		t.Error("equal decisions should match")
	}
	if sameTrigger(left, right) {
		t.Error("left and right should differ")
	}
}

func TestParsePosition(t *testing.T) {
	for s, want := range map[string]Position{"": PositionCenter, "center": PositionCenter, "left": PositionLeft, "right": PositionRight} {
		got, err := ParsePosition(s)
		if err != nil || got != want {
			t.Errorf("ParsePosition(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParsePosition("up"); err == nil {
		t.Error("expected error for unknown position")
	}
}
