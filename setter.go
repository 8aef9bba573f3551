package drawer

// PositionSetter applies an offset to an element. Hosts override it to move
// a different element than the one the Swipable wraps, or to render the
// offset some other way.
type PositionSetter func(el Element, offset Measure)

// TranslateX is the default PositionSetter. It writes a horizontal 3D
// translate to elements implementing Transformable and ignores the rest.
func TranslateX(el Element, offset Measure) {
	if t, ok := el.(Transformable); ok {
		t.SetTransform("translate3d(" + offset.CSS() + ",0,0)")
	}
}
