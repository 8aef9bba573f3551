package drawer

// Element is anything a Swipable can wrap or an event can originate from.
type Element interface {
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	// Bounds returns the element's layout rectangle in screen coordinates.
	Bounds() Rect
}

// Transformable is implemented by elements that accept a CSS-style
// transform, which is what the default PositionSetter writes.
type Transformable interface {
	SetTransform(css string)
}

// Box is a minimal retained element tree: a named rectangle with children.
// It stands in for the host's DOM when running outside a browser.
type Box struct {
	Name string
	Rect Rect
	// Link marks the box as a navigation link. Clicks inside a link close
	// the drawer.
	Link bool
	// Transform holds the last transform written by a PositionSetter.
	Transform string

	parent   *Box
	children []*Box
}

// NewBox creates a detached box.
func NewBox(name string, r Rect) *Box {
	return &Box{Name: name, Rect: r}
}

// AddChild appends child to b, detaching it from any previous parent.
func (b *Box) AddChild(child *Box) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = b
	b.children = append(b.children, child)
}

// RemoveChild detaches child from b. No-op if child is not a direct child.
func (b *Box) RemoveChild(child *Box) {
	for i, c := range b.children {
		if c == child {
			copy(b.children[i:], b.children[i+1:])
			b.children[len(b.children)-1] = nil
			b.children = b.children[:len(b.children)-1]
			child.parent = nil
			return
		}
	}
}

// Parent returns the box's parent, or nil for a root.
func (b *Box) Parent() *Box { return b.parent }

// Children returns the box's children. The slice must not be modified.
func (b *Box) Children() []*Box { return b.children }

// Bounds implements Element.
func (b *Box) Bounds() Rect { return b.Rect }

// SetTransform implements Transformable.
func (b *Box) SetTransform(css string) { b.Transform = css }

// Contains implements Element by walking other's parent chain.
func (b *Box) Contains(other Element) bool {
	o, ok := other.(*Box)
	if !ok {
		return false
	}
	for n := o; n != nil; n = n.parent {
		if n == b {
			return true
		}
	}
	return false
}

// HitTest returns the deepest box under (x, y), or nil. Later children are
// considered to be on top of earlier ones.
func (b *Box) HitTest(x, y float64) *Box {
	if !b.Rect.Contains(x, y) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := b.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return b
}

// InsideLink reports whether node is a link or has a link ancestor below
// limit. The walk stops at limit without testing it.
func InsideLink(node, limit *Box) bool {
	for n := node; n != nil; n = n.parent {
		if n.Link {
			return true
		}
		if n.parent == nil || n.parent == limit {
			return false
		}
	}
	return false
}
