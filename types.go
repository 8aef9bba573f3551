package drawer

import "fmt"

// Vec2 is a 2D vector used for pointer positions and drag distances.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Position is one of the three resting offsets a Swipable settles to.
type Position uint8

const (
	PositionCenter Position = iota // offset 0
	PositionLeft                   // Options.PositionLeft, -100% by default
	PositionRight                  // Options.PositionRight, 100% by default
)

func (p Position) String() string {
	switch p {
	case PositionCenter:
		return "center"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition converts "center", "left" or "right" into a Position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "center", "":
		return PositionCenter, nil
	case "left":
		return PositionLeft, nil
	case "right":
		return PositionRight, nil
	}
	return PositionCenter, fmt.Errorf("drawer: unknown position %q", s)
}

// Direction is the side a swipe commits toward.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

// Trigger describes what a release would do right now: commit a swipe toward
// Direction with the estimated release Speed in px/s. A nil *Trigger means the
// gesture would snap back.
type Trigger struct {
	Direction Direction
	Speed     float64
}

// sameTrigger reports whether a and b are the same decision, direction and
// speed alike.
func sameTrigger(a, b *Trigger) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Phase is the classification of the active gesture.
type Phase uint8

const (
	PhaseIdle      Phase = iota // no pointer down
	PhasePending                // pointer down, neither threshold crossed yet
	PhaseDragging               // committed to a horizontal drag
	PhaseScrolling              // committed to a vertical scroll, ignored until release
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseDragging:
		return "dragging"
	case PhaseScrolling:
		return "scrolling"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
