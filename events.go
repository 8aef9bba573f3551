package drawer

import "fmt"

// EventStore is the interface for optional ECS integration.
// When set on a Swipable, gesture events are forwarded to it.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventDragStart     EventType = iota // horizontal drag committed
	EventDragEnd                        // committed drag released
	EventSwipeLeft                      // release committed a left swipe
	EventSwipeRight                     // release committed a right swipe
	EventTriggerChange                  // would-commit decision changed during a drag
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "dragstart"
	case EventDragEnd:
		return "dragend"
	case EventSwipeLeft:
		return "swipeleft"
	case EventSwipeRight:
		return "swiperight"
	case EventTriggerChange:
		return "triggerchange"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// GestureEvent carries gesture data for the ECS bridge.
type GestureEvent struct {
	Type   EventType
	Offset Measure
	// Trigger is set for EventTriggerChange (nil when the decision cleared)
	// and for swipe events.
	Trigger *Trigger
}
