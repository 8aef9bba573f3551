// Package ecs provides ECS adapters for drawer gesture events.
package ecs

import (
	"github.com/phanxgames/drawer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries drawer gesture events through a Donburi world.
var GestureEventType = events.NewEventType[drawer.GestureEvent]()

// DonburiStore queues gesture events on a world until the next
// ProcessEvents. With a type filter set, other events are dropped before
// they reach the queue.
type DonburiStore struct {
	world donburi.World
	only  map[drawer.EventType]bool
}

// NewDonburiStore creates a store publishing to GestureEventType. Passing
// types restricts it to those kinds; none publishes everything.
func NewDonburiStore(world donburi.World, types ...drawer.EventType) *DonburiStore {
	return &DonburiStore{world: world, only: typeSet(types)}
}

// EmitEvent implements drawer.EventStore.
func (s *DonburiStore) EmitEvent(event drawer.GestureEvent) {
	if s.only != nil && !s.only[event.Type] {
		return
	}
	GestureEventType.Publish(s.world, event)
}

// SubscribeGestures registers fn for the given kinds of gesture event, or
// for all of them when types is empty. fn runs during ProcessEvents.
func SubscribeGestures(world donburi.World, fn func(drawer.GestureEvent), types ...drawer.EventType) {
	only := typeSet(types)
	GestureEventType.Subscribe(world, func(_ donburi.World, e drawer.GestureEvent) {
		if only == nil || only[e.Type] {
			fn(e)
		}
	})
}

func typeSet(types []drawer.EventType) map[drawer.EventType]bool {
	if len(types) == 0 {
		return nil
	}
	set := make(map[drawer.EventType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
