// Package ecs provides ECS adapters for drawer's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// (drag start/end, swipes, trigger changes) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	swipable.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.SubscribeGestures(world, onSwipe, drawer.EventSwipeLeft, drawer.EventSwipeRight)
//	// each tick
//	ecs.GestureEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
