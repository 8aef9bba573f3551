package ecs

import (
	"testing"

	"github.com/phanxgames/drawer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []drawer.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e drawer.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventDragStart, Offset: drawer.Px(0)})
	store.EmitEvent(drawer.GestureEvent{
		Type:    drawer.EventSwipeLeft,
		Offset:  drawer.Px(-90),
		Trigger: &drawer.Trigger{Direction: drawer.DirectionLeft, Speed: -2700},
	})

	// Events are queued until processed.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	if received[0].Type != drawer.EventDragStart {
		t.Errorf("event 0: %+v", received[0])
	}
	e1 := received[1]
	if e1.Type != drawer.EventSwipeLeft || e1.Offset.Value != -90 {
		t.Errorf("event 1: %+v", e1)
	}
	if e1.Trigger == nil || e1.Trigger.Direction != drawer.DirectionLeft {
		t.Errorf("event 1 trigger: %+v", e1.Trigger)
	}
}

func TestDonburiStore_ReceivesSwipableGesture(t *testing.T) {
	world := donburi.NewWorld()

	var types []drawer.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e drawer.GestureEvent) {
		types = append(types, e.Type)
	})

	panel := drawer.NewBox("panel", drawer.Rect{Width: 300, Height: 400})
	opts := drawer.DefaultOptions()
	opts.OnSwipeLeft = func() {}
	sw := drawer.NewSwipable(panel, nil, opts)
	sw.SetEventStore(NewDonburiStore(world))

	src := drawer.NewDispatcher()
	sw.Mount(src)
	src.InjectDrag(panel, drawer.Vec2{X: 200, Y: 100}, drawer.Vec2{X: 50, Y: 100}, 5, 0, 16)

	events.ProcessAllEvents(world)

	want := []drawer.EventType{
		drawer.EventTriggerChange, // cleared on pointer down
		drawer.EventDragStart,
		drawer.EventTriggerChange, // left, -3600 px/s
		drawer.EventTriggerChange, // -2700
		drawer.EventTriggerChange, // -2400
		drawer.EventTriggerChange, // -2250
		drawer.EventSwipeLeft,
		drawer.EventDragEnd,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store drawer.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_TypeFilter(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world, drawer.EventSwipeLeft, drawer.EventSwipeRight)

	var received []drawer.EventType
	SubscribeGestures(world, func(e drawer.GestureEvent) {
		received = append(received, e.Type)
	})

	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventDragStart})
	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventTriggerChange})
	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventSwipeRight})
	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventDragEnd})
	GestureEventType.ProcessEvents(world)

	if len(received) != 1 || received[0] != drawer.EventSwipeRight {
		t.Errorf("received %v, want [swiperight]", received)
	}
}

func TestSubscribeGestures_Filter(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var all, swipes []drawer.EventType
	SubscribeGestures(world, func(e drawer.GestureEvent) {
		all = append(all, e.Type)
	})
	SubscribeGestures(world, func(e drawer.GestureEvent) {
		swipes = append(swipes, e.Type)
	}, drawer.EventSwipeLeft)

	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventDragStart})
	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventSwipeLeft})
	store.EmitEvent(drawer.GestureEvent{Type: drawer.EventDragEnd})
	GestureEventType.ProcessEvents(world)

	if len(all) != 3 {
		t.Errorf("unfiltered subscriber got %v, want 3 events", all)
	}
	if len(swipes) != 1 || swipes[0] != drawer.EventSwipeLeft {
		t.Errorf("filtered subscriber got %v, want [swipeleft]", swipes)
	}
}
