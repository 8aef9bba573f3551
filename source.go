package drawer

// EventSource delivers raw input events to global listeners. Listeners see
// every event of their kind regardless of where it originated, so a drag
// keeps tracking after the pointer leaves the element that started it.
type EventSource interface {
	// AddListener registers fn for events of the given kind. Capture
	// listeners run before all non-capture listeners. The returned function
	// unregisters fn.
	AddListener(kind InputKind, capture bool, fn func(*InputEvent)) (remove func())
}

type listener struct {
	id      uint32
	capture bool
	fn      func(*InputEvent)
}

// Dispatcher is an in-process EventSource. Platform adapters and tests feed
// it events through Dispatch or the Inject helpers.
type Dispatcher struct {
	listeners [4][]listener // indexed by InputKind
	nextID    uint32
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener implements EventSource.
func (d *Dispatcher) AddListener(kind InputKind, capture bool, fn func(*InputEvent)) func() {
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, capture: capture, fn: fn})
	return func() { d.removeListener(kind, id) }
}

// removeListener drops the entry from the slice to avoid nil iteration waste.
func (d *Dispatcher) removeListener(kind InputKind, id uint32) {
	s := d.listeners[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			d.listeners[kind] = s[:len(s)-1]
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for kind.
func (d *Dispatcher) ListenerCount(kind InputKind) int {
	return len(d.listeners[kind])
}

// Dispatch delivers e to capture listeners, then to the rest, stopping early
// if a listener calls StopPropagation.
func (d *Dispatcher) Dispatch(e *InputEvent) {
	// Listeners may unregister themselves; iterate a snapshot.
	ls := append([]listener(nil), d.listeners[e.Kind]...)
	for _, phase := range [2]bool{true, false} {
		for _, l := range ls {
			if l.capture != phase {
				continue
			}
			l.fn(e)
			if e.PropagationStopped() {
				return
			}
		}
	}
}
