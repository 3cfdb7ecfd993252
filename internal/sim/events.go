package sim

type EventType int

const (
	EventFootstep      EventType = iota // walk cycle reached a turning point
	EventSkinToggled                    // active skin changed
	EventTuningChanged                  // camera or animation speed adjusted
)

type Event struct {
	Type  EventType
	X, Z  float64 // player position when emitted
	Value float64 // generic payload (e.g. swing value for footsteps)
}

type EventHandler func(Event)

// EventBus dispatches events synchronously on the frame goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
