package host

// EventType names the window-level signals a mounted component can subscribe to
type EventType uint8

const (
	EventPointerMove EventType = iota
	EventResize
)

func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointermove"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event carries the payload of a dispatched signal
// ClientX/ClientY are set for pointer moves, Viewport for both kinds
type Event struct {
	Type     EventType
	ClientX  float64
	ClientY  float64
	Viewport Viewport
}

// Listener handles a dispatched event synchronously on the host goroutine
type Listener func(Event)

// ListenerID identifies a registration, zero is never issued
type ListenerID uint64
