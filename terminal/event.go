package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventMouse
	EventError
	EventClosed
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyOther
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError

	// Cell coordinates for EventMouse
	MouseX int
	MouseY int
}

// fromTCell normalizes a tcell event, ok is false for events with no counterpart
func fromTCell(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{Type: EventMouse, MouseX: x, MouseY: y}, true
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune()}, true
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}, true
		case tcell.KeyEnter:
			return Event{Type: EventKey, Key: KeyEnter}, true
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}, true
		default:
			return Event{Type: EventKey, Key: KeyOther}, true
		}
	case *tcell.EventInterrupt:
		// Synthetic events travel as interrupt payloads
		if synth, ok := e.Data().(Event); ok {
			return synth, true
		}
		return Event{}, false
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}, true
	}
	return Event{}, false
}
