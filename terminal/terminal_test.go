package terminal

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 8)
	cells[5] = Cell{Rune: 'x', Fg: RGB{255, 0, 0}, Bg: RGB{0, 0, 255}}
	term.Flush(cells, 4, 2)

	r, _, style, _ := screen.GetContent(1, 1)
	if r != 'x' {
		t.Fatalf("rune at (1,1) = %q, want 'x'", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("fg = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("bg = %v, want blue", bg)
	}

	// Zero runes render as blanks
	r, _, _, _ = screen.GetContent(0, 0)
	if r != ' ' {
		t.Errorf("rune at (0,0) = %q, want space", r)
	}
}

func TestFlushIgnoresShortBuffer(t *testing.T) {
	term, _ := newSimTerminal(t, 4, 2)
	// Must not panic
	term.Flush(make([]Cell, 3), 4, 2)
}

func TestPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)

	term.PostEvent(Event{Type: EventMouse, MouseX: 3, MouseY: 4})
	ev := term.PollEvent()
	// Init may queue a resize first
	for ev.Type == EventResize {
		ev = term.PollEvent()
	}
	if ev.Type != EventMouse || ev.MouseX != 3 || ev.MouseY != 4 {
		t.Errorf("got %+v, want mouse at (3,4)", ev)
	}
}

func TestFiniIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t, 2, 2)
	term.Fini()
	term.Fini()
}

func TestFromTCell(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"Resize", tcell.NewEventResize(80, 24), Event{Type: EventResize, Width: 80, Height: 24}},
		{"Mouse", tcell.NewEventMouse(7, 9, tcell.ButtonNone, tcell.ModNone), Event{Type: EventMouse, MouseX: 7, MouseY: 9}},
		{"Synthetic", tcell.NewEventInterrupt(Event{Type: EventKey, Key: KeyRune, Rune: 'q'}), Event{Type: EventKey, Key: KeyRune, Rune: 'q'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fromTCell(tt.ev)
			if !ok {
				t.Fatal("expected event to map")
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPostEventFullQueueLogsDrop(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(io.Discard)

	for i := 0; i < 20; i++ {
		term.PostEvent(Event{Type: EventMouse, MouseX: i})
	}
	if !strings.Contains(buf.String(), "dropped") {
		t.Errorf("full queue did not log a drop: %q", buf.String())
	}
}
