package terminal

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides cell-level terminal access
type Terminal interface {
	// Init enters the alternate screen and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear blanks the screen
	Clear()

	// PollEvent blocks until next input event, EventClosed after Fini
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// SetMouseMotion enables or disables pointer motion reporting
	SetMouseMotion(enabled bool)
}

// tcellTerm implements Terminal over a tcell screen
type tcellTerm struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal backed by the process tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return &tcellTerm{screen: s}, nil
}

// NewWithScreen wraps an existing screen, typically a tcell.SimulationScreen
func NewWithScreen(s tcell.Screen) Terminal {
	return &tcellTerm{screen: s}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	if len(cells) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, c.style())
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) Clear() {
	t.screen.Clear()
	t.screen.Show()
}

func (t *tcellTerm) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := fromTCell(ev); ok {
			return out
		}
	}
}

func (t *tcellTerm) PostEvent(ev Event) {
	// Queue full drops the event, matching a lossy wakeup
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(ev)); err != nil {
		log.Printf("terminal: dropped event type %d: %v", ev.Type, err)
	}
}

func (t *tcellTerm) SetMouseMotion(enabled bool) {
	if enabled {
		t.screen.EnableMouse(tcell.MouseMotionEvents)
		return
	}
	t.screen.DisableMouse()
}
