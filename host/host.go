package host

import (
	"time"

	"github.com/lixenwraith/backdrop/engine"
)

// Viewport is the visible area in layout pixels and the display's device pixel ratio
type Viewport struct {
	Width            int
	Height           int
	DevicePixelRatio float64
}

// Aspect returns width / height, 1 for a degenerate viewport
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

type registration struct {
	id  ListenerID
	typ EventType
	fn  Listener
}

// Host is the window analog: it owns the viewport, the listener registry, the root element
// and the frame queue flushed once per display refresh
// Not safe for concurrent use: drivers call it from a single goroutine
type Host struct {
	viewport  Viewport
	listeners []registration
	nextID    ListenerID
	frames    *engine.FrameQueue
	clock     engine.TimeProvider
	body      *Element
}

// New creates a host with the given initial viewport and clock
func New(vp Viewport, clock engine.TimeProvider) *Host {
	if clock == nil {
		clock = engine.RealTimeProvider{}
	}
	if vp.DevicePixelRatio <= 0 {
		vp.DevicePixelRatio = 1
	}
	return &Host{
		viewport: vp,
		frames:   engine.NewFrameQueue(),
		clock:    clock,
		body:     NewElement("body"),
	}
}

// Body returns the root element
func (h *Host) Body() *Element {
	return h.body
}

// Viewport returns the current viewport
func (h *Host) Viewport() Viewport {
	return h.viewport
}

// Now reads the host clock
func (h *Host) Now() time.Time {
	return h.clock.Now()
}

// Frames returns the scheduler flushed on every refresh
func (h *Host) Frames() engine.FrameScheduler {
	return h.frames
}

// AddEventListener registers fn for events of type t
func (h *Host) AddEventListener(t EventType, fn Listener) ListenerID {
	h.nextID++
	h.listeners = append(h.listeners, registration{id: h.nextID, typ: t, fn: fn})
	return h.nextID
}

// RemoveEventListener unregisters id, false if it was not registered
func (h *Host) RemoveEventListener(id ListenerID) bool {
	for i, r := range h.listeners {
		if r.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of live registrations
func (h *Host) ListenerCount() int {
	return len(h.listeners)
}

// DispatchPointerMove delivers a pointer move to every pointermove listener
func (h *Host) DispatchPointerMove(clientX, clientY float64) {
	h.dispatch(Event{Type: EventPointerMove, ClientX: clientX, ClientY: clientY, Viewport: h.viewport})
}

// Resize updates the viewport and notifies resize listeners, a non-positive ratio keeps the current one
func (h *Host) Resize(width, height int, dpr float64) {
	if dpr <= 0 {
		dpr = h.viewport.DevicePixelRatio
	}
	h.viewport = Viewport{Width: width, Height: height, DevicePixelRatio: dpr}
	h.dispatch(Event{Type: EventResize, Viewport: h.viewport})
}

// Refresh signals one display refresh, flushing pending frame callbacks
func (h *Host) Refresh() int {
	return h.frames.Flush(h.clock.Now())
}

func (h *Host) dispatch(ev Event) {
	// Snapshot so listeners may unregister during dispatch
	regs := append([]registration(nil), h.listeners...)
	for _, r := range regs {
		if r.typ == ev.Type && h.registered(r.id) {
			r.fn(ev)
		}
	}
}

func (h *Host) registered(id ListenerID) bool {
	for _, r := range h.listeners {
		if r.id == id {
			return true
		}
	}
	return false
}
