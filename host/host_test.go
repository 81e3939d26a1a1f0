package host

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/backdrop/engine"
)

type testNode string

func (n testNode) NodeName() string { return string(n) }

func newTestHost() *Host {
	return New(Viewport{Width: 200, Height: 100, DevicePixelRatio: 3}, engine.NewMockTimeProvider(time.UnixMilli(0)))
}

func TestHostListenerLifecycle(t *testing.T) {
	h := newTestHost()
	var moves, resizes int
	moveID := h.AddEventListener(EventPointerMove, func(Event) { moves++ })
	resizeID := h.AddEventListener(EventResize, func(Event) { resizes++ })

	h.DispatchPointerMove(1, 2)
	h.Resize(300, 150, 0)
	if moves != 1 || resizes != 1 {
		t.Fatalf("moves=%d resizes=%d, want 1 each", moves, resizes)
	}

	if !h.RemoveEventListener(moveID) || !h.RemoveEventListener(resizeID) {
		t.Fatal("remove failed")
	}
	if h.RemoveEventListener(moveID) {
		t.Error("second remove reported success")
	}
	h.DispatchPointerMove(1, 2)
	h.Resize(10, 10, 1)
	if moves != 1 || resizes != 1 || h.ListenerCount() != 0 {
		t.Errorf("removed listeners still fired: moves=%d resizes=%d", moves, resizes)
	}
}

func TestHostResizeUpdatesViewport(t *testing.T) {
	h := newTestHost()
	var got Viewport
	h.AddEventListener(EventResize, func(ev Event) { got = ev.Viewport })

	h.Resize(640, 480, 0)
	if got.Width != 640 || got.Height != 480 || got.DevicePixelRatio != 3 {
		t.Errorf("resize event viewport = %+v", got)
	}
	if h.Viewport() != got {
		t.Errorf("host viewport = %+v, event = %+v", h.Viewport(), got)
	}
}

func TestHostListenerRemovedDuringDispatch(t *testing.T) {
	h := newTestHost()
	calls := 0
	var second ListenerID
	h.AddEventListener(EventPointerMove, func(Event) { h.RemoveEventListener(second) })
	second = h.AddEventListener(EventPointerMove, func(Event) { calls++ })

	h.DispatchPointerMove(0, 0)
	if calls != 0 {
		t.Error("listener removed mid-dispatch still ran")
	}
}

func TestHostRefreshFlushesFrames(t *testing.T) {
	h := newTestHost()
	ran := 0
	h.Frames().RequestFrame(func(time.Time) { ran++ })
	if n := h.Refresh(); n != 1 || ran != 1 {
		t.Errorf("refresh ran %d callbacks", n)
	}
}

func TestViewportAspect(t *testing.T) {
	if a := (Viewport{Width: 200, Height: 100}).Aspect(); a != 2 {
		t.Errorf("aspect = %v", a)
	}
	if a := (Viewport{}).Aspect(); a != 1 {
		t.Errorf("degenerate aspect = %v", a)
	}
}

func TestElementChildren(t *testing.T) {
	e := NewElement("root")
	a, b := testNode("a"), testNode("b")
	e.AppendChild(a)
	e.AppendChild(b)
	e.AppendChild(a)

	kids := e.Children()
	if len(kids) != 2 || kids[0] != b || kids[1] != a {
		t.Fatalf("children = %v, want [b a]", kids)
	}

	if err := e.RemoveChild(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := e.RemoveChild(a); !errors.Is(err, ErrNotChild) {
		t.Errorf("second remove err = %v, want ErrNotChild", err)
	}
	if e.Contains(a) || !e.Contains(b) {
		t.Error("contains mismatch")
	}
}
