package surface

import (
	"errors"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/terminal"
)

func testGraph(aspect float64) *scene.Graph {
	return scene.NewGraph(rand.New(rand.NewSource(7)), aspect)
}

func newSimTerminal(t *testing.T, w, h int) (terminal.Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, sim
}

func TestTerminalFactoryWithoutTerminal(t *testing.T) {
	_, err := TerminalFactory(nil)(host.Viewport{Width: 10, Height: 10, DevicePixelRatio: 1})
	if !errors.Is(err, ErrNoTerminal) {
		t.Fatalf("err = %v, want ErrNoTerminal", err)
	}
}

func TestTerminalRendersHalfBlocks(t *testing.T) {
	term, sim := newSimTerminal(t, 80, 24)
	r, err := NewTerminal(term, host.Viewport{Width: 80, Height: 48, DevicePixelRatio: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	r.Render(testGraph(80.0 / 48.0))
	if r.Stats().Points == 0 {
		t.Fatal("no points plotted")
	}

	blocks := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if ch, _, _, _ := sim.GetContent(x, y); ch == constant.HalfBlockUpper {
				blocks++
			}
		}
	}
	if blocks == 0 {
		t.Error("no half block glyphs on screen")
	}
}

func TestTerminalSizeAndRatio(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 10)
	r, err := NewTerminal(term, host.Viewport{Width: 20, Height: 20, DevicePixelRatio: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r.SetSize(40, 30)
	r.SetPixelRatio(1.5)
	if w, h := r.Size(); w != 40 || h != 30 {
		t.Errorf("size = %dx%d", w, h)
	}
	if r.PixelRatio() != 1.5 {
		t.Errorf("ratio = %v", r.PixelRatio())
	}
	if s := r.samples(); s != 2 {
		t.Errorf("samples = %d, want 2", s)
	}
	r.SetPixelRatio(0)
	if r.PixelRatio() != 1 {
		t.Errorf("non-positive ratio kept as %v", r.PixelRatio())
	}
}

func TestTerminalDisposeStopsRendering(t *testing.T) {
	term, sim := newSimTerminal(t, 40, 12)
	r, _ := NewTerminal(term, host.Viewport{Width: 40, Height: 24, DevicePixelRatio: 1})
	r.Dispose()
	r.Dispose()
	if !r.Disposed() {
		t.Fatal("not disposed")
	}
	r.Render(testGraph(40.0 / 24.0))
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			if ch, _, _, _ := sim.GetContent(x, y); ch == constant.HalfBlockUpper {
				t.Fatalf("disposed surface drew at %d,%d", x, y)
			}
		}
	}
}

func TestOffscreenRenderNotBlack(t *testing.T) {
	o, err := NewOffscreen(host.Viewport{Width: 160, Height: 90, DevicePixelRatio: 2}, OffscreenOptions{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	o.Render(testGraph(160.0 / 90.0))

	img := o.Image()
	if img.Rect.Dx() != 320 || img.Rect.Dy() != 180 {
		t.Fatalf("device size = %v, want 320x180", img.Rect)
	}
	lit := 0
	opacity := constant.LayerOpacity
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
			lit++
		}
		if img.Pix[i+3] > uint8(255*opacity)+1 {
			t.Fatalf("alpha %d exceeds layer opacity", img.Pix[i+3])
		}
	}
	if lit == 0 {
		t.Error("frame is all black")
	}
}

func TestOffscreenSavePNG(t *testing.T) {
	o, err := NewOffscreen(host.Viewport{Width: 64, Height: 48, DevicePixelRatio: 1}, OffscreenOptions{Caption: "backdrop"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := o.SavePNG(path); err == nil {
		t.Error("save before render succeeded")
	}

	o.Render(testGraph(64.0 / 48.0))
	if err := o.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("png size = %v", b)
	}
}

func TestOffscreenResizeReallocates(t *testing.T) {
	o, _ := NewOffscreen(host.Viewport{Width: 10, Height: 10, DevicePixelRatio: 1}, OffscreenOptions{})
	g := testGraph(1)
	o.Render(g)
	o.SetSize(30, 20)
	o.SetPixelRatio(2)
	o.Render(g)
	if w, h := o.Bounds(); w != 60 || h != 40 {
		t.Errorf("bounds = %dx%d, want 60x40", w, h)
	}
	o.Dispose()
	if o.Image() != nil || !o.Disposed() {
		t.Error("dispose kept the image")
	}
}
