package surface

import (
	"fmt"
	"math"

	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/render/raster"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/terminal"
)

// Terminal renders into terminal cells using upper half blocks, two vertical samples per cell
// Layout size is columns by rows*2; each layout pixel is supersampled by the rounded pixel ratio
// and max-filtered back down so sub-cell points stay visible
type Terminal struct {
	geometry
	term   terminal.Terminal
	pixels *render.PixelBuffer
	cells  *render.RenderBuffer
	raster *raster.Rasterizer
	stats  raster.Stats

	disposed bool
}

// NewTerminal creates a surface drawing to term, sized to the viewport
func NewTerminal(term terminal.Terminal, vp host.Viewport) (*Terminal, error) {
	if term == nil {
		return nil, fmt.Errorf("terminal surface: %w", ErrNoTerminal)
	}
	t := &Terminal{
		term:   term,
		pixels: render.NewPixelBuffer(0, 0),
		cells:  render.NewRenderBuffer(0, 0),
		raster: raster.New(),
	}
	t.SetSize(vp.Width, vp.Height)
	t.SetPixelRatio(vp.DevicePixelRatio)
	return t, nil
}

// TerminalFactory returns a Factory bound to term
func TerminalFactory(term terminal.Terminal) Factory {
	return func(vp host.Viewport) (Renderer, error) {
		return NewTerminal(term, vp)
	}
}

func (t *Terminal) NodeName() string {
	return "terminal-surface"
}

// samples is the supersampling factor per layout pixel
func (t *Terminal) samples() int {
	return max(1, int(math.Round(t.ratio)))
}

func (t *Terminal) Render(g *scene.Graph) {
	if t.disposed {
		return
	}
	s := t.samples()
	cols, rows := t.width, t.height/constant.CellSamplesY
	if pw, ph := t.pixels.Bounds(); pw != cols*s || ph != rows*constant.CellSamplesY*s {
		t.pixels.Resize(cols*s, rows*constant.CellSamplesY*s)
	}
	if cw, ch := t.cells.Bounds(); cw != cols || ch != rows {
		t.cells.Resize(cols, rows)
	}

	t.stats = t.raster.Draw(g, t.pixels)
	t.pixels.ResolveHalfBlocks(t.cells, s, constant.LayerOpacity)
	t.cells.FlushToTerminal(t.term)
}

func (t *Terminal) Stats() raster.Stats {
	return t.stats
}

// Dispose drops the sample buffers and blanks the screen; the terminal itself stays owned by the caller
func (t *Terminal) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.pixels = render.NewPixelBuffer(0, 0)
	t.cells = render.NewRenderBuffer(0, 0)
	t.term.Clear()
}

func (t *Terminal) Disposed() bool {
	return t.disposed
}
