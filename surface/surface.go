// Package surface provides the render targets a backdrop draws into
package surface

import (
	"errors"
	"math"

	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/render/raster"
	"github.com/lixenwraith/backdrop/scene"
)

// ErrNoTerminal is returned by the terminal factory when no terminal is attached
var ErrNoTerminal = errors.New("no terminal available")

// Renderer is a drawable surface attached under a host element
// Sizes are in layout pixels; the device resolution is size times pixel ratio
type Renderer interface {
	host.Node

	SetSize(width, height int)
	SetPixelRatio(ratio float64)
	Size() (width, height int)
	PixelRatio() float64

	// Render draws one frame of g, no-op after Dispose
	Render(g *scene.Graph)

	// Stats reports the primitives emitted by the last Render
	Stats() raster.Stats

	Dispose()
	Disposed() bool
}

// Factory acquires a renderer for the given viewport
type Factory func(vp host.Viewport) (Renderer, error)

// geometry holds the size state shared by every surface
type geometry struct {
	width  int
	height int
	ratio  float64
}

func (g *geometry) SetSize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
}

func (g *geometry) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	g.ratio = ratio
}

func (g *geometry) Size() (int, int) {
	return g.width, g.height
}

func (g *geometry) PixelRatio() float64 {
	return g.ratio
}

// device returns the backing resolution for the current size and ratio
func (g *geometry) device() (int, int) {
	return int(math.Round(float64(g.width) * g.ratio)), int(math.Round(float64(g.height) * g.ratio))
}
