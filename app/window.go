//go:build cgo

package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/backdrop/backdrop"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/surface"
)

const (
	windowTitle  = "backdrop"
	windowWidth  = 1280
	windowHeight = 720
)

// RunWindow opens a desktop window showing the backdrop, blocks until it closes
func RunWindow(cfg config.Config) error {
	h := host.New(host.Viewport{Width: windowWidth, Height: windowHeight, DevicePixelRatio: 1}, engine.RealTimeProvider{})
	container := newStage(h)

	var target *surface.Offscreen
	factory := func(vp host.Viewport) (surface.Renderer, error) {
		o, err := surface.NewOffscreen(vp, surface.OffscreenOptions{})
		if err != nil {
			return nil, err
		}
		target = o
		return o, nil
	}

	b, err := backdrop.Mount(h, container, backdrop.Options{
		Seed:        cfg.Seed,
		NewRenderer: factory,
		Ambience:    newAmbience(cfg),
	})
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	defer b.Dispose()

	g := &windowGame{host: h, surface: target, width: windowWidth, height: windowHeight}
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	log.Printf("app: window closed after %d frames", b.Frames())
	return err
}

// windowGame adapts the host to ebiten: Layout drives resize, the cursor drives pointer moves,
// and each Update is one display refresh
type windowGame struct {
	host    *host.Host
	surface *surface.Offscreen
	frame   *ebiten.Image

	width, height int
	scale         float64

	cursorSeen bool
	cursorX    int
	cursorY    int
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorSeen {
		g.cursorSeen = true
		g.cursorX, g.cursorY = x, y
	} else if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.host.DispatchPointerMove(float64(x), float64(y))
	}

	g.host.Refresh()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	img := g.surface.Image()
	if img == nil {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(img.Pix)

	sb := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(w), float64(sb.Dy())/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, op)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		g.host.Resize(outsideWidth, outsideHeight, scale)
	}
	return outsideWidth, outsideHeight
}
