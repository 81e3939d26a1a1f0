package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/backdrop/backdrop"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/surface"
	"github.com/lixenwraith/backdrop/terminal"
)

// RunTerminal mounts a backdrop on an initialized terminal and drives it until quit or ctx is done
// Layout pixels are one column wide and half a row tall
func RunTerminal(ctx context.Context, term terminal.Terminal, cfg config.Config) error {
	return runTerminal(ctx, term, cfg, engine.RealTimeProvider{})
}

func runTerminal(ctx context.Context, term terminal.Terminal, cfg config.Config, clock engine.TimeProvider) error {
	term.SetMouseMotion(true)
	defer term.SetMouseMotion(false)

	cols, rows := term.Size()
	h := host.New(host.Viewport{
		Width:            cols,
		Height:           rows * constant.CellSamplesY,
		DevicePixelRatio: cfg.DevicePixelRatio,
	}, clock)
	container := newStage(h)

	b, err := backdrop.Mount(h, container, backdrop.Options{
		Seed:        cfg.Seed,
		NewRenderer: surface.TerminalFactory(term),
		Ambience:    newAmbience(cfg),
	})
	if err != nil {
		return fmt.Errorf("terminal surface: %w", err)
	}
	defer b.Dispose()

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	eventChan := make(chan terminal.Event, 256)
	// Input polling blocks on the tty, everything else stays on this goroutine
	go func() {
		for {
			ev := term.PollEvent()
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev.Type {
			case terminal.EventClosed:
				return nil
			case terminal.EventError:
				return fmt.Errorf("terminal: %w", ev.Err)
			case terminal.EventKey:
				if isQuit(ev) {
					log.Printf("app: quit after %d frames", b.Frames())
					return nil
				}
			case terminal.EventResize:
				h.Resize(ev.Width, ev.Height*constant.CellSamplesY, 0)
			case terminal.EventMouse:
				// Cell center in layout pixels
				h.DispatchPointerMove(float64(ev.MouseX)+0.5, float64(ev.MouseY*constant.CellSamplesY)+1)
			}

		case <-frameTicker.C:
			h.Refresh()
		}
	}
}

func isQuit(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return true
	case terminal.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}
