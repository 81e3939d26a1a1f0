package app

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/backdrop/backdrop"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/surface"
)

// snapshotEpoch is the virtual wall clock start, ornament drift depends on it
var snapshotEpoch = time.UnixMilli(1_700_000_000_000)

// RunSnapshot renders cfg.Snapshot.Frames frames headlessly on a virtual clock and writes the last one as PNG
// Returns the written path
func RunSnapshot(cfg config.Config) (string, error) {
	snap := cfg.Snapshot
	clock := engine.NewMockTimeProvider(snapshotEpoch)
	h := host.New(host.Viewport{Width: snap.Width, Height: snap.Height, DevicePixelRatio: 1}, clock)
	container := newStage(h)

	var target *surface.Offscreen
	factory := func(vp host.Viewport) (surface.Renderer, error) {
		o, err := surface.NewOffscreen(vp, surface.OffscreenOptions{Caption: snap.Caption})
		if err != nil {
			return nil, err
		}
		target = o
		return o, nil
	}

	b, err := backdrop.Mount(h, container, backdrop.Options{Seed: cfg.Seed, NewRenderer: factory})
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	defer b.Dispose()

	// Mount rendered the first frame
	interval := cfg.FrameInterval()
	for i := 1; i < snap.Frames; i++ {
		clock.Advance(interval)
		h.Refresh()
	}

	if err := target.SavePNG(snap.Output); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	st := target.Stats()
	log.Printf("app: snapshot %s frames=%d points=%d triangles=%d", snap.Output, b.Frames(), st.Points, st.Triangles)
	return snap.Output, nil
}
