// Package app drives a backdrop on a concrete platform: terminal, desktop window or headless snapshot
package app

import (
	"errors"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/host"
)

// ErrWindowUnavailable is returned by RunWindow in builds without a native window backend
var ErrWindowUnavailable = errors.New("window surface requires cgo (build with CGO_ENABLED=1)")

// containerID names the element every driver mounts into
const containerID = "backdrop"

// newStage creates a host and the container element the backdrop mounts into
func newStage(h *host.Host) *host.Element {
	container := host.NewElement(containerID)
	h.Body().AppendChild(container)
	return container
}

// newAmbience returns nil when ambience is disabled
func newAmbience(cfg config.Config) *audio.Ambience {
	if !cfg.Ambience {
		return nil
	}
	return audio.NewAmbience(nil, cfg.AmbienceVolume)
}
