// Package audio plays the optional ambient drone that follows the camera
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/backdrop/vmath"
)

const (
	sampleRate = beep.SampleRate(48000)

	// speakerBuffer trades latency for underrun safety
	speakerBuffer = 100 * time.Millisecond

	// panScale maps camera x, which eases within [-0.5, 0.5], to the full stereo field
	panScale = 2.0
)

// ErrDisposed is returned when starting an ambience after Dispose
var ErrDisposed = errors.New("ambience disposed")

// Player is the audio device boundary
type Player interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// speakerPlayer plays through the process-wide beep speaker, initialized at most once
type speakerPlayer struct{}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func (speakerPlayer) Init(sr beep.SampleRate, bufferSize int) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sr, bufferSize)
	})
	return speakerErr
}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerPlayer) Lock()                { speaker.Lock() }
func (speakerPlayer) Unlock()              { speaker.Unlock() }

// Ambience is a looping drone routed through volume and pan stages
type Ambience struct {
	mu       sync.Mutex
	player   Player
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	pan      *effects.Pan
	playing  bool
	disposed bool
}

// NewAmbience creates a stopped ambience; volume is a dB-like offset on base 2
// A nil player uses the system speaker
func NewAmbience(player Player, volume float64) *Ambience {
	if player == nil {
		player = speakerPlayer{}
	}
	a := &Ambience{player: player}
	a.pan = &effects.Pan{Streamer: NewDroneGenerator(sampleRate)}
	a.volume = &effects.Volume{Streamer: a.pan, Base: 2, Volume: volume}
	a.ctrl = &beep.Ctrl{Streamer: a.volume, Paused: false}
	return a
}

// Start opens the device on first use and begins playback
func (a *Ambience) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.disposed {
		return ErrDisposed
	}
	if a.playing {
		return nil
	}
	if err := a.player.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}

	a.player.Lock()
	a.ctrl.Streamer = a.volume
	a.ctrl.Paused = false
	a.player.Unlock()

	a.player.Play(a.ctrl)
	a.playing = true
	return nil
}

// SetPan follows camera x, clamped to the stereo field
func (a *Ambience) SetPan(cameraX float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.playing {
		return
	}
	a.player.Lock()
	a.pan.Pan = vmath.Clamp(cameraX*panScale, -1, 1)
	a.player.Unlock()
}

// Pan returns the current stereo position
func (a *Ambience) Pan() float64 {
	a.player.Lock()
	defer a.player.Unlock()
	return a.pan.Pan
}

// Playing reports whether the drone is routed to the device
func (a *Ambience) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// Stop detaches the drone; the speaker drops a ctrl whose streamer is nil
func (a *Ambience) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.playing {
		return
	}
	a.player.Lock()
	a.ctrl.Streamer = nil
	a.player.Unlock()
	a.playing = false
}

// Dispose stops playback permanently
func (a *Ambience) Dispose() {
	a.Stop()
	a.mu.Lock()
	a.disposed = true
	a.mu.Unlock()
}
