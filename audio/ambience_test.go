package audio

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"
)

type fakePlayer struct {
	sync.Mutex
	initErr  error
	inits    int
	streamer beep.Streamer
}

func (p *fakePlayer) Init(sr beep.SampleRate, bufferSize int) error {
	p.inits++
	return p.initErr
}

func (p *fakePlayer) Play(s beep.Streamer) {
	p.streamer = s
}

func TestDroneGeneratorRange(t *testing.T) {
	g := NewDroneGenerator(beep.SampleRate(44100))
	samples := make([][2]float64, 4410)
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("stream = %d, %v", n, ok)
	}
	energy := 0.0
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			if math.Abs(samples[i][c]) > 1 {
				t.Fatalf("sample %d out of range: %f", i, samples[i][c])
			}
			energy += samples[i][c] * samples[i][c]
		}
	}
	if energy == 0 {
		t.Error("drone is silent")
	}
	if g.Err() != nil {
		t.Errorf("err = %v", g.Err())
	}
}

func TestAmbienceStartStop(t *testing.T) {
	p := &fakePlayer{}
	a := NewAmbience(p, 0)

	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !a.Playing() || p.inits != 1 {
		t.Fatalf("playing=%v inits=%d", a.Playing(), p.inits)
	}

	buf := make([][2]float64, 256)
	if n, ok := p.streamer.Stream(buf); !ok || n != len(buf) {
		t.Fatalf("playing stream = %d, %v", n, ok)
	}

	a.Stop()
	if _, ok := p.streamer.Stream(buf); ok {
		t.Error("stopped ambience still streams")
	}
}

func TestAmbiencePanFollowsCamera(t *testing.T) {
	p := &fakePlayer{}
	a := NewAmbience(p, 0)

	a.SetPan(0.25)
	if a.Pan() != 0 {
		t.Error("pan moved before start")
	}

	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	tests := []struct {
		cameraX float64
		want    float64
	}{
		{0, 0},
		{0.25, 0.5},
		{-0.5, -1},
		{3, 1},
	}
	for _, tt := range tests {
		a.SetPan(tt.cameraX)
		if got := a.Pan(); got != tt.want {
			t.Errorf("SetPan(%v) pan = %v, want %v", tt.cameraX, got, tt.want)
		}
	}
}

func TestAmbienceDeviceFailure(t *testing.T) {
	p := &fakePlayer{initErr: errors.New("no device")}
	a := NewAmbience(p, 0)
	if err := a.Start(); err == nil {
		t.Fatal("start succeeded without a device")
	}
	if a.Playing() {
		t.Error("playing after failed start")
	}
}

func TestAmbienceDispose(t *testing.T) {
	a := NewAmbience(&fakePlayer{}, -2)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	a.Dispose()
	a.Dispose()
	if !errors.Is(a.Start(), ErrDisposed) {
		t.Error("start after dispose did not fail")
	}
}
