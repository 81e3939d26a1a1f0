package engine

import (
	"sync"
	"testing"
	"time"
)

func TestRealTimeProviderMonotonic(t *testing.T) {
	var provider TimeProvider = RealTimeProvider{}

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("expected at least 10ms between readings, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("initial time = %v, want %v", now, start)
	}

	jump := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(jump)
	if now := mock.Now(); !now.Equal(jump) {
		t.Errorf("after SetTime = %v, want %v", now, jump)
	}

	// One 60 Hz second of frames
	for i := 0; i < 60; i++ {
		mock.Advance(time.Second / 60)
	}
	want := jump.Add(60 * (time.Second / 60))
	if now := mock.Now(); !now.Equal(want) {
		t.Errorf("after frames = %v, want %v", now, want)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.UnixMilli(0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().UnixMilli(); got != 800 {
		t.Errorf("time after concurrent advances = %dms, want 800", got)
	}
}
