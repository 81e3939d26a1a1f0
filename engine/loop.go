package engine

import "time"

// Loop is a self-rescheduling frame driver
// Each tick requests the next frame before running the step, so exactly one request is pending while running
type Loop struct {
	frames  FrameScheduler
	step    func(now time.Time)
	pending FrameID
	started bool
	stopped bool
	ticks   uint64
}

// NewLoop binds a step function to a scheduler
func NewLoop(frames FrameScheduler, step func(now time.Time)) *Loop {
	return &Loop{frames: frames, step: step}
}

// Start runs the first tick synchronously, later ticks follow each refresh
func (l *Loop) Start(now time.Time) {
	if l.started || l.stopped {
		return
	}
	l.started = true
	l.tick(now)
}

// tick is the frame callback, a tick firing after Stop is a no-op
func (l *Loop) tick(now time.Time) {
	if l.stopped {
		return
	}
	l.pending = l.frames.RequestFrame(l.tick)
	l.step(now)
	l.ticks++
}

// Stop revokes rescheduling and cancels the pending request, safe to call repeatedly
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.frames.CancelFrame(l.pending)
	l.pending = 0
}

// Running reports whether the loop is started and not stopped
func (l *Loop) Running() bool {
	return l.started && !l.stopped
}

// Ticks returns the number of completed steps
func (l *Loop) Ticks() uint64 {
	return l.ticks
}
