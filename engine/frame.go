package engine

import "time"

// FrameCallback runs once on the next display refresh
type FrameCallback func(now time.Time)

// FrameID identifies a pending frame request, zero is never issued
type FrameID uint64

// FrameScheduler queues callbacks for the next display refresh
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	cb FrameCallback
}

// FrameQueue is a FrameScheduler flushed by the driver on every refresh signal
// Not safe for concurrent use: requests, cancels and flushes happen on the driver goroutine
type FrameQueue struct {
	nextID  FrameID
	pending []frameRequest
	running []frameRequest
	flushes uint64
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, cb: cb})
	return q.nextID
}

// CancelFrame drops a pending request, unknown or already-run ids are ignored
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// Cancelling from inside a flush removes a request queued before the flush began
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].cb = nil
			return
		}
	}
}

// Flush runs every callback queued before the call, callbacks requested during the flush wait for the next one
// Returns the number of callbacks run
func (q *FrameQueue) Flush(now time.Time) int {
	q.running, q.pending = q.pending, q.running[:0]
	q.flushes++

	ran := 0
	for i := range q.running {
		cb := q.running[i].cb
		if cb == nil {
			continue
		}
		q.running[i].cb = nil
		cb(now)
		ran++
	}
	q.running = q.running[:0]
	return ran
}

// Pending returns the number of queued requests
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flushes returns the number of refresh signals processed
func (q *FrameQueue) Flushes() uint64 {
	return q.flushes
}
