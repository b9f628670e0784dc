// Package frame drives a simulation one animation frame at a time.
// The host supplies a Scheduler (its notion of "next frame"); the Driver
// turns successive frame timestamps into clamped delta-times.
package frame

import "time"

// Handle identifies a pending frame request. The zero Handle is never issued.
type Handle uint64

// Callback receives the frame timestamp, measured from an arbitrary origin
// that is fixed for the lifetime of the scheduler.
type Callback func(ts time.Duration)

// Scheduler requests and cancels animation frames.
type Scheduler interface {
	RequestFrame(fn Callback) Handle
	CancelFrame(h Handle)
}

// Queue is a Scheduler that holds at most one pending callback and runs it
// when the host calls Fire. Hosts call Fire from their own tick source;
// tests call it directly with synthetic timestamps.
type Queue struct {
	next    Handle
	pending Handle
	fn      Callback
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame replaces any pending callback with fn.
func (q *Queue) RequestFrame(fn Callback) Handle {
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.pending
}

// CancelFrame drops the pending callback if h still identifies it.
func (q *Queue) CancelFrame(h Handle) {
	if h != 0 && h == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// Pending reports whether a frame has been requested and not yet fired.
func (q *Queue) Pending() bool {
	return q.fn != nil
}

// Fire runs the pending callback, if any, and reports whether one ran.
// The callback is detached before it runs so it may request the next frame.
func (q *Queue) Fire(ts time.Duration) bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.fn = nil
	q.pending = 0
	fn(ts)
	return true
}
