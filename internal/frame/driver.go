package frame

import "time"

// DefaultMaxDelta bounds a single integration step, in seconds.
const DefaultMaxDelta = 0.05

// TickFunc advances the simulation by dt seconds and reports whether the
// loop should keep requesting frames.
type TickFunc func(dt float64) bool

// Driver invokes a TickFunc exactly once per scheduled frame.
type Driver struct {
	sched    Scheduler
	tick     TickFunc
	maxDelta float64

	handle  Handle
	last    time.Duration
	primed  bool
	running bool
	frames  uint64
}

// NewDriver creates a stopped driver. maxDelta <= 0 uses DefaultMaxDelta.
func NewDriver(sched Scheduler, tick TickFunc, maxDelta float64) *Driver {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Driver{
		sched:    sched,
		tick:     tick,
		maxDelta: maxDelta,
	}
}

// Start requests the first frame. The first frame after Start sees dt = 0.
// Starting a running driver is a no-op.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.primed = false
	d.handle = d.sched.RequestFrame(d.onFrame)
}

// Stop cancels the pending frame request.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.sched.CancelFrame(d.handle)
	d.handle = 0
}

// Running reports whether a frame is outstanding.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns how many ticks have run since the driver was created.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Delta converts a timestamp gap to a clamped step in seconds.
// Negative gaps (clock reset) yield zero.
func Delta(gap time.Duration, maxDelta float64) float64 {
	dt := gap.Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

func (d *Driver) onFrame(ts time.Duration) {
	if !d.running {
		return
	}
	d.handle = 0

	var dt float64
	if d.primed {
		dt = Delta(ts-d.last, d.maxDelta)
	}
	d.last = ts
	d.primed = true
	d.frames++

	if !d.tick(dt) {
		d.running = false
		return
	}
	// tick may have stopped the driver itself
	if d.running {
		d.handle = d.sched.RequestFrame(d.onFrame)
	}
}
