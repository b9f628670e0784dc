package rainrun

import (
	"sync/atomic"

	"github.com/vovakirdan/rain-run/internal/core"
)

// Controls is the input mailbox between event handlers and the frame loop.
// Any goroutine may record events; the frame callback consumes them with
// Drain. Events only bump counters and flags, so no simulation state is
// touched outside the frame.
type Controls struct {
	taps   atomic.Int32
	jumps  atomic.Int32
	faster atomic.Int32
	slower atomic.Int32
	pauses atomic.Int32

	crouchHeld    atomic.Bool
	crouchPressed atomic.Bool // latched until drained so a short press is seen
}

// NewControls returns an idle mailbox.
func NewControls() *Controls {
	return &Controls{}
}

// Tap records a boost impulse (pointer click, space, on-screen button).
func (c *Controls) Tap() { c.taps.Add(1) }

// Jump records a jump request. The game ignores it unless the runner is grounded.
func (c *Controls) Jump() { c.jumps.Add(1) }

// CrouchDown starts crouching.
func (c *Controls) CrouchDown() {
	c.crouchHeld.Store(true)
	c.crouchPressed.Store(true)
}

// CrouchUp releases the crouch.
func (c *Controls) CrouchUp() { c.crouchHeld.Store(false) }

// Crouching reports whether crouch is currently held.
func (c *Controls) Crouching() bool { return c.crouchHeld.Load() }

// Faster raises the base speed one step.
func (c *Controls) Faster() { c.faster.Add(1) }

// Slower lowers the base speed one step.
func (c *Controls) Slower() { c.slower.Add(1) }

// Pause toggles pause on the next frame.
func (c *Controls) Pause() { c.pauses.Add(1) }

// Drain returns everything recorded since the previous call and clears the
// impulse counters. Crouch is a level: it stays set while held.
func (c *Controls) Drain() core.InputFrame {
	in := core.NewInputFrame()
	in.Add(core.ActionBoost, int(c.taps.Swap(0)))
	in.Add(core.ActionJump, int(c.jumps.Swap(0)))
	in.Add(core.ActionFaster, int(c.faster.Swap(0)))
	in.Add(core.ActionSlower, int(c.slower.Swap(0)))
	in.Add(core.ActionPause, int(c.pauses.Swap(0)))

	pressed := c.crouchPressed.Swap(false)
	if c.crouchHeld.Load() || pressed {
		in.Set(core.ActionCrouch)
	}
	return in
}

// DrainHeld consumes only pause toggles and reports the crouch level.
// Impulses (taps, jumps, speed steps) stay queued for the next frame that
// can apply them, so presses made while paused are not lost.
func (c *Controls) DrainHeld() core.InputFrame {
	in := core.NewInputFrame()
	in.Add(core.ActionPause, int(c.pauses.Swap(0)))
	if c.crouchHeld.Load() || c.crouchPressed.Load() {
		in.Set(core.ActionCrouch)
	}
	return in
}

// Reset drops pending events and releases crouch.
func (c *Controls) Reset() {
	c.taps.Store(0)
	c.jumps.Store(0)
	c.faster.Store(0)
	c.slower.Store(0)
	c.pauses.Store(0)
	c.crouchHeld.Store(false)
	c.crouchPressed.Store(false)
}
