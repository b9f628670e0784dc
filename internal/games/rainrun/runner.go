package rainrun

import (
	"math"

	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
)

// Runner is the player's kinematic and health state.
// Y is the height above the ground line, positive up.
type Runner struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VY          float64 `yaml:"vy"`
	Crouching   bool    `yaml:"crouching"`
	Health      int     `yaml:"health"`
	HitCooldown float64 `yaml:"hit_cooldown"`
	Shake       float64 `yaml:"shake"` // screen-shake cue, seconds left
}

// Grounded reports whether a jump would be accepted.
func (r Runner) Grounded() bool {
	return r.Y == 0
}

// BodyHeight returns the torso height for the current posture.
func (r Runner) BodyHeight(cfg config.RainRunRunner) float64 {
	if r.Crouching {
		return cfg.CrouchHeight
	}
	return cfg.BodyHeight
}

// Hitbox returns the runner's collision box in surface coordinates.
// It is derived from posture and height on every call.
func (r Runner) Hitbox(cfg config.RainRunRunner, groundY float64) core.RectF {
	bodyH := r.BodyHeight(cfg)
	return core.NewRectF(
		r.X-cfg.HalfWidth,
		groundY-r.Y-bodyH,
		2*cfg.HalfWidth,
		bodyH+cfg.LegHeight,
	)
}

// Speed is the forward speed model: a user-chosen base plus a decaying boost.
type Speed struct {
	Base  float64 `yaml:"base"`
	Boost float64 `yaml:"boost"`
}

// Effective returns base + boost.
func (s Speed) Effective() float64 {
	return s.Base + s.Boost
}

// integrate applies one frame of input and physics to the runner and speed.
// It returns true when a jump was accepted.
func (g *Game) integrate(in core.InputFrame, dt float64) bool {
	sp := g.cfg.Speed
	ph := g.cfg.Physics

	if n := in.Count(core.ActionBoost); n > 0 {
		g.speed.Boost = math.Min(g.speed.Boost+float64(n)*sp.BoostStep, sp.BoostCap)
	}
	steps := in.Count(core.ActionFaster) - in.Count(core.ActionSlower)
	if steps != 0 {
		g.speed.Base = core.ClampF(g.speed.Base+float64(steps)*sp.Step, sp.Min, sp.Max)
	}

	jumped := false
	// a zero-length frame cannot lift off, so it never accepts a jump
	if in.Has(core.ActionJump) && dt > 0 && g.runner.Grounded() {
		g.runner.VY = ph.JumpImpulse
		jumped = true
	}
	g.runner.Crouching = in.Has(core.ActionCrouch)

	g.speed.Boost = math.Max(0, g.speed.Boost-dt*sp.BoostDecay)
	g.distance += g.speed.Effective() * dt * ph.DistanceScale

	r := &g.runner
	r.VY -= ph.Gravity * dt
	r.Y = core.ClampF(r.Y+r.VY*ph.VerticalScale*dt, 0, ph.MaxJumpHeight)
	if r.Y == 0 {
		r.VY = 0
	}
	r.Shake = math.Max(0, r.Shake-dt)

	return jumped
}
