package rainrun

import "math"

// collide runs both damage paths against the live obstacles and returns
// how many obstacles were marked hit and how many were credited.
//
// The evasion judgment fires once an obstacle has fully passed the
// runner's leading edge. The overlap test is a separate path gated by the
// same cooldown, so both may penalize the same frame.
func (g *Game) collide(dt float64) (hits, evaded int) {
	hits, evaded = g.judgePassed()
	if g.gameOver {
		return hits, evaded
	}

	g.runner.HitCooldown = math.Max(0, g.runner.HitCooldown-dt)
	if g.overlap() {
		hits++
	}
	return hits, evaded
}

// judgePassed settles every unresolved obstacle that is now behind the runner.
func (g *Game) judgePassed() (hits, evaded int) {
	edge := g.runner.X - g.cfg.Runner.HalfWidth
	obs := g.spawner.obstacles
	for i := range obs {
		ob := &obs[i]
		if ob.Resolved() || ob.X+ob.W >= edge {
			continue
		}
		if ob.RequiresCrouch() && !g.runner.Crouching {
			ob.Hit = true
			hits++
			g.damage()
		} else {
			ob.Scored = true
			evaded++
			g.score += g.cfg.Health.EvadeScore
		}
	}
	return hits, evaded
}

// overlap applies at most one geometric hit per frame.
func (g *Game) overlap() bool {
	if g.runner.HitCooldown > 0 {
		return false
	}
	box := g.runner.Hitbox(g.cfg.Runner, g.groundY)
	obs := g.spawner.obstacles
	for i := range obs {
		ob := &obs[i]
		if ob.Resolved() || !box.Intersects(ob.Rect()) {
			continue
		}
		ob.Hit = true
		g.damage()
		return true
	}
	return false
}

// damage removes health if the cooldown has expired and reports whether
// it did. Reaching zero health ends the run.
func (g *Game) damage() bool {
	r := &g.runner
	if r.HitCooldown > 0 {
		return false
	}
	r.Health = max(0, r.Health-g.cfg.Health.Damage)
	r.HitCooldown = g.cfg.Health.Cooldown
	r.Shake = g.cfg.Health.Shake
	if r.Health == 0 {
		g.gameOver = true
		g.hint = HintGameOver
	}
	return true
}
