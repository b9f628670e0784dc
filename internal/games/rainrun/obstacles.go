package rainrun

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
)

// ObstacleKind selects an obstacle's geometry and the move that evades it.
type ObstacleKind string

const (
	KindLow  ObstacleKind = "low"  // banana peel on the ground, jump over it
	KindHigh ObstacleKind = "high" // bird in the head band, crouch under it
)

// Obstacle is a live hazard. Scored and Hit are terminal: at most one of
// them is ever set, and never cleared.
type Obstacle struct {
	ID     int          `yaml:"id"`
	Kind   ObstacleKind `yaml:"kind"`
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	W      float64      `yaml:"w"`
	H      float64      `yaml:"h"`
	Scored bool         `yaml:"scored,omitempty"`
	Hit    bool         `yaml:"hit,omitempty"`
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Resolved reports whether the obstacle has already been judged.
func (o Obstacle) Resolved() bool {
	return o.Scored || o.Hit
}

// RequiresCrouch reports whether standing under the obstacle costs health.
func (o Obstacle) RequiresCrouch() bool {
	return o.Kind == KindHigh
}

// Spawner owns the live obstacle set and the spawn countdown.
type Spawner struct {
	obstacles  []Obstacle
	countdown  float64
	nextID     int
	groundY    float64
	src        *rand.PCG
	rng        *rand.Rand
	cfg        *config.RainRunConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner seeded for deterministic play.
func NewSpawner(seed int64, groundY float64, cfg *config.RainRunConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		obstacles:  make([]Obstacle, 0, 16),
		groundY:    groundY,
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset(seed)
	return s
}

// UpdateConfig swaps the configuration and difficulty manager.
func (s *Spawner) UpdateConfig(cfg *config.RainRunConfig, diff *config.DifficultyManager, groundY float64) {
	s.cfg = cfg
	s.difficulty = diff
	s.groundY = groundY
}

// Reset clears all obstacles, restarts the countdown and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.countdown = s.cfg.Spawn.InitialDelay
	s.nextID = 0
	s.src = rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	s.rng = rand.New(s.src)
}

// Advance runs the countdown, spawns at most one obstacle, then scrolls
// every live obstacle by the effective speed. score and frames feed the
// difficulty manager.
func (s *Spawner) Advance(dt, speed float64, score, frames int) {
	s.countdown -= dt
	if s.countdown <= 0 {
		s.spawn()
		s.countdown = s.Interval(speed, score, frames)
	}

	dx := speed * s.cfg.Spawn.ScrollScale * dt
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}
}

// Interval rolls the gap until the next spawn. Faster play gives shorter
// but still jittered gaps, always strictly above spawn.min_interval.
func (s *Spawner) Interval(speed float64, score, frames int) float64 {
	sp := s.cfg.Spawn
	pressure := s.difficulty.Speed(speed, score, frames)
	gap := sp.BaseInterval - math.Min(pressure, sp.SpeedCap)*sp.SpeedFactor + s.rng.Float64()*sp.Jitter
	if gap <= sp.MinInterval {
		return math.Nextafter(sp.MinInterval, math.Inf(1))
	}
	return gap
}

func (s *Spawner) spawn() {
	kind, shape := KindHigh, s.cfg.Obstacles.High
	if s.rng.Float64() < s.cfg.Spawn.LowWeight {
		kind, shape = KindLow, s.cfg.Obstacles.Low
	}
	s.nextID++
	s.obstacles = append(s.obstacles, Obstacle{
		ID:   s.nextID,
		Kind: kind,
		X:    s.cfg.Spawn.SpawnX,
		Y:    s.groundY - shape.Height - shape.Elevation,
		W:    shape.Width,
		H:    shape.Height,
	})
}

// Retire drops obstacles that scrolled past the trailing edge. Survivors
// keep their relative order.
func (s *Spawner) Retire() int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X >= s.cfg.Spawn.DespawnX {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return removed
}

// Obstacles returns the live set. Callers must not retain it across frames.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Countdown returns the seconds until the next spawn.
func (s *Spawner) Countdown() float64 {
	return s.countdown
}
