// Package rainrun implements Rain Run, an endless runner in the rain.
// The runner jumps over banana peels and crouches under birds while the
// scene scrolls at a speed the player nudges with boosts.
package rainrun

import (
	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/registry"
)

// Control hints shown by hosts next to the HUD.
const (
	HintDefault  = "Tap to boost, Up to jump, Down to crouch"
	HintJump     = "Jump! Down to crouch under birds"
	HintCrouch   = "Crouching, Up to jump over peels"
	HintGameOver = "Out of health, press R to reset"
)

// Game implements the Rain Run simulation.
type Game struct {
	runner   Runner
	speed    Speed
	score    int
	distance float64
	spawner  *Spawner
	scenery  *Scenery
	controls *Controls
	surface  canvas.Surface

	gameOver bool
	paused   bool
	hint     string
	frames   int     // simulated frames since reset
	groundY  float64 // ground line in surface coordinates

	runtime    core.RuntimeConfig
	cfg        config.RainRunConfig
	fixedCfg   bool // cfg was injected and must not be reloaded
	difficulty *config.DifficultyManager
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Rain Run game instance. Configuration is loaded on Reset.
func New() *Game {
	return &Game{controls: NewControls()}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.RainRunConfig) *Game {
	return &Game{controls: NewControls(), cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rainrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rain Run"
}

// Reset returns every piece of state to its initial value.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadRainRun(configPath)
		if err != nil {
			cfg = config.DefaultRainRunConfig()
		}
		config.ApplyRainRunPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if !g.fixedCfg {
		g.difficulty.ApplyPreset(difficultyPreset)
	}
	g.groundY = canvas.Height - g.cfg.Runner.GroundOffset

	g.runner = Runner{
		X:      g.cfg.Runner.X,
		Health: g.cfg.Health.Max,
	}
	g.speed = Speed{Base: g.cfg.Speed.Base}
	g.score = 0
	g.distance = 0
	g.gameOver = false
	g.paused = false
	g.hint = HintDefault
	g.frames = 0
	g.controls.Reset()

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, g.groundY, &g.cfg, g.difficulty)
	} else {
		g.spawner.UpdateConfig(&g.cfg, g.difficulty, g.groundY)
		g.spawner.Reset(runtime.Seed)
	}
	if g.scenery == nil {
		g.scenery = NewScenery(runtime.Seed, g.groundY)
	} else {
		g.scenery.groundY = g.groundY
		g.scenery.Reset(runtime.Seed)
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.RainRunConfig {
	return g.cfg
}

// Difficulty returns the progression manager feeding the spawner.
func (g *Game) Difficulty() *config.DifficultyManager {
	return g.difficulty
}

// Controls returns the input mailbox hosts feed events into.
func (g *Game) Controls() *Controls {
	return g.controls
}

// Input returns the same mailbox through the registry interface.
func (g *Game) Input() registry.Input {
	return g.controls
}

// Attach sets the surface Frame renders onto. A nil surface makes the
// next Frame stop the loop.
func (g *Game) Attach(dst canvas.Surface) {
	g.surface = dst
}

// Step advances the simulation by dt seconds: physics, then spawning and
// scrolling, then collision, then retirement. It does nothing once the
// run is over.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = g.clampDelta(dt)
	g.frames++

	wasCrouching := g.runner.Crouching
	if g.integrate(in, dt) {
		g.hint = HintJump
	}
	if g.runner.Crouching && !wasCrouching {
		g.hint = HintCrouch
	}

	g.spawner.Advance(dt, g.speed.Effective(), g.score, g.frames)
	hits, evaded := g.collide(dt)
	g.spawner.Retire()

	return core.StepResult{
		State:  g.State(),
		Hits:   hits,
		Evaded: evaded,
	}
}

func (g *Game) clampDelta(dt float64) float64 {
	return core.ClampF(dt, 0, g.cfg.Physics.MaxDelta)
}

// Frame is one tick of the frame loop: drain input, step, advance the
// scenery and render. It returns false when the loop should stop, which
// happens at game over or when no surface is attached. Paused and
// zero-length frames leave impulses queued for the next frame that moves.
func (g *Game) Frame(dt float64) bool {
	if g.surface == nil {
		return false
	}
	if g.gameOver {
		g.Render(g.surface)
		return false
	}

	dt = g.clampDelta(dt)
	var in core.InputFrame
	if g.paused || dt == 0 {
		in = g.controls.DrainHeld()
	} else {
		in = g.controls.Drain()
	}
	res := g.Step(in, dt)
	if !g.paused {
		g.scenery.Advance(dt, g.speed.Effective())
	}
	g.Render(g.surface)
	return !res.State.GameOver
}

// Render draws the current state. It never changes gameplay state.
func (g *Game) Render(dst canvas.Surface) {
	if dst == nil {
		return
	}
	health := float64(g.runner.Health) / float64(g.cfg.Health.Max)
	g.scenery.Draw(dst, g.runner, g.runner.BodyHeight(g.cfg.Runner), health, g.spawner.Obstacles())
}

// State returns the observable outputs for the host UI.
func (g *Game) State() core.GameState {
	phase := core.PhaseRunning
	switch {
	case g.gameOver:
		phase = core.PhaseGameOver
	case g.runner.HitCooldown > 0:
		phase = core.PhaseDamaged
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Speed:    g.speed.Effective(),
		Distance: int(g.distance),
		Health:   g.runner.Health,
		Hint:     g.hint,
		Phase:    phase,
	}
}

// Runner returns a copy of the runner state.
func (g *Game) Runner() Runner {
	return g.runner
}

// Speed returns the current speed model.
func (g *Game) Speed() Speed {
	return g.speed
}

// Obstacles returns a copy of the live obstacle set.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.spawner.Obstacles()...)
}

// Frames returns the number of simulated frames since reset.
func (g *Game) Frames() int {
	return g.frames
}

// Register the game with the registry
func init() {
	registry.Register("rainrun", func() registry.Game {
		return New()
	})
}
