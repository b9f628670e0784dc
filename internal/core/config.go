package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame requests per second issued by the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse state of a running game, as seen by the host.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseDamaged  Phase = "damaged" // hit cooldown active
	PhaseGameOver Phase = "game_over"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Speed    float64 // Effective speed (base + boost)
	Distance int     // Distance traveled in whole meters
	Health   int     // Remaining health, 0-100
	Hint     string  // Short control hint for the current context
	Phase    Phase
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Hits   int // Obstacles marked hit this frame
	Evaded int // Obstacles credited this frame
}
