package rainrun

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"
)

// Snapshot captures the gameplay state needed to replay a run exactly:
// restoring it and feeding the same inputs yields the same frames.
// The scenery is visual only and not included.
type Snapshot struct {
	Frames    int        `yaml:"frames"`
	Runner    Runner     `yaml:"runner"`
	Speed     Speed      `yaml:"speed"`
	Score     int        `yaml:"score"`
	Distance  float64    `yaml:"distance"`
	NextSpawn float64    `yaml:"next_spawn"`
	NextID    int        `yaml:"next_id"`
	Obstacles []Obstacle `yaml:"obstacles"`
	Paused    bool       `yaml:"paused"`
	GameOver  bool       `yaml:"game_over"`
	Hint      string     `yaml:"hint"`
	RNG       string     `yaml:"rng"` // hex-encoded spawner PCG state
}

// Snapshot returns the current gameplay state.
func (g *Game) Snapshot() Snapshot {
	state, _ := g.spawner.src.MarshalBinary() // PCG marshaling cannot fail
	return Snapshot{
		Frames:    g.frames,
		Runner:    g.runner,
		Speed:     g.speed,
		Score:     g.score,
		Distance:  g.distance,
		NextSpawn: g.spawner.countdown,
		NextID:    g.spawner.nextID,
		Obstacles: g.Obstacles(),
		Paused:    g.paused,
		GameOver:  g.gameOver,
		Hint:      g.hint,
		RNG:       hex.EncodeToString(state),
	}
}

// Restore replaces the gameplay state with s. The game must have been
// Reset first so configuration and scenery exist.
func (g *Game) Restore(s Snapshot) error {
	raw, err := hex.DecodeString(s.RNG)
	if err != nil {
		return fmt.Errorf("rainrun: bad rng state: %w", err)
	}
	src := &rand.PCG{}
	if err := src.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("rainrun: bad rng state: %w", err)
	}

	g.frames = s.Frames
	g.runner = s.Runner
	g.speed = s.Speed
	g.score = s.Score
	g.distance = s.Distance
	g.paused = s.Paused
	g.gameOver = s.GameOver
	g.hint = s.Hint

	g.spawner.src = src
	g.spawner.rng = rand.New(src)
	g.spawner.countdown = s.NextSpawn
	g.spawner.nextID = s.NextID
	g.spawner.obstacles = append(g.spawner.obstacles[:0], s.Obstacles...)
	g.controls.Reset()
	if s.Runner.Crouching {
		g.controls.CrouchDown()
	}
	return nil
}

// EncodeSnapshot renders s as YAML.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeSnapshot parses a YAML snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("rainrun: failed to parse snapshot: %w", err)
	}
	return s, nil
}
