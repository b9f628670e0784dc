// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// RainRunConfig contains all configuration for the Rain Run game.
// Distances are logical canvas pixels, times are seconds.
type RainRunConfig struct {
	Physics    RainRunPhysics   `yaml:"physics"`
	Speed      RainRunSpeed     `yaml:"speed"`
	Spawn      RainRunSpawn     `yaml:"spawn"`
	Obstacles  RainRunObstacles `yaml:"obstacles"`
	Runner     RainRunRunner    `yaml:"runner"`
	Health     RainRunHealth    `yaml:"health"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RainRunPhysics defines the vertical integration parameters.
type RainRunPhysics struct {
	Gravity       float64 `yaml:"gravity"`         // velocity lost per second
	JumpImpulse   float64 `yaml:"jump_impulse"`    // velocity set by a grounded jump
	VerticalScale float64 `yaml:"vertical_scale"`  // pixels per velocity-second
	MaxJumpHeight float64 `yaml:"max_jump_height"` // ceiling for the runner offset
	MaxDelta      float64 `yaml:"max_delta"`       // frame dt clamp
	DistanceScale float64 `yaml:"distance_scale"`  // meters per speed-second
}

// RainRunSpeed defines base speed limits and the boost impulse model.
type RainRunSpeed struct {
	Base       float64 `yaml:"base"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Step       float64 `yaml:"step"`        // base speed change per faster/slower press
	BoostStep  float64 `yaml:"boost_step"`  // boost added per tap
	BoostCap   float64 `yaml:"boost_cap"`   // boost ceiling
	BoostDecay float64 `yaml:"boost_decay"` // boost lost per second
}

// RainRunSpawn defines obstacle cadence and scrolling.
type RainRunSpawn struct {
	InitialDelay float64 `yaml:"initial_delay"` // countdown after reset
	BaseInterval float64 `yaml:"base_interval"`
	SpeedCap     float64 `yaml:"speed_cap"`    // speed beyond which gaps stop shrinking
	SpeedFactor  float64 `yaml:"speed_factor"` // seconds removed per unit of speed
	Jitter       float64 `yaml:"jitter"`       // width of the uniform random addend
	MinInterval  float64 `yaml:"min_interval"`
	LowWeight    float64 `yaml:"low_weight"` // probability of a ground hazard
	ScrollScale  float64 `yaml:"scroll_scale"`
	SpawnX       float64 `yaml:"spawn_x"`
	DespawnX     float64 `yaml:"despawn_x"`
}

// ObstacleShape fixes the geometry of one obstacle archetype.
type ObstacleShape struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Elevation float64 `yaml:"elevation"` // gap between the ground line and the obstacle bottom
}

// RainRunObstacles defines both archetypes.
type RainRunObstacles struct {
	Low  ObstacleShape `yaml:"low"`
	High ObstacleShape `yaml:"high"`
}

// RainRunRunner defines runner placement and hitbox geometry.
type RainRunRunner struct {
	X            float64 `yaml:"x"`
	GroundOffset float64 `yaml:"ground_offset"` // ground line distance from the bottom edge
	HalfWidth    float64 `yaml:"half_width"`
	BodyHeight   float64 `yaml:"body_height"`
	CrouchHeight float64 `yaml:"crouch_height"`
	LegHeight    float64 `yaml:"leg_height"`
}

// RainRunHealth defines damage, cooldown and scoring.
type RainRunHealth struct {
	Max        int     `yaml:"max"`
	Damage     int     `yaml:"damage"`
	Cooldown   float64 `yaml:"cooldown"`
	Shake      float64 `yaml:"shake"`
	EvadeScore int     `yaml:"evade_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to spawn pressure at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
