package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRainRun loads Rain Run configuration.
// Search order: customPath -> ~/.arcade/configs/rainrun.yaml -> ./configs/rainrun.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func LoadRainRun(customPath string) (RainRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRainRunConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRainRun(data)
		if err != nil {
			return DefaultRainRunConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rainrun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRainRun(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rainrun.yaml")); err == nil {
		if cfg, err := parseRainRun(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRainRun(defaultRainRunYAML)
	if err != nil {
		return DefaultRainRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRainRun decodes YAML over the defaults and validates the result.
func parseRainRun(data []byte) (RainRunConfig, error) {
	cfg := DefaultRainRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRainRunPreset adjusts the runner's margin for error for a difficulty
// preset. Progression itself is set on the DifficultyManager.
func ApplyRainRunPreset(cfg *RainRunConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Health.Damage = 5
		cfg.Health.Cooldown = 0.8
	case DifficultyHard:
		cfg.Health.Damage = 20
		cfg.Spawn.Jitter = 0.6
	}
}

// Validate reports every value that would break the simulation invariants.
func (c RainRunConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse > 0, "physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	check(c.Physics.VerticalScale > 0, "physics.vertical_scale must be positive, got %v", c.Physics.VerticalScale)
	check(c.Physics.MaxJumpHeight > 0, "physics.max_jump_height must be positive, got %v", c.Physics.MaxJumpHeight)
	check(c.Physics.MaxDelta > 0, "physics.max_delta must be positive, got %v", c.Physics.MaxDelta)
	check(c.Physics.DistanceScale >= 0, "physics.distance_scale must not be negative, got %v", c.Physics.DistanceScale)

	check(c.Speed.Min > 0 && c.Speed.Min <= c.Speed.Max,
		"speed.min must be in (0, speed.max], got %v..%v", c.Speed.Min, c.Speed.Max)
	check(c.Speed.Base >= c.Speed.Min && c.Speed.Base <= c.Speed.Max,
		"speed.base must be within [%v, %v], got %v", c.Speed.Min, c.Speed.Max, c.Speed.Base)
	check(c.Speed.Step > 0, "speed.step must be positive, got %v", c.Speed.Step)
	check(c.Speed.BoostStep >= 0, "speed.boost_step must not be negative, got %v", c.Speed.BoostStep)
	check(c.Speed.BoostCap >= 0, "speed.boost_cap must not be negative, got %v", c.Speed.BoostCap)
	check(c.Speed.BoostDecay >= 0, "speed.boost_decay must not be negative, got %v", c.Speed.BoostDecay)

	check(c.Spawn.MinInterval > 0, "spawn.min_interval must be positive, got %v", c.Spawn.MinInterval)
	check(c.Spawn.Jitter >= 0, "spawn.jitter must not be negative, got %v", c.Spawn.Jitter)
	check(c.Spawn.LowWeight >= 0 && c.Spawn.LowWeight <= 1,
		"spawn.low_weight must be within [0, 1], got %v", c.Spawn.LowWeight)
	check(c.Spawn.ScrollScale > 0, "spawn.scroll_scale must be positive, got %v", c.Spawn.ScrollScale)
	check(c.Spawn.DespawnX < c.Runner.X, "spawn.despawn_x must be behind the runner, got %v", c.Spawn.DespawnX)

	shapes := []struct {
		name  string
		shape ObstacleShape
	}{{"low", c.Obstacles.Low}, {"high", c.Obstacles.High}}
	for _, s := range shapes {
		check(s.shape.Width > 0 && s.shape.Height > 0, "obstacles.%s must have a positive size", s.name)
		check(s.shape.Elevation >= 0, "obstacles.%s.elevation must not be negative", s.name)
	}

	check(c.Runner.CrouchHeight > 0 && c.Runner.CrouchHeight <= c.Runner.BodyHeight,
		"runner.crouch_height must be within (0, body_height], got %v", c.Runner.CrouchHeight)
	check(c.Runner.HalfWidth > 0, "runner.half_width must be positive, got %v", c.Runner.HalfWidth)

	check(c.Health.Max > 0, "health.max must be positive, got %d", c.Health.Max)
	check(c.Health.Damage > 0, "health.damage must be positive, got %d", c.Health.Damage)
	check(c.Health.Cooldown >= 0, "health.cooldown must not be negative, got %v", c.Health.Cooldown)
	check(c.Health.EvadeScore >= 0, "health.evade_score must not be negative, got %d", c.Health.EvadeScore)

	return errors.Join(errs...)
}
