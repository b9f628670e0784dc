package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRainRun(GetDefaultYAML("rainrun"))
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRainRunConfig() {
		t.Errorf("embedded YAML and DefaultRainRunConfig disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultRainRunConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded defaults")
	}
}

func TestLoadRainRunCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rainrun.yaml")
	data := "speed:\n  base: 3\nhealth:\n  damage: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRainRun(path)
	if err != nil {
		t.Fatalf("LoadRainRun() failed: %v", err)
	}
	if cfg.Speed.Base != 3 || cfg.Health.Damage != 25 {
		t.Errorf("overrides not applied: base=%v damage=%d", cfg.Speed.Base, cfg.Health.Damage)
	}
	if cfg.Physics.Gravity != 38 || cfg.Spawn.BaseInterval != 1.4 {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadRainRunErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRainRun(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRainRun(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}
	if cfg != DefaultRainRunConfig() {
		t.Error("failed load should still return usable defaults")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("speed:\n  base: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRainRun(invalid); err == nil || !strings.Contains(err.Error(), "speed.base") {
		t.Errorf("out-of-range base speed should fail validation, got %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRainRunConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Physics.Gravity = 0
	cfg.Spawn.MinInterval = 0
	cfg.Runner.CrouchHeight = 40
	cfg.Obstacles.High.Width = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"physics.gravity", "spawn.min_interval", "runner.crouch_height", "obstacles.high"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s: %v", field, err)
		}
	}
}

func TestApplyRainRunPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		damage      int
		jitter      float64
		description string
	}{
		{DifficultyEasy, 5, 1.0, "easy softens damage"},
		{DifficultyNormal, 10, 1.0, "normal keeps damage"},
		{DifficultyHard, 20, 0.6, "hard doubles damage and tightens gaps"},
		{DifficultyFixed, 10, 1.0, "fixed keeps damage"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRainRunConfig()
			ApplyRainRunPreset(&cfg, tc.preset)
			if cfg.Health.Damage != tc.damage {
				t.Errorf("%s: Damage = %d", tc.description, cfg.Health.Damage)
			}
			if cfg.Spawn.Jitter != tc.jitter {
				t.Errorf("%s: Jitter = %v", tc.description, cfg.Spawn.Jitter)
			}
			if cfg.Difficulty != DefaultRainRunConfig().Difficulty {
				t.Errorf("%s: preset should leave progression to the manager", tc.description)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s: preset produced invalid config: %v", tc.description, err)
			}
		})
	}

	cfg := DefaultRainRunConfig()
	ApplyRainRunPreset(&cfg, "")
	if cfg != DefaultRainRunConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
}
