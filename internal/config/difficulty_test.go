package config

import "testing"

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{1000, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed at max level = %v, expected 4", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(9999, 300); got != 0.5 {
		t.Errorf("time progression ignores score: Level = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level = %v, expected initial 0.4", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("SetInitialLevel should clamp to 1, got %v", got)
	}

	d.SetEnabled(true)
	if !d.IsEnabled() {
		t.Error("SetEnabled(true) should enable progression")
	}
}

func TestDifficultyDefaultsAreNeutral(t *testing.T) {
	d := NewDifficultyManager(DefaultRainRunConfig().Difficulty)
	if got := d.Speed(3.5, 5000, 5000); got != 3.5 {
		t.Errorf("default difficulty should not scale speed, got %v", got)
	}
}

func TestDifficultyApplyPreset(t *testing.T) {
	base := DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	}
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{"", false, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			d := NewDifficultyManager(base)
			d.ApplyPreset(tc.preset)
			if d.IsEnabled() != tc.enabled {
				t.Errorf("IsEnabled() = %v, expected %v", d.IsEnabled(), tc.enabled)
			}
			if got := d.Level(0, 0); got != tc.level {
				t.Errorf("Level(0, 0) = %v, expected %v", got, tc.level)
			}
		})
	}
}
