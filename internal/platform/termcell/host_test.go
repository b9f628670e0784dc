package termcell

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/games/rainrun"
	"github.com/vovakirdan/rain-run/internal/storage"
)

func newTestHost(t *testing.T, cfg config.RainRunConfig, store *storage.Store) (*Host, *rainrun.Game) {
	t.Helper()
	g := rainrun.NewWithConfig(cfg)
	h := NewHost(nil, g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}, nil)
	h.driver.Start()
	return h, g
}

func TestTickFiresFrames(t *testing.T) {
	h, g := newTestHost(t, config.DefaultRainRunConfig(), nil)

	for i := 0; i < 5; i++ {
		h.Tick(h.epoch.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if g.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", g.Frames())
	}
	if h.buf.Height() != 24-chromeRows {
		t.Errorf("scene height = %d", h.buf.Height())
	}
	if !strings.ContainsRune(h.buf.String(), '█') {
		t.Error("frames should rasterize into the scene buffer")
	}
}

func TestKeysReachControls(t *testing.T) {
	h, g := newTestHost(t, config.DefaultRainRunConfig(), nil)
	now := time.Now()

	for _, k := range []string{"w", "+", " "} {
		if !h.Key(k, now) {
			t.Fatalf("key %q should not quit", k)
		}
	}
	h.Tick(h.epoch)
	h.Tick(h.epoch.Add(20 * time.Millisecond))

	if g.Runner().Y == 0 {
		t.Error("w should start a jump")
	}
	if g.Speed().Base != g.Config().Speed.Base+g.Config().Speed.Step {
		t.Errorf("base speed = %v after one faster", g.Speed().Base)
	}
	if g.Speed().Boost == 0 {
		t.Error("space should boost")
	}
	if h.Key("q", now) {
		t.Error("q should quit")
	}
}

func TestCrouchHoldExpires(t *testing.T) {
	h, g := newTestHost(t, config.DefaultRainRunConfig(), nil)
	now := time.Now()

	h.Key("down", now)
	h.Tick(now.Add(100 * time.Millisecond))
	if !g.Runner().Crouching {
		t.Fatal("crouch should hold within the repeat window")
	}

	h.Tick(now.Add(time.Second))
	if g.Runner().Crouching {
		t.Error("crouch should release after the hold expires")
	}
}

func TestRestartAfterGameOverSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultRainRunConfig()
	cfg.Health.Max = 10
	cfg.Health.Damage = 10
	h, g := newTestHost(t, cfg, store)

	at := h.epoch
	for i := 0; i < 4000 && !h.State().GameOver; i++ {
		h.Tick(at)
		at = at.Add(50 * time.Millisecond)
	}
	if !h.State().GameOver {
		t.Fatal("idle runner should run out of health")
	}
	if h.Key("esc", time.Now()) {
		t.Error("back at game over should end a standalone session")
	}

	h.Key("r", time.Now())
	if h.State().GameOver || g.Frames() != 0 {
		t.Error("r should reset the run")
	}
	if !h.driver.Running() {
		t.Error("driver should run again after reset")
	}

	runs, err := store.TopRuns("rainrun", 5)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("saved %d runs, expected 1", len(runs))
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should use the terminal default style")
	}
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(core.ColorSky.ANSI256()))
	if styleFor(core.ColorSky) != want {
		t.Error("palette colors should map to their xterm-256 index")
	}
}

func TestGameOverLines(t *testing.T) {
	lines := GameOverLines(core.GameState{Score: 30, Distance: 210}, 0)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Score     30") || !strings.Contains(joined, "210m") {
		t.Errorf("summary = %q", joined)
	}
	if strings.Contains(joined, "Best") {
		t.Error("no best line without a recorded high score")
	}
	if !strings.Contains(strings.Join(GameOverLines(core.GameState{}, 50), "\n"), "Best      50") {
		t.Error("best line missing")
	}
}
