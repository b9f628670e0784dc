package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/games/rainrun"
	"github.com/vovakirdan/rain-run/internal/storage"
)

func newTestModel(t *testing.T, cfg config.RainRunConfig, store *storage.Store) (GameModel, *rainrun.Game) {
	t.Helper()
	g := rainrun.NewWithConfig(cfg)
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	m.Init()
	return m, g
}

func tickAt(m GameModel, at time.Duration) GameModel {
	next, _ := m.Update(TickMsg{At: m.epoch.Add(at), chain: m.chain})
	return next.(GameModel)
}

func press(m GameModel, msg tea.KeyMsg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTicksDriveFrames(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)

	for i := 0; i < 3; i++ {
		m = tickAt(m, time.Duration(i)*16*time.Millisecond)
	}
	if g.Frames() != 3 {
		t.Fatalf("Frames() = %d after 3 ticks, expected 3", g.Frames())
	}
	if m.State().Distance == 0 {
		t.Error("distance should accumulate once dt is non-zero")
	}
	if !strings.ContainsRune(m.screen.String(), '█') {
		t.Error("frame should rasterize the scene")
	}
}

func TestStaleTickChainIgnored(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)

	next, cmd := m.Update(TickMsg{At: m.epoch, chain: m.chain + 1000})
	m = next.(GameModel)
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if g.Frames() != 0 {
		t.Errorf("stale tick ran %d frames", g.Frames())
	}
}

func TestMouseClickBoosts(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)

	next, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(GameModel)
	m = tickAt(m, 0)
	m = tickAt(m, 16*time.Millisecond)

	if g.Speed().Boost <= 0 {
		t.Error("left click should apply a boost impulse")
	}
}

func TestCrouchReleasesAfterHold(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if !g.Controls().Crouching() {
		t.Fatal("down should press crouch")
	}

	next, _ := m.Update(TickMsg{At: time.Now().Add(CrouchHold + time.Millisecond), chain: m.chain})
	m = next.(GameModel)
	if g.Controls().Crouching() {
		t.Error("crouch should release once the hold expires")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, runes("x"))
	if g.Controls().Crouching() {
		t.Error("x should release crouch immediately")
	}
	if !m.crouchUntil.IsZero() {
		t.Error("x should clear the pending release")
	}
}

func TestRestartResetsRun(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)

	m = press(m, runes("+"))
	for i := 0; i < 10; i++ {
		m = tickAt(m, time.Duration(i)*20*time.Millisecond)
	}
	if g.Speed().Base == g.Config().Speed.Base {
		t.Fatal("faster key should raise base speed")
	}

	m = press(m, runes("r"))
	if g.Frames() != 0 || g.Speed().Base != g.Config().Speed.Base {
		t.Errorf("restart left frames=%d base=%v", g.Frames(), g.Speed().Base)
	}
	if !m.driver.Running() {
		t.Error("restart should restart the frame driver")
	}
	if m.config.Seed != 7 {
		t.Errorf("explicit seed should survive restart, got %d", m.config.Seed)
	}
}

func TestGameOverSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultRainRunConfig()
	cfg.Health.Max = 10
	cfg.Health.Damage = 10
	m, _ := newTestModel(t, cfg, store)

	at := time.Duration(0)
	for i := 0; i < 4000 && !m.State().GameOver; i++ {
		m = tickAt(m, at)
		at += 50 * time.Millisecond
	}
	if !m.State().GameOver {
		t.Fatal("idle runner should eventually run out of health")
	}
	if m.driver.Running() {
		t.Error("driver should stop at game over")
	}

	// later ticks must not record the run again
	for i := 0; i < 5; i++ {
		m = tickAt(m, at)
		at += 50 * time.Millisecond
	}

	runs, err := store.TopRuns("rainrun", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Distance != m.State().Distance || runs[0].Score != m.State().Score {
		t.Errorf("saved run %+v does not match state %+v", runs[0], m.State())
	}

	if view := m.View(); !strings.Contains(view, "GAME OVER") {
		t.Error("view should show the game-over box")
	}
}

func TestBackKey(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRainRunConfig(), nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsQuitting() || m.BackToMenu() {
		t.Fatal("back is ignored while running")
	}

	m = press(m, runes("p"))
	m = tickAt(m, 0)
	if !m.State().Paused {
		t.Fatal("p should pause")
	}

	menu := press(m.WithMenu(), tea.KeyMsg{Type: tea.KeyEsc})
	if !menu.BackToMenu() || menu.IsQuitting() {
		t.Error("back while paused should return to the menu")
	}

	standalone := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.IsQuitting() {
		t.Error("back while paused should quit a standalone game")
	}
}

func TestViewShowsHUD(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRainRunConfig(), nil)
	m = tickAt(m, 0)

	view := m.View()
	for _, want := range []string{"RAIN RUN", "score", "dist", "health", rainrun.HintDefault} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view has %d lines, expected 24", got)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t, config.DefaultRainRunConfig(), nil)
	m = tickAt(m, 0)
	m = tickAt(m, 16*time.Millisecond)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(GameModel)

	if g.Frames() != 2 {
		t.Errorf("resize should not reset the game, frames = %d", g.Frames())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-chromeRows {
		t.Errorf("scene = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.raster.Region().W != 120 {
		t.Errorf("raster region = %+v", m.raster.Region())
	}
}
