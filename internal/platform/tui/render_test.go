package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rain-run/internal/core"
)

func TestRenderScreenKeepsGlyphs(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetCell(0, 0, 'a', core.ColorSky)
	s.SetCell(1, 0, 'b', core.ColorSky)
	s.SetCell(2, 0, 'c', core.ColorAmber)
	s.SetCell(5, 1, 'z', core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "c", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if w := lipgloss.Width(lines[0]); w != 6 {
		t.Errorf("row width = %d, expected 6", w)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health int
		filled int
	}{
		{100, hudBarCells},
		{55, 5},
		{3, 1},
		{0, 0},
	}
	for _, tt := range tests {
		bar := healthBar(tt.health)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("healthBar(%d) has %d filled cells, expected %d", tt.health, got, tt.filled)
		}
		if w := lipgloss.Width(bar); w != hudBarCells {
			t.Errorf("healthBar(%d) width = %d", tt.health, w)
		}
	}
}

func TestRenderGameOverFitsArea(t *testing.T) {
	out := renderGameOver(core.GameState{Score: 40, Distance: 123, GameOver: true}, 90, 60, 16)
	for _, want := range []string{"GAME OVER", "40", "123m", "Best", "90"} {
		if !strings.Contains(out, want) {
			t.Errorf("game-over box missing %q", want)
		}
	}
	if h := lipgloss.Height(out); h != 16 {
		t.Errorf("height = %d, expected 16", h)
	}
}
