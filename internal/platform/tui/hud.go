package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rain-run/internal/core"
)

const hudBarCells = 10

var (
	hudTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	hudPausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)
	hudHintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("241"))
	gameOverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// healthBarColor follows the same thresholds as the in-scene health bar.
func healthBarColor(health int) lipgloss.Color {
	switch {
	case health > 60:
		return lipgloss.Color("10")
	case health > 30:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("9")
	}
}

// healthBar renders health (0-100) as a fixed-width gauge.
func healthBar(health int) string {
	filled := core.Clamp(health*hudBarCells/100, 0, hudBarCells)
	if health > 0 && filled == 0 {
		filled = 1
	}
	bar := lipgloss.NewStyle().Foreground(healthBarColor(health)).Render(strings.Repeat("█", filled))
	return bar + hudLabelStyle.Render(strings.Repeat("░", hudBarCells-filled))
}

// renderHUD returns the single status line drawn above the scene.
func renderHUD(title string, st core.GameState, width int) string {
	field := func(label, value string) string {
		return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(value)
	}
	parts := []string{
		hudTitleStyle.Render(strings.ToUpper(title)),
		field("score", fmt.Sprintf("%d", st.Score)),
		field("dist", fmt.Sprintf("%dm", st.Distance)),
		field("speed", fmt.Sprintf("%.1f", st.Speed)),
		hudLabelStyle.Render("health ") + healthBar(st.Health),
	}
	if st.Paused {
		parts = append(parts, hudPausedStyle.Render("PAUSED"))
	}
	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// renderHint returns the contextual control hint line.
func renderHint(st core.GameState, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(hudHintStyle.Render(st.Hint))
}

// renderGameOver centers the end-of-run summary in a width x height area.
func renderGameOver(st core.GameState, best, width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score     %d\n", st.Score)
	fmt.Fprintf(&b, "Distance  %dm\n", st.Distance)
	if best > 0 {
		fmt.Fprintf(&b, "Best      %d\n", best)
	}
	b.WriteString("\n")
	b.WriteString(hudLabelStyle.Render("R reset   Esc menu   Q quit"))

	box := gameOverStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
