// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to fire the next animation frame. Each game model owns a
// tick chain; ticks from a chain that is no longer current are dropped.
type TickMsg struct {
	At    time.Time
	chain uint64
}

var lastChain atomic.Uint64

// newTickChain returns an id no earlier tick carries.
func newTickChain() uint64 {
	return lastChain.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, chain: chain}
	})
}
