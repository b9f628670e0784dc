package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/registry"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	return MapKeyName(msg.String())
}

// MapKeyName maps a key name as reported by a terminal backend.
// It is shared with hosts that do not use Bubble Tea.
func MapKeyName(name string) (action core.Action, isQuit bool) {
	switch name {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "space":
		return core.ActionBoost, false
	case "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionCrouch, false
	case "x":
		return core.ActionStand, false
	case "+", "=":
		return core.ActionFaster, false
	case "-", "_":
		return core.ActionSlower, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Dispatch forwards a gameplay action to the game's input mailbox.
// Returns false for actions the host must handle itself (restart, back...).
func Dispatch(a core.Action, in registry.Input) bool {
	switch a {
	case core.ActionBoost:
		in.Tap()
	case core.ActionJump:
		in.Jump()
	case core.ActionCrouch:
		in.CrouchDown()
	case core.ActionStand:
		in.CrouchUp()
	case core.ActionFaster:
		in.Faster()
	case core.ActionSlower:
		in.Slower()
	case core.ActionPause:
		in.Pause()
	default:
		return false
	}
	return true
}

// GameKeyMap holds the in-game bindings shown in the help line.
type GameKeyMap struct {
	Boost   key.Binding
	Jump    key.Binding
	Crouch  key.Binding
	Stand   key.Binding
	Speed   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Boost, k.Jump, k.Crouch, k.Speed, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Boost, k.Jump, k.Crouch, k.Stand},
		{k.Speed, k.Pause, k.Restart},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the bindings matching MapKeyName.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Boost: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "boost"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "crouch"),
		),
		Stand: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stand"),
		),
		Speed: key.NewBinding(
			key.WithKeys("+", "-"),
			key.WithHelp("+/-", "speed"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
