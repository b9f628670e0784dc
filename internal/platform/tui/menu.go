package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/registry"
	"github.com/vovakirdan/rain-run/internal/storage"
)

// MenuItem is a selectable game with its recorded totals.
type MenuItem struct {
	GameID  string
	Title   string
	Best    int // high score, 0 when none recorded
	Longest int // longest run in meters
	Runs    int
}

// Summary is the one-line record shown under the title.
func (it MenuItem) Summary() string {
	if it.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("best %d · longest %dm · %d runs", it.Best, it.Longest, it.Runs)
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	menuRainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	menuCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(36)
	menuActiveCard = menuCardStyle.BorderForeground(lipgloss.Color("39"))
	menuNameStyle  = lipgloss.NewStyle().Bold(true)
	menuInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered games with their totals from store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if st, err := store.GetGameStats(g.ID); err == nil {
				item.Best, item.Longest, item.Runs = st.HighScore, st.LongestRun, st.RunsCount
			}
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if it, ok := m.Current(); ok {
			m.selected = &it
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		if _, ok := m.Current(); ok {
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	rain := menuRainStyle.Render(rainLine(30))
	cards := make([]string, len(m.items))
	for i, it := range m.items {
		style := menuCardStyle
		name := "  " + it.Title
		if i == m.cursor {
			style = menuActiveCard
			name = "▸ " + it.Title
		}
		cards[i] = style.Render(menuNameStyle.Render(name) + "\n" + menuInfoStyle.Render("  "+it.Summary()))
	}
	if len(cards) == 0 {
		cards = append(cards, menuInfoStyle.Render("no games registered"))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, rain),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, menuTitleStyle.Render("A R C A D E")),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, rain),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, cards...)),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center,
			hudHintStyle.Render("↑/↓ choose   enter play   tab scores   q quit")),
	)
}

// rainLine is a row of slanted drops, sparse enough to read as rain.
func rainLine(width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i%3 == 0 {
			b.WriteRune('╱')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Current returns the item under the cursor.
func (m MenuModel) Current() (MenuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the scoreboard of Current was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu. GameID and Title name
// the game to play, or whose scoreboard to show.
type MenuResult struct {
	GameID          string
	Title           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		it, _ := m.Current()
		result.GameID, result.Title, result.WantsScoreboard = it.GameID, it.Title, true
	case m.Selected() != nil:
		result.GameID, result.Title = m.Selected().GameID, m.Selected().Title
	default:
		result.Quit = true
	}
	return result, nil
}
