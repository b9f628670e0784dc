package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rain-run/internal/storage"
)

const (
	maxRuns          = 100
	statsPanelWidth  = 24
	minWidthForStats = 72
)

// RunView selects which runs the scoreboard lists.
type RunView int

const (
	ViewTop RunView = iota
	ViewRecent
)

func (v RunView) String() string {
	if v == ViewRecent {
		return "Recent runs"
	}
	return "Best runs"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("tab", "t"), key.WithHelp("tab", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("25")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardModel lists recorded runs of one game next to its totals.
type ScoreboardModel struct {
	store     *storage.Store
	gameID    string
	title     string
	view      RunView
	runs      []storage.RunEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for gameID showing the best runs.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 16
	if w := m.tableWidth() - 30; w > dateW {
		dateW = min(w, 20)
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.showStats() {
		w -= statsPanelWidth + 4
	}
	return w
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// reload fetches the runs for the current view and the game totals.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		var runs []storage.RunEntry
		var err error
		if m.view == ViewRecent {
			runs, err = m.store.RecentRuns(m.gameID, maxRuns)
		} else {
			runs, err = m.store.TopRuns(m.gameID, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%dm", r.Distance),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := boardTitleStyle.Render(m.title + " scoreboard")
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, m.tab(ViewTop), " ", m.tab(ViewRecent))

	var list string
	if len(m.runs) == 0 {
		list = boardEmptyStyle.Render("No runs recorded yet.")
	} else {
		list = m.table.View()
	}
	body := boardPanelStyle.Render(list)
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tabs),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body),
		"",
		hudHintStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) tab(v RunView) string {
	if v == m.view {
		return boardActiveTab.Render(v.String())
	}
	return boardTabStyle.Render(v.String())
}

func (m ScoreboardModel) statsPanel() string {
	line := func(label, value string) string {
		return boardLabelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + value
	}
	rows := []string{hudTitleStyle.Render("Totals"), ""}
	if m.stats == nil || m.stats.RunsCount == 0 {
		rows = append(rows, boardLabelStyle.Render("nothing yet"))
	} else {
		s := m.stats
		rows = append(rows,
			line("Runs", fmt.Sprintf("%d", s.RunsCount)),
			line("Best", fmt.Sprintf("%d", s.HighScore)),
			line("Average", fmt.Sprintf("%.1f", s.AvgScore)),
			line("Longest", fmt.Sprintf("%dm", s.LongestRun)),
			line("Total", fmt.Sprintf("%dm", s.TotalDistance)),
			line("Last", s.LastPlayed.Format("Jan 02")),
		)
	}
	return boardPanelStyle.Width(statsPanelWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RunView reports which runs are listed.
func (m ScoreboardModel) RunView() RunView {
	return m.view
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.RunEntry {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
