package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/frame"
	"github.com/vovakirdan/rain-run/internal/registry"
	"github.com/vovakirdan/rain-run/internal/storage"
)

// CrouchHold is how long a crouch key press stays held without a repeat.
// Terminals report no key release, so auto-repeat keeps the crouch alive.
const CrouchHold = 500 * time.Millisecond

// Rows outside the scene: HUD above, hint and help below.
const chromeRows = 3

// GameModel is the Bubble Tea model that hosts a single game.
// Ticks fire a frame queue; the frame driver calls the game's Frame,
// which renders onto a raster covering the scene area.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	raster    *canvas.Raster
	queue     *frame.Queue
	driver    *frame.Driver
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	epoch     time.Time
	chain     uint64

	crouchUntil time.Time
	gameState   core.GameState
	bestScore   int
	fixedSeed   bool // keep the configured seed on reset
	embedded    bool // back returns to a menu instead of quitting
	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether the run has been saved for current game over
}

// NewGameModel creates a game model and resets the game.
// A nil logger uses the charmbracelet/log default logger.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	w, h := sceneSize(cfg.ScreenW, cfg.ScreenH)
	screen := core.NewScreen(w, h)
	raster := canvas.NewRaster(screen, core.NewRect(0, 0, w, h))
	queue := frame.NewQueue()

	m := GameModel{
		game:      game,
		screen:    screen,
		raster:    raster,
		queue:     queue,
		driver:    frame.NewDriver(queue, game.Frame, frame.DefaultMaxDelta),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		epoch:     time.Now(),
		chain:     newTickChain(),
		fixedSeed: fixedSeed,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	game.Attach(raster)
	m.gameState = game.State()
	m.bestScore = m.loadBest()
	return m
}

// WithMenu makes the back key return to a menu instead of quitting.
func (m GameModel) WithMenu() GameModel {
	m.embedded = true
	return m
}

// sceneSize returns the character grid the scene is rasterized onto.
func sceneSize(width, height int) (int, int) {
	return core.Max(width, 1), core.Max(height-chromeRows, 1)
}

// Init starts the frame driver and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.driver.Start()
	return tickCmd(m.config.TickRate, m.chain)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.Input().Tap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.chain != m.chain {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}
		return m, nil

	case core.ActionCrouch:
		m.crouchUntil = time.Now().Add(CrouchHold)

	case core.ActionStand:
		m.crouchUntil = time.Time{}
	}

	Dispatch(action, m.game.Input())
	return m, nil
}

// handleResize processes window resize events. The scene is drawn in
// logical coordinates, so only the raster target changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	w, h := sceneSize(msg.Width, msg.Height)
	m.screen.Resize(w, h)
	m.raster.SetRegion(core.NewRect(0, 0, w, h))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases a stale crouch, fires the pending frame and records
// the run once it ends.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.crouchUntil.IsZero() && now.After(m.crouchUntil) {
		m.game.Input().CrouchUp()
		m.crouchUntil = time.Time{}
	}

	m.queue.Fire(now.Sub(m.epoch))
	m.gameState = m.game.State()

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate, m.chain)
}

// restart resets the game and restarts the frame driver.
func (m *GameModel) restart() {
	m.driver.Stop()
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.crouchUntil = time.Time{}
	m.scoreSaved = false
	m.bestScore = m.loadBest()
	m.driver.Start()
}

// recordRun saves the finished run once per game over.
func (m *GameModel) recordRun() {
	m.scoreSaved = true
	if m.store == nil || (m.gameState.Score == 0 && m.gameState.Distance == 0) {
		return
	}
	id, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Distance)
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run saved",
		"id", id,
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"distance", m.gameState.Distance,
	)
	if m.gameState.Score > m.bestScore {
		m.bestScore = m.gameState.Score
	}
}

func (m GameModel) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current scene to a file.
func (m *GameModel) saveScreenshot() {
	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the HUD, the scene (or the game-over box) and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.gameState.GameOver {
		body = renderGameOver(m.gameState, m.bestScore, m.screen.Width(), m.screen.Height())
	} else {
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(m.game.Title(), m.gameState, m.config.ScreenW),
		body,
		renderHint(m.gameState, m.config.ScreenW),
		m.help.View(m.keys),
	)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks boost
	)

	_, err := p.Run()
	model.driver.Stop()
	return err
}
