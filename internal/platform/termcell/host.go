// Package termcell runs a game directly on a tcell screen. It is the
// alternate backend to the Bubble Tea host: raw key and mouse events,
// a ticker that fires the frame queue, and cell-level drawing.
package termcell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/frame"
	"github.com/vovakirdan/rain-run/internal/platform/tui"
	"github.com/vovakirdan/rain-run/internal/registry"
	"github.com/vovakirdan/rain-run/internal/storage"
)

// Rows outside the scene: HUD above, hint and key help below.
const chromeRows = 3

const keyHelp = "space/click boost  up jump  down crouch  x stand  +/- speed  p pause  r reset  q quit"

// Host drives one game on a tcell screen.
type Host struct {
	screen tcell.Screen
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig

	buf    *core.Screen
	raster *canvas.Raster
	queue  *frame.Queue
	driver *frame.Driver
	epoch  time.Time

	crouchUntil time.Time
	state       core.GameState
	best        int
	fixedSeed   bool
	saved       bool
}

// NewHost resets the game and attaches it to a raster sized to cfg.
// screen may be nil for a host that is only ticked, never drawn.
func NewHost(screen tcell.Screen, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	fixedSeed := cfg.Seed != 0
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
	buf := core.NewScreen(w, h)
	queue := frame.NewQueue()
	host := &Host{
		screen:    screen,
		game:      game,
		store:     store,
		logger:    logger,
		cfg:       cfg,
		buf:       buf,
		raster:    canvas.NewRaster(buf, core.NewRect(0, 0, w, h)),
		queue:     queue,
		driver:    frame.NewDriver(queue, game.Frame, frame.DefaultMaxDelta),
		epoch:     time.Now(),
		fixedSeed: fixedSeed,
	}

	game.Reset(cfg)
	game.Attach(host.raster)
	host.state = game.State()
	host.best = host.loadBest()
	return host
}

func sceneSize(width, height int) (int, int) {
	return core.Max(width, 1), core.Max(height-chromeRows, 1)
}

// Run opens the terminal, plays until the player quits, and restores
// the terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termcell: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	return NewHost(screen, game, store, cfg, logger).Loop()
}

// Loop polls events on a goroutine and fires frames from a ticker until
// the player quits.
func (h *Host) Loop() error {
	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.driver.Start()
	defer h.driver.Stop()

	for {
		select {
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.Tick(now)
			h.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.Key(KeyName(ev), time.Now())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			h.game.Input().Tap()
		}
	case *tcell.EventResize:
		w, hh := ev.Size()
		h.Resize(w, hh)
		h.screen.Sync()
	}
	return true
}

// KeyName converts a tcell key event to the names tui.MapKeyName knows.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Key applies a named key press at time now and reports whether to keep running.
func (h *Host) Key(name string, now time.Time) bool {
	action, isQuit := tui.MapKeyName(name)
	if isQuit {
		return false
	}

	switch action {
	case core.ActionRestart:
		h.Restart()
		return true
	case core.ActionBack:
		return !(h.state.GameOver || h.state.Paused)
	case core.ActionCrouch:
		h.crouchUntil = now.Add(tui.CrouchHold)
	case core.ActionStand:
		h.crouchUntil = time.Time{}
	}

	tui.Dispatch(action, h.game.Input())
	return true
}

// Resize retargets the raster; the game keeps running.
func (h *Host) Resize(width, height int) {
	h.cfg.ScreenW, h.cfg.ScreenH = width, height
	w, hh := sceneSize(width, height)
	h.buf.Resize(w, hh)
	h.raster.SetRegion(core.NewRect(0, 0, w, hh))
}

// Tick releases a stale crouch, fires the pending frame and records the
// run once it ends.
func (h *Host) Tick(now time.Time) {
	if !h.crouchUntil.IsZero() && now.After(h.crouchUntil) {
		h.game.Input().CrouchUp()
		h.crouchUntil = time.Time{}
	}

	h.queue.Fire(now.Sub(h.epoch))
	h.state = h.game.State()

	if h.state.GameOver && !h.saved {
		h.saved = true
		h.saveRun()
	}
}

// Restart resets the game and restarts the frame driver.
func (h *Host) Restart() {
	h.driver.Stop()
	if !h.fixedSeed {
		h.cfg.Seed = time.Now().UnixNano()
	}
	h.game.Reset(h.cfg)
	h.state = h.game.State()
	h.crouchUntil = time.Time{}
	h.saved = false
	h.best = h.loadBest()
	h.driver.Start()
}

// State returns the last observed game state.
func (h *Host) State() core.GameState {
	return h.state
}

func (h *Host) saveRun() {
	if h.store == nil || (h.state.Score == 0 && h.state.Distance == 0) {
		return
	}
	if _, err := h.store.SaveRun(h.game.ID(), h.state.Score, h.state.Distance); err != nil {
		h.logger.Warn("could not save run", "game", h.game.ID(), "error", err)
		return
	}
	h.best = max(h.best, h.state.Score)
}

func (h *Host) loadBest() int {
	if h.store == nil {
		return 0
	}
	best, err := h.store.HighScore(h.game.ID())
	if err != nil {
		h.logger.Warn("could not read high score", "game", h.game.ID(), "error", err)
		return 0
	}
	return best
}

// styleFor maps a palette color to a tcell style.
func styleFor(c core.Color) tcell.Style {
	idx := c.ANSI256()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

var (
	hudStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(229)).Bold(true)
	hintStyle  = tcell.StyleDefault.Foreground(tcell.PaletteColor(241)).Italic(true)
	boxStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(9))
	pauseStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(16)).Background(tcell.PaletteColor(214))
)

// HUDLine formats the status line shown above the scene.
func HUDLine(title string, st core.GameState) string {
	return fmt.Sprintf("%s  score %d  dist %dm  speed %.1f  health %d",
		strings.ToUpper(title), st.Score, st.Distance, st.Speed, st.Health)
}

// Draw copies the scene and the chrome to the tcell screen.
func (h *Host) Draw() {
	if h.screen == nil {
		return
	}
	h.screen.Clear()

	hud := HUDLine(h.game.Title(), h.state)
	h.text(0, 0, hud, hudStyle)
	if h.state.Paused {
		h.text(len(hud)+2, 0, " PAUSED ", pauseStyle)
	}

	for y := 0; y < h.buf.Height(); y++ {
		for x := 0; x < h.buf.Width(); x++ {
			cell := h.buf.GetCell(x, y)
			h.screen.SetContent(x, y+1, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	if h.state.GameOver {
		h.drawGameOver()
	}

	h.text(0, h.buf.Height()+1, h.state.Hint, hintStyle)
	h.text(0, h.buf.Height()+2, keyHelp, tcell.StyleDefault.Foreground(tcell.PaletteColor(245)))
	h.screen.Show()
}

func (h *Host) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

// GameOverLines returns the summary shown when the run ends.
func GameOverLines(st core.GameState, best int) []string {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score     %d", st.Score),
		fmt.Sprintf("Distance  %dm", st.Distance),
	}
	if best > 0 {
		lines = append(lines, fmt.Sprintf("Best      %d", best))
	}
	return append(lines, "", "R reset   Q quit")
}

// drawGameOver frames the summary in a box centered on the scene.
func (h *Host) drawGameOver() {
	lines := GameOverLines(h.state, h.best)
	inner := 0
	for _, l := range lines {
		inner = max(inner, len(l))
	}
	box := core.NewRect(0, 0, inner+6, len(lines)+2)
	cx, cy := core.NewRect(0, 1, h.buf.Width(), h.buf.Height()).Center()
	box.X, box.Y = cx-box.W/2, cy-box.H/2

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			h.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	for x := box.X + 1; x < box.Right()-1; x++ {
		h.screen.SetContent(x, box.Y, tcell.RuneHLine, nil, boxStyle)
		h.screen.SetContent(x, box.Bottom()-1, tcell.RuneHLine, nil, boxStyle)
	}
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		h.screen.SetContent(box.X, y, tcell.RuneVLine, nil, boxStyle)
		h.screen.SetContent(box.Right()-1, y, tcell.RuneVLine, nil, boxStyle)
	}
	h.screen.SetContent(box.X, box.Y, tcell.RuneULCorner, nil, boxStyle)
	h.screen.SetContent(box.Right()-1, box.Y, tcell.RuneURCorner, nil, boxStyle)
	h.screen.SetContent(box.X, box.Bottom()-1, tcell.RuneLLCorner, nil, boxStyle)
	h.screen.SetContent(box.Right()-1, box.Bottom()-1, tcell.RuneLRCorner, nil, boxStyle)

	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		h.text(x, box.Y+1+i, l, tcell.StyleDefault)
	}
}
