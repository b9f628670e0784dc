package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rain-run/internal/config"
	"github.com/vovakirdan/rain-run/internal/core"
	"github.com/vovakirdan/rain-run/internal/games/rainrun"
	"github.com/vovakirdan/rain-run/internal/platform/termcell"
	"github.com/vovakirdan/rain-run/internal/platform/tui"
	"github.com/vovakirdan/rain-run/internal/registry"
	"github.com/vovakirdan/rain-run/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Click  - Boost
  Up/W         - Jump
  Down/S       - Crouch (held while the key repeats)
  X            - Stand up
  +/-          - Change base speed
  P            - Pause
  R            - Reset the run
  Esc          - Leave (when paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Backends:
  tea    - Bubble Tea UI (default)
  tcell  - raw tcell screen

Examples:
  arcade play rainrun
  arcade play rainrun --difficulty hard
  arcade play rainrun --backend tcell
  arcade play rainrun --config ./my-rainrun.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea, tcell")
}

// configureGame passes --config and --difficulty to games that read them.
func configureGame(gameID string) {
	switch gameID {
	case "rainrun":
		rainrun.SetConfigPath(flagConfig)
		rainrun.SetDifficultyPreset(flagDifficulty)
	}
}

// checkConfig reports a custom config that will be ignored so the player
// knows why defaults are in effect.
func checkConfig() {
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadRainRun(flagConfig); err != nil {
		newLogger("arcade").Warn("using default config", "path", flagConfig, "error", err)
	}
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history, returning nil when it is unusable.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		newLogger("arcade").Warn("could not open scores database, runs will not be saved", "path", path, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	configureGame(gameID)
	checkConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()
	store := openStore(flagDBPath)
	logger := newLogger("arcade")

	var runErr error
	switch flagBackend {
	case "tea", "":
		runErr = tui.Run(game, store, cfg, logger)
	case "tcell":
		runErr = termcell.Run(game, store, cfg, logger)
	default:
		runErr = fmt.Errorf("unknown backend %q (expected tea or tcell)", flagBackend)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
