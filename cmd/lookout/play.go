package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/firetower-arcade/lookout/internal/config"
	"github.com/firetower-arcade/lookout/internal/core"
	"github.com/firetower-arcade/lookout/internal/game"
	"github.com/firetower-arcade/lookout/internal/platform/tui"
	"github.com/firetower-arcade/lookout/internal/registry"
	"github.com/firetower-arcade/lookout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a lookout shift",
	Long: `Start a shift in the watchtower. Without an argument the timed shift
mode is played; pass "lookout_endless" for an open-ended watch.

Controls:
  Left/Right, A/D  - Pan the view
  O                - Open/close the fire-finder
  Up/Down, W/S     - Raise/lower the crosshair (fire-finder open)
  Space/Enter      - Report the fire under the crosshair
  P                - Pause
  R                - Restart (after the shift ends)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  lookout play
  lookout play lookout_endless
  lookout play --difficulty hard
  lookout play --config ./my-lookout.yaml
  lookout play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "lookout"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (try \"lookout\" or \"lookout_endless\")\n", gameID)
		os.Exit(1)
	}

	// Validate the config up front so a malformed table fails fast with a
	// readable message instead of surfacing mid-shift.
	if _, err := config.Load(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works, reports go to stdout
		store = nil
	}
	if store != nil {
		// Journal reports; the altscreen would swallow stdout lines anyway.
		game.SetReportSink(store)
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
