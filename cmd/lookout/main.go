// lookout is a terminal fire-lookout game: watch a 360° panorama from your
// tower, spot fires through the Osborne fire-finder, and call them in before
// they burn out.
//
// Usage:
//
//	lookout play [mode]      - Start a shift (mode: lookout, lookout_endless)
//	lookout menu             - Pick a mode interactively
//	lookout serve            - Start SSH server for remote shifts
//	lookout scores [mode]    - Show high scores
//	lookout reports          - Show the fire report journal
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for a reproducible shift
//	--db <path>     - Set database path (default: ~/.lookout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/firetower-arcade/lookout/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lookout",
	Short: "Fire Lookout - Spot and report wildfires from your terminal",
	Long: `Fire Lookout puts you in a watchtower over a procedurally generated
wilderness. Fires ignite on the ridgelines around you; pan the view, open
the fire-finder, line up the crosshair and call them in before they spread.

Available commands:
  play     - Start a shift directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote shifts
  scores   - View high scores
  reports  - View the fire report journal

Examples:
  lookout play
  lookout play lookout_endless
  lookout menu
  lookout serve --ssh :2222
  lookout scores lookout`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lookout/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(reportsCmd)
}
