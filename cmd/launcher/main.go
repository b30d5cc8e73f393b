// launcher is a terminal game where you fling a ball through breakable tiles.
//
// Usage:
//
//	launcher list              - List available games
//	launcher play <game>       - Play a game
//	launcher menu              - Start menu to pick games interactively
//	launcher levels            - List or validate level files
//	launcher scores <game>     - Show high scores for a game
//	launcher serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible particles
//	--db <path>        - Set database path (default: ~/.launcher/scores.db)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tile-launcher/internal/games/launch"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "launcher",
	Short: "Tile Launcher - fling a ball through breakable tiles",
	Long: `Tile Launcher is a terminal game: aim with the mouse or the arrow keys,
launch the ball and break your way to the goal tile.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  levels   - List or validate level files
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  launcher play launch
  launcher play launch_practice --level 3
  launcher play launch --levels ./my-levels --telemetry ./runs
  launcher levels validate --dir ./my-levels
  launcher serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.launcher/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
