package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-launcher/internal/games/launch"
	"github.com/vovakirdan/tile-launcher/internal/platform/tui"
	"github.com/vovakirdan/tile-launcher/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse            - Aim (the ball flies away from the pointer)
  Left click       - Launch
  Arrows/WASD      - Move the aim point
  Space/Enter      - Launch at the aim point
  P                - Pause
  R                - Restart
  B/Esc            - Back (when paused or finished)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 15 lives per level
  normal - 10 lives per level
  hard   - 5 lives per level, 20% stronger gravity

Examples:
  launcher play launch
  launcher play launch --difficulty hard
  launcher play launch_practice --level 4
  launcher play launch --levels ./my-levels --config ./launch.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'launcher list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	svc, cleanup := openServices()

	// Show the mode/level selector unless a level was given
	if isLaunchGame(gameID) && !cmd.Flags().Changed("level") {
		entries, err := levelEntries()
		if err != nil {
			cleanup()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		selection, err := tui.RunLevelSelector(launch.GameID, launch.PracticeID, entries, svc.Store, cfg)
		if err != nil {
			cleanup()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if selection == nil {
			cleanup()
			return
		}
		gameID = selection.GameID
		launch.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, svc, cfg)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
