package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-launcher/internal/games/launch"
	"github.com/vovakirdan/tile-launcher/internal/platform/tui"
	"github.com/vovakirdan/tile-launcher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for
high scores. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  launcher menu
  launcher menu --fps 30
  launcher menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc, cleanup := openServices()
	defer cleanup()

	cfg := runtimeConfig()
	fixedLevel := cmd.Flags().Changed("level")

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(svc.Store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if isLaunchGame(gameID) && !fixedLevel {
			entries, err := levelEntries()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			selection, err := tui.RunLevelSelector(launch.GameID, launch.PracticeID, entries, svc.Store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if selection == nil {
				continue
			}
			gameID = selection.GameID
			launch.SetStartLevel(selection.Level)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh particles for each game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, svc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
