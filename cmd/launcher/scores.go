package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-launcher/internal/registry"
	"github.com/vovakirdan/tile-launcher/internal/storage"
	"github.com/vovakirdan/tile-launcher/internal/telemetry"
)

var (
	flagScoresTelemetry string
	flagScoresClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and the per-level records
for the specified game.

With --telemetry, also summarise attempts.csv from that directory.
With --clear, delete the stored scores and level records instead.

Examples:
  launcher scores launch
  launcher scores launch --telemetry ./runs
  launcher scores launch_practice --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresTelemetry, "telemetry", "", "Directory holding attempts.csv")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'launcher list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'launcher play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
		}

		fmt.Println()
		if highScore, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	records, err := store.LevelRecords(gameID)
	if err == nil && len(records) > 0 {
		fmt.Println()
		fmt.Println("Level records:")
		fmt.Printf("  %-20s  %-6s  %-10s  %s\n", "Level", "Clears", "Best tries", "Best score")
		for _, r := range records {
			fmt.Printf("  %-20s  %-6d  %-10d  %d\n", r.LevelID, r.Clears, r.BestAttempts, r.BestScore)
		}
	}

	if flagScoresTelemetry != "" {
		printTelemetry(gameID)
	}
}

func printTelemetry(gameID string) {
	records, err := telemetry.ReadAttempts(flagScoresTelemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading telemetry: %v\n", err)
		return
	}

	var mine []telemetry.AttemptRecord
	for _, r := range records {
		if r.GameID == gameID {
			mine = append(mine, r)
		}
	}

	fmt.Println()
	if len(mine) == 0 {
		fmt.Println("No attempts recorded.")
		return
	}
	fmt.Println("Attempts:")
	fmt.Printf("  %-20s  %-8s  %-8s  %s\n", "Level", "Attempts", "Failures", "Clears")
	for _, s := range telemetry.Summarize(mine) {
		fmt.Printf("  %-20s  %-8d  %-8d  %d\n", s.LevelID, s.Attempts, s.Failures, s.Clears)
	}
}
