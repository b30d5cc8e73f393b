package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-launcher/internal/config"
	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/games/launch"
	"github.com/vovakirdan/tile-launcher/internal/platform/tui"
	"github.com/vovakirdan/tile-launcher/internal/storage"
	"github.com/vovakirdan/tile-launcher/internal/telemetry"
)

// Flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      int
	flagTelemetry  string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based, skips the level selector)")
	cmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Directory for attempts.csv")
}

// applyGameFlags passes CLI settings to the launch package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadLaunch(flagConfig); err != nil {
			return err
		}
	}
	launch.SetConfigPath(flagConfig)
	launch.SetDifficultyPreset(flagDifficulty)
	launch.SetLevelsDir(flagLevelsDir)
	launch.SetStartLevel(flagLevel)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns a file logger, or a discarding one without --log-file.
// The terminal belongs to the game, so logs never go to stderr here.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "launcher",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// openServices opens the optional sinks. Failures are reported as warnings
// and the game runs without the sink.
func openServices() (tui.Services, func()) {
	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, logCloser = log.New(io.Discard), io.NopCloser(nil)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "error", err)
		store = nil
	}

	writer, err := telemetry.NewWriter(flagTelemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		logger.Warn("telemetry disabled", "error", err)
		writer = nil
	} else if writer != nil {
		logger.Info("writing telemetry", "path", writer.Path())
	}

	svc := tui.Services{Store: store, Telemetry: writer, Logger: logger}
	cleanup := func() {
		if store != nil {
			store.Close()
		}
		if err := writer.Close(); err != nil {
			logger.Error("closing telemetry", "error", err)
		}
		logCloser.Close()
	}
	return svc, cleanup
}

// levelEntries lists the levels the game will load, for the selector.
func levelEntries() ([]tui.LevelEntry, error) {
	lvls, err := launch.LevelLoader().LoadAll()
	if err != nil {
		return nil, err
	}
	entries := make([]tui.LevelEntry, len(lvls))
	for i, l := range lvls {
		entries[i] = tui.LevelEntry{ID: l.ID, Name: l.Name}
	}
	return entries, nil
}

// isLaunchGame reports whether id is one of the launcher modes.
func isLaunchGame(id string) bool {
	return id == launch.GameID || id == launch.PracticeID
}
