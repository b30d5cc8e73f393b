package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-launcher/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagServeTelemetry string
	flagIdleTimeout    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the launcher SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.launcher/host_key

Examples:
  launcher serve                           # Listen on :23234 with auto-generated key
  launcher serve --ssh :2222               # Listen on port 2222
  launcher serve --host-key ./my_host_key  # Use specific host key
  launcher serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeTelemetry, "telemetry", "", "Directory for attempts.csv")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		TelemetryDir: flagServeTelemetry,
		TickRate:     flagFPS,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting launcher SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
