package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHWatch    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Serve the arcade over SSH. Every connection gets its own menu,
difficulty picker and games; all players share one leaderboard.

The host key is read from --host-key, or generated at ~/.arcade/host_key
on first start. With --watch, editing <config-dir>/<game>.yaml reloads
that game's config for rounds started afterwards.

Examples:
  arcade serve                                 # Listen on :23234
  arcade serve --ssh :2222 --idle-timeout 10   # Custom port, shorter idle limit
  arcade serve --config-dir ./configs --watch  # Hot-reload game configs

Connect with:
  ssh -p 23234 localhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagSSHWatch, "watch", false, "Reload game configs when their YAML files change")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.WatchConfigs = flagSSHWatch
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Arcade SSH server listening on %s (Ctrl+C to stop)\n", server.Addr())

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
