package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/platform/web"
)

var (
	flagWebAddr  string
	flagWatch    bool
	flagWebDebug bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the browser portal",
	Long: `Serve the arcade to browsers over HTTP and WebSocket.

The portal lists every game; each game runs on the server and streams
frames to the page. Unknown game ids show a "game not found" placeholder.

With --watch, editing <config-dir>/<game>.yaml reloads that game's
config; new rounds pick up the change.

Examples:
  arcade web                               # Listen on :8080
  arcade web --addr :9000 --watch          # Hot-reload ./configs
  arcade web --config-dir ./my-configs --watch`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload game configs when their YAML files change")
	webCmd.Flags().BoolVar(&flagWebDebug, "debug", false, "Run the router in debug mode")
}

func runWeb(_ *cobra.Command, _ []string) {
	if !flagWebDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.WatchConfigs = flagWatch

	server, err := web.NewServer(cfg, config.Active())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting arcade web portal on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
