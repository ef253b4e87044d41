package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space/Enter  - Start, slide the selected tile
  P            - Pause
  R            - Restart
  Esc          - Leave (when not playing)
  Q/Ctrl+C     - Quit

Difficulty options (snake, pacman, arkanoid):
  easy   - Slower start, extra lives
  normal - The configured defaults
  hard   - Faster, fewer lives
  fixed  - No speed-up while playing

Without --difficulty a picker is shown before the game starts.

Examples:
  arcade play fifteen
  arcade play snake --difficulty easy
  arcade play pacman --config-dir ./my-configs`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, found := registry.Lookup(gameID)
	if !found {
		fmt.Fprintf(os.Stderr, "Game %q not found.\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	game, ok, err := createGame(info, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
