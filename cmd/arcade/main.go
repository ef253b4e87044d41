// arcade is a portal of four classic arcade games for the terminal,
// SSH sessions and the browser.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start the browser portal
//	arcade scores [game]     - Show high scores, or a summary of all games
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config-dir <dir>     - Read <dir>/<game>.yaml before the default search order
//	--difficulty <preset>  - Apply a difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/arcade-portal/internal/games/arkanoid"
	_ "github.com/vovakirdan/arcade-portal/internal/games/fifteen"
	_ "github.com/vovakirdan/arcade-portal/internal/games/pacman"
	_ "github.com/vovakirdan/arcade-portal/internal/games/snake"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigDir  string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Portal - Play classic games in your terminal or browser",
	Long: `Arcade Portal bundles four classic games behind one menu:
the fifteen puzzle, snake, pacman and arkanoid.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  web      - Start the browser portal
  scores   - View high scores

Examples:
  arcade list
  arcade play snake
  arcade play arkanoid --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade web --addr :8080 --watch
  arcade scores fifteen`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with <game>.yaml config overrides")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves every game config once and makes it the process-wide store.
func loadConfig(_ *cobra.Command, _ []string) error {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	store, err := config.NewStore(flagConfigDir, preset)
	if err != nil {
		return fmt.Errorf("load configs: %w", err)
	}
	config.SetActive(store)
	return nil
}
