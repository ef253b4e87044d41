package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 results for the specified game, or a summary of
every game played so far when no game is given.
The fifteen puzzle ranks solves by moves, then time.

Examples:
  arcade scores
  arcade scores snake
  arcade scores fifteen --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded result of the game")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		if err := printSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game %q not found.\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(game.ID()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", game.Title())
		return
	}

	if _, ok := game.(storage.Solver); ok {
		err = printPuzzleResults(store, game.ID(), game.Title())
	} else {
		err = printScores(store, game.ID(), game.Title())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printPuzzleResults(store *storage.Store, gameID, title string) error {
	results, err := store.BestPuzzleResults(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, r := range results {
		elapsed := fmt.Sprintf("%d:%02d", r.Seconds/60, r.Seconds%60)
		fmt.Printf("  %-4d  %-6d  %-6s  %s\n", i+1, r.Moves, elapsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printSummary prints one line per game that has recorded scores.
func printSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Arcade summary")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %s\n", "Game", "Rounds", "Best", "Avg", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "------", "----", "---", "-----------")

	for _, g := range registry.List() {
		if solves, err := store.BestPuzzleResults(g.ID, 1); err == nil && len(solves) > 0 {
			best := solves[0]
			fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %s\n", g.ID, "-",
				fmt.Sprintf("%dmv", best.Moves), "-", best.CreatedAt.Format("2006-01-02 15:04"))
			continue
		}
		gs, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %s\n", g.ID, "0", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-6.0f  %s\n", g.ID, gs.GamesCount, gs.HighScore, gs.AvgScore,
			gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
