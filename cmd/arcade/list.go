package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games in the portal",
	Long: `Lists every game in the portal with its difficulty presets and the
best result recorded in the scores database.`,
	Run: runList,
}

// listRow is one printed line of the game list.
type listRow struct {
	id, title, presets, best string
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	rows := make([]listRow, 0, len(games))
	idW, titleW, presetW := len("ID"), len("Title"), len("Presets")
	for _, g := range games {
		r := listRow{id: g.ID, title: g.Title, presets: "-", best: bestOf(store, g.ID)}
		if config.HasPresets(g.ID) {
			r.presets = presetNames()
		}
		idW = max(idW, len(r.id))
		titleW = max(titleW, len(r.title))
		presetW = max(presetW, len(r.presets))
		rows = append(rows, r)
	}

	fmt.Printf("  %-*s  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", presetW, "Presets", "Best")
	fmt.Printf("  %s  %s  %s  %s\n",
		strings.Repeat("-", idW), strings.Repeat("-", titleW), strings.Repeat("-", presetW), "----")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-*s  %s\n", idW, r.id, titleW, r.title, presetW, r.presets, r.best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' for one game or 'arcade menu' for the portal.")
}

func presetNames() string {
	names := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

// bestOf returns the best recorded result of a game, or "-".
func bestOf(store *storage.Store, gameID string) string {
	if store == nil {
		return "-"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return "-"
	}
	if _, puzzle := game.(storage.Solver); puzzle {
		results, err := store.BestPuzzleResults(gameID, 1)
		if err != nil || len(results) == 0 {
			return "-"
		}
		return fmt.Sprintf("%d moves", results[0].Moves)
	}
	high, err := store.HighScore(gameID)
	if err != nil || high == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", high)
}
