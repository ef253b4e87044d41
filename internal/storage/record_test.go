package storage

import (
	"testing"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

type solvedPuzzle struct{ moves, seconds int }

func (p solvedPuzzle) Moves() int   { return p.moves }
func (p solvedPuzzle) Seconds() int { return p.seconds }

func TestRecordRound(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		id    string
		state core.GameState
		game  any
	}{
		{"scored game over", "snake", core.NewGameState(40, 0, core.StatusGameOver), nil},
		{"zero score skipped", "snake", core.NewGameState(0, 0, core.StatusGameOver), nil},
		{"still playing skipped", "snake", core.NewGameState(90, 0, core.StatusPlaying), nil},
		{"solved puzzle", "fifteen", core.NewGameState(77, 0, core.StatusWon), solvedPuzzle{77, 31}},
		{"unsolved puzzle skipped", "fifteen", core.NewGameState(5, 0, core.StatusPaused), solvedPuzzle{5, 2}},
	}
	for _, tt := range tests {
		if err := store.RecordRound(tt.id, tt.state, tt.game); err != nil {
			t.Fatalf("%s: RecordRound() failed: %v", tt.name, err)
		}
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Errorf("snake scores = %v, want a single 40", scores)
	}

	puzzles, err := store.BestPuzzleResults("fifteen", 10)
	if err != nil {
		t.Fatalf("BestPuzzleResults() failed: %v", err)
	}
	if len(puzzles) != 1 || puzzles[0].Moves != 77 || puzzles[0].Seconds != 31 {
		t.Errorf("puzzle results = %v, want one 77 moves/31s", puzzles)
	}

	// Puzzles never land in the score table.
	if fifteen, _ := store.AllScores("fifteen"); len(fifteen) != 0 {
		t.Errorf("fifteen scores = %v, want none", fifteen)
	}
}
