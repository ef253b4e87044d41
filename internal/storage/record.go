package storage

import "github.com/vovakirdan/arcade-portal/internal/core"

// Solver is implemented by puzzles, whose results rank by moves and time
// rather than by score.
type Solver interface {
	Moves() int
	Seconds() int
}

// RecordRound stores the outcome of a finished round of gameID. Solved
// puzzles go to the puzzle table; other games keep positive scores.
// Unfinished rounds and unsolved puzzles are not recorded.
func (s *Store) RecordRound(gameID string, state core.GameState, game any) error {
	if !state.Status.Over() {
		return nil
	}
	if p, ok := game.(Solver); ok {
		if state.Status != core.StatusWon {
			return nil
		}
		_, err := s.SavePuzzleResult(gameID, p.Moves(), p.Seconds())
		return err
	}
	if state.Score <= 0 {
		return nil
	}
	_, err := s.SaveScore(gameID, state.Score)
	return err
}
