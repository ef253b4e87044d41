package storage

import (
	"fmt"
	"time"
)

// PuzzleResult is a solved puzzle. Fewer moves rank higher, ties are broken
// by time.
type PuzzleResult struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	Moves     int       `json:"moves"`
	Seconds   int       `json:"seconds"`
	CreatedAt time.Time `json:"created_at"`
}

// SavePuzzleResult records a solved puzzle.
func (s *Store) SavePuzzleResult(gameID string, moves, seconds int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO puzzle_results (game_id, moves, seconds) VALUES (?, ?, ?)",
		gameID, moves, seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestPuzzleResults returns the best N results for the given puzzle.
func (s *Store) BestPuzzleResults(gameID string, limit int) ([]PuzzleResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, moves, seconds, created_at
		 FROM puzzle_results
		 WHERE game_id = ?
		 ORDER BY moves ASC, seconds ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle results: %w", err)
	}
	defer rows.Close()

	var results []PuzzleResult
	for rows.Next() {
		var r PuzzleResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Moves, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}
