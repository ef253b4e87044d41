package fifteen

import "github.com/vovakirdan/arcade-portal/internal/core"

// Snapshot captures the complete puzzle state for determinism testing and remote rendering.
type Snapshot struct {
	Tick     uint64      `json:"tick"`
	Board    Board       `json:"board"`
	Moves    int         `json:"moves"`
	Seconds  int         `json:"seconds"`
	Cursor   int         `json:"cursor"`
	Movable  []int       `json:"movable"`
	Solvable bool        `json:"solvable"`
	Status   core.Status `json:"status"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Board:    g.state.Board,
		Moves:    g.state.Moves,
		Seconds:  g.state.Seconds,
		Cursor:   g.cursor,
		Movable:  Neighbors(EmptyIndex(g.state.Board)),
		Solvable: IsSolvable(g.state.Board),
		Status:   g.status,
	}
}

// View returns the snapshot as a JSON-encodable value.
func (g *Game) View() any {
	return g.Snapshot()
}
