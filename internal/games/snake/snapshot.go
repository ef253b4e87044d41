package snake

import "github.com/vovakirdan/arcade-portal/internal/core"

// Snapshot captures the complete game state for determinism testing and remote rendering.
type Snapshot struct {
	Tick       uint64       `json:"tick"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Snake      []core.Point `json:"snake"`
	Food       core.Point   `json:"food"`
	Dir        string       `json:"dir"`
	Score      int          `json:"score"`
	IntervalMs int          `json:"interval_ms"`
	Status     core.Status  `json:"status"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Width:      g.cfg.Board.Width,
		Height:     g.cfg.Board.Height,
		Snake:      g.Body(),
		Food:       g.food,
		Dir:        g.direction.String(),
		Score:      g.score,
		IntervalMs: g.interval,
		Status:     g.status,
	}
}

// View returns the snapshot as a JSON-encodable value.
func (g *Game) View() any {
	return g.Snapshot()
}
