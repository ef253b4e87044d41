package pacman

import "github.com/vovakirdan/arcade-portal/internal/core"

// ActorView is the serialisable position of an actor.
type ActorView struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Dir   string    `json:"dir"`
	Color string    `json:"color,omitempty"`
	Mode  GhostMode `json:"mode,omitempty"`
}

// Snapshot captures the complete game state for determinism testing and remote rendering.
type Snapshot struct {
	Tick     uint64      `json:"tick"`
	Maze     []string    `json:"maze"`
	FoodLeft int         `json:"food_left"`
	Player   ActorView   `json:"player"`
	Ghosts   []ActorView `json:"ghosts"`
	Score    int         `json:"score"`
	Lives    int         `json:"lives"`
	Status   core.Status `json:"status"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	ghosts := make([]ActorView, len(g.ghosts))
	for i, gh := range g.ghosts {
		ghosts[i] = ActorView{X: gh.Pos.X, Y: gh.Pos.Y, Dir: gh.Dir.String(), Color: gh.Color, Mode: gh.Mode}
	}
	return Snapshot{
		Tick:     g.tick,
		Maze:     g.grid.Rows(),
		FoodLeft: g.grid.FoodLeft,
		Player:   ActorView{X: g.player.Pos.X, Y: g.player.Pos.Y, Dir: g.player.Dir.String()},
		Ghosts:   ghosts,
		Score:    g.score,
		Lives:    g.lives,
		Status:   g.status,
	}
}

// View returns the snapshot as a JSON-encodable value.
func (g *Game) View() any {
	return g.Snapshot()
}
