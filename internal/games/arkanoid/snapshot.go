package arkanoid

import "github.com/vovakirdan/arcade-portal/internal/core"

// BrickView is the serialisable state of one brick.
type BrickView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Row    int     `json:"row"`
	Active bool    `json:"active"`
}

// Snapshot captures the complete game state for determinism testing and remote rendering.
type Snapshot struct {
	Tick   uint64      `json:"tick"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Paddle core.RectF  `json:"paddle"`
	BallX  float64     `json:"ball_x"`
	BallY  float64     `json:"ball_y"`
	BallVX float64     `json:"ball_vx"`
	BallVY float64     `json:"ball_vy"`
	Radius float64     `json:"radius"`
	Bricks []BrickView `json:"bricks"`
	Score  int         `json:"score"`
	Lives  int         `json:"lives"`
	Status core.Status `json:"status"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]BrickView, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = BrickView{X: b.Rect.X, Y: b.Rect.Y, W: b.Rect.W, H: b.Rect.H, Row: b.Row, Active: b.Active}
	}
	return Snapshot{
		Tick:   g.tick,
		Width:  g.cfg.Field.Width,
		Height: g.cfg.Field.Height,
		Paddle: g.paddle,
		BallX:  g.ball.Pos.X,
		BallY:  g.ball.Pos.Y,
		BallVX: g.ball.Vel.X,
		BallVY: g.ball.Vel.Y,
		Radius: g.ball.Radius,
		Bricks: bricks,
		Score:  g.score,
		Lives:  g.lives,
		Status: g.status,
	}
}

// View returns the snapshot as a JSON-encodable value.
func (g *Game) View() any {
	return g.Snapshot()
}
