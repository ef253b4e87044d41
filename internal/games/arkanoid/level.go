package arkanoid

import (
	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Brick is a single destructible brick in pixel space.
type Brick struct {
	Rect   core.RectF
	Row    int
	Col    int
	Active bool
}

// BuildBricks lays out a full wall of active bricks, row by row.
func BuildBricks(cfg config.ArkanoidBricks) []Brick {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			bricks = append(bricks, Brick{
				Rect: core.RectF{
					X: float64(col)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
					Y: float64(row)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
					W: cfg.Width,
					H: cfg.Height,
				},
				Row:    row,
				Col:    col,
				Active: true,
			})
		}
	}
	return bricks
}

// CountActive returns the number of bricks still standing.
func CountActive(bricks []Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Active {
			n++
		}
	}
	return n
}
