package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// viewport maps playfield pixels onto the framed area of a screen.
type viewport struct {
	left, top int
	sx, sy    float64
}

func (v viewport) cell(p core.Vec) (int, int) {
	return v.left + int(p.X*v.sx), v.top + int(p.Y*v.sy)
}

// Render draws the HUD, the framed playfield and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 10 {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	hud := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, hud)
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(w-len(lives)-1, 0, lives)
	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d", CountActive(g.bricks)))

	dst.DrawBox(core.NewRect(0, 1, w, h-1))
	vp := viewport{
		left: 1,
		top:  2,
		sx:   float64(w-2) / g.cfg.Field.Width,
		sy:   float64(h-3) / g.cfg.Field.Height,
	}

	for _, b := range g.bricks {
		if !b.Active {
			continue
		}
		x0, y := vp.cell(core.Vec{X: b.Rect.X, Y: b.Rect.Y})
		x1, _ := vp.cell(core.Vec{X: b.Rect.Right(), Y: b.Rect.Y})
		color := rowColors[b.Row%len(rowColors)]
		for x := x0; x < max(x1, x0+1); x++ {
			dst.SetColor(x, y, '█', color)
		}
	}

	px0, py := vp.cell(core.Vec{X: g.paddle.X, Y: g.paddle.Y})
	px1, _ := vp.cell(core.Vec{X: g.paddle.Right(), Y: g.paddle.Y})
	for x := px0; x < max(px1, px0+1); x++ {
		dst.SetColor(x, py, '▀', core.ColorWhite)
	}

	bx, by := vp.cell(g.ball.Pos)
	dst.SetColor(bx, by, '●', core.ColorBrightWhite)

	switch g.status {
	case core.StatusIdle:
		dst.DrawOverlay("ARKANOID", "Press Space to start")
	case core.StatusPaused:
		dst.DrawOverlay("PAUSED", "Press Space or P to resume")
	case core.StatusWon:
		dst.DrawOverlay("ALL BRICKS CLEARED!", fmt.Sprintf("Score: %d  R: restart", g.score))
	case core.StatusGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  R: restart", g.score))
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→ or A/D: Move | Space: Start/Pause | R: Restart | Q: Quit"
}
