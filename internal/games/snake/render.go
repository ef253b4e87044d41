package snake

import (
	"fmt"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	offX := (dst.Width() - w - 2) / 2
	offY := hudHeight

	// Border around the board
	dst.DrawBox(core.NewRect(offX, offY, w+2, h+2))

	// Food
	if g.food.X >= 0 {
		dst.SetColor(offX+1+g.food.X, offY+1+g.food.Y, '*', core.ColorRed)
	}

	// Snake, tail first so the head wins on overlap
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		if i == 0 {
			dst.SetColor(offX+1+seg.X, offY+1+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(offX+1+seg.X, offY+1+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch g.status {
	case core.StatusIdle:
		dst.DrawOverlay("Snake", "Press Enter to start")
	case core.StatusPaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.StatusGameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  Enter: play again", g.score))
	case core.StatusWon:
		dst.DrawOverlay("Board full!", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %dms", g.score, len(g.snake), g.interval)
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Turn | Enter: Start | P: Pause | R: Restart | Q: Quit"
}
