package pacman

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Each maze cell is two terminal columns wide so the maze keeps its aspect.
const cellW = 2

var ghostColors = map[string]core.Color{
	"red":    core.ColorBrightRed,
	"pink":   core.ColorBrightMagenta,
	"cyan":   core.ColorBrightCyan,
	"orange": core.ColorOrange,
}

// Render draws the maze, actors and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := (dst.Width() - g.grid.Width*cellW) / 2
	offY := 2

	hud := fmt.Sprintf("Score: %d  Lives: %d  Pellets: %d", g.score, g.lives, g.grid.FoodLeft)
	dst.DrawText(offX, 0, hud)

	for y, row := range g.grid.Rows() {
		for x, ch := range row {
			px := offX + x*cellW
			py := offY + y
			switch ch {
			case '#':
				dst.SetColor(px, py, '█', core.ColorBlue)
				dst.SetColor(px+1, py, '█', core.ColorBlue)
			case '.':
				dst.SetColor(px, py, '·', core.ColorWhite)
			case 'o':
				dst.SetColor(px, py, 'o', core.ColorBrightYellow)
			}
		}
	}

	for _, gh := range g.ghosts {
		g.drawActor(dst, offX, offY, gh.Pos, 'M', ghostColors[gh.Color])
	}
	g.drawActor(dst, offX, offY, g.player.Pos, playerGlyph(g.player.Dir), core.ColorYellow)

	switch g.status {
	case core.StatusIdle:
		dst.DrawOverlay("PACMAN", "Press Enter to start")
	case core.StatusPaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case core.StatusWon:
		dst.DrawOverlay("MAZE CLEARED!", fmt.Sprintf("Score: %d  R: restart", g.score))
	case core.StatusGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  R: restart", g.score))
	}
}

// drawActor places a glyph at the rounded actor position.
func (g *Game) drawActor(dst *core.Screen, offX, offY int, pos core.Vec, glyph rune, color core.Color) {
	x := int(math.Round(pos.X))
	if x >= g.grid.Width {
		x = 0
	}
	y := int(math.Round(pos.Y))
	dst.SetColor(offX+x*cellW, offY+y, glyph, color)
}

// playerGlyph returns a mouth facing the direction of travel.
func playerGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return 'V'
	case DirDown:
		return 'Λ'
	case DirLeft:
		return '>'
	default:
		return '<'
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Steer | Enter: Start | P: Pause | R: Restart | Q: Quit"
}
