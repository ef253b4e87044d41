package fifteen

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := Side*cellWidth + 1
	boardH := Side*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := 3

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	switch g.status {
	case core.StatusPaused:
		drawBoardOverlay(dst, boardX, boardY, boardW, boardH, "PAUSED", "Press P to resume")
	case core.StatusWon:
		line := fmt.Sprintf("%d moves in %s", g.state.Moves, formatClock(g.state.Seconds))
		drawBoardOverlay(dst, boardX, boardY, boardW, boardH, "SOLVED!", line, "Press R to play again")
	}
}

// renderHUD draws the title, move counter and clock.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "FIFTEEN"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.state.Moves))

	clock := formatClock(g.state.Seconds)
	dst.DrawText(boardX+boardW-len(clock), 1, clock)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < Side+1; y++ {
		for x := 0; x < Side+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Side:
				corner = '┐'
			case y == Side && x == 0:
				corner = '└'
			case y == Side && x == Side:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Side:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Side:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < Side {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Side {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for i, val := range g.state.Board {
		cellX := boardX + (i%Side)*cellWidth + 1
		cellY := boardY + (i/Side)*cellHeight + 1

		color := core.ColorDefault
		switch {
		case g.status == core.StatusWon:
			color = core.ColorBrightGreen
		case val != Empty && val == i+1:
			color = core.ColorGreen
		}

		if i == g.cursor && !g.status.Over() {
			dst.SetColor(cellX, cellY, '[', core.ColorYellow)
			dst.SetColor(cellX+cellWidth-2, cellY, ']', core.ColorYellow)
		}
		if val == Empty {
			continue
		}

		valStr := strconv.Itoa(val)
		padLeft := (cellWidth - 1 - len(valStr)) / 2
		dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
	}
}

// drawBoardOverlay draws a framed message centered on the board.
func drawBoardOverlay(dst *core.Screen, boardX, boardY, boardW, boardH int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := boardX + boardW/2 - boxW/2
	boxY := boardY + boardH/2 - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, line := range lines {
		dst.DrawText(boardX+boardW/2-len(line)/2, boxY+1+i, line)
	}
}

// formatClock renders seconds as mm:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Cursor | Enter/Space: Slide | P: Pause | R: Restart | Q: Quit"
}
