// Package fifteen implements the 15-tile sliding puzzle.
package fifteen

import (
	"math/rand"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// Game wraps the pure board engine with a cursor, a timer and the round status.
type Game struct {
	cfg    config.FifteenConfig
	pinned bool // cfg was given explicitly; ignore the config store
	store  *config.Store

	rng  *rand.Rand
	tick uint64

	state  State
	status core.Status
	cursor int

	tickMs    float64
	elapsedMs float64

	screenW int
}

func init() {
	registry.Register("fifteen", func() registry.Game {
		return New()
	})
}

// New creates a puzzle that reads its configuration from the active store on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a puzzle with a fixed configuration.
func NewWithConfig(cfg config.FifteenConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// UseStore binds the game to a config store other than the active one.
func (g *Game) UseStore(s *config.Store) {
	g.store = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "fifteen"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fifteen"
}

// Reset deals a new board and stops the timer.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.pinned {
		g.cfg = config.StoreOrActive(g.store).Fifteen()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickMs = cfg.TickMillis()
	g.elapsedMs = 0
	g.screenW = cfg.ScreenW

	var board Board
	if g.cfg.Shuffle.Mode == config.ShufflePermutation {
		board = InitBoard(g.rng)
	} else {
		moves := g.cfg.Shuffle.Moves
		if moves <= 0 {
			moves = config.DefaultFifteenConfig().Shuffle.Moves
		}
		board = ShuffleSolvable(g.rng, moves)
	}

	g.state = State{Board: board, Won: IsWin(board)}
	g.status = core.StatusIdle
	if g.state.Won {
		g.status = core.StatusWon
	}
	g.cursor = EmptyIndex(board)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		switch g.status {
		case core.StatusPlaying:
			g.status = core.StatusPaused
		case core.StatusPaused:
			g.status = core.StatusPlaying
		}
	}

	if g.status == core.StatusPaused || g.status.Over() {
		return core.StepResult{State: g.State()}
	}

	if g.status == core.StatusPlaying {
		g.elapsedMs += g.tickMs
		g.state.Seconds = int(g.elapsedMs / 1000)
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		g.Click(g.cursor)
	}

	if p := in.Pointer; p != nil && p.Click {
		if idx, ok := CellAt(p.X, p.Y); ok {
			g.cursor = idx
			g.Click(idx)
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies at most one cursor step per tick.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/Side, g.cursor%Side
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}
	row = core.Clamp(row, 0, Side-1)
	col = core.Clamp(col, 0, Side-1)
	g.cursor = row*Side + col
}

// Click slides the tile at index if it is next to the blank.
// The first legal slide starts the timer.
func (g *Game) Click(index int) {
	if g.status == core.StatusPaused || g.status.Over() {
		return
	}
	next := ApplyMove(g.state, index)
	if next.Moves == g.state.Moves {
		return
	}
	g.state = next
	if g.status == core.StatusIdle {
		g.status = core.StatusPlaying
	}
	if g.state.Won {
		g.status = core.StatusWon
	}
}

// CellAt maps a pointer position in board cells to a slot index.
func CellAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x >= Side || y >= Side {
		return 0, false
	}
	return int(y)*Side + int(x), true
}

// Moves returns the number of slides made this round.
func (g *Game) Moves() int {
	return g.state.Moves
}

// Seconds returns the time spent solving so far.
func (g *Game) Seconds() int {
	return g.state.Seconds
}

// Board returns the current tiles.
func (g *Game) Board() Board {
	return g.state.Board
}

// Status returns the lifecycle phase.
func (g *Game) Status() core.Status {
	return g.status
}

// State returns the current game state. The score is the move count.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.state.Moves, 0, g.status)
}
