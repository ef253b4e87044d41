// Package snake implements classic Snake on a fixed open grid.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell step for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Initial layout of every round.
var (
	startBody = []core.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}
	startFood = core.Point{X: 5, Y: 5}
)

// Game implements the Snake game.
type Game struct {
	cfg    config.SnakeConfig
	pinned bool
	store  *config.Store

	rng  *rand.Rand
	tick uint64

	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Intent buffer, committed on the next move
	food      core.Point

	score    int
	status   core.Status
	interval int     // Current move interval in ms
	accumMs  float64 // Host time not yet spent on moves
	tickMs   float64
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// New creates a Snake game that reads its configuration from the active store on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with a fixed configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// UseStore binds the game to a config store other than the active one.
func (g *Game) UseStore(s *config.Store) {
	g.store = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset puts the snake back at its starting position and waits for a start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.pinned {
		g.cfg = config.StoreOrActive(g.store).Snake()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickMs = cfg.TickMillis()

	g.resetRound()
	g.food = startFood
	g.status = core.StatusIdle
}

// resetRound restores body, direction, score and speed.
func (g *Game) resetRound() {
	g.snake = append([]core.Point(nil), startBody...)
	g.direction = DirUp
	g.nextDir = DirUp
	g.score = 0
	g.interval = g.cfg.Timing.IntervalMs
	g.accumMs = 0
}

// Start begins a round from idle or after a game over. The food is moved to
// a random free cell.
func (g *Game) Start() {
	switch g.status {
	case core.StatusIdle, core.StatusGameOver, core.StatusWon:
		g.resetRound()
		g.spawnFood()
		g.status = core.StatusPlaying
	}
}

// TogglePause switches between playing and paused.
func (g *Game) TogglePause() {
	switch g.status {
	case core.StatusPlaying:
		g.status = core.StatusPaused
	case core.StatusPaused:
		g.status = core.StatusPlaying
	}
}

// SetDirection buffers a direction change for the next move. It is ignored
// unless the game is playing, and when it would reverse the snake.
func (g *Game) SetDirection(d Direction) {
	if g.status != core.StatusPlaying {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// Step converts host ticks into snake moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		g.Start()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	switch {
	case in.Has(core.ActionUp):
		g.SetDirection(DirUp)
	case in.Has(core.ActionDown):
		g.SetDirection(DirDown)
	case in.Has(core.ActionLeft):
		g.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		g.SetDirection(DirRight)
	}

	if g.status != core.StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.accumMs += g.tickMs
	if g.interval > 0 && g.accumMs >= float64(g.interval) {
		g.accumMs -= float64(g.interval)
		g.Tick()
	}

	return core.StepResult{State: g.State()}
}

// Tick moves the snake one cell.
func (g *Game) Tick() {
	if g.status != core.StatusPlaying || len(g.snake) == 0 {
		return
	}

	if g.nextDir != g.direction.Opposite() {
		g.direction = g.nextDir
	}
	g.nextDir = g.direction

	head := g.snake[0].Add(g.direction.Delta())

	if !g.inBounds(head) || g.isSnakeAt(head) {
		g.status = core.StatusGameOver
		return
	}

	g.snake = append([]core.Point{head}, g.snake...)

	if head == g.food {
		g.score += g.cfg.Gameplay.FoodReward
		g.interval = max(g.interval-g.cfg.Timing.DecrementMs, g.cfg.Timing.FloorMs)
		g.spawnFood()
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// inBounds reports whether p is on the board.
func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cfg.Board.Width && p.Y >= 0 && p.Y < g.cfg.Board.Height
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food at a random cell not covered by the snake.
// A full board ends the round as a win.
func (g *Game) spawnFood() {
	var free []core.Point
	for y := 0; y < g.cfg.Board.Height; y++ {
		for x := 0; x < g.cfg.Board.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.status = core.StatusWon
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []core.Point {
	return append([]core.Point(nil), g.snake...)
}

// Food returns the food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Direction returns the direction of the last move.
func (g *Game) Direction() Direction {
	return g.direction
}

// Interval returns the current move interval in milliseconds.
func (g *Game) Interval() int {
	return g.interval
}

// Status returns the lifecycle phase.
func (g *Game) Status() core.Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.score, 0, g.status)
}
