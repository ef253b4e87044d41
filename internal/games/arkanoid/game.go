// Package arkanoid implements a brick breaker in continuous pixel space:
// bounce the ball off the paddle until the wall of bricks is gone.
package arkanoid

import (
	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// keyHoldTicks is how long a key press from a terminal counts as held.
// Terminals report no key-up, so autorepeat keeps refreshing the latch.
const keyHoldTicks = 8

// Game implements the brick breaker.
type Game struct {
	cfg    config.ArkanoidConfig
	pinned bool
	store  *config.Store

	tick uint64

	paddle core.RectF
	ball   Ball
	bricks []Brick

	// Intents, consumed at the next tick.
	keyLeft  bool
	keyRight bool
	latchL   int
	latchR   int
	pointerX float64
	hasPoint bool

	score  int
	lives  int
	status core.Status
}

func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
}

// New creates a game that reads its configuration from the active store on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.ArkanoidConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// UseStore binds the game to a config store other than the active one.
func (g *Game) UseStore(s *config.Store) {
	g.store = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset builds a fresh paddle, ball and brick wall.
func (g *Game) Reset(_ core.RuntimeConfig) {
	if !g.pinned {
		g.cfg = config.StoreOrActive(g.store).Arkanoid()
	}
	g.tick = 0

	g.paddle = core.RectF{
		X: (g.cfg.Field.Width - g.cfg.Paddle.Width) / 2,
		Y: g.cfg.Paddle.Y,
		W: g.cfg.Paddle.Width,
		H: g.cfg.Paddle.Height,
	}
	g.ball = g.spawnBall()
	g.bricks = BuildBricks(g.cfg.Bricks)

	g.keyLeft, g.keyRight = false, false
	g.latchL, g.latchR = 0, 0
	g.hasPoint = false

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.status = core.StatusIdle
}

// spawnBall returns the ball resting above the paddle center with the
// initial velocity.
func (g *Game) spawnBall() Ball {
	r := g.cfg.Physics.BallRadius
	return Ball{
		Pos:    core.Vec{X: g.cfg.Field.Width / 2, Y: g.cfg.Paddle.Y - r},
		Vel:    core.Vec{X: g.cfg.Physics.BallSpeedX, Y: g.cfg.Physics.BallSpeedY},
		Radius: r,
	}
}

// SetKeyState records which paddle keys are held.
func (g *Game) SetKeyState(left, right bool) {
	g.keyLeft = left
	g.keyRight = right
}

// SetPointerX records a pointer position to center the paddle on at the next tick.
func (g *Game) SetPointerX(x float64) {
	g.pointerX = x
	g.hasPoint = true
}

// Start begins play from idle.
func (g *Game) Start() {
	if g.status == core.StatusIdle {
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

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case in.Has(core.ActionConfirm):
		g.Start()
	case in.Has(core.ActionJump):
		if g.status == core.StatusIdle {
			g.Start()
		} else {
			g.TogglePause()
		}
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	if in.Has(core.ActionLeft) {
		g.latchL, g.latchR = keyHoldTicks, 0
	}
	if in.Has(core.ActionRight) {
		g.latchR, g.latchL = keyHoldTicks, 0
	}
	if in.Pointer != nil {
		g.SetPointerX(in.Pointer.X)
	}

	if g.status == core.StatusPlaying {
		g.update()
	}
	if g.latchL > 0 {
		g.latchL--
	}
	if g.latchR > 0 {
		g.latchR--
	}

	return core.StepResult{State: g.State()}
}

// update runs one simulation tick: paddle, ball, bricks, win check.
func (g *Game) update() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	g.paddle = MovePaddle(g.paddle, g.keyLeft || g.latchL > 0, g.keyRight || g.latchR > 0, g.cfg.Physics.PaddleSpeed, w)
	if g.hasPoint {
		g.paddle = PointPaddle(g.paddle, g.pointerX, w)
		g.hasPoint = false
	}

	var out BallOutcome
	g.ball, out = StepBall(g.ball, g.paddle, w, h, g.cfg.Physics.MaxAngle)
	if out == OutcomeLost {
		g.ball = g.spawnBall()
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.status = core.StatusGameOver
			return
		}
	}

	var hits int
	g.ball, hits = HitBricks(g.ball, g.bricks)
	g.score += hits * g.cfg.Gameplay.BrickPoints

	if CountActive(g.bricks) == 0 {
		g.score += g.cfg.Gameplay.LifeBonus * g.lives
		g.status = core.StatusWon
	}
}

// Paddle returns the paddle rectangle.
func (g *Game) Paddle() core.RectF {
	return g.paddle
}

// Ball returns the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Bricks returns a copy of the brick wall.
func (g *Game) Bricks() []Brick {
	return append([]Brick(nil), g.bricks...)
}

// Status returns the lifecycle phase.
func (g *Game) Status() core.Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.score, g.lives, g.status)
}
