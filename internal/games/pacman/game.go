// Package pacman implements a maze chase: eat every pellet while four
// randomly wandering ghosts roam the maze.
package pacman

import (
	"math/rand"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// maxGhostSpeed keeps the wall probe within one cell per tick.
const maxGhostSpeed = 0.5

var (
	playerStart = core.Vec{X: 9, Y: 11}
	ghostStarts = []struct {
		pos   core.Vec
		color string
	}{
		{core.Vec{X: 8, Y: 7}, "red"},
		{core.Vec{X: 9, Y: 7}, "pink"},
		{core.Vec{X: 10, Y: 7}, "cyan"},
		{core.Vec{X: 11, Y: 7}, "orange"},
	}
)

// Game implements the maze chase.
type Game struct {
	cfg    config.PacmanConfig
	pinned bool
	store  *config.Store

	rng        *rand.Rand
	difficulty *config.DifficultyManager
	tick       uint64
	playTicks  int

	grid   *Grid
	player Actor
	ghosts []Ghost

	score  int
	lives  int
	status core.Status
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// New creates a game that reads its configuration from the active store on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.PacmanConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// UseStore binds the game to a config store other than the active one.
func (g *Game) UseStore(s *config.Store) {
	g.store = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pacman"
}

// Reset rebuilds the maze and puts every actor at its start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.pinned {
		g.cfg = config.StoreOrActive(g.store).Pacman()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.playTicks = 0

	g.grid = NewGrid(DefaultLayout)
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.status = core.StatusIdle
	g.respawn()
}

// respawn returns player and ghosts to their start positions.
func (g *Game) respawn() {
	g.player = Actor{
		Pos:     playerStart,
		Dir:     DirRight,
		NextDir: DirRight,
		Speed:   g.cfg.Actors.PlayerSpeed,
	}
	g.ghosts = make([]Ghost, len(ghostStarts))
	for i, s := range ghostStarts {
		g.ghosts[i] = Ghost{
			Actor: Actor{Pos: s.pos, Dir: DirUp, Speed: g.cfg.Actors.GhostSpeed},
			Color: s.color,
			Mode:  ModeScatter,
		}
	}
}

// SetDirection buffers the player's next turn.
func (g *Game) SetDirection(d Direction) {
	g.player.NextDir = d
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if (in.Has(core.ActionConfirm) || in.Has(core.ActionJump)) && g.status == core.StatusIdle {
		g.status = core.StatusPlaying
	}
	if in.Has(core.ActionPause) {
		switch g.status {
		case core.StatusPlaying:
			g.status = core.StatusPaused
		case core.StatusPaused:
			g.status = core.StatusPlaying
		}
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

	if g.status == core.StatusPlaying {
		g.update()
	}

	return core.StepResult{State: g.State()}
}

// update runs one simulation tick: player, pellets, ghosts, collisions.
func (g *Game) update() {
	g.playTicks++

	var eaten core.Point
	var ok bool
	g.player, eaten, ok = StepPlayer(g.player, g.grid)
	if ok {
		if kind, consumed := g.grid.Consume(eaten); consumed {
			g.onEat(kind)
		}
	}
	if g.grid.FoodLeft == 0 {
		g.status = core.StatusWon
		return
	}

	speed := min(g.difficulty.Speed(g.cfg.Actors.GhostSpeed, g.score, g.playTicks), maxGhostSpeed)
	for i := range g.ghosts {
		g.ghosts[i] = StepGhost(g.ghosts[i], g.grid, g.rng, speed, g.cfg.Actors.TurnChance)
		g.ghosts[i].Speed = speed
	}

	if g.cfg.Gameplay.GhostCollision && g.caught() {
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.status = core.StatusGameOver
			return
		}
		g.respawn()
	}
}

// onEat awards points for a pellet.
func (g *Game) onEat(kind FoodKind) {
	if kind == FoodPower {
		g.score += g.cfg.Gameplay.PowerPoints
	} else {
		g.score += g.cfg.Gameplay.FoodPoints
	}
}

// caught reports whether any ghost overlaps the player.
func (g *Game) caught() bool {
	r := g.cfg.Gameplay.CollisionRadius
	for _, gh := range g.ghosts {
		d := gh.Pos.Add(g.player.Pos.Scale(-1))
		if d.Len() < r {
			return true
		}
	}
	return false
}

// Player returns the player actor.
func (g *Game) Player() Actor {
	return g.player
}

// Ghosts returns a copy of the ghosts.
func (g *Game) Ghosts() []Ghost {
	return append([]Ghost(nil), g.ghosts...)
}

// Grid returns the maze.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Status returns the lifecycle phase.
func (g *Game) Status() core.Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.score, g.lives, g.status)
}
