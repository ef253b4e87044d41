package pacman

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

func newTestGame(t *testing.T, mutate func(*config.PacmanConfig)) *Game {
	t.Helper()
	cfg := config.DefaultPacmanConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func player(x, y float64, dir, next Direction) Actor {
	return Actor{Pos: core.Vec{X: x, Y: y}, Dir: dir, NextDir: next, Speed: 1.0 / 8}
}

func assertNotInWall(t *testing.T, g *Grid, pos core.Vec) {
	t.Helper()
	x, y := int(math.Floor(pos.X)), int(math.Floor(pos.Y))
	require.False(t, g.IsWall(x, y), "actor at %v is inside a wall", pos)
}

func TestGridParse(t *testing.T) {
	g := NewGrid(DefaultLayout)
	assert.Equal(t, 19, g.Width)
	assert.Equal(t, 15, g.Height)

	want := 0
	for _, row := range DefaultLayout {
		want += strings.Count(row, ".") + strings.Count(row, "o")
	}
	assert.Equal(t, want, g.FoodLeft)

	c, ok := g.At(1, 2)
	require.True(t, ok)
	assert.Equal(t, Cell{Kind: CellFood, Food: FoodPower}, c)

	c, _ = g.At(9, 7) // ghost house marker is open floor
	assert.Equal(t, CellEmpty, c.Kind)

	assert.True(t, g.IsWall(0, 0))
	assert.False(t, g.IsWall(-1, 7), "outside the grid is open")
	assert.False(t, g.IsWall(19, 7))
	assert.Equal(t, DefaultLayout[0], g.Rows()[0])
}

func TestConsume(t *testing.T) {
	g := NewGrid(DefaultLayout)
	before := g.FoodLeft

	kind, ok := g.Consume(core.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, FoodNormal, kind)
	assert.Equal(t, before-1, g.FoodLeft)
	c, _ := g.At(1, 1)
	assert.Equal(t, CellEmpty, c.Kind)

	_, ok = g.Consume(core.Point{X: 1, Y: 1})
	assert.False(t, ok, "a pellet is eaten once")
	assert.Equal(t, before-1, g.FoodLeft)

	kind, ok = g.Consume(core.Point{X: 17, Y: 2})
	require.True(t, ok)
	assert.Equal(t, FoodPower, kind)

	_, ok = g.Consume(core.Point{X: 0, Y: 0})
	assert.False(t, ok, "walls are not food")
	_, ok = g.Consume(core.Point{X: -1, Y: 7})
	assert.False(t, ok)
}

func TestStepPlayerMovesAndReportsFood(t *testing.T) {
	g := NewGrid(DefaultLayout)

	next, eaten, ok := StepPlayer(player(9, 11, DirRight, DirRight), g)
	assert.Equal(t, core.Vec{X: 9.125, Y: 11}, next.Pos)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 9, Y: 11}, eaten)

	c, _ := g.At(9, 11)
	assert.Equal(t, CellFood, c.Kind, "StepPlayer does not mutate the grid")
}

func TestPlayerStopsAtWall(t *testing.T) {
	g := NewGrid(DefaultLayout)

	p := player(17, 11, DirRight, DirRight)
	next, _, _ := StepPlayer(p, g)
	assert.Equal(t, p.Pos, next.Pos)

	// Walking right from 15 ends flush against the wall at 18.
	p = player(15, 11, DirRight, DirRight)
	for i := 0; i < 40; i++ {
		p, _, _ = StepPlayer(p, g)
		assertNotInWall(t, g, p.Pos)
	}
	assert.Equal(t, core.Vec{X: 17, Y: 11}, p.Pos)
}

func TestTurnOnlyWhenAligned(t *testing.T) {
	g := NewGrid(DefaultLayout)

	p := player(3.5, 11, DirRight, DirUp)
	p, _, _ = StepPlayer(p, g)
	assert.Equal(t, DirRight, p.Dir)
	assert.Equal(t, 3.625, p.Pos.X)

	p = player(4, 11, DirRight, DirUp) // (4,10) is open
	p, _, _ = StepPlayer(p, g)
	assert.Equal(t, DirUp, p.Dir)
	assert.Equal(t, core.Vec{X: 4, Y: 10.875}, p.Pos)

	p = player(2, 11, DirRight, DirUp) // (2,10) is a wall
	p, _, _ = StepPlayer(p, g)
	assert.Equal(t, DirRight, p.Dir)
	assert.Equal(t, DirUp, p.NextDir, "the turn stays buffered")
}

func TestWrapCorridor(t *testing.T) {
	g := NewGrid(DefaultLayout)

	p, _, _ := StepPlayer(player(0, 7, DirLeft, DirLeft), g)
	assert.Equal(t, 18.0, p.Pos.X)

	p = player(18, 7, DirRight, DirRight)
	for i := 0; i < 8; i++ {
		p, _, _ = StepPlayer(p, g)
	}
	assert.Equal(t, 0.0, p.Pos.X)
}

func TestGhostContinuesWhenOpen(t *testing.T) {
	g := NewGrid(DefaultLayout)
	gh := Ghost{Actor: Actor{Pos: core.Vec{X: 1, Y: 3}, Dir: DirRight}, Mode: ModeScatter}

	gh = StepGhost(gh, g, rand.New(rand.NewSource(1)), 1.0/9, 0)
	assert.Equal(t, DirRight, gh.Dir)
	assert.InDelta(t, 1+1.0/9, gh.Pos.X, 1e-12)
	assert.Equal(t, ModeScatter, gh.Mode)
}

func TestGhostBlockedTurns(t *testing.T) {
	g := NewGrid(DefaultLayout)
	rng := rand.New(rand.NewSource(3))
	gh := Ghost{Actor: Actor{Pos: core.Vec{X: 1, Y: 1}, Dir: DirUp}}

	for i := 0; i < 20; i++ {
		gh = StepGhost(gh, g, rng, 1.0/9, 0)
		if gh.Pos != (core.Vec{X: 1, Y: 1}) {
			break
		}
	}
	assert.NotEqual(t, core.Vec{X: 1, Y: 1}, gh.Pos, "a blocked ghost eventually finds a way out")
}

func TestGhostsNeverInWalls(t *testing.T) {
	g := NewGrid(DefaultLayout)
	rng := rand.New(rand.NewSource(99))
	ghosts := []Ghost{
		{Actor: Actor{Pos: core.Vec{X: 8, Y: 7}, Dir: DirUp}},
		{Actor: Actor{Pos: core.Vec{X: 10, Y: 7}, Dir: DirUp}},
		{Actor: Actor{Pos: core.Vec{X: 1, Y: 11}, Dir: DirRight}},
	}
	for step := 0; step < 5000; step++ {
		for i := range ghosts {
			ghosts[i] = StepGhost(ghosts[i], g, rng, 0.13, 0.05)
			assertNotInWall(t, g, ghosts[i].Pos)
			require.True(t, ghosts[i].Pos.Y >= 0 && ghosts[i].Pos.Y < float64(g.Height))
		}
	}
}

func TestPlayerNeverInWall(t *testing.T) {
	g := newTestGame(t, func(c *config.PacmanConfig) { c.Gameplay.GhostCollision = false })
	g.Step(press(core.ActionConfirm))

	rng := rand.New(rand.NewSource(5))
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	for i := 0; i < 4000; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(dirs[rng.Intn(len(dirs))])
		}
		g.Step(in)
		assertNotInWall(t, g.Grid(), g.Player().Pos)
	}
}

func TestEatingScores(t *testing.T) {
	g := newTestGame(t, nil)
	food := g.Grid().FoodLeft

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, 10, g.State().Score)
	assert.Equal(t, food-1, g.Grid().FoodLeft)

	g.onEat(FoodPower)
	assert.Equal(t, 60, g.State().Score)
	assert.Greater(t, g.cfg.Gameplay.PowerPoints, g.cfg.Gameplay.FoodPoints)
}

func TestIdleAndPause(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.Player().Pos

	g.Step(core.NewInputFrame())
	assert.Equal(t, core.StatusIdle, g.Status())
	assert.Equal(t, start, g.Player().Pos)

	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionPause))
	require.Equal(t, core.StatusPaused, g.Status())

	frozen := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, frozen.Player, g.Snapshot().Player)
	assert.Equal(t, frozen.Ghosts, g.Snapshot().Ghosts)
}

func TestWinWhenFoodCleared(t *testing.T) {
	g := newTestGame(t, func(c *config.PacmanConfig) { c.Gameplay.GhostCollision = false })
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if x == 9 && y == 11 {
				continue
			}
			g.grid.Consume(core.Point{X: x, Y: y})
		}
	}
	require.Equal(t, 1, g.grid.FoodLeft)

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, core.StatusWon, g.Status())
	assert.True(t, g.State().GameOver)
}

func TestGhostCollisionCostsLife(t *testing.T) {
	g := newTestGame(t, nil)
	g.ghosts[0].Pos = g.player.Pos

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, 2, g.State().Lives)
	assert.Equal(t, core.StatusPlaying, g.Status())
	assert.Equal(t, playerStart, g.Player().Pos, "player respawns")
	assert.Equal(t, core.Vec{X: 8, Y: 7}, g.Ghosts()[0].Pos, "ghosts respawn")
}

func TestLastLifeEndsGameOnce(t *testing.T) {
	g := newTestGame(t, func(c *config.PacmanConfig) { c.Gameplay.Lives = 1 })
	g.ghosts[0].Pos = g.player.Pos

	g.Step(press(core.ActionConfirm))
	require.Equal(t, core.StatusGameOver, g.Status())
	assert.Equal(t, 0, g.State().Lives)

	frozen := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(press(core.ActionLeft))
	}
	after := g.Snapshot()
	assert.Equal(t, frozen.Player, after.Player)
	assert.Equal(t, frozen.Lives, after.Lives)
}

func TestGhostCollisionDisabled(t *testing.T) {
	g := newTestGame(t, func(c *config.PacmanConfig) { c.Gameplay.GhostCollision = false })
	g.ghosts[0].Pos = g.player.Pos

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, 3, g.State().Lives)
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		switch i {
		case 0:
			in.Set(core.ActionConfirm)
		case 100:
			in.Set(core.ActionUp)
		case 250:
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "Press Enter to start")
}
