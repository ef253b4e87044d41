package fifteen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

func newTestGame(t *testing.T, mode config.ShuffleMode) *Game {
	t.Helper()
	g := NewWithConfig(config.FifteenConfig{Shuffle: config.FifteenShuffle{Mode: mode, Moves: 30}})
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// movableIndex returns a slot that can slide into the blank.
func movableIndex(g *Game) int {
	return Neighbors(EmptyIndex(g.Board()))[0]
}

func TestResetStartsIdle(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)

	assert.Equal(t, core.StatusIdle, g.Status())
	assert.True(t, Valid(g.Board()))
	assert.True(t, IsSolvable(g.Board()))
	assert.Equal(t, 0, g.Moves())
	assert.Equal(t, EmptyIndex(g.Board()), g.cursor)
}

func TestPermutationModeIsValid(t *testing.T) {
	g := newTestGame(t, config.ShufflePermutation)
	assert.True(t, Valid(g.Board()))
}

func TestDeterministicDeal(t *testing.T) {
	a := newTestGame(t, config.ShuffleWalk)
	b := newTestGame(t, config.ShuffleWalk)
	assert.Equal(t, a.Board(), b.Board())
}

func TestTimerStartsOnFirstMove(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.Seconds(), "clock does not run while idle")

	g.Click(movableIndex(g))
	require.Equal(t, core.StatusPlaying, g.Status())
	require.Equal(t, 1, g.Moves())

	for i := 0; i < 121; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 2, g.Seconds())
}

func TestPauseFreezesClockAndMoves(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	g.Click(movableIndex(g))

	g.Step(press(core.ActionPause))
	require.Equal(t, core.StatusPaused, g.Status())
	assert.True(t, g.State().Paused)

	for i := 0; i < 180; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.Seconds())

	before := g.Board()
	g.Click(movableIndex(g))
	assert.Equal(t, before, g.Board(), "no slides while paused")

	g.Step(press(core.ActionPause))
	assert.Equal(t, core.StatusPlaying, g.Status())
}

func TestIllegalClickKeepsIdle(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	empty := EmptyIndex(g.Board())

	g.Click(empty)
	g.Click(-1)
	assert.Equal(t, core.StatusIdle, g.Status())
	assert.Equal(t, 0, g.Moves())
}

func TestCursorSlide(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	target := movableIndex(g)
	empty := EmptyIndex(g.Board())

	// Walk the cursor from the blank to the target, then confirm.
	var dir core.Action
	switch target - empty {
	case -Side:
		dir = core.ActionUp
	case Side:
		dir = core.ActionDown
	case -1:
		dir = core.ActionLeft
	case 1:
		dir = core.ActionRight
	}
	g.Step(press(dir))
	require.Equal(t, target, g.cursor)

	tile := g.Board()[target]
	g.Step(press(core.ActionConfirm))
	assert.Equal(t, tile, g.Board()[empty])
	assert.Equal(t, 1, g.Moves())
}

func TestCursorClampsToBoard(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	for i := 0; i < 6; i++ {
		g.Step(press(core.ActionUp))
		g.Step(press(core.ActionLeft))
	}
	assert.Equal(t, 0, g.cursor)
}

func TestPointerClick(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	target := movableIndex(g)

	in := core.NewInputFrame()
	in.SetPointer(core.Pointer{X: float64(target%Side) + 0.5, Y: float64(target/Side) + 0.5, Click: true})
	g.Step(in)

	assert.Equal(t, Empty, g.Board()[target])
	assert.Equal(t, 1, g.Moves())
}

func TestCellAt(t *testing.T) {
	idx, ok := CellAt(2.9, 1.1)
	assert.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = CellAt(4, 0)
	assert.False(t, ok)
	_, ok = CellAt(-0.1, 0)
	assert.False(t, ok)
}

func TestWinEndsRound(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)

	b := Solved()
	b[14], b[15] = b[15], b[14]
	g.state = State{Board: b}

	g.Click(15)
	assert.Equal(t, core.StatusWon, g.Status())
	assert.True(t, g.State().GameOver)

	g.Click(14)
	assert.Equal(t, 1, g.Moves(), "moves are frozen after a win")
}

func TestRenderShowsTiles(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "FIFTEEN")
	assert.Contains(t, out, "Moves: 0")
	assert.True(t, strings.Contains(out, "15"))
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, config.ShuffleWalk)
	g.Click(movableIndex(g))
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, core.StatusPlaying, snap.Status)
	assert.True(t, snap.Solvable)
	assert.ElementsMatch(t, Neighbors(EmptyIndex(snap.Board)), snap.Movable)
	assert.Equal(t, snap, g.View())
}
