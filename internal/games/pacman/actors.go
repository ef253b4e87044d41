package pacman

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Direction is a cardinal heading. DirNone means no buffered turn.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var cardinals = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step for the direction.
func (d Direction) Delta() core.Vec {
	switch d {
	case DirUp:
		return core.Vec{Y: -1}
	case DirDown:
		return core.Vec{Y: 1}
	case DirLeft:
		return core.Vec{X: -1}
	case DirRight:
		return core.Vec{X: 1}
	default:
		return core.Vec{}
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
		return "none"
	}
}

// lookAhead biases the probe toward the far edge when moving in a positive
// direction, so an actor stops flush against a wall to its right or below.
const lookAhead = 0.9

// snapEps absorbs float drift so positions that should be whole numbers are.
const snapEps = 1e-9

// Actor is a moving maze entity in fractional cell coordinates.
type Actor struct {
	Pos     core.Vec
	Dir     Direction
	NextDir Direction
	Speed   float64
}

// Aligned reports whether the actor sits exactly on a cell.
func (a Actor) Aligned() bool {
	return a.Pos.X == math.Trunc(a.Pos.X) && a.Pos.Y == math.Trunc(a.Pos.Y)
}

// Cell returns the floored grid cell under the actor.
func (a Actor) Cell() core.Point {
	return core.Point{X: int(math.Floor(a.Pos.X)), Y: int(math.Floor(a.Pos.Y))}
}

// CanMove reports whether one step of speed in dir keeps the actor out of walls.
func CanMove(a Actor, dir Direction, g *Grid, speed float64) bool {
	d := dir.Delta()
	if d == (core.Vec{}) {
		return false
	}
	next := a.Pos.Add(d.Scale(speed))
	if d.X > 0 {
		next.X += lookAhead
	}
	if d.Y > 0 {
		next.Y += lookAhead
	}
	return !g.IsWall(int(math.Floor(next.X)), int(math.Floor(next.Y)))
}

// advance moves the actor one step in its direction, snapping and wrapping.
func advance(a Actor, g *Grid, speed float64) Actor {
	a.Pos = a.Pos.Add(a.Dir.Delta().Scale(speed))
	a.Pos = core.Vec{X: snap(a.Pos.X), Y: snap(a.Pos.Y)}

	if a.Pos.X < 0 {
		a.Pos.X = float64(g.Width - 1)
	}
	if a.Pos.X >= float64(g.Width) {
		a.Pos.X = 0
	}
	return a
}

func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < snapEps {
		return r
	}
	return v
}

// StepPlayer advances the player by one tick. A buffered turn is taken only
// on an aligned position with an open cell ahead. When the actor ends on a
// pellet, ok is true and eaten is that cell; the grid is not modified.
func StepPlayer(p Actor, g *Grid) (next Actor, eaten core.Point, ok bool) {
	if p.NextDir != DirNone && p.Aligned() && CanMove(p, p.NextDir, g, p.Speed) {
		p.Dir = p.NextDir
	}

	if CanMove(p, p.Dir, g, p.Speed) {
		p = advance(p, g, p.Speed)
	}

	cell := p.Cell()
	if c, inside := g.At(cell.X, cell.Y); inside && c.Kind == CellFood {
		return p, cell, true
	}
	return p, core.Point{}, false
}

// GhostMode is the behaviour tag of a ghost. Only the random walk is
// implemented; the tag is carried for renderers.
type GhostMode string

const (
	ModeChase      GhostMode = "chase"
	ModeScatter    GhostMode = "scatter"
	ModeFrightened GhostMode = "frightened"
	ModeEaten      GhostMode = "eaten"
)

// Ghost is a non-player actor.
type Ghost struct {
	Actor
	Color string
	Mode  GhostMode
}

// StepGhost advances a ghost by one tick of random walk. With probability
// turnChance, or whenever its heading is blocked, the ghost picks a new
// cardinal direction at random.
func StepGhost(gh Ghost, g *Grid, rng *rand.Rand, speed, turnChance float64) Ghost {
	if rng.Float64() < turnChance || !CanMove(gh.Actor, gh.Dir, g, speed) {
		dir := cardinals[rng.Intn(len(cardinals))]
		if perpendicular(gh.Dir, dir) && !gh.Aligned() {
			// Turn from the nearest cell centre so the ghost never straddles a wall.
			gh.Pos = core.Vec{X: math.Round(gh.Pos.X), Y: math.Round(gh.Pos.Y)}
			if gh.Pos.X >= float64(g.Width) {
				gh.Pos.X = 0
			}
		}
		gh.Dir = dir
	}

	if CanMove(gh.Actor, gh.Dir, g, speed) {
		gh.Actor = advance(gh.Actor, g, speed)
	}
	return gh
}

func perpendicular(a, b Direction) bool {
	da, db := a.Delta(), b.Delta()
	return da.X*db.X+da.Y*db.Y == 0
}
