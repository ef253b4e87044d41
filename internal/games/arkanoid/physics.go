package arkanoid

import (
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Ball is the ball in pixel space. Vel is added to Pos once per tick.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
}

// Circle returns the ball's collision circle.
func (b Ball) Circle() core.Circle {
	return core.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// BallOutcome tells the caller what the boundary pass resolved.
type BallOutcome int

const (
	OutcomeNone BallOutcome = iota
	OutcomeWall
	OutcomePaddle
	OutcomeLost
)

// StepBall integrates the ball one tick and resolves walls, paddle and floor.
// Side walls are checked first, then exactly one of top wall, paddle or floor.
// On OutcomeLost the returned ball is the integrated one; respawning is left
// to the caller.
func StepBall(b Ball, paddle core.RectF, width, height, maxAngle float64) (Ball, BallOutcome) {
	b.Pos = b.Pos.Add(b.Vel)
	r := b.Radius
	out := OutcomeNone

	switch {
	case b.Pos.X+b.Vel.X > width-r:
		b.Pos.X = width - r
		b.Vel.X = -math.Abs(b.Vel.X)
		out = OutcomeWall
	case b.Pos.X+b.Vel.X < r:
		b.Pos.X = r
		b.Vel.X = math.Abs(b.Vel.X)
		out = OutcomeWall
	}

	switch {
	case b.Pos.Y+b.Vel.Y < r:
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y)
		out = OutcomeWall
	case hitsPaddle(b, paddle):
		b.Vel = PaddleBounce(b, paddle, maxAngle)
		out = OutcomePaddle
	case b.Pos.Y+b.Vel.Y > height-r:
		out = OutcomeLost
	}
	return b, out
}

// hitsPaddle reports whether the next step carries the ball across the
// paddle's top edge while its center is within the paddle span.
func hitsPaddle(b Ball, p core.RectF) bool {
	next := b.Pos.Y + b.Vel.Y
	return next > p.Y-b.Radius &&
		b.Pos.X > p.X &&
		b.Pos.X < p.Right() &&
		b.Pos.Y-b.Radius < p.Y &&
		next-b.Radius < p.Y
}

// PaddleBounce maps the hit offset from the paddle center (-1 at the left
// edge, +1 at the right) linearly to an angle within ±maxAngle degrees of
// straight up. The speed is kept.
func PaddleBounce(b Ball, p core.RectF, maxAngle float64) core.Vec {
	hit := (b.Pos.X - p.Center().X) / (p.W / 2)
	theta := hit * maxAngle * math.Pi / 180
	s := b.Speed()
	return core.Vec{X: s * math.Sin(theta), Y: -s * math.Cos(theta)}
}

// HitBricks destroys every active brick the ball overlaps and returns the
// ball with one velocity component flipped. Each hit picks the axis with the
// larger offset between ball and brick centers; when several bricks are hit
// in one tick only the last pick is applied.
func HitBricks(b Ball, bricks []Brick) (Ball, int) {
	hits := 0
	horizontal := false
	c := b.Circle()
	for i := range bricks {
		if !bricks[i].Active || !core.CircleRectCollide(c, bricks[i].Rect) {
			continue
		}
		bricks[i].Active = false
		hits++
		center := bricks[i].Rect.Center()
		horizontal = math.Abs(b.Pos.X-center.X) > math.Abs(b.Pos.Y-center.Y)
	}
	if hits == 0 {
		return b, 0
	}
	if horizontal {
		b.Vel.X = -b.Vel.X
	} else {
		b.Vel.Y = -b.Vel.Y
	}
	return b, hits
}

// MovePaddle shifts the paddle by speed per held key and clamps it to the field.
func MovePaddle(p core.RectF, left, right bool, speed, width float64) core.RectF {
	if left {
		p.X -= speed
	}
	if right {
		p.X += speed
	}
	p.X = core.ClampF(p.X, 0, width-p.W)
	return p
}

// PointPaddle centers the paddle on pointer x. Pointers outside the open
// interval (0, width) are ignored.
func PointPaddle(p core.RectF, x, width float64) core.RectF {
	if x <= 0 || x >= width {
		return p
	}
	p.X = core.ClampF(x-p.W/2, 0, width-p.W)
	return p
}
