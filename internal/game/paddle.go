package game

import (
	"github.com/diegok/retropong/internal/display"
	"github.com/diegok/retropong/internal/geom"
)

// Side selects a paddle's court half. Fixed at construction; it only
// affects the horizontal placement and the initial sprite mirroring.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Paddle shape: three segments stacked segmentSpacing apart. The clamp
// range of every segment derives from these two constants, so the shape
// holds together even when segments hit the screen edges.
const (
	segmentSpacing = 16
	segmentMask    = 14

	leftPaddleX  = 1
	rightPaddleX = 224
	paddleSpawnY = 34 // top segment; mid and bottom offset by segmentSpacing
)

// Paddle is a composite of three entities moved in lockstep. Vel is the
// controller state used by the AI path; Drive writes segment velocities
// directly from its input.
type Paddle struct {
	Top    *Entity
	Middle *Entity
	Bottom *Entity
	Vel    geom.Vec
	Side   Side
}

// NewPaddle builds the three segments on the given side. The bottom end
// cap is vertically flipped, and right-side paddles are mirrored toward
// the court.
func NewPaddle(objects display.ObjectManager, side Side) *Paddle {
	x := leftPaddleX
	if side == SideRight {
		x = rightPaddleX
	}

	mask := geom.V(segmentMask, segmentMask)

	top := NewEntity(objects, mask)
	top.Sprite().SetImage(display.TagPaddleEnd, 0)
	top.SetSpawn(geom.V(x, paddleSpawnY))
	top.Sprite().Show()

	middle := NewEntity(objects, mask)
	middle.Sprite().SetImage(display.TagPaddleMid, 0)
	middle.SetSpawn(geom.V(x, paddleSpawnY+segmentSpacing))
	middle.Sprite().Show()

	bottom := NewEntity(objects, mask)
	bottom.Sprite().SetImage(display.TagPaddleEnd, 0)
	bottom.Sprite().SetVFlip(true)
	bottom.SetSpawn(geom.V(x, paddleSpawnY+2*segmentSpacing))
	bottom.Sprite().Show()

	if side == SideRight {
		top.Sprite().SetHFlip(true)
		middle.Sprite().SetHFlip(true)
		bottom.Sprite().SetHFlip(true)
	}

	return &Paddle{
		Top:    top,
		Middle: middle,
		Bottom: bottom,
		Side:   side,
	}
}

// AdvanceAndClamp integrates each segment and clamps it to its own
// vertical range. The ranges stagger by segmentSpacing, which is what
// keeps the fixed shape at the screen edges.
func (p *Paddle) AdvanceAndClamp() {
	p.Top.Pos.Y = geom.Clamp(p.Top.Pos.Y+p.Top.Vel.Y,
		0, display.Height-3*segmentSpacing)
	p.Middle.Pos.Y = geom.Clamp(p.Middle.Pos.Y+p.Middle.Vel.Y,
		segmentSpacing, display.Height-2*segmentSpacing)
	p.Bottom.Pos.Y = geom.Clamp(p.Bottom.Pos.Y+p.Bottom.Vel.Y,
		2*segmentSpacing, display.Height-segmentSpacing)
}

// Drive sets all three segments' vertical velocity to yInput and pushes
// their positions to the display. The input value is the per-frame pixel
// delta; there is no extra speed multiplier.
func (p *Paddle) Drive(yInput int) {
	p.Top.Vel.Y = yInput
	p.Middle.Vel.Y = yInput
	p.Bottom.Vel.Y = yInput

	p.Top.PushPosition()
	p.Middle.PushPosition()
	p.Bottom.PushPosition()
}

// ResolveCollisions tests the ball against top, middle and bottom in that
// order and reverses the ball's horizontal velocity on the first overlap.
// At most one bounce per frame per paddle.
func (p *Paddle) ResolveCollisions(ball *Ball) {
	for _, seg := range []*Entity{p.Top, p.Middle, p.Bottom} {
		if Intersects(ball.Entity, seg) {
			ball.Entity.Vel.X = -ball.Entity.Vel.X
			return
		}
	}
}

// UpdateAI is a bang-bang controller tracking the ball with the middle
// segment: move toward the ball's y, stay put on an exact match.
func (p *Paddle) UpdateAI(ball *Entity, speed int) {
	if ball.Pos.Y < p.Middle.Pos.Y {
		p.Vel.Y = -speed
	} else if ball.Pos.Y > p.Middle.Pos.Y {
		p.Vel.Y = speed
	} else {
		p.Vel.Y = 0
	}

	p.Drive(p.Vel.Y)
}
