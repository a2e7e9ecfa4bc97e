package game

import (
	"github.com/diegok/retropong/internal/display"
	"github.com/diegok/retropong/internal/geom"
)

const (
	ballSize   = 16
	ballSpawnX = 50
	ballSpawnY = 50
)

// Ball is one entity plus wall-bounce behavior. Its velocity components
// stay in {-1, +1}: AdvanceAndClamp absorbs overshoot in a single step,
// which is only sound at unit speed.
type Ball struct {
	Entity *Entity
}

// NewBall constructs the ball at its fixed spawn point, moving down-right.
func NewBall(objects display.ObjectManager) *Ball {
	e := NewEntity(objects, geom.V(ballSize, ballSize))
	e.Sprite().SetImage(display.TagBall, 0)
	e.Vel = geom.V(1, 1)
	e.SetSpawn(geom.V(ballSpawnX, ballSpawnY))
	e.Sprite().Show()
	return &Ball{Entity: e}
}

// AdvanceAndClamp integrates one step and keeps the ball on screen.
func (b *Ball) AdvanceAndClamp() {
	next := b.Entity.Pos.Add(b.Entity.Vel)
	b.Entity.Pos.X = geom.Clamp(next.X, 0, display.Width-ballSize)
	b.Entity.Pos.Y = geom.Clamp(next.Y, 0, display.Height-ballSize)
}

// BounceIfAtBounds negates the velocity on each axis resting exactly on a
// screen bound. Runs after AdvanceAndClamp; the flip takes effect on the
// following step.
func (b *Ball) BounceIfAtBounds() {
	if b.Entity.Pos.X == 0 || b.Entity.Pos.X == display.Width-ballSize {
		b.Entity.Vel.X = -b.Entity.Vel.X
	}
	if b.Entity.Pos.Y == 0 || b.Entity.Pos.Y == display.Height-ballSize {
		b.Entity.Vel.Y = -b.Entity.Vel.Y
	}
}
