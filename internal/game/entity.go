// Package game implements the simulation core: entities, the ball, the two
// paddles and the per-frame step. All operations here are total; nothing
// returns an error.
package game

import (
	"github.com/diegok/retropong/internal/display"
	"github.com/diegok/retropong/internal/geom"
)

// Entity is a drawable object with a position, a velocity and an AABB
// hitbox anchored at its position. Each entity exclusively owns its sprite
// handle. Mask is fixed after construction.
type Entity struct {
	Pos  geom.Vec
	Vel  geom.Vec
	Mask geom.Vec

	sprite display.Sprite
}

// NewEntity allocates a sprite handle for the entity. Position and
// velocity start at zero; the owner sets both before the first frame.
func NewEntity(objects display.ObjectManager, mask geom.Vec) *Entity {
	sp := objects.NewSprite()
	sp.SetPriority(display.P1)
	return &Entity{
		Mask:   mask,
		sprite: sp,
	}
}

// Sprite exposes the handle for owner-side setup (image, flips, show).
func (e *Entity) Sprite() display.Sprite {
	return e.sprite
}

// SetSpawn places the entity and forwards the position immediately, so the
// jump is visible on the next commit.
func (e *Entity) SetSpawn(pos geom.Vec) {
	e.Pos = pos
	e.PushPosition()
}

// PushPosition forwards the current position to the sprite handle. Call it
// after any position change that should become visible.
func (e *Entity) PushPosition() {
	e.sprite.SetPosition(e.Pos.X, e.Pos.Y)
}
