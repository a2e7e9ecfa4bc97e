package game

import "github.com/diegok/retropong/internal/display"

// aiSpeed is the right paddle's per-frame tracking speed.
const aiSpeed = 1

// World is the static scene graph: one ball and two paddles, created once
// and alive for the whole process.
type World struct {
	Ball  *Ball
	Left  *Paddle
	Right *Paddle
}

// NewWorld builds the scene. The left paddle is player-controlled, the
// right one is AI-controlled.
func NewWorld(objects display.ObjectManager) *World {
	return &World{
		Ball:  NewBall(objects),
		Left:  NewPaddle(objects, SideLeft),
		Right: NewPaddle(objects, SideRight),
	}
}

// Step runs one simulation frame. The ordering is load-bearing: collision
// results depend on every entity having been integrated and clamped first,
// and the left paddle's bounce wins over the right's.
func (w *World) Step(inputY int) {
	w.Ball.AdvanceAndClamp()
	w.Left.AdvanceAndClamp()
	w.Right.AdvanceAndClamp()

	w.Ball.BounceIfAtBounds()

	w.Left.ResolveCollisions(w.Ball)
	w.Right.ResolveCollisions(w.Ball)

	w.Ball.Entity.PushPosition()

	w.Left.Drive(inputY)
	w.Right.UpdateAI(w.Ball.Entity, aiSpeed)
}
