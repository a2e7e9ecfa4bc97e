package game

import (
	"testing"

	"github.com/diegok/retropong/internal/display"
	"github.com/diegok/retropong/internal/geom"
)

func TestNewPaddle_Left(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideLeft)

	if p.Top.Pos.X != 1 || p.Middle.Pos.X != 1 || p.Bottom.Pos.X != 1 {
		t.Errorf("expected all segments at x=1, got %d/%d/%d",
			p.Top.Pos.X, p.Middle.Pos.X, p.Bottom.Pos.X)
	}
	if p.Top.Pos.Y != 34 || p.Middle.Pos.Y != 50 || p.Bottom.Pos.Y != 66 {
		t.Errorf("expected spawn ys 34/50/66, got %d/%d/%d",
			p.Top.Pos.Y, p.Middle.Pos.Y, p.Bottom.Pos.Y)
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Errorf("expected zero paddle velocity, got (%d,%d)", p.Vel.X, p.Vel.Y)
	}

	for i, seg := range []*Entity{p.Top, p.Middle, p.Bottom} {
		if seg.Mask.X != 14 || seg.Mask.Y != 14 {
			t.Errorf("segment %d: expected mask (14,14), got (%d,%d)", i, seg.Mask.X, seg.Mask.Y)
		}
	}

	if len(objects.sprites) != 3 {
		t.Fatalf("expected 3 sprites, got %d", len(objects.sprites))
	}
	top, middle, bottom := objects.sprites[0], objects.sprites[1], objects.sprites[2]
	if top.tag != display.TagPaddleEnd || bottom.tag != display.TagPaddleEnd {
		t.Errorf("expected end caps, got %q/%q", top.tag, bottom.tag)
	}
	if middle.tag != display.TagPaddleMid {
		t.Errorf("expected middle piece, got %q", middle.tag)
	}
	if !bottom.vflip {
		t.Error("expected bottom end cap to be vertically flipped")
	}
	if top.hflip || middle.hflip || bottom.hflip {
		t.Error("expected no horizontal flip on the left side")
	}
	if !top.visible || !middle.visible || !bottom.visible {
		t.Error("expected all segments visible")
	}
}

func TestNewPaddle_Right(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideRight)

	if p.Top.Pos.X != 224 {
		t.Errorf("expected right paddle at x=224, got %d", p.Top.Pos.X)
	}
	for i, sp := range objects.sprites {
		if !sp.hflip {
			t.Errorf("segment %d: expected horizontal flip on the right side", i)
		}
	}
}

func TestPaddle_Drive(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideLeft)

	p.Drive(-1)

	if p.Top.Vel.Y != -1 || p.Middle.Vel.Y != -1 || p.Bottom.Vel.Y != -1 {
		t.Errorf("expected all segment velocities -1, got %d/%d/%d",
			p.Top.Vel.Y, p.Middle.Vel.Y, p.Bottom.Vel.Y)
	}

	// Each segment pushed once at spawn, once by Drive
	for i, sp := range objects.sprites {
		if sp.pushes != 2 {
			t.Errorf("segment %d: expected 2 position pushes, got %d", i, sp.pushes)
		}
	}
}

func TestPaddle_AdvanceAndClamp_UpperStops(t *testing.T) {
	p := NewPaddle(newFakeObjects(), SideLeft)

	p.Drive(-1)
	for i := 0; i < 200; i++ {
		p.AdvanceAndClamp()
		assertSegmentRanges(t, p, i)
	}

	if p.Top.Pos.Y != 0 {
		t.Errorf("expected top at 0, got %d", p.Top.Pos.Y)
	}
	if p.Middle.Pos.Y != 16 {
		t.Errorf("expected middle at 16, got %d", p.Middle.Pos.Y)
	}
	if p.Bottom.Pos.Y != 32 {
		t.Errorf("expected bottom at 32, got %d", p.Bottom.Pos.Y)
	}
}

func TestPaddle_AdvanceAndClamp_LowerStops(t *testing.T) {
	p := NewPaddle(newFakeObjects(), SideLeft)

	p.Drive(1)
	for i := 0; i < 200; i++ {
		p.AdvanceAndClamp()
		assertSegmentRanges(t, p, i)
	}

	if p.Top.Pos.Y != display.Height-48 {
		t.Errorf("expected top at %d, got %d", display.Height-48, p.Top.Pos.Y)
	}
	if p.Middle.Pos.Y != display.Height-32 {
		t.Errorf("expected middle at %d, got %d", display.Height-32, p.Middle.Pos.Y)
	}
	if p.Bottom.Pos.Y != display.Height-16 {
		t.Errorf("expected bottom at %d, got %d", display.Height-16, p.Bottom.Pos.Y)
	}
}

func TestPaddle_AdvanceAndClamp_ShapeHolds(t *testing.T) {
	p := NewPaddle(newFakeObjects(), SideLeft)

	// An arbitrary drive sequence never breaks the per-segment ranges.
	inputs := []int{1, 1, -1, 0, -1, -1, 1, 0, 0, 1, -1, 1, 1, 1, -1}
	for frame := 0; frame < 400; frame++ {
		p.Drive(inputs[frame%len(inputs)])
		p.AdvanceAndClamp()
		assertSegmentRanges(t, p, frame)
	}
}

func assertSegmentRanges(t *testing.T, p *Paddle, frame int) {
	t.Helper()
	if p.Top.Pos.Y < 0 || p.Top.Pos.Y > display.Height-48 {
		t.Fatalf("frame %d: top y=%d out of [0,%d]", frame, p.Top.Pos.Y, display.Height-48)
	}
	if p.Middle.Pos.Y < 16 || p.Middle.Pos.Y > display.Height-32 {
		t.Fatalf("frame %d: middle y=%d out of [16,%d]", frame, p.Middle.Pos.Y, display.Height-32)
	}
	if p.Bottom.Pos.Y < 32 || p.Bottom.Pos.Y > display.Height-16 {
		t.Fatalf("frame %d: bottom y=%d out of [32,%d]", frame, p.Bottom.Pos.Y, display.Height-16)
	}
}

func TestPaddle_ResolveCollisions_MiddleHit(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideLeft)
	ball := NewBall(objects)

	// Ball dead on the middle segment, moving left
	ball.Entity.Pos = geom.V(1, 50)
	ball.Entity.Vel = geom.V(-1, 1)

	p.ResolveCollisions(ball)

	if ball.Entity.Vel.X != 1 {
		t.Errorf("expected VX=1 after paddle bounce, got %d", ball.Entity.Vel.X)
	}
	if ball.Entity.Vel.Y != 1 {
		t.Errorf("expected VY unchanged, got %d", ball.Entity.Vel.Y)
	}
}

func TestPaddle_ResolveCollisions_FirstMatchWins(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideLeft)
	ball := NewBall(objects)

	// Ball at y=40 overlaps both the top and middle segments. Exactly one
	// bounce may apply: a double negation would leave VX unchanged.
	ball.Entity.Pos = geom.V(1, 40)
	ball.Entity.Vel = geom.V(-1, 1)

	p.ResolveCollisions(ball)

	if ball.Entity.Vel.X != 1 {
		t.Errorf("expected exactly one flip (VX=1), got %d", ball.Entity.Vel.X)
	}
}

func TestPaddle_ResolveCollisions_Miss(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideLeft)
	ball := NewBall(objects)

	ball.Entity.Pos = geom.V(100, 100)
	ball.Entity.Vel = geom.V(-1, 1)

	p.ResolveCollisions(ball)

	if ball.Entity.Vel.X != -1 {
		t.Errorf("expected VX unchanged on miss, got %d", ball.Entity.Vel.X)
	}
}

func TestPaddle_UpdateAI_TracksBall(t *testing.T) {
	objects := newFakeObjects()
	p := NewPaddle(objects, SideRight)
	ball := NewEntity(objects, geom.V(16, 16))

	// Middle segment spawns at y=50
	ball.Pos = geom.V(100, 40)
	p.UpdateAI(ball, 1)
	if p.Vel.Y != -1 {
		t.Errorf("ball above: expected velocity -1, got %d", p.Vel.Y)
	}
	if p.Middle.Vel.Y != -1 {
		t.Errorf("ball above: expected middle segment driven to -1, got %d", p.Middle.Vel.Y)
	}

	ball.Pos = geom.V(100, 60)
	p.UpdateAI(ball, 1)
	if p.Vel.Y != 1 {
		t.Errorf("ball below: expected velocity 1, got %d", p.Vel.Y)
	}

	ball.Pos = geom.V(100, 50)
	p.UpdateAI(ball, 1)
	if p.Vel.Y != 0 {
		t.Errorf("ball level: expected velocity 0, got %d", p.Vel.Y)
	}
}
