// Package display is the boundary to the "hardware": it issues sprite
// handles, composites them onto a fixed virtual screen and paces the frame
// loop with a vblank-style tick. The game core only sees the narrow
// interfaces declared here; the terminal backend implements them.
package display

// Virtual screen resolution in pixels. All clamping math in the game core
// uses these.
const (
	Width  = 240
	Height = 160
)

// Priority orders sprite compositing. Lower values draw on top.
type Priority int

const (
	P0 Priority = iota
	P1
	P2
	P3
)

// Sprite is a handle to one composited object. Each handle is owned by
// exactly one game entity; nothing else mutates it.
type Sprite interface {
	// SetImage assigns a frame of a tagged sprite-sheet image.
	SetImage(tag string, frame int)
	// SetPosition sets the screen-space top-left corner in virtual pixels.
	SetPosition(x, y int)
	SetHFlip(on bool)
	SetVFlip(on bool)
	SetPriority(p Priority)
	Show()
	Hide()
}

// ObjectManager issues sprite handles. Handle exhaustion is fatal.
type ObjectManager interface {
	NewSprite() Sprite
}

// Frame paces the loop and presents committed sprite state atomically.
type Frame interface {
	// WaitVBlank blocks until the next refresh interval begins.
	WaitVBlank()
	// Commit presents all current sprite state as one visible frame.
	Commit()
}

// Input is the per-frame input snapshot.
type Input interface {
	// AxisY returns the directional axis: -1 up, 0 neutral, +1 down.
	AxisY() int
	// Update refreshes the snapshot for the next frame.
	Update()
}
