package display

import "sync"

// HoldFrames is how many frames a key press keeps its direction active.
// Terminals deliver key repeats but no release events, so a held key shows
// up as a burst of presses; the countdown bridges the gaps between repeats.
const HoldFrames = 8

// Controller is the directional input snapshot. Key events arrive on the
// backend's event goroutine; the frame loop reads AxisY once per frame and
// calls Update at the end of the frame. This is the only state shared
// across goroutines, so it carries its own lock.
type Controller struct {
	mu   sync.Mutex
	axis int
	hold int
	quit bool
}

// NewController creates a controller with a neutral axis.
func NewController() *Controller {
	return &Controller{}
}

// Press records a key press for the given axis direction.
func (c *Controller) Press(axis int) {
	if axis == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axis = axis
	c.hold = HoldFrames
}

// AxisY returns the current snapshot value: -1 up, 0 neutral, +1 down.
func (c *Controller) AxisY() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hold > 0 {
		return c.axis
	}
	return 0
}

// Update advances the snapshot by one frame, decaying a held direction
// back to neutral when no fresh press arrived.
func (c *Controller) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hold > 0 {
		c.hold--
		if c.hold == 0 {
			c.axis = 0
		}
	}
}

// RequestQuit marks the session for shutdown.
func (c *Controller) RequestQuit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quit = true
}

// QuitRequested reports whether a quit key was pressed.
func (c *Controller) QuitRequested() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quit
}
