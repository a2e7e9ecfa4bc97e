// Package geom provides the small integer math used by the simulation.
package geom

// Vec is a 2D integer vector, used for positions, velocities and hitbox
// extents alike.
type Vec struct {
	X, Y int
}

// V is a shorthand constructor.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the componentwise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Clamp restricts val to the inclusive range [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
