package game

// Intersects reports whether the half-open hitboxes [Pos, Pos+Mask) of a
// and b overlap. Pure and symmetric.
func Intersects(a, b *Entity) bool {
	return a.Pos.X < b.Pos.X+b.Mask.X &&
		a.Pos.X+a.Mask.X > b.Pos.X &&
		a.Pos.Y < b.Pos.Y+b.Mask.Y &&
		a.Pos.Y+a.Mask.Y > b.Pos.Y
}
