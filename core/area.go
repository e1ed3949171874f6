package core

// Area is the play area in play-area units, origin at the top-left corner
type Area struct {
	Width, Height float64
}

// Center returns the midpoint of the area
func (a Area) Center() (x, y float64) {
	return a.Width / 2, a.Height / 2
}

// Expanded reports whether (x, y) lies within the area grown by margin on every side
func (a Area) Expanded(x, y, margin float64) bool {
	return x >= -margin && x <= a.Width+margin && y >= -margin && y <= a.Height+margin
}

// Empty reports whether the area has no extent
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
