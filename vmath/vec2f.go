package vmath

import "math"

// Vec2F is a float64 2D vector in play-area units
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FDist returns the Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// V2FHeading returns the unit vector pointing from one point toward another
// Coincident points yield the +X axis since atan2(0, 0) is 0
func V2FHeading(from, to Vec2F) Vec2F {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	return Vec2F{math.Cos(angle), math.Sin(angle)}
}

// V2FPolar returns a vector of length r at angle theta
func V2FPolar(theta, r float64) Vec2F {
	return Vec2F{math.Cos(theta) * r, math.Sin(theta) * r}
}
