package engine

import (
	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/vmath"
)

// Rect is an axis-aligned box in play-area units
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the box, edges inclusive
func (r Rect) Contains(p vmath.Vec2F) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the geometric center of the box
func (r Rect) Center() vmath.Vec2F {
	return vmath.Vec2F{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PointerEvent is a click in play-area units
// HasPos is false when the source carried no coordinates
type PointerEvent struct {
	Pos    vmath.Vec2F
	HasPos bool
}

// MousePointer builds a pointer event from a click position
func MousePointer(x, y float64) PointerEvent {
	return PointerEvent{Pos: vmath.Vec2F{X: x, Y: y}, HasPos: true}
}

// BoxLocator reports the box a dot currently occupies on screen
type BoxLocator interface {
	RenderedBox(id uint64) (Rect, bool)
}

// HitRadius returns the accepted distance from the center for a box of the given width
func HitRadius(width float64) float64 {
	return constants.HitRadiusFactor * width
}

// HitTest reports whether the pointer is close enough to the box center to count as a hit
func HitTest(p PointerEvent, box Rect) bool {
	if !p.HasPos {
		return false
	}
	return vmath.V2FDist(p.Pos, box.Center()) <= HitRadius(box.W)
}
