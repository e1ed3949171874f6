package engine

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/vmath"
)

// Edge is the side of the play area a dot enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	edgeCount
)

// Entity is a single moving dot
// Pos is the top-left corner of its Size×Size box, matching how it is drawn
type Entity struct {
	ID    uint64
	Round uint64 // Generation of the round that spawned it

	Pos vmath.Vec2F
	Dir vmath.Vec2F // Unit heading, fixed at spawn

	Shape core.Shape
	Color core.Color

	T             float64 // Phase accumulator
	Size          float64
	CurveStrength float64

	// Bounds is the play area at spawn time; later resizes do not move the exit line
	Bounds core.Area

	frame Handle
}

// SpawnEntity creates a dot just outside a uniformly chosen edge of area,
// heading toward a uniformly random point inside it
func SpawnEntity(id, round uint64, area core.Area, difficulty int, rng *rand.Rand) *Entity {
	size := constants.EntitySize
	edge := Edge(rng.Intn(int(edgeCount)))

	var pos vmath.Vec2F
	switch edge {
	case EdgeTop:
		pos = vmath.Vec2F{X: rng.Float64() * area.Width, Y: -size}
	case EdgeBottom:
		pos = vmath.Vec2F{X: rng.Float64() * area.Width, Y: area.Height + size}
	case EdgeLeft:
		pos = vmath.Vec2F{X: -size, Y: rng.Float64() * area.Height}
	case EdgeRight:
		pos = vmath.Vec2F{X: area.Width + size, Y: rng.Float64() * area.Height}
	}

	target := vmath.Vec2F{X: rng.Float64() * area.Width, Y: rng.Float64() * area.Height}

	return &Entity{
		ID:            id,
		Round:         round,
		Pos:           pos,
		Dir:           vmath.V2FHeading(pos, target),
		Shape:         core.RandomShape(rng),
		Color:         core.RandomColor(rng),
		Size:          size,
		CurveStrength: CurveStrength(difficulty),
		Bounds:        area,
	}
}

// CurveStrength converts difficulty into the perturbation frequency
func CurveStrength(difficulty int) float64 {
	return float64(difficulty) * constants.CurveFactor
}

// Step advances the dot by one frame along its heading plus the oscillating wobble
func (e *Entity) Step() {
	e.T += constants.PhaseStep
	wobble := vmath.Vec2F{
		X: math.Sin(e.T*e.CurveStrength) * constants.WobbleAmplitude,
		Y: math.Cos(e.T*e.CurveStrength) * constants.WobbleAmplitude,
	}
	e.Pos = vmath.V2FAdd(e.Pos, vmath.V2FAdd(vmath.V2FScale(e.Dir, constants.EntitySpeed), wobble))
}

// Exited reports whether the dot has drifted past the exit margin of its spawn bounds
func (e *Entity) Exited() bool {
	return !e.Bounds.Expanded(e.Pos.X, e.Pos.Y, constants.ExitMargin)
}

// Box returns the logical bounding box of the dot
func (e *Entity) Box() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size, H: e.Size}
}
