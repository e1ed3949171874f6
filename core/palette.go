package core

import "math/rand"

// Shape is the kind of outline a dot is drawn with
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	shapeCount
)

var shapeNames = [shapeCount]string{"circle", "square", "triangle"}

func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return "unknown"
	}
	return shapeNames[s]
}

// Color is an index into Palette
type Color int

// Palette holds the dot colors as hex strings
var Palette = [...]string{
	"#ff6b6b",
	"#feca57",
	"#1dd1a1",
	"#54a0ff",
	"#5f27cd",
	"#00d2d3",
}

// Hex returns the palette entry for c, falling back to the first color
func (c Color) Hex() string {
	if c < 0 || int(c) >= len(Palette) {
		return Palette[0]
	}
	return Palette[c]
}

// RandomShape picks a shape uniformly
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.Intn(int(shapeCount)))
}

// RandomColor picks a palette color uniformly
func RandomColor(rng *rand.Rand) Color {
	return Color(rng.Intn(len(Palette)))
}
