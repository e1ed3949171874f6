package render

import "github.com/lixenwraith/dotstrike/core"

// Sprites are SpriteCols × SpriteRows; spaces are transparent
var sprites = map[core.Shape][3]string{
	core.ShapeCircle: {
		" ▄█▄ ",
		"█████",
		" ▀█▀ ",
	},
	core.ShapeSquare: {
		"█████",
		"█████",
		"█████",
	},
	core.ShapeTriangle: {
		"  ▲  ",
		" ███ ",
		"█████",
	},
}

func spriteFor(s core.Shape) [3]string {
	if sp, ok := sprites[s]; ok {
		return sp
	}
	return sprites[core.ShapeSquare]
}
