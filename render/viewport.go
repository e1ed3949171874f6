package render

import (
	"math"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/vmath"
)

// Viewport maps terminal cells to play-area units
// One cell is CellWidth × CellHeight units; the play area starts below the HUD
type Viewport struct {
	Cols, Rows int
}

// PlayRows returns the number of rows available to the play area
func (v Viewport) PlayRows() int {
	rows := v.Rows - constants.HUDRows - constants.FooterRows
	if rows < 0 {
		return 0
	}
	return rows
}

// Area returns the play area in units
func (v Viewport) Area() core.Area {
	cols := v.Cols
	if cols < 0 {
		cols = 0
	}
	return core.Area{
		Width:  float64(cols) * constants.CellWidth,
		Height: float64(v.PlayRows()) * constants.CellHeight,
	}
}

// CellToWorld returns the unit position of the center of screen cell (x, y)
// False when the cell is outside the play area
func (v Viewport) CellToWorld(x, y int) (vmath.Vec2F, bool) {
	row := y - constants.HUDRows
	if x < 0 || x >= v.Cols || row < 0 || row >= v.PlayRows() {
		return vmath.Vec2F{}, false
	}
	return vmath.Vec2F{
		X: (float64(x) + 0.5) * constants.CellWidth,
		Y: (float64(row) + 0.5) * constants.CellHeight,
	}, true
}

// WorldToCell returns the screen cell containing unit position p; may lie off screen
func (v Viewport) WorldToCell(p vmath.Vec2F) (x, y int) {
	x = int(math.Floor(p.X / constants.CellWidth))
	y = int(math.Floor(p.Y/constants.CellHeight)) + constants.HUDRows
	return x, y
}

// InPlay reports whether screen cell (x, y) is inside the play area
func (v Viewport) InPlay(x, y int) bool {
	row := y - constants.HUDRows
	return x >= 0 && x < v.Cols && row >= 0 && row < v.PlayRows()
}

// NeedsPrompt reports whether the terminal is too small or too tall to play
func NeedsPrompt(cols, rows int) bool {
	if cols < constants.MinPlayCols || rows < constants.MinPlayRows {
		return true
	}
	return float64(rows)*constants.CellHeight > float64(cols)*constants.CellWidth
}
