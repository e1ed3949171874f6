package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotstrike/core"
)

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHUDBg       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMissedBg    = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbTimerBg     = tcell.NewRGBColor(200, 50, 50)   // Red for countdown
	RgbHighScoreBg = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbFooter      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPanelBorder = tcell.NewRGBColor(100, 100, 120)
	RgbMessage     = tcell.NewRGBColor(255, 255, 255)
	RgbMessageBg   = tcell.NewRGBColor(60, 60, 80)
	RgbFailed      = tcell.NewRGBColor(255, 80, 80)
	RgbParticle    = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white flash
)

// paletteColor converts a palette entry into a terminal color
func paletteColor(c core.Color) tcell.Color {
	return tcell.GetColor(c.Hex())
}

// fade blends c toward the background; alpha 1 is c, 0 is the background
func fade(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r1, g1, b1 := c.RGB()
	r0, g0, b0 := RgbBackground.RGB()
	mix := func(a, b int32) int32 {
		return b + int32(float64(a-b)*alpha)
	}
	return tcell.NewRGBColor(mix(r1, r0), mix(g1, g0), mix(b1, b0))
}
