package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ordnance/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbSand       = tcell.NewRGBColor(194, 160, 90)
	RgbRock       = tcell.NewRGBColor(120, 110, 100)
	RgbBlocking   = tcell.NewRGBColor(180, 180, 190)
	RgbScorch     = tcell.NewRGBColor(60, 45, 35)

	RgbProjectile = tcell.NewRGBColor(255, 255, 255)
	RgbExplosion  = tcell.NewRGBColor(255, 160, 50)
	RgbSplash     = tcell.NewRGBColor(255, 110, 40)
	RgbDust       = tcell.NewRGBColor(150, 140, 120)
	RgbWreck      = tcell.NewRGBColor(90, 90, 90)

	RgbCursor     = tcell.NewRGBColor(255, 165, 0)
	RgbLineClear  = tcell.NewRGBColor(0, 200, 0)
	RgbLineBlock  = tcell.NewRGBColor(200, 40, 40)
	RgbStatusText = tcell.NewRGBColor(255, 255, 255)
)

var sideColors = [...]tcell.Color{
	core.SideNone:      tcell.NewRGBColor(200, 200, 200),
	core.SideAtreides:  tcell.NewRGBColor(100, 150, 255),
	core.SideHarkonnen: tcell.NewRGBColor(255, 80, 80),
	core.SideOrdos:     tcell.NewRGBColor(0, 200, 0),
	core.SideFremen:    tcell.NewRGBColor(200, 170, 110),
	core.SideSardaukar: tcell.NewRGBColor(170, 80, 200),
	core.SideMercenary: tcell.NewRGBColor(255, 255, 0),
}

// SideColor returns the house color, neutral for unknown sides
func SideColor(s core.Side) tcell.Color {
	if int(s) < len(sideColors) {
		return sideColors[s]
	}
	return sideColors[core.SideNone]
}
