package world

import "github.com/lixenwraith/ordnance/core"

// Viewport is the rectangle of tiles on the local player's screen
type Viewport struct {
	Area core.Area
}

// Contains reports whether the tile is visible
func (v *Viewport) Contains(t core.Tile) bool {
	return v.Area.Contains(t)
}

// Pan moves the viewport by (dx, dy) tiles, clamped to the map
func (v *Viewport) Pan(dx, dy, mapWidth, mapHeight int) {
	v.Area.X = max(0, min(v.Area.X+dx, mapWidth-v.Area.Width))
	v.Area.Y = max(0, min(v.Area.Y+dy, mapHeight-v.Area.Height))
}
