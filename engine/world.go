package engine

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
)

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World,Viewport

// World is the tile-grid collaborator the ballistics engine reads and mutates
// Owned by the host; the engine never retains returned values across ticks
type World interface {
	// Size returns the map dimensions in tiles
	Size() (width, height int)

	// TerrainAt returns the terrain graphics id of an in-bounds tile
	TerrainAt(t core.Tile) core.TerrainID

	// TerrainClassAt returns the overlay category of an in-bounds tile
	TerrainClassAt(t core.Tile) core.TerrainClass

	// UnitAt returns the unit occupying the tile
	UnitAt(t core.Tile) (component.Unit, bool)

	// StructureAt returns the structure covering the tile, multi-tile footprints resolved to the owner
	StructureAt(t core.Tile) (component.Structure, bool)

	// SetUnitHealth stores a unit's new health; zero means destroyed
	SetUnitHealth(id core.UnitID, health int)

	// SetStructureHealth stores a structure's new health; zero means destroyed
	SetStructureHealth(id core.StructureID, health int)
}

// Viewport reports what the local player currently sees
type Viewport interface {
	Contains(t core.Tile) bool
}

// InBounds reports whether the tile lies on the world map
func InBounds(w World, t core.Tile) bool {
	width, height := w.Size()
	return t.X >= 0 && t.Y >= 0 && t.X < width && t.Y < height
}
