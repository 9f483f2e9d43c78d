package core

import "github.com/lixenwraith/ordnance/parameter"

// Tile is a world grid cell coordinate
type Tile struct {
	X, Y int
}

// Pixel is a sub-tile position, parameter.PixelsPerTile pixels per tile on each axis
type Pixel struct {
	X, Y int
}

// Center returns the pixel at the middle of the tile
func (t Tile) Center() Pixel {
	return Pixel{
		X: t.X<<parameter.PixelShift + parameter.TileCenterOffset,
		Y: t.Y<<parameter.PixelShift + parameter.TileCenterOffset,
	}
}

// Add offsets the tile by (dx, dy)
func (t Tile) Add(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Tile returns the grid cell containing the pixel
// Arithmetic shift floors, so negative pixels map to negative tiles
func (p Pixel) Tile() Tile {
	return Tile{X: p.X >> parameter.PixelShift, Y: p.Y >> parameter.PixelShift}
}

// Side identifies the faction owning an entity
type Side uint8

const (
	SideNone Side = iota
	SideAtreides
	SideHarkonnen
	SideOrdos
	SideFremen
	SideSardaukar
	SideMercenary
)

var sideNames = [...]string{"none", "atreides", "harkonnen", "ordos", "fremen", "sardaukar", "mercenary"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// UnitID identifies a unit owned by the world collaborator
type UnitID uint32

// StructureID identifies a structure owned by the world collaborator
type StructureID uint32

// TerrainID is a terrain graphics identifier
type TerrainID uint16

// TerrainClass groups terrain for impact overlays
type TerrainClass uint8

const (
	TerrainSand TerrainClass = iota // Sand, dunes, spice
	TerrainRock                     // Rock, mountains, concrete
)

// MovementClass is the locomotion type of a unit
type MovementClass uint8

const (
	MovementFoot MovementClass = iota
	MovementWheeled
	MovementTracked
	MovementAerial
)
