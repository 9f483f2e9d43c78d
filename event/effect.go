package event

import (
	"github.com/lixenwraith/ordnance/core"
)

// Effect is a presentation or lifecycle request produced by the simulation
// Plain value; fields not listed for a type are zero
type Effect struct {
	Type  EffectType
	Frame int64

	Tile  core.Tile
	Pixel core.Pixel

	SoundID     int
	Volume      int // 0..100 hint
	ExplosionID int

	Terrain core.TerrainClass
	Mirror  bool
	Delay   int // Frames before a splash starts

	Unit      core.UnitID
	Structure core.StructureID
	Side      core.Side // Side of the entity that fired
	Health    int       // Health after the hit
	Amount    int       // Applied damage, negative for healing
}
