package system

import (
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
)

// IsShotClear predicts whether a shot of typeID from the source tile would reach the target tile
// Replays the stepper's tick and tile walk on a local copy; reads the world, mutates nothing
// Aerial kinds are always clear; unknown types and off-map tiles never are
func (s *Ballistics) IsShotClear(srcX, srcY, typeID, dstX, dstY int) bool {
	info, ok := s.catalog.Get(typeID)
	if !ok {
		return false
	}
	if info.Kind.IsAerial() {
		return true
	}

	src := core.Tile{X: srcX, Y: srcY}
	dst := core.Tile{X: dstX, Y: dstY}
	if !engine.InBounds(s.world, src) || !engine.InBounds(s.world, dst) {
		return false
	}

	srcSide, hasSide := s.sideAt(src)
	blockByStructure := info.Kind.IsDirectFire() && hasSide

	check := func(t core.Tile) impactType {
		if !engine.InBounds(s.world, t) {
			return impactEdge
		}
		if t == src {
			return impactNone
		}
		if s.impassable.IsImpassable(int(s.world.TerrainAt(t))) {
			return impactTerrain
		}
		if blockByStructure && t != dst {
			if st, ok := s.world.StructureAt(t); ok && st.Side != srcSide {
				return impactIntercept
			}
		}
		return impactNone
	}

	probe := newFlight(srcSide, src, dst, typeID, 0, info)
	for {
		switch hit, _ := advance(&probe, check); hit {
		case impactNone:
			continue
		case impactArrived:
			return true
		default:
			return false
		}
	}
}
