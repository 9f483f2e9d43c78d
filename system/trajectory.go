package system

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/vmath"
)

type impactType uint8

const (
	impactNone      impactType = iota // Still in flight
	impactArrived                     // Reached the target point
	impactTerrain                     // Stopped by impassable terrain
	impactEdge                        // Left the map
	impactIntercept                   // Direct fire stopped on an occupied tile
)

// tileCheck classifies a newly entered tile; anything but impactNone ends the flight there
type tileCheck func(t core.Tile) impactType

// flightRules holds the per-instance collision rules shared by the stepper
type flightRules struct {
	world      engine.World
	impassable *engine.ImpassabilityTable
	source     core.Tile
	side       core.Side
	aerial     bool
	intercept  bool // Shot/Bullet: stop at the first enemy unit after leaving the source tile
}

func (r *flightRules) check(t core.Tile) impactType {
	if !engine.InBounds(r.world, t) {
		return impactEdge
	}
	if t == r.source {
		return impactNone
	}
	if !r.aerial && r.impassable.IsImpassable(int(r.world.TerrainAt(t))) {
		return impactTerrain
	}
	if r.intercept {
		if u, ok := r.world.UnitAt(t); ok && u.Side != r.side {
			return impactIntercept
		}
	}
	return impactNone
}

// advance moves inst one tick along its straight line
// A single supercover walk covers the exact segment from the pre-tick to the post-tick position,
// so each check is a sub-step of at most one tile per axis and no crossed tile is skipped
// On an early stop Position is the centre of the stopping tile; on arrival it is Target
func advance(inst *component.ProjectileInstance, check tileCheck) (impactType, core.Tile) {
	if inst.Timer < inst.TimeRequired {
		inst.Timer++
	}

	goal := core.Pixel{
		X: inst.Source.X + vmath.MulDiv(inst.Target.X-inst.Source.X, inst.Timer, inst.TimeRequired),
		Y: inst.Source.Y + vmath.MulDiv(inst.Target.Y-inst.Source.Y, inst.Timer, inst.TimeRequired),
	}

	walker := vmath.NewTileWalker(inst.Position.X, inst.Position.Y, goal.X, goal.Y)
	walker.Next() // Current tile was checked when it was entered
	for walker.Next() {
		x, y := walker.Pos()
		t := core.Tile{X: x, Y: y}
		if hit := check(t); hit != impactNone {
			inst.Position = t.Center()
			return hit, t
		}
	}

	inst.Position = goal
	if inst.Timer == inst.TimeRequired {
		return impactArrived, goal.Tile()
	}
	return impactNone, goal.Tile()
}

// newFlight builds an enabled instance travelling between tile centres
// TimeRequired = floor(sqrt(dx²+dy²)/speed), at least one tick
func newFlight(side core.Side, src, dst core.Tile, typeID, variant int, info *component.ProjectileTypeInfo) component.ProjectileInstance {
	from, to := src.Center(), dst.Center()
	dx, dy := to.X-from.X, to.Y-from.Y

	inst := component.ProjectileInstance{
		Enabled:      true,
		TypeID:       typeID,
		Side:         side,
		Variant:      variant,
		Position:     from,
		Source:       from,
		Target:       to,
		TimeRequired: max(1, vmath.ISqrt(dx*dx+dy*dy)/max(1, info.Speed)),
	}
	if info.Kind.HasFacing() {
		inst.Facing = vmath.Facing(dx, dy)
	}
	return inst
}
