package system

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/vmath"
)

// structureSet deduplicates structure hits within one detonation
// Bounded by the largest supported explosion footprint, no allocation
type structureSet struct {
	ids [parameter.MaxExplosionTiles]core.StructureID
	n   int
}

// add records id and reports whether it was new
func (h *structureSet) add(id core.StructureID) bool {
	for i := 0; i < h.n; i++ {
		if h.ids[i] == id {
			return false
		}
	}
	if h.n < len(h.ids) {
		h.ids[h.n] = id
		h.n++
	}
	return true
}

// resolveImpact applies a terminated instance to the struck tile and, for Shell kinds,
// to every tile of the circular splash footprint
func (s *Ballistics) resolveImpact(inst *component.ProjectileInstance, info *component.ProjectileTypeInfo, tile core.Tile) {
	s.emit(event.Effect{
		Type:        event.EffectExplosion,
		Tile:        tile,
		Pixel:       inst.Position,
		ExplosionID: info.ExplosionID,
		Side:        inst.Side,
	})

	var hits structureSet
	s.resolveTile(inst, info, tile, true, &hits)

	if !info.Kind.IsExplosive() {
		return
	}
	radius := maxRadius(info.ExplosionRadius)
	if radius == 0 {
		return
	}

	s.stats.Detonations++
	vmath.ForEachInCircle(radius, func(dx, dy int) bool {
		if dx == 0 && dy == 0 {
			return true
		}
		t := tile.Add(dx, dy)
		if !engine.InBounds(s.world, t) {
			return true
		}
		s.resolveTile(inst, info, t, false, &hits)
		s.emit(event.Effect{
			Type:   event.EffectSplash,
			Tile:   t,
			Pixel:  t.Center(),
			Mirror: s.rng.Bool(),
			Delay:  s.rng.Intn(parameter.SplashFrameJitter),
			Side:   inst.Side,
		})
		return true
	})
}

// resolveTile applies one tile's worth of damage: unit first, then structure, then bare terrain
func (s *Ballistics) resolveTile(inst *component.ProjectileInstance, info *component.ProjectileTypeInfo, t core.Tile, direct bool, hits *structureSet) {
	if u, ok := s.world.UnitAt(t); ok {
		s.hitUnit(inst, info, u, t)
		return
	}

	if st, ok := s.world.StructureAt(t); ok {
		heavy := info.Kind.IsRocket() || info.Kind.IsExplosive()
		if st.Foundation && !heavy && t != inst.TargetTile() {
			return
		}
		if !hits.add(st.ID) {
			return
		}
		s.hitStructure(inst, info, st, t)
		return
	}

	if direct && info.Kind.IsRocket() {
		s.emit(event.Effect{
			Type:    event.EffectScorch,
			Tile:    t,
			Pixel:   t.Center(),
			Terrain: s.world.TerrainClassAt(t),
			Side:    inst.Side,
		})
	}
}

func (s *Ballistics) hitUnit(inst *component.ProjectileInstance, info *component.ProjectileTypeInfo, u component.Unit, t core.Tile) {
	if u.Indestructible() {
		return
	}
	m := resolveModifier(&info.Modifiers, inst.Side, u.Side, component.CategoryForMovement(u.Movement))
	damage := scaledPower(info.Power, m, u.MaxHealth)
	if damage == 0 {
		return
	}

	health := applyDamage(u.Health, u.MaxHealth, damage)
	s.world.SetUnitHealth(u.ID, health)

	kind := event.EffectUnitDamaged
	if health == 0 {
		kind = event.EffectUnitDestroyed
	}
	s.emit(event.Effect{Type: kind, Tile: t, Pixel: t.Center(), Unit: u.ID, Health: health, Amount: damage, Side: inst.Side})
}

func (s *Ballistics) hitStructure(inst *component.ProjectileInstance, info *component.ProjectileTypeInfo, st component.Structure, t core.Tile) {
	if st.Indestructible() {
		return
	}
	m := resolveModifier(&info.Modifiers, inst.Side, st.Side, component.CategoryStructures)
	damage := scaledPower(info.Power, m, st.MaxHealth)
	if damage == 0 {
		return
	}

	health := applyDamage(st.Health, st.MaxHealth, damage)
	s.world.SetStructureHealth(st.ID, health)

	kind := event.EffectStructureDamaged
	if health == 0 {
		kind = event.EffectStructureDestroyed
	}
	s.emit(event.Effect{Type: kind, Tile: t, Pixel: t.Center(), Structure: st.ID, Health: health, Amount: damage, Side: inst.Side})
}
