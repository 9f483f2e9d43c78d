package system

import (
	"testing"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/world"
)

// Test catalog; speeds are px/tick at normal game speed
const (
	typeCannon = iota
	typeBullet
	typeRocket
	typeShell
	typeAerialShot
	typeRepair
	typeBigShell
	typeRailgun
)

// terrainWall blocks non-aerial projectiles in every test world
const terrainWall core.TerrainID = 9

func testTypes() []component.ProjectileTypeInfo {
	return []component.ProjectileTypeInfo{
		typeCannon:     {Name: "cannon", Kind: component.KindShot, Power: 25, BaseSpeed: 16, ExplosionID: 1, SoundIDs: []int{2}},
		typeBullet:     {Name: "bullet", Kind: component.KindBullet, Power: 10, BaseSpeed: 24, SoundIDs: []int{0, 1}},
		typeRocket:     {Name: "rocket", Kind: component.KindRocket, Power: 40, BaseSpeed: 16, ExplosionID: 2},
		typeShell:      {Name: "shell", Kind: component.KindShell, Power: 50, BaseSpeed: 16, ExplosionID: 3, ExplosionRadius: 1},
		typeAerialShot: {Name: "aerial", Kind: component.KindAerialShot, Power: 10, BaseSpeed: 16},
		typeRepair: {Name: "repair", Kind: component.KindShot, Power: -20, BaseSpeed: 16,
			Modifiers: component.ModifierTable{component.CategoryEnemy: component.ModifierNil}},
		typeBigShell: {Name: "big", Kind: component.KindShell, Power: 30, BaseSpeed: 16, ExplosionRadius: 2,
			Modifiers: component.ModifierTable{component.CategoryStructures: component.ModifierInstant}},
		typeRailgun: {Name: "rail", Kind: component.KindShot, Power: 25, BaseSpeed: 64},
	}
}

func newTestImpassable() *engine.ImpassabilityTable {
	tbl := engine.NewImpassabilityTable(16)
	tbl.Set(int(terrainWall), true)
	return tbl
}

// newTestBallistics builds an engine over a fresh sand grid with no viewport
func newTestBallistics(width, height int) (*Ballistics, *world.Grid) {
	grid := world.NewGrid(width, height)
	grid.SetTerrainClass(terrainWall, core.TerrainRock)
	b := NewBallistics(BallisticsConfig{
		World:      grid,
		Catalog:    engine.NewCatalog(testTypes(), 100),
		Impassable: newTestImpassable(),
		Seed:       1,
	})
	return b, grid
}

func addUnit(t *testing.T, g *world.Grid, x, y int, side core.Side, movement core.MovementClass, health int) core.UnitID {
	t.Helper()
	id, err := g.AddUnit(core.Tile{X: x, Y: y}, component.Unit{Side: side, Movement: movement, Health: health, MaxHealth: max(health, 100)})
	if err != nil {
		t.Fatalf("AddUnit(%d,%d): %v", x, y, err)
	}
	return id
}

func addStructure(t *testing.T, g *world.Grid, area core.Area, side core.Side, health int) core.StructureID {
	t.Helper()
	id, err := g.AddStructure(area, component.Structure{Side: side, Health: health, MaxHealth: max(health, 100)})
	if err != nil {
		t.Fatalf("AddStructure(%+v): %v", area, err)
	}
	return id
}

func unitHealth(g *world.Grid, id core.UnitID) int {
	u, _, _ := g.Unit(id)
	return u.Health
}

func structureHealth(g *world.Grid, id core.StructureID) int {
	st, _, _ := g.Structure(id)
	return st.Health
}

func mustSpawn(t *testing.T, b *Ballistics, side core.Side, sx, sy, dx, dy, typeID int) engine.InstanceID {
	t.Helper()
	id, err := b.Spawn(side, sx, sy, dx, dy, typeID, 0)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return id
}

// runUntilIdle ticks until the pool drains, collecting every effect
func runUntilIdle(t *testing.T, b *Ballistics) []event.Effect {
	t.Helper()
	var out []event.Effect
	out = append(out, b.Effects().Drain()...)
	for i := 0; b.Pool().Active() > 0; i++ {
		if i > 1000 {
			t.Fatal("projectiles never landed")
		}
		b.Update()
		out = append(out, b.Effects().Drain()...)
	}
	return out
}

func countEffects(effects []event.Effect, typ event.EffectType) int {
	n := 0
	for _, e := range effects {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func firstEffect(effects []event.Effect, typ event.EffectType) (event.Effect, bool) {
	for _, e := range effects {
		if e.Type == typ {
			return e, true
		}
	}
	return event.Effect{}, false
}
