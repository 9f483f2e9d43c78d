package system

import (
	"testing"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/vmath"
	"github.com/lixenwraith/ordnance/world"
)

// TestFlightLinearity verifies the position after every tick lies on the source-target line
func TestFlightLinearity(t *testing.T) {
	b, _ := newTestBallistics(32, 32)
	id := mustSpawn(t, b, core.SideAtreides, 2, 2, 17, 9, typeCannon)
	inst, _ := b.Pool().Get(id)

	src, dst := inst.Source, inst.Target
	for inst.Timer < inst.TimeRequired-1 {
		b.Update()
		wantX := src.X + vmath.MulDiv(dst.X-src.X, inst.Timer, inst.TimeRequired)
		wantY := src.Y + vmath.MulDiv(dst.Y-src.Y, inst.Timer, inst.TimeRequired)
		if inst.Position.X != wantX || inst.Position.Y != wantY {
			t.Fatalf("tick %d: position %v, want (%d,%d)", inst.Timer, inst.Position, wantX, wantY)
		}
	}

	b.Update()
	if b.Pool().Active() != 0 {
		t.Fatal("projectile did not land on its final tick")
	}
	if b.Stats().Impacts != 1 {
		t.Errorf("impacts = %d, want 1", b.Stats().Impacts)
	}
}

// TestTimeRequired verifies flight time is distance over speed, at least one tick
func TestTimeRequired(t *testing.T) {
	b, _ := newTestBallistics(32, 32)

	id := mustSpawn(t, b, core.SideAtreides, 0, 0, 10, 0, typeCannon)
	inst, _ := b.Pool().Get(id)
	if inst.TimeRequired != 10 {
		t.Errorf("TimeRequired = %d, want 10", inst.TimeRequired)
	}

	id = mustSpawn(t, b, core.SideAtreides, 4, 4, 4, 4, typeCannon)
	inst, _ = b.Pool().Get(id)
	if inst.TimeRequired != 1 {
		t.Errorf("same-tile TimeRequired = %d, want 1", inst.TimeRequired)
	}

	b.Update()
	if _, ok := b.Pool().Get(id); ok {
		t.Error("same-tile shot should resolve on the first tick")
	}
}

// TestGameSpeedScalesFlight verifies rescaling the catalog shortens later flights
func TestGameSpeedScalesFlight(t *testing.T) {
	b, _ := newTestBallistics(32, 32)
	b.Catalog().Rescale(200)

	id := mustSpawn(t, b, core.SideAtreides, 0, 0, 10, 0, typeCannon)
	inst, _ := b.Pool().Get(id)
	if inst.TimeRequired != 5 {
		t.Errorf("TimeRequired at 200%% = %d, want 5", inst.TimeRequired)
	}
}

// TestNoTunnelingThroughWall verifies a fast shot stops at a one-tile wall it would jump over
func TestNoTunnelingThroughWall(t *testing.T) {
	b, g := newTestBallistics(16, 8)
	g.SetTerrain(core.Tile{X: 5, Y: 3}, terrainWall)
	target := addUnit(t, g, 10, 3, core.SideHarkonnen, core.MovementTracked, 100)

	mustSpawn(t, b, core.SideAtreides, 1, 3, 10, 3, typeRailgun)
	effects := runUntilIdle(t, b)

	if b.Stats().TerrainHits != 1 {
		t.Fatalf("terrain hits = %d, want 1", b.Stats().TerrainHits)
	}
	e, ok := firstEffect(effects, event.EffectEnvironmentHit)
	if !ok || e.Tile != (core.Tile{X: 5, Y: 3}) {
		t.Errorf("environment hit = %+v, want tile (5,3)", e)
	}
	if e.Pixel != (core.Tile{X: 5, Y: 3}).Center() {
		t.Errorf("stop pixel = %v, want wall centre", e.Pixel)
	}
	if countEffects(effects, event.EffectExplosion) != 1 {
		t.Error("terrain hit should still explode")
	}
	if unitHealth(g, target) != 100 {
		t.Error("unit behind the wall was damaged")
	}
}

// TestNoTunnelingThroughCorner verifies a diagonal through exact tile corners is stopped by a side tile
func TestNoTunnelingThroughCorner(t *testing.T) {
	b, g := newTestBallistics(16, 16)
	g.SetTerrain(core.Tile{X: 5, Y: 4}, terrainWall)

	mustSpawn(t, b, core.SideAtreides, 1, 1, 9, 9, typeRailgun)
	effects := runUntilIdle(t, b)

	e, ok := firstEffect(effects, event.EffectEnvironmentHit)
	if !ok || e.Tile != (core.Tile{X: 5, Y: 4}) {
		t.Errorf("environment hit = %+v, want side tile (5,4)", e)
	}
}

// sampledTiles lists the tiles containing dense rational samples of the segment from a to b, in order
func sampledTiles(a, b core.Pixel) []core.Tile {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := 64 * max(1, vmath.Abs(dx), vmath.Abs(dy))
	var out []core.Tile
	for i := 0; i <= n; i++ {
		t := core.Tile{
			X: (a.X*n + dx*i) / (parameter.PixelsPerTile * n),
			Y: (a.Y*n + dy*i) / (parameter.PixelsPerTile * n),
		}
		if len(out) == 0 || out[len(out)-1] != t {
			out = append(out, t)
		}
	}
	return out
}

// TestNoTunnelingArbitrarySlopes verifies a wall on any tile the flight line crosses stops the
// flight and blocks the prediction, for arbitrary slopes and speeds well above one tile per tick
func TestNoTunnelingArbitrarySlopes(t *testing.T) {
	const size = 32
	rng := vmath.NewFastRand(77)

	for _, speed := range []int{23, 40, 200, 10000} {
		grid := world.NewGrid(size, size)
		b := NewBallistics(BallisticsConfig{
			World:      grid,
			Catalog:    engine.NewCatalog([]component.ProjectileTypeInfo{{Name: "fast", Kind: component.KindRocket, Power: 40, BaseSpeed: speed}}, 100),
			Impassable: newTestImpassable(),
			Seed:       1,
		})
		info, _ := b.Catalog().Get(0)

		for pair := 0; pair < 20; pair++ {
			src := core.Tile{X: rng.Intn(size), Y: rng.Intn(size)}
			dst := core.Tile{X: rng.Intn(size), Y: rng.Intn(size)}
			if src == dst {
				continue
			}

			// Oracle: the interpolated post-tick positions joined by straight segments
			flight := newFlight(core.SideAtreides, src, dst, 0, 0, info)
			seen := map[core.Tile]bool{src: true}
			var crossed []core.Tile
			prev := flight.Source
			for k := 1; k <= flight.TimeRequired; k++ {
				next := core.Pixel{
					X: flight.Source.X + vmath.MulDiv(flight.Target.X-flight.Source.X, k, flight.TimeRequired),
					Y: flight.Source.Y + vmath.MulDiv(flight.Target.Y-flight.Source.Y, k, flight.TimeRequired),
				}
				for _, tile := range sampledTiles(prev, next) {
					if !seen[tile] {
						seen[tile] = true
						crossed = append(crossed, tile)
					}
				}
				prev = next
			}

			for _, wall := range crossed {
				grid.SetTerrain(wall, terrainWall)

				if b.IsShotClear(src.X, src.Y, 0, dst.X, dst.Y) {
					t.Errorf("speed %d %v->%v wall %v: predicted clear", speed, src, dst, wall)
				}

				before := b.Stats().TerrainHits
				mustSpawn(t, b, core.SideAtreides, src.X, src.Y, dst.X, dst.Y, 0)
				effects := runUntilIdle(t, b)
				if b.Stats().TerrainHits != before+1 {
					t.Errorf("speed %d %v->%v wall %v: flight passed through", speed, src, dst, wall)
				} else if e, _ := firstEffect(effects, event.EffectEnvironmentHit); e.Tile != wall {
					t.Errorf("speed %d %v->%v: stopped at %v, want %v", speed, src, dst, e.Tile, wall)
				}

				grid.SetTerrain(wall, 0)
			}
		}
	}
}

// TestInterception verifies direct fire stops on the first enemy unit and ignores friends
func TestInterception(t *testing.T) {
	b, g := newTestBallistics(16, 8)
	shooter := addUnit(t, g, 1, 5, core.SideAtreides, core.MovementTracked, 100)
	friend := addUnit(t, g, 3, 5, core.SideAtreides, core.MovementFoot, 100)
	blocker := addUnit(t, g, 6, 5, core.SideHarkonnen, core.MovementTracked, 100)
	target := addUnit(t, g, 10, 5, core.SideHarkonnen, core.MovementTracked, 100)

	mustSpawn(t, b, core.SideAtreides, 1, 5, 10, 5, typeCannon)
	runUntilIdle(t, b)

	if unitHealth(g, blocker) != 75 {
		t.Errorf("blocker health = %d, want 75", unitHealth(g, blocker))
	}
	if unitHealth(g, target) != 100 || unitHealth(g, friend) != 100 || unitHealth(g, shooter) != 100 {
		t.Error("only the intercepting unit should be damaged")
	}
}

// TestRocketNotIntercepted verifies rockets fly over units to their target
func TestRocketNotIntercepted(t *testing.T) {
	b, g := newTestBallistics(16, 8)
	blocker := addUnit(t, g, 6, 5, core.SideHarkonnen, core.MovementTracked, 100)
	target := addUnit(t, g, 10, 5, core.SideHarkonnen, core.MovementTracked, 100)

	mustSpawn(t, b, core.SideAtreides, 1, 5, 10, 5, typeRocket)
	runUntilIdle(t, b)

	if unitHealth(g, blocker) != 100 {
		t.Error("rocket was intercepted")
	}
	if unitHealth(g, target) != 60 {
		t.Errorf("target health = %d, want 60", unitHealth(g, target))
	}
}

// TestAerialIgnoresTerrain verifies aerial kinds cross impassable terrain and enemy units
func TestAerialIgnoresTerrain(t *testing.T) {
	b, g := newTestBallistics(16, 8)
	for y := 0; y < 8; y++ {
		g.SetTerrain(core.Tile{X: 5, Y: y}, terrainWall)
	}
	blocker := addUnit(t, g, 7, 2, core.SideHarkonnen, core.MovementFoot, 100)
	target := addUnit(t, g, 12, 2, core.SideHarkonnen, core.MovementFoot, 100)

	mustSpawn(t, b, core.SideAtreides, 1, 2, 12, 2, typeAerialShot)
	runUntilIdle(t, b)

	if b.Stats().TerrainHits != 0 {
		t.Error("aerial shot hit terrain")
	}
	if unitHealth(g, blocker) != 100 || unitHealth(g, target) != 90 {
		t.Errorf("blocker %d target %d, want 100 and 90", unitHealth(g, blocker), unitHealth(g, target))
	}
}

// TestSourceTileExempt verifies a shooter standing on impassable terrain can still fire out
func TestSourceTileExempt(t *testing.T) {
	b, g := newTestBallistics(16, 8)
	g.SetTerrain(core.Tile{X: 1, Y: 1}, terrainWall)

	mustSpawn(t, b, core.SideAtreides, 1, 1, 8, 1, typeCannon)
	runUntilIdle(t, b)

	if b.Stats().TerrainHits != 0 || b.Stats().Impacts != 1 {
		t.Errorf("stats = %+v, want one clean impact", b.Stats())
	}
}

// TestFacingSet verifies rockets carry a heading and direct fire does not
func TestFacingSet(t *testing.T) {
	b, _ := newTestBallistics(16, 16)
	rocket := mustSpawn(t, b, core.SideAtreides, 8, 8, 8, 2, typeRocket)
	inst, _ := b.Pool().Get(rocket)
	if inst.Facing != core.DirN {
		t.Errorf("rocket facing = %d, want N", inst.Facing)
	}

	shell := mustSpawn(t, b, core.SideAtreides, 8, 8, 2, 14, typeShell)
	inst, _ = b.Pool().Get(shell)
	if inst.Facing != core.DirSW {
		t.Errorf("shell facing = %d, want SW", inst.Facing)
	}
}
