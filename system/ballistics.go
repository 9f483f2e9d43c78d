package system

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/vmath"
)

// BallisticsConfig wires the engine to its collaborators
type BallisticsConfig struct {
	World      engine.World
	Viewport   engine.Viewport // Optional; nil means nothing is on screen
	Catalog    *engine.Catalog
	Impassable *engine.ImpassabilityTable
	Seed       uint64 // Visual jitter seed; same seed and inputs replay the same effects
}

// Stats are cumulative counters since the last Reset
type Stats struct {
	Spawned     int
	Rejected    int
	Impacts     int
	TerrainHits int
	Detonations int
}

// Ballistics owns the projectile pool and runs spawn, flight, impact and line-of-sight
// Single-threaded: Spawn, Update and IsShotClear must be called from the game loop
type Ballistics struct {
	world      engine.World
	viewport   engine.Viewport
	catalog    *engine.Catalog
	impassable *engine.ImpassabilityTable

	pool    *engine.Pool
	effects *event.Batch
	rng     *vmath.FastRand

	frame int64
	stats Stats
}

func NewBallistics(cfg BallisticsConfig) *Ballistics {
	impassable := cfg.Impassable
	if impassable == nil {
		impassable = engine.NewImpassabilityTable(0)
	}
	return &Ballistics{
		world:      cfg.World,
		viewport:   cfg.Viewport,
		catalog:    cfg.Catalog,
		impassable: impassable,
		pool:       engine.NewPool(),
		effects:    event.NewBatch(64),
		rng:        vmath.NewFastRand(cfg.Seed),
	}
}

func (s *Ballistics) Name() string { return "ballistics" }

// Pool exposes the instance arena for rendering and persistence
func (s *Ballistics) Pool() *engine.Pool { return s.pool }

// Catalog returns the active type table
func (s *Ballistics) Catalog() *engine.Catalog { return s.catalog }

// Effects returns the pending effect requests; presentation drains it after each tick
func (s *Ballistics) Effects() *event.Batch { return s.effects }

// Frame returns the number of completed ticks
func (s *Ballistics) Frame() int64 { return s.frame }

// Stats returns a copy of the counters
func (s *Ballistics) Stats() Stats { return s.stats }

// Reset disables every projectile and drops pending effects (full scenario reset)
func (s *Ballistics) Reset() {
	s.pool.Reset()
	s.effects.Drain()
	s.frame = 0
	s.stats = Stats{}
}

// Update advances every active projectile by one simulation tick
// Terminated instances are resolved and released in the same pass
func (s *Ballistics) Update() {
	s.frame++
	s.pool.Each(func(id engine.InstanceID, inst *component.ProjectileInstance) {
		info, ok := s.catalog.Get(inst.TypeID)
		if !ok {
			// Catalog shrank under a live instance
			s.pool.Release(id)
			return
		}

		flight := flightRules{
			world:      s.world,
			impassable: s.impassable,
			source:     inst.SourceTile(),
			side:       inst.Side,
			aerial:     info.Kind.IsAerial(),
			intercept:  info.Kind.IsDirectFire() && !info.Kind.IsAerial(),
		}

		hit, tile := advance(inst, flight.check)
		if hit == impactNone {
			return
		}
		s.terminate(inst, info, hit, tile)
		s.pool.Release(id)
	})
}

// terminate emits the effects of a stopped flight and applies damage where it connects
func (s *Ballistics) terminate(inst *component.ProjectileInstance, info *component.ProjectileTypeInfo, hit impactType, tile core.Tile) {
	switch hit {
	case impactEdge:
		s.emit(event.Effect{Type: event.EffectEnvironmentHit, Tile: tile, Pixel: inst.Position, Side: inst.Side})
	case impactTerrain:
		s.stats.TerrainHits++
		s.emit(event.Effect{Type: event.EffectEnvironmentHit, Tile: tile, Pixel: inst.Position, Side: inst.Side})
		s.emit(event.Effect{Type: event.EffectExplosion, Tile: tile, Pixel: inst.Position, ExplosionID: info.ExplosionID, Side: inst.Side})
	case impactArrived, impactIntercept:
		s.stats.Impacts++
		s.resolveImpact(inst, info, tile)
	}
}

func (s *Ballistics) emit(e event.Effect) {
	e.Frame = s.frame
	s.effects.Push(e)
}

// inViewport treats a missing viewport as off screen
func (s *Ballistics) inViewport(t core.Tile) bool {
	return s.viewport != nil && s.viewport.Contains(t)
}

// sideAt returns the side of whatever occupies the tile, unit first
func (s *Ballistics) sideAt(t core.Tile) (core.Side, bool) {
	if u, ok := s.world.UnitAt(t); ok {
		return u.Side, true
	}
	if st, ok := s.world.StructureAt(t); ok {
		return st.Side, true
	}
	return core.SideNone, false
}

// maxRadius clamps a configured radius to the dedup set bound
func maxRadius(r int) int {
	return max(0, min(r, parameter.MaxExplosionRadius))
}
