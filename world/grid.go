package world

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
)

var (
	ErrOutOfBounds = errors.New("tile outside grid")
	ErrOccupied    = errors.New("tile occupied")
	ErrUnknown     = errors.New("unknown entity")
)

// Grid is a dense in-memory world: terrain per tile, one unit per tile,
// structures covering rectangular footprints
// Index = y*Width + x; zero ids mean empty
type Grid struct {
	Width  int
	Height int

	terrain []core.TerrainID
	unitAt  []core.UnitID
	builtAt []core.StructureID

	classes map[core.TerrainID]core.TerrainClass

	units      map[core.UnitID]*unitRecord
	structures map[core.StructureID]*structureRecord

	nextUnit      core.UnitID
	nextStructure core.StructureID
}

type unitRecord struct {
	component.Unit
	tile core.Tile
}

type structureRecord struct {
	component.Structure
	footprint core.Area
}

// NewGrid creates a width x height map of terrain id 0 (sand class)
func NewGrid(width, height int) *Grid {
	n := width * height
	return &Grid{
		Width:      width,
		Height:     height,
		terrain:    make([]core.TerrainID, n),
		unitAt:     make([]core.UnitID, n),
		builtAt:    make([]core.StructureID, n),
		classes:    make(map[core.TerrainID]core.TerrainClass),
		units:      make(map[core.UnitID]*unitRecord),
		structures: make(map[core.StructureID]*structureRecord),
	}
}

func (g *Grid) index(t core.Tile) (int, bool) {
	if t.X < 0 || t.X >= g.Width || t.Y < 0 || t.Y >= g.Height {
		return 0, false
	}
	return t.Y*g.Width + t.X, true
}

// Size returns the map dimensions in tiles
func (g *Grid) Size() (int, int) {
	return g.Width, g.Height
}

// SetTerrain paints a terrain id; out-of-bounds tiles are ignored
func (g *Grid) SetTerrain(t core.Tile, id core.TerrainID) {
	if idx, ok := g.index(t); ok {
		g.terrain[idx] = id
	}
}

// SetTerrainClass assigns the overlay category of a terrain id
func (g *Grid) SetTerrainClass(id core.TerrainID, class core.TerrainClass) {
	g.classes[id] = class
}

// TerrainAt returns the terrain id, 0 off the map
func (g *Grid) TerrainAt(t core.Tile) core.TerrainID {
	if idx, ok := g.index(t); ok {
		return g.terrain[idx]
	}
	return 0
}

// TerrainClassAt returns the overlay category; unregistered ids are sand
func (g *Grid) TerrainClassAt(t core.Tile) core.TerrainClass {
	return g.classes[g.TerrainAt(t)]
}

// AddUnit places a unit; the returned id is assigned by the grid
func (g *Grid) AddUnit(t core.Tile, u component.Unit) (core.UnitID, error) {
	idx, ok := g.index(t)
	if !ok {
		return 0, fmt.Errorf("add unit at %v: %w", t, ErrOutOfBounds)
	}
	if g.unitAt[idx] != 0 {
		return 0, fmt.Errorf("add unit at %v: %w", t, ErrOccupied)
	}
	g.nextUnit++
	u.ID = g.nextUnit
	g.units[u.ID] = &unitRecord{Unit: u, tile: t}
	g.unitAt[idx] = u.ID
	return u.ID, nil
}

// AddStructure places a structure over a footprint; every footprint tile must be free of structures
func (g *Grid) AddStructure(area core.Area, st component.Structure) (core.StructureID, error) {
	if area.Width < 1 || area.Height < 1 {
		return 0, fmt.Errorf("add structure %+v: empty footprint", area)
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			idx, ok := g.index(core.Tile{X: x, Y: y})
			if !ok {
				return 0, fmt.Errorf("add structure %+v: %w", area, ErrOutOfBounds)
			}
			if g.builtAt[idx] != 0 {
				return 0, fmt.Errorf("add structure %+v: %w", area, ErrOccupied)
			}
		}
	}

	g.nextStructure++
	st.ID = g.nextStructure
	g.structures[st.ID] = &structureRecord{Structure: st, footprint: area}
	g.fill(area, st.ID)
	return st.ID, nil
}

func (g *Grid) fill(area core.Area, id core.StructureID) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			idx, _ := g.index(core.Tile{X: x, Y: y})
			g.builtAt[idx] = id
		}
	}
}

// UnitAt returns the unit occupying the tile
func (g *Grid) UnitAt(t core.Tile) (component.Unit, bool) {
	idx, ok := g.index(t)
	if !ok || g.unitAt[idx] == 0 {
		return component.Unit{}, false
	}
	return g.units[g.unitAt[idx]].Unit, true
}

// StructureAt returns the structure whose footprint covers the tile
func (g *Grid) StructureAt(t core.Tile) (component.Structure, bool) {
	idx, ok := g.index(t)
	if !ok || g.builtAt[idx] == 0 {
		return component.Structure{}, false
	}
	return g.structures[g.builtAt[idx]].Structure, true
}

// Unit looks up a unit by id, including destroyed ones
func (g *Grid) Unit(id core.UnitID) (component.Unit, core.Tile, bool) {
	r, ok := g.units[id]
	if !ok {
		return component.Unit{}, core.Tile{}, false
	}
	return r.Unit, r.tile, true
}

// Structure looks up a structure by id, including destroyed ones
func (g *Grid) Structure(id core.StructureID) (component.Structure, core.Area, bool) {
	r, ok := g.structures[id]
	if !ok {
		return component.Structure{}, core.Area{}, false
	}
	return r.Structure, r.footprint, true
}

// SetUnitHealth stores health; at zero the unit leaves the occupancy index
func (g *Grid) SetUnitHealth(id core.UnitID, health int) {
	r, ok := g.units[id]
	if !ok {
		return
	}
	r.Health = health
	if health == 0 {
		if idx, ok := g.index(r.tile); ok && g.unitAt[idx] == id {
			g.unitAt[idx] = 0
		}
	}
}

// SetStructureHealth stores health; at zero the footprint is cleared
func (g *Grid) SetStructureHealth(id core.StructureID, health int) {
	r, ok := g.structures[id]
	if !ok {
		return
	}
	r.Health = health
	if health == 0 {
		g.fill(r.footprint, 0)
	}
}

// MoveUnit relocates a live unit
func (g *Grid) MoveUnit(id core.UnitID, to core.Tile) error {
	r, ok := g.units[id]
	if !ok {
		return fmt.Errorf("move unit %d: %w", id, ErrUnknown)
	}
	dst, ok := g.index(to)
	if !ok {
		return fmt.Errorf("move unit %d to %v: %w", id, to, ErrOutOfBounds)
	}
	if g.unitAt[dst] != 0 && g.unitAt[dst] != id {
		return fmt.Errorf("move unit %d to %v: %w", id, to, ErrOccupied)
	}
	if src, ok := g.index(r.tile); ok && g.unitAt[src] == id {
		g.unitAt[src] = 0
	}
	g.unitAt[dst] = id
	r.tile = to
	return nil
}

// EachUnit visits live units in no particular order
func (g *Grid) EachUnit(fn func(u component.Unit, t core.Tile)) {
	for _, r := range g.units {
		if r.Health != 0 {
			fn(r.Unit, r.tile)
		}
	}
}

// EachStructure visits standing structures
func (g *Grid) EachStructure(fn func(st component.Structure, area core.Area)) {
	for _, r := range g.structures {
		if r.Health != 0 {
			fn(r.Structure, r.footprint)
		}
	}
}
