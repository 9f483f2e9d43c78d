package main

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ordnance/catalog"
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/vmath"
	"github.com/lixenwraith/ordnance/world"
)

const (
	minMapWidth  = 24
	minMapHeight = 12
)

// terrainOrDefault resolves a catalog terrain by name, falling back to id 0
func terrainOrDefault(cfg *catalog.Config, name string) core.TerrainID {
	id, _ := cfg.TerrainID(name)
	return id
}

// buildScenario lays out a seeded two-base skirmish: rock outcrops, a ridge with a pass,
// an Atreides base on the west edge and a Harkonnen base on the east edge
func buildScenario(cfg *catalog.Config, width, height int, seed uint64) (*world.Grid, error) {
	if width < minMapWidth || height < minMapHeight {
		return nil, fmt.Errorf("map %dx%d smaller than %dx%d", width, height, minMapWidth, minMapHeight)
	}

	grid := world.NewGrid(width, height)
	cfg.ApplyTerrain(grid)
	rng := vmath.NewFastRand(seed)

	sand := terrainOrDefault(cfg, "sand")
	dunes := terrainOrDefault(cfg, "dunes")
	rock := terrainOrDefault(cfg, "rock")
	mountain := terrainOrDefault(cfg, "mountain")
	concrete := terrainOrDefault(cfg, "concrete")

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := sand
			if rng.Intn(6) == 0 {
				id = dunes
			}
			grid.SetTerrain(core.Tile{X: x, Y: y}, id)
		}
	}

	// Outcrops
	for range 4 + rng.Intn(3) {
		cx := width/4 + rng.Intn(width/2)
		cy := rng.Intn(height)
		radius := 1 + rng.Intn(3)
		vmath.ForEachInCircle(radius, func(dx, dy int) bool {
			grid.SetTerrain(core.Tile{X: cx + dx, Y: cy + dy}, rock)
			return true
		})
	}

	// Ridge down the middle with a pass
	ridgeX := width / 2
	pass := height/2 + rng.Intn(3) - 1
	for y := height / 6; y < height-height/6; y++ {
		if y >= pass-1 && y <= pass+1 {
			continue
		}
		grid.SetTerrain(core.Tile{X: ridgeX, Y: y}, mountain)
	}

	baseY := height/2 - 1
	bases := []struct {
		side core.Side
		x    int
	}{
		{core.SideAtreides, 2},
		{core.SideHarkonnen, width - 5},
	}
	for _, b := range bases {
		slab := core.Area{X: b.x - 1, Y: baseY - 2, Width: 2, Height: 1}
		for sx := slab.X; sx < slab.X+slab.Width; sx++ {
			grid.SetTerrain(core.Tile{X: sx, Y: slab.Y}, concrete)
		}
		if _, err := grid.AddStructure(slab, component.Structure{Side: b.side, Health: 20, MaxHealth: 20, Foundation: true}); err != nil {
			return nil, fmt.Errorf("place slab: %w", err)
		}
		yard := core.Area{X: b.x, Y: baseY, Width: 3, Height: 3}
		if _, err := grid.AddStructure(yard, component.Structure{Side: b.side, Health: 400, MaxHealth: 400}); err != nil {
			return nil, fmt.Errorf("place construction yard: %w", err)
		}
		turret := core.Area{X: b.x + 1, Y: baseY + 4, Width: 1, Height: 1}
		if _, err := grid.AddStructure(turret, component.Structure{Side: b.side, Health: 200, MaxHealth: 200}); err != nil {
			return nil, fmt.Errorf("place turret: %w", err)
		}
	}

	// Field units; occupied tiles are skipped
	squads := []struct {
		side     core.Side
		x        int
		movement core.MovementClass
		health   int
	}{
		{core.SideAtreides, 7, core.MovementTracked, 150},
		{core.SideAtreides, 8, core.MovementWheeled, 90},
		{core.SideHarkonnen, width - 9, core.MovementFoot, 40},
		{core.SideHarkonnen, width - 8, core.MovementTracked, 150},
	}
	for _, sq := range squads {
		for range 3 {
			t := core.Tile{X: sq.x, Y: 1 + rng.Intn(height-2)}
			u := component.Unit{Side: sq.side, Movement: sq.movement, Health: sq.health, MaxHealth: sq.health}
			if _, err := grid.AddUnit(t, u); err != nil && !errors.Is(err, world.ErrOccupied) {
				return nil, fmt.Errorf("place unit: %w", err)
			}
		}
	}
	if _, err := grid.AddUnit(core.Tile{X: width / 3, Y: 1}, component.Unit{Side: core.SideHarkonnen, Movement: core.MovementAerial, Health: 60, MaxHealth: 60}); err != nil && !errors.Is(err, world.ErrOccupied) {
		return nil, fmt.Errorf("place ornithopter: %w", err)
	}

	return grid, nil
}
