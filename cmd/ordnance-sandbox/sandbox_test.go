package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ordnance/audio"
	"github.com/lixenwraith/ordnance/catalog"
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/world"
)

func newTestSandbox(t *testing.T, grid *world.Grid, cfg *catalog.Config) (*sandbox, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 25)

	player := audio.NewPlayer()
	player.SetMuted(true)
	return newSandbox(screen, cfg, grid, player, 7), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestScenarioDeterministic verifies the same seed lays out the same map
func TestScenarioDeterministic(t *testing.T) {
	cfg, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	a, err := buildScenario(cfg, 48, 20, 42)
	if err != nil {
		t.Fatalf("buildScenario: %v", err)
	}
	b, err := buildScenario(cfg, 48, 20, 42)
	if err != nil {
		t.Fatalf("buildScenario: %v", err)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 48; x++ {
			tile := core.Tile{X: x, Y: y}
			if a.TerrainAt(tile) != b.TerrainAt(tile) {
				t.Fatalf("terrain differs at %v", tile)
			}
			_, ua := a.UnitAt(tile)
			_, ub := b.UnitAt(tile)
			if ua != ub {
				t.Fatalf("unit placement differs at %v", tile)
			}
		}
	}
}

// TestScenarioRejectsTinyMap verifies the minimum map size
func TestScenarioRejectsTinyMap(t *testing.T) {
	cfg, _ := catalog.Default()
	if _, err := buildScenario(cfg, 10, 5, 1); err == nil {
		t.Error("expected error for undersized map")
	}
}

// TestSandboxFireResolvesDamage drives the sandbox through key presses and ticks
func TestSandboxFireResolvesDamage(t *testing.T) {
	cfg, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	grid := world.NewGrid(30, 12)
	cfg.ApplyTerrain(grid)
	if _, err := grid.AddUnit(core.Tile{X: 5, Y: 5}, component.Unit{Side: core.SideAtreides, Movement: core.MovementTracked, Health: 150, MaxHealth: 150}); err != nil {
		t.Fatalf("AddUnit: %v", err)
	}
	target, err := grid.AddUnit(core.Tile{X: 20, Y: 5}, component.Unit{Side: core.SideHarkonnen, Movement: core.MovementTracked, Health: 150, MaxHealth: 150})
	if err != nil {
		t.Fatalf("AddUnit: %v", err)
	}

	sb, screen := newTestSandbox(t, grid, cfg)
	defer screen.Fini()

	sb.cursor = core.Tile{X: 5, Y: 5}
	sb.handleKey(key('f'))
	sb.cursor = core.Tile{X: 20, Y: 5}

	cannon, ok := cfg.TypeID("cannon")
	if !ok {
		t.Fatal("cannon missing from default catalog")
	}
	sb.handleKey(key(rune('1' + cannon)))
	if sb.typeID != cannon {
		t.Fatalf("typeID = %d, want %d", sb.typeID, cannon)
	}

	sb.handleKey(key(' '))
	if sb.ballistics.Pool().Active() != 1 {
		t.Fatalf("active = %d after fire, want 1", sb.ballistics.Pool().Active())
	}

	for i := 0; i < 30; i++ {
		sb.tick()
	}

	u, _, _ := grid.Unit(target)
	if u.Health != 125 {
		t.Errorf("target health = %d, want 125", u.Health)
	}
	if sb.ballistics.Pool().Active() != 0 {
		t.Errorf("active = %d after landing, want 0", sb.ballistics.Pool().Active())
	}
}

// TestSandboxSaveLoad verifies a saved pool is restored after reset
func TestSandboxSaveLoad(t *testing.T) {
	cfg, _ := catalog.Default()
	grid := world.NewGrid(40, 12)
	cfg.ApplyTerrain(grid)

	sb, screen := newTestSandbox(t, grid, cfg)
	defer screen.Fini()

	sb.source = core.Tile{X: 1, Y: 1}
	sb.cursor = core.Tile{X: 38, Y: 10}
	sb.handleKey(key(' '))
	sb.handleKey(key(' '))
	sb.handleKey(key('s'))
	sb.handleKey(key('r'))
	if sb.ballistics.Pool().Active() != 0 {
		t.Fatalf("active after reset = %d, want 0", sb.ballistics.Pool().Active())
	}

	sb.handleKey(key('l'))
	if sb.ballistics.Pool().Active() != 2 {
		t.Errorf("active after load = %d, want 2", sb.ballistics.Pool().Active())
	}
}

// TestSandboxDrawsStatus verifies the HUD shows the selected type and sight state
func TestSandboxDrawsStatus(t *testing.T) {
	cfg, _ := catalog.Default()
	grid := world.NewGrid(40, 12)
	cfg.ApplyTerrain(grid)

	sb, screen := newTestSandbox(t, grid, cfg)
	defer screen.Fini()

	sb.draw()

	var line []rune
	for x := 0; x < 80; x++ {
		mainc, _, _, _ := screen.GetContent(x, sb.viewport.Area.Height)
		line = append(line, mainc)
	}
	want := "[1] bullet (bullet)"
	if got := string(line[:len([]rune(want))]); got != want {
		t.Errorf("status = %q, want prefix %q", string(line), want)
	}
}

// TestSandboxQuitKeys verifies q and escape end the loop
func TestSandboxQuitKeys(t *testing.T) {
	cfg, _ := catalog.Default()
	grid := world.NewGrid(30, 12)
	sb, screen := newTestSandbox(t, grid, cfg)
	defer screen.Fini()

	if !sb.handleKey(key('q')) {
		t.Error("q should quit")
	}
	if !sb.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if sb.handleKey(key('p')) {
		t.Error("p should not quit")
	}
}
