package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ordnance/audio"
	"github.com/lixenwraith/ordnance/catalog"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/render"
	"github.com/lixenwraith/ordnance/system"
	"github.com/lixenwraith/ordnance/vmath"
	"github.com/lixenwraith/ordnance/world"
)

// statusRows are reserved below the map for the HUD
const statusRows = 2

// sandbox is the interactive firing range: one cursor, one firing tile, one selected type
type sandbox struct {
	screen     tcell.Screen
	renderer   *render.TerminalRenderer
	player     *audio.Player
	grid       *world.Grid
	viewport   *world.Viewport
	impassable *engine.ImpassabilityTable
	ballistics *system.Ballistics
	rng        *vmath.FastRand

	source  core.Tile
	cursor  core.Tile
	typeID  int
	variant int
	paused  bool
	saved   []byte
	message string
}

func newSandbox(screen tcell.Screen, cfg *catalog.Config, grid *world.Grid, player *audio.Player, seed uint64) *sandbox {
	sb := &sandbox{
		screen:     screen,
		renderer:   render.NewTerminalRenderer(screen, 0, 0),
		player:     player,
		grid:       grid,
		viewport:   &world.Viewport{},
		impassable: cfg.Impassability(),
		rng:        vmath.NewFastRand(seed ^ 0x9E3779B97F4A7C15),
		source:     core.Tile{X: 6, Y: grid.Height / 2},
		cursor:     core.Tile{X: grid.Width - 7, Y: grid.Height / 2},
	}
	sb.ballistics = system.NewBallistics(system.BallisticsConfig{
		World:      grid,
		Viewport:   sb.viewport,
		Catalog:    cfg.Catalog(),
		Impassable: sb.impassable,
		Seed:       seed,
	})
	sb.resize()
	return sb
}

// loop multiplexes input and the simulation ticker until quit or cancellation
func (s *sandbox) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.SandboxFrameInterval)
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
				s.resize()
			}
		case <-ticker.C:
			if !s.paused {
				s.tick()
			}
		}
		s.draw()
	}
}

// resize fits the viewport to the screen, keeping the cursor visible
func (s *sandbox) resize() {
	w, h := s.screen.Size()
	s.viewport.Area.Width = max(1, min(w, s.grid.Width))
	s.viewport.Area.Height = max(1, min(h-statusRows, s.grid.Height))
	s.follow()
}

// follow pans the viewport so the cursor stays on screen
func (s *sandbox) follow() {
	a := &s.viewport.Area
	dx, dy := 0, 0
	if s.cursor.X < a.X {
		dx = s.cursor.X - a.X
	} else if s.cursor.X >= a.X+a.Width {
		dx = s.cursor.X - (a.X + a.Width - 1)
	}
	if s.cursor.Y < a.Y {
		dy = s.cursor.Y - a.Y
	} else if s.cursor.Y >= a.Y+a.Height {
		dy = s.cursor.Y - (a.Y + a.Height - 1)
	}
	s.viewport.Pan(dx, dy, s.grid.Width, s.grid.Height)
}

// handleKey applies one key press; returns true to quit
func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.moveCursor(0, -1)
	case tcell.KeyDown:
		s.moveCursor(0, 1)
	case tcell.KeyLeft:
		s.moveCursor(-1, 0)
	case tcell.KeyRight:
		s.moveCursor(1, 0)
	case tcell.KeyEnter:
		s.fire(s.cursor)
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return false
}

func (s *sandbox) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return true
	case r == ' ':
		s.fire(s.cursor)
	case r >= '1' && r <= '9':
		s.selectType(int(r - '1'))
	case r == 'f':
		s.source = s.cursor
		s.message = fmt.Sprintf("firing from %d,%d", s.source.X, s.source.Y)
	case r == 'v':
		s.variant ^= 1
	case r == 'b':
		s.barrage()
	case r == 'p':
		s.paused = !s.paused
	case r == '.':
		if s.paused {
			s.tick()
		}
	case r == '+' || r == '=':
		s.rescale(parameter.SandboxSpeedStep)
	case r == '-':
		s.rescale(-parameter.SandboxSpeedStep)
	case r == 's':
		s.save()
	case r == 'l':
		s.load()
	case r == 'm':
		s.player.SetMuted(!s.player.Muted())
	case r == 'r':
		s.ballistics.Reset()
		s.renderer.Overlay().Clear()
		s.message = "reset"
	}
	return false
}

func (s *sandbox) moveCursor(dx, dy int) {
	s.cursor.X = max(0, min(s.grid.Width-1, s.cursor.X+dx))
	s.cursor.Y = max(0, min(s.grid.Height-1, s.cursor.Y+dy))
	s.follow()
}

func (s *sandbox) selectType(id int) {
	info, ok := s.ballistics.Catalog().Get(id)
	if !ok {
		s.message = fmt.Sprintf("no type %d", id+1)
		return
	}
	s.typeID = id
	s.message = "selected " + info.Name
}

// shooterSide takes the side of whatever occupies the firing tile
func (s *sandbox) shooterSide() core.Side {
	if u, ok := s.grid.UnitAt(s.source); ok {
		return u.Side
	}
	if st, ok := s.grid.StructureAt(s.source); ok {
		return st.Side
	}
	return core.SideAtreides
}

func (s *sandbox) fire(target core.Tile) bool {
	_, err := s.ballistics.Spawn(s.shooterSide(), s.source.X, s.source.Y, target.X, target.Y, s.typeID, s.variant)
	if err != nil {
		s.message = err.Error()
		if errors.Is(err, system.ErrPoolFull) {
			log.Printf("sandbox: spawn dropped, %d live projectiles", s.ballistics.Pool().Active())
		}
		return false
	}
	return true
}

// barrage scatters a salvo around the cursor
func (s *sandbox) barrage() {
	fired := 0
	for range parameter.SandboxBarrageSize {
		t := s.cursor.Add(s.rng.Intn(5)-2, s.rng.Intn(5)-2)
		if s.fire(t) {
			fired++
		}
	}
	s.message = fmt.Sprintf("barrage: %d/%d away", fired, parameter.SandboxBarrageSize)
}

func (s *sandbox) rescale(delta int) {
	cat := s.ballistics.Catalog()
	cat.Rescale(cat.GameSpeed() + delta)
	s.message = fmt.Sprintf("game speed %d%%", cat.GameSpeed())
}

func (s *sandbox) save() {
	data, err := s.ballistics.Pool().Save()
	if err != nil {
		s.message = "save failed: " + err.Error()
		log.Printf("sandbox: save: %v", err)
		return
	}
	s.saved = data
	s.message = fmt.Sprintf("saved %d projectiles (%d bytes)", s.ballistics.Pool().Active(), len(data))
}

func (s *sandbox) load() {
	if s.saved == nil {
		s.message = "nothing saved"
		return
	}
	if err := s.ballistics.Pool().Load(s.saved); err != nil {
		s.message = "load failed: " + err.Error()
		log.Printf("sandbox: load: %v", err)
		return
	}
	s.message = fmt.Sprintf("restored %d projectiles", s.ballistics.Pool().Active())
}

// tick advances the simulation and fans effects out to the overlay, audio and log
func (s *sandbox) tick() {
	s.ballistics.Update()
	effects := s.ballistics.Effects().Drain()

	overlay := s.renderer.Overlay()
	overlay.Tick()
	overlay.Ingest(effects)
	s.player.HandleAll(effects)

	for i := range effects {
		e := &effects[i]
		switch e.Type {
		case event.EffectUnitDestroyed:
			log.Printf("frame %d: unit %d destroyed at %d,%d", e.Frame, e.Unit, e.Tile.X, e.Tile.Y)
		case event.EffectStructureDestroyed:
			log.Printf("frame %d: structure %d destroyed at %d,%d", e.Frame, e.Structure, e.Tile.X, e.Tile.Y)
		}
	}
}

func (s *sandbox) draw() {
	s.screen.Clear()
	s.renderer.Draw(render.Scene{
		Grid:       s.grid,
		Viewport:   s.viewport,
		Catalog:    s.ballistics.Catalog(),
		Impassable: s.impassable,
		Pool:       s.ballistics.Pool(),
	})

	open := s.ballistics.IsShotClear(s.source.X, s.source.Y, s.typeID, s.cursor.X, s.cursor.Y)
	s.renderer.DrawLine(s.viewport, s.source, s.cursor, open)
	s.renderer.DrawCursor(s.viewport, s.cursor)

	y := s.viewport.Area.Height
	s.renderer.DrawText(0, y, s.statusLine(open))
	s.renderer.DrawText(0, y+1, s.message)
	s.screen.Show()
}

func (s *sandbox) statusLine(open bool) string {
	name := "?"
	if info, ok := s.ballistics.Catalog().Get(s.typeID); ok {
		name = fmt.Sprintf("%s (%s)", info.Name, info.Kind)
	}
	sight := "blocked"
	if open {
		sight = "clear"
	}
	st := s.ballistics.Stats()
	line := fmt.Sprintf("[%d] %s v%d | %s | speed %d%% | live %d/%d | fired %d hit %d",
		s.typeID+1, name, s.variant, sight, s.ballistics.Catalog().GameSpeed(),
		s.ballistics.Pool().Active(), s.ballistics.Pool().Capacity(), st.Spawned, st.Impacts)
	if s.paused {
		line += " | paused"
	}
	if s.player.Muted() {
		line += " | muted"
	}
	return line
}
