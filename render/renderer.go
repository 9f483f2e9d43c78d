package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/vmath"
	"github.com/lixenwraith/ordnance/world"
)

// Scene is the state drawn in one frame
type Scene struct {
	Grid       *world.Grid
	Viewport   *world.Viewport
	Catalog    *engine.Catalog
	Impassable *engine.ImpassabilityTable
	Pool       *engine.Pool
}

// TerminalRenderer draws the viewport one tile per cell
type TerminalRenderer struct {
	screen  tcell.Screen
	originX int
	originY int
	overlay *Overlay
}

// NewTerminalRenderer creates a renderer whose map area starts at (originX, originY)
func NewTerminalRenderer(screen tcell.Screen, originX, originY int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		originX: originX,
		originY: originY,
		overlay: NewOverlay(),
	}
}

// Overlay returns the transient effect layer
func (r *TerminalRenderer) Overlay() *Overlay {
	return r.overlay
}

// RenderFrame clears, draws the scene and shows the screen
func (r *TerminalRenderer) RenderFrame(s Scene) {
	r.screen.Clear()
	r.Draw(s)
	r.screen.Show()
}

// Draw paints terrain, structures, units, projectiles and overlay marks in that order
func (r *TerminalRenderer) Draw(s Scene) {
	base := tcell.StyleDefault.Background(RgbBackground)
	area := s.Viewport.Area

	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			t := core.Tile{X: area.X + x, Y: area.Y + y}
			glyph, style := r.tileGlyph(s, t, base)
			r.screen.SetContent(r.originX+x, r.originY+y, glyph, nil, style)
		}
	}

	if s.Pool != nil {
		s.Pool.Each(func(_ engine.InstanceID, inst *component.ProjectileInstance) {
			info, ok := s.Catalog.Get(inst.TypeID)
			if !ok {
				return
			}
			r.put(s.Viewport, inst.Position.Tile(), ProjectileGlyph(info.Kind, inst.Facing), base.Foreground(RgbProjectile))
		})
	}

	r.overlay.Each(func(t core.Tile, glyph rune, color tcell.Color) {
		r.put(s.Viewport, t, glyph, base.Foreground(color))
	})
}

// tileGlyph resolves the topmost static occupant of a tile
func (r *TerminalRenderer) tileGlyph(s Scene, t core.Tile, base tcell.Style) (rune, tcell.Style) {
	if u, ok := s.Grid.UnitAt(t); ok {
		return UnitGlyph(u.Movement), base.Foreground(SideColor(u.Side)).Bold(true)
	}
	if st, ok := s.Grid.StructureAt(t); ok {
		if st.Foundation {
			return '░', base.Foreground(SideColor(st.Side))
		}
		return '█', base.Foreground(SideColor(st.Side))
	}

	id := s.Grid.TerrainAt(t)
	if s.Impassable != nil && s.Impassable.IsImpassable(int(id)) {
		return '^', base.Foreground(RgbBlocking)
	}
	if r.overlay.Scorched(t) {
		return ',', base.Foreground(RgbScorch)
	}
	if s.Grid.TerrainClassAt(t) == core.TerrainRock {
		return '#', base.Foreground(RgbRock)
	}
	return '.', base.Foreground(RgbSand)
}

// put draws a glyph over a map tile if the viewport shows it
func (r *TerminalRenderer) put(vp *world.Viewport, t core.Tile, glyph rune, style tcell.Style) {
	if !vp.Contains(t) {
		return
	}
	r.screen.SetContent(r.originX+t.X-vp.Area.X, r.originY+t.Y-vp.Area.Y, glyph, nil, style)
}

// DrawCursor inverts the cell under the cursor tile
func (r *TerminalRenderer) DrawCursor(vp *world.Viewport, t core.Tile) {
	if !vp.Contains(t) {
		return
	}
	x, y := r.originX+t.X-vp.Area.X, r.originY+t.Y-vp.Area.Y
	mainc, combc, _, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, mainc, combc, tcell.StyleDefault.Foreground(RgbBackground).Background(RgbCursor))
}

// DrawLine marks the tiles between two map tiles, green when clear and red when blocked
func (r *TerminalRenderer) DrawLine(vp *world.Viewport, from, to core.Tile, open bool) {
	color := RgbLineBlock
	if open {
		color = RgbLineClear
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(color)

	dx, dy := to.X-from.X, to.Y-from.Y
	steps := max(vmath.Abs(dx), vmath.Abs(dy))
	for i := 1; i < steps; i++ {
		t := core.Tile{X: from.X + dx*i/steps, Y: from.Y + dy*i/steps}
		r.put(vp, t, '·', style)
	}
}

// DrawText writes a status string at screen coordinates
func (r *TerminalRenderer) DrawText(x, y int, text string) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText)
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// ProjectileGlyph picks arrows for kinds with facing and dots for direct fire
func ProjectileGlyph(kind component.ProjectileKind, facing core.Direction) rune {
	switch {
	case kind.HasFacing():
		return parameter.ArrowGlyphs[((int(facing)+1)/2)%len(parameter.ArrowGlyphs)]
	case kind.IsAerial():
		return '+'
	default:
		return '•'
	}
}

// UnitGlyph picks a letter per movement class
func UnitGlyph(m core.MovementClass) rune {
	switch m {
	case core.MovementFoot:
		return 'i'
	case core.MovementWheeled:
		return 'w'
	case core.MovementTracked:
		return 'T'
	case core.MovementAerial:
		return 'A'
	}
	return '?'
}
