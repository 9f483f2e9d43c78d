package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
)

// mark is a transient glyph left by an effect request
type mark struct {
	tile  core.Tile
	glyph rune
	color tcell.Color
	delay int
	ttl   int
}

// Overlay holds explosion marks and persistent scorch decals between frames
type Overlay struct {
	marks  []mark
	scorch map[core.Tile]core.TerrainClass
}

func NewOverlay() *Overlay {
	return &Overlay{scorch: make(map[core.Tile]core.TerrainClass)}
}

// Ingest converts drained effects into marks; non-visual effects are ignored
func (o *Overlay) Ingest(effects []event.Effect) {
	for i := range effects {
		e := &effects[i]
		switch e.Type {
		case event.EffectExplosion:
			o.marks = append(o.marks, mark{tile: e.Tile, glyph: '✶', color: RgbExplosion, ttl: parameter.ExplosionMarkFrames})
		case event.EffectSplash:
			glyph := '*'
			if e.Mirror {
				glyph = '⁎'
			}
			o.marks = append(o.marks, mark{tile: e.Tile, glyph: glyph, color: RgbSplash, delay: e.Delay, ttl: parameter.SplashMarkFrames})
		case event.EffectEnvironmentHit:
			o.marks = append(o.marks, mark{tile: e.Tile, glyph: 'x', color: RgbDust, ttl: parameter.EnvironmentMarkFrames})
		case event.EffectUnitDestroyed, event.EffectStructureDestroyed:
			o.marks = append(o.marks, mark{tile: e.Tile, glyph: '%', color: RgbWreck, ttl: parameter.WreckMarkFrames})
		case event.EffectScorch:
			o.scorch[e.Tile] = e.Terrain
		}
	}
}

// Tick ages marks by one frame; delayed marks wait before their lifetime starts
func (o *Overlay) Tick() {
	kept := o.marks[:0]
	for _, m := range o.marks {
		if m.delay > 0 {
			m.delay--
		} else {
			m.ttl--
		}
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	o.marks = kept
}

// Each visits marks that are currently visible, oldest first
func (o *Overlay) Each(fn func(t core.Tile, glyph rune, color tcell.Color)) {
	for _, m := range o.marks {
		if m.delay == 0 {
			fn(m.tile, m.glyph, m.color)
		}
	}
}

// Len returns live marks including delayed ones
func (o *Overlay) Len() int {
	return len(o.marks)
}

// Scorched reports whether a rocket left a decal on the tile
func (o *Overlay) Scorched(t core.Tile) bool {
	_, ok := o.scorch[t]
	return ok
}

// Clear drops marks and decals
func (o *Overlay) Clear() {
	o.marks = o.marks[:0]
	clear(o.scorch)
}
