package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
)

var (
	// ErrPoolFull is returned when every pool slot is live; the request is dropped and may be retried next tick
	ErrPoolFull = errors.New("projectile pool full")

	// ErrNoWeapon is returned for a type id missing from the catalog
	ErrNoWeapon = errors.New("no such projectile type")

	// ErrOutOfBounds is returned when the source or target tile is off the map
	ErrOutOfBounds = errors.New("tile outside map")
)

// Spawn fires a projectile of typeID from the source tile at the target tile
// variant picks the alternate fire sound. Validation happens before a slot is reserved,
// so a failed spawn leaves the pool untouched
func (s *Ballistics) Spawn(side core.Side, srcX, srcY, dstX, dstY, typeID, variant int) (engine.InstanceID, error) {
	info, ok := s.catalog.Get(typeID)
	if !ok {
		s.stats.Rejected++
		return engine.InvalidInstance, fmt.Errorf("spawn type %d: %w", typeID, ErrNoWeapon)
	}

	src := core.Tile{X: srcX, Y: srcY}
	dst := core.Tile{X: dstX, Y: dstY}
	if !engine.InBounds(s.world, src) || !engine.InBounds(s.world, dst) {
		s.stats.Rejected++
		return engine.InvalidInstance, fmt.Errorf("spawn %v -> %v: %w", src, dst, ErrOutOfBounds)
	}

	id, ok := s.pool.Acquire()
	if !ok {
		s.stats.Rejected++
		log.Printf("ballistics: pool full, dropped type %d %v -> %v", typeID, src, dst)
		return engine.InvalidInstance, ErrPoolFull
	}
	inst, _ := s.pool.Get(id)
	*inst = newFlight(side, src, dst, typeID, variant, info)
	s.stats.Spawned++

	if sound := info.SoundFor(variant); sound >= 0 {
		volume := parameter.SoundVolumeFar
		if s.inViewport(src) {
			volume = parameter.SoundVolumeNear
		}
		s.emit(event.Effect{Type: event.EffectSound, Tile: src, Pixel: inst.Source, SoundID: sound, Volume: volume, Side: side})
	}
	if s.inViewport(dst) {
		s.emit(event.Effect{Type: event.EffectHaptic, Tile: dst, Side: side})
	}

	return id, nil
}
