package event

// EffectType represents the kind of effect request emitted by the ballistics engine
type EffectType int

const (
	// === Audio / Haptic ===

	// EffectSound requests a one-shot sound
	// Trigger: Spawn | Consumer: audio.Player | Fields: SoundID, Volume, Tile
	EffectSound EffectType = iota

	// EffectHaptic requests controller rumble for a shot landing on screen
	// Trigger: Spawn | Consumer: input layer | Fields: Tile
	EffectHaptic

	// === Visual ===

	// EffectExplosion requests the projectile type's impact explosion
	// Trigger: every terminated instance | Consumer: renderer, audio.Player | Fields: ExplosionID, Pixel, Tile
	EffectExplosion

	// EffectSplash requests a small secondary explosion on an area-damage tile
	// Trigger: Shell detonation | Consumer: renderer | Fields: Tile, Mirror, Delay
	EffectSplash

	// EffectScorch requests a terrain overlay under a rocket impact
	// Trigger: Rocket hitting bare terrain | Consumer: renderer | Fields: Tile, Terrain
	EffectScorch

	// EffectEnvironmentHit signals a projectile stopped by impassable terrain or the map edge
	// Trigger: Stepper | Consumer: renderer, audio.Player | Fields: Tile, Pixel
	EffectEnvironmentHit

	// === Combat ===

	// EffectUnitDamaged signals a unit health change that left it alive
	// Trigger: Impact resolver | Consumer: unit lifecycle | Fields: Unit, Health, Amount
	EffectUnitDamaged

	// EffectUnitDestroyed signals a unit reduced to zero health
	// Trigger: Impact resolver | Consumer: unit lifecycle | Fields: Unit, Tile
	EffectUnitDestroyed

	// EffectStructureDamaged signals a structure health change that left it standing
	// Trigger: Impact resolver | Consumer: structure lifecycle | Fields: Structure, Health, Amount
	EffectStructureDamaged

	// EffectStructureDestroyed signals a structure reduced to zero health
	// Trigger: Impact resolver | Consumer: structure lifecycle | Fields: Structure, Tile
	EffectStructureDestroyed

	EffectTypeCount
)

var effectTypeNames = [EffectTypeCount]string{
	"sound", "haptic", "explosion", "splash", "scorch", "environment_hit",
	"unit_damaged", "unit_destroyed", "structure_damaged", "structure_destroyed",
}

func (t EffectType) String() string {
	if t >= 0 && t < EffectTypeCount {
		return effectTypeNames[t]
	}
	return "unknown"
}
