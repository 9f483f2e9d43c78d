package component

import (
	"github.com/lixenwraith/ordnance/core"
)

// ProjectileKind selects flight and impact rules
type ProjectileKind uint8

const (
	KindShot ProjectileKind = iota
	KindAerialShot
	KindBullet
	KindAerialBullet
	KindRocket
	KindAerialRocket
	KindShell
	KindAerialShell

	KindCount
)

var kindNames = [KindCount]string{
	"shot", "aerial_shot", "bullet", "aerial_bullet",
	"rocket", "aerial_rocket", "shell", "aerial_shell",
}

func (k ProjectileKind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// ParseProjectileKind resolves a configuration name to a kind
func ParseProjectileKind(name string) (ProjectileKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ProjectileKind(i), true
		}
	}
	return 0, false
}

// IsAerial reports kinds that are never blocked by terrain
func (k ProjectileKind) IsAerial() bool {
	switch k {
	case KindAerialShot, KindAerialBullet, KindAerialRocket, KindAerialShell:
		return true
	}
	return false
}

// IsDirectFire reports Shot/Bullet kinds, aerial included
func (k ProjectileKind) IsDirectFire() bool {
	return k <= KindAerialBullet
}

// IsRocket reports Rocket and AerialRocket
func (k ProjectileKind) IsRocket() bool {
	return k == KindRocket || k == KindAerialRocket
}

// IsExplosive reports Shell and AerialShell, the kinds with area damage
func (k ProjectileKind) IsExplosive() bool {
	return k == KindShell || k == KindAerialShell
}

// HasFacing reports kinds drawn with a rotated sprite
func (k ProjectileKind) HasFacing() bool {
	return k.IsRocket() || k.IsExplosive()
}

// EffectModifier adjusts base power against a target category
type EffectModifier uint8

const (
	ModifierNormal EffectModifier = iota
	ModifierNil
	ModifierDiminished // x0.70
	ModifierIncreased  // x1.30
	ModifierInstant    // target's maximum health

	ModifierCount
)

var modifierNames = [ModifierCount]string{"normal", "nil", "diminished", "increased", "instant"}

func (m EffectModifier) String() string {
	if m < ModifierCount {
		return modifierNames[m]
	}
	return "unknown"
}

// ParseEffectModifier resolves a configuration name to a modifier
func ParseEffectModifier(name string) (EffectModifier, bool) {
	for i, n := range modifierNames {
		if n == name {
			return EffectModifier(i), true
		}
	}
	return 0, false
}

// ModifierCategory indexes the effect modifier table
type ModifierCategory uint8

const (
	CategoryFriendly ModifierCategory = iota
	CategoryEnemy
	CategoryStructures
	CategoryFoot
	CategoryWheeled
	CategoryTracked
	CategoryAerial

	CategoryCount
)

// CategoryForMovement maps a unit's movement class to its modifier category
func CategoryForMovement(m core.MovementClass) ModifierCategory {
	switch m {
	case core.MovementWheeled:
		return CategoryWheeled
	case core.MovementTracked:
		return CategoryTracked
	case core.MovementAerial:
		return CategoryAerial
	default:
		return CategoryFoot
	}
}

// ModifierTable holds one modifier per category
type ModifierTable [CategoryCount]EffectModifier

// ProjectileTypeInfo is a static catalog entry, immutable after load
type ProjectileTypeInfo struct {
	Name  string
	Kind  ProjectileKind
	Power int // Negative heals

	// BaseSpeed is the configured px/tick at normal game speed; Speed is the rescaled value used in flight
	BaseSpeed int
	Speed     int

	ExplosionID     int
	ExplosionRadius int // Tiles, Shell kinds only
	SpriteSize      int
	SoundIDs        []int // Alternates indexed by shot variant

	Modifiers ModifierTable
}

// SoundFor picks the fire sound for a shot variant, -1 when the type is silent
func (t *ProjectileTypeInfo) SoundFor(variant int) int {
	if len(t.SoundIDs) == 0 {
		return -1
	}
	if variant < 0 {
		variant = -variant
	}
	return t.SoundIDs[variant%len(t.SoundIDs)]
}

// ProjectileInstance is a live pool slot (pure data)
// Position == Source + (Target-Source)*Timer/TimeRequired after each completed tick
type ProjectileInstance struct {
	Enabled bool
	TypeID  int
	Side    core.Side
	Variant int
	Facing  core.Direction

	Position core.Pixel
	Source   core.Pixel
	Target   core.Pixel

	Timer        int
	TimeRequired int
}

// SourceTile returns the tile the projectile was fired from
func (p *ProjectileInstance) SourceTile() core.Tile {
	return p.Source.Tile()
}

// TargetTile returns the tile the projectile was aimed at
func (p *ProjectileInstance) TargetTile() core.Tile {
	return p.Target.Tile()
}
