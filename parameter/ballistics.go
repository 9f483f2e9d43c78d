package parameter

// Grid geometry
const (
	// PixelShift converts between tiles and pixels (tile = pixel >> PixelShift)
	PixelShift = 4

	// PixelsPerTile is the sub-tile resolution on each axis
	PixelsPerTile = 1 << PixelShift

	// TileCenterOffset places spawn and target points at the middle of a tile
	TileCenterOffset = PixelsPerTile / 2
)

// Projectile pool
const (
	// ProjectilePoolCapacity is the hard upper bound of concurrent projectiles
	ProjectilePoolCapacity = 150
)

// Effect modifiers, percent of base power
const (
	ModifierDiminishedPercent = 70
	ModifierIncreasedPercent  = 130
)

// Facing quantizer
const (
	// FacingRatioScale scales |dy|/|dx| into integer range
	FacingRatioScale = 1000
)

// FacingThresholds approximate 1000*tan(θ) at 11.25°, 33.75°, 56.25° and 78.75°
var FacingThresholds = [4]int{199, 668, 1497, 5027}

// Area damage
const (
	// MaxExplosionRadius bounds Shell radius in tiles and sizes the per-detonation dedup set
	MaxExplosionRadius = 5

	// MaxExplosionTiles is the tile count of the largest square enclosing a detonation
	MaxExplosionTiles = (2*MaxExplosionRadius + 1) * (2*MaxExplosionRadius + 1)

	// SplashFrameJitter is the exclusive upper bound of small explosion start delay in frames
	SplashFrameJitter = 4
)

// Health
const (
	// HealthIndestructible marks an entity that ignores all damage
	HealthIndestructible = -1
)

// Audio hints
const (
	// SoundVolumeNear is the fire sound volume hint when the shooter is on screen
	SoundVolumeNear = 100

	// SoundVolumeFar is the fire sound volume hint when the shooter is off screen
	SoundVolumeFar = 40
)

// Game speed
const (
	// GameSpeedNormal is the speed percentage at which catalog speeds apply unscaled
	GameSpeedNormal = 100

	// GameSpeedMin and GameSpeedMax bound the configurable speed percentage
	GameSpeedMin = 25
	GameSpeedMax = 400
)
