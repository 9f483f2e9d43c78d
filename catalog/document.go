package catalog

// Document is the on-disk catalog layout
type Document struct {
	GameSpeed   int             `toml:"game_speed" json:"game_speed,omitempty" jsonschema:"minimum=25,maximum=400,description=Game speed percentage applied to projectile speeds"`
	Terrain     []TerrainEntry  `toml:"terrain" json:"terrain,omitempty" jsonschema:"description=Terrain graphics ids and their projectile behaviour"`
	Projectiles []ProjectileDoc `toml:"projectile" json:"projectile" jsonschema:"required,minItems=1,description=Projectile types; the type id is the entry index"`
}

// TerrainEntry describes one terrain graphics id
type TerrainEntry struct {
	ID                int    `toml:"id" json:"id" jsonschema:"required,minimum=0,maximum=65535"`
	Name              string `toml:"name" json:"name,omitempty"`
	Class             string `toml:"class" json:"class,omitempty" jsonschema:"enum=sand,enum=rock"`
	BlocksProjectiles bool   `toml:"blocks_projectiles" json:"blocks_projectiles,omitempty"`
}

// ProjectileDoc describes one projectile type
type ProjectileDoc struct {
	Name            string      `toml:"name" json:"name" jsonschema:"required"`
	Kind            string      `toml:"kind" json:"kind" jsonschema:"required,enum=shot,enum=aerial_shot,enum=bullet,enum=aerial_bullet,enum=rocket,enum=aerial_rocket,enum=shell,enum=aerial_shell"`
	Power           int         `toml:"power" json:"power" jsonschema:"required,description=Damage per hit; negative heals"`
	Speed           int         `toml:"speed" json:"speed" jsonschema:"required,minimum=1,description=Pixels per tick at normal game speed"`
	Explosion       int         `toml:"explosion" json:"explosion,omitempty" jsonschema:"minimum=0"`
	ExplosionRadius int         `toml:"explosion_radius" json:"explosion_radius,omitempty" jsonschema:"minimum=0,maximum=5,description=Area damage radius in tiles; shells only"`
	SpriteSize      int         `toml:"sprite_size" json:"sprite_size,omitempty" jsonschema:"minimum=0"`
	Sounds          []int       `toml:"sounds" json:"sounds,omitempty"`
	Modifiers       ModifierDoc `toml:"modifiers" json:"modifiers,omitempty"`
}

// ModifierDoc holds modifier names per target category; empty means normal
type ModifierDoc struct {
	Friendly   string `toml:"friendly" json:"friendly,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Enemy      string `toml:"enemy" json:"enemy,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Structures string `toml:"structures" json:"structures,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Foot       string `toml:"foot" json:"foot,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Wheeled    string `toml:"wheeled" json:"wheeled,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Tracked    string `toml:"tracked" json:"tracked,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
	Aerial     string `toml:"aerial" json:"aerial,omitempty" jsonschema:"enum=normal,enum=nil,enum=diminished,enum=increased,enum=instant"`
}
