package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/world"
)

// DefaultPath is checked when no custom path is given
const DefaultPath = "config/catalog.toml"

//go:embed default.toml
var defaultCatalog []byte

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid catalog")

// Terrain is a validated terrain entry
type Terrain struct {
	ID                core.TerrainID
	Name              string
	Class             core.TerrainClass
	BlocksProjectiles bool
}

// Config is a validated catalog ready to build engine tables from
type Config struct {
	GameSpeed int
	Types     []component.ProjectileTypeInfo
	Terrain   []Terrain
}

// LoadAuto loads with priority: customPath > DefaultPath > embedded default
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return LoadFile(DefaultPath)
	}
	return Default()
}

// Default returns the embedded catalog
func Default() (*Config, error) {
	cfg, err := Load(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and validates a catalog file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Load parses and validates catalog TOML; unknown keys are rejected
func Load(data []byte) (*Config, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return FromDocument(&doc)
}

// FromDocument validates a decoded document
func FromDocument(doc *Document) (*Config, error) {
	cfg := &Config{GameSpeed: doc.GameSpeed}
	if cfg.GameSpeed == 0 {
		cfg.GameSpeed = parameter.GameSpeedNormal
	}
	if cfg.GameSpeed < parameter.GameSpeedMin || cfg.GameSpeed > parameter.GameSpeedMax {
		return nil, fmt.Errorf("%w: game_speed %d outside [%d, %d]", ErrInvalid, cfg.GameSpeed, parameter.GameSpeedMin, parameter.GameSpeedMax)
	}

	seen := make(map[int]bool, len(doc.Terrain))
	for i, te := range doc.Terrain {
		if te.ID < 0 || te.ID > 0xFFFF {
			return nil, fmt.Errorf("%w: terrain[%d] id %d out of range", ErrInvalid, i, te.ID)
		}
		if seen[te.ID] {
			return nil, fmt.Errorf("%w: terrain id %d defined twice", ErrInvalid, te.ID)
		}
		seen[te.ID] = true

		class, err := parseTerrainClass(te.Class)
		if err != nil {
			return nil, fmt.Errorf("terrain %d: %w", te.ID, err)
		}
		cfg.Terrain = append(cfg.Terrain, Terrain{
			ID:                core.TerrainID(te.ID),
			Name:              te.Name,
			Class:             class,
			BlocksProjectiles: te.BlocksProjectiles,
		})
	}

	if len(doc.Projectiles) == 0 {
		return nil, fmt.Errorf("%w: no projectile types", ErrInvalid)
	}
	names := make(map[string]bool, len(doc.Projectiles))
	for i := range doc.Projectiles {
		pd := &doc.Projectiles[i]
		info, err := projectileInfo(pd)
		if err != nil {
			return nil, fmt.Errorf("projectile[%d] %q: %w", i, pd.Name, err)
		}
		if names[info.Name] {
			return nil, fmt.Errorf("%w: projectile %q defined twice", ErrInvalid, info.Name)
		}
		names[info.Name] = true
		cfg.Types = append(cfg.Types, info)
	}

	return cfg, nil
}

func projectileInfo(pd *ProjectileDoc) (component.ProjectileTypeInfo, error) {
	var info component.ProjectileTypeInfo
	if pd.Name == "" {
		return info, fmt.Errorf("%w: missing name", ErrInvalid)
	}
	kind, ok := component.ParseProjectileKind(pd.Kind)
	if !ok {
		return info, fmt.Errorf("%w: unknown kind %q", ErrInvalid, pd.Kind)
	}
	if pd.Speed < 1 {
		return info, fmt.Errorf("%w: speed %d must be positive", ErrInvalid, pd.Speed)
	}
	if pd.ExplosionRadius < 0 || pd.ExplosionRadius > parameter.MaxExplosionRadius {
		return info, fmt.Errorf("%w: explosion_radius %d outside [0, %d]", ErrInvalid, pd.ExplosionRadius, parameter.MaxExplosionRadius)
	}
	if pd.ExplosionRadius > 0 && !kind.IsExplosive() {
		return info, fmt.Errorf("%w: explosion_radius set on non-shell kind %s", ErrInvalid, kind)
	}

	mods, err := modifierTable(&pd.Modifiers)
	if err != nil {
		return info, err
	}

	info = component.ProjectileTypeInfo{
		Name:            pd.Name,
		Kind:            kind,
		Power:           pd.Power,
		BaseSpeed:       pd.Speed,
		Speed:           pd.Speed,
		ExplosionID:     pd.Explosion,
		ExplosionRadius: pd.ExplosionRadius,
		SpriteSize:      pd.SpriteSize,
		SoundIDs:        append([]int(nil), pd.Sounds...),
		Modifiers:       mods,
	}
	return info, nil
}

func modifierTable(md *ModifierDoc) (component.ModifierTable, error) {
	var table component.ModifierTable
	entries := [component.CategoryCount]struct {
		key  string
		name string
	}{
		component.CategoryFriendly:   {"friendly", md.Friendly},
		component.CategoryEnemy:      {"enemy", md.Enemy},
		component.CategoryStructures: {"structures", md.Structures},
		component.CategoryFoot:       {"foot", md.Foot},
		component.CategoryWheeled:    {"wheeled", md.Wheeled},
		component.CategoryTracked:    {"tracked", md.Tracked},
		component.CategoryAerial:     {"aerial", md.Aerial},
	}
	for cat, e := range entries {
		if e.name == "" {
			continue
		}
		m, ok := component.ParseEffectModifier(e.name)
		if !ok {
			return table, fmt.Errorf("%w: modifiers.%s: unknown modifier %q", ErrInvalid, e.key, e.name)
		}
		table[cat] = m
	}
	return table, nil
}

func parseTerrainClass(name string) (core.TerrainClass, error) {
	switch name {
	case "", "sand":
		return core.TerrainSand, nil
	case "rock":
		return core.TerrainRock, nil
	}
	return 0, fmt.Errorf("%w: unknown terrain class %q", ErrInvalid, name)
}

// Catalog builds the engine type table at the configured game speed
func (c *Config) Catalog() *engine.Catalog {
	return engine.NewCatalog(c.Types, c.GameSpeed)
}

// Impassability builds the terrain table sized to the largest terrain id
func (c *Config) Impassability() *engine.ImpassabilityTable {
	size := 0
	for _, t := range c.Terrain {
		size = max(size, int(t.ID)+1)
	}
	table := engine.NewImpassabilityTable(size)
	for _, t := range c.Terrain {
		table.Set(int(t.ID), t.BlocksProjectiles)
	}
	return table
}

// TypeID returns the id of the named projectile type
func (c *Config) TypeID(name string) (int, bool) {
	for i := range c.Types {
		if c.Types[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// ApplyTerrain registers terrain classes on a grid
func (c *Config) ApplyTerrain(g *world.Grid) {
	for _, t := range c.Terrain {
		g.SetTerrainClass(t.ID, t.Class)
	}
}

// TerrainID returns the id of the named terrain
func (c *Config) TerrainID(name string) (core.TerrainID, bool) {
	for _, t := range c.Terrain {
		if t.Name == name {
			return t.ID, true
		}
	}
	return 0, false
}
