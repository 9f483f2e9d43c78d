package engine

import (
	"log"

	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/parameter"
)

// Catalog owns the static projectile type table
// Not persisted; rebuilt from configuration on every load
type Catalog struct {
	types     []component.ProjectileTypeInfo
	gameSpeed int
}

// NewCatalog copies the type table and applies the game speed percentage
func NewCatalog(types []component.ProjectileTypeInfo, gameSpeed int) *Catalog {
	c := &Catalog{types: make([]component.ProjectileTypeInfo, len(types))}
	copy(c.types, types)
	c.Rescale(gameSpeed)
	return c
}

// Len returns the number of types
func (c *Catalog) Len() int {
	return len(c.types)
}

// Get returns the type at typeID
func (c *Catalog) Get(typeID int) (*component.ProjectileTypeInfo, bool) {
	if typeID < 0 || typeID >= len(c.types) {
		return nil, false
	}
	return &c.types[typeID], true
}

// GameSpeed returns the active speed percentage
func (c *Catalog) GameSpeed() int {
	return c.gameSpeed
}

// Rescale recomputes every type's flight speed from its base speed, clamped to at least 1 px/tick
func (c *Catalog) Rescale(gameSpeed int) {
	gameSpeed = max(parameter.GameSpeedMin, min(parameter.GameSpeedMax, gameSpeed))
	c.gameSpeed = gameSpeed
	for i := range c.types {
		c.types[i].Speed = max(1, c.types[i].BaseSpeed*gameSpeed/parameter.GameSpeedNormal)
	}
	log.Printf("catalog: %d projectile types rescaled to game speed %d%%", len(c.types), gameSpeed)
}
