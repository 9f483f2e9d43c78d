package component

import (
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/parameter"
)

// Unit is the world collaborator's view of a single-tile combatant
type Unit struct {
	ID        core.UnitID
	Side      core.Side
	Movement  core.MovementClass
	Health    int
	MaxHealth int
}

// Indestructible reports the sentinel health value
func (u Unit) Indestructible() bool {
	return u.Health == parameter.HealthIndestructible
}

// Structure is the world collaborator's view of a possibly multi-tile building
type Structure struct {
	ID        core.StructureID
	Side      core.Side
	Health    int
	MaxHealth int

	// Foundation structures (concrete slabs) are ground cover rather than combat targets
	Foundation bool
}

// Indestructible reports the sentinel health value
func (s Structure) Indestructible() bool {
	return s.Health == parameter.HealthIndestructible
}
