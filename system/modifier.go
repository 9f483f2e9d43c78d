package system

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/parameter"
)

// modifierPercent scales power for the proportional modifiers; Nil and Instant are handled in scaledPower
var modifierPercent = [component.ModifierCount]int{
	component.ModifierNormal:     100,
	component.ModifierNil:        0,
	component.ModifierDiminished: parameter.ModifierDiminishedPercent,
	component.ModifierIncreased:  parameter.ModifierIncreasedPercent,
	component.ModifierInstant:    100,
}

// resolveModifier looks up the friend/foe entry, falling back to the target category when it is Normal
func resolveModifier(table *component.ModifierTable, firer, target core.Side, fallback component.ModifierCategory) component.EffectModifier {
	relation := component.CategoryEnemy
	if firer == target {
		relation = component.CategoryFriendly
	}
	if m := table[relation]; m != component.ModifierNormal {
		return m
	}
	return table[fallback]
}

// scaledPower applies a modifier to base power; Instant keeps the sign of power
func scaledPower(power int, m component.EffectModifier, maxHealth int) int {
	switch m {
	case component.ModifierNil:
		return 0
	case component.ModifierInstant:
		if power < 0 {
			return -maxHealth
		}
		return maxHealth
	}
	return power * modifierPercent[m] / 100
}

// applyDamage subtracts damage, flooring at zero; negative damage heals up to maxHealth
func applyDamage(health, maxHealth, damage int) int {
	health -= damage
	if health < 0 {
		return 0
	}
	if damage < 0 && health > maxHealth {
		return maxHealth
	}
	return health
}
