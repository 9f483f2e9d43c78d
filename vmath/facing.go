package vmath

import (
	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/parameter"
)

// Facing quantizes a travel delta (screen axes, +y down) into one of 16 headings
// Ratio buckets: 0 near horizontal .. 4 near vertical
func Facing(dx, dy int) core.Direction {
	if dx == 0 {
		if dy < 0 {
			return core.DirN
		}
		return core.DirS
	}

	ratio := parameter.FacingRatioScale * Abs(dy) / Abs(dx)
	bucket := core.Direction(len(parameter.FacingThresholds))
	for i, threshold := range parameter.FacingThresholds {
		if ratio < threshold {
			bucket = core.Direction(i)
			break
		}
	}

	switch {
	case dx > 0 && dy < 0:
		return core.DirE - bucket
	case dx > 0:
		return core.DirE + bucket
	case dy >= 0:
		return core.DirW - bucket
	default:
		return (core.DirW + bucket) % core.DirectionCount
	}
}
