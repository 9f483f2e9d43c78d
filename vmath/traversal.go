package vmath

import (
	"math"

	"github.com/lixenwraith/ordnance/parameter"
)

// TileWalker is a zero-allocation iterator over every tile a pixel segment crosses (supercover DDA)
// Boundary crossings are compared as integer cross products, so no tile is skipped
// and exact corner crossings visit both side tiles before the diagonal one
type TileWalker struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	// Crossing "times" scaled by |dx|*|dy|: tMaxX = pixels to next x boundary * |dy|
	tMaxX, tMaxY     int
	tDeltaX, tDeltaY int

	emitX, emitY int
	corner       uint8 // 0 = none, 1 = x side emitted, 2 = y side emitted

	started bool
	done    bool
}

// NewTileWalker creates an iterator from pixel (x1, y1) to pixel (x2, y2)
// The first Pos is the tile containing (x1, y1), the last the tile containing (x2, y2)
func NewTileWalker(x1, y1, x2, y2 int) TileWalker {
	ix, iy := x1>>parameter.PixelShift, y1>>parameter.PixelShift

	w := TileWalker{
		currX: ix, currY: iy,
		targetX: x2 >> parameter.PixelShift, targetY: y2 >> parameter.PixelShift,
		emitX: ix, emitY: iy,
	}

	dx := x2 - x1
	dy := y2 - y1

	w.stepX, w.stepY = 1, 1
	if dx < 0 {
		w.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		w.stepY = -1
		dy = -dy
	}

	if dx == 0 {
		w.tMaxX = math.MaxInt
	} else {
		var dist int
		if w.stepX > 0 {
			dist = (ix+1)<<parameter.PixelShift - x1
		} else {
			dist = x1 - ix<<parameter.PixelShift
		}
		w.tMaxX = dist * dy
		w.tDeltaX = parameter.PixelsPerTile * dy
	}

	if dy == 0 {
		w.tMaxY = math.MaxInt
	} else {
		var dist int
		if w.stepY > 0 {
			dist = (iy+1)<<parameter.PixelShift - y1
		} else {
			dist = y1 - iy<<parameter.PixelShift
		}
		w.tMaxY = dist * dx
		w.tDeltaY = parameter.PixelsPerTile * dx
	}

	return w
}

// Next advances the walker to the next tile
// Returns true if a valid tile is available via Pos()
func (w *TileWalker) Next() bool {
	if w.done {
		return false
	}
	if !w.started {
		w.started = true
		return true
	}

	switch w.corner {
	case 1:
		w.corner = 2
		w.emitX, w.emitY = w.currX, w.currY+w.stepY
		return true
	case 2:
		w.corner = 0
		w.currX += w.stepX
		w.currY += w.stepY
		w.tMaxX += w.tDeltaX
		w.tMaxY += w.tDeltaY
		w.emitX, w.emitY = w.currX, w.currY
		return true
	}

	if w.currX == w.targetX && w.currY == w.targetY {
		w.done = true
		return false
	}

	canX := w.currX != w.targetX
	canY := w.currY != w.targetY

	switch {
	case canX && canY && w.tMaxX == w.tMaxY:
		w.corner = 1
		w.emitX, w.emitY = w.currX+w.stepX, w.currY
		return true
	case canX && (!canY || w.tMaxX < w.tMaxY):
		w.currX += w.stepX
		w.tMaxX += w.tDeltaX
	default:
		w.currY += w.stepY
		w.tMaxY += w.tDeltaY
	}

	w.emitX, w.emitY = w.currX, w.currY
	return true
}

// Pos returns the current tile coordinates
func (w *TileWalker) Pos() (int, int) {
	return w.emitX, w.emitY
}
