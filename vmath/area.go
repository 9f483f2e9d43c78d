package vmath

// CircleSpan returns the largest column offset k with k² + row² <= radius², or -1 outside the circle
func CircleSpan(radius, row int) int {
	rem := radius*radius - row*row
	if rem < 0 {
		return -1
	}
	return ISqrt(rem)
}

// ForEachInCircle visits every offset (dx, dy) with dx² + dy² <= radius² exactly once
// Rows run top to bottom, columns left to right; returning false stops the walk
func ForEachInCircle(radius int, fn func(dx, dy int) bool) {
	for dy := -radius; dy <= radius; dy++ {
		span := CircleSpan(radius, dy)
		for dx := -span; dx <= span; dx++ {
			if !fn(dx, dy) {
				return
			}
		}
	}
}
