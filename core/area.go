package core

// Area represents a rectangular tile region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains checks if the tile lies within the area
func (a Area) Contains(t Tile) bool {
	return t.X >= a.X && t.X < a.X+a.Width && t.Y >= a.Y && t.Y < a.Y+a.Height
}
