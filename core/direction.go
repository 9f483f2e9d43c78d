package core

// Direction is one of 16 compass headings, clockwise from North
type Direction uint8

const (
	DirN Direction = iota
	DirNNE
	DirNE
	DirENE
	DirE
	DirESE
	DirSE
	DirSSE
	DirS
	DirSSW
	DirSW
	DirWSW
	DirW
	DirWNW
	DirNW
	DirNNW

	DirectionCount = 16
)

// MirrorHorizontal reflects the heading across the vertical axis (east <-> west)
func (d Direction) MirrorHorizontal() Direction {
	return (DirectionCount - d) % DirectionCount
}

// MirrorVertical reflects the heading across the horizontal axis (north <-> south)
func (d Direction) MirrorVertical() Direction {
	return (DirectionCount + DirectionCount/2 - d) % DirectionCount
}
