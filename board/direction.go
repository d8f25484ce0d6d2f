package board

// Direction is a single step along one of the eight rays leaving a square.
type Direction struct {
	DRow int
	DCol int
}

// Directions is read-only; every ray scan in this package walks it in
// this order.
var Directions = [8]Direction{
	{0, 1}, {0, -1}, // right, left
	{-1, 0}, {1, 0}, // up, down
	{-1, -1}, {-1, 1}, // up-left, up-right
	{1, 1}, {1, -1}, // down-right, down-left
}

// BitOffset is how far a step in this direction moves a square's bit
// index. A positive offset lowers the index.
func (d Direction) BitOffset() int {
	return d.DRow*Dim + d.DCol
}

// wrapMask covers the column a shift in this direction would wrap into.
func (d Direction) wrapMask() uint64 {
	switch {
	case d.DCol > 0:
		return Col1
	case d.DCol < 0:
		return Col8
	}
	return 0
}

// shift moves every bit of mask one step in this direction, dropping
// bits that would cross a board edge.
func (d Direction) shift(mask uint64) uint64 {
	off := d.BitOffset()
	var shifted uint64
	if off > 0 {
		shifted = mask >> off
	} else {
		shifted = mask << -off
	}
	return shifted &^ d.wrapMask()
}
