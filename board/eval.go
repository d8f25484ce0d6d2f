package board

// Evaluate scores the position for side as its disk count minus the
// opponent's.
func (b Board) Evaluate(side Side) int {
	return PopCount(b.disks[side]) - PopCount(b.disks[side.Other()])
}

// IsTerminal is true when neither side can move. A full board is always
// terminal, but a terminal board need not be full.
func (b Board) IsTerminal() bool {
	return !b.CanMove(Black) && !b.CanMove(White)
}

func (b Board) DiskCount(side Side) int {
	return PopCount(b.disks[side])
}

// Occupied returns the number of disks on the board.
func (b Board) Occupied() int {
	return PopCount(b.disks[Black] | b.disks[White])
}
