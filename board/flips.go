package board

import "github.com/Yizhe07/othello/move"

// bracketed walks from (row, col) along dir. It returns the length of the
// opponent run that follows and whether a disk of side closes it off.
// Running off the board or into an empty square leaves the run open.
func (b *Board) bracketed(row, col int, dir Direction, side Side) (int, bool) {
	r, c := row+dir.DRow, col+dir.DCol
	if OffBoard(r, c) {
		return 0, false
	}
	bit := Bit(r, c)
	if b.disks[side]&bit != 0 {
		return 0, true
	}
	if b.disks[side.Other()]&bit == 0 {
		return 0, false
	}
	n, closed := b.bracketed(r, c, dir, side)
	return n + 1, closed
}

// tryDirection returns how many disks a placement at m would capture
// along dir.
func (b *Board) tryDirection(m move.Move, dir Direction, side Side) int {
	n, closed := b.bracketed(m.Row, m.Col, dir, side)
	if !closed {
		return 0
	}
	return n
}

// CountFlips returns the number of opponent disks side would capture by
// playing m. The board is not modified.
func (b Board) CountFlips(side Side, m move.Move) int {
	total := 0
	for _, dir := range Directions {
		total += b.tryDirection(m, dir, side)
	}
	return total
}

// ApplyCaptures turns every disk captured by m over to side and returns
// how many were turned. It does not place the disk at m itself.
func (b *Board) ApplyCaptures(side Side, m move.Move) int {
	total := 0
	for _, dir := range Directions {
		n := b.tryDirection(m, dir, side)
		r, c := m.Row, m.Col
		for i := 0; i < n; i++ {
			r, c = r+dir.DRow, c+dir.DCol
			b.placeOrFlip(side, move.Move{Row: r, Col: c})
		}
		total += n
	}
	return total
}
