package board

import "github.com/Yizhe07/othello/move"

// NeighborCandidates returns the empty squares adjacent to at least one
// opponent disk. Every legal move for side is among them.
func (b Board) NeighborCandidates(side Side) uint64 {
	opp := b.disks[side.Other()]
	var neighbors uint64
	for _, dir := range Directions {
		neighbors |= dir.shift(opp)
	}
	return neighbors & b.Empty()
}

// LegalMoves returns the mask of squares where side captures at least one
// disk, and how many there are.
func (b Board) LegalMoves(side Side) (uint64, int) {
	candidates := b.NeighborCandidates(side)
	var legal uint64
	count := 0
	for candidates != 0 {
		bit, pos := lowestBit(candidates)
		row, col := SquareAt(pos)
		if b.CountFlips(side, move.Move{Row: row, Col: col}) > 0 {
			legal |= bit
			count++
		}
		candidates ^= bit
	}
	return legal, count
}

// CanMove reports whether side has any legal move.
func (b Board) CanMove(side Side) bool {
	_, n := b.LegalMoves(side)
	return n > 0
}

// MoveList returns side's legal moves ordered by ascending bit position:
// row 8 first, and within a row column 8 first. Search tie-breaks depend
// on this order.
func (b Board) MoveList(side Side) []move.Move {
	legal, n := b.LegalMoves(side)
	moves := make([]move.Move, 0, n)
	for legal != 0 {
		bit, pos := lowestBit(legal)
		row, col := SquareAt(pos)
		moves = append(moves, move.Move{Row: row, Col: col})
		legal ^= bit
	}
	return moves
}
