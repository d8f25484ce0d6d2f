// Package board implements the Othello bitboard: two 64-bit occupancy
// masks, the capture (flip) rules, legal move generation and the static
// disk-count evaluation.
package board

import (
	"errors"
	"fmt"

	"github.com/Yizhe07/othello/move"
)

var (
	ErrInvalidSquare    = errors.New("row and column must both be between 1 and 8")
	ErrOccupiedSquare   = errors.New("board position already occupied")
	ErrNoCapture        = errors.New("no disks flipped")
	ErrOverlappingDisks = errors.New("a square cannot hold disks of both sides")
)

// Side is one of the two players.
type Side uint8

const (
	Black Side = iota // X, moves first
	White             // O
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Black {
		return "X"
	}
	return "O"
}

// SideFromString accepts X/O (either case), as well as black/white.
func SideFromString(s string) (Side, error) {
	switch s {
	case "X", "x", "black":
		return Black, nil
	case "O", "o", "white":
		return White, nil
	}
	return Black, fmt.Errorf("unknown side %q", s)
}

// Board is a value type; copying it copies the whole position. disks is
// indexed by Side, and the two masks never share a bit.
type Board struct {
	disks [2]uint64
}

// InitialBoard returns the standard opening: X on (4,5) and (5,4), O on
// (4,4) and (5,5).
func InitialBoard() Board {
	return Board{disks: [2]uint64{
		Black: Bit(4, 5) | Bit(5, 4),
		White: Bit(4, 4) | Bit(5, 5),
	}}
}

// FromMasks builds a board from raw occupancy masks.
func FromMasks(x, o uint64) (Board, error) {
	if x&o != 0 {
		return Board{}, ErrOverlappingDisks
	}
	return Board{disks: [2]uint64{Black: x, White: o}}, nil
}

// Disks returns the occupancy mask for side.
func (b Board) Disks(side Side) uint64 {
	return b.disks[side]
}

// Empty returns the mask of unoccupied squares.
func (b Board) Empty() uint64 {
	return ^(b.disks[Black] | b.disks[White])
}

// At returns the side holding (row, col), if any.
func (b Board) At(row, col int) (Side, bool) {
	if OffBoard(row, col) {
		return Black, false
	}
	bit := Bit(row, col)
	switch {
	case b.disks[Black]&bit != 0:
		return Black, true
	case b.disks[White]&bit != 0:
		return White, true
	}
	return Black, false
}

// placeOrFlip gives the square at m to side. It is safe on an empty
// square as well as on an opponent's disk.
func (b *Board) placeOrFlip(side Side, m move.Move) {
	bit := Bit(m.Row, m.Col)
	b.disks[side] |= bit
	b.disks[side.Other()] &^= bit
}

// Play copies b, applies the captures for m, places the disk and returns
// the child with the number of disks flipped. It does not validate m;
// callers that take moves from outside use ApplyMove.
func (b Board) Play(side Side, m move.Move) (Board, int) {
	child := b
	flipped := child.ApplyCaptures(side, m)
	child.placeOrFlip(side, m)
	return child, flipped
}

// ApplyMove validates m for side and returns the resulting board and the
// number of flipped disks. On error the returned board is b unchanged.
func (b Board) ApplyMove(side Side, m move.Move) (Board, int, error) {
	if m.OffBoard() {
		return b, 0, ErrInvalidSquare
	}
	if b.Empty()&Bit(m.Row, m.Col) == 0 {
		return b, 0, ErrOccupiedSquare
	}
	if b.CountFlips(side, m) == 0 {
		return b, 0, ErrNoCapture
	}
	child, flipped := b.Play(side, m)
	return child, flipped, nil
}
