package board

import "math/bits"

const (
	// Dim is the number of rows (and columns) on the board.
	Dim = 8
)

// Row and column masks. Row 8 lives in the lowest byte; column 8 is the
// lowest bit of every byte.
var (
	Row8 = Bit(8, 1) | Bit(8, 2) | Bit(8, 3) | Bit(8, 4) |
		Bit(8, 5) | Bit(8, 6) | Bit(8, 7) | Bit(8, 8)
	Col8 = Bit(1, 8) | Bit(2, 8) | Bit(3, 8) | Bit(4, 8) |
		Bit(5, 8) | Bit(6, 8) | Bit(7, 8) | Bit(8, 8)
	Col1 = Col8 << 7
)

// Index returns the bit position for the 1-based (row, col) square.
func Index(row, col int) int {
	return (Dim-row)*Dim + (Dim - col)
}

// Bit returns the single-bit mask for the 1-based (row, col) square.
func Bit(row, col int) uint64 {
	return uint64(1) << Index(row, col)
}

// SquareAt is the inverse of Index.
func SquareAt(bitpos int) (row, col int) {
	return Dim - bitpos/Dim, Dim - bitpos%Dim
}

func OffBoard(row, col int) bool {
	return row < 1 || row > Dim || col < 1 || col > Dim
}

// PopCount counts set bits by repeatedly clearing the lowest one.
func PopCount(mask uint64) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}

// lowestBit isolates the lowest set bit of a non-zero mask and returns it
// together with its position.
func lowestBit(mask uint64) (uint64, int) {
	low := mask & -mask
	return low, bits.TrailingZeros64(low)
}
