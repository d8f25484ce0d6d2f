package board

import (
	"fmt"
	"strings"
)

func squareRune(b Board, row, col int) rune {
	side, ok := b.At(row, col)
	switch {
	case !ok:
		return '.'
	case side == Black:
		return 'X'
	}
	return 'O'
}

// ToDisplayText renders the board with row numbers down the side and
// column numbers across the top.
func (b Board) ToDisplayText() string {
	return b.render(0)
}

// ToDisplayTextWithMoves is like ToDisplayText but marks side's legal
// moves with '*'.
func (b Board) ToDisplayTextWithMoves(side Side) string {
	legal, _ := b.LegalMoves(side)
	return b.render(legal)
}

func (b Board) render(marked uint64) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= Dim; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")
	for row := 1; row <= Dim; row++ {
		fmt.Fprintf(&sb, "%d", row)
		for col := 1; col <= Dim; col++ {
			r := squareRune(b, row, col)
			if marked&Bit(row, col) != 0 {
				r = '*'
			}
			fmt.Fprintf(&sb, " %c", r)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
