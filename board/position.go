package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPosition = errors.New("position must have 64 squares and a side to move")

// ParsePosition reads a position string: 64 squares (X, O or '.', rows 1
// to 8, each row from column 1 to 8), optionally split into rows with
// '/', then a space and the side to move. The opening position is
//
//	......../......../......../...OX.../...XO.../......../......../........ X
func ParsePosition(s string) (Board, Side, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Board{}, Black, ErrBadPosition
	}
	squares := strings.ReplaceAll(fields[0], "/", "")
	if len(squares) != Dim*Dim {
		return Board{}, Black, fmt.Errorf("%w: got %d squares", ErrBadPosition, len(squares))
	}
	var x, o uint64
	for i, ch := range squares {
		row, col := i/Dim+1, i%Dim+1
		switch ch {
		case 'X', 'x':
			x |= Bit(row, col)
		case 'O', 'o':
			o |= Bit(row, col)
		case '.', '-':
		default:
			return Board{}, Black, fmt.Errorf("%w: bad square %q at %d,%d", ErrBadPosition, ch, row, col)
		}
	}
	side, err := SideFromString(fields[1])
	if err != nil {
		return Board{}, Black, fmt.Errorf("%w: %v", ErrBadPosition, err)
	}
	b, err := FromMasks(x, o)
	if err != nil {
		return Board{}, Black, err
	}
	return b, side, nil
}

// Position writes b in the format read by ParsePosition, with '/' between
// rows.
func (b Board) Position(side Side) string {
	var sb strings.Builder
	for row := 1; row <= Dim; row++ {
		if row > 1 {
			sb.WriteByte('/')
		}
		for col := 1; col <= Dim; col++ {
			sb.WriteRune(squareRune(b, row, col))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(side.String())
	return sb.String()
}
