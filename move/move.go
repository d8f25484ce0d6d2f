// Package move holds the value type for a single Othello move and the
// helpers needed to read one from user input.
package move

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadMoveFormat = errors.New("move must be entered as 'row,col' or 'pass'")
)

// Move is a (row, column) pair. Rows and columns are numbered 1..8; any
// other value is off the board. The zero Move is the pass sentinel.
type Move struct {
	Row int
	Col int
}

// Pass is played by a side with no legal placement.
var Pass = Move{}

func New(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsPass() bool {
	return m == Pass
}

// OffBoard reports whether either coordinate lies outside 1..8.
func (m Move) OffBoard() bool {
	return m.Row < 1 || m.Row > 8 || m.Col < 1 || m.Col > 8
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// FromString parses "row,col" (spaces allowed around either number) or
// "pass". It does not check that the coordinates are on the board; that
// is the job of the board's validation, which reports a more specific
// error.
func FromString(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "pass" {
		return Pass, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return Pass, ErrBadMoveFormat
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Pass, fmt.Errorf("%w: %v", ErrBadMoveFormat, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Pass, fmt.Errorf("%w: %v", ErrBadMoveFormat, err)
	}
	return Move{Row: row, Col: col}, nil
}
