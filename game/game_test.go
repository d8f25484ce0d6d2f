package game

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestPlayMove(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(g.Playing())
	is.Equal(g.PlayerOnTurn(), board.Black)

	flipped, err := g.PlayMove(move.New(3, 4))
	is.NoErr(err)
	is.Equal(flipped, 1)
	is.Equal(g.PlayerOnTurn(), board.White)
	is.Equal(g.Turn(), 1)
	is.Equal(g.History()[0].Move, move.New(3, 4))
	is.Equal(g.History()[0].Side, board.Black)
	is.Equal(g.History()[0].Board, g.Board())
}

func TestIllegalMoveLeavesGameUnchanged(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	for _, tc := range []struct {
		m   move.Move
		err error
	}{
		{move.New(9, 9), board.ErrInvalidSquare},
		{move.New(4, 4), board.ErrOccupiedSquare},
		{move.New(1, 1), board.ErrNoCapture},
	} {
		_, err := g.PlayMove(tc.m)
		is.True(errors.Is(err, tc.err))
	}
	is.Equal(g.Board(), board.InitialBoard())
	is.Equal(g.Turn(), 0)
	is.Equal(g.PlayerOnTurn(), board.Black)
}

func TestPassRules(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.Pass(), ErrPassNotAllowed)
	_, err := g.PlayMove(move.Pass)
	is.Equal(err, ErrPassNotAllowed)

	b, side, err := board.ParsePosition(
		"OX....../......../......../......../......../......../......../........ X")
	is.NoErr(err)
	g = FromPosition(b, side)
	is.True(g.MustPass())
	_, err = g.PlayMove(move.Pass)
	is.NoErr(err)
	is.Equal(g.PlayerOnTurn(), board.White)
	is.Equal(g.Passes(), 1)
	is.True(!g.MustPass())

	_, err = g.PlayMove(move.New(1, 3))
	is.NoErr(err)
	is.True(!g.Playing())
	_, err = g.PlayMove(move.New(2, 2))
	is.Equal(err, ErrGameOver)
	is.Equal(g.Pass(), ErrGameOver)

	winner, ok := g.Winner()
	is.True(ok)
	is.Equal(winner, board.White)
	is.Equal(g.Summary(), "X has 0 disks. O has 3 disks. O wins.")
}

func TestTieSummary(t *testing.T) {
	is := is.New(t)
	b, err := board.FromMasks(board.Bit(1, 1), board.Bit(8, 8))
	is.NoErr(err)
	g := FromPosition(b, board.Black)
	is.True(!g.Playing())
	_, ok := g.Winner()
	is.True(!ok)
	is.Equal(g.Summary(), "Tie game. Each player has 1 disks")
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	_, err := g.PlayMove(move.New(3, 4))
	is.NoErr(err)
	c := g.Copy()
	_, err = c.PlayMove(move.New(3, 3))
	is.NoErr(err)
	is.Equal(g.Turn(), 1)
	is.Equal(c.Turn(), 2)
	is.True(g.Board() != c.Board())
}
