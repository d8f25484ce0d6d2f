// Package game tracks a single Othello game: the board, whose turn it is,
// and the history of turns played. It does not care who is playing; human
// and computer players live outside of it.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/move"
)

var (
	ErrGameOver       = errors.New("the game is over")
	ErrPassNotAllowed = errors.New("cannot pass while a legal move exists")
)

// Turn records one move, including passes.
type Turn struct {
	Side    board.Side
	Move    move.Move
	Flipped int
	// Board is the position after the move.
	Board board.Board
}

type Game struct {
	board  board.Board
	onturn board.Side
	turns  []Turn
}

// NewGame starts from the standard opening with X to move.
func NewGame() *Game {
	return FromPosition(board.InitialBoard(), board.Black)
}

func FromPosition(b board.Board, onturn board.Side) *Game {
	return &Game{board: b, onturn: onturn}
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Side {
	return g.onturn
}

// Turn returns the number of turns played so far.
func (g *Game) Turn() int {
	return len(g.turns)
}

func (g *Game) History() []Turn {
	return g.turns
}

// Playing is true until neither side can move.
func (g *Game) Playing() bool {
	return !g.board.IsTerminal()
}

// MustPass reports whether the side on turn has no legal move in a game
// that is not over.
func (g *Game) MustPass() bool {
	return g.Playing() && !g.board.CanMove(g.onturn)
}

// PlayMove validates and plays m for the side on turn. move.Pass is only
// accepted when that side has nothing else to play. On error the game is
// unchanged.
func (g *Game) PlayMove(m move.Move) (int, error) {
	if !g.Playing() {
		return 0, ErrGameOver
	}
	if m.IsPass() {
		return 0, g.Pass()
	}
	after, flipped, err := g.board.ApplyMove(g.onturn, m)
	if err != nil {
		return 0, fmt.Errorf("illegal move %v: %w", m, err)
	}
	g.board = after
	g.record(m, flipped)
	return flipped, nil
}

// Pass gives the turn away. It fails unless the side on turn has no
// legal move.
func (g *Game) Pass() error {
	if !g.Playing() {
		return ErrGameOver
	}
	if g.board.CanMove(g.onturn) {
		return ErrPassNotAllowed
	}
	g.record(move.Pass, 0)
	return nil
}

func (g *Game) record(m move.Move, flipped int) {
	g.turns = append(g.turns, Turn{Side: g.onturn, Move: m, Flipped: flipped, Board: g.board})
	log.Debug().Str("side", g.onturn.String()).Str("move", m.String()).
		Int("flipped", flipped).Int("turn", len(g.turns)).Msg("played")
	g.onturn = g.onturn.Other()
	if !g.Playing() {
		log.Debug().Int("x", g.board.DiskCount(board.Black)).
			Int("o", g.board.DiskCount(board.White)).Msg("game-over")
	}
}

// Passes returns how many turns in the history were passes.
func (g *Game) Passes() int {
	return lo.CountBy(g.turns, func(t Turn) bool { return t.Move.IsPass() })
}

// Winner returns the side with more disks, and false on a tie.
func (g *Game) Winner() (board.Side, bool) {
	diff := g.board.Evaluate(board.Black)
	switch {
	case diff > 0:
		return board.Black, true
	case diff < 0:
		return board.White, true
	}
	return board.Black, false
}

// Summary is the end-of-game report.
func (g *Game) Summary() string {
	x := g.board.DiskCount(board.Black)
	o := g.board.DiskCount(board.White)
	winner, ok := g.Winner()
	if !ok {
		return fmt.Sprintf("Tie game. Each player has %d disks", x)
	}
	return fmt.Sprintf("X has %d disks. O has %d disks. %s wins.", x, o, winner)
}

// Copy returns an independent copy of the game.
func (g *Game) Copy() *Game {
	return &Game{
		board:  g.board,
		onturn: g.onturn,
		turns:  append([]Turn(nil), g.turns...),
	}
}
