// Package player holds the things that can choose moves in a game: a
// human at a prompt, the negamax search, and a random mover used to
// vary autoplay openings.
package player

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/Yizhe07/othello/game"
	"github.com/Yizhe07/othello/move"
	"github.com/Yizhe07/othello/negamax"
)

var ErrUnknownPlayerKind = errors.New("player must be h (human), c (computer) or r (random)")

// Player picks the next move for the side on turn. It returns move.Pass
// when that side has no legal move.
type Player interface {
	Name() string
	ChooseMove(g *game.Game) (move.Move, error)
}

type ComputerPlayer struct {
	depth     int
	solver    *negamax.Solver
	lastScore int
}

func NewComputerPlayer(depth int, solver *negamax.Solver) *ComputerPlayer {
	if solver == nil {
		solver = negamax.NewSolver()
	}
	return &ComputerPlayer{depth: depth, solver: solver}
}

func (p *ComputerPlayer) Name() string {
	return fmt.Sprintf("computer (depth %d)", p.depth)
}

func (p *ComputerPlayer) Depth() int {
	return p.depth
}

// LastScore is the search score behind the most recent choice.
func (p *ComputerPlayer) LastScore() int {
	return p.lastScore
}

func (p *ComputerPlayer) ChooseMove(g *game.Game) (move.Move, error) {
	m, score := p.solver.BestMove(g.Board(), g.PlayerOnTurn(), p.depth)
	p.lastScore = score
	log.Debug().Str("side", g.PlayerOnTurn().String()).Str("move", m.String()).
		Int("score", score).Msg("computer-chose")
	return m, nil
}

type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return "random"
}

func (RandomPlayer) ChooseMove(g *game.Game) (move.Move, error) {
	moves := g.Board().MoveList(g.PlayerOnTurn())
	if len(moves) == 0 {
		return move.Pass, nil
	}
	return moves[frand.Intn(len(moves))], nil
}

// LineReader returns one line of user input after showing prompt.
type LineReader func(prompt string) (string, error)

// HumanPlayer asks for a move until it gets a legal one.
type HumanPlayer struct {
	read LineReader
	out  io.Writer
}

func NewHumanPlayer(read LineReader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{read: read, out: out}
}

func (p *HumanPlayer) Name() string {
	return "human"
}

func (p *HumanPlayer) ChooseMove(g *game.Game) (move.Move, error) {
	side := g.PlayerOnTurn()
	if g.MustPass() {
		fmt.Fprintf(p.out, "%s has no legal move and must pass.\n", side)
		return move.Pass, nil
	}
	for {
		line, err := p.read(fmt.Sprintf("Enter %s's move as 'row,col': ", side))
		if err != nil {
			return move.Pass, err
		}
		m, err := move.FromString(line)
		if err == nil && m.IsPass() {
			err = game.ErrPassNotAllowed
		}
		if err == nil {
			_, _, err = g.Board().ApplyMove(side, m)
		}
		if err != nil {
			fmt.Fprintf(p.out, "Illegal move: %v\n", err)
			io.WriteString(p.out, g.Board().ToDisplayText())
			continue
		}
		return m, nil
	}
}

// FromKind builds a player from the one-letter kinds used on the command
// line. depth is only used by computer players.
func FromKind(kind string, depth int, solver *negamax.Solver, read LineReader, out io.Writer) (Player, error) {
	switch kind {
	case "h", "human":
		return NewHumanPlayer(read, out), nil
	case "c", "computer":
		return NewComputerPlayer(depth, solver), nil
	case "r", "random":
		return RandomPlayer{}, nil
	}
	return nil, ErrUnknownPlayerKind
}
