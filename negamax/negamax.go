// Package negamax is the computer player's game-tree search: a plain
// fixed-depth negamax over bitboards. Subtrees more than a cutoff number
// of plies above the leaves are searched concurrently, one goroutine per
// child; below the cutoff the search runs serially.
package negamax

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/move"
)

// thanks Wikipedia:
/*
function negamax(node, depth, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node
    value := −∞
    for each child of node do
        value := max(value, −negamax(child, depth − 1, −color))
    return value
**/

// DefaultCutoff is the remaining depth at or below which children are
// searched one at a time.
const DefaultCutoff = 4

// WorstScore is lower than any evaluation a board can produce.
const WorstScore = -9999999

type Solver struct {
	cutoff   int
	parallel bool

	nodes atomic.Uint64
}

// NewSolver returns a parallel solver using DefaultCutoff.
func NewSolver() *Solver {
	return &Solver{cutoff: DefaultCutoff, parallel: true}
}

func (s *Solver) SetCutoff(cutoff int) {
	if cutoff < 0 {
		cutoff = 0
	}
	s.cutoff = cutoff
}

func (s *Solver) Cutoff() int {
	return s.cutoff
}

// SetParallel turns concurrent fan-out on or off. With it off every node
// is searched serially regardless of the cutoff. Scores do not depend on
// this setting.
func (s *Solver) SetParallel(p bool) {
	s.parallel = p
}

func (s *Solver) Parallel() bool {
	return s.parallel
}

// Nodes returns the number of positions visited since the solver was
// created.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Negamax returns the best evaluation side can force looking depth plies
// ahead. A side with no move passes, which uses up one ply. Negative
// depths are treated as 0.
func (s *Solver) Negamax(b board.Board, side board.Side, depth int) int {
	if depth < 0 {
		depth = 0
	}
	s.nodes.Add(1)
	if depth == 0 {
		return b.Evaluate(side)
	}
	moves := b.MoveList(side)
	if len(moves) == 0 {
		if !b.CanMove(side.Other()) {
			// Neither side can move.
			return b.Evaluate(side)
		}
		return -s.Negamax(b, side.Other(), depth-1)
	}
	if !s.parallel || depth <= s.cutoff {
		return s.serialMax(b, side, moves, depth)
	}
	return maxScore(s.parallelScores(b, side, moves, depth))
}

func (s *Solver) serialMax(b board.Board, side board.Side, moves []move.Move, depth int) int {
	best := WorstScore
	for _, m := range moves {
		child, _ := b.Play(side, m)
		if v := -s.Negamax(child, side.Other(), depth-1); v > best {
			best = v
		}
	}
	return best
}

// parallelScores searches every child in its own goroutine. scores[i]
// belongs to moves[i]; each goroutine writes only its own slot and works
// on its own copy of the board.
func (s *Solver) parallelScores(b board.Board, side board.Side, moves []move.Move, depth int) []int {
	scores := make([]int, len(moves))
	var g errgroup.Group
	for i, m := range moves {
		g.Go(func() error {
			child, _ := b.Play(side, m)
			scores[i] = -s.Negamax(child, side.Other(), depth-1)
			return nil
		})
	}
	// The searches never fail.
	_ = g.Wait()
	return scores
}

func (s *Solver) serialScores(b board.Board, side board.Side, moves []move.Move, depth int) []int {
	scores := make([]int, len(moves))
	for i, m := range moves {
		child, _ := b.Play(side, m)
		scores[i] = -s.Negamax(child, side.Other(), depth-1)
	}
	return scores
}

func maxScore(scores []int) int {
	best := WorstScore
	for _, v := range scores {
		if v > best {
			best = v
		}
	}
	return best
}
