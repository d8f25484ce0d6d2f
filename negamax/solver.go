package negamax

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/move"
)

// ScoredMove is a root move with its negamax value for the side that
// plays it.
type ScoredMove struct {
	Move  move.Move
	Score int
}

// RootScores searches every legal root move for side and returns the
// scores in board.MoveList order. It returns nil when side must pass.
func (s *Solver) RootScores(b board.Board, side board.Side, depth int) []ScoredMove {
	moves := b.MoveList(side)
	if len(moves) == 0 {
		return nil
	}
	var scores []int
	if s.parallel {
		scores = s.parallelScores(b, side, moves, depth)
	} else {
		scores = s.serialScores(b, side, moves, depth)
	}
	scored := make([]ScoredMove, len(moves))
	for i := range moves {
		scored[i] = ScoredMove{Move: moves[i], Score: scores[i]}
	}
	return scored
}

// BestMove returns the move with the highest score for side and that
// score. Ties go to the move earliest in board.MoveList order, so the
// result never depends on which goroutine finished first. A side without
// legal moves gets move.Pass.
func (s *Solver) BestMove(b board.Board, side board.Side, depth int) (move.Move, int) {
	_, best, score := s.Analyze(b, side, depth)
	return best, score
}

// Analyze is BestMove that also returns the score of every root move.
func (s *Solver) Analyze(b board.Board, side board.Side, depth int) ([]ScoredMove, move.Move, int) {
	tstart := time.Now()
	startNodes := s.nodes.Load()

	var best move.Move
	var bestScore int

	scored := s.RootScores(b, side, depth)
	if scored == nil {
		best = move.Pass
		bestScore = -s.Negamax(b, side.Other(), depth-1)
	} else {
		best, bestScore = scored[0].Move, scored[0].Score
		for _, sm := range scored[1:] {
			if sm.Score > bestScore {
				best, bestScore = sm.Move, sm.Score
			}
		}
	}

	log.Debug().
		Str("side", side.String()).
		Int("depth", depth).
		Int("cutoff", s.cutoff).
		Bool("parallel", s.parallel).
		Str("best", best.String()).
		Int("score", bestScore).
		Uint64("nodes", s.nodes.Load()-startNodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return scored, best, bestScore
}

// ScoreTable formats root scores as a table, in search order.
func ScoreTable(scored []ScoredMove) string {
	var sb strings.Builder
	sb.WriteString("     Move   Score\n")
	for i, sm := range scored {
		fmt.Fprintf(&sb, "%3d: %-7s%5d\n", i+1, sm.Move.String(), sm.Score)
	}
	return sb.String()
}
