package negamax

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// referenceNegamax is the textbook recursion with no concurrency and an
// explicit terminal check at every node.
func referenceNegamax(b board.Board, side board.Side, depth int) int {
	if depth == 0 || b.IsTerminal() {
		return b.Evaluate(side)
	}
	moves := b.MoveList(side)
	if len(moves) == 0 {
		return -referenceNegamax(b, side.Other(), depth-1)
	}
	best := WorstScore
	for _, m := range moves {
		child, _ := b.Play(side, m)
		if v := -referenceNegamax(child, side.Other(), depth-1); v > best {
			best = v
		}
	}
	return best
}

// randomPosition plays plies random moves from the opening and returns
// the board and side to move.
func randomPosition(plies int) (board.Board, board.Side) {
	b := board.InitialBoard()
	side := board.Black
	for i := 0; i < plies && !b.IsTerminal(); i++ {
		moves := b.MoveList(side)
		if len(moves) > 0 {
			b, _ = b.Play(side, moves[frand.Intn(len(moves))])
		}
		side = side.Other()
	}
	return b, side
}

func mustParse(t *testing.T, pos string) (board.Board, board.Side) {
	t.Helper()
	b, side, err := board.ParsePosition(pos)
	if err != nil {
		t.Fatal(err)
	}
	return b, side
}

func TestDepthZeroIsEvaluation(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	for i := 0; i < 100; i++ {
		b, side := randomPosition(frand.Intn(60))
		is.Equal(s.Negamax(b, side, 0), b.Evaluate(side))
		is.Equal(s.Negamax(b, side.Other(), 0), b.Evaluate(side.Other()))
		// Negative depths are clamped.
		is.Equal(s.Negamax(b, side, -3), b.Evaluate(side))
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	is := is.New(t)
	serial := NewSolver()
	serial.SetParallel(false)

	for i := 0; i < 12; i++ {
		b, side := randomPosition(8 + frand.Intn(40))
		for depth := 0; depth <= 4; depth++ {
			exp := serial.Negamax(b, side, depth)
			is.Equal(exp, referenceNegamax(b, side, depth))
			for _, cutoff := range []int{0, 1, 2, DefaultCutoff} {
				par := NewSolver()
				par.SetCutoff(cutoff)
				is.Equal(par.Negamax(b, side, depth), exp)
			}
		}
	}
}

func TestRootScoresParallelMatchesSerial(t *testing.T) {
	is := is.New(t)
	serial := NewSolver()
	serial.SetParallel(false)
	par := NewSolver()
	par.SetCutoff(1)

	for i := 0; i < 8; i++ {
		b, side := randomPosition(10 + frand.Intn(30))
		for depth := 1; depth <= 4; depth++ {
			is.Equal(par.RootScores(b, side, depth), serial.RootScores(b, side, depth))
			m1, v1 := par.BestMove(b, side, depth)
			m2, v2 := serial.BestMove(b, side, depth)
			is.Equal(m1, m2)
			is.Equal(v1, v2)
			if !m1.IsPass() {
				is.Equal(v1, par.Negamax(b, side, depth))
			}
		}
	}
}

func TestOpeningDepthOne(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	m, score := s.BestMove(board.InitialBoard(), board.Black, 1)
	is.True(score > 0)
	is.Equal(score, 3)
	openings := map[move.Move]bool{
		move.New(3, 4): true, move.New(4, 3): true,
		move.New(5, 6): true, move.New(6, 5): true,
	}
	is.True(openings[m])
	// All four replies tie; the first in move-list order wins.
	is.Equal(m, move.New(6, 5))
}

func TestFirstMaximumWins(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	for i := 0; i < 20; i++ {
		b, side := randomPosition(frand.Intn(50))
		scored := s.RootScores(b, side, 2)
		if scored == nil {
			continue
		}
		m, v := s.BestMove(b, side, 2)
		firstBest := 0
		for j, sm := range scored {
			if sm.Score > scored[firstBest].Score {
				firstBest = j
			}
		}
		is.Equal(m, scored[firstBest].Move)
		is.Equal(v, scored[firstBest].Score)
		moves := b.MoveList(side)
		is.Equal(len(scored), len(moves))
		for j := range moves {
			is.Equal(scored[j].Move, moves[j])
		}
	}
}

func TestBlockedSidePasses(t *testing.T) {
	is := is.New(t)
	// X cannot move; O can capture on 1,3.
	b, _ := mustParse(t,
		"OX....../......../......../......../......../......../......../........ X")
	is.True(!b.CanMove(board.Black))
	is.True(b.CanMove(board.White))
	is.True(!b.IsTerminal())

	s := NewSolver()
	for depth := 1; depth <= 5; depth++ {
		is.Equal(s.Negamax(b, board.Black, depth), -s.Negamax(b, board.White, depth-1))
	}
	is.Equal(s.Negamax(b, board.Black, 2), -3)
	is.True(s.Negamax(b, board.Black, 2) != b.Evaluate(board.Black))

	m, score := s.BestMove(b, board.Black, 2)
	is.Equal(m, move.Pass)
	is.Equal(score, -3)

	m, score = s.BestMove(b, board.White, 1)
	is.Equal(m, move.New(1, 3))
	is.Equal(score, 3)
}

func TestTerminalBoardIgnoresDepth(t *testing.T) {
	is := is.New(t)
	b, err := board.FromMasks(board.Bit(1, 1)|board.Bit(2, 2)|board.Bit(8, 8), board.Bit(5, 5))
	is.NoErr(err)
	is.True(b.IsTerminal())
	s := NewSolver()
	for depth := 0; depth <= 8; depth++ {
		is.Equal(s.Negamax(b, board.Black, depth), b.Evaluate(board.Black))
		is.Equal(s.Negamax(b, board.White, depth), b.Evaluate(board.White))
	}
	m, score := s.BestMove(b, board.Black, 3)
	is.Equal(m, move.Pass)
	is.Equal(score, 2)
}

func TestBestMoveNeverMutatesBoard(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	s.SetCutoff(1)
	b, side := randomPosition(20)
	before := b
	s.BestMove(b, side, 4)
	is.Equal(b, before)
	is.True(s.Nodes() > 0)
}

func TestScoreTable(t *testing.T) {
	is := is.New(t)
	table := ScoreTable([]ScoredMove{{move.New(6, 5), 3}, {move.New(5, 6), -1}})
	is.Equal(table, "     Move   Score\n  1: 6,5        3\n  2: 5,6       -1\n")
}

func BenchmarkNegamaxParallel(b *testing.B) {
	s := NewSolver()
	bd := board.InitialBoard()
	for i := 0; i < b.N; i++ {
		s.Negamax(bd, board.Black, 7)
	}
}

func BenchmarkNegamaxSerial(b *testing.B) {
	s := NewSolver()
	s.SetParallel(false)
	bd := board.InitialBoard()
	for i := 0; i < b.N; i++ {
		s.Negamax(bd, board.Black, 7)
	}
}
