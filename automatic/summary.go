package automatic

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/Yizhe07/othello/stats"
)

const histogramBins = 15

// Summary collects results over many finished games.
type Summary struct {
	XWins int
	OWins int
	Ties  int
	// Differential is X's final disk count minus O's.
	Differential stats.Statistic
	Turns        stats.Statistic

	diffs []float64
}

// Add records one finished game.
func (s *Summary) Add(xDisks, oDisks, turns int) {
	diff := xDisks - oDisks
	switch {
	case diff > 0:
		s.XWins++
	case diff < 0:
		s.OWins++
	default:
		s.Ties++
	}
	s.Differential.Push(float64(diff))
	s.Turns.Push(float64(turns))
	s.diffs = append(s.diffs, float64(diff))
}

func (s *Summary) Merge(o *Summary) {
	s.XWins += o.XWins
	s.OWins += o.OWins
	s.Ties += o.Ties
	s.Differential.Merge(&o.Differential)
	s.Turns.Merge(&o.Turns)
	s.diffs = append(s.diffs, o.diffs...)
}

func (s *Summary) Games() int {
	return s.XWins + s.OWins + s.Ties
}

// Histogram draws the distribution of final differentials.
func (s *Summary) Histogram() string {
	if len(s.diffs) == 0 {
		return ""
	}
	if lo.Min(s.diffs) == lo.Max(s.diffs) {
		return fmt.Sprintf("every game ended with differential %.0f\n", s.diffs[0])
	}
	var sb strings.Builder
	h := histogram.Hist(histogramBins, s.diffs)
	if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
		return ""
	}
	return sb.String()
}

func (s *Summary) String() string {
	games := s.Games()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", games)
	if games == 0 {
		return sb.String()
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(games) }
	fmt.Fprintf(&sb, "X wins: %d (%.1f%%)\n", s.XWins, pct(s.XWins))
	fmt.Fprintf(&sb, "O wins: %d (%.1f%%)\n", s.OWins, pct(s.OWins))
	fmt.Fprintf(&sb, "Ties: %d (%.1f%%)\n", s.Ties, pct(s.Ties))
	fmt.Fprintf(&sb, "X-O disk differential: %s\n", s.Differential.String())
	fmt.Fprintf(&sb, "Turns per game: %s\n", s.Turns.String())
	sb.WriteString(s.Histogram())
	return sb.String()
}
