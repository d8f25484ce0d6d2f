package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/Yizhe07/othello/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func testController(t *testing.T) (*ShellController, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	return newController(config.DefaultConfig(), out), out
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.standardModeSwitch(line, nil)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return resp.message
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /path/to/log.csv",
			&shellcmd{"autoplay", nil, CmdOptions{"file": "/path/to/log.csv"}},
			nil},
		{"play 3,4",
			&shellcmd{"play", []string{"3,4"}, CmdOptions{}},
			nil},
		{"start c 3 c 5 ",
			&shellcmd{"start", []string{"c", "3", "c", "5"}, CmdOptions{}},
			nil},
		{"best -1",
			&shellcmd{"best", []string{"-1"}, CmdOptions{}},
			nil},
		{"autoplay -games 10 -x 3",
			&shellcmd{"autoplay", nil, CmdOptions{"games": "10", "x": "3"}},
			nil},
		{"autoplay -games", nil, errWrongOptionSyntax},
		{"autoplay -games 3 extra", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestPlayAndShow(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(run(t, sc, "moves"), "4 legal moves for X: 6,5 5,6 4,3 3,4")

	text := run(t, sc, "play 3,4")
	is.True(strings.HasPrefix(text, "X flipped 1 disks.\n  1 2 3 4 5 6 7 8\n"))
	is.True(strings.HasSuffix(text, "X: 4  O: 1\nO to move"))

	_, err := sc.standardModeSwitch("play 3,4", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("play pass", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("play", nil)
	is.True(err != nil)

	is.True(strings.HasPrefix(run(t, sc, "new"), "  1 2 3 4 5 6 7 8\n"))
	is.Equal(sc.game.Turn(), 0)
}

func TestBest(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	text := run(t, sc, "best 1")
	is.True(strings.HasPrefix(text, "     Move   Score\n"))
	is.True(strings.HasSuffix(text, "Best for X at depth 1: 6,5 => Score: 3"))

	_, err := sc.standardModeSwitch("best -1", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("best lots", nil)
	is.True(err != nil)
}

func TestAIPlay(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	text := run(t, sc, "aiplay 1")
	is.True(strings.HasPrefix(text, "\n[X] Computer chooses move (6, 5) => Score: 3\nX flipped 1 disks.\n"))
	is.Equal(sc.game.Turn(), 1)
}

func TestStartComputerGame(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	text := run(t, sc, "start c 1 r")
	is.True(strings.HasPrefix(text, "Game over.\n"))
	is.True(!sc.game.Playing())
	is.True(strings.Contains(out.String(), "Computer chooses move"))
	is.True(strings.Contains(text, sc.game.Summary()))
}

func TestStartErrors(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	for _, line := range []string{"start c", "start z c", "start c 1 c 1 c", "start"} {
		_, err := sc.standardModeSwitch(line, nil)
		is.True(err != nil)
	}
	// Without a terminal a human player cannot answer.
	_, err := sc.standardModeSwitch("start h c 1", nil)
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "game stopped"))
}

func TestSetPosition(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	pos := "OX....../......../......../......../......../......../......../........ X"
	text := run(t, sc, "setpos "+pos)
	is.True(strings.HasSuffix(text, "X to move"))
	is.Equal(run(t, sc, "position"), pos)
	is.Equal(run(t, sc, "moves"), "X has no legal moves")

	text = run(t, sc, "play pass")
	is.True(strings.HasPrefix(text, "X passes.\n"))
	text = run(t, sc, "aiplay 1")
	is.True(strings.HasSuffix(text, "Game over. X has 0 disks. O has 3 disks. O wins."))
	_, err := sc.standardModeSwitch("aiplay 1", nil)
	is.True(err != nil)

	_, err = sc.standardModeSwitch("setpos OX X", nil)
	is.True(err != nil)
}

func TestSearchSettings(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(run(t, sc, "cutoff"), "search cutoff is 4")
	is.Equal(run(t, sc, "cutoff 2"), "search cutoff set to 2")
	is.Equal(sc.solver.Cutoff(), 2)
	is.Equal(run(t, sc, "parallel off"), "parallel search is off")
	is.True(!sc.solver.Parallel())
	is.Equal(run(t, sc, "parallel"), "parallel search is off")
	_, err := sc.standardModeSwitch("parallel maybe", nil)
	is.True(err != nil)
}

func TestAutoplayAndAnalyze(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	file := filepath.Join(t.TempDir(), "auto.csv")
	text := run(t, sc, "autoplay -games 3 -threads 2 -x 1 -o 1 -random 2 -file "+file)
	is.True(strings.HasPrefix(text, "Games played: 3\n"))
	is.True(strings.Contains(out.String(), "Playing 3 games (X depth 1, O depth 1) on 2 threads"))

	analyzed := run(t, sc, "autoanalyze "+file)
	is.True(strings.HasPrefix(analyzed, "Games played: 3\n"))

	_, err := sc.standardModeSwitch("autoplay -games many", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("autoanalyze", nil)
	is.True(err != nil)
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.True(strings.HasPrefix(run(t, sc, "help"), "Usage:"))
	is.True(strings.HasPrefix(run(t, sc, "help start"), "start <h|c|r>"))
	is.Equal(run(t, sc, "help nosuch"), "There is no help text for the topic nosuch")

	_, err := sc.standardModeSwitch("frobnicate", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("exit", nil)
	is.True(errors.Is(err, errQuit))
}

func TestExecute(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	sc.Execute(nil, "position")
	is.Equal(out.String(), "......../......../......../...OX.../...XO.../......../......../........ X\n")
	out.Reset()
	sc.Execute(nil, "play 1,1")
	is.True(strings.HasPrefix(out.String(), "Error: illegal move 1,1"))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("auto"), 4)
	is.Equal(n, 4)
	is.Equal(matches, [][]rune{[]rune("play"), []rune("analyze")})

	line := []rune("play 6")
	matches, n = c.Do(line, len(line))
	is.Equal(n, 1)
	is.Equal(matches, [][]rune{[]rune(",5")})

	line = []rune("autoplay -g")
	matches, _ = c.Do(line, len(line))
	is.Equal(matches, [][]rune{[]rune("ames")})
}
