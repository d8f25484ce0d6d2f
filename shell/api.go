package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Yizhe07/othello/automatic"
	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/config"
	"github.com/Yizhe07/othello/game"
	"github.com/Yizhe07/othello/move"
	"github.com/Yizhe07/othello/negamax"
	"github.com/Yizhe07/othello/player"
)

func (sc *ShellController) depthArg(cmd *shellcmd, idx int) (int, error) {
	if len(cmd.args) <= idx {
		return sc.config.GetInt(config.ConfigDefaultDepth), nil
	}
	d, err := strconv.Atoi(cmd.args[idx])
	if err != nil {
		return 0, fmt.Errorf("bad depth %q: %w", cmd.args[idx], err)
	}
	if d < 0 {
		return 0, errors.New("depth must not be negative")
	}
	return d, nil
}

func (sc *ShellController) boardText() string {
	var sb strings.Builder
	sb.WriteString(sc.game.Board().ToDisplayTextWithMoves(sc.game.PlayerOnTurn()))
	b := sc.game.Board()
	fmt.Fprintf(&sb, "X: %d  O: %d\n", b.DiskCount(board.Black), b.DiskCount(board.White))
	if !sc.game.Playing() {
		sb.WriteString("Game over. " + sc.game.Summary())
	} else {
		fmt.Fprintf(&sb, "%s to move", sc.game.PlayerOnTurn())
	}
	return sb.String()
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game = game.NewGame()
	return msg(sc.boardText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.boardText()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	side := sc.game.PlayerOnTurn()
	ml := sc.game.Board().MoveList(side)
	if len(ml) == 0 {
		return msg(fmt.Sprintf("%s has no legal moves", side)), nil
	}
	strs := lo.Map(ml, func(m move.Move, _ int) string { return m.String() })
	return msg(fmt.Sprintf("%d legal moves for %s: %s", len(ml), side, strings.Join(strs, " "))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <row,col|pass>")
	}
	m, err := move.FromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	side := sc.game.PlayerOnTurn()
	flipped, err := sc.game.PlayMove(m)
	if err != nil {
		return nil, err
	}
	if m.IsPass() {
		return msg(fmt.Sprintf("%s passes.\n%s", side, sc.boardText())), nil
	}
	return msg(fmt.Sprintf("%s flipped %d disks.\n%s", side, flipped, sc.boardText())), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	depth, err := sc.depthArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	b, side := sc.game.Board(), sc.game.PlayerOnTurn()
	scored, m, score := sc.solver.Analyze(b, side, depth)
	var sb strings.Builder
	if len(scored) > 0 {
		sb.WriteString(negamax.ScoreTable(scored))
	}
	fmt.Fprintf(&sb, "Best for %s at depth %d: %s => Score: %d", side, depth, m, score)
	return msg(sb.String()), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	depth, err := sc.depthArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	if !sc.game.Playing() {
		return nil, game.ErrGameOver
	}
	text, err := sc.takeTurn(player.NewComputerPlayer(depth, sc.solver))
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}

// takeTurn lets p move for the side on turn and reports what happened. It
// assumes the game is not over.
func (sc *ShellController) takeTurn(p player.Player) (string, error) {
	side := sc.game.PlayerOnTurn()
	m, err := p.ChooseMove(sc.game)
	if err != nil {
		return "", err
	}
	flipped, err := sc.game.PlayMove(m)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	switch {
	case m.IsPass():
		fmt.Fprintf(&sb, "%s has no legal moves and passes.\n", side)
	default:
		if cp, ok := p.(*player.ComputerPlayer); ok {
			fmt.Fprintf(&sb, "\n[%s] Computer chooses move (%d, %d) => Score: %d\n",
				side, m.Row, m.Col, cp.LastScore())
			fmt.Fprintf(&sb, "%s flipped %d disks.\n", side, flipped)
		} else {
			fmt.Fprintf(&sb, "%s plays %s and flipped %d disks.\n", side, m, flipped)
		}
	}
	sb.WriteString(sc.boardText())
	return sb.String(), nil
}

// askKind runs the interactive player setup used when `start` gets no
// arguments.
func (sc *ShellController) askKind(n int, side board.Side) (string, int, error) {
	kind, err := sc.readLine(fmt.Sprintf("Is Player %d (%s) [h]uman, [c]omputer or [r]andom? ", n, side))
	if err != nil {
		return "", 0, err
	}
	if kind != "c" {
		return kind, 0, nil
	}
	ds, err := sc.readLine(fmt.Sprintf("Enter search depth for %s (1..60): ", side))
	if err != nil {
		return "", 0, err
	}
	d, err := strconv.Atoi(ds)
	if err != nil || d < 1 || d > 60 {
		return "", 0, errors.New("search depth must be a number from 1 to 60")
	}
	return kind, d, nil
}

// parsePlayers reads `<kind> [depth] <kind> [depth]`.
func (sc *ShellController) parsePlayers(args []string) ([2]player.Player, error) {
	var players [2]player.Player
	idx := 0
	for _, side := range []board.Side{board.Black, board.White} {
		if idx >= len(args) {
			return players, errors.New("usage: start <h|c|r> [depth] <h|c|r> [depth]")
		}
		kind := args[idx]
		idx++
		depth := sc.config.GetInt(config.ConfigDefaultDepth)
		if idx < len(args) && isNumber(args[idx]) {
			depth, _ = strconv.Atoi(args[idx])
			idx++
		}
		p, err := player.FromKind(kind, depth, sc.solver, sc.readLine, sc.out)
		if err != nil {
			return players, err
		}
		players[side] = p
	}
	if idx != len(args) {
		return players, errors.New("too many arguments to start")
	}
	return players, nil
}

func (sc *ShellController) start(cmd *shellcmd) (*Response, error) {
	args := cmd.args
	if len(args) == 0 {
		for i, side := range []board.Side{board.Black, board.White} {
			kind, depth, err := sc.askKind(i+1, side)
			if err != nil {
				return nil, err
			}
			args = append(args, kind)
			if kind == "c" {
				args = append(args, strconv.Itoa(depth))
			}
		}
	}
	players, err := sc.parsePlayers(args)
	if err != nil {
		return nil, err
	}
	sc.game = game.NewGame()
	sc.showMessage(sc.boardText())
	for sc.game.Playing() {
		text, err := sc.takeTurn(players[sc.game.PlayerOnTurn()])
		if err != nil {
			return nil, fmt.Errorf("game stopped: %w", err)
		}
		sc.showMessage(text)
	}
	return msg("Game over.\n" + sc.game.Summary()), nil
}

func (sc *ShellController) setPosition(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: setpos <64 squares> <X|O>")
	}
	b, side, err := board.ParsePosition(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	sc.game = game.FromPosition(b, side)
	return msg(sc.boardText()), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.Board().Position(sc.game.PlayerOnTurn())), nil
}

func (sc *ShellController) cutoff(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("search cutoff is %d", sc.solver.Cutoff())), nil
	}
	c, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.solver.SetCutoff(c)
	return msg(fmt.Sprintf("search cutoff set to %d", sc.solver.Cutoff())), nil
}

func (sc *ShellController) parallel(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("parallel search is %v", onOff(sc.solver.Parallel()))), nil
	}
	switch cmd.args[0] {
	case "on":
		sc.solver.SetParallel(true)
	case "off":
		sc.solver.SetParallel(false)
	default:
		return nil, errors.New("usage: parallel <on|off>")
	}
	return msg("parallel search is " + onOff(sc.solver.Parallel())), nil
}

func onOff(b bool) string {
	return lo.Ternary(b, "on", "off")
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	opts := automatic.OptionsFromConfig(sc.config)
	var err error
	ints := []struct {
		key string
		dst *int
	}{
		{"games", &opts.Games},
		{"threads", &opts.Threads},
		{"x", &opts.XDepth},
		{"o", &opts.ODepth},
		{"random", &opts.RandomPlies},
	}
	for _, o := range ints {
		if *o.dst, err = cmd.options.IntDefault(o.key, *o.dst); err != nil {
			return nil, err
		}
	}
	if f := cmd.options.String("file"); f != "" {
		opts.OutputFile = f
	}
	sc.showMessage(fmt.Sprintf("Playing %d games (X depth %d, O depth %d) on %d threads, logging to %s",
		opts.Games, opts.XDepth, opts.ODepth, opts.Threads, opts.OutputFile))
	summary, err := automatic.StartCompVComp(context.Background(), sc.config, opts)
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("please provide a filename to analyze")
	}
	summary, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}
