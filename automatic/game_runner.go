// Package automatic plays computer vs computer games, mostly to compare
// search depths and to exercise the engine over many positions.
package automatic

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/config"
	"github.com/Yizhe07/othello/game"
	"github.com/Yizhe07/othello/negamax"
	"github.com/Yizhe07/othello/player"
)

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game        *game.Game
	players     [2]player.Player
	randomPlies int
	gameID      int

	logchan chan []string
}

// NewGameRunner builds a runner with both sides searching to the
// configured default depth.
func NewGameRunner(logchan chan []string, cfg *config.Config) *GameRunner {
	depth := cfg.GetInt(config.ConfigDefaultDepth)
	r := &GameRunner{logchan: logchan}
	r.Init(depth, depth, cfg.GetInt(config.ConfigAutoplayRandomPlies), SolverFromConfig(cfg))
	return r
}

// SolverFromConfig returns a solver with the configured cutoff and
// parallel setting.
func SolverFromConfig(cfg *config.Config) *negamax.Solver {
	s := negamax.NewSolver()
	s.SetCutoff(cfg.GetInt(config.ConfigSearchCutoff))
	s.SetParallel(cfg.GetBool(config.ConfigSearchParallel))
	return s
}

// Init sets the search depth for each side. The first randomPlies turns of
// every game are played by a random mover so that games between the same
// two deterministic searchers differ.
func (r *GameRunner) Init(xDepth, oDepth, randomPlies int, solver *negamax.Solver) {
	r.players[board.Black] = player.NewComputerPlayer(xDepth, solver)
	r.players[board.White] = player.NewComputerPlayer(oDepth, solver)
	r.randomPlies = max(randomPlies, 0)
}

// StartGame sets up a new game. id is only used to tag log lines.
func (r *GameRunner) StartGame(id int) {
	r.game = game.NewGame()
	r.gameID = id
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayTurn plays one move, or a pass, for the side on turn.
func (r *GameRunner) PlayTurn() error {
	var p player.Player = r.players[r.game.PlayerOnTurn()]
	if r.game.Turn() < r.randomPlies {
		p = player.RandomPlayer{}
	}
	m, err := p.ChooseMove(r.game)
	if err != nil {
		return err
	}
	_, err = r.game.PlayMove(m)
	return err
}

// PlayFull plays a fresh game to the end.
func (r *GameRunner) PlayFull(id int) error {
	r.StartGame(id)
	for r.game.Playing() {
		if err := r.PlayTurn(); err != nil {
			return err
		}
	}
	log.Debug().Int("game", r.gameID).Str("result", r.game.Summary()).Msg("game-finished")
	r.logTurns()
	return nil
}

func (r *GameRunner) logTurns() {
	if r.logchan == nil {
		return
	}
	id := strconv.Itoa(r.gameID)
	for i, t := range r.game.History() {
		r.logchan <- []string{
			id,
			strconv.Itoa(i + 1),
			t.Side.String(),
			t.Move.String(),
			strconv.Itoa(t.Flipped),
			strconv.Itoa(t.Board.DiskCount(board.Black)),
			strconv.Itoa(t.Board.DiskCount(board.White)),
		}
	}
}
