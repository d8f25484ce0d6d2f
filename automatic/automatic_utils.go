package automatic

// Data collection for automatic games.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Yizhe07/othello/board"
	"github.com/Yizhe07/othello/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

var csvHeader = []string{"gameID", "turn", "side", "move", "flipped", "x_disks", "o_disks"}

// playing guards against overlapping runs; IsPlaying mirrors it for expvar.
var playing sync.Mutex

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type Options struct {
	Games       int
	Threads     int
	XDepth      int
	ODepth      int
	RandomPlies int
	OutputFile  string
}

// OptionsFromConfig fills every option from the configuration. Both sides
// search to the default depth.
func OptionsFromConfig(cfg *config.Config) Options {
	depth := cfg.GetInt(config.ConfigDefaultDepth)
	return Options{
		Games:       cfg.GetInt(config.ConfigAutoplayGames),
		Threads:     cfg.GetInt(config.ConfigAutoplayThreads),
		XDepth:      depth,
		ODepth:      depth,
		RandomPlies: cfg.GetInt(config.ConfigAutoplayRandomPlies),
		OutputFile:  cfg.GetString(config.ConfigAutoplayLog),
	}
}

// StartCompVComp plays opts.Games games on opts.Threads workers and blocks
// until they finish or ctx is cancelled. Every turn is written to
// opts.OutputFile as CSV. On cancellation the summary covers the games
// that did finish.
func StartCompVComp(ctx context.Context, cfg *config.Config, opts Options) (*Summary, error) {
	if !playing.TryLock() {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Unlock()

	threads := max(opts.Threads, 1)
	logfile, err := os.Create(opts.OutputFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("games", opts.Games).Int("threads", threads).Msg("starting-autoplay")

	CVCCounter.Set(0)
	IsPlaying.Set(1)
	defer IsPlaying.Set(0)

	jobs := make(chan int, 100)
	logChan := make(chan []string, 100)
	writerDone := make(chan error, 1)

	go func() {
		w := csv.NewWriter(logfile)
		w.Write(csvHeader)
		for rec := range logChan {
			w.Write(rec)
		}
		w.Flush()
		err := w.Error()
		if cerr := logfile.Close(); err == nil {
			err = cerr
		}
		log.Info().Msg("Exiting turn logger goroutine!")
		writerDone <- err
	}()

	summary := &Summary{}
	var mu sync.Mutex
	solver := SolverFromConfig(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 1; i <= opts.Games; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
			if i%1000 == 0 {
				log.Info().Int("queued", i).Msg("queueing-games")
			}
		}
		log.Info().Msg("Finished queueing all jobs.")
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r := &GameRunner{logchan: logChan}
			r.Init(opts.XDepth, opts.ODepth, opts.RandomPlies, solver)
			local := &Summary{}
			for id := range jobs {
				if err := r.PlayFull(id); err != nil {
					return err
				}
				b := r.Game().Board()
				local.Add(b.DiskCount(board.Black), b.DiskCount(board.White), r.Game().Turn())
				CVCCounter.Add(1)
			}
			mu.Lock()
			summary.Merge(local)
			mu.Unlock()
			return nil
		})
	}

	err = g.Wait()
	close(logChan)
	werr := <-writerDone
	if err != nil {
		return nil, err
	}
	if werr != nil {
		return nil, werr
	}
	log.Info().Int("games", summary.Games()).Int("x-wins", summary.XWins).
		Int("o-wins", summary.OWins).Int("ties", summary.Ties).Msg("autoplay-finished")
	return summary, nil
}
