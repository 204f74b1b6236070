package play

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

type Summary struct {
	Games   int
	Won     int
	Lost    int
	Moves   int
	Guesses int
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

func (s *Summary) add(r Result) {
	s.Games++
	s.Moves += r.Moves
	s.Guesses += r.Guesses
	switch r.Status {
	case Won:
		s.Won++
	case Lost:
		s.Lost++
	}
}

// Bench plays games independent games on up to workers goroutines. Game
// i draws its board and its guesses from the PCG stream (seed, i), so a
// run is reproducible regardless of scheduling.
func Bench(
	ctx context.Context, params mines.GameParams, games, workers int, seed uint64,
) (Summary, error) {
	if err := params.Validate(); err != nil {
		return Summary{}, err
	}
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		summary Summary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range games {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			board, err := mines.NewBoard(params, r)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			result := Play(board, agent.New(params.Height, params.Width, r))

			Log.Debug("game finished",
				slog.Int("game", i),
				slog.String("status", result.Status.String()),
				slog.Int("moves", result.Moves),
				slog.Int("guesses", result.Guesses),
			)

			mu.Lock()
			summary.add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	if summary.Games < games {
		return summary, ctx.Err()
	}
	return summary, nil
}
