package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
	"github.com/vancomm/minesweeper-agent/internal/play"
)

func main() {
	logger := config.NewLogger()
	play.Log = logger

	defaults, err := config.NewGameParams()
	if err != nil {
		logger.Error("invalid game params", slog.Any("error", err))
		os.Exit(1)
	}
	defaultSeed, err := config.Seed()
	if err != nil {
		logger.Error("invalid seed", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		params  mines.GameParams
		seed    uint64
		games   int
		workers int
	)
	flag.IntVar(&params.Height, "height", defaults.Height, "board height")
	flag.IntVar(&params.Width, "width", defaults.Width, "board width")
	flag.IntVar(&params.MineCount, "mines", defaults.MineCount, "number of mines")
	flag.Uint64Var(&seed, "seed", defaultSeed, "random seed")
	flag.IntVar(&games, "games", 1000, "number of games to play")
	flag.IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "number of concurrent games")
	flag.Parse()

	if _, err := config.AttachLogFile(knowledge.Log); err != nil {
		logger.Error("failed to attach log file", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("starting benchmark",
		slog.String("params", params.Seed()),
		slog.Uint64("seed", seed),
		slog.Int("games", games),
		slog.Int("workers", workers),
	)

	summary, err := play.Bench(ctx, params, games, workers, seed)
	logger.Info("benchmark finished",
		slog.Int("games", summary.Games),
		slog.Int("won", summary.Won),
		slog.Int("lost", summary.Lost),
		slog.Int("moves", summary.Moves),
		slog.Int("guesses", summary.Guesses),
		slog.Float64("win_rate", summary.WinRate()),
	)
	if err != nil {
		logger.Error("benchmark interrupted", slog.Any("error", err))
		os.Exit(1)
	}
}
