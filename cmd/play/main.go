package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/vancomm/minesweeper-agent/internal/agent"
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
		params mines.GameParams
		seed   uint64
		quiet  bool
	)
	flag.IntVar(&params.Height, "height", defaults.Height, "board height")
	flag.IntVar(&params.Width, "width", defaults.Width, "board width")
	flag.IntVar(&params.MineCount, "mines", defaults.MineCount, "number of mines")
	flag.Uint64Var(&seed, "seed", defaultSeed, "random seed")
	flag.BoolVar(&quiet, "q", false, "do not print the board")
	flag.Parse()

	if _, err := config.AttachLogFile(knowledge.Log); err != nil {
		logger.Error("failed to attach log file", slog.Any("error", err))
		os.Exit(1)
	}

	r := rand.New(rand.NewPCG(seed, 0))
	board, err := mines.NewBoard(params, r)
	if err != nil {
		logger.Error("failed to create board", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting game",
		slog.String("params", params.Seed()),
		slog.Uint64("seed", seed),
	)

	result := play.Play(board, agent.New(params.Height, params.Width, r))

	if !quiet {
		fmt.Print(board)
	}
	attrs := []any{
		slog.String("status", result.Status.String()),
		slog.Int("moves", result.Moves),
		slog.Int("guesses", result.Guesses),
		slog.Int("flagged", result.Flagged),
	}
	if result.Exploded != nil {
		attrs = append(attrs, slog.String("exploded", result.Exploded.String()))
	}
	logger.Info("game over", attrs...)

	if result.Status != play.Won {
		os.Exit(2)
	}
}
