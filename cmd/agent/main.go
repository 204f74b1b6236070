package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

// run executes commands until input ends or a quit command is read.
// Command errors are reported and do not stop the session.
func run(a *agent.Agent, commands iter.Seq2[int, string], out io.Writer) {
	for i, c := range commands {
		c = strings.TrimSpace(c)
		err := executeCommand(a, out, c)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintf(out, "command %d %q: %s\n", i, c, err)
		}
	}
}

func lines(r io.Reader) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		sc := bufio.NewScanner(r)
		for i := 0; sc.Scan(); i++ {
			if !yield(i, sc.Text()) {
				return
			}
		}
	}
}

func main() {
	logger := config.NewLogger()

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
		height, width int
		seed          uint64
		script        string
	)
	flag.IntVar(&height, "height", defaults.Height, "board height")
	flag.IntVar(&width, "width", defaults.Width, "board width")
	flag.Uint64Var(&seed, "seed", defaultSeed, "random seed")
	flag.StringVar(&script, "script", "", "';'-separated commands to run instead of reading stdin")
	flag.Parse()

	if height < 1 || width < 1 {
		logger.Error("board dimensions must be positive",
			slog.Int("height", height), slog.Int("width", width))
		os.Exit(1)
	}

	if config.Development() {
		knowledge.Log.SetLevel(logrus.DebugLevel)
	}
	if _, err := config.AttachLogFile(knowledge.Log); err != nil {
		logger.Error("failed to attach log file", slog.Any("error", err))
		os.Exit(1)
	}

	a := agent.New(height, width, rand.New(rand.NewPCG(seed, 0)))

	if script != "" {
		run(a, scriptCommands(script), os.Stdout)
		return
	}
	run(a, lines(os.Stdin), os.Stdout)
}
