package play

import (
	"errors"
	"log/slog"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var Log = slog.Default()

type Status int

const (
	On Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "on"
	}
}

type Result struct {
	Status  Status
	Moves   int
	Guesses int
	Flagged int
	// the mine that was stepped on, if any
	Exploded *mines.Cell
}

// Play lets the agent play the board until it wins, steps on a mine or
// runs out of moves.
func Play(board *mines.Board, a *agent.Agent) Result {
	var result Result

	for result.Status == On {
		move, err := a.NextMove()
		if errors.Is(err, agent.ErrExhausted) {
			/*
			 * Every cell left is a known mine. Flagging them all has
			 * to win, unless the knowledge is wrong.
			 */
			if board.HasWon() {
				result.Status = Won
			} else {
				result.Status = Lost
			}
			break
		}

		result.Moves++
		if move.Guess {
			result.Guesses++
		}

		if board.IsMine(move.Cell) {
			result.Status = Lost
			result.Exploded = &move.Cell
			Log.Debug("stepped on a mine", slog.String("cell", move.String()),
				slog.Int("moves", result.Moves))
			break
		}

		a.AddKnowledge(move.Cell, board.AdjacentMineCount(move.Cell))

		for c := range a.KnownMines() {
			if !board.IsFlagged(c) {
				board.Flag(c)
				result.Flagged++
			}
		}

		if board.HasWon() {
			result.Status = Won
		}
	}

	return result
}
