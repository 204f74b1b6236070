package play

import (
	"context"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

func TestMain(m *testing.M) {
	knowledge.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

func TestPlaySingleCell(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := mines.NewBoard(mines.GameParams{Height: 1, Width: 1}, r)
	require.NoError(t, err)

	result := Play(board, agent.New(1, 1, r))
	assert.Equal(t, Won, result.Status)
	assert.Equal(t, 1, result.Moves)
	assert.Equal(t, 0, result.Flagged)
	assert.Empty(t, board.Found())
}

func TestPlayDeducesEverything(t *testing.T) {
	// . . .
	// . . .
	// . . X
	board, err := mines.NewBoardWithMines(
		mines.GameParams{Height: 3, Width: 3, MineCount: 1},
		[]mines.Cell{{Row: 2, Col: 2}},
	)
	require.NoError(t, err)

	a := agent.New(3, 3, rand.New(rand.NewPCG(1, 2)))
	a.MarkSafe(mines.Cell{Row: 0, Col: 0})

	result := Play(board, a)
	assert.Equal(t, Won, result.Status)
	assert.Equal(t, 0, result.Guesses, "a zero at the corner opens the whole board")
	assert.Equal(t, 1, result.Flagged)
	assert.True(t, board.HasWon())
	assert.Nil(t, result.Exploded)
}

func TestPlayOnlyMines(t *testing.T) {
	board, err := mines.NewBoard(
		mines.GameParams{Height: 2, Width: 2, MineCount: 4}, rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)

	result := Play(board, agent.New(2, 2, rand.New(rand.NewPCG(1, 2))))
	assert.Equal(t, Lost, result.Status)
	assert.Equal(t, 1, result.Moves)
	require.NotNil(t, result.Exploded)
	assert.True(t, board.IsMine(*result.Exploded))
}

func TestPlayNeverFlagsSafeCells(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	r := rand.New(rand.NewPCG(1, 2))
	params := mines.GameParams{Height: 9, Width: 9, MineCount: 10}
	for range 100 {
		board, err := mines.NewBoard(params, r)
		require.NoError(t, err)
		result := Play(board, agent.New(params.Height, params.Width, r))

		for c := range board.Found() {
			assert.True(t, board.IsMine(c), "%s flagged but safe", c)
		}
		switch result.Status {
		case Won:
			assert.True(t, board.HasWon())
			assert.Nil(t, result.Exploded)
		case Lost:
			require.NotNil(t, result.Exploded)
			assert.True(t, board.IsMine(*result.Exploded))
		default:
			t.Fatalf("game ended with status %s", result.Status)
		}
	}
}

func TestBench(t *testing.T) {
	params := mines.GameParams{Height: 8, Width: 8, MineCount: 8}

	summary, err := Bench(context.Background(), params, 40, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 40, summary.Games)
	assert.Equal(t, summary.Games, summary.Won+summary.Lost)
	assert.Positive(t, summary.Won, "8x8 with 8 mines is mostly won")
	assert.GreaterOrEqual(t, summary.Moves, summary.Games)

	again, err := Bench(context.Background(), params, 40, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, summary, again, "results do not depend on scheduling")
}

func TestBenchInvalidParams(t *testing.T) {
	_, err := Bench(context.Background(), mines.GameParams{Height: 2, Width: 2, MineCount: 5}, 1, 1, 1)
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := Bench(ctx, mines.GameParams{Height: 8, Width: 8, MineCount: 8}, 10, 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Games)
}

func TestBenchCancelledAfterLastGame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := Bench(ctx, mines.GameParams{Height: 8, Width: 8, MineCount: 8}, 0, 2, 1)
	assert.NoError(t, err, "nothing was left to play")
	assert.Equal(t, Summary{}, summary)
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, Summary{}.WinRate())
	assert.InDelta(t, 0.75, Summary{Games: 4, Won: 3, Lost: 1}.WinRate(), 1e-9)
}
