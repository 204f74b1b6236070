package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

func TestNewGameParamsDefaults(t *testing.T) {
	params, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, DefaultGameParams(), *params)
}

func TestNewGameParamsFromEnv(t *testing.T) {
	t.Setenv("MINES_HEIGHT", "16")
	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_MINE_COUNT", "99")

	params, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Height: 16, Width: 30, MineCount: 99}, *params)
}

func TestNewGameParamsPartialEnv(t *testing.T) {
	t.Setenv("MINES_WIDTH", "3")

	params, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Height: 8, Width: 3, MineCount: 8}, *params)
}

func TestNewGameParamsInvalid(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("MINES_HEIGHT", "tall")
		_, err := NewGameParams()
		assert.Error(t, err)
	})
	t.Run("too many mines", func(t *testing.T) {
		t.Setenv("MINES_HEIGHT", "2")
		t.Setenv("MINES_WIDTH", "2")
		_, err := NewGameParams()
		assert.ErrorIs(t, err, mines.ErrInvalidParams)
	})
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestSeed(t *testing.T) {
	t.Setenv("MINES_SEED", "42")
	seed, err := Seed()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), seed)

	t.Setenv("MINES_SEED", "-1")
	_, err = Seed()
	assert.Error(t, err)
}

func TestAttachLogFile(t *testing.T) {
	log := logrus.New()

	attached, err := AttachLogFile(log)
	require.NoError(t, err)
	assert.False(t, attached)

	t.Setenv("MINES_LOG_FILE", filepath.Join(t.TempDir(), "engine.log"))
	attached, err = AttachLogFile(log)
	require.NoError(t, err)
	assert.True(t, attached)
	assert.NotEmpty(t, log.Hooks[logrus.WarnLevel])
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, NewLogger().Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, NewLogger().Enabled(context.Background(), slog.LevelDebug))
}
