package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

const envPrefix = "MINES_"

var gameEnv = map[string]string{
	"height":     envPrefix + "HEIGHT",
	"width":      envPrefix + "WIDTH",
	"mine_count": envPrefix + "MINE_COUNT",
}

func DefaultGameParams() mines.GameParams {
	return mines.GameParams{Height: 8, Width: 8, MineCount: 8}
}

// NewGameParams reads the board configuration from MINES_HEIGHT,
// MINES_WIDTH and MINES_MINE_COUNT. Unset variables keep their defaults.
func NewGameParams() (*mines.GameParams, error) {
	src := make(url.Values)
	for key, env := range gameEnv {
		if value, ok := os.LookupEnv(env); ok {
			src.Set(key, value)
		}
	}

	params := DefaultGameParams()
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&params, src); err != nil {
		return nil, fmt.Errorf("unable to decode game params from env: %w", err)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}
