package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Height    int `schema:"height"`
	Width     int `schema:"width"`
	MineCount int `schema:"mine_count"`
}

func (p GameParams) Unpack() (h int, w int, mc int) {
	return p.Height, p.Width, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Height * p.Width
}

// Validate requires a board of at least 1x1 holding between zero and
// Height*Width mines; a board with no mines is allowed.
func (p GameParams) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Height, p.Width)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: mine count cannot be negative, got %d",
			ErrInvalidParams, p.MineCount)
	}
	if p.MineCount > p.Cells() {
		return fmt.Errorf("%w: %d mines do not fit on a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Height, p.Width)
	}
	return nil
}

func (p GameParams) InBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < p.Height && 0 <= c.Col && c.Col < p.Width
}

// Neighbors returns the in-bounds cells around c, not including c, in
// row-major order.
func (p GameParams) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		if c.Row+dr < 0 || c.Row+dr >= p.Height {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if c.Col+dc < 0 || c.Col+dc >= p.Width {
				continue
			}
			if dr == 0 && dc == 0 {
				continue
			}
			neighbors = append(neighbors, Cell{c.Row + dr, c.Col + dc})
		}
	}
	return neighbors
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Width, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Width, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
