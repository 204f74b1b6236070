package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board holds the ground truth of a game: where the mines are and which
// cells the player has flagged. The mine set is fixed at construction.
type Board struct {
	GameParams
	mines CellSet
	found CellSet
}

func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	height, width, mineCount := params.Unpack()

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random.
	 */
	candidates := make([]Cell, 0, height*width)
	for row := range height {
		for col := range width {
			candidates = append(candidates, Cell{row, col})
		}
	}

	mines := make(CellSet, mineCount)
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		mines.Add(candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	return &Board{
		GameParams: params,
		mines:      mines,
		found:      make(CellSet),
	}, nil
}

func NewBoardWithMines(params GameParams, mines []Cell) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	set := make(CellSet, len(mines))
	for _, c := range mines {
		if !params.InBounds(c) {
			return nil, BoardError{c, "mine out of bounds"}
		}
		if set.Has(c) {
			return nil, BoardError{c, "duplicate mine"}
		}
		set.Add(c)
	}
	if len(set) != params.MineCount {
		return nil, fmt.Errorf("%w: expected %d mines, got %d",
			ErrInvalidParams, params.MineCount, len(set))
	}
	return &Board{
		GameParams: params,
		mines:      set,
		found:      make(CellSet),
	}, nil
}

func (b *Board) IsMine(c Cell) bool {
	return b.mines.Has(c)
}

func (b *Board) AdjacentMineCount(c Cell) (n int) {
	for _, neighbor := range b.Neighbors(c) {
		if b.mines.Has(neighbor) {
			n++
		}
	}
	return
}

func (b *Board) Flag(c Cell) {
	b.found.Add(c)
}

func (b *Board) Unflag(c Cell) {
	b.found.Remove(c)
}

func (b *Board) IsFlagged(c Cell) bool {
	return b.found.Has(c)
}

func (b *Board) Found() CellSet {
	return b.found.Clone()
}

// HasWon reports whether the flagged cells are exactly the mines.
func (b *Board) HasWon() bool {
	return b.found.Equal(b.mines)
}

// Mines returns the mine locations in row-major order.
func (b *Board) Mines() []Cell {
	return b.mines.Sorted()
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	border := strings.Repeat("--", b.Width) + "-\n"
	for row := range b.Height {
		sb.WriteString(border)
		for col := range b.Width {
			if b.mines.Has(Cell{row, col}) {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
