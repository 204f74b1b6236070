package mines

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Cell is a (row, column) board coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

type void struct{}

type CellSet map[Cell]void

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = void{}
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = void{}
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Remove reports whether c was present.
func (s CellSet) Remove(c Cell) bool {
	if _, ok := s[c]; !ok {
		return false
	}
	delete(s, c)
	return true
}

func (s CellSet) Len() int {
	return len(s)
}

func (s CellSet) Clone() CellSet {
	dst := make(CellSet, len(s))
	for c := range s {
		dst[c] = void{}
	}
	return dst
}

func (s CellSet) Equal(x CellSet) bool {
	if len(s) != len(x) {
		return false
	}
	for c := range s {
		if _, ok := x[c]; !ok {
			return false
		}
	}
	return true
}

// Difference returns the cells of s that are not in x.
func (s CellSet) Difference(x CellSet) CellSet {
	result := make(CellSet)
	for c := range s {
		if _, ok := x[c]; !ok {
			result[c] = void{}
		}
	}
	return result
}

func (s CellSet) Intersect(x CellSet) CellSet {
	small, big := s, x
	if len(big) < len(small) {
		small, big = big, small
	}
	result := make(CellSet)
	for c := range small {
		if _, ok := big[c]; ok {
			result[c] = void{}
		}
	}
	return result
}

// IsStrictSubset reports whether every cell of s is in x and x has more
// cells than s.
func (s CellSet) IsStrictSubset(x CellSet) bool {
	if len(s) >= len(x) {
		return false
	}
	for c := range s {
		if _, ok := x[c]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

func (s CellSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.Sorted() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
