package knowledge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

// Sentence is the statement "exactly count of cells are mines". Cells
// proven safe or mined are moved out of cells as they are discovered.
type Sentence struct {
	cells mines.CellSet
	count int
	mines mines.CellSet
	safes mines.CellSet

	id         int
	key        string
	todo       bool
	superseded bool
}

func NewSentence(cells []mines.Cell, count int) *Sentence {
	s := &Sentence{
		cells: mines.NewCellSet(cells...),
		count: count,
		mines: make(mines.CellSet),
		safes: make(mines.CellSet),
		id:    -1,
	}
	s.clamp()
	return s
}

func newSentenceFromSet(cells mines.CellSet, count int) *Sentence {
	s := &Sentence{
		cells: cells,
		count: count,
		mines: make(mines.CellSet),
		safes: make(mines.CellSet),
		id:    -1,
	}
	s.clamp()
	return s
}

// clamp keeps count within [0, |cells|]. An out of range count means
// the knowledge is inconsistent; it is tolerated rather than reported.
func (s *Sentence) clamp() {
	switch n := s.cells.Len(); {
	case s.count < 0:
		Log.WithFields(logrus.Fields{
			"sentence": s.String(),
		}).Warn("negative mine count, clamping to 0")
		s.count = 0
	case s.count > n:
		Log.WithFields(logrus.Fields{
			"sentence": s.String(),
		}).Warn("mine count exceeds cell count, clamping")
		s.count = n
	}
}

func (s *Sentence) Cells() mines.CellSet {
	return s.cells.Clone()
}

func (s *Sentence) Count() int {
	return s.count
}

func (s *Sentence) KnownMines() mines.CellSet {
	return s.mines.Clone()
}

func (s *Sentence) KnownSafes() mines.CellSet {
	return s.safes.Clone()
}

func (s *Sentence) Resolved() bool {
	return s.cells.Len() == 0
}

// MarkMine moves c from the unresolved cells to the known mines and
// decrements the count. It reports false and does nothing if c is not
// unresolved in s.
func (s *Sentence) MarkMine(c mines.Cell) bool {
	if !s.cells.Remove(c) {
		return false
	}
	s.mines.Add(c)
	if s.count > 0 {
		s.count--
	} else {
		Log.WithFields(logrus.Fields{
			"sentence": s.String(), "cell": c.String(),
		}).Warn("mine marked in a sentence with no mines left")
	}
	return true
}

// MarkSafe moves c from the unresolved cells to the known safes. It
// reports false and does nothing if c is not unresolved in s.
func (s *Sentence) MarkSafe(c mines.Cell) bool {
	if !s.cells.Remove(c) {
		return false
	}
	s.safes.Add(c)
	return true
}

func (s *Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

func (s *Sentence) clone() *Sentence {
	return &Sentence{
		cells: s.cells.Clone(),
		count: s.count,
		mines: s.mines.Clone(),
		safes: s.safes.Clone(),
		id:    s.id,
	}
}

// canonicalKey identifies a sentence by its unresolved cells and count.
func (s *Sentence) canonicalKey() string {
	var b strings.Builder
	for _, c := range s.cells.Sorted() {
		b.WriteString(strconv.Itoa(c.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(';')
	}
	b.WriteByte('=')
	b.WriteString(strconv.Itoa(s.count))
	return b.String()
}

// Sentence implements [fmt.Stringer]
func (s *Sentence) String() string {
	return fmt.Sprintf("%s = %d", s.cells, s.count)
}
