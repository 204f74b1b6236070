package knowledge

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

// Base is the inference engine of the agent. It tracks cells known to
// be safe or mined, the moves made so far and the sentences learned from
// clues, and derives new facts until nothing more follows.
type Base struct {
	params mines.GameParams

	knownMines mines.CellSet
	knownSafes mines.CellSet
	movesMade  mines.CellSet

	store *store

	// number of new facts and sentences produced so far
	changes int
}

func New(height, width int) *Base {
	return &Base{
		params:     mines.GameParams{Height: height, Width: width},
		knownMines: make(mines.CellSet),
		knownSafes: make(mines.CellSet),
		movesMade:  make(mines.CellSet),
		store:      newStore(),
	}
}

func (kb *Base) Height() int { return kb.params.Height }

func (kb *Base) Width() int { return kb.params.Width }

func (kb *Base) InBounds(c mines.Cell) bool {
	return kb.params.InBounds(c)
}

// Neighbors returns the up to 8 cells around c.
func (kb *Base) Neighbors(c mines.Cell) mines.CellSet {
	return mines.NewCellSet(kb.params.Neighbors(c)...)
}

func (kb *Base) KnownMines() mines.CellSet { return kb.knownMines.Clone() }

func (kb *Base) KnownSafes() mines.CellSet { return kb.knownSafes.Clone() }

func (kb *Base) MovesMade() mines.CellSet { return kb.movesMade.Clone() }

func (kb *Base) IsMine(c mines.Cell) bool { return kb.knownMines.Has(c) }

func (kb *Base) IsSafe(c mines.Cell) bool { return kb.knownSafes.Has(c) }

func (kb *Base) Played(c mines.Cell) bool { return kb.movesMade.Has(c) }

func (kb *Base) RecordMove(c mines.Cell) {
	kb.movesMade.Add(c)
}

// Sentences returns copies of the live sentences in insertion order.
func (kb *Base) Sentences() []*Sentence {
	var ret []*Sentence
	for _, s := range kb.store.sentences {
		if kb.store.live(s) {
			ret = append(ret, s.clone())
		}
	}
	return ret
}

// Len returns the number of sentences ever stored.
func (kb *Base) Len() int {
	return kb.store.len()
}

// AddKnowledge records that the safe cell c was revealed with count
// mines around it and draws every conclusion that follows.
func (kb *Base) AddKnowledge(c mines.Cell, count int) {
	Log.WithFields(logrus.Fields{
		"cell": c.String(), "count": count,
	}).Debug("adding knowledge")

	kb.movesMade.Add(c)
	kb.markSafe(c)

	s := NewSentence(kb.Neighbors(c).Sorted(), count)
	kb.insert(s)
	kb.closure()
}

// AddSentence adds an arbitrary clue and draws every conclusion that
// follows.
func (kb *Base) AddSentence(s *Sentence) {
	kb.insert(s.clone())
	kb.closure()
}

// MarkMine records c as a mine and propagates it through every sentence.
func (kb *Base) MarkMine(c mines.Cell) {
	kb.markMine(c)
	kb.closure()
}

// MarkSafe records c as safe and propagates it through every sentence.
func (kb *Base) MarkSafe(c mines.Cell) {
	kb.markSafe(c)
	kb.closure()
}

// Infer re-examines every live sentence and returns how many new facts
// and sentences were produced. Zero means the base is at a fixed point.
func (kb *Base) Infer() int {
	before := kb.changes
	for _, s := range kb.store.sentences {
		if kb.store.live(s) {
			kb.store.addTodo(s)
		}
	}
	kb.closure()
	return kb.changes - before
}

/*
Apply what is already known to a fresh sentence and store it. Known
mines leave the cell set and lower the count.
*/
func (kb *Base) insert(s *Sentence) {
	for _, c := range s.cells.Sorted() {
		if kb.knownMines.Has(c) {
			s.MarkMine(c)
		} else if kb.knownSafes.Has(c) {
			s.MarkSafe(c)
		}
	}
	if s.Resolved() {
		return
	}
	if stored, added := kb.store.add(s); added {
		kb.changes++
		Log.WithFields(logrus.Fields{
			"sentence": stored.String(), "id": stored.id,
		}).Debug("new sentence")
	}
}

func (kb *Base) markMine(c mines.Cell) {
	if kb.knownMines.Has(c) {
		return
	}
	if kb.knownSafes.Has(c) {
		Log.WithFields(logrus.Fields{
			"cell": c.String(),
		}).Warn("cell already known safe, ignoring mine")
		return
	}
	kb.knownMines.Add(c)
	kb.changes++
	Log.WithFields(logrus.Fields{"cell": c.String()}).Debug("known mine")

	for _, s := range kb.store.containing(c) {
		if s.MarkMine(c) {
			kb.store.touch(s)
		}
	}
}

func (kb *Base) markSafe(c mines.Cell) {
	if kb.knownSafes.Has(c) {
		return
	}
	if kb.knownMines.Has(c) {
		Log.WithFields(logrus.Fields{
			"cell": c.String(),
		}).Warn("cell already known mine, ignoring safe")
		return
	}
	kb.knownSafes.Add(c)
	kb.changes++
	Log.WithFields(logrus.Fields{"cell": c.String()}).Debug("known safe")

	for _, s := range kb.store.containing(c) {
		if s.MarkSafe(c) {
			kb.store.touch(s)
		}
	}
}

/*
Run the to-do list dry. Every sentence changed or added since it was
last examined is on the list, so an empty list is a fixed point.
*/
func (kb *Base) closure() {
	for s := kb.store.next(); s != nil; s = kb.store.next() {
		kb.process(s)
	}
}

func (kb *Base) process(s *Sentence) {
	if !kb.store.live(s) {
		return
	}

	n := s.cells.Len()
	if s.count > n {
		s.clamp()
		kb.store.touch(s)
		return
	}

	switch s.count {
	case 0:
		for _, c := range s.cells.Sorted() {
			kb.markSafe(c)
		}
		return
	case n:
		for _, c := range s.cells.Sorted() {
			kb.markMine(c)
		}
		return
	}

	for _, t := range kb.store.overlap(s) {
		if !kb.store.live(t) {
			continue
		}
		kb.combine(s, t)
		if s.todo || !kb.store.live(s) {
			return /* s changed and will be looked at again */
		}
	}
}

/*
Derive what follows from two sentences sharing cells. If one is a
strict subset of the other, the remaining cells hold the difference of
the counts. Otherwise the mines in the intersection are bounded by both
counts, and when the bounds meet the intersection gets its own sentence.
*/
func (kb *Base) combine(a, b *Sentence) {
	switch {
	case b.cells.IsStrictSubset(a.cells):
		kb.derive(a.cells.Difference(b.cells), a.count-b.count)
	case a.cells.IsStrictSubset(b.cells):
		kb.derive(b.cells.Difference(a.cells), b.count-a.count)
	default:
		inter := a.cells.Intersect(b.cells)
		if inter.Len() == 0 {
			return
		}
		lo := max(0,
			a.count-(a.cells.Len()-inter.Len()),
			b.count-(b.cells.Len()-inter.Len()),
		)
		hi := min(a.count, b.count, inter.Len())
		if lo > hi {
			Log.WithFields(logrus.Fields{
				"a": a.String(), "b": b.String(),
			}).Warn("contradicting sentences")
			return
		}
		if lo == hi {
			kb.derive(inter, lo)
		}
	}
}

/*
Route a derived sentence: trivial ones go straight to the known sets,
the rest are stored unless an equal sentence already exists.
*/
func (kb *Base) derive(cells mines.CellSet, count int) {
	if cells.Len() == 0 {
		return
	}
	s := newSentenceFromSet(cells, count)

	switch s.count {
	case 0:
		for _, c := range s.cells.Sorted() {
			kb.markSafe(c)
		}
	case s.cells.Len():
		for _, c := range s.cells.Sorted() {
			kb.markMine(c)
		}
	default:
		kb.insert(s)
	}
}

// Base implements [fmt.Stringer]
func (kb *Base) String() string {
	return fmt.Sprintf(
		"%dx%d: %d moves, %d safe, %d mines, %d sentences",
		kb.params.Height, kb.params.Width,
		kb.movesMade.Len(), kb.knownSafes.Len(), kb.knownMines.Len(),
		kb.store.len(),
	)
}
