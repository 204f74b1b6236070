package knowledge

import (
	"slices"

	"github.com/gammazero/deque"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

/*
The store keeps every sentence ever added in insertion order. Live
sentences are indexed by their canonical key so that an equal sentence
is never stored twice, and by cell so that a global mark only visits
the sentences it can change. Sentences touched since they were last
examined sit on the to-do list.
*/
type store struct {
	sentences []*Sentence
	index     map[string]*Sentence
	byCell    map[mines.Cell][]*Sentence
	todo      deque.Deque[*Sentence]
}

func newStore() *store {
	return &store{
		index:  make(map[string]*Sentence),
		byCell: make(map[mines.Cell][]*Sentence),
	}
}

func (ss *store) len() int {
	return len(ss.sentences)
}

func (ss *store) addTodo(s *Sentence) {
	if s.todo {
		return /* already on it */
	}
	s.todo = true
	ss.todo.PushBack(s)
}

/*
Add a sentence unless an equal one is already live. Returns the stored
sentence and whether it was newly added; a new sentence goes on the
to-do list.
*/
func (ss *store) add(s *Sentence) (*Sentence, bool) {
	key := s.canonicalKey()
	if existing, ok := ss.index[key]; ok {
		return existing, false
	}

	s.id = len(ss.sentences)
	s.key = key
	ss.sentences = append(ss.sentences, s)
	ss.index[key] = s
	for c := range s.cells {
		ss.byCell[c] = append(ss.byCell[c], s)
	}

	ss.addTodo(s)
	return s, true
}

/*
Re-index a sentence whose cells or count changed and put it back on the
to-do list. If the change made it equal to another live sentence it is
superseded and takes no further part in inference.
*/
func (ss *store) touch(s *Sentence) {
	if ss.index[s.key] == s {
		delete(ss.index, s.key)
	}
	s.key = ""
	if s.superseded || s.Resolved() {
		return
	}

	key := s.canonicalKey()
	if other, ok := ss.index[key]; ok && other != s {
		s.superseded = true
		return
	}
	s.key = key
	ss.index[key] = s
	ss.addTodo(s)
}

/*
Get an element from the head of the to-do list.
*/
func (ss *store) next() *Sentence {
	if ss.todo.Len() == 0 {
		return nil
	}
	s := ss.todo.PopFront()
	s.todo = false
	return s
}

func (ss *store) live(s *Sentence) bool {
	return !s.superseded && !s.Resolved()
}

/*
Return every sentence, live or not, that still holds c as unresolved.
*/
func (ss *store) containing(c mines.Cell) []*Sentence {
	var ret []*Sentence
	for _, s := range ss.byCell[c] {
		if s.cells.Has(c) {
			ret = append(ret, s)
		}
	}
	return ret
}

/*
Return the live sentences other than s sharing at least one unresolved
cell with it, in insertion order.
*/
func (ss *store) overlap(s *Sentence) []*Sentence {
	seen := make(map[int]bool)
	var ret []*Sentence
	for c := range s.cells {
		for _, t := range ss.byCell[c] {
			if t == s || seen[t.id] || !ss.live(t) || !t.cells.Has(c) {
				continue
			}
			seen[t.id] = true
			ret = append(ret, t)
		}
	}
	slices.SortFunc(ret, func(a, b *Sentence) int { return a.id - b.id })
	return ret
}
