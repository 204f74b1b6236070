package agent

import (
	"errors"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

// ErrExhausted is returned when every cell has been played or is a
// known mine, so no move is left to make.
var ErrExhausted = errors.New("no moves left: game already fully resolved or lost")

type Agent struct {
	*knowledge.Base
	rnd *rand.Rand
}

type Move struct {
	mines.Cell
	Guess bool
}

func New(height, width int, r *rand.Rand) *Agent {
	return &Agent{
		Base: knowledge.New(height, width),
		rnd:  r,
	}
}

// SafeMove returns the first cell in row-major order that is known to be
// safe and has not been played yet, and records it as played.
func (a *Agent) SafeMove() (mines.Cell, bool) {
	for row := range a.Height() {
		for col := range a.Width() {
			c := mines.Cell{Row: row, Col: col}
			if a.IsSafe(c) && !a.Played(c) {
				a.RecordMove(c)
				return c, true
			}
		}
	}
	return mines.Cell{}, false
}

// RandomMove picks uniformly among the cells that have not been played
// and are not known mines, and records it as played.
func (a *Agent) RandomMove() (mines.Cell, error) {
	var candidates []mines.Cell
	for row := range a.Height() {
		for col := range a.Width() {
			c := mines.Cell{Row: row, Col: col}
			if !a.Played(c) && !a.IsMine(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return mines.Cell{}, ErrExhausted
	}
	c := candidates[a.rnd.IntN(len(candidates))]
	a.RecordMove(c)
	return c, nil
}

// NextMove prefers a safe move and falls back to a random one.
func (a *Agent) NextMove() (Move, error) {
	if c, ok := a.SafeMove(); ok {
		return Move{Cell: c}, nil
	}
	c, err := a.RandomMove()
	if err != nil {
		return Move{}, err
	}
	return Move{Cell: c, Guess: true}, nil
}
