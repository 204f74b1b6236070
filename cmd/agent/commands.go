package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"a": 3,
	"s": 0,
	"r": 0,
	"m": 2,
	"k": 2,
	"p": 0,
	"q": 0,
}

func parseCell(twoStrings []string) (c mines.Cell, err error) {
	if c.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if c.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func executeCommand(a *agent.Agent, w io.Writer, c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	var cell mines.Cell
	if nargs >= 2 {
		if cell, err = parseCell(parts[1:3]); err != nil {
			return err
		}
		if !a.InBounds(cell) {
			return errors.New("invalid cell coordinates")
		}
	}

	switch parts[0] {
	case "a":
		count, err := strconv.Atoi(parts[3])
		if err != nil {
			return errors.New("count must be an int")
		}
		if count < 0 || count > 8 {
			return errors.New("count must be between 0 and 8")
		}
		a.AddKnowledge(cell, count)
		fmt.Fprintf(w, "%d sentences, %d mines, %d safes known\n",
			len(a.Sentences()), a.KnownMines().Len(), a.KnownSafes().Len())
	case "s":
		if cell, ok := a.SafeMove(); ok {
			fmt.Fprintf(w, "safe move %s\n", cell)
		} else {
			fmt.Fprintln(w, "no safe move")
		}
	case "r":
		cell, err := a.RandomMove()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "random move %s\n", cell)
	case "m":
		a.MarkMine(cell)
	case "k":
		a.MarkSafe(cell)
	case "p":
		printKnowledge(a, w)
	case "q":
		return errQuit
	}
	return nil
}

func printKnowledge(a *agent.Agent, w io.Writer) {
	fmt.Fprintf(w, "moves: %s\n", a.MovesMade())
	fmt.Fprintf(w, "mines: %s\n", a.KnownMines())
	fmt.Fprintf(w, "safes: %s\n", a.KnownSafes())
	for _, s := range a.Sentences() {
		fmt.Fprintln(w, s)
	}
}
