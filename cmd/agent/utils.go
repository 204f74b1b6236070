package main

import (
	"iter"
	"strings"
)

const commandSep = ";"

// scriptCommands yields the commands of a -script argument with their
// position. Empty commands are kept so positions match the input.
func scriptCommands(script string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, c := range strings.Split(script, commandSep) {
			if !yield(i, c) {
				return
			}
		}
	}
}
