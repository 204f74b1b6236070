package mines

import "errors"

var ErrInvalidParams = errors.New("invalid game params")

type BoardError struct {
	Cell    Cell
	message string
}

// [BoardError] implements [error]
func (e BoardError) Error() string {
	return e.message + " at " + e.Cell.String()
}
