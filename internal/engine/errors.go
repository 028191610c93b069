package engine

import (
	"errors"
	"fmt"
)

var errEmptyTitle = errors.New("title is required")

// InsufficientCoinsError is returned when an unlock or purchase costs more
// than the profile currently holds.
type InsufficientCoinsError struct {
	Needed int
	Have   int
}

func (e InsufficientCoinsError) Error() string {
	return fmt.Sprintf("needs %d seeds (have %d)", e.Needed, e.Have)
}

// SequenceError is returned when a story fragment is unlocked out of order.
type SequenceError struct {
	FragmentID string
	MissingID  string
}

func (e SequenceError) Error() string {
	return fmt.Sprintf("fragment %s requires %s to be unlocked first", e.FragmentID, e.MissingID)
}
