package cell

import (
	"errors"
	"strconv"
)

// Error message texts are part of the wire contract and are reproduced
// verbatim, including capitalization.

// ErrEmptyIndexTuple is returned by FromIndices when called with an
// empty slice.
var ErrEmptyIndexTuple = errors.New("Cannot convert empty tuple to CELL coordinate")

// InvalidCoordinateError reports a string that does not match the CELL
// grammar, or that contains a line break.
type InvalidCoordinateError struct {
	// Input is the offending string, verbatim.
	Input string
}

func (e *InvalidCoordinateError) Error() string {
	return "Invalid CELL coordinate: " + e.Input
}

// InvalidIndexError reports a negative element passed to FromIndices.
// Indices are zero-based and never negative.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return "Expected non-negative index, got: " + strconv.Itoa(e.Index)
}

// OutOfRangeError reports a component or index whose value cannot be
// represented in a machine integer. The grammar places no upper bound
// on component values, but this implementation is bounded by int.
type OutOfRangeError struct {
	// Value is the offending component string or the decimal rendering
	// of the offending index.
	Value string
}

func (e *OutOfRangeError) Error() string {
	return "CELL coordinate component out of range: " + e.Value
}

// GeneratedInvalidError reports that FromIndices produced a string
// which fails validation. It guards against encoder regressions and is
// unreachable under a correct implementation.
type GeneratedInvalidError struct {
	Result string
}

func (e *GeneratedInvalidError) Error() string {
	return "Generated invalid CELL coordinate: " + e.Result
}
