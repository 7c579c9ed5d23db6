package cell

import "strings"

// ToIndices converts a coordinate to its tuple of zero-based indices,
// one per dimension in order: ToIndices("e4") returns [4, 3].
//
// Numerals are 1-based on the wire and 0-based as indices; letter
// components decode through the extended alphabet (see package docs).
//
// Errors: *InvalidCoordinateError if s fails validation, and
// *OutOfRangeError if a grammar-valid component decodes to a value
// outside the int range.
func ToIndices(s string) ([]int, error) {
	components, err := Parse(s)
	if err != nil {
		return nil, err
	}
	indices := make([]int, len(components))
	for i, c := range components {
		idx, err := decodeComponent(c, ClassFor(i+1))
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// MustToIndices is like ToIndices but panics on error.
func MustToIndices(s string) []int {
	indices, err := ToIndices(s)
	if err != nil {
		panic(err)
	}
	return indices
}

// FromIndices converts a tuple of zero-based indices to the canonical
// coordinate string: FromIndices([]int{4, 3}) returns "e4". It is the
// exact inverse of ToIndices for every valid input.
//
// Errors: ErrEmptyIndexTuple if indices is empty, *InvalidIndexError
// if any element is negative, and *OutOfRangeError if a letter
// dimension's index exceeds the largest thirteen-letter component.
// The assembled string is re-validated before being returned; a
// *GeneratedInvalidError means the encoder itself has regressed and is
// unreachable under a correct implementation.
func FromIndices(indices []int) (string, error) {
	if len(indices) == 0 {
		return "", ErrEmptyIndexTuple
	}
	var b strings.Builder
	b.Grow(len(indices) * 2)
	for i, idx := range indices {
		if idx < 0 {
			return "", &InvalidIndexError{Index: idx}
		}
		component, err := encodeComponent(idx, ClassFor(i+1))
		if err != nil {
			return "", err
		}
		b.WriteString(component)
	}
	s := b.String()
	if !IsValid(s) {
		return "", &GeneratedInvalidError{Result: s}
	}
	return s, nil
}

// MustFromIndices is like FromIndices but panics on error.
func MustFromIndices(indices []int) string {
	s, err := FromIndices(indices)
	if err != nil {
		panic(err)
	}
	return s
}
