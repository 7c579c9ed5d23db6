package cell

import "fmt"

// Class is the character class of a single coordinate dimension.
type Class int

const (
	// ClassLowercase components are runs of 'a'-'z'.
	ClassLowercase Class = iota
	// ClassNumeric components are decimal numerals with no leading zero.
	ClassNumeric
	// ClassUppercase components are runs of 'A'-'Z'.
	ClassUppercase
)

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case ClassLowercase:
		return "lowercase"
	case ClassNumeric:
		return "numeric"
	case ClassUppercase:
		return "uppercase"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ClassFor returns the character class of the given 1-based dimension.
// The class cycles with period three: dimension 1 is lowercase, 2 is
// numeric, 3 is uppercase, 4 is lowercase again, and so on.
//
// ClassFor panics if dim is not positive; dimensions are 1-based by
// definition and a non-positive dimension is a programming error.
func ClassFor(dim int) Class {
	if dim < 1 {
		panic(fmt.Sprintf("cell: dimension must be positive, got %d", dim))
	}
	switch dim % 3 {
	case 1:
		return ClassLowercase
	case 2:
		return ClassNumeric
	default:
		return ClassUppercase
	}
}
