package cell

// Parse splits a coordinate into its ordered per-dimension components.
//
// A component is the maximal run of characters belonging to its
// dimension's class, extracted left to right: "h8Hh8" parses to
// ["h", "8", "H", "h", "8"]. A plain run of lowercase letters is a
// one-component coordinate.
//
// If s is not a valid coordinate, Parse returns a
// *InvalidCoordinateError carrying s verbatim. The greedy extraction
// itself never fails: validation already guarantees every run is
// well-formed, so Parse does not re-check per run.
func Parse(s string) ([]string, error) {
	if !IsValid(s) {
		return nil, &InvalidCoordinateError{Input: s}
	}
	var components []string
	i := 0
	for dim := 1; i < len(s); dim++ {
		next := classRunEnd(s, i, ClassFor(dim))
		components = append(components, s[i:next])
		i = next
	}
	return components, nil
}

// MustParse is like Parse but panics on invalid input, for callers
// that have already validated the coordinate out-of-band.
func MustParse(s string) []string {
	components, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return components
}

// Dimensions returns the number of dimensions of the coordinate, or 0
// if s is not a valid coordinate. It never returns an error: a string
// that is not a coordinate has no dimensions.
func Dimensions(s string) int {
	components, err := Parse(s)
	if err != nil {
		return 0
	}
	return len(components)
}
