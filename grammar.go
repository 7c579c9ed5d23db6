package cell

import "strings"

// Pattern is the CELL grammar as a regular expression, anchored over
// the full string. It is exported for consumers that want to validate
// coordinates with a regex engine; IsValid itself uses a hand-written
// scanner, which cannot backtrack pathologically on adversarial input.
//
// Consumers using a dialect whose ^/$ anchors also match at line
// boundaries must additionally reject inputs containing line breaks,
// as IsValid does.
const Pattern = `^[a-z]+(?:[1-9][0-9]*[A-Z]+[a-z]+)*(?:[1-9][0-9]*[A-Z]*)?$`

// IsValid reports whether s is a well-formed CELL coordinate.
//
// The coordinate is scanned as a sequence of class runs cycling
// lowercase, numeric, uppercase. The scan may stop after any completed
// run, but every run must be non-empty, a run consists only of its own
// class's characters, and the first run must be lowercase. A numeric
// run is a positive decimal numeral, so it may not start with '0'.
// The empty string is not a valid coordinate.
//
// # Edge Cases
//
//   - Inputs containing '\r' or '\n' anywhere are rejected outright,
//     even where a line-oriented regex dialect applying Pattern would
//     accept them.
//   - Bytes outside the three ASCII classes (including all non-ASCII
//     UTF-8 sequences) fail the scan, so no rune decoding is needed.
//
// IsValid never panics and allocates nothing.
func IsValid(s string) bool {
	if s == "" || strings.ContainsAny(s, "\r\n") {
		return false
	}
	i := 0
	for dim := 1; i < len(s); dim++ {
		next := classRunEnd(s, i, ClassFor(dim))
		if next == i {
			return false
		}
		i = next
	}
	return true
}

// classRunEnd returns the end of the maximal run of class c characters
// starting at s[i]. A numeric run must begin with '1'-'9'; if it does
// not, the run is empty and i is returned unchanged.
func classRunEnd(s string, i int, c Class) int {
	j := i
	switch c {
	case ClassLowercase:
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
	case ClassNumeric:
		if j < len(s) && s[j] >= '1' && s[j] <= '9' {
			j++
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
		}
	case ClassUppercase:
		for j < len(s) && s[j] >= 'A' && s[j] <= 'Z' {
			j++
		}
	}
	return j
}
