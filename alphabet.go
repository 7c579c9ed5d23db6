package cell

import (
	"math"
	"strconv"
	"strings"
)

const alphabetSize = 26

// maxAlphaLen is the longest letter component whose decoded value fits
// in an int64: sum(26^k, k=1..13) - 1 = 2580398988131886037. A
// fourteen-letter component would exceed math.MaxInt64.
const (
	maxAlphaLen   = 13
	maxAlphaIndex = 2580398988131886037
)

// decodeAlpha decodes a lowercase letter component using the extended
// alphabet: a bijective base-26 numbering in which length is part of
// the value. "a".."z" decode to 0..25, "aa".."zz" to 26..701, "aaa" to
// 702. Length-L strings occupy the contiguous block starting at
// sum(26^k, k=1..L-1); within the block the letters are ordinary
// base-26 digits with 'a' as zero, most significant first.
//
// The caller guarantees s is non-empty and contains only 'a'-'z'.
func decodeAlpha(s string) (int, error) {
	if len(s) > maxAlphaLen {
		return 0, &OutOfRangeError{Value: s}
	}
	base := 0
	width := alphabetSize
	for k := 1; k < len(s); k++ {
		base += width
		width *= alphabetSize
	}
	val := 0
	for i := 0; i < len(s); i++ {
		val = val*alphabetSize + int(s[i]-'a')
	}
	return base + val, nil
}

// encodeAlpha is the inverse of decodeAlpha: it renders idx as the
// unique extended-alphabet string that decodes back to idx. The length
// is the minimal L with idx < sum(26^k, k=1..L); the remainder within
// that block is rendered as exactly L base-26 digits, zero-padded with
// 'a'. The fixed-width rendering is what makes the mapping bijective;
// unpadded base-26 alone would collide across lengths.
//
// The caller guarantees 0 <= idx <= maxAlphaIndex.
func encodeAlpha(idx int) string {
	base := 0
	width := alphabetSize
	n := 1
	for idx-base >= width {
		base += width
		width *= alphabetSize
		n++
	}
	rem := idx - base
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = 'a' + byte(rem%alphabetSize)
		rem /= alphabetSize
	}
	return string(buf)
}

// decodeComponent maps a class-correct component to its zero-based
// index: numerals are parsed as 1-based decimal integers, lowercase
// components decode through the extended alphabet, and uppercase
// components fold to lowercase first.
func decodeComponent(c string, class Class) (int, error) {
	switch class {
	case ClassNumeric:
		n, err := strconv.Atoi(c)
		if err != nil {
			// Grammar-valid numeral too large for int.
			return 0, &OutOfRangeError{Value: c}
		}
		return n - 1, nil
	case ClassUppercase:
		return decodeAlpha(strings.ToLower(c))
	default:
		return decodeAlpha(c)
	}
}

// encodeComponent maps a zero-based index to the component for the
// given class. The caller guarantees idx is non-negative.
func encodeComponent(idx int, class Class) (string, error) {
	switch class {
	case ClassNumeric:
		if idx == math.MaxInt {
			return "", &OutOfRangeError{Value: strconv.Itoa(idx)}
		}
		return strconv.Itoa(idx + 1), nil
	case ClassUppercase:
		if idx > maxAlphaIndex {
			return "", &OutOfRangeError{Value: strconv.Itoa(idx)}
		}
		return strings.ToUpper(encodeAlpha(idx)), nil
	default:
		if idx > maxAlphaIndex {
			return "", &OutOfRangeError{Value: strconv.Itoa(idx)}
		}
		return encodeAlpha(idx), nil
	}
}
