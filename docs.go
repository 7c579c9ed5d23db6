// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cell implements CELL (Coordinate Encoding for Layered Locations),
a textual encoding for coordinates on multi-dimensional game boards.

A CELL coordinate is a sequence of per-dimension components whose
character class cycles with period three: lowercase letters, then a
decimal numeral, then uppercase letters, then lowercase again, and so
on. The familiar chess square "e4" is the two-dimensional case; "h8Hh8"
addresses a square on layer H of a five-dimensional board.

# Purpose
  - **Validation**: decide whether a string is a well-formed CELL
    coordinate ([IsValid], [Pattern]).
  - **Segmentation**: split a coordinate into its ordered per-dimension
    components ([Parse], [Dimensions]).
  - **Conversion**: map a coordinate to a tuple of zero-based integer
    indices and back ([ToIndices], [FromIndices]); the two directions
    are exact inverses for all valid inputs.

# Grammar

A valid coordinate matches, anchored over the full string:

	^[a-z]+(?:[1-9][0-9]*[A-Z]+[a-z]+)*(?:[1-9][0-9]*[A-Z]*)?$

and additionally contains no carriage-return or line-feed characters.
The first component is always lowercase; a coordinate may end after any
completed component but may never skip or reorder a class.

# Index mapping

Numeral components are 1-based positive integers, so "4" is index 3.
Letter components use an extended alphabet: a bijective base-26
numbering in which "a".."z" encode 0..25, "aa".."zz" encode 26..701,
"aaa" encodes 702, and so on, with string length part of the value's
identity. Uppercase components fold to lowercase before decoding.

# Thread Safety

All functions are pure and stateless with no package-level mutable
state. They are safe for unrestricted concurrent use.
*/
package cell //import "go.alis.build/cell"
