package seq

import "errors"

// Sentinel errors for sequence helpers.
var (
	// ErrBadElement is returned by ParseInts when an element is not a base-10 integer.
	ErrBadElement = errors.New("seq: element is not an integer")

	// ErrNegativeLength is returned by Random when asked for a negative length.
	ErrNegativeLength = errors.New("seq: negative length")
)
