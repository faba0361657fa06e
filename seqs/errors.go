package seqs

import "errors"

var (
	// ErrInvalidArgument reports a non-positive window length, a negative cut point or an
	// index that does not fit in an int.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotInteger reports an index argument that is not an integer.
	ErrNotInteger = errors.New("not an integer")
)
