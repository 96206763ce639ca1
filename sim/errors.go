package sim

import "errors"

// Validation errors returned by Simulate. The policies themselves are total
// functions over valid input; everything here is detected at dispatch.
var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrHeadOutOfRange   = errors.New("initial head position out of range")
	ErrInvalidDirection = errors.New("invalid direction")
)
