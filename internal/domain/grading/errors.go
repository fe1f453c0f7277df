package grading

import "errors"

// Sentinel kinds for grading errors.
var (
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrInvalidBands       = errors.New("invalid band table")
)
