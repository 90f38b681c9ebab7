package rng

import "errors"

var (
	ErrEmptyCharset = errors.New("charset must not be empty")
	ErrSampleSize   = errors.New("there are more items to pick than items available")
	ErrNegativeSize = errors.New("size must not be negative")
	ErrDenominator  = errors.New("denominator must be positive")
)
