package rng

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types Uniform can draw.
type Integer = constraints.Integer

// ErrEntropy is returned when the underlying Source fails to produce a word.
var ErrEntropy = errors.New("error fetching random bytes")

// Uniform returns a uniform integer in [min, max).
// max is exclusive; callers wanting an inclusive bound pass max+1.
// When min == max it returns min without touching src.
//
// Integer-only rejection sampling (no floats, no modulo bias). Ranges that fit in
// 32 bits are served from the high half of a 64-bit word, wider ranges from the
// full word. Panics if min > max.
func Uniform[T Integer](src Source, min, max T) (T, error) {
	if min > max {
		panic(fmt.Sprintf("rng: max (%d) must be greater than or equal to min (%d)", max, min))
	}
	if min == max {
		return min, nil
	}

	// Sign extension makes the wrapped difference exact for signed T.
	n := uint64(max) - uint64(min)

	var (
		off uint64
		err error
	)
	if n <= math.MaxUint32 {
		var x uint32
		x, err = bounded32(src, uint32(n))
		off = uint64(x)
	} else {
		off, err = bounded64(src, n)
	}
	if err != nil {
		var zero T
		return zero, err
	}

	return min + T(off), nil
}

func draw(src Source) (uint64, error) {
	x, err := src.Uint64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return x, nil
}

// bounded32 returns a uniform value in [0, n), n > 0.
func bounded32(src Source, n uint32) (uint32, error) {
	// 2^32 is a multiple of n, every draw is usable.
	if n&(n-1) == 0 {
		x, err := draw(src)
		if err != nil {
			return 0, err
		}
		return uint32(x>>32) & (n - 1), nil
	}

	// limit = floor(2^32 / n) * n
	limit := (uint64(1)<<32)/uint64(n) * uint64(n)

	for {
		x, err := draw(src)
		if err != nil {
			return 0, err
		}

		hi := uint32(x >> 32)
		if uint64(hi) < limit {
			return hi % n, nil
		}
		// reject and retry
	}
}

// bounded64 returns a uniform value in [0, n), n > 0.
func bounded64(src Source, n uint64) (uint64, error) {
	if n&(n-1) == 0 {
		x, err := draw(src)
		if err != nil {
			return 0, err
		}
		return x & (n - 1), nil
	}

	// 2^64 mod n, non-zero here since n is not a power of two.
	rem := (math.MaxUint64%n + 1) % n
	limit := math.MaxUint64 - rem + 1

	for {
		x, err := draw(src)
		if err != nil {
			return 0, err
		}
		if x < limit {
			return x % n, nil
		}
	}
}
