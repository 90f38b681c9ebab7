package api

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/lost-woods/mechanica/src/rng"
)

var (
	errInvalidMin    = errors.New("invalid min value")
	errInvalidMax    = errors.New("invalid max value")
	errInvertedRange = errors.New("the minimum value should be smaller than or equal to the maximum value")
	errUnknownType   = errors.New("unknown integer type")
)

var badRequestMessages = map[error]string{
	errInvalidMin:    "Invalid min value.",
	errInvalidMax:    "Invalid max value.",
	errInvertedRange: "The minimum value should be smaller than or equal to the maximum value.",
	errUnknownType:   "Unknown integer type.",
}

// drawFunc parses min and max for one integer width and draws from [min, max).
type drawFunc func(src rng.Source, minStr, maxStr string) (min, max, n any, err error)

var drawFuncs = map[string]drawFunc{
	"int8":   signedDraw(rng.Int8, 8),
	"int16":  signedDraw(rng.Int16, 16),
	"int32":  signedDraw(rng.Int32, 32),
	"int64":  signedDraw(rng.Int64, 64),
	"int":    signedDraw(rng.Int, strconv.IntSize),
	"uint8":  unsignedDraw(rng.Uint8, 8),
	"uint16": unsignedDraw(rng.Uint16, 16),
	"uint32": unsignedDraw(rng.Uint32, 32),
	"uint64": unsignedDraw(rng.Uint64, 64),
	"uint":   unsignedDraw(rng.Uint, strconv.IntSize),
}

func lookupDraw(typ string) (drawFunc, error) {
	f, ok := drawFuncs[typ]
	if !ok {
		return nil, errUnknownType
	}
	return f, nil
}

func signedDraw[T constraints.Signed](draw func(rng.Source, T, T) (T, error), bits int) drawFunc {
	return func(src rng.Source, minStr, maxStr string) (any, any, any, error) {
		lo, err := strconv.ParseInt(minStr, 10, bits)
		if err != nil {
			return nil, nil, nil, errInvalidMin
		}
		hi, err := strconv.ParseInt(maxStr, 10, bits)
		if err != nil {
			return nil, nil, nil, errInvalidMax
		}
		if lo > hi {
			return nil, nil, nil, errInvertedRange
		}

		n, err := draw(src, T(lo), T(hi))
		if err != nil {
			return nil, nil, nil, err
		}
		return lo, hi, int64(n), nil
	}
}

func unsignedDraw[T constraints.Unsigned](draw func(rng.Source, T, T) (T, error), bits int) drawFunc {
	return func(src rng.Source, minStr, maxStr string) (any, any, any, error) {
		lo, err := strconv.ParseUint(minStr, 10, bits)
		if err != nil {
			return nil, nil, nil, errInvalidMin
		}
		hi, err := strconv.ParseUint(maxStr, 10, bits)
		if err != nil {
			return nil, nil, nil, errInvalidMax
		}
		if lo > hi {
			return nil, nil, nil, errInvertedRange
		}

		n, err := draw(src, T(lo), T(hi))
		if err != nil {
			return nil, nil, nil, err
		}
		return lo, hi, uint64(n), nil
	}
}
