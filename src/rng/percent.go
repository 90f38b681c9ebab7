package rng

import (
	"errors"
	"strconv"
	"strings"
)

const maxPercentDecimals = 7

var (
	ErrPercentEmpty     = errors.New("percent is empty")
	ErrPercentNegative  = errors.New("percent must not be negative")
	ErrPercentFormat    = errors.New("invalid percent format")
	ErrPercentPrecision = errors.New("too many decimal places; max is 7")
	ErrPercentTooLarge  = errors.New("percent must not exceed 100")
)

// ParsePercentExact parses a percentage into an exact probability num/den.
//
// Accepts "25", "25%", "25.432", "25.432%", surrounding spaces and a leading '+'.
// Exact up to 7 decimal places, so den <= 1,000,000,000.
// 0% reduces to 0/1 and 100% to 1/1.
func ParsePercentExact(percentStr string) (num int, den int, err error) {
	s := strings.TrimSpace(percentStr)
	if v, ok := strings.CutSuffix(s, "%"); ok {
		s = strings.TrimSpace(v)
	}
	s = strings.TrimPrefix(s, "+")

	switch {
	case s == "":
		return 0, 0, ErrPercentEmpty
	case strings.HasPrefix(s, "-"):
		return 0, 0, ErrPercentNegative
	}

	whole, frac, _ := strings.Cut(s, ".")
	if !isDigits(whole) || !isDigits(frac) || (whole == "" && frac == "") {
		return 0, 0, ErrPercentFormat
	}

	frac = strings.TrimRight(frac, "0")
	if len(frac) > maxPercentDecimals {
		return 0, 0, ErrPercentPrecision
	}

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return 0, 1, nil
	}
	if len(digits) > 18 {
		return 0, 0, ErrPercentTooLarge
	}

	target, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0, ErrPercentFormat
	}

	scale := int64(100)
	for range len(frac) {
		scale *= 10
	}

	switch {
	case target > scale:
		return 0, 0, ErrPercentTooLarge
	case target == scale:
		return 1, 1, nil
	}
	return int(target), int(scale), nil
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// Chance rolls an integer in [1, den] and passes when roll <= num.
// den must be positive.
func Chance(src Source, num, den int) (roll int, pass bool, err error) {
	if den < 1 {
		return 0, false, ErrDenominator
	}
	off, err := Int(src, 0, den)
	if err != nil {
		return 0, false, err
	}
	roll = off + 1
	return roll, roll <= num, nil
}
