package rng_test

import (
	"errors"
	"sync/atomic"
)

// highCounterSource emits words whose high 32 bits count 0,1,2,...
// The 32-bit sampler sees a perfect counter.
type highCounterSource struct {
	next uint64
}

func (s *highCounterSource) Uint64() (uint64, error) {
	x := s.next << 32
	s.next++
	return x, nil
}

// counterSource emits 0,1,2,... as full 64-bit words.
type counterSource struct {
	next uint64
}

func (s *counterSource) Uint64() (uint64, error) {
	x := s.next
	s.next++
	return x, nil
}

// scriptedSource replays words, then fails.
type scriptedSource struct {
	words []uint64
	i     int
}

func (s *scriptedSource) Uint64() (uint64, error) {
	if s.i >= len(s.words) {
		return 0, errExhausted
	}
	w := s.words[s.i]
	s.i++
	return w, nil
}

var errExhausted = errors.New("script exhausted")

// countingSource counts calls to an inner source.
type countingSource struct {
	calls atomic.Int64
	inner interface{ Uint64() (uint64, error) }
}

func (s *countingSource) Uint64() (uint64, error) {
	s.calls.Add(1)
	return s.inner.Uint64()
}

type failingSource struct{ err error }

func (s failingSource) Uint64() (uint64, error) { return 0, s.err }

type constantSource uint64

func (s constantSource) Uint64() (uint64, error) { return uint64(s), nil }
