package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"sync"
)

// Source produces uniformly distributed 64-bit words.
// In-memory sources never return an error; hardware sources may.
type Source interface {
	Uint64() (uint64, error)
}

// ReaderSource reads big-endian words from an io.Reader.
// It is as safe for concurrent use as the reader it wraps (see NewLockedReader).
type ReaderSource struct {
	r      io.Reader
	health *Health
}

// NewReaderSource returns a Source over r. A read failure marks h unhealthy; h may be nil.
func NewReaderSource(r io.Reader, h *Health) *ReaderSource {
	return &ReaderSource{r: r, health: h}
}

func (s *ReaderSource) Uint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		if s.health != nil {
			s.health.Set(false, "error fetching random bytes: "+err.Error())
		}
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// NewCryptoSource returns a Source backed by the operating system CSPRNG.
func NewCryptoSource() *ReaderSource {
	return NewReaderSource(crand.Reader, nil)
}

// SeededSource is a deterministic PCG stream. Safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	pcg *rand.PCG
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{pcg: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func (s *SeededSource) Uint64() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pcg.Uint64(), nil
}

type sourceReader struct {
	src Source
}

// NewReader exposes src as an io.Reader, one word per 8 bytes.
func NewReader(src Source) io.Reader {
	return sourceReader{src: src}
}

func (r sourceReader) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		x, err := r.src.Uint64()
		if err != nil {
			return n, err
		}
		binary.BigEndian.PutUint64(buf[:], x)
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
