package rng

import (
	"io"
	"sync"
)

// LockedReader serializes Read calls on a shared entropy stream, so concurrent
// requests and the health monitor never interleave bytes of one word.
type LockedReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (lr *LockedReader) Read(p []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return io.ReadFull(lr.r, p)
}

// NewLockedReader returns an io.Reader that is safe for concurrent use.
// A *LockedReader is returned as-is.
func NewLockedReader(r io.Reader) io.Reader {
	if r == nil {
		return nil
	}
	if _, ok := r.(*LockedReader); ok {
		return r
	}
	return &LockedReader{r: r}
}
