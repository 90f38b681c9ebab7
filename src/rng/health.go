package rng

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	healthSampleWords = 32
	minDistinctBytes  = 8

	// Three identical consecutive 64-bit words from a healthy source is astronomically unlikely.
	maxIdenticalWords = 3
)

type Health struct {
	mu            sync.RWMutex
	ok            bool
	lastErr       string
	lastCheckedAt time.Time
	lastSample    uint64
	repeatCount   int
}

func NewHealth() *Health { return &Health{ok: false} }

func (h *Health) Set(ok bool, errMsg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ok = ok
	h.lastErr = errMsg
	h.lastCheckedAt = time.Now()
}

func (h *Health) Snapshot() (ok bool, errMsg string, t time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ok, h.lastErr, h.lastCheckedAt
}

// HealthCheck performs a lightweight sanity check of src.
// It cannot prove randomness, but detects disconnection, stuck output and
// similar failures.
func HealthCheck(src Source, h *Health) error {
	words := make([]uint64, healthSampleWords)
	for i := range words {
		w, err := src.Uint64()
		if err != nil {
			return fmt.Errorf("RNG read failed: %w", err)
		}
		words[i] = w
	}

	allSame := true
	for _, w := range words[1:] {
		if w != words[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("RNG appears stuck (all sampled words identical)")
	}

	distinct := make(map[byte]struct{}, 256)
	var buf [8]byte
	for _, w := range words {
		binary.BigEndian.PutUint64(buf[:], w)
		for _, b := range buf {
			distinct[b] = struct{}{}
		}
	}
	if len(distinct) < minDistinctBytes {
		return fmt.Errorf("RNG sample has too few distinct byte values (%d); suspicious", len(distinct))
	}

	if h != nil {
		h.mu.Lock()
		h.lastSample = words[len(words)-1]
		h.repeatCount = 0
		h.mu.Unlock()
	}

	return nil
}

type monitorOptions struct {
	clock clockwork.Clock
	log   *zap.SugaredLogger
}

type MonitorOption func(o *monitorOptions)

func WithClock(clock clockwork.Clock) MonitorOption {
	return func(o *monitorOptions) {
		o.clock = clock
	}
}

func WithLogger(log *zap.SugaredLogger) MonitorOption {
	return func(o *monitorOptions) {
		o.log = log
	}
}

// PeriodicHealthCheck draws one word from src on every tick and updates h.
// It blocks until ctx is done.
func PeriodicHealthCheck(ctx context.Context, src Source, h *Health, every time.Duration, opts ...MonitorOption) {
	o := monitorOptions{
		clock: clockwork.NewRealClock(),
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	ticker := o.clock.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			h.observe(src, o.log)
		}
	}
}

func (h *Health) observe(src Source, log *zap.SugaredLogger) {
	w, err := src.Uint64()

	h.mu.Lock()
	defer h.mu.Unlock()

	wasOK := h.ok
	h.lastCheckedAt = time.Now()

	switch {
	case err != nil:
		h.ok = false
		h.lastErr = "RNG read failed: " + err.Error()
	case w == h.lastSample:
		h.repeatCount++
		// repeatCount counts repeats, so N identical words is N-1 repeats.
		if h.repeatCount >= maxIdenticalWords-1 {
			h.ok = false
			h.lastErr = "RNG appears stuck (repeating identical 64-bit outputs)"
		}
	default:
		h.repeatCount = 0
		h.ok = true
		h.lastErr = ""
	}
	if err == nil {
		h.lastSample = w
	}

	if wasOK && !h.ok {
		log.Errorw("entropy source unhealthy", "reason", h.lastErr)
	} else if !wasOK && h.ok {
		log.Infow("entropy source healthy")
	}
}
