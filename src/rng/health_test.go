package rng_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lost-woods/mechanica/src/rng"
)

func TestHealthCheck_AllSameFails(t *testing.T) {
	h := rng.NewHealth()
	require.ErrorContains(t, rng.HealthCheck(constantSource(0), h), "stuck")
}

func TestHealthCheck_FewDistinctBytesFails(t *testing.T) {
	// Words differ but only ever contain bytes 0 and 1.
	src := &scriptedSource{}
	for i := 0; i < 32; i++ {
		src.words = append(src.words, uint64(i&1))
	}
	require.ErrorContains(t, rng.HealthCheck(src, nil), "too few distinct")
}

func TestHealthCheck_ReadErrorFails(t *testing.T) {
	require.ErrorIs(t, rng.HealthCheck(failingSource{err: errExhausted}, nil), errExhausted)
}

func TestHealthCheck_OKOnVariedBytes(t *testing.T) {
	src := rng.NewReaderSource(&byteCycleReader{}, nil)
	require.NoError(t, rng.HealthCheck(src, rng.NewHealth()))
}

func TestCheck_RecordsOutcome(t *testing.T) {
	h := rng.NewHealth()
	require.NoError(t, rng.Check(rng.NewSeededSource(1), h))
	ok, msg, at := h.Snapshot()
	require.True(t, ok)
	require.Empty(t, msg)
	require.False(t, at.IsZero())

	require.Error(t, rng.Check(constantSource(7), h))
	ok, msg, _ = h.Snapshot()
	require.False(t, ok)
	require.Contains(t, msg, "stuck")
}

func runMonitor(t *testing.T, src rng.Source, h *rng.Health, clock clockwork.Clock) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		rng.PeriodicHealthCheck(ctx, src, h, time.Second,
			rng.WithClock(clock), rng.WithLogger(zap.NewNop().Sugar()))
	}()

	return func() {
		cancel()
		<-done
	}
}

func TestPeriodicHealthCheck_RecoversOnFreshOutput(t *testing.T) {
	h := rng.NewHealth()
	clock := clockwork.NewFakeClock()
	stop := runMonitor(t, rng.NewSeededSource(9), h, clock)
	defer stop()

	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		ok, _, _ := h.Snapshot()
		return ok
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPeriodicHealthCheck_FlagsStuckSource(t *testing.T) {
	h := rng.NewHealth()
	h.Set(true, "")
	clock := clockwork.NewFakeClock()
	stop := runMonitor(t, constantSource(0xdeadbeef), h, clock)
	defer stop()

	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		ok, msg, _ := h.Snapshot()
		return !ok && msg != ""
	}, 5*time.Second, 10*time.Millisecond)

	_, msg, _ := h.Snapshot()
	require.Contains(t, msg, "stuck")
}

func TestPeriodicHealthCheck_FlagsReadErrors(t *testing.T) {
	h := rng.NewHealth()
	h.Set(true, "")
	clock := clockwork.NewFakeClock()
	stop := runMonitor(t, failingSource{err: errExhausted}, h, clock)
	defer stop()

	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		ok, msg, _ := h.Snapshot()
		return !ok && msg != ""
	}, 5*time.Second, 10*time.Millisecond)

	_, msg, _ := h.Snapshot()
	require.Contains(t, msg, "read failed")
}

func TestPeriodicHealthCheck_StopsOnCancel(t *testing.T) {
	stop := runMonitor(t, rng.NewSeededSource(1), rng.NewHealth(), clockwork.NewFakeClock())
	stop()
}

func TestHealth_StuckOnThirdIdenticalWord(t *testing.T) {
	h := rng.NewHealth()
	src := constantSource(0xdeadbeef)

	h.Observe(src)
	ok, _, _ := h.Snapshot()
	require.True(t, ok, "first word")

	h.Observe(src)
	ok, _, _ = h.Snapshot()
	require.True(t, ok, "second identical word")

	h.Observe(src)
	ok, msg, _ := h.Snapshot()
	require.False(t, ok, "third identical word")
	require.Contains(t, msg, "stuck")
}

func TestHealth_FreshWordResetsRepeats(t *testing.T) {
	h := rng.NewHealth()
	src := &scriptedSource{words: []uint64{5, 5, 6, 6, 7}}

	for range src.words {
		h.Observe(src)
		ok, _, _ := h.Snapshot()
		require.True(t, ok)
	}
}
