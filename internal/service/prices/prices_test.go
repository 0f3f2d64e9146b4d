package prices

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/glider_backend/pkg/coingecko"
)

type scriptedFetcher struct {
	mu    sync.Mutex
	calls int
	steps []func() ([]coingecko.TokenPrice, error)
}

func (f *scriptedFetcher) Markets(context.Context) ([]coingecko.TokenPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	}
	return f.steps[i]()
}

func (f *scriptedFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func ok(symbols ...string) func() ([]coingecko.TokenPrice, error) {
	return func() ([]coingecko.TokenPrice, error) {
		out := make([]coingecko.TokenPrice, 0, len(symbols))
		for _, s := range symbols {
			out = append(out, coingecko.TokenPrice{Symbol: s, CurrentPrice: 1})
		}
		return out, nil
	}
}

func fail() ([]coingecko.TokenPrice, error) {
	return nil, coingecko.ErrRequest
}

func newTestService(f Fetcher, interval time.Duration) *priceService {
	s := New(f, interval, nil, slog.New(slog.NewTextHandler(io.Discard, nil))).(*priceService)
	s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestSnapshot_BeforeFirstPoll(t *testing.T) {
	s := newTestService(&scriptedFetcher{steps: []func() ([]coingecko.TokenPrice, error){fail}}, time.Minute)

	snap := s.Snapshot()
	assert.True(t, snap.Stale)
	assert.Nil(t, snap.UpdatedAt)
	assert.NotNil(t, snap.Prices)
	assert.Empty(t, snap.Prices)
}

func TestRefresh_KeepsLastKnownOnFailure(t *testing.T) {
	f := &scriptedFetcher{steps: []func() ([]coingecko.TokenPrice, error){ok("SOL", "ETH"), fail, ok("MOVR")}}
	s := newTestService(f, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	snap := s.Snapshot()
	assert.False(t, snap.Stale)
	require.NotNil(t, snap.UpdatedAt)
	assert.Equal(t, 2025, snap.UpdatedAt.Year())
	assert.Len(t, snap.Prices, 2)

	err := s.Refresh(ctx)
	assert.True(t, errors.Is(err, coingecko.ErrRequest))
	snap = s.Snapshot()
	assert.True(t, snap.Stale)
	assert.Len(t, snap.Prices, 2, "failed poll must not clear prices")

	require.NoError(t, s.Refresh(ctx))
	snap = s.Snapshot()
	assert.False(t, snap.Stale)
	require.Len(t, snap.Prices, 1)
	assert.Equal(t, "MOVR", snap.Prices[0].Symbol)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newTestService(&scriptedFetcher{steps: []func() ([]coingecko.TokenPrice, error){ok("SOL")}}, time.Minute)
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	snap.Prices[0].Symbol = "XXX"
	assert.Equal(t, "SOL", s.Snapshot().Prices[0].Symbol)
}

func TestRun_PollsUntilCancelled(t *testing.T) {
	f := &scriptedFetcher{steps: []func() ([]coingecko.TokenPrice, error){ok("SOL")}}
	s := newTestService(f, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return f.count() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, s.Snapshot().Stale)
}
