package prices

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Alijeyrad/glider_backend/pkg/coingecko"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Fetcher returns the current market rows. *coingecko.Client satisfies it.
type Fetcher interface {
	Markets(ctx context.Context) ([]coingecko.TokenPrice, error)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Snapshot is the last successfully fetched price list. Stale is set when
// nothing has been fetched yet or the latest poll failed.
type Snapshot struct {
	Prices    []coingecko.TokenPrice `json:"prices"`
	UpdatedAt *time.Time             `json:"updatedAt"`
	Stale     bool                   `json:"stale"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Snapshot() Snapshot
	// Refresh polls once. On failure the previous prices are kept.
	Refresh(ctx context.Context) error
	// Run refreshes immediately and then on every tick until ctx is done.
	Run(ctx context.Context)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type priceService struct {
	fetcher  Fetcher
	interval time.Duration
	metrics  *observability.Metrics
	log      *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	prices    []coingecko.TokenPrice
	updatedAt time.Time
	failing   bool
}

func New(fetcher Fetcher, interval time.Duration, metrics *observability.Metrics, log *slog.Logger) Service {
	if interval <= 0 {
		interval = time.Minute
	}
	return &priceService{
		fetcher:  fetcher,
		interval: interval,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

func (s *priceService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Prices: append(make([]coingecko.TokenPrice, 0, len(s.prices)), s.prices...),
		Stale:  s.failing || s.updatedAt.IsZero(),
	}
	if !s.updatedAt.IsZero() {
		t := s.updatedAt
		snap.UpdatedAt = &t
	}
	return snap
}

func (s *priceService) Refresh(ctx context.Context) error {
	rows, err := s.fetcher.Markets(ctx)
	if err != nil {
		s.mu.Lock()
		s.failing = true
		s.mu.Unlock()

		s.metrics.PricePoll(ctx, OutcomeError)
		s.log.WarnContext(ctx, "price poll failed", slog.Any("error", err))
		return err
	}

	s.mu.Lock()
	s.prices = rows
	s.updatedAt = s.now().UTC()
	s.failing = false
	s.mu.Unlock()

	s.metrics.PricePoll(ctx, OutcomeOK)
	s.log.DebugContext(ctx, "prices refreshed", slog.Int("tokens", len(rows)))
	return nil
}

func (s *priceService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	_ = s.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}
