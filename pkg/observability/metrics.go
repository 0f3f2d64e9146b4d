package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the waitlist business counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	entriesCreated      metric.Int64Counter
	notificationsFailed metric.Int64Counter
	replies             metric.Int64Counter
	pricePolls          metric.Int64Counter
}

// NewMetrics registers counters on the global meter provider. Until telemetry
// is initialised the global provider is a no-op.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(tracerName)

	entries, err := meter.Int64Counter("waitlist_entries_created_total",
		metric.WithDescription("Waitlist entries stored"))
	if err != nil {
		return nil, err
	}
	failed, err := meter.Int64Counter("waitlist_notifications_failed_total",
		metric.WithDescription("Signup notifications that could not be delivered"))
	if err != nil {
		return nil, err
	}
	replies, err := meter.Int64Counter("responder_replies_total",
		metric.WithDescription("Chat replies by category"))
	if err != nil {
		return nil, err
	}
	polls, err := meter.Int64Counter("price_feed_polls_total",
		metric.WithDescription("Price feed polls by outcome"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		entriesCreated:      entries,
		notificationsFailed: failed,
		replies:             replies,
		pricePolls:          polls,
	}, nil
}

func (m *Metrics) EntryCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.entriesCreated.Add(ctx, 1)
}

func (m *Metrics) NotificationFailed(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.notificationsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) Reply(ctx context.Context, category string) {
	if m == nil {
		return
	}
	m.replies.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

func (m *Metrics) PricePoll(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.pricePolls.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
