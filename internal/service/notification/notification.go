package notification

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/pkg/email"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
	"github.com/Alijeyrad/glider_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Signup is a freshly stored entry plus the waitlist size after it.
type Signup struct {
	Entry *repo.Contact
	Total int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Enabled reports whether NotifySignup will attempt delivery.
	Enabled() bool
	// NotifySignup sends the submitter confirmation and the operator alert
	// concurrently. Failures are logged and counted; the returned error is
	// informational only.
	NotifySignup(ctx context.Context, s Signup) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	mail         email.Sender
	enabled      bool
	adminAddress string
	appName      string
	metrics      *observability.Metrics
	log          *slog.Logger
}

func New(client *email.Client, metrics *observability.Metrics, log *slog.Logger) Service {
	cfg := client.Config()
	return &notificationService{
		mail:         client,
		enabled:      client.Enabled(),
		adminAddress: cfg.AdminAddress,
		appName:      cfg.FromName,
		metrics:      metrics,
		log:          log,
	}
}

func (s *notificationService) Enabled() bool {
	return s.enabled
}

func (s *notificationService) NotifySignup(ctx context.Context, signup Signup) error {
	if !s.enabled {
		return ErrDisabled
	}
	entry := signup.Entry

	var g errgroup.Group

	g.Go(func() error {
		msg := email.BuildWaitlistConfirmationEmail(email.WaitlistEmailData{
			Name:    entry.Name,
			Email:   entry.Email,
			AppName: s.appName,
		})
		return s.deliver(ctx, KindConfirmation, entry, msg)
	})

	if s.adminAddress != "" {
		g.Go(func() error {
			msg := email.BuildSignupAlertEmail(email.SignupAlertData{
				AdminAddress: s.adminAddress,
				ReplyTo:      entry.Email,
				Name:         entry.Name,
				Fields:       alertFields(entry),
				Total:        signup.Total,
				AppName:      s.appName,
			})
			return s.deliver(ctx, KindAlert, entry, msg)
		})
	}

	return g.Wait()
}

func (s *notificationService) deliver(ctx context.Context, kind string, entry *repo.Contact, msg email.Message) error {
	log := reqctx.Logger(ctx, s.log)
	if err := s.mail.Send(ctx, msg); err != nil {
		s.metrics.NotificationFailed(ctx, kind)
		log.ErrorContext(ctx, "signup notification failed",
			slog.String("kind", kind),
			slog.String("entry_id", entry.ID),
			slog.Any("error", err),
		)
		return DeliveryError{Kind: kind, Err: err}
	}
	log.DebugContext(ctx, "signup notification sent",
		slog.String("kind", kind),
		slog.String("entry_id", entry.ID),
	)
	return nil
}

// alertFields lists the submitted values in the order the operator reads them.
func alertFields(c *repo.Contact) []email.Field {
	fields := []email.Field{
		{Key: "email", Value: c.Email},
		{Key: "name", Value: c.Name},
		{Key: "type", Value: c.Type},
	}
	if c.Message != "" {
		fields = append(fields, email.Field{Key: "message", Value: c.Message})
	}
	if c.Data != nil {
		fields = append(fields, email.Field{Key: "data", Value: c.Data})
	}
	return fields
}
