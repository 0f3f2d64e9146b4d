package contact

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/internal/service/notification"
	"github.com/Alijeyrad/glider_backend/pkg/constants"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
	"github.com/Alijeyrad/glider_backend/pkg/reqctx"
)

// notifyTimeout bounds the background email fan-out for one submission.
const notifyTimeout = time.Minute

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string         `json:"name" validate:"max=200"`
	Email   string         `json:"email" validate:"required,email,max=320"`
	Message string         `json:"message" validate:"max=5000"`
	Type    string         `json:"type" validate:"omitempty,oneof=contact waitlist"`
	Data    map[string]any `json:"data"`
}

type ListRequest struct {
	Type string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit validates and stores an entry, then notifies in the background.
	Submit(ctx context.Context, req CreateRequest) (*repo.Contact, error)
	// List returns entries newest first.
	List(ctx context.Context, req ListRequest) ([]*repo.Contact, error)
	// Wait blocks until in-flight notifications have finished.
	Wait()
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	db       *repo.Client
	notifier notification.Service
	metrics  *observability.Metrics
	log      *slog.Logger
	validate *validator.Validate
	inflight sync.WaitGroup
}

func New(db *repo.Client, notifier notification.Service, metrics *observability.Metrics, log *slog.Logger) Service {
	return &contactService{
		db:       db,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *contactService) Submit(ctx context.Context, req CreateRequest) (*repo.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Type = strings.TrimSpace(req.Type)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fromValidator(verrs)
		}
		return nil, err
	}

	if req.Type == "" {
		req.Type = constants.DefaultContactType
	}

	entry, err := s.db.Contact.Create(ctx, repo.CreateContactInput{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Data:    req.Data,
	})
	if err != nil {
		reqctx.Logger(ctx, s.log).ErrorContext(ctx, "create contact failed", slog.Any("error", err))
		return nil, ErrInternal
	}
	s.metrics.EntryCreated(ctx)

	if s.notifier.Enabled() {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
			defer cancel()
			s.notify(nctx, entry)
		}()
	}

	return entry, nil
}

func (s *contactService) notify(ctx context.Context, entry *repo.Contact) {
	total, err := s.db.Contact.Count(ctx)
	if err != nil {
		reqctx.Logger(ctx, s.log).WarnContext(ctx, "count contacts for alert failed", slog.Any("error", err))
	}
	// Delivery errors are already logged by the notifier.
	_ = s.notifier.NotifySignup(ctx, notification.Signup{Entry: entry, Total: total})
}

func (s *contactService) List(ctx context.Context, req ListRequest) ([]*repo.Contact, error) {
	entries, err := s.db.Contact.GetAll(ctx, repo.ContactFilter{Type: strings.TrimSpace(req.Type)})
	if err != nil {
		reqctx.Logger(ctx, s.log).ErrorContext(ctx, "list contacts failed", slog.Any("error", err))
		return nil, ErrInternal
	}
	return entries, nil
}

func (s *contactService) Wait() {
	s.inflight.Wait()
}
