package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/internal/service/notification"
	"github.com/Alijeyrad/glider_backend/pkg/database"
)

type fakeNotifier struct {
	enabled bool
	err     error

	mu      sync.Mutex
	signups []notification.Signup
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) NotifySignup(_ context.Context, s notification.Signup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signups = append(f.signups, s)
	return f.err
}

func (f *fakeNotifier) calls() []notification.Signup {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification.Signup(nil), f.signups...)
}

func setup(t *testing.T, n notification.Service) (Service, *database.DB) {
	t.Helper()

	cfg := database.DefaultConfig()
	cfg.DataDir = t.TempDir()
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo.NewClient(db), n, nil, log), db
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	n := &fakeNotifier{enabled: true}
	svc, _ := setup(t, n)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, CreateRequest{
		Name:  "  Ada ",
		Email: "ada@example.com",
		Data:  map[string]any{"role": "investor"},
	})
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "Ada", entry.Name)
	assert.Equal(t, "contact", entry.Type)
	assert.Equal(t, "investor", entry.Data["role"])

	calls := n.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, entry.ID, calls[0].Entry.ID)
	assert.Equal(t, 1, calls[0].Total)
}

func TestSubmit_NotificationFailureDoesNotFail(t *testing.T) {
	n := &fakeNotifier{enabled: true, err: errors.New("smtp down")}
	svc, _ := setup(t, n)

	entry, err := svc.Submit(context.Background(), CreateRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	svc.Wait()

	list, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubmit_DisabledNotifierIsSkipped(t *testing.T) {
	n := &fakeNotifier{}
	svc, _ := setup(t, n)

	_, err := svc.Submit(context.Background(), CreateRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	svc.Wait()

	assert.Empty(t, n.calls())
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateRequest
		field string
		rule  string
	}{
		{name: "missing email", req: CreateRequest{Name: "Ada"}, field: "email", rule: "required"},
		{name: "blank email", req: CreateRequest{Email: "   "}, field: "email", rule: "required"},
		{name: "bad email", req: CreateRequest{Email: "not-an-email"}, field: "email", rule: "email"},
		{name: "unknown type", req: CreateRequest{Email: "a@b.co", Type: "partner"}, field: "type", rule: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setup(t, &fakeNotifier{})

			_, err := svc.Submit(context.Background(), tt.req)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.rule, verr.Fields[0].Rule)

			list, err := svc.List(context.Background(), ListRequest{})
			require.NoError(t, err)
			assert.Empty(t, list, "nothing may be stored on validation failure")
		})
	}
}

func TestList_FilterAndOrder(t *testing.T) {
	svc, _ := setup(t, &fakeNotifier{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, CreateRequest{Email: "first@example.com"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, CreateRequest{Email: "second@example.com", Type: "waitlist"})
	require.NoError(t, err)

	all, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second@example.com", all[0].Email)

	waitlist, err := svc.List(ctx, ListRequest{Type: "waitlist"})
	require.NoError(t, err)
	require.Len(t, waitlist, 1)
	assert.Equal(t, "second@example.com", waitlist[0].Email)
}

func TestStorageFailureIsInternal(t *testing.T) {
	svc, db := setup(t, &fakeNotifier{})
	require.NoError(t, db.Close())

	_, err := svc.Submit(context.Background(), CreateRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.List(context.Background(), ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
