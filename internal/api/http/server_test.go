package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/glider_backend/internal/api/http/router"
	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/internal/service/contact"
	"github.com/Alijeyrad/glider_backend/internal/service/notification"
	"github.com/Alijeyrad/glider_backend/internal/service/prices"
	"github.com/Alijeyrad/glider_backend/internal/service/responder"
	"github.com/Alijeyrad/glider_backend/pkg/coingecko"
	"github.com/Alijeyrad/glider_backend/pkg/database"
	"github.com/Alijeyrad/glider_backend/pkg/email"
)

const adminToken = "s3cret"

type stubFetcher struct{}

func (stubFetcher) Markets(context.Context) ([]coingecko.TokenPrice, error) {
	return []coingecko.TokenPrice{{ID: "solana", Symbol: "SOL", Name: "Solana", CurrentPrice: 150.25}}, nil
}

type firstVariant struct{}

func (firstVariant) IntN(int) int { return 0 }

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"errors"`
}

type testServer struct {
	t  *testing.T
	db *database.DB
	do func(method, path, body string, headers ...string) (int, response)
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.TimeoutSeconds = 5
	cfg.Server.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerWindow: 100, WindowSeconds: 30}
	cfg.Admin.Token = adminToken
	if mutate != nil {
		mutate(cfg)
	}

	dbCfg := database.DefaultConfig()
	dbCfg.DataDir = t.TempDir()
	db, err := database.Open(dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mailer, err := email.New(email.DefaultConfig())
	require.NoError(t, err)
	store := repo.NewClient(db)
	contactSvc := contact.New(store, notification.New(mailer, nil, log), nil, log)

	priceSvc := prices.New(stubFetcher{}, 0, nil, log)
	require.NoError(t, priceSvc.Refresh(context.Background()))

	r := router.NewRouter(router.Params{
		Cfg:        cfg,
		DB:         store,
		ContactSvc: contactSvc,
		PriceSvc:   priceSvc,
		Responder:  responder.New(responder.WithChooser(firstVariant{})),
	})
	app := NewApp(cfg, r, nil)

	do := func(method, path, body string, headers ...string) (int, response) {
		t.Helper()
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, rd)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var out response
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 && raw[0] == '{' {
			require.NoError(t, json.Unmarshal(raw, &out), string(raw))
		}
		return resp.StatusCode, out
	}

	return &testServer{t: t, db: db, do: do}
}

func TestContactFlow(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do("POST", "/api/contact", `{"name":"Ada","email":"ada@example.com","data":{"role":"dev"}}`)
	require.Equal(t, 201, status)
	assert.True(t, body.Success)
	assert.Equal(t, "You've been added to our waitlist! Check your email for confirmation.", body.Message)

	var entry repo.Contact
	require.NoError(t, json.Unmarshal(body.Data, &entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "contact", entry.Type)
	assert.Equal(t, "dev", entry.Data["role"])

	status, body = s.do("GET", "/api/contacts", "", "Authorization", "Bearer "+adminToken)
	require.Equal(t, 200, status)
	var entries []repo.Contact
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ada@example.com", entries[0].Email)
}

func TestContactList_FilterByType(t *testing.T) {
	s := newTestServer(t, nil)

	s.do("POST", "/api/contact", `{"email":"a@example.com","type":"waitlist"}`)
	s.do("POST", "/api/contact", `{"email":"b@example.com"}`)

	_, body := s.do("GET", "/api/contacts?type=waitlist", "", "Authorization", "Bearer "+adminToken)
	var entries []repo.Contact
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a@example.com", entries[0].Email)
}

func TestContactSubmit_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing email", body: `{"name":"Ada"}`, wantField: "email"},
		{name: "malformed email", body: `{"email":"not-an-email"}`, wantField: "email"},
		{name: "unknown type", body: `{"email":"a@example.com","type":"vip"}`, wantField: "type"},
		{name: "not json", body: `{"email":`, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)

			status, body := s.do("POST", "/api/contact", tt.body)
			require.Equal(t, 400, status)
			assert.False(t, body.Success)
			assert.Equal(t, "Validation error", body.Message)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tt.wantField, body.Errors[0].Field)
		})
	}
}

func TestContacts_StorageFailure(t *testing.T) {
	s := newTestServer(t, nil)
	require.NoError(t, s.db.Close())

	status, body := s.do("POST", "/api/contact", `{"email":"a@example.com"}`)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Failed to submit contact form", body.Message)

	status, body = s.do("GET", "/api/contacts", "", "Authorization", "Bearer "+adminToken)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Failed to fetch contacts", body.Message)
}

func TestContacts_AdminToken(t *testing.T) {
	s := newTestServer(t, nil)

	for _, auth := range []string{"", "Bearer wrong", "Basic " + adminToken, adminToken} {
		status, body := s.do("GET", "/api/contacts", "", "Authorization", auth)
		assert.Equal(t, 401, status, auth)
		assert.False(t, body.Success)
	}

	open := newTestServer(t, func(c *config.Config) { c.Admin.Token = "" })
	status, _ := open.do("GET", "/api/contacts", "")
	assert.Equal(t, 200, status)
}

func TestContactSubmit_RateLimited(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.RateLimit.RequestsPerWindow = 2
	})

	for i := 0; i < 2; i++ {
		status, _ := s.do("POST", "/api/contact", `{"email":"a@example.com"}`)
		require.Equal(t, 201, status)
	}
	status, body := s.do("POST", "/api/contact", `{"email":"a@example.com"}`)
	assert.Equal(t, 429, status)
	assert.False(t, body.Success)

	// Chat keeps its own budget.
	status, _ = s.do("POST", "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, 200, status)
}

func TestChat(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do("POST", "/api/chat", `{"message":"What is Glider?"}`)
	require.Equal(t, 200, status)

	var msg struct {
		Role     string `json:"role"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &msg))
	assert.Equal(t, "assistant", msg.Role)
	assert.Equal(t, string(responder.CategoryProduct), msg.Category)
	assert.Equal(t, responder.New().Variants(responder.CategoryProduct)[0], msg.Content)

	status, body = s.do("POST", "/api/chat", `{"message":"   "}`)
	assert.Equal(t, 400, status)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "message", body.Errors[0].Field)

	status, body = s.do("GET", "/api/chat/welcome", "")
	require.Equal(t, 200, status)
	require.NoError(t, json.Unmarshal(body.Data, &msg))
	assert.Equal(t, responder.New().Welcome(), msg.Content)
}

func TestChat_MessageLength(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantStatus int
		wantRule   string
	}{
		{name: "multibyte at limit", message: strings.Repeat("é", 2000), wantStatus: 200},
		{name: "multibyte over limit", message: strings.Repeat("é", 2001), wantStatus: 400, wantRule: "max"},
		{name: "ascii over limit", message: strings.Repeat("a", 2001), wantStatus: 400, wantRule: "max"},
		{name: "not json", message: "", wantStatus: 400, wantRule: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)

			payload := `{"message":`
			if tt.message != "" {
				payload = `{"message":"` + tt.message + `"}`
			}
			status, body := s.do("POST", "/api/chat", payload)
			require.Equal(t, tt.wantStatus, status)
			if tt.wantRule == "" {
				return
			}
			assert.False(t, body.Success)
			assert.Equal(t, "Validation error", body.Message)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantRule, body.Errors[0].Rule)
		})
	}
}

func TestPrices(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do("GET", "/api/prices", "")
	require.Equal(t, 200, status)

	var snap prices.Snapshot
	require.NoError(t, json.Unmarshal(body.Data, &snap))
	assert.False(t, snap.Stale)
	require.NotNil(t, snap.UpdatedAt)
	require.Len(t, snap.Prices, 1)
	assert.Equal(t, "SOL", snap.Prices[0].Symbol)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/livez", "/readyz", "/startupz"} {
		status, _ := s.do("GET", path, "")
		assert.Equal(t, 200, status, path)
	}

	status, body := s.do("GET", "/nope", "")
	assert.Equal(t, 404, status)
	assert.False(t, body.Success)

	require.NoError(t, s.db.Close())
	status, _ = s.do("GET", "/readyz", "")
	assert.Equal(t, 503, status)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, nil)
	app := NewApp(&config.Config{}, router.NewRouter(router.Params{
		Cfg:       &config.Config{},
		DB:        repo.NewClient(s.db),
		Responder: responder.New(),
	}), nil)

	req := httptest.NewRequest("GET", "/api/chat/welcome", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(middleware.HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/chat/welcome", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
}
