// Package coingecko provides a minimal client for the CoinGecko markets API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Alijeyrad/glider_backend/config"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

var (
	ErrRequest = errors.New("coingecko: request failed")
	ErrStatus  = errors.New("coingecko: unexpected status")
)

// TokenPrice is one market row. Symbol is always upper case.
type TokenPrice struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	Image                    string  `json:"image"`
}

type Client struct {
	baseURL    string
	ids        []string
	vsCurrency string
	httpClient *http.Client
}

func New(cfg config.PricesConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	vs := cfg.VSCurrency
	if vs == "" {
		vs = "usd"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ids := lo.Uniq(lo.FilterMap(cfg.TokenIDs, func(id string, _ int) (string, bool) {
		id = strings.ToLower(strings.TrimSpace(id))
		return id, id != ""
	}))

	return &Client{
		baseURL:    baseURL,
		ids:        ids,
		vsCurrency: vs,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) TokenIDs() []string {
	return append([]string(nil), c.ids...)
}

// Markets fetches current prices for the configured tokens, ordered by
// market cap.
func (c *Client) Markets(ctx context.Context) ([]TokenPrice, error) {
	if len(c.ids) == 0 {
		return []TokenPrice{}, nil
	}

	q := url.Values{}
	q.Set("vs_currency", c.vsCurrency)
	q.Set("ids", strings.Join(c.ids, ","))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", "100")
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h")

	var rows []TokenPrice
	if err := c.get(ctx, "/coins/markets?"+q.Encode(), &rows); err != nil {
		return nil, err
	}

	return lo.Map(rows, func(t TokenPrice, _ int) TokenPrice {
		t.Symbol = strings.ToUpper(t.Symbol)
		return t
	}), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return fmt.Errorf("%w: %d", ErrStatus, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRequest, err)
	}
	return nil
}
