package priceoracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnavailable = errors.New("price oracle unavailable")
	ErrStaleQuote  = errors.New("price quote is stale")
)

// QuoteResponse represents a quote from the price oracle API
type QuoteResponse struct {
	Pair      string          `json:"pair"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
}

// Client fetches currency conversion rates from the price oracle service.
type Client struct {
	baseURL      string
	maxStaleness time.Duration
	httpClient   *http.Client
	logger       *observability.Logger
}

// NewClient creates a new price oracle client
func NewClient(baseURL string, maxStaleness time.Duration, logger *observability.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		maxStaleness: maxStaleness,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// SolPriceUSD returns the current SOL/USD rate. Quotes older than the
// staleness window are rejected.
func (c *Client) SolPriceUSD(ctx context.Context) (decimal.Decimal, error) {
	quote, err := c.fetchQuote(ctx, "SOL-USD")
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Price, nil
}

// SolPriceUSDC returns the current SOL/USDC rate used for stable
// settlement conversions.
func (c *Client) SolPriceUSDC(ctx context.Context) (decimal.Decimal, error) {
	quote, err := c.fetchQuote(ctx, "SOL-USDC")
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Price, nil
}

func (c *Client) fetchQuote(ctx context.Context, pair string) (QuoteResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "pair", Value: pair})

	endpoint := fmt.Sprintf("%s/v1/price?pair=%s", c.baseURL, url.QueryEscape(pair))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error(ctx, "failed to create oracle request", err)
		return QuoteResponse{}, fmt.Errorf("failed to create oracle request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call price oracle", err)
		return QuoteResponse{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error(ctx, "price oracle returned non-200", fmt.Errorf("status %d", resp.StatusCode))
		return QuoteResponse{}, ErrUnavailable
	}

	var quote QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		c.logger.Error(ctx, "failed to parse oracle response", err)
		return QuoteResponse{}, ErrUnavailable
	}

	if quote.Price.LessThanOrEqual(decimal.Zero) {
		return QuoteResponse{}, ErrUnavailable
	}
	if c.maxStaleness > 0 {
		age := time.Since(time.Unix(quote.Timestamp, 0))
		if age > c.maxStaleness {
			c.logger.Warn(ctx, fmt.Sprintf("oracle quote is %s old", age))
			return QuoteResponse{}, ErrStaleQuote
		}
	}
	return quote, nil
}
