package tokenmint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"net/http"
	"time"
)

var ErrMintFailed = errors.New("token mint operation failed")

// MintRequest represents a mint or burn instruction for a campaign token.
type MintRequest struct {
	Mint   string `json:"mint"`
	Wallet string `json:"wallet"`
	Amount int64  `json:"amount"`
}

// Client issues and burns campaign tokens through the token service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new token mint client
func NewClient(baseURL string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Mint credits amount token base units of mint to wallet.
func (c *Client) Mint(ctx context.Context, mint, wallet string, amount int64) error {
	return c.post(ctx, "/v1/mint", MintRequest{Mint: mint, Wallet: wallet, Amount: amount})
}

// Burn debits amount token base units of mint from wallet.
func (c *Client) Burn(ctx context.Context, mint, wallet string, amount int64) error {
	return c.post(ctx, "/v1/burn", MintRequest{Mint: mint, Wallet: wallet, Amount: amount})
}

func (c *Client) post(ctx context.Context, path string, payload MintRequest) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "token_mint", Value: payload.Mint},
		observability.Field{Key: "amount", Value: payload.Amount},
	)

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal mint request", err)
		return fmt.Errorf("failed to prepare mint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonPayload))
	if err != nil {
		c.logger.Error(ctx, "failed to create mint request", err)
		return fmt.Errorf("failed to create mint request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call token service", err)
		return fmt.Errorf("failed to call token service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error(ctx, "token service returned non-200", fmt.Errorf("status %d", resp.StatusCode))
		return ErrMintFailed
	}
	return nil
}
