package liquidityvenue

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

var ErrPoolCreationFailed = errors.New("liquidity pool creation failed")

// CreatePoolRequest seeds a new trading pool on the external venue.
type CreatePoolRequest struct {
	TokenMint       string `json:"token_mint"`
	NativeAmount    int64  `json:"native_amount"`
	TokenAllocation int64  `json:"token_allocation"`
}

// CreatePoolResponse represents the venue's created pool.
type CreatePoolResponse struct {
	PoolID string `json:"pool_id"`
}

// Client creates liquidity pools on the external trading venue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new liquidity venue client
func NewClient(baseURL string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreatePool seeds a pool with native liquidity and a matching token
// allocation, returning the venue's pool identifier.
func (c *Client) CreatePool(ctx context.Context, tokenMint string, nativeAmount, tokenAllocation int64) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "token_mint", Value: tokenMint},
		observability.Field{Key: "native_amount", Value: nativeAmount},
	)

	payload := CreatePoolRequest{
		TokenMint:       tokenMint,
		NativeAmount:    nativeAmount,
		TokenAllocation: tokenAllocation,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal pool request", err)
		return "", fmt.Errorf("failed to prepare pool request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pools", bytes.NewBuffer(jsonPayload))
	if err != nil {
		c.logger.Error(ctx, "failed to create pool request", err)
		return "", fmt.Errorf("failed to create pool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call liquidity venue", err)
		return "", fmt.Errorf("failed to call liquidity venue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		c.logger.Error(ctx, "liquidity venue returned non-2xx", fmt.Errorf("status %d", resp.StatusCode))
		return "", ErrPoolCreationFailed
	}

	var poolResp CreatePoolResponse
	if err := json.NewDecoder(resp.Body).Decode(&poolResp); err != nil {
		c.logger.Error(ctx, "failed to parse pool response", err)
		return "", fmt.Errorf("failed to parse pool response: %w", err)
	}
	if poolResp.PoolID == "" {
		return "", ErrPoolCreationFailed
	}

	c.logger.Info(ctx, "liquidity pool created")
	return poolResp.PoolID, nil
}
