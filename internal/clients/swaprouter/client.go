package swaprouter

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

var ErrSwapRejected = errors.New("swap rejected by router")

// SwapRequest represents a swap submitted to the routing service.
type SwapRequest struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	AmountIn     int64  `json:"amount_in"`
	MinAmountOut int64  `json:"min_amount_out"`
	Beneficiary  string `json:"beneficiary"`
}

// SwapResponse represents the router's execution result.
type SwapResponse struct {
	AmountOut int64  `json:"amount_out"`
	TxID      string `json:"tx_id"`
}

// Client executes currency swaps through the external routing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new swap router client
func NewClient(baseURL string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Swap converts amountIn lamports to the stable currency and returns the
// amount received in stable base units. The router enforces minAmountOut
// as slippage protection.
func (c *Client) Swap(ctx context.Context, amountIn, minAmountOut int64, beneficiary string) (int64, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "amount_in", Value: amountIn},
		observability.Field{Key: "min_amount_out", Value: minAmountOut},
	)

	payload := SwapRequest{
		FromCurrency: "SOL",
		ToCurrency:   "USDC",
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Beneficiary:  beneficiary,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal swap request", err)
		return 0, fmt.Errorf("failed to prepare swap request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/swap", bytes.NewBuffer(jsonPayload))
	if err != nil {
		c.logger.Error(ctx, "failed to create swap request", err)
		return 0, fmt.Errorf("failed to create swap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call swap router", err)
		return 0, fmt.Errorf("failed to execute swap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Info(ctx, fmt.Sprintf("swap router returned status %d", resp.StatusCode))
		return 0, ErrSwapRejected
	}

	var swapResp SwapResponse
	if err := json.NewDecoder(resp.Body).Decode(&swapResp); err != nil {
		c.logger.Error(ctx, "failed to parse swap response", err)
		return 0, fmt.Errorf("failed to parse swap response: %w", err)
	}
	if swapResp.AmountOut < minAmountOut {
		return 0, ErrSwapRejected
	}
	return swapResp.AmountOut, nil
}
