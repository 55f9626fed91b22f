package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetTokenBalance = `
SELECT campaign_id, wallet, balance, updated_at
FROM token_balances
WHERE campaign_id = $1 AND wallet = $2
`

// GetTokenBalance returns a wallet's holdings of one campaign's token. A
// wallet with no row has a zero balance, which maps to ErrNotFound.
func (s *Store) GetTokenBalance(ctx context.Context, campaignID uuid.UUID, wallet string) (TokenBalance, error) {
	var balance TokenBalance
	err := s.db.GetContext(ctx, &balance, sqlGetTokenBalance, campaignID, wallet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TokenBalance{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get token balance", err)
		return TokenBalance{}, fmt.Errorf("failed to get token balance: %w", err)
	}
	return balance, nil
}
