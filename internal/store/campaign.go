package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Creator            string
	Name               string
	Description        string
	DerivedAddress     string
	TokenMint          string
	TargetAmount       int64
	FundingRatio       int64
	TotalSupply        int64
	ConversionStrategy ConversionStrategy
	EndsAt             time.Time
	Milestones         []CreateMilestoneParams
}

// CreateMilestoneParams is one milestone of a new campaign's schedule.
type CreateMilestoneParams struct {
	Name           string
	Description    string
	RequiredAmount int64
	UnlocksAt      time.Time
}

const sqlCreateCampaign = `
INSERT INTO campaigns (creator, name, description, derived_address, token_mint,
                       target_amount, funding_ratio, total_supply, conversion_strategy, ends_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, creator, name, description, derived_address, token_mint,
          target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
          funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
          conversion_strategy, current_milestone_index, total_withdrawn,
          ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
`

const sqlCreateMilestone = `
INSERT INTO milestones (campaign_id, position, name, description, required_amount, unlocks_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, campaign_id, position, name, description, required_amount, unlocks_at
`

// CreateCampaign creates a campaign and its milestone schedule in one
// transaction. A colliding active (creator, name) pair maps to
// ErrAlreadyExists via the partial unique index.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &campaign, sqlCreateCampaign,
			params.Creator,
			params.Name,
			params.Description,
			params.DerivedAddress,
			params.TokenMint,
			params.TargetAmount,
			params.FundingRatio,
			params.TotalSupply,
			params.ConversionStrategy,
			params.EndsAt); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create campaign: %w", err)
		}

		campaign.Milestones = make([]Milestone, 0, len(params.Milestones))
		for i, m := range params.Milestones {
			var milestone Milestone
			if err := tx.GetContext(ctx, &milestone, sqlCreateMilestone,
				campaign.ID, i, m.Name, m.Description, m.RequiredAmount, m.UnlocksAt); err != nil {
				return fmt.Errorf("failed to create milestone %d: %w", i, err)
			}
			campaign.Milestones = append(campaign.Milestones, milestone)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyExists) {
			s.logger.Error(ctx, "failed to create campaign", err)
		}
		return Campaign{}, err
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT id, creator, name, description, derived_address, token_mint,
       target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
       funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
       conversion_strategy, current_milestone_index, total_withdrawn,
       ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
FROM campaigns
WHERE id = $1
`

const sqlGetMilestonesByCampaign = `
SELECT id, campaign_id, position, name, description, required_amount, unlocks_at
FROM milestones
WHERE campaign_id = $1
ORDER BY position
`

// GetCampaignByID retrieves a campaign with its milestone schedule.
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}

	if err := s.db.SelectContext(ctx, &campaign.Milestones, sqlGetMilestonesByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to load milestones", err)
		return Campaign{}, fmt.Errorf("failed to load milestones: %w", err)
	}

	return campaign, nil
}

const sqlGetActiveCampaignByCreatorAndName = `
SELECT id, creator, name, description, derived_address, token_mint,
       target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
       funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
       conversion_strategy, current_milestone_index, total_withdrawn,
       ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
FROM campaigns
WHERE creator = $1 AND name = $2 AND is_active = true
`

// GetActiveCampaignByCreatorAndName finds a creator's active campaign with
// the given name. The pair is the campaign's derived identity.
func (s *Store) GetActiveCampaignByCreatorAndName(ctx context.Context, creator, name string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetActiveCampaignByCreatorAndName, creator, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by creator and name", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by creator and name: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT id, creator, name, description, derived_address, token_mint,
       target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
       funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
       conversion_strategy, current_milestone_index, total_withdrawn,
       ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
FROM campaigns
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListCampaigns returns campaigns newest first.
func (s *Store) ListCampaigns(ctx context.Context, limit, offset int) ([]Campaign, error) {
	campaigns := []Campaign{}
	if err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, limit, offset); err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// ApplyPurchaseParams carries the precomputed effects of one buy operation.
// The four buckets have already been split exactly; the store only applies
// them atomically.
type ApplyPurchaseParams struct {
	CampaignID uuid.UUID
	Buyer      string
	Lamports   int64
	Tokens     int64

	// CreatorStable/CreatorNative are the converted and retained portions
	// of the creator-funding bucket.
	CreatorStable    int64
	CreatorNative    int64
	LiquidityReserve int64
	TradingPool      int64
	PlatformFee      int64
}

const sqlApplyPurchase = `
UPDATE campaigns
SET raised_amount = raised_amount + $2,
    distributed_tokens = distributed_tokens + $3,
    funding_pool_stable = funding_pool_stable + $4,
    funding_pool_native = funding_pool_native + $5,
    liquidity_reserve = liquidity_reserve + $6,
    trading_pool = trading_pool + $7,
    platform_fees = platform_fees + $8,
    updated_at = now()
WHERE id = $1 AND is_active = true AND graduated = false
RETURNING id, creator, name, description, derived_address, token_mint,
          target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
          funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
          conversion_strategy, current_milestone_index, total_withdrawn,
          ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
`

const sqlUpsertTokenBalance = `
INSERT INTO token_balances (campaign_id, wallet, balance)
VALUES ($1, $2, $3)
ON CONFLICT (campaign_id, wallet)
DO UPDATE SET balance = token_balances.balance + $3, updated_at = now()
`

// ApplyPurchase commits one buy: raised amount, distributed tokens, the four
// funding buckets and the buyer's balance move in a single transaction.
func (s *Store) ApplyPurchase(ctx context.Context, params ApplyPurchaseParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &campaign, sqlApplyPurchase,
			params.CampaignID,
			params.Lamports,
			params.Tokens,
			params.CreatorStable,
			params.CreatorNative,
			params.LiquidityReserve,
			params.TradingPool,
			params.PlatformFee)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrStaleState
			}
			return fmt.Errorf("failed to apply purchase: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlUpsertTokenBalance,
			params.CampaignID, params.Buyer, params.Tokens); err != nil {
			return fmt.Errorf("failed to credit token balance: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to apply purchase", err)
		return Campaign{}, err
	}
	return campaign, nil
}

// ApplySaleParams carries the precomputed effects of one sell operation.
type ApplySaleParams struct {
	CampaignID uuid.UUID
	Seller     string
	Tokens     int64
	Lamports   int64
}

const sqlApplySale = `
UPDATE campaigns
SET raised_amount = raised_amount - $2,
    distributed_tokens = distributed_tokens - $3,
    trading_pool = trading_pool - $2,
    updated_at = now()
WHERE id = $1 AND is_active = true AND graduated = false
  AND raised_amount >= $2 AND trading_pool >= $2 AND distributed_tokens >= $3
RETURNING id, creator, name, description, derived_address, token_mint,
          target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
          funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
          conversion_strategy, current_milestone_index, total_withdrawn,
          ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
`

const sqlDebitTokenBalance = `
UPDATE token_balances
SET balance = balance - $3, updated_at = now()
WHERE campaign_id = $1 AND wallet = $2 AND balance >= $3
`

// ApplySale commits one sell: burned tokens leave the seller's balance and
// the campaign's raised amount and trading pool shrink symmetrically. The
// WHERE guards make an under-liquidity or under-balance commit impossible
// even if the caller's validation raced.
func (s *Store) ApplySale(ctx context.Context, params ApplySaleParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &campaign, sqlApplySale,
			params.CampaignID, params.Lamports, params.Tokens)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrStaleState
			}
			return fmt.Errorf("failed to apply sale: %w", err)
		}

		res, err := tx.ExecContext(ctx, sqlDebitTokenBalance,
			params.CampaignID, params.Seller, params.Tokens)
		if err != nil {
			return fmt.Errorf("failed to debit token balance: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check balance debit: %w", err)
		}
		if rows == 0 {
			return ErrStaleState
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to apply sale", err)
		return Campaign{}, err
	}
	return campaign, nil
}

// ApplyWithdrawalParams carries the effects of one milestone withdrawal.
type ApplyWithdrawalParams struct {
	CampaignID uuid.UUID
	// AmountLamports is the lamport-denominated amount released, the unit
	// total_withdrawn is tracked in.
	AmountLamports int64
	// NativeDrained is the portion taken from the native funding pool and
	// converted at withdrawal time.
	NativeDrained int64
	// StableFromPool is the portion paid out of the stable funding pool.
	StableFromPool    int64
	NewMilestoneIndex int
}

const sqlApplyWithdrawal = `
UPDATE campaigns
SET total_withdrawn = total_withdrawn + $2,
    funding_pool_native = funding_pool_native - $3,
    funding_pool_stable = funding_pool_stable - $4,
    current_milestone_index = $5,
    updated_at = now()
WHERE id = $1 AND is_active = true
  AND funding_pool_native >= $3 AND funding_pool_stable >= $4
  AND current_milestone_index <= $5
RETURNING id, creator, name, description, derived_address, token_mint,
          target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
          funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
          conversion_strategy, current_milestone_index, total_withdrawn,
          ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
`

// ApplyWithdrawal commits one milestone withdrawal. The milestone index
// guard keeps the index monotone no matter what the caller computed.
func (s *Store) ApplyWithdrawal(ctx context.Context, params ApplyWithdrawalParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlApplyWithdrawal,
		params.CampaignID,
		params.AmountLamports,
		params.NativeDrained,
		params.StableFromPool,
		params.NewMilestoneIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrStaleState
		}
		s.logger.Error(ctx, "failed to apply withdrawal", err)
		return Campaign{}, fmt.Errorf("failed to apply withdrawal: %w", err)
	}
	return campaign, nil
}

// MarkGraduatedParams records the outcome of a graduation execution.
type MarkGraduatedParams struct {
	CampaignID   uuid.UUID
	PoolID       string
	FeeLamports  int64
	SeedLamports int64
}

const sqlMarkGraduated = `
UPDATE campaigns
SET graduated = true,
    graduation_pool_id = $2,
    liquidity_reserve = liquidity_reserve - $3 - $4,
    platform_fees = platform_fees + $3,
    updated_at = now()
WHERE id = $1 AND graduated = false AND liquidity_reserve >= $3 + $4
RETURNING id, creator, name, description, derived_address, token_mint,
          target_amount, raised_amount, funding_ratio, total_supply, distributed_tokens,
          funding_pool_stable, funding_pool_native, liquidity_reserve, trading_pool, platform_fees,
          conversion_strategy, current_milestone_index, total_withdrawn,
          ends_at, is_active, graduated, graduation_pool_id, created_at, updated_at
`

// MarkGraduated flips the one-way graduated flag, takes the graduation fee
// and drains the seeded liquidity in one statement. A second call finds
// graduated = true and returns ErrStaleState.
func (s *Store) MarkGraduated(ctx context.Context, params MarkGraduatedParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlMarkGraduated,
		params.CampaignID, params.PoolID, params.FeeLamports, params.SeedLamports)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrStaleState
		}
		s.logger.Error(ctx, "failed to mark campaign graduated", err)
		return Campaign{}, fmt.Errorf("failed to mark campaign graduated: %w", err)
	}
	return campaign, nil
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
