package store

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is the durable aggregate for one bonding-curve market plus its
// milestone schedule. All monetary fields are integer base units: lamports
// for the native currency, USDC base units for the stable currency, token
// base units for issuance.
type Campaign struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Creator        string    `db:"creator" json:"creator"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	DerivedAddress string    `db:"derived_address" json:"derived_address"`
	TokenMint      string    `db:"token_mint" json:"token_mint"`

	TargetAmount      int64 `db:"target_amount" json:"target_amount"`
	RaisedAmount      int64 `db:"raised_amount" json:"raised_amount"`
	FundingRatio      int64 `db:"funding_ratio" json:"funding_ratio"`
	TotalSupply       int64 `db:"total_supply" json:"total_supply"`
	DistributedTokens int64 `db:"distributed_tokens" json:"distributed_tokens"`

	FundingPoolStable int64 `db:"funding_pool_stable" json:"funding_pool_stable"`
	FundingPoolNative int64 `db:"funding_pool_native" json:"funding_pool_native"`
	LiquidityReserve  int64 `db:"liquidity_reserve" json:"liquidity_reserve"`
	TradingPool       int64 `db:"trading_pool" json:"trading_pool"`
	PlatformFees      int64 `db:"platform_fees" json:"platform_fees"`

	ConversionStrategy    ConversionStrategy `db:"conversion_strategy" json:"conversion_strategy"`
	CurrentMilestoneIndex int                `db:"current_milestone_index" json:"current_milestone_index"`
	TotalWithdrawn        int64              `db:"total_withdrawn" json:"total_withdrawn"`

	EndsAt           time.Time `db:"ends_at" json:"ends_at"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	Graduated        bool      `db:"graduated" json:"graduated"`
	GraduationPoolID *string   `db:"graduation_pool_id" json:"graduation_pool_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Milestones are loaded alongside the campaign, ordered by position.
	Milestones []Milestone `db:"-" json:"milestones"`
}

// LiquidityRatio is the percentage of raised value earmarked for the
// liquidity reserve.
func (c *Campaign) LiquidityRatio() int64 {
	return 100 - c.FundingRatio
}

// Milestone is one step of a campaign's withdrawal schedule. Required
// amounts are cumulative and strictly increasing across positions.
type Milestone struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CampaignID     uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Position       int       `db:"position" json:"position"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	RequiredAmount int64     `db:"required_amount" json:"required_amount"`
	UnlocksAt      time.Time `db:"unlocks_at" json:"unlocks_at"`
}

// TokenBalance tracks a wallet's holdings of one campaign's token.
type TokenBalance struct {
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Wallet     string    `db:"wallet" json:"wallet"`
	Balance    int64     `db:"balance" json:"balance"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// AirdropPool is the budgeted reward sub-ledger attached to a campaign.
type AirdropPool struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	CampaignID       uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	RewardMode       RewardMode `db:"reward_mode" json:"reward_mode"`
	TotalBudget      int64      `db:"total_budget" json:"total_budget"`
	TotalDistributed int64      `db:"total_distributed" json:"total_distributed"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	ExpiresAt        *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`

	// Tasks are loaded alongside the pool, ordered by position.
	Tasks []AirdropTask `db:"-" json:"tasks"`
}

// AirdropTask is one rewardable task definition. Tasks are deactivated, not
// removed, so historical completions stay valid.
type AirdropTask struct {
	ID               uuid.UUID `db:"id" json:"id"`
	PoolID           uuid.UUID `db:"pool_id" json:"pool_id"`
	Position         int       `db:"position" json:"position"`
	TaskType         string    `db:"task_type" json:"task_type"`
	RewardAmount     int64     `db:"reward_amount" json:"reward_amount"`
	VerificationHint string    `db:"verification_hint" json:"verification_hint"`
	MaxCompletions   int       `db:"max_completions" json:"max_completions"`
	CompletionCount  int       `db:"completion_count" json:"completion_count"`
	IsActive         bool      `db:"is_active" json:"is_active"`
}

// TaskCompletion is one user's submission against one task. At most one
// record exists per (campaign, wallet, task index).
type TaskCompletion struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	CampaignID      uuid.UUID        `db:"campaign_id" json:"campaign_id"`
	Wallet          string           `db:"wallet" json:"wallet"`
	TaskIndex       int              `db:"task_index" json:"task_index"`
	Status          CompletionStatus `db:"status" json:"status"`
	Proof           string           `db:"proof" json:"proof"`
	RejectionReason *string          `db:"rejection_reason" json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time        `db:"submitted_at" json:"submitted_at"`
	FinalizedAt     *time.Time       `db:"finalized_at" json:"finalized_at,omitempty"`
}
