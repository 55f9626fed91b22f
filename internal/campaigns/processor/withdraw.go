package processor

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawResult is the outcome of a milestone withdrawal.
type WithdrawResult struct {
	Campaign store.Campaign `json:"campaign"`
	// AmountLamports is the lamport-denominated value released.
	AmountLamports int64 `json:"amount_lamports"`
	// StablePaid is the USDC base units actually paid out, combining
	// withdrawal-time conversion and the stable funding pool.
	StablePaid        int64  `json:"stable_paid"`
	MilestoneName     string `json:"milestone_name"`
	NewMilestoneIndex int    `json:"new_milestone_index"`
}

// WithdrawMilestoneFunds releases the creator-funding value unlocked by the
// current milestone. Unlocked value is cumulative: min(raised, required)
// scaled by the funding ratio, minus what was already withdrawn. Native
// holdings convert at withdrawal time and a failed conversion aborts with
// funds unchanged.
func (p *CampaignProcessor) WithdrawMilestoneFunds(ctx context.Context, campaignID uuid.UUID, caller string) (WithdrawResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "caller", Value: caller},
	)

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WithdrawResult{}, ErrCampaignNotFound
		}
		return WithdrawResult{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Creator != caller {
		return WithdrawResult{}, ErrUnauthorized
	}

	idx := campaign.CurrentMilestoneIndex
	if idx >= len(campaign.Milestones) {
		return WithdrawResult{}, ErrNothingToWithdraw
	}
	milestone := campaign.Milestones[idx]
	if time.Now().Before(milestone.UnlocksAt) {
		return WithdrawResult{}, ErrMilestoneLocked
	}

	// Funds between two milestone thresholds stay locked until the higher
	// one is reached. Only the first tranche may be drawn down partially.
	var cumulativeAllowed int64
	switch {
	case campaign.RaisedAmount >= milestone.RequiredAmount:
		cumulativeAllowed = milestone.RequiredAmount
	case idx == 0:
		cumulativeAllowed = campaign.RaisedAmount
	default:
		cumulativeAllowed = campaign.Milestones[idx-1].RequiredAmount
	}
	available := cumulativeAllowed*campaign.FundingRatio/100 - campaign.TotalWithdrawn
	if available <= 0 {
		return WithdrawResult{}, ErrNothingToWithdraw
	}

	// Drain native holdings first; they convert at withdrawal time.
	nativeDrained := available
	if campaign.FundingPoolNative < nativeDrained {
		nativeDrained = campaign.FundingPoolNative
	}

	var stablePaid int64
	if nativeDrained > 0 {
		converted, err := p.converter.ConvertForWithdrawal(ctx, nativeDrained, campaign.DerivedAddress)
		if err != nil {
			p.logger.Error(ctx, "withdrawal aborted, conversion failed", err)
			return WithdrawResult{}, fmt.Errorf("%w: %s", ErrSwapFailed, err.Error())
		}
		stablePaid += converted.StableAmount
	}

	// The remainder was converted at purchase time and sits in the stable
	// pool, valued at the current oracle rate.
	stableFromPool := int64(0)
	if remainder := available - nativeDrained; remainder > 0 {
		rate, err := p.oracle.SolPriceUSDC(ctx)
		if err != nil {
			p.logger.Error(ctx, "withdrawal aborted, no valuation rate", err)
			return WithdrawResult{}, fmt.Errorf("%w: %s", ErrPriceFeed, err.Error())
		}
		stableFromPool = lamportsToStable(remainder, rate)
		if stableFromPool > campaign.FundingPoolStable {
			stableFromPool = campaign.FundingPoolStable
		}
		stablePaid += stableFromPool
	}

	newIdx := idx
	if campaign.RaisedAmount >= milestone.RequiredAmount {
		newIdx = idx + 1
	}

	updated, err := p.store.ApplyWithdrawal(ctx, store.ApplyWithdrawalParams{
		CampaignID:        campaignID,
		AmountLamports:    available,
		NativeDrained:     nativeDrained,
		StableFromPool:    stableFromPool,
		NewMilestoneIndex: newIdx,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist withdrawal", err)
		return WithdrawResult{}, fmt.Errorf("failed to persist withdrawal: %w", err)
	}

	if err := p.notifier.WithdrawalProcessed(ctx, updated, milestone.Name, available); err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("failed to send withdrawal notification: %v", err))
	}

	p.logger.Info(ctx, "milestone withdrawal executed")
	return WithdrawResult{
		Campaign:          updated,
		AmountLamports:    available,
		StablePaid:        stablePaid,
		MilestoneName:     milestone.Name,
		NewMilestoneIndex: newIdx,
	}, nil
}

// lamportsToStable values lamports in USDC base units at rate.
func lamportsToStable(lamports int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(lamports).
		Div(decimal.NewFromInt(pricing.LamportsPerSol)).
		Mul(rate).
		Mul(decimal.NewFromInt(pricing.TokenBaseUnits)).
		IntPart()
}
