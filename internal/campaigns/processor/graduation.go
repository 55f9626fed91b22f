package processor

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GraduationStatus reports how close a campaign is to moving its token to
// the external liquidity venue.
type GraduationStatus struct {
	CampaignID   uuid.UUID       `json:"campaign_id"`
	Graduated    bool            `json:"graduated"`
	Eligible     bool            `json:"eligible"`
	ProgressPct  decimal.Decimal `json:"progress_pct"`
	MarketCapUSD decimal.Decimal `json:"market_cap_usd"`
	LiquiditySOL decimal.Decimal `json:"liquidity_sol"`
	MinMarketCap decimal.Decimal `json:"min_market_cap_usd"`
	MinLiquidity decimal.Decimal `json:"min_liquidity_sol"`
}

var (
	decimalHalf    = decimal.NewFromFloat(0.5)
	decimalHundred = decimal.NewFromInt(100)
)

// EvaluateGraduation computes market cap and raised liquidity against the
// graduation thresholds. Progress weighs both criteria equally, each capped
// at its threshold.
func (p *CampaignProcessor) EvaluateGraduation(ctx context.Context, campaignID uuid.UUID) (GraduationStatus, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GraduationStatus{}, ErrCampaignNotFound
		}
		return GraduationStatus{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return p.evaluate(ctx, campaign)
}

func (p *CampaignProcessor) evaluate(ctx context.Context, campaign store.Campaign) (GraduationStatus, error) {
	status := GraduationStatus{
		CampaignID:   campaign.ID,
		Graduated:    campaign.Graduated,
		MinMarketCap: p.graduation.MinMarketCapUSD,
		MinLiquidity: p.graduation.MinLiquiditySOL,
	}
	if campaign.Graduated {
		status.Eligible = true
		status.ProgressPct = decimalHundred
		return status, nil
	}

	rate, err := p.oracle.SolPriceUSD(ctx)
	if err != nil {
		p.logger.Error(ctx, "graduation evaluation has no rate", err)
		return GraduationStatus{}, fmt.Errorf("%w: %s", ErrPriceFeed, err.Error())
	}

	// Market cap values the whole supply at the display price.
	priceSOL := decimal.NewFromInt(pricing.DisplayPrice(campaign.RaisedAmount)).
		Div(decimal.NewFromInt(pricing.LamportsPerSol))
	supplyTokens := decimal.NewFromInt(campaign.TotalSupply).
		Div(decimal.NewFromInt(pricing.TokenBaseUnits))
	status.MarketCapUSD = priceSOL.Mul(rate).Mul(supplyTokens)
	// Liquidity is the cumulative raised amount. The reserve bucket is only
	// a fraction of it and is what eventually seeds the venue pool.
	status.LiquiditySOL = decimal.NewFromInt(campaign.RaisedAmount).
		Div(decimal.NewFromInt(pricing.LamportsPerSol))

	mcScore := decimal.NewFromInt(1)
	if status.MarketCapUSD.LessThan(p.graduation.MinMarketCapUSD) {
		mcScore = status.MarketCapUSD.Div(p.graduation.MinMarketCapUSD)
	}
	liqScore := decimal.NewFromInt(1)
	if status.LiquiditySOL.LessThan(p.graduation.MinLiquiditySOL) {
		liqScore = status.LiquiditySOL.Div(p.graduation.MinLiquiditySOL)
	}

	status.ProgressPct = mcScore.Mul(decimalHalf).Add(liqScore.Mul(decimalHalf)).Mul(decimalHundred)
	status.Eligible = !status.MarketCapUSD.LessThan(p.graduation.MinMarketCapUSD) &&
		!status.LiquiditySOL.LessThan(p.graduation.MinLiquiditySOL)
	return status, nil
}

// GraduationResult is the outcome of a completed graduation.
type GraduationResult struct {
	Campaign     store.Campaign `json:"campaign"`
	PoolID       string         `json:"pool_id"`
	FeeLamports  int64          `json:"fee_lamports"`
	SeedLamports int64          `json:"seed_lamports"`
}

// ExecuteGraduation moves an eligible campaign's token to the external
// venue: the liquidity reserve, minus the graduation fee, seeds a new pool
// together with a matching token allocation. Graduation is one-way and the
// funding pools are untouched.
func (p *CampaignProcessor) ExecuteGraduation(ctx context.Context, campaignID uuid.UUID, caller string) (GraduationResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "caller", Value: caller},
	)

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GraduationResult{}, ErrCampaignNotFound
		}
		return GraduationResult{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Graduated {
		return GraduationResult{}, ErrAlreadyGraduated
	}
	if campaign.Creator != caller {
		return GraduationResult{}, ErrUnauthorized
	}

	status, err := p.evaluate(ctx, campaign)
	if err != nil {
		return GraduationResult{}, err
	}
	if !status.Eligible {
		return GraduationResult{}, ErrNotEligible
	}

	fee := campaign.LiquidityReserve * p.graduation.FeePct / 100
	seed := campaign.LiquidityReserve - fee
	tokenAllocation := seed * pricing.TokensPerLamport

	poolID, err := p.venue.CreatePool(ctx, campaign.TokenMint, seed, tokenAllocation)
	if err != nil {
		p.logger.Error(ctx, "failed to create venue pool", err)
		return GraduationResult{}, fmt.Errorf("%w: %s", ErrVenueService, err.Error())
	}

	updated, err := p.store.MarkGraduated(ctx, store.MarkGraduatedParams{
		CampaignID:   campaignID,
		PoolID:       poolID,
		FeeLamports:  fee,
		SeedLamports: seed,
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleState) {
			return GraduationResult{}, ErrAlreadyGraduated
		}
		p.logger.Error(ctx, "failed to mark graduation", err)
		return GraduationResult{}, fmt.Errorf("failed to mark graduation: %w", err)
	}

	if err := p.notifier.CampaignGraduated(ctx, updated, poolID); err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("failed to send graduation notification: %v", err))
	}

	p.logger.Info(ctx, "campaign graduated")
	return GraduationResult{
		Campaign:     updated,
		PoolID:       poolID,
		FeeLamports:  fee,
		SeedLamports: seed,
	}, nil
}
