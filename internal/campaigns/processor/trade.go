package processor

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricefeed"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// BuyResult is the outcome of a completed purchase.
type BuyResult struct {
	Campaign          store.Campaign `json:"campaign"`
	TokensReceived    int64          `json:"tokens_received"`
	PricePaidLamports int64          `json:"price_paid_lamports"`
	BonusPct          int64          `json:"bonus_pct"`
}

// BuyTokens executes one bonding-curve purchase: tokens are minted at the
// tier the campaign is in, the contribution is split across the four
// buckets, and the creator-funding bucket is settled per the campaign's
// conversion strategy. A failed swap degrades to retaining native value; a
// missing oracle rate fails the purchase outright.
func (p *CampaignProcessor) BuyTokens(ctx context.Context, campaignID uuid.UUID, buyer string, lamports int64) (BuyResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "buyer", Value: buyer},
		observability.Field{Key: "lamports", Value: lamports},
	)

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BuyResult{}, ErrCampaignNotFound
		}
		return BuyResult{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if err := tradableState(campaign, time.Now()); err != nil {
		return BuyResult{}, err
	}

	bonus := pricing.BonusRate(campaign.RaisedAmount)
	tokens, err := pricing.TokensFor(lamports, campaign.RaisedAmount)
	if err != nil {
		return BuyResult{}, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}

	rate, err := p.oracle.SolPriceUSDC(ctx)
	if err != nil {
		p.logger.Error(ctx, "purchase rejected, no conversion rate", err)
		return BuyResult{}, fmt.Errorf("%w: %s", ErrPriceFeed, err.Error())
	}

	split := pricing.Allocate(lamports, campaign.FundingRatio, p.alloc)
	settled := p.converter.ConvertPurchase(ctx, campaign.ConversionStrategy, split.CreatorFunding, rate, campaign.DerivedAddress)
	if settled.FellBack {
		p.logger.Warn(ctx, "purchase conversion fell back to native retention")
	}

	if err := p.minter.Mint(ctx, campaign.TokenMint, buyer, tokens); err != nil {
		p.logger.Error(ctx, "failed to mint purchase tokens", err)
		return BuyResult{}, fmt.Errorf("%w: %s", ErrMintService, err.Error())
	}

	updated, err := p.store.ApplyPurchase(ctx, store.ApplyPurchaseParams{
		CampaignID:       campaignID,
		Buyer:            buyer,
		Lamports:         lamports,
		Tokens:           tokens,
		CreatorStable:    settled.StableAmount,
		CreatorNative:    settled.NativeAmount,
		LiquidityReserve: split.LiquidityReserve,
		TradingPool:      split.TradingPool,
		PlatformFee:      split.PlatformFee,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist purchase", err)
		return BuyResult{}, fmt.Errorf("failed to persist purchase: %w", err)
	}

	p.feed.PublishTrade(ctx, pricefeed.Update{
		CampaignID:    campaignID,
		Side:          "buy",
		Lamports:      lamports,
		Tokens:        tokens,
		PriceLamports: pricing.DisplayPrice(updated.RaisedAmount),
		RaisedAmount:  updated.RaisedAmount,
		At:            time.Now().UTC(),
	})

	p.logger.Info(ctx, "purchase executed")
	return BuyResult{
		Campaign:          updated,
		TokensReceived:    tokens,
		PricePaidLamports: lamports,
		BonusPct:          bonus,
	}, nil
}

// SellResult is the outcome of a completed sale.
type SellResult struct {
	Campaign         store.Campaign `json:"campaign"`
	TokensSold       int64          `json:"tokens_sold"`
	ProceedsLamports int64          `json:"proceeds_lamports"`
}

// SellTokens burns a holder's tokens and credits the curve's sell-side
// value from the trading pool. Sales stay open after the funding target and
// the end date; only graduation closes the curve.
func (p *CampaignProcessor) SellTokens(ctx context.Context, campaignID uuid.UUID, seller string, tokens int64) (SellResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "seller", Value: seller},
		observability.Field{Key: "tokens", Value: tokens},
	)

	if tokens <= 0 {
		return SellResult{}, fmt.Errorf("%w: token amount must be positive", ErrInvalidAmount)
	}

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SellResult{}, ErrCampaignNotFound
		}
		return SellResult{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Graduated {
		return SellResult{}, ErrAlreadyGraduated
	}
	if !campaign.IsActive {
		return SellResult{}, ErrCampaignNotActive
	}

	balance, err := p.store.GetTokenBalance(ctx, campaignID, seller)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SellResult{}, ErrInsufficientBalance
		}
		return SellResult{}, fmt.Errorf("failed to get token balance: %w", err)
	}
	if balance.Balance < tokens {
		return SellResult{}, ErrInsufficientBalance
	}

	proceeds := pricing.SellReturn(tokens, campaign.RaisedAmount)
	if proceeds <= 0 {
		return SellResult{}, fmt.Errorf("%w: sale too small to return any value", ErrInvalidAmount)
	}
	if proceeds > campaign.TradingPool || proceeds > campaign.RaisedAmount {
		return SellResult{}, ErrInsufficientLiquidity
	}

	if err := p.minter.Burn(ctx, campaign.TokenMint, seller, tokens); err != nil {
		p.logger.Error(ctx, "failed to burn sold tokens", err)
		return SellResult{}, fmt.Errorf("%w: %s", ErrMintService, err.Error())
	}

	updated, err := p.store.ApplySale(ctx, store.ApplySaleParams{
		CampaignID: campaignID,
		Seller:     seller,
		Tokens:     tokens,
		Lamports:   proceeds,
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleState) {
			return SellResult{}, ErrInsufficientLiquidity
		}
		p.logger.Error(ctx, "failed to persist sale", err)
		return SellResult{}, fmt.Errorf("failed to persist sale: %w", err)
	}

	p.feed.PublishTrade(ctx, pricefeed.Update{
		CampaignID:    campaignID,
		Side:          "sell",
		Lamports:      proceeds,
		Tokens:        tokens,
		PriceLamports: pricing.DisplayPrice(updated.RaisedAmount),
		RaisedAmount:  updated.RaisedAmount,
		At:            time.Now().UTC(),
	})

	p.logger.Info(ctx, "sale executed")
	return SellResult{
		Campaign:         updated,
		TokensSold:       tokens,
		ProceedsLamports: proceeds,
	}, nil
}
