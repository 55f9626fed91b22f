package processor

import (
	"context"
	"errors"
	"launchfund-server/internal/conversion"
	"launchfund-server/internal/pricefeed"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBuyTokens_EarlyBird(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	rate := decimal.NewFromInt(150)
	lamports := pricing.LamportsPerSol

	// 1% fee, 10% of the remainder to trading, 80/20 split of the rest.
	const (
		wantCreator   = 712_800_000
		wantLiquidity = 178_200_000
		wantTrading   = 99_000_000
		wantFee       = 10_000_000
		wantTokens    = 1_200_000 * 1_000_000 // 1.2M tokens in base units
	)

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.oracle.EXPECT().SolPriceUSDC(gomock.Any()).Return(rate, nil)
	mocks.converter.EXPECT().
		ConvertPurchase(gomock.Any(), store.ConversionOnWithdrawal, int64(wantCreator), rate, campaign.DerivedAddress).
		Return(conversion.PurchaseResult{NativeAmount: wantCreator})
	mocks.minter.EXPECT().Mint(gomock.Any(), campaign.TokenMint, "buyer-wallet", int64(wantTokens)).Return(nil)
	mocks.store.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.ApplyPurchaseParams) (store.Campaign, error) {
			if params.Tokens != wantTokens {
				t.Errorf("tokens = %d, want %d", params.Tokens, wantTokens)
			}
			if params.CreatorNative != wantCreator || params.CreatorStable != 0 {
				t.Errorf("creator bucket = %d native / %d stable", params.CreatorNative, params.CreatorStable)
			}
			if params.LiquidityReserve != wantLiquidity {
				t.Errorf("liquidity = %d, want %d", params.LiquidityReserve, wantLiquidity)
			}
			if params.TradingPool != wantTrading {
				t.Errorf("trading = %d, want %d", params.TradingPool, wantTrading)
			}
			if params.PlatformFee != wantFee {
				t.Errorf("fee = %d, want %d", params.PlatformFee, wantFee)
			}
			updated := campaign
			updated.RaisedAmount = lamports
			return updated, nil
		})
	mocks.feed.EXPECT().PublishTrade(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, update pricefeed.Update) {
			if update.Side != "buy" || update.RaisedAmount != lamports {
				t.Errorf("unexpected feed update %+v", update)
			}
		})

	result, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", lamports)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TokensReceived != wantTokens {
		t.Errorf("tokens received = %d, want %d", result.TokensReceived, wantTokens)
	}
	if result.BonusPct != 120 {
		t.Errorf("bonus = %d, want 120", result.BonusPct)
	}
}

func TestBuyTokens_BaseRateAfterThreshold(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.RaisedAmount = pricing.EarlyBirdThresholdLamports

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.oracle.EXPECT().SolPriceUSDC(gomock.Any()).Return(decimal.NewFromInt(150), nil)
	mocks.converter.EXPECT().
		ConvertPurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(conversion.PurchaseResult{NativeAmount: 712_800_000})
	mocks.minter.EXPECT().Mint(gomock.Any(), campaign.TokenMint, "buyer-wallet", int64(1_000_000*1_000_000)).Return(nil)
	mocks.store.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).Return(campaign, nil)
	mocks.feed.EXPECT().PublishTrade(gomock.Any(), gomock.Any())

	result, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", pricing.LamportsPerSol)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.BonusPct != 100 {
		t.Errorf("bonus = %d, want 100", result.BonusPct)
	}
}

func TestBuyTokens_OracleFailureRejectsPurchase(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.oracle.EXPECT().SolPriceUSDC(gomock.Any()).Return(decimal.Zero, errors.New("oracle down"))

	_, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", pricing.LamportsPerSol)
	if !errors.Is(err, ErrPriceFeed) {
		t.Errorf("expected ErrPriceFeed, got %v", err)
	}
}

func TestBuyTokens_SwapFallbackStillSucceeds(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.ConversionStrategy = store.ConversionInstant

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.oracle.EXPECT().SolPriceUSDC(gomock.Any()).Return(decimal.NewFromInt(150), nil)
	mocks.converter.EXPECT().
		ConvertPurchase(gomock.Any(), store.ConversionInstant, int64(712_800_000), gomock.Any(), campaign.DerivedAddress).
		Return(conversion.PurchaseResult{NativeAmount: 712_800_000, FellBack: true})
	mocks.minter.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mocks.store.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.ApplyPurchaseParams) (store.Campaign, error) {
			// The fallback is observable as native retention, never an error.
			if params.CreatorStable != 0 || params.CreatorNative != 712_800_000 {
				t.Errorf("fallback buckets = %d stable / %d native", params.CreatorStable, params.CreatorNative)
			}
			return campaign, nil
		})
	mocks.feed.EXPECT().PublishTrade(gomock.Any(), gomock.Any())

	if _, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", pricing.LamportsPerSol); err != nil {
		t.Fatalf("expected fallback purchase to succeed, got %v", err)
	}
}

func TestBuyTokens_StateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*store.Campaign)
		wantErr error
	}{
		{"graduated", func(c *store.Campaign) { c.Graduated = true }, ErrAlreadyGraduated},
		{"inactive", func(c *store.Campaign) { c.IsActive = false }, ErrCampaignNotActive},
		{"ended", func(c *store.Campaign) { c.EndsAt = time.Now().Add(-time.Hour) }, ErrCampaignEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mocks := newTestProcessor(t)
			campaign := testCampaign()
			tt.mutate(&campaign)

			mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)

			_, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", pricing.LamportsPerSol)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBuyTokens_InvalidAmount(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)

	_, err := p.BuyTokens(context.Background(), campaign.ID, "buyer-wallet", 0)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestSellTokens_Success(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.RaisedAmount = pricing.LamportsPerSol
	campaign.TradingPool = 99_000_000

	// 12,000 tokens at the early-bird tier return 0.01 SOL.
	const (
		sellTokens   = 12_000 * 1_000_000
		wantProceeds = 10_000_000
	)

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.store.EXPECT().GetTokenBalance(gomock.Any(), campaign.ID, "seller-wallet").
		Return(store.TokenBalance{Balance: sellTokens * 2}, nil)
	mocks.minter.EXPECT().Burn(gomock.Any(), campaign.TokenMint, "seller-wallet", int64(sellTokens)).Return(nil)
	mocks.store.EXPECT().ApplySale(gomock.Any(), store.ApplySaleParams{
		CampaignID: campaign.ID,
		Seller:     "seller-wallet",
		Tokens:     sellTokens,
		Lamports:   wantProceeds,
	}).Return(campaign, nil)
	mocks.feed.EXPECT().PublishTrade(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, update pricefeed.Update) {
			if update.Side != "sell" {
				t.Errorf("side = %s, want sell", update.Side)
			}
		})

	result, err := p.SellTokens(context.Background(), campaign.ID, "seller-wallet", sellTokens)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ProceedsLamports != wantProceeds {
		t.Errorf("proceeds = %d, want %d", result.ProceedsLamports, wantProceeds)
	}
}

func TestSellTokens_InsufficientBalance(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.RaisedAmount = pricing.LamportsPerSol
	campaign.TradingPool = 99_000_000

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.store.EXPECT().GetTokenBalance(gomock.Any(), campaign.ID, "seller-wallet").
		Return(store.TokenBalance{Balance: 1}, nil)

	_, err := p.SellTokens(context.Background(), campaign.ID, "seller-wallet", 12_000*1_000_000)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestSellTokens_InsufficientLiquidity(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.RaisedAmount = pricing.LamportsPerSol
	campaign.TradingPool = 99_000_000

	// The full early-bird position is worth 1 SOL, far above the pool.
	const sellTokens = 1_200_000 * 1_000_000

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mocks.store.EXPECT().GetTokenBalance(gomock.Any(), campaign.ID, "seller-wallet").
		Return(store.TokenBalance{Balance: sellTokens}, nil)

	_, err := p.SellTokens(context.Background(), campaign.ID, "seller-wallet", sellTokens)
	if !errors.Is(err, ErrInsufficientLiquidity) {
		t.Errorf("expected ErrInsufficientLiquidity, got %v", err)
	}
}

func TestSellTokens_GraduatedCampaignRejects(t *testing.T) {
	p, mocks := newTestProcessor(t)
	campaign := testCampaign()
	campaign.Graduated = true

	mocks.store.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)

	_, err := p.SellTokens(context.Background(), campaign.ID, "seller-wallet", 1000)
	if !errors.Is(err, ErrAlreadyGraduated) {
		t.Errorf("expected ErrAlreadyGraduated, got %v", err)
	}
}

func TestSellTokens_NoRoundTripProfit(t *testing.T) {
	// Buying then selling the same tokens at the same tier can never
	// return more lamports than were paid in.
	for _, lamports := range []int64{1, 999, 1_000_000, pricing.LamportsPerSol} {
		tokens, err := pricing.TokensFor(lamports, 0)
		if err != nil {
			continue
		}
		proceeds := pricing.SellReturn(tokens, 0)
		if proceeds > lamports {
			t.Errorf("round trip profit: paid %d, got back %d", lamports, proceeds)
		}
	}
}
