package conversion

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"

	"github.com/shopspring/decimal"
)

var (
	// ErrConversionFailed is returned when a withdrawal-time conversion
	// cannot complete. Purchase-time conversions never surface this.
	ErrConversionFailed = errors.New("currency conversion failed")
)

// SwapRouter executes native-to-stable swaps with slippage protection.
type SwapRouter interface {
	Swap(ctx context.Context, amountIn, minAmountOut int64, beneficiary string) (int64, error)
}

// RateSource provides the native-to-stable conversion rate.
type RateSource interface {
	SolPriceUSDC(ctx context.Context) (decimal.Decimal, error)
}

// PurchaseResult describes how a purchase's creator-funding bucket was
// settled.
type PurchaseResult struct {
	// StableAmount is USDC base units credited to the stable funding pool.
	StableAmount int64
	// NativeAmount is lamports retained in the native funding pool.
	NativeAmount int64
	// FellBack is true when a strategy wanted to convert but the swap
	// failed and the value was retained as native instead. Purchases
	// succeed regardless.
	FellBack bool
}

// WithdrawalResult describes a completed withdrawal-time conversion.
type WithdrawalResult struct {
	StableAmount int64
}

// Adapter applies a campaign's conversion strategy at purchase and
// withdrawal time.
type Adapter struct {
	router      SwapRouter
	rates       RateSource
	slippageBps int64
	logger      *observability.Logger
}

// New creates a conversion adapter.
func New(router SwapRouter, rates RateSource, slippageBps int64, logger *observability.Logger) *Adapter {
	return &Adapter{
		router:      router,
		rates:       rates,
		slippageBps: slippageBps,
		logger:      logger,
	}
}

// minStableOut converts lamports at rate and applies the slippage bound.
func (a *Adapter) minStableOut(lamports int64, rate decimal.Decimal) int64 {
	lamportsDec := decimal.NewFromInt(lamports)
	// lamports / 1e9 * rate * 1e6, then shave the slippage tolerance.
	stable := lamportsDec.
		Div(decimal.NewFromInt(pricing.LamportsPerSol)).
		Mul(rate).
		Mul(decimal.NewFromInt(pricing.TokenBaseUnits))
	bound := stable.Mul(decimal.NewFromInt(10_000 - a.slippageBps)).Div(decimal.NewFromInt(10_000))
	return bound.IntPart()
}

// ConvertPurchase settles the creator-funding bucket of one purchase
// according to the campaign's strategy. The oracle rate is supplied by the
// caller, which already validated it. Swap failures degrade to retaining
// native value and never fail the purchase.
func (a *Adapter) ConvertPurchase(ctx context.Context, strategy store.ConversionStrategy, lamports int64, rate decimal.Decimal, beneficiary string) PurchaseResult {
	if lamports <= 0 {
		return PurchaseResult{}
	}

	var toConvert int64
	switch strategy {
	case store.ConversionInstant:
		toConvert = lamports
	case store.ConversionHybrid:
		toConvert = lamports / 2
	case store.ConversionOnWithdrawal:
		return PurchaseResult{NativeAmount: lamports}
	default:
		return PurchaseResult{NativeAmount: lamports}
	}

	retained := lamports - toConvert
	if toConvert == 0 {
		return PurchaseResult{NativeAmount: retained}
	}

	stable, err := a.router.Swap(ctx, toConvert, a.minStableOut(toConvert, rate), beneficiary)
	if err != nil {
		a.logger.Warn(ctx, fmt.Sprintf("purchase swap failed, retaining %d lamports as native: %v", toConvert, err))
		return PurchaseResult{NativeAmount: lamports, FellBack: true}
	}
	return PurchaseResult{StableAmount: stable, NativeAmount: retained}
}

// ConvertForWithdrawal swaps lamports drained from the native funding pool
// at withdrawal time. Unlike purchases, a failure here aborts the
// withdrawal with funds unchanged.
func (a *Adapter) ConvertForWithdrawal(ctx context.Context, lamports int64, beneficiary string) (WithdrawalResult, error) {
	if lamports <= 0 {
		return WithdrawalResult{}, nil
	}

	rate, err := a.rates.SolPriceUSDC(ctx)
	if err != nil {
		a.logger.Error(ctx, "withdrawal conversion has no rate", err)
		return WithdrawalResult{}, fmt.Errorf("%w: %s", ErrConversionFailed, err.Error())
	}

	stable, err := a.router.Swap(ctx, lamports, a.minStableOut(lamports, rate), beneficiary)
	if err != nil {
		a.logger.Error(ctx, "withdrawal swap failed", err)
		return WithdrawalResult{}, fmt.Errorf("%w: %s", ErrConversionFailed, err.Error())
	}
	return WithdrawalResult{StableAmount: stable}, nil
}
