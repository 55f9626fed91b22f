package pricing

// Split is the exact four-way allocation of a gross purchase. The buckets
// always sum to the gross amount; integer-division remainders are assigned
// to the platform fee, never dropped.
type Split struct {
	CreatorFunding   int64
	LiquidityReserve int64
	TradingPool      int64
	PlatformFee      int64
}

// AllocationConfig holds the platform-wide allocation percentages. The
// funding ratio is per-campaign and passed to Allocate directly.
type AllocationConfig struct {
	PlatformFeePct int64
	TradingPoolPct int64
}

// Allocate splits a gross purchase amount into the four funding buckets.
// The platform fee is taken off the top, the trading pool takes its share of
// the remainder, and the funding ratio splits what is left between creator
// funding and the liquidity reserve.
func Allocate(gross int64, fundingRatio int64, cfg AllocationConfig) Split {
	if gross <= 0 {
		return Split{}
	}

	fee := gross * cfg.PlatformFeePct / 100
	afterFee := gross - fee

	trading := afterFee * cfg.TradingPoolPct / 100
	afterTrading := afterFee - trading

	creator := afterTrading * fundingRatio / 100
	liquidity := afterTrading * (100 - fundingRatio) / 100

	// Remainder from integer division goes to the fee bucket so the split
	// is exact for every purchase.
	remainder := gross - fee - trading - creator - liquidity

	return Split{
		CreatorFunding:   creator,
		LiquidityReserve: liquidity,
		TradingPool:      trading,
		PlatformFee:      fee + remainder,
	}
}

// Total returns the sum of the four buckets.
func (s Split) Total() int64 {
	return s.CreatorFunding + s.LiquidityReserve + s.TradingPool + s.PlatformFee
}
