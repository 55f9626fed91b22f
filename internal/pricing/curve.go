package pricing

import "errors"

// The bonding curve is a two-tier step function keyed on the cumulative
// raised amount, not a continuous curve. Purchases below the early-bird
// threshold mint 20% extra tokens; everything else mints at the base rate.
// Reward and milestone math elsewhere assumes these discrete tiers.

const (
	// LamportsPerSol is the number of base units in one SOL.
	LamportsPerSol int64 = 1_000_000_000

	// TokenBaseUnits is the number of base units in one campaign token
	// (tokens are minted with 6 decimals).
	TokenBaseUnits int64 = 1_000_000

	// TokensPerLamport is the base issuance rate: 1,000,000 tokens per SOL,
	// expressed in token base units per lamport.
	TokensPerLamport int64 = 1000

	// EarlyBirdThresholdLamports is the raised amount below which the
	// early-bird bonus applies (10 SOL).
	EarlyBirdThresholdLamports int64 = 10 * LamportsPerSol

	earlyBirdBonusPct int64 = 120
	baseBonusPct      int64 = 100

	// BaseDisplayPriceLamports is the floor of the displayed token price.
	BaseDisplayPriceLamports int64 = 1000
)

var (
	// ErrInvalidAmount is returned for non-positive purchase amounts.
	ErrInvalidAmount = errors.New("purchase amount must be positive")

	// ErrDegeneratePurchase is returned when a purchase would mint less
	// than one token base unit.
	ErrDegeneratePurchase = errors.New("purchase too small to mint any tokens")
)

// BonusRate returns the issuance multiplier (percent) for the tier the
// campaign is currently in.
func BonusRate(raisedLamports int64) int64 {
	if raisedLamports < EarlyBirdThresholdLamports {
		return earlyBirdBonusPct
	}
	return baseBonusPct
}

// TokensFor computes the token base units minted for a contribution of
// lamports given the campaign's cumulative raised amount.
func TokensFor(lamports, raisedLamports int64) (int64, error) {
	if lamports <= 0 {
		return 0, ErrInvalidAmount
	}
	baseTokens := lamports * TokensPerLamport
	tokens := baseTokens * BonusRate(raisedLamports) / 100
	if tokens <= 0 {
		return 0, ErrDegeneratePurchase
	}
	return tokens, nil
}

// SellReturn computes the lamports credited for burning tokens at the
// campaign's current tier. Integer division floors the result, so a
// buy-then-sell round trip can never return more than was paid in.
func SellReturn(tokens, raisedLamports int64) int64 {
	if tokens <= 0 {
		return 0
	}
	return tokens * 100 / (TokensPerLamport * BonusRate(raisedLamports))
}

// DisplayPrice returns the advertised token price in lamports. The price
// steps up by the base price for every whole SOL raised.
func DisplayPrice(raisedLamports int64) int64 {
	multiplier := 1 + raisedLamports/LamportsPerSol
	return BaseDisplayPriceLamports * multiplier
}
