package store

// ConversionStrategy governs when a campaign's native-currency intake is
// converted to the stable settlement currency. Fixed at campaign creation.
type ConversionStrategy string

const (
	// ConversionInstant converts every purchase to the stable currency at
	// purchase time.
	ConversionInstant ConversionStrategy = "instant"
	// ConversionHybrid converts roughly half of each purchase at purchase
	// time and retains the rest as native currency.
	ConversionHybrid ConversionStrategy = "hybrid"
	// ConversionOnWithdrawal retains purchases as native currency and
	// defers conversion to withdrawal time.
	ConversionOnWithdrawal ConversionStrategy = "on_withdrawal"
)

// Valid reports whether s is a known conversion strategy.
func (s ConversionStrategy) Valid() bool {
	switch s {
	case ConversionInstant, ConversionHybrid, ConversionOnWithdrawal:
		return true
	}
	return false
}

// RewardMode selects how an airdrop pool pays out.
type RewardMode string

const (
	RewardModePerTask   RewardMode = "per_task"
	RewardModeAggregate RewardMode = "aggregate"
)

// Valid reports whether m is a known reward mode.
func (m RewardMode) Valid() bool {
	return m == RewardModePerTask || m == RewardModeAggregate
}

// CompletionStatus is the lifecycle of a task completion record.
// Pending transitions to exactly one of the two terminal states.
type CompletionStatus string

const (
	CompletionPending  CompletionStatus = "pending"
	CompletionApproved CompletionStatus = "approved"
	CompletionRejected CompletionStatus = "rejected"
)
