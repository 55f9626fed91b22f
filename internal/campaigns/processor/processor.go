package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"launchfund-server/internal/conversion"
	"launchfund-server/internal/locking"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricefeed"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetActiveCampaignByCreatorAndName(ctx context.Context, creator, name string) (store.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error)
	GetTokenBalance(ctx context.Context, campaignID uuid.UUID, wallet string) (store.TokenBalance, error)
	ApplyPurchase(ctx context.Context, params store.ApplyPurchaseParams) (store.Campaign, error)
	ApplySale(ctx context.Context, params store.ApplySaleParams) (store.Campaign, error)
	ApplyWithdrawal(ctx context.Context, params store.ApplyWithdrawalParams) (store.Campaign, error)
	MarkGraduated(ctx context.Context, params store.MarkGraduatedParams) (store.Campaign, error)
}

// PriceOracle provides currency conversion rates.
type PriceOracle interface {
	SolPriceUSD(ctx context.Context) (decimal.Decimal, error)
	SolPriceUSDC(ctx context.Context) (decimal.Decimal, error)
}

// Converter settles the creator-funding bucket per the campaign's strategy.
type Converter interface {
	ConvertPurchase(ctx context.Context, strategy store.ConversionStrategy, lamports int64, rate decimal.Decimal, beneficiary string) conversion.PurchaseResult
	ConvertForWithdrawal(ctx context.Context, lamports int64, beneficiary string) (conversion.WithdrawalResult, error)
}

// TokenMinter issues and burns campaign tokens.
type TokenMinter interface {
	Mint(ctx context.Context, mint, wallet string, amount int64) error
	Burn(ctx context.Context, mint, wallet string, amount int64) error
}

// LiquidityVenue creates external trading pools at graduation.
type LiquidityVenue interface {
	CreatePool(ctx context.Context, tokenMint string, nativeAmount, tokenAllocation int64) (string, error)
}

// Notifier delivers lifecycle notifications. Failures are logged, never
// surfaced.
type Notifier interface {
	WithdrawalProcessed(ctx context.Context, campaign store.Campaign, milestoneName string, amountLamports int64) error
	CampaignGraduated(ctx context.Context, campaign store.Campaign, poolID string) error
}

// TradeFeed broadcasts executed trades to live subscribers.
type TradeFeed interface {
	PublishTrade(ctx context.Context, update pricefeed.Update)
}

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignNotActive     = errors.New("campaign is not active")
	ErrCampaignEnded         = errors.New("campaign has ended")
	ErrAlreadyGraduated      = errors.New("campaign has already graduated")
	ErrNotEligible           = errors.New("campaign does not meet graduation criteria")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCampaignParams = errors.New("invalid campaign parameters")
	ErrNameTaken             = errors.New("active campaign with this name already exists")
	ErrUnauthorized          = errors.New("unauthorized access to campaign")
	ErrInsufficientBalance   = errors.New("insufficient token balance")
	ErrInsufficientLiquidity = errors.New("insufficient campaign liquidity")
	ErrPriceFeed             = errors.New("price feed unavailable")
	ErrSwapFailed            = errors.New("currency swap failed")
	ErrMilestoneLocked       = errors.New("milestone is still time-locked")
	ErrNothingToWithdraw     = errors.New("nothing to withdraw")
	ErrMintService           = errors.New("token mint service failed")
	ErrVenueService          = errors.New("liquidity venue service failed")
)

// GraduationThresholds are the criteria for moving a campaign's token to
// the external liquidity venue.
type GraduationThresholds struct {
	MinMarketCapUSD decimal.Decimal
	MinLiquiditySOL decimal.Decimal
	// FeePct is the percentage of the liquidity reserve retained as the
	// graduation fee.
	FeePct int64
}

type CampaignProcessor struct {
	store      CampaignStore
	oracle     PriceOracle
	converter  Converter
	minter     TokenMinter
	venue      LiquidityVenue
	notifier   Notifier
	feed       TradeFeed
	locks      *locking.KeyedMutex
	alloc      pricing.AllocationConfig
	graduation GraduationThresholds
	logger     *observability.Logger
}

func New(
	store CampaignStore,
	oracle PriceOracle,
	converter Converter,
	minter TokenMinter,
	venue LiquidityVenue,
	notifier Notifier,
	feed TradeFeed,
	alloc pricing.AllocationConfig,
	graduation GraduationThresholds,
	logger *observability.Logger,
) CampaignProcessor {
	return CampaignProcessor{
		store:      store,
		oracle:     oracle,
		converter:  converter,
		minter:     minter,
		venue:      venue,
		notifier:   notifier,
		feed:       feed,
		locks:      locking.NewKeyedMutex(),
		alloc:      alloc,
		graduation: graduation,
		logger:     logger,
	}
}

// MilestoneParams is one milestone of a new campaign's schedule.
type MilestoneParams struct {
	Name           string
	Description    string
	RequiredAmount int64
	UnlocksAt      time.Time
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Creator            string
	Name               string
	Description        string
	TargetAmount       int64
	FundingRatio       int64
	TotalSupply        int64
	ConversionStrategy store.ConversionStrategy
	EndsAt             time.Time
	Milestones         []MilestoneParams
}

func (params CreateCampaignParams) validate() error {
	if params.Name == "" || len(params.Name) > 64 {
		return fmt.Errorf("%w: name must be 1-64 characters", ErrInvalidCampaignParams)
	}
	if params.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive", ErrInvalidCampaignParams)
	}
	if params.FundingRatio < 0 || params.FundingRatio > 100 {
		return fmt.Errorf("%w: funding ratio must be between 0 and 100", ErrInvalidCampaignParams)
	}
	if params.TotalSupply <= 0 {
		return fmt.Errorf("%w: total supply must be positive", ErrInvalidCampaignParams)
	}
	if !params.ConversionStrategy.Valid() {
		return fmt.Errorf("%w: unknown conversion strategy %q", ErrInvalidCampaignParams, params.ConversionStrategy)
	}
	if !params.EndsAt.After(time.Now()) {
		return fmt.Errorf("%w: end time must be in the future", ErrInvalidCampaignParams)
	}
	if len(params.Milestones) == 0 {
		return fmt.Errorf("%w: at least one milestone is required", ErrInvalidCampaignParams)
	}
	var prev int64
	for i, m := range params.Milestones {
		if m.RequiredAmount <= prev {
			return fmt.Errorf("%w: milestone %d required amount must exceed the previous milestone", ErrInvalidCampaignParams, i)
		}
		prev = m.RequiredAmount
	}
	return nil
}

// deriveAddress produces the campaign's deterministic settlement address
// from its creator and name.
func deriveAddress(prefix, creator, name string) string {
	h := sha3.New256()
	h.Write([]byte(prefix))
	h.Write([]byte(creator))
	h.Write([]byte(name))
	return hex.EncodeToString(h.Sum(nil))
}

// CreateCampaign validates and persists a new campaign with its milestone
// schedule. The (creator, name) pair identifies at most one active campaign.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator", Value: params.Creator},
		observability.Field{Key: "campaign_name", Value: params.Name},
	)

	if err := params.validate(); err != nil {
		return store.Campaign{}, err
	}

	_, err := p.store.GetActiveCampaignByCreatorAndName(ctx, params.Creator, params.Name)
	if err == nil {
		return store.Campaign{}, ErrNameTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check for existing campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to check for existing campaign: %w", err)
	}

	storeParams := store.CreateCampaignParams{
		Creator:            params.Creator,
		Name:               params.Name,
		Description:        params.Description,
		DerivedAddress:     deriveAddress("campaign", params.Creator, params.Name),
		TokenMint:          deriveAddress("mint", params.Creator, params.Name),
		TargetAmount:       params.TargetAmount,
		FundingRatio:       params.FundingRatio,
		TotalSupply:        params.TotalSupply,
		ConversionStrategy: params.ConversionStrategy,
		EndsAt:             params.EndsAt,
	}
	for _, m := range params.Milestones {
		storeParams.Milestones = append(storeParams.Milestones, store.CreateMilestoneParams{
			Name:           m.Name,
			Description:    m.Description,
			RequiredAmount: m.RequiredAmount,
			UnlocksAt:      m.UnlocksAt,
		})
	}

	campaign, err := p.store.CreateCampaign(ctx, storeParams)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Campaign{}, ErrNameTaken
		}
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// GetCampaign fetches one campaign with its milestones.
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaigns returns a page of campaigns, newest first.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	campaigns, err := p.store.ListCampaigns(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// PriceQuote is the advertised state of a campaign's curve.
type PriceQuote struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	PriceLamports int64     `json:"price_lamports"`
	BonusPct      int64     `json:"bonus_pct"`
	RaisedAmount  int64     `json:"raised_amount"`
	Graduated     bool      `json:"graduated"`
}

// GetTokenPrice quotes the current display price and issuance tier.
func (p *CampaignProcessor) GetTokenPrice(ctx context.Context, campaignID uuid.UUID) (PriceQuote, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PriceQuote{}, ErrCampaignNotFound
		}
		return PriceQuote{}, fmt.Errorf("failed to get campaign: %w", err)
	}

	return PriceQuote{
		CampaignID:    campaign.ID,
		PriceLamports: pricing.DisplayPrice(campaign.RaisedAmount),
		BonusPct:      pricing.BonusRate(campaign.RaisedAmount),
		RaisedAmount:  campaign.RaisedAmount,
		Graduated:     campaign.Graduated,
	}, nil
}

// GetTokenBalance returns a wallet's holdings, treating no record as zero.
func (p *CampaignProcessor) GetTokenBalance(ctx context.Context, campaignID uuid.UUID, wallet string) (store.TokenBalance, error) {
	balance, err := p.store.GetTokenBalance(ctx, campaignID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TokenBalance{CampaignID: campaignID, Wallet: wallet}, nil
		}
		return store.TokenBalance{}, fmt.Errorf("failed to get token balance: %w", err)
	}
	return balance, nil
}

// tradableState rejects operations on campaigns that cannot trade.
func tradableState(campaign store.Campaign, now time.Time) error {
	if campaign.Graduated {
		return ErrAlreadyGraduated
	}
	if !campaign.IsActive {
		return ErrCampaignNotActive
	}
	if now.After(campaign.EndsAt) {
		return ErrCampaignEnded
	}
	return nil
}
