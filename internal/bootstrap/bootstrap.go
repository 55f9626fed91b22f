package bootstrap

import (
	"context"
	"fmt"
	"launchfund-server/internal/auth"
	"launchfund-server/internal/config"
	"launchfund-server/internal/conversion"
	"launchfund-server/internal/email"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/pricefeed"
	"launchfund-server/internal/pricing"
	"launchfund-server/internal/store"
	"time"

	airdropHandler "launchfund-server/internal/airdrops/handler"
	airdropProcessor "launchfund-server/internal/airdrops/processor"
	campaignHandler "launchfund-server/internal/campaigns/handler"
	campaignProcessor "launchfund-server/internal/campaigns/processor"
	"launchfund-server/internal/clients/liquidityvenue"
	"launchfund-server/internal/clients/mail"
	"launchfund-server/internal/clients/priceoracle"
	"launchfund-server/internal/clients/swaprouter"
	"launchfund-server/internal/clients/tokenmint"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	Authenticator *auth.Authenticator
	TradeFeed     *pricefeed.Hub

	// Handlers
	CampaignHandler campaignHandler.Handler
	AirdropHandler  airdropHandler.Handler
	FeedHandler     pricefeed.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Authenticator = auth.New(cfg.Auth.JWTSecret, logger)

	// Initialize external collaborator clients
	oracleClient := priceoracle.NewClient(
		cfg.Collaborators.PriceOracleURL,
		time.Duration(cfg.Funding.OracleMaxStalenessSecs)*time.Second,
		logger,
	)
	swapClient := swaprouter.NewClient(cfg.Collaborators.SwapRouterURL, logger)
	mintClient := tokenmint.NewClient(cfg.Collaborators.TokenMintURL, logger)
	venueClient := liquidityvenue.NewClient(cfg.Collaborators.LiquidityVenueURL, logger)

	mailClient, err := mail.NewResendClient(cfg.Collaborators.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Initialize email service and notification adapter
	emailService := email.New(mailClient, cfg.Collaborators.NotificationSender, cfg.Collaborators.WebAppURI, logger)
	notifier := email.NewNotifier(emailService, cfg.Collaborators.NotificationInbox)

	// Initialize currency conversion adapter
	converter := conversion.New(swapClient, oracleClient, cfg.Funding.SlippageBps, logger)

	// Initialize the live trade feed
	deps.TradeFeed = pricefeed.NewHub(logger)
	deps.FeedHandler = pricefeed.NewHandler(deps.TradeFeed, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(
		&deps.Store,
		oracleClient,
		converter,
		mintClient,
		venueClient,
		notifier,
		deps.TradeFeed,
		pricing.AllocationConfig{
			PlatformFeePct: cfg.Funding.PlatformFeePct,
			TradingPoolPct: cfg.Funding.TradingPoolPct,
		},
		campaignProcessor.GraduationThresholds{
			MinMarketCapUSD: cfg.Graduation.MinMarketCapUSD,
			MinLiquiditySOL: cfg.Graduation.MinLiquiditySOL,
			FeePct:          cfg.Graduation.FeePct,
		},
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize airdrop processor and handler
	airdropProc := airdropProcessor.New(&deps.Store, mintClient, notifier, logger)
	deps.AirdropHandler = airdropHandler.New(airdropProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Store.Close()
}
