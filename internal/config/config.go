package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database      DatabaseConfig
	Auth          AuthConfig
	Collaborators CollaboratorsConfig
	Funding       FundingConfig
	Graduation    GraduationConfig
	Server        ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// CollaboratorsConfig holds endpoints and keys for the external services the
// ledger depends on: price oracle, swap router, token mint authority,
// liquidity venue and the notification mailer.
type CollaboratorsConfig struct {
	PriceOracleURL     string
	SwapRouterURL      string
	TokenMintURL       string
	LiquidityVenueURL  string
	ResendAPIKey       string
	NotificationSender string
	// NotificationInbox receives creator-facing lifecycle emails until
	// per-wallet contact addresses exist.
	NotificationInbox string
	WebAppURI         string
}

// FundingConfig holds the purchase allocation and conversion parameters.
type FundingConfig struct {
	PlatformFeePct         int64 // percent of gross taken off the top
	TradingPoolPct         int64 // percent of the post-fee remainder reserved for sell-side liquidity
	SlippageBps            int64 // acceptable slippage bound for swaps
	OracleMaxStalenessSecs int64
}

// GraduationConfig holds the thresholds for moving a campaign to the
// external liquidity venue.
type GraduationConfig struct {
	MinMarketCapUSD decimal.Decimal
	MinLiquiditySOL decimal.Decimal
	FeePct          int64 // percent of the liquidity reserve kept as graduation fee
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Collaborator configuration
	if cfg.Collaborators.PriceOracleURL, err = requireEnv("PRICE_ORACLE_URL"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.SwapRouterURL, err = requireEnv("SWAP_ROUTER_URL"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.TokenMintURL, err = requireEnv("TOKEN_MINT_URL"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.LiquidityVenueURL, err = requireEnv("LIQUIDITY_VENUE_URL"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.NotificationSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Collaborators.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	cfg.Collaborators.NotificationInbox = getEnvWithDefault("NOTIFICATION_INBOX", "")
	if cfg.Collaborators.NotificationInbox == "" {
		cfg.Collaborators.NotificationInbox = cfg.Collaborators.NotificationSender
	}

	// Funding parameters
	if cfg.Funding.PlatformFeePct, err = parseIntEnv("PLATFORM_FEE_PCT", "1"); err != nil {
		return nil, err
	}
	if cfg.Funding.TradingPoolPct, err = parseIntEnv("TRADING_POOL_PCT", "10"); err != nil {
		return nil, err
	}
	if cfg.Funding.SlippageBps, err = parseIntEnv("SWAP_SLIPPAGE_BPS", "100"); err != nil {
		return nil, err
	}
	if cfg.Funding.OracleMaxStalenessSecs, err = parseIntEnv("ORACLE_MAX_STALENESS_SECS", "60"); err != nil {
		return nil, err
	}

	// Graduation thresholds
	minMarketCap := getEnvWithDefault("GRADUATION_MIN_MARKET_CAP_USD", "69000")
	cfg.Graduation.MinMarketCapUSD, err = decimal.NewFromString(minMarketCap)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GRADUATION_MIN_MARKET_CAP_USD: %w", err)
	}
	minLiquidity := getEnvWithDefault("GRADUATION_MIN_LIQUIDITY_SOL", "8")
	cfg.Graduation.MinLiquiditySOL, err = decimal.NewFromString(minLiquidity)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GRADUATION_MIN_LIQUIDITY_SOL: %w", err)
	}
	if cfg.Graduation.FeePct, err = parseIntEnv("GRADUATION_FEE_PCT", "5"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseIntEnv retrieves an integer environment variable with a default
func parseIntEnv(key, defaultValue string) (int64, error) {
	value, err := strconv.ParseInt(getEnvWithDefault(key, defaultValue), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
