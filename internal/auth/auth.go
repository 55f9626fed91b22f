package auth

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// WalletContextKey is the gin context key holding the authenticated wallet
// address.
const WalletContextKey = "Wallet-Address"

var (
	ErrExpiredToken    = errors.New("token has expired")
	ErrInvalidJWTToken = errors.New("invalid token")
	ErrParseJWTToken   = errors.New("failed to parse token")
)

// Authenticator validates bearer tokens whose subject is a wallet address.
type Authenticator struct {
	jwtSecret string
	logger    *observability.Logger
}

// New creates an Authenticator.
func New(jwtSecret string, logger *observability.Logger) *Authenticator {
	return &Authenticator{jwtSecret: jwtSecret, logger: logger}
}

// GenerateToken signs a token for a wallet, used by tests and tooling.
func (a *Authenticator) GenerateToken(wallet string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": wallet,
		"iss": "launchfund-server",
		"aud": "launchfund-server",
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.jwtSecret))
}

// ValidateToken parses a bearer token and returns the wallet subject.
func (a *Authenticator) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.logger.Error(ctx, "token expired", err)
			return "", ErrExpiredToken
		}
		a.logger.Error(ctx, "failed to parse token", err)
		return "", ErrParseJWTToken
	}
	if !t.Valid {
		return "", ErrInvalidJWTToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidJWTToken
	}
	return sub, nil
}

// HandleJWTMiddleware authenticates requests and stores the wallet address
// in the gin context.
func (a *Authenticator) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
	wallet, err := a.ValidateToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set(WalletContextKey, wallet)
	c.Next()
}

// WalletFromContext extracts the authenticated wallet set by the middleware.
func WalletFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(WalletContextKey)
	if !ok {
		return "", false
	}
	wallet, ok := value.(string)
	if !ok || wallet == "" {
		return "", false
	}
	return wallet, true
}
