package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Verifier validates a presented access token
type Verifier interface {
	Verify(token string) (Identity, error)
}

// Claims carried by both access and refresh tokens. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens. Access and refresh tokens
// use separate secrets so one can never be presented as the other.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenManager creates a TokenManager
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock replaces the time source; used by tests
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// IssueAccessToken signs a short-lived token for userID
func (m *TokenManager) IssueAccessToken(userID string) (string, error) {
	return m.issue(userID, m.accessSecret, m.accessTTL)
}

// IssueRefreshToken signs a long-lived token for userID
func (m *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return m.issue(userID, m.refreshSecret, m.refreshTTL)
}

// Verify validates an access token
func (m *TokenManager) Verify(token string) (Identity, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefresh validates a refresh token
func (m *TokenManager) VerifyRefresh(token string) (Identity, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) issue(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			Issuer:    TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) verify(token string, secret []byte) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrTokenMissing
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, domain.ErrTokenExpired
		}
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", domain.ErrTokenInvalid)
	}

	return Identity{UserID: claims.Subject}, nil
}
