package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("access", "refresh", time.Hour, 24*time.Hour)

	access, err := m.IssueAccessToken("user-1")
	require.NoError(t, err)
	id, err := m.Verify(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)

	refresh, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)
	id, err = m.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)

	// Tokens are not interchangeable
	_, err = m.Verify(refresh)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	_, err = m.VerifyRefresh(access)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenManager_RejectionReasons(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTokenManager("access", "refresh", time.Hour, time.Hour).WithClock(func() time.Time { return issuedAt })

	token, err := m.IssueAccessToken("user-1")
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, domain.ErrTokenMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", "refresh", time.Hour, time.Hour).WithClock(func() time.Time { return issuedAt })
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "iss": TokenIssuer}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(unsigned)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("access", "refresh", time.Hour, time.Hour).
			WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Bearer abc.def", "abc.def", nil},
		{"case insensitive scheme", "bearer abc", "abc", nil},
		{"missing", "", "", domain.ErrTokenMissing},
		{"wrong scheme", "Basic abc", "", domain.ErrTokenInvalid},
		{"no token", "Bearer ", "", domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			got, err := BearerToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "user-1"})
	id, ok := IdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id.UserID)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, CheckPassword(hash, "secret1"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword("not-a-hash", "secret1"), domain.ErrInvalidCredentials)
}
