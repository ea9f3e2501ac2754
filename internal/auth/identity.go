package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Identity is the authenticated caller
type Identity struct {
	UserID string
}

type ctxKey struct{}

// WithIdentity stores the caller identity in ctx
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the caller identity, if any
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// Returns domain.ErrTokenMissing when there is no header.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(HeaderAuthorization))
	if header == "" {
		return "", domain.ErrTokenMissing
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: malformed authorization header", domain.ErrTokenInvalid)
	}
	return strings.TrimSpace(token), nil
}
