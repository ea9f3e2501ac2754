package server

import (
	"errors"
	"net/http"

	"github.com/osse101/Armory_Go/internal/auth"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/handler"
	"github.com/osse101/Armory_Go/internal/logger"
)

// RequireIdentity rejects requests without a valid bearer token and stores
// the verified identity in the request context.
func RequireIdentity(verifier auth.Verifier) func(http.Handler) http.Handler {
	return identityMiddleware(verifier, true)
}

// OptionalIdentity attaches the caller's identity when a bearer token is
// presented. No header means an anonymous request. A token that is presented
// but fails verification is still rejected.
func OptionalIdentity(verifier auth.Verifier) func(http.Handler) http.Handler {
	return identityMiddleware(verifier, false)
}

func identityMiddleware(verifier auth.Verifier, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if errors.Is(err, domain.ErrTokenMissing) && !required {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				reject(w, r, err)
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				reject(w, r, err)
				return
			}

			ctx := auth.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
	handler.RespondServiceError(w, r, LogMsgTokenRejected, err)
}
