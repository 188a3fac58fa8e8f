package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sweetmoments/storefront/internal/auth"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
	"github.com/sweetmoments/storefront/pkg/logger"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	sessionKey  contextKey = "session_id"
)

// IdentityFromContext returns the authenticated identity, or nil for
// anonymous traffic.
func IdentityFromContext(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

// SessionFromContext returns the resolved session ID, empty when the request
// carried none.
func SessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey).(string)
	return sessionID
}

// Authenticate resolves an optional bearer token into an identity. Invalid or
// missing tokens leave the request anonymous rather than rejecting it; the
// storefront is browsable without an account.
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := jwtManager.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveSession derives the session ID from the authenticated user when
// present, otherwise from the X-Session-ID header. Mount after Authenticate.
func ResolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := r.Header.Get("X-Session-ID")
		if identity := IdentityFromContext(ctx); identity != nil {
			sessionID = identity.UserID
		}
		if sessionID != "" {
			ctx = context.WithValue(ctx, sessionKey, sessionID)
			ctx = logger.WithSessionID(ctx, sessionID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects requests that resolved no session ID.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == "" {
			writeError(w, r, apperrors.InvalidInput("X-Session-ID header or authentication is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireIdentity rejects anonymous requests.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			writeError(w, r, apperrors.Unauthorized("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
