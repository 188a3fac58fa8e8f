package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sweetmoments/storefront/internal/auth"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

// AuthHandler issues and inspects storefront sessions.
type AuthHandler struct {
	jwtManager  *auth.JWTManager
	demoEnabled bool
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(jwtManager *auth.JWTManager, demoEnabled bool) *AuthHandler {
	return &AuthHandler{jwtManager: jwtManager, demoEnabled: demoEnabled}
}

type sessionResponse struct {
	Token    string        `json:"token"`
	Identity auth.Identity `json:"identity"`
}

type meResponse struct {
	Authenticated bool           `json:"authenticated"`
	Identity      *auth.Identity `json:"identity,omitempty"`
}

// DemoSession handles POST /auth/demo-session. It issues a shop owner token
// without credentials and exists for demo deployments only.
func (h *AuthHandler) DemoSession(w http.ResponseWriter, r *http.Request) {
	if !h.demoEnabled {
		writeError(w, r, apperrors.Unauthorized("demo sessions are disabled"))
		return
	}

	identity := auth.Identity{
		UserID: uuid.New().String(),
		Email:  "owner@sweetmoments.shop",
		Name:   "Artisan Owner",
	}
	token, err := h.jwtManager.Issue(identity)
	if err != nil {
		writeError(w, r, apperrors.Internal(err))
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, Identity: identity})
}

// SignOut handles POST /auth/signout. Session tokens are stateless, so this
// only acknowledges; the client discards the token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"signed_out": true})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, meResponse{
		Authenticated: identity != nil,
		Identity:      identity,
	})
}
