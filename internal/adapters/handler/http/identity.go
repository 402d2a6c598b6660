package http

import (
	"net/http"
	"strings"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "jwt"
	bearerPrefix      = "Bearer "
)

// authenticatedHandlerFunc receives the caller's identity as an argument
// instead of reading it from the request context.
type authenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *domain.User)

type Authenticator struct {
	authService ports.AuthService
	log         *zap.SugaredLogger
}

func NewAuthenticator(authService ports.AuthService, log *zap.SugaredLogger) *Authenticator {
	return &Authenticator{
		authService: authService,
		log:         log,
	}
}

// Require resolves the identity on every request and rejects the request
// with 401 when it cannot.
func (a *Authenticator) Require(next authenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authService.ResolveIdentity(r.Context(), tokenFromRequest(r))
		if err != nil {
			writeError(w, r, a.log, err)
			return
		}
		next(w, r, user)
	}
}

// tokenFromRequest prefers a Bearer Authorization header and falls back to
// the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimPrefix(header, bearerPrefix)
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
