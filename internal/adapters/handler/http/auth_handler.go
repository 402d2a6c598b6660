package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
	log         *zap.SugaredLogger
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Registers a new user
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	if _, err := h.authService.Register(r.Context(), input); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeText(w, "User registered successfully!")
}

// Login godoc
// @Summary      Logs a user in
// @Description  Sets the `jwt` cookie, which authenticates `/auth/me` and `/notes` calls.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.setSessionCookie(w, token)
	writeText(w, "Login successful. JWT set in cookie.")
}

// Me godoc
// @Summary      Returns the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, user *domain.User) {
	writeJSON(w, h.log, user.Summary())
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Clears the session cookie. Issued tokens stay valid until they expire.
// @Tags         auth
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireSessionCookie(w)
	writeText(w, "Logged out successfully!")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.tokenTTL.Seconds()),
	})
}

// expireSessionCookie sends Max-Age=0; net/http spells that MaxAge < 0.
func (h *AuthHandler) expireSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
