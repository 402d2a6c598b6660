package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/notes/internal/core/ports"
	"github.com/vncsmyrnk/notes/internal/logger"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

func NewHandler(log *zap.SugaredLogger, authenticator *Authenticator, authHandler *AuthHandler, noteHandler *NoteHandler, health ports.HealthChecker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler(health))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/me", authenticator.Require(authHandler.Me))
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", authenticator.Require(noteHandler.CreateNote))
		r.Get("/", authenticator.Require(noteHandler.ListNotes))
		r.Put("/{id}", authenticator.Require(noteHandler.UpdateNote))
		r.Delete("/{id}", authenticator.Require(noteHandler.DeleteNote))
	})

	return r
}

func healthHandler(health ports.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := health.PingContext(ctx); err != nil {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		writeText(w, "ok")
	}
}
