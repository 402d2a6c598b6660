package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"go.uber.org/zap"
)

// writeError maps domain errors to status codes. Anything unknown is logged
// and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		http.Error(w, "Error: Email already in use!", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "Missing or invalid token", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "Not authorized!", http.StatusForbidden)
	case errors.Is(err, domain.ErrNoteNotFound):
		http.Error(w, "Note not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	default:
		log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, log *zap.SugaredLogger, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnw("failed to encode response", "error", err)
	}
}

func writeText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(msg))
}
