package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service ports.NoteService
	log     *zap.SugaredLogger
}

func NewNoteHandler(service ports.NoteService, log *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{
		service: service,
		log:     log,
	}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.service.Create(r.Context(), user, ports.NoteInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, note)
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request, user *domain.User) {
	notes, err := h.service.List(r.Context(), user)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, notes)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request, user *domain.User) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.service.Update(r.Context(), user, id, ports.NoteInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request, user *domain.User) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeText(w, "Deleted!")
}

func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
