package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

type createNoteRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotes")
	defer span.End()

	items, err := h.noteService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list notes failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if items == nil {
		items = []note.Note{}
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNote")
	defer span.End()

	var req createNoteRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.noteService.Create(ctx, req.Content)
	if err != nil {
		h.logger.WarnContext(ctx, "create note failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, created)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNote")
	defer span.End()

	noteID := strings.TrimSpace(r.PathValue("noteID"))
	if err := h.noteService.Delete(ctx, noteID); err != nil {
		h.logger.WarnContext(ctx, "delete note failed", "note_id", noteID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": noteID})
}
