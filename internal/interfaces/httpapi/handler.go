package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

// maxSubmissionBytes bounds admin payloads; a full roster is well under it.
const maxSubmissionBytes = 64 << 10

type Handler struct {
	trackerService *usecase.TrackerService
	noteService    *usecase.NoteService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	trackerService *usecase.TrackerService,
	noteService *usecase.NoteService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		trackerService: trackerService,
		noteService:    noteService,
		logger:         logger.Named("httpapi"),
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type matchPathRequest struct {
	MatchNo int `validate:"min=1"`
}

type userPathRequest struct {
	UserID int `validate:"min=1"`
}

func (h *Handler) matchNoFromPath(ctx context.Context, r *http.Request) (int, error) {
	matchNo, err := pathInt(r, "matchNo")
	if err != nil {
		return 0, err
	}
	if err := h.validateRequest(ctx, matchPathRequest{MatchNo: matchNo}); err != nil {
		return 0, err
	}
	return matchNo, nil
}

func (h *Handler) userIDFromPath(ctx context.Context, r *http.Request) (int, error) {
	userID, err := pathInt(r, "userID")
	if err != nil {
		return 0, err
	}
	if err := h.validateRequest(ctx, userPathRequest{UserID: userID}); err != nil {
		return 0, err
	}
	return userID, nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
