package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

type teamCodeDTO struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Color string `json:"color"`
}

func (h *Handler) GetTeamCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamCode")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(ctx, w, fmt.Errorf("%w: name query parameter is required", usecase.ErrInvalidInput))
		return
	}

	code := schedule.TeamCode(name)
	writeSuccess(ctx, w, http.StatusOK, teamCodeDTO{
		Name:  name,
		Code:  code,
		Color: schedule.TeamColor(code),
	})
}

func (h *Handler) ListFranchises(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFranchises")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, schedule.Franchises())
}
