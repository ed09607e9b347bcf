package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

type submitPointsResponse struct {
	Entries     []fantasy.PointEntry     `json:"entries"`
	Leaderboard []usecase.LeaderboardRow `json:"leaderboard"`
	MatchStat   fantasy.MatchStat        `json:"match_stat"`
	LocalSaved  bool                     `json:"local_saved"`
	RemoteSaved bool                     `json:"remote_saved"`
	Warnings    []string                 `json:"warnings"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.trackerService.Leaderboard(ctx))
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.trackerService.Schedule(ctx))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchNo, err := h.matchNoFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.trackerService.Match(ctx, matchNo)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, detail)
}

func (h *Handler) ListMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchStats")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.trackerService.MatchStats(ctx))
}

func (h *Handler) GetUserPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserPoints")
	defer span.End()

	userID, err := h.userIDFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	history, err := h.trackerService.UserHistory(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, history)
}

func (h *Handler) GetSubmissionTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSubmissionTemplate")
	defer span.End()

	matchNo, err := h.matchNoFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.trackerService.SubmissionTemplate(ctx, matchNo)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

// SubmitMatchPoints hands the raw body to the tracker untouched; element
// level validation happens there so errors can name the offending entry.
func (h *Handler) SubmitMatchPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatchPoints")
	defer span.End()

	matchNo, err := h.matchNoFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, fmt.Errorf("%w: payload exceeds %d bytes", fantasy.ErrMalformedPayload, tooLarge.Limit))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: read payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.trackerService.SubmitMatchPoints(ctx, matchNo, raw)
	if err != nil {
		h.logger.WarnContext(ctx, "submit match points failed", "match_no", matchNo, "error", err)
		writeError(ctx, w, err)
		return
	}

	warnings := result.Save.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	writeSuccess(ctx, w, http.StatusOK, submitPointsResponse{
		Entries:     result.Entries,
		Leaderboard: result.Leaderboard,
		MatchStat:   result.MatchStat,
		LocalSaved:  result.Save.LocalSaved,
		RemoteSaved: result.Save.RemoteSaved,
		Warnings:    warnings,
	})
}

func (h *Handler) ReloadState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadState")
	defer span.End()

	report := h.trackerService.Reload(ctx)
	if report.Source != usecase.SourceRemote {
		h.logger.WarnContext(ctx, "state reloaded without remote store", "source", report.Source, "message", report.Message)
	}
	writeSuccess(ctx, w, http.StatusOK, report)
}
