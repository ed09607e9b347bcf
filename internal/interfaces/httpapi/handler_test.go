package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/localstore"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

const testAdminToken = "s3cret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	r := roster.MustNew([]roster.User{
		{ID: 1, TeamName: "CheemsRajah"},
		{ID: 2, TeamName: "Anantha Team"},
	})
	sched, err := schedule.New([]schedule.Match{
		{MatchNo: 1, Date: "2025-03-22", HomeTeam: "Kolkata Knight Riders", AwayTeam: "Royal Challengers Bengaluru", Venue: "Eden Gardens", Time: "7:30 PM"},
		{MatchNo: 2, Date: "2099-03-23", HomeTeam: "Chennai Super Kings", AwayTeam: "Mumbai Indians", Venue: "Chepauk"},
	})
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}
	store, err := localstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}

	remote := usecase.RemoteStore{
		Points:     memory.NewPointRepository(id.NewRandomGenerator("pt_")),
		Users:      memory.NewUserRepository(id.NewRandomGenerator("usr_")),
		MatchStats: memory.NewMatchStatRepository(id.NewRandomGenerator("ms_")),
	}
	syncer := usecase.NewSyncService(remote, localstore.NewSnapshots(store), r, usecase.SyncConfig{RemoteTimeout: time.Second}, logging.NewNop())
	tracker := usecase.NewTrackerService(syncer, r, sched, logging.NewNop())
	notes := usecase.NewNoteService(memory.NewNoteRepository(id.NewRandomGenerator("note_")))

	handler := NewHandler(tracker, notes, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), true, []string{"*"}, testAdminToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, admin bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(adminTokenHeader, testAdminToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
	}
	return rec, envelope
}

func errorItem(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	errObj, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", envelope)
	}
	items, ok := errObj["errors"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected error items, got %v", errObj)
	}
	item, _ := items[0].(map[string]any)
	return item
}

func TestSubmitMatchPoints_UpdatesLeaderboard(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/matches/1/points",
		`[{"team_name":"CheemsRajah","points":120},{"team_name":"Anantha Team","points":80}]`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	data, _ := body["data"].(map[string]any)
	if got, _ := data["remote_saved"].(bool); !got {
		t.Fatalf("unexpected remote_saved: got=%v want=true", data["remote_saved"])
	}
	if warnings, _ := data["warnings"].([]any); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	rec, body = doRequest(t, router, http.MethodGet, "/v1/leaderboard", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	data, _ = body["data"].(map[string]any)
	rows, _ := data["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	first, _ := rows[0].(map[string]any)
	if got, _ := first["team_name"].(string); got != "CheemsRajah" {
		t.Fatalf("unexpected leader: got=%v want=CheemsRajah", first["team_name"])
	}
	if got, _ := first["total_points"].(float64); got != 120 {
		t.Fatalf("unexpected total_points: got=%v want=120", got)
	}
	if got, _ := data["completed_matches"].(float64); got != 1 {
		t.Fatalf("unexpected completed_matches: got=%v want=1", got)
	}
}

func TestSubmitMatchPoints_RejectsNonStringTeamName(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/matches/1/points",
		`[{"team_name":"CheemsRajah","points":10},{"team_name":7,"points":1}]`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	item := errorItem(t, body)
	if got, _ := item["reason"].(string); got != "invalidEntry" {
		t.Fatalf("unexpected reason: got=%v want=invalidEntry", item["reason"])
	}
	if got, _ := item["index"].(float64); got != 1 {
		t.Fatalf("unexpected index: got=%v want=1", item["index"])
	}
	if got, _ := item["field"].(string); got != "team_name" {
		t.Fatalf("unexpected field: got=%v want=team_name", item["field"])
	}
	if got, _ := item["value"].(float64); got != 7 {
		t.Fatalf("unexpected value: got=%v want=7", item["value"])
	}

	_, body = doRequest(t, router, http.MethodGet, "/v1/match-stats", "", false)
	if stats, _ := body["data"].([]any); len(stats) != 0 {
		t.Fatalf("rejected submission must not change state, got %v", stats)
	}
}

func TestSubmitMatchPoints_ErrorStatuses(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		admin  bool
		status int
		reason string
	}{
		{name: "missing admin token", path: "/v1/matches/1/points", body: `[]`, admin: false, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "unknown match", path: "/v1/matches/99/points", body: `[{"team_name":"CheemsRajah","points":1}]`, admin: true, status: http.StatusNotFound, reason: "unknownMatch"},
		{name: "invalid JSON", path: "/v1/matches/1/points", body: `[{`, admin: true, status: http.StatusBadRequest, reason: "malformedPayload"},
		{name: "empty batch", path: "/v1/matches/1/points", body: `[]`, admin: true, status: http.StatusBadRequest, reason: "malformedPayload"},
		{name: "unknown team", path: "/v1/matches/1/points", body: `[{"team_name":"Nobody XI","points":1}]`, admin: true, status: http.StatusBadRequest, reason: "unknownTeam"},
		{name: "non numeric match", path: "/v1/matches/abc/points", body: `[]`, admin: true, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "zero match", path: "/v1/matches/0/points", body: `[]`, admin: true, status: http.StatusBadRequest, reason: "invalidInput"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, router, http.MethodPut, tt.path, tt.body, tt.admin)
			if rec.Code != tt.status {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tt.status, rec.Body.String())
			}
			if got, _ := errorItem(t, body)["reason"].(string); got != tt.reason {
				t.Fatalf("unexpected reason: got=%q want=%q", got, tt.reason)
			}
		})
	}
}

func TestTrackerReadRoutes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPut, "/v1/matches/1/points", `[{"team_name":"Anantha Team","points":55.5}]`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed submission failed: %d %s", rec.Code, rec.Body.String())
	}

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "schedule", path: "/v1/schedule", status: http.StatusOK},
		{name: "match", path: "/v1/matches/1", status: http.StatusOK},
		{name: "unknown match", path: "/v1/matches/42", status: http.StatusNotFound},
		{name: "match stats", path: "/v1/match-stats", status: http.StatusOK},
		{name: "user points", path: "/v1/users/2/points", status: http.StatusOK},
		{name: "unknown user", path: "/v1/users/9/points", status: http.StatusNotFound},
		{name: "template", path: "/v1/matches/2/points/template", status: http.StatusOK},
		{name: "teams", path: "/v1/teams", status: http.StatusOK},
		{name: "team code without name", path: "/v1/teams/code", status: http.StatusBadRequest},
		{name: "healthz", path: "/healthz", status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRequest(t, router, http.MethodGet, tt.path, "", false)
			if rec.Code != tt.status {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}

	_, body := doRequest(t, router, http.MethodGet, "/v1/matches/1", "", false)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != string(schedule.StatusCompleted) {
		t.Fatalf("unexpected match status: got=%v want=%s", data["status"], schedule.StatusCompleted)
	}
	if got, _ := data["homeCode"].(string); got != "kkr" {
		t.Fatalf("unexpected homeCode: got=%v want=kkr", data["homeCode"])
	}

	_, body = doRequest(t, router, http.MethodGet, "/v1/matches/2/points/template", "", false)
	items, _ := body["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("unexpected template size: got=%d want=2", len(items))
	}

	_, body = doRequest(t, router, http.MethodGet, "/v1/teams/code?name=Mumbai%20Indians", "", false)
	data, _ = body["data"].(map[string]any)
	if got, _ := data["code"].(string); got != "mi" {
		t.Fatalf("unexpected team code: got=%v want=mi", data["code"])
	}
}

func TestReloadState(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/sync/reload", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status without token: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}

	rec, body := doRequest(t, router, http.MethodPost, "/v1/sync/reload", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	data, _ := body["data"].(map[string]any)
	if got, _ := data["source"].(string); got != string(usecase.SourceRemote) {
		t.Fatalf("unexpected source: got=%v want=%s", data["source"], usecase.SourceRemote)
	}
}

func TestNoteRoutes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPost, "/v1/notes", `{"content":"  check match 5 scores  "}`, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	created, _ := body["data"].(map[string]any)
	if got, _ := created["content"].(string); got != "check match 5 scores" {
		t.Fatalf("unexpected content: got=%q", got)
	}
	noteID, _ := created["id"].(string)
	if noteID == "" {
		t.Fatalf("expected generated note id")
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/notes", `{"content":"x","pinned":true}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	rec, _ = doRequest(t, router, http.MethodPost, "/v1/notes", `{"content":"   "}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank content: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	rec, _ = doRequest(t, router, http.MethodPost, "/v1/notes", `{"content":"`+strings.Repeat("a", 2001)+`"}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("oversized content: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}

	_, body = doRequest(t, router, http.MethodGet, "/v1/notes", "", false)
	if items, _ := body["data"].([]any); len(items) != 1 {
		t.Fatalf("unexpected note count: got=%d want=1", len(items))
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/notes/"+noteID, "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got=%d want=%d", rec.Code, http.StatusOK)
	}
	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/notes/"+noteID, "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestSwaggerRoutes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/openapi.yaml", "", false)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/v1/leaderboard") {
		t.Fatalf("unexpected openapi response: %d", rec.Code)
	}
}
