package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTrackerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /v1/matches/{matchNo}", handler.GetMatch)
	mux.HandleFunc("GET /v1/match-stats", handler.ListMatchStats)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/users/{userID}/points", handler.GetUserPoints)
	mux.HandleFunc("GET /v1/matches/{matchNo}/points/template", handler.GetSubmissionTemplate)
	mux.HandleFunc("GET /v1/teams", handler.ListFranchises)
	mux.HandleFunc("GET /v1/teams/code", handler.GetTeamCode)
}

func registerNoteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/notes", handler.ListNotes)
	mux.HandleFunc("POST /v1/notes", handler.CreateNote)
	mux.HandleFunc("DELETE /v1/notes/{noteID}", handler.DeleteNote)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("PUT /v1/matches/{matchNo}/points", RequireAdminToken(adminToken, http.HandlerFunc(handler.SubmitMatchPoints)))
	mux.Handle("POST /v1/sync/reload", RequireAdminToken(adminToken, http.HandlerFunc(handler.ReloadState)))
}
