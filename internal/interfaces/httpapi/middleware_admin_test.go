package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAdminToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		configured string
		provided   string
		want       int
	}{
		{name: "open when not configured", configured: "", provided: "", want: http.StatusNoContent},
		{name: "matching token", configured: "abc", provided: "abc", want: http.StatusNoContent},
		{name: "missing token", configured: "abc", provided: "", want: http.StatusUnauthorized},
		{name: "wrong token", configured: "abc", provided: "abd", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/v1/matches/1/points", nil)
			if tt.provided != "" {
				req.Header.Set(adminTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()

			RequireAdminToken(tt.configured, next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tt.want)
			}
		})
	}
}
