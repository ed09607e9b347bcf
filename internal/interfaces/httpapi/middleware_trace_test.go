package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/leaderboard", "/v1/schedule", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_HealthPathCaseInsensitive(t *testing.T) {
	if shouldTraceRequest("/HEALTHZ") {
		t.Fatalf("expected no tracing for upper-case health path")
	}
	if !shouldTraceRequest("/v1/matches/12/points") {
		t.Fatalf("expected tracing for points submission path")
	}
}

func TestRequestTracing_KeepsAdminRejectionStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestTracing(RequireAdminToken("s3cret", next))

	req := httptest.NewRequest(http.MethodPut, "/v1/matches/12/points", strings.NewReader(`[]`))
	req.Header.Set(adminTokenHeader, "wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
