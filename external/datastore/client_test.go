package datastore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: srv.URL + "/",
		Token:   "secret",
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}
	return client
}

func TestPointRepository_ListByMatchSendsFilter(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotAuth = r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"items":[{"id":"p1","matchNo":7,"userId":3,"points":42.5,"matchUserIndex":"7:3","team_name":"JUSTIN CHALLENGERS","relative_rank":1}]}`)
	})

	rows, err := NewPointRepository(client).ListByMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v1/records/FantasyPoint" || gotQuery != "matchNo=7" {
		t.Fatalf("unexpected request: path=%s query=%s", gotPath, gotQuery)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if len(rows) != 1 || rows[0].ID != "p1" || rows[0].Points != 42.5 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestUserRepository_CreateThenUpdate(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		methods []string
		bodies  []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		methods = append(methods, r.Method+" "+r.URL.Path)
		bodies = append(bodies, string(body))
		mu.Unlock()
		_, _ = io.WriteString(w, `{"id":"u1","user_id":2,"team_name":"Anantha Team","total_points":12}`)
	})
	repo := NewUserRepository(client)

	created, err := repo.Create(context.Background(), fantasy.UserAggregate{ID: "ignored", UserID: 2, TeamName: "Anantha Team", TotalPoints: 12})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if created.ID != "u1" {
		t.Fatalf("unexpected created id: %s", created.ID)
	}
	if _, err := repo.Update(context.Background(), created); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	want := []string{"POST /v1/records/FantasyUser", "PUT /v1/records/FantasyUser/u1"}
	if len(methods) != 2 || methods[0] != want[0] || methods[1] != want[1] {
		t.Fatalf("unexpected requests: got=%v want=%v", methods, want)
	}
	if strings.Contains(bodies[0], `"id"`) {
		t.Fatalf("create body must not carry an id: %s", bodies[0])
	}
}

func TestClient_ServerErrorsOpenCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	repo := NewMatchStatRepository(client)

	for range 2 {
		_, err := repo.List(context.Background())
		if !crerr.Is(err, ErrUnavailable) {
			t.Fatalf("unexpected error: got=%v want=%v", err, ErrUnavailable)
		}
	}

	_, err := repo.List(context.Background())
	if !crerr.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("unexpected server calls: got=%d want=2", got)
	}
}

func TestNoteRepository_DeleteNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/records/Todo/n1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	err := NewNoteRepository(client).Delete(context.Background(), "n1")
	if !crerr.Is(err, note.ErrNotFound) {
		t.Fatalf("unexpected error: got=%v want=%v", err, note.ErrNotFound)
	}
}

func TestClient_CanceledContextSkipsRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPointRepository(client).List(ctx); err == nil {
		t.Fatalf("expected canceled context error")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no server calls")
	}
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://records.example", "http://"} {
		if _, err := NewClient(ClientConfig{BaseURL: raw}); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestEncodeBody_WritesIntoPooledBuffer(t *testing.T) {
	t.Parallel()

	type record struct {
		TeamName string  `json:"team_name"`
		Points   float64 `json:"points"`
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := encodeBody(buf, record{TeamName: "JUSTIN CHALLENGERS OF THE LONG NAME", Points: 123.5}); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	buf.Reset()
	if err := encodeBody(buf, record{TeamName: "A", Points: 1}); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if got, want := buf.String(), `{"team_name":"A","points":1}`; got != want {
		t.Fatalf("unexpected body: got=%s want=%s", got, want)
	}
}

func TestNoteRepository_SequentialCreatesSendExactBodies(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()
		_, _ = io.WriteString(w, `{"id":"n1","content":"x"}`)
	})
	repo := NewNoteRepository(client)

	long := strings.Repeat("powerplay ", 50)
	for _, content := range []string{long, "short"} {
		if _, err := repo.Create(context.Background(), note.Note{Content: content}); err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
	}

	if len(bodies) != 2 {
		t.Fatalf("unexpected request count: %d", len(bodies))
	}
	if !strings.Contains(bodies[1], `"short"`) || strings.Contains(bodies[1], "powerplay") {
		t.Fatalf("second body carries stale bytes: %s", bodies[1])
	}
	if strings.HasSuffix(bodies[1], "\n") {
		t.Fatalf("body must not end with a newline: %q", bodies[1])
	}
}
