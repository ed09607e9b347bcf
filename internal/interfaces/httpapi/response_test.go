package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_ValidationErrorCarriesEntry(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &fantasy.ValidationError{
		Kind:    fantasy.ErrUnknownTeam,
		Index:   2,
		Field:   "team_name",
		Value:   "Nobody XI",
		Message: "unknown team name: Nobody XI",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body struct {
		Error struct {
			Errors []struct {
				Reason  string `json:"reason"`
				Message string `json:"message"`
				Index   *int   `json:"index"`
				Field   string `json:"field"`
				Value   string `json:"value"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Error.Errors) != 1 {
		t.Fatalf("expected one error item, got %d", len(body.Error.Errors))
	}
	item := body.Error.Errors[0]
	if item.Reason != "unknownTeam" || item.Field != "team_name" || item.Value != "Nobody XI" {
		t.Fatalf("unexpected error item: %+v", item)
	}
	if item.Index == nil || *item.Index != 2 {
		t.Fatalf("unexpected index: %v", item.Index)
	}
}

func TestMapError_UnknownMatchIsNotFound(t *testing.T) {
	got := mapError(context.Background(), fmt.Errorf("submit: %w", fantasy.ErrUnknownMatch))
	if got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", got.HTTPStatus, http.StatusNotFound)
	}
}

func TestMapError_RemoteFailuresAreUnavailable(t *testing.T) {
	got := mapError(context.Background(), fmt.Errorf("%w: timeout", usecase.ErrRemoteUnavailable))
	if got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got=%d want=%d", got.HTTPStatus, http.StatusServiceUnavailable)
	}
}
