package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"model not found", domain.NewModelNotFoundError("Task model not found", uint64(42), "Task"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("task 42: %w", domain.ErrNotFound), http.StatusNotFound},
		{"validation", domain.NewValidationError("text", "The Text field is required."), http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"invalid operation", domain.NewInvalidOperationError(""), http.StatusConflict},
		{"invalid model", domain.NewInvalidModelAttributeError("", "id", "Task"), http.StatusInternalServerError},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"rate limited", dto.ErrTooManyRequests, http.StatusTooManyRequests},
		{"timed out", dto.ErrRequestTimeout, http.StatusGatewayTimeout},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dto.StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/tasks/42?x=1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	want := dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   domain.ErrNotFound.Error(),
		Instance: "/api/tasks/42?x=1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewErrorResponse() = %+v, want %+v", got, want)
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{}
	verr.Add("text", "min=5", "The Text must be at least 5 characters.")
	verr.Add("status_id", "exists", "The selected Status ID is invalid.")
	verr.Add("created_at", "", "The Creation date field is required.")

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, "/api/tasks", nil), verr)

	if got.Status != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", got.Status)
	}
	want := []dto.ErrorDetail{
		{Location: "body.created_at", Message: "The Creation date field is required."},
		{Location: "body.status_id", Message: "The selected Status ID is invalid.", Rule: "exists"},
		{Location: "body.text", Message: "The Text must be at least 5 characters.", Rule: "min=5"},
	}
	if !slices.Equal(got.Errors, want) {
		t.Errorf("Errors = %+v, want %+v", got.Errors, want)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", nil),
		domain.NewValidationError("text", "The Text field is required."))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", got)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding problem body: %v", err)
	}
	if body.Title != "Bad Request" {
		t.Errorf("Title = %q, want Bad Request", body.Title)
	}
	if len(body.Errors) != 1 || body.Errors[0].Location != "body.text" {
		t.Errorf("Errors = %+v, want one entry for body.text", body.Errors)
	}
}

func TestWriteErrorResponse_OmitsErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodDelete, "/api/task-statuses/1", nil),
		domain.NewInvalidOperationError(""))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"errors"`) {
		t.Errorf("body %q carries validation errors", rec.Body.String())
	}
}
