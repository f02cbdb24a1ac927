package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.TaskRequest
		wantErr bool
	}{
		{name: "valid request passes", req: dto.TaskRequest{StatusID: 1, Text: "write the report"}},
		{name: "zero status is left to entity rules", req: dto.TaskRequest{StatusID: 0, Text: "abcde"}},
		{name: "empty text is left to entity rules", req: dto.TaskRequest{StatusID: 2}},
		{name: "largest status id", req: dto.TaskRequest{StatusID: 255, Text: "abcde"}},
		{name: "negative status id", req: dto.TaskRequest{StatusID: -1, Text: "abcde"}, wantErr: true},
		{name: "status id out of range", req: dto.TaskRequest{StatusID: 256, Text: "abcde"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "status_id")
		})
	}
}

func TestTaskRequest_Data(t *testing.T) {
	t.Parallel()

	req := dto.TaskRequest{StatusID: 3, Text: "call the plumber"}
	got := req.Data()
	want := task.Data{StatusID: 3, Text: "call the plumber"}
	if got != want {
		t.Errorf("Data() = %+v, want %+v", got, want)
	}
}
