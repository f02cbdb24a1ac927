package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-tracker/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.HealthResponse](t, rec); !reflect.DeepEqual(got, dto.HealthResponse{Status: dto.HealthOK}) {
		t.Errorf("Liveness() body = %+v, want status ok only", got)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  map[string]error
		wantCode int
		want     dto.HealthResponse
	}{
		{
			name:     "database and cache up",
			results:  map[string]error{"database": nil, "redis": nil},
			wantCode: http.StatusOK,
			want: dto.HealthResponse{
				Status: "ready",
				Checks: map[string]string{"database": "ok", "redis": "ok"},
			},
		},
		{
			name:     "cache down",
			results:  map[string]error{"database": nil, "redis": errors.New("dial tcp: connection refused")},
			wantCode: http.StatusServiceUnavailable,
			want: dto.HealthResponse{
				Status: "not_ready",
				Checks: map[string]string{"database": "ok", "redis": "dial tcp: connection refused"},
			},
		},
		{
			name:     "nothing registered",
			results:  map[string]error{},
			wantCode: http.StatusOK,
			want:     dto.HealthResponse{Status: "ready"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			if got := decodeJSON[dto.HealthResponse](t, rec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Readiness() body = %+v, want %+v", got, tt.want)
			}
		})
	}
}
