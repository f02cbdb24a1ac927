package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
)

// logEntries decodes one JSON object per line, keyed by message.
func logEntries(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	entries := make(map[string]map[string]any)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e map[string]any
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		entries[e["msg"].(string)] = e
	}
	return entries
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		status    int
		wantLevel string
		wantQuery string
	}{
		{name: "success", target: "/api/tasks", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", target: "/api/tasks/99", status: http.StatusNotFound, wantLevel: "INFO"},
		{name: "server error", target: "/api/tasks/statistics", status: http.StatusBadGateway, wantLevel: "ERROR"},
		{name: "query", target: "/api/tasks?status_id=2&is_completed=0", status: http.StatusOK, wantLevel: "INFO", wantQuery: "status_id=2&is_completed=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			req = req.WithContext(middleware.WithCorrelationID(middleware.WithRequestID(req.Context(), "req-7"), "corr-7"))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			entries := logEntries(t, &buf)
			started, ok := entries["request started"]
			if !ok {
				t.Fatalf("no request started entry in %q", buf.String())
			}
			query, hasQuery := started["query"]
			switch {
			case tt.wantQuery != "" && query != tt.wantQuery:
				t.Errorf("query = %v, want %q", query, tt.wantQuery)
			case tt.wantQuery == "" && hasQuery:
				t.Errorf("query = %v logged for a request without one", query)
			}

			done, ok := entries["request completed"]
			if !ok {
				t.Fatalf("no request completed entry in %q", buf.String())
			}
			want := map[string]any{
				"level":          tt.wantLevel,
				"status":         float64(tt.status),
				"route":          "unmatched",
				"request_id":     "req-7",
				"correlation_id": "corr-7",
			}
			for key, value := range want {
				if done[key] != value {
					t.Errorf("%s = %v, want %v", key, done[key], value)
				}
			}
		})
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret")
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	headers, ok := logEntries(t, &buf)["request headers"]["headers"].(map[string]any)
	if !ok {
		t.Fatalf("no header group in %q", buf.String())
	}
	if headers["Authorization"] != "[REDACTED]" {
		t.Errorf("Authorization = %v, want [REDACTED]", headers["Authorization"])
	}
	if headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %v, want application/json", headers["Content-Type"])
	}
	if strings.Contains(buf.String(), "top-secret") {
		t.Error("log output leaks the bearer token")
	}
}

func TestLogging_StoresRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("task deleted")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/3", http.NoBody)
	req = req.WithContext(middleware.WithRequestID(req.Context(), "req-9"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entry, ok := logEntries(t, &buf)["task deleted"]
	if !ok {
		t.Fatalf("handler log entry missing from %q", buf.String())
	}
	if entry["request_id"] != "req-9" {
		t.Errorf("request_id = %v, want req-9", entry["request_id"])
	}
}
