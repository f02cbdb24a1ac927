package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		emitted slog.Level
		dropped *slog.Level
	}{
		{level: "debug", emitted: slog.LevelDebug},
		{level: "DEBUG", emitted: slog.LevelDebug},
		{level: "info", emitted: slog.LevelInfo, dropped: levelPtr(slog.LevelDebug)},
		{level: "warn", emitted: slog.LevelWarn, dropped: levelPtr(slog.LevelInfo)},
		{level: "error", emitted: slog.LevelError, dropped: levelPtr(slog.LevelWarn)},
		{level: "verbose", emitted: slog.LevelInfo, dropped: levelPtr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(tt.level, "json", &buf)
			ctx := context.Background()

			logger.Log(ctx, tt.emitted, "kept")
			if !strings.Contains(buf.String(), `"msg":"kept"`) {
				t.Errorf("level %s dropped a %s record", tt.level, tt.emitted)
			}

			if tt.dropped != nil {
				buf.Reset()
				logger.Log(ctx, *tt.dropped, "dropped")
				if buf.Len() != 0 {
					t.Errorf("level %s kept a %s record: %s", tt.level, *tt.dropped, buf.String())
				}
			}
		})
	}
}

func levelPtr(l slog.Level) *slog.Level { return &l }

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("task created")
			if out := buf.String(); !strings.Contains(out, tt.want) || !strings.Contains(out, "task created") {
				t.Errorf("format %s output = %q, want it to contain %q", tt.format, out, tt.want)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Debug("with source")
	logging.New("info", "json", &info).Info("without source")

	if !strings.Contains(debug.String(), `"source"`) {
		t.Errorf("debug output lacks source: %s", debug.String())
	}
	if strings.Contains(info.String(), `"source"`) {
		t.Errorf("info output carries source: %s", info.String())
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext() without a logger should return slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext() did not return the stored logger")
	}

	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext() did not return the innermost logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "host=db user=tracker password=pw"), "password=pw"},
		{"bearer value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"connection url", slog.String("target", "postgres://tracker:s3cr3t-pass@db:5432/tasks"), "s3cr3t-pass"},
		{"inline api key", slog.String("note", "api_key=abc123def"), "abc123def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output leaks %q: %s", tt.secret, out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output lacks the redaction marker: %s", out)
			}
		})
	}
}

func TestNew_KeepsTaskAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("task updated",
		slog.Uint64("task_id", 42),
		slog.String("path", "/api/tasks/42"),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log entry: %v", err)
	}
	if entry["task_id"] != float64(42) {
		t.Errorf("task_id = %v, want 42", entry["task_id"])
	}
	if entry["path"] != "/api/tasks/42" {
		t.Errorf("path = %v, want /api/tasks/42", entry["path"])
	}
}

func TestHeaderGroup(t *testing.T) {
	t.Parallel()

	h := http.Header{
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer abc"},
		"Cookie":        {"session=1"},
		"Accept":        {"text/html", "application/json"},
	}

	attr := logging.HeaderGroup(h)
	if attr.Key != "headers" || attr.Value.Kind() != slog.KindGroup {
		t.Fatalf("HeaderGroup() = %s (%s), want a headers group", attr.Key, attr.Value.Kind())
	}

	group := attr.Value.Group()
	keys := make([]string, 0, len(group))
	values := make(map[string]string, len(group))
	for _, a := range group {
		keys = append(keys, a.Key)
		values[a.Key] = a.Value.String()
	}

	if want := []string{"Accept", "Authorization", "Content-Type", "Cookie"}; !slices.Equal(keys, want) {
		t.Errorf("header keys = %v, want %v", keys, want)
	}
	want := map[string]string{
		"Accept":        "text/html,application/json",
		"Authorization": "[REDACTED]",
		"Cookie":        "[REDACTED]",
		"Content-Type":  "application/json",
	}
	if !maps.Equal(values, want) {
		t.Errorf("header values = %v, want %v", values, want)
	}
}

func TestHeaderGroup_Empty(t *testing.T) {
	t.Parallel()

	if group := logging.HeaderGroup(http.Header{}).Value.Group(); len(group) != 0 {
		t.Errorf("HeaderGroup(empty) = %v, want no attributes", group)
	}
}
