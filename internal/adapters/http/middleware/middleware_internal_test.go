package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
		committed  bool
	}{
		{
			name:       "untouched",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) },
			wantStatus: http.StatusCreated,
			committed:  true,
		},
		{
			name: "second WriteHeader ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
			committed:  true,
		},
		{
			name: "implicit 200 on write",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"id":1}`))
				_, _ = w.Write([]byte("\n"))
			},
			wantStatus: http.StatusOK,
			wantBytes:  9,
			committed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := newStatusRecorder(rec)
			tt.write(sr)

			if sr.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", sr.status, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if sr.committed != tt.committed {
				t.Errorf("committed = %v, want %v", sr.committed, tt.committed)
			}
			if sr.Unwrap() != rec {
				t.Error("Unwrap() did not return the wrapped writer")
			}
		})
	}
}

func TestValidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{id: "", want: false},
		{id: "3f2c9a4e-6c1d-4c43-8a8e-0d1b2c3d4e5f", want: true},
		{id: "trace:abc.def_01", want: true},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "quote\"", want: false},
		{id: "ünicode", want: false},
		{id: strings.Repeat("a", maxIDLength), want: true},
		{id: strings.Repeat("a", maxIDLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			if got := validID(tt.id); got != tt.want {
				t.Errorf("validID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
