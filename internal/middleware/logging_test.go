package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/restotrack/api/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := logging.InitWithWriter(&buf, "DEBUG"); err != nil {
		t.Fatalf("init logging: %v", err)
	}
	return &buf
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"client error", http.StatusNotFound, "WARNI"},
		{"server error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			h := chimw.RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			})))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest("GET", "/orders?x=1", nil))

			out := buf.String()
			if !strings.Contains(out, "GET /orders?x=1") {
				t.Errorf("missing request line: %q", out)
			}
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("expected level %s in %q", tt.wantLevel, out)
			}
		})
	}
}

func TestRequestLogger_ImplicitOK(t *testing.T) {
	buf := captureLogs(t)
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if !strings.Contains(buf.String(), "-> 200") {
		t.Errorf("expected 200 in %q", buf.String())
	}
}
