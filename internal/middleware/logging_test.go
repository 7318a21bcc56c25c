package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// captureLog routes the default logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		t.Fatalf("decode log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestLoggerAccessLine(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		status  float64
		bytes   float64
		level   string
	}{
		{"implicit 200", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("hello")) }, 200, 5, "INFO"},
		{"nothing written", func(w http.ResponseWriter, r *http.Request) {}, 200, 0, "INFO"},
		{"not found", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }, 404, 19, "WARN"},
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) }, 502, 0, "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLog(t)
			rr := httptest.NewRecorder()
			Logger(tc.handler).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact/toggle", nil))

			entry := lastEntry(t, buf)
			if entry["msg"] != "http request" {
				t.Fatalf("msg = %v", entry["msg"])
			}
			if entry["status"] != tc.status {
				t.Errorf("status = %v, want %v", entry["status"], tc.status)
			}
			if entry["bytes"] != tc.bytes {
				t.Errorf("bytes = %v, want %v", entry["bytes"], tc.bytes)
			}
			if entry["level"] != tc.level {
				t.Errorf("level = %v, want %v", entry["level"], tc.level)
			}
			if entry["method"] != "POST" || entry["path"] != "/contact/toggle" {
				t.Errorf("method/path = %v %v", entry["method"], entry["path"])
			}
			if entry["request_id"] != rr.Header().Get(RequestIDHeader) {
				t.Errorf("request_id = %v, header %q", entry["request_id"], rr.Header().Get(RequestIDHeader))
			}
		})
	}
}

func TestStatusRecorderKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusInternalServerError)
	rec.Write([]byte("ok"))

	if rec.code() != http.StatusCreated {
		t.Errorf("code = %d, want 201", rec.code())
	}
	if rec.bytes != 2 {
		t.Errorf("bytes = %d, want 2", rec.bytes)
	}
}

func TestLoggerRequestID(t *testing.T) {
	captureLog(t)

	var seen string
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromCtx(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id %q, header %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "upstream-1" {
		t.Errorf("incoming id not reused: %q", seen)
	}

	if id := RequestIDFromCtx(req.Context()); id != "" {
		t.Errorf("id leaked outside the middleware: %q", id)
	}
}

func TestStatusRecorderFlushes(t *testing.T) {
	rr := httptest.NewRecorder()
	var w http.ResponseWriter = &statusRecorder{ResponseWriter: rr}

	w.Write([]byte("data: x\n\n"))
	w.(http.Flusher).Flush()
	if !rr.Flushed {
		t.Error("underlying recorder was not flushed")
	}
	if http.NewResponseController(w).Flush() != nil {
		t.Error("ResponseController should reach the recorder through Unwrap")
	}
}
