package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare-marketplace/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type fakeSession bool

func (f fakeSession) IsLoggedIn() bool { return bool(f) }

func TestRequireLogin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	cases := []struct {
		name string
		s    SessionChecker
		want int
	}{
		{"logged in", fakeSession(true), http.StatusNoContent},
		{"logged out", fakeSession(false), http.StatusUnauthorized},
		{"nil checker", nil, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RequireLogin(tc.s)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/me", nil))
		if rr.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rr.Code)
		}
	}
}

func TestRequestLogger_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Output: &buf})

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cart", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["path"] != "/cart" || entry["method"] != "GET" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["status"] != float64(http.StatusTeapot) || entry["bytes"] != float64(3) {
		t.Fatalf("unexpected status/bytes %#v", entry)
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Fatalf("expected request_id, got %#v", entry["request_id"])
	}
}
