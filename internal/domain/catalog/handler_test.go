package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petcare-marketplace/internal/adapters/auth/demo"
	mem "petcare-marketplace/internal/adapters/storage/memory"
	"petcare-marketplace/internal/config"
	"petcare-marketplace/internal/domain/session"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (http.Handler, *session.Store) {
	t.Helper()
	sessions, err := session.NewStore(context.Background(), mem.NewKVStore(),
		demo.NewVerifier(config.DemoConfig{Email: "demo@example.com", Password: "123456"}), nil)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	c := New()
	r := chi.NewRouter()
	RegisterRoutes(r, c, NewBooker(c, sessions), sessions)
	return r, sessions
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandlers_Products(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := serve(r, http.MethodGet, "/products?category=medicine", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var ps []productResponse
	if err := json.NewDecoder(rr.Body).Decode(&ps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ps) != 1 || ps[0].ID != 2 || ps[0].PriceValue != 45000 || ps[0].Discount != "18%" {
		t.Fatalf("unexpected products %#v", ps)
	}

	rr = serve(r, http.MethodGet, "/products?q=nothing-like-this", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %q", rr.Code, rr.Body.String())
	}

	cases := []struct {
		path string
		code int
	}{
		{"/products?category=cars", http.StatusBadRequest},
		{"/products/3", http.StatusOK},
		{"/products/99", http.StatusNotFound},
		{"/products/abc", http.StatusBadRequest},
		{"/categories", http.StatusOK},
		{"/time-slots", http.StatusOK},
	}
	for _, tc := range cases {
		if rr := serve(r, http.MethodGet, tc.path, ""); rr.Code != tc.code {
			t.Fatalf("GET %s: expected %d, got %d", tc.path, tc.code, rr.Code)
		}
	}
}

func TestHandlers_ServicesAndDoctors(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := serve(r, http.MethodGet, "/services/vaccination", "")
	var s serviceResponse
	if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.PriceValue != 200000 || s.Type != session.HomeServiceVaccination || len(s.Includes) != 5 {
		t.Fatalf("unexpected service %#v", s)
	}
	if rr := serve(r, http.MethodGet, "/services/spa", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 unknown service, got %d", rr.Code)
	}

	rr = serve(r, http.MethodGet, "/doctors", "")
	var ds []doctorResponse
	if err := json.NewDecoder(rr.Body).Decode(&ds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ds) != 3 || ds[1].Name != "Dr. Ahmad Pratama" || ds[1].Price != 35000 {
		t.Fatalf("unexpected doctors %#v", ds)
	}
	if rr := serve(r, http.MethodGet, "/doctors/7", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 unknown doctor, got %d", rr.Code)
	}
}

func TestHandlers_BookService(t *testing.T) {
	r, sessions := newTestRouter(t)

	if rr := serve(r, http.MethodPost, "/services/checkup/book", `{"date":"2025-04-02","time":"09:00"}`); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 logged out, got %d", rr.Code)
	}
	if ok, err := sessions.Login(context.Background(), "demo@example.com", "123456"); !ok || err != nil {
		t.Fatalf("login: %v %v", ok, err)
	}

	rr := serve(r, http.MethodPost, "/services/checkup/book", `{"date":"2025-04-02","time":"09:00","pet_id":"pet-2"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rr.Code, rr.Body.String())
	}
	var h session.HomeServiceResponse
	if err := json.NewDecoder(rr.Body).Decode(&h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.PetName != "Luna" || h.Price != 150000 || h.ServiceType != session.HomeServiceHealthCheckup || h.Status != session.StatusUpcoming {
		t.Fatalf("unexpected visit %#v", h)
	}
	if got := sessions.HomeServices()[0]; got.ID != h.ID || got.BookingID != sessions.Bookings()[0].ID {
		t.Fatalf("visit and booking not linked: %#v", got)
	}

	cases := []struct {
		path, body string
		code       int
	}{
		{"/services/checkup/book", `{"date":"02-04-2025","time":"09:00"}`, http.StatusBadRequest},
		{"/services/checkup/book", `{"date":"2025-04-02"}`, http.StatusBadRequest},
		{"/services/checkup/book", `{"date":"2025-04-02","time":"12:30"}`, http.StatusBadRequest},
		{"/services/checkup/book", `{"date":"2025-04-02","time":"09:00","pet_id":"pet-9"}`, http.StatusNotFound},
		{"/services/spa/book", `{"date":"2025-04-02","time":"09:00"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		if rr := serve(r, http.MethodPost, tc.path, tc.body); rr.Code != tc.code {
			t.Fatalf("POST %s %s: expected %d, got %d", tc.path, tc.body, tc.code, rr.Code)
		}
	}
}
