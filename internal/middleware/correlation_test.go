package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCorrelation_PassesSuppliedIDsThrough(t *testing.T) {
	var gotRequestID, gotClientID string

	h := Correlation()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = RequestID(r.Context())
		gotClientID = ClientID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	req.Header.Set(HeaderClientID, "cli-xyz")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if gotRequestID != "req-abc" || gotClientID != "cli-xyz" {
		t.Fatalf("context ids = (%q, %q), want pass-through values", gotRequestID, gotClientID)
	}
	if rec.Header().Get(HeaderRequestID) != "req-abc" {
		t.Fatalf("request id not echoed on response")
	}
	if rec.Header().Get(HeaderClientID) != "cli-xyz" {
		t.Fatalf("client id not echoed on response")
	}
}

func TestCorrelation_GeneratesIDsWhenAbsent(t *testing.T) {
	h := Correlation()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderRequestID); len(got) != 8 {
		t.Fatalf("expected generated 8-char request id, got %q", got)
	}
	if got := rec.Header().Get(HeaderClientID); len(got) != 8 {
		t.Fatalf("expected generated 8-char client id, got %q", got)
	}
}
