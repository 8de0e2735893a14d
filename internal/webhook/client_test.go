package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oggyb/chat-archive/internal/request"
)

func TestClient_NotifyErasure(t *testing.T) {
	var got request.ErasureNoticeRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-archive-auth-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	if err := c.NotifyErasure(context.Background(), "jdoe", 7); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	if got.UserID != "jdoe" || got.Deleted != 7 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if gotAuth != "secret" {
		t.Fatalf("auth key not forwarded, got %q", gotAuth)
	}
}

func TestClient_NotifyErasure_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := c.NotifyErasure(context.Background(), "jdoe", 1); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("health failed: %v", err)
	}
}
