package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"viewer":{"id":"user-002","email":"user@example.com","name":"Boully Galissa","role":"user"},"is_authenticated":true,"is_loading":false}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	viewer, err := c.Login("user@example.com", "anything")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if viewer.Name != "Boully Galissa" || viewer.Role != "user" {
		t.Errorf("unexpected viewer: %+v", viewer)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login("nobody@example.com", "guess"); err == nil {
		t.Fatal("expected error, got nil")
	} else if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("expected status in error, got: %v", err)
	}
}

func TestSession_RedirectMeansSignedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login?from=%2Fapi%2Fauth%2Fsession", http.StatusFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	session, err := c.Session()
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if session.IsAuthenticated || session.Viewer != nil {
		t.Errorf("expected signed-out session, got: %+v", session)
	}
}

func TestSession_ServiceUnavailableMeansLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	session, err := c.Session()
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !session.IsLoading {
		t.Errorf("expected loading session, got: %+v", session)
	}
}

func TestListCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cards" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"card-001","owner_id":"user-001","name":"John Doe","is_active":true,"template":"default"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	cards, err := c.ListCards()
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != "card-001" || !cards[0].IsActive {
		t.Errorf("unexpected cards: %+v", cards)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Card not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.GetCard("card-999"); err == nil {
		t.Fatal("expected error, got nil")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got: %v", err)
	}
}
