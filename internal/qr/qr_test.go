package qr

import (
	"net/url"
	"strings"
	"testing"
)

func TestPublicViewURL(t *testing.T) {
	tests := []struct {
		base string
		id   string
		want string
	}{
		{"http://localhost:8080", "card-001", "http://localhost:8080/cards/card-001/view"},
		{"https://cards.example.com/", "card-002", "https://cards.example.com/cards/card-002/view"},
	}

	for _, tt := range tests {
		b := NewLinkBuilder(tt.base)
		if got := b.PublicViewURL(tt.id); got != tt.want {
			t.Errorf("PublicViewURL(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestImageURLEncodesViewLink(t *testing.T) {
	b := NewLinkBuilder("http://localhost:8080")

	raw := b.ImageURL("card-001")
	if !strings.HasPrefix(raw, "https://api.qrserver.com/v1/create-qr-code/?") {
		t.Fatalf("unexpected endpoint: %q", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("image URL does not parse: %v", err)
	}
	if got := u.Query().Get("data"); got != "http://localhost:8080/cards/card-001/view" {
		t.Errorf("data = %q", got)
	}
	if got := u.Query().Get("size"); got != "150x150" {
		t.Errorf("size = %q", got)
	}
}
