package directory

import (
	"testing"

	"github.com/papecode/nfc-card-demo/internal/identity"
)

func TestFindByEmailCaseInsensitive(t *testing.T) {
	d := New(Seed())

	tests := []struct {
		email string
		found bool
		id    string
	}{
		{"admin@example.com", true, "user-001"},
		{"Admin@Example.com", true, "user-001"},
		{"ADMIN@EXAMPLE.COM", true, "user-001"},
		{"user@example.com", true, "user-002"},
		{"nobody@example.com", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		u, ok := d.FindByEmail(tt.email)
		if ok != tt.found {
			t.Errorf("FindByEmail(%q) found = %v, want %v", tt.email, ok, tt.found)
			continue
		}
		if ok && u.ID != tt.id {
			t.Errorf("FindByEmail(%q) id = %q, want %q", tt.email, u.ID, tt.id)
		}
	}
}

func TestExistsCaseInsensitive(t *testing.T) {
	d := New(Seed())

	if !d.Exists("PAUL@example.com") {
		t.Error("Exists should match regardless of case")
	}
	if d.Exists("new@x.com") {
		t.Error("Exists reported an unregistered email")
	}
}

func TestAddAndGet(t *testing.T) {
	d := New(nil)

	u := identity.User{ID: "abc", Email: "new@x.com", Name: "New Name", Role: identity.RoleUser}
	d.Add(u)

	got, ok := d.Get("abc")
	if !ok || got.Email != "new@x.com" {
		t.Fatalf("Get after Add = %+v, %v", got, ok)
	}
	if !d.Exists("NEW@X.COM") {
		t.Error("added identity should be found case-insensitively")
	}
}

func TestListReturnsCopy(t *testing.T) {
	d := New(Seed())

	list := d.List()
	if len(list) != len(Seed()) {
		t.Fatalf("List length = %d, want %d", len(list), len(Seed()))
	}

	list[0].Email = "mutated@example.com"
	if _, ok := d.FindByEmail("mutated@example.com"); ok {
		t.Error("mutating the returned slice must not affect the directory")
	}
}
