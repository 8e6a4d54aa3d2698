package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()

	kv, err := Open(filepath.Join(t.TempDir(), "kv.sqlite"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	if _, err := kv.Get("absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on absent key = %v, want ErrNotFound", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("session", `{"id":"user-001"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := kv.Get("session")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `{"id":"user-001"}` {
		t.Errorf("Get = %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("k", "second"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "second" {
		t.Errorf("Get after overwrite = %q, want %q", got, "second")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete of absent key should succeed, got %v", err)
	}
}
