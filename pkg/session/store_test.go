package session

import "testing"

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, ok := store.Get(KeyAccessToken); ok {
		t.Fatalf("fresh store must be empty")
	}

	store.Set(KeyAccessToken, "tok")
	got, ok := store.Get(KeyAccessToken)
	if !ok || got != "tok" {
		t.Fatalf("expected tok, got %q ok=%v", got, ok)
	}

	store.Delete(KeyAccessToken)
	if _, ok := store.Get(KeyAccessToken); ok {
		t.Fatalf("deleted key must be gone")
	}
}
