package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type countingTransport struct {
	calls int
	inner http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return t.inner.RoundTrip(req)
}

func newCountingClient(t *testing.T, srv *httptest.Server, store Store) (*Client, *countingTransport) {
	t.Helper()
	transport := &countingTransport{inner: http.DefaultTransport}
	httpClient := &http.Client{Transport: transport}
	base := ""
	if srv != nil {
		base = srv.URL
	}
	return NewClient(base, store, httpClient), transport
}

func TestManager_Bootstrap_NoCredentialStaysOffline(t *testing.T) {
	store := NewMemStore()
	client, transport := newCountingClient(t, nil, store)
	mgr := NewManager(client, store)

	if state := mgr.Bootstrap(context.Background()); state != StateAnonymous {
		t.Fatalf("expected anonymous, got %s", state)
	}
	if transport.calls != 0 {
		t.Fatalf("bootstrap without a credential must make no network call, made %d", transport.calls)
	}
}

func TestManager_Bootstrap_ValidCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer stored-token" {
			t.Fatalf("unexpected auth header %q", got)
		}
		_ = json.NewEncoder(w).Encode(Identity{ID: "u1", Email: "a@b.c", Role: "ADMIN"})
	}))
	defer srv.Close()

	store := NewMemStore()
	store.Set(KeyAccessToken, "stored-token")
	client, _ := newCountingClient(t, srv, store)
	mgr := NewManager(client, store)

	if state := mgr.Bootstrap(context.Background()); state != StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
	if identity := mgr.Identity(); identity == nil || identity.ID != "u1" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if _, ok := store.Get(KeyIdentity); !ok {
		t.Fatalf("identity must be persisted after bootstrap")
	}
}

func TestManager_Bootstrap_RejectedCredentialClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	store := NewMemStore()
	store.Set(KeyAccessToken, "stale")
	store.Set(KeyRefreshToken, "stale-refresh")
	store.Set(KeyIdentity, `{"id":"u1"}`)
	client, _ := newCountingClient(t, srv, store)
	mgr := NewManager(client, store)

	if state := mgr.Bootstrap(context.Background()); state != StateAnonymous {
		t.Fatalf("expected anonymous, got %s", state)
	}
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyIdentity} {
		if _, ok := store.Get(key); ok {
			t.Fatalf("key %s must be cleared after rejection", key)
		}
	}
}

func TestManager_Bootstrap_ServerErrorClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewMemStore()
	store.Set(KeyAccessToken, "token")
	store.Set(KeyRefreshToken, "refresh")
	store.Set(KeyIdentity, `{"id":"u1"}`)
	client, _ := newCountingClient(t, srv, store)
	mgr := NewManager(client, store)

	if state := mgr.Bootstrap(context.Background()); state != StateAnonymous {
		t.Fatalf("expected anonymous after a server error, got %s", state)
	}
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyIdentity} {
		if _, ok := store.Get(key); ok {
			t.Fatalf("key %s must be cleared after a server error", key)
		}
	}
}

func TestManager_Bootstrap_TransportErrorClearsEverything(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyAccessToken, "token")
	store.Set(KeyRefreshToken, "refresh")
	store.Set(KeyIdentity, `{"id":"u1"}`)
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	client, _ := newCountingClient(t, srv, store)
	mgr := NewManager(client, store)

	if state := mgr.Bootstrap(context.Background()); state != StateAnonymous {
		t.Fatalf("expected anonymous after a transport failure, got %s", state)
	}
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyIdentity} {
		if _, ok := store.Get(key); ok {
			t.Fatalf("key %s must be cleared after a transport failure", key)
		}
	}
}

func TestManager_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(authPayload{
			AccessToken:  "acc",
			RefreshToken: "ref",
			User:         &Identity{ID: "u1", Email: "a@b.c", Role: "SELLER"},
		})
	}))
	defer srv.Close()

	store := NewMemStore()
	client, _ := newCountingClient(t, srv, store)
	mgr := NewManager(client, store)

	identity, err := mgr.Login(context.Background(), "a@b.c", "pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.Role != "SELLER" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if mgr.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", mgr.State())
	}

	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyIdentity} {
		if _, ok := store.Get(key); !ok {
			t.Fatalf("key %s must be persisted after login", key)
		}
	}
}
