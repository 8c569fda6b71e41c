package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"procounsel/pkg/backend"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	backendUrl := "http://localhost:1"
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		backendUrl = server.URL
	}
	client, err := backend.NewClient(backend.NewClientOpts{
		BackendUrl: backendUrl,
		Id:         "session/test",
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	store, err := NewStore(NewStoreOpts{Dir: dir, Client: client})
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return store, dir
}

func TestInitializeWithoutPersistedSession(t *testing.T) {
	store, _ := newTestStore(t, nil)
	store.Initialize()
	if !store.IsInitialized() {
		t.Fatalf("expected store to be initialized")
	}
	if store.IsLoggedIn() {
		t.Fatalf("expected a fresh store to be logged out")
	}
}

func TestInitializeWithCorruptPersistedSession(t *testing.T) {
	store, dir := newTestStore(t, nil)
	userPath := filepath.Join(dir, "user")
	if err := os.WriteFile(userPath, []byte(`{"userId":`), 0600); err != nil {
		t.Fatalf("failed to seed corrupt session entry: %v", err)
	}

	store.Initialize()

	if !store.IsInitialized() {
		t.Fatalf("expected store to be initialized despite the corrupt entry")
	}
	if store.IsLoggedIn() {
		t.Fatalf("expected a corrupt session to yield a logged-out state")
	}
	if _, err := os.Stat(userPath); !os.IsNotExist(err) {
		t.Errorf("expected the corrupt entry to be removed")
	}
	if store.Err() != "" {
		t.Errorf("a corrupt session must not surface an error, got %q", store.Err())
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	store, dir := newTestStore(t, nil)
	if err := os.WriteFile(filepath.Join(dir, "user"), []byte(`{"userId":"a","jwtToken":"j"}`), 0600); err != nil {
		t.Fatalf("failed to seed session entry: %v", err)
	}
	store.Initialize()
	if !store.IsLoggedIn() {
		t.Fatalf("expected restored session to be logged in")
	}

	// a second call must not re-read from disk
	os.Remove(filepath.Join(dir, "user"))
	store.Initialize()
	if !store.IsLoggedIn() {
		t.Fatalf("expected repeat initialization to be a no-op")
	}
}

func TestLoginPersistsSessionEntries(t *testing.T) {
	store, dir := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userId":"staff@procounsel.co.in","jwtToken":"jwt","firebaseCustomToken":"fb"}`))
	})
	store.Initialize()

	if err := store.Login(context.Background(), "staff@procounsel.co.in", "hunter22"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !store.IsLoggedIn() {
		t.Fatalf("expected store to be logged in")
	}
	for _, filename := range []string{"token", "adminId", "user"} {
		if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
			t.Errorf("expected session entry %q to be persisted: %v", filename, err)
		}
	}
	token, _ := os.ReadFile(filepath.Join(dir, "token"))
	if string(token) != "jwt" {
		t.Errorf("expected token entry to hold the jwt, got %q", string(token))
	}
}

func TestLoginFailureKeepsStateAndRecordsMessage(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})
	store.Initialize()

	if err := store.Login(context.Background(), "staff@procounsel.co.in", "wrong"); err == nil {
		t.Fatalf("expected Login to fail")
	}
	if store.IsLoggedIn() {
		t.Fatalf("expected a failed login to leave the store logged out")
	}
	if store.Err() != "invalid credentials" {
		t.Errorf("expected the server message to be recorded, got %q", store.Err())
	}
	if store.Loading() {
		t.Errorf("expected loading to be cleared after the call")
	}

	store.ClearError()
	if store.Err() != "" {
		t.Errorf("expected ClearError to reset the message")
	}
}

func TestLogoutClearsPersistedEntries(t *testing.T) {
	store, dir := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userId":"a","jwtToken":"j","firebaseCustomToken":"f"}`))
	})
	store.Initialize()
	if err := store.Login(context.Background(), "a", "b"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.IsLoggedIn() {
		t.Fatalf("expected store to be logged out")
	}
	for _, filename := range []string{"token", "adminId", "user"} {
		if _, err := os.Stat(filepath.Join(dir, filename)); !os.IsNotExist(err) {
			t.Errorf("expected session entry %q to be removed", filename)
		}
	}
}
