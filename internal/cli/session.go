package cli

import (
	"fmt"

	"procounsel/internal/session"
	"procounsel/pkg/backend"
)

// RequireSession restores the persisted admin session and returns a
// backend client carrying its credentials. Commands that talk to
// authenticated endpoints call this before doing anything else.
func RequireSession(backendUrl string, methodId string) (*session.Store, *backend.Client, error) {
	client, err := backend.NewClient(backend.NewClientOpts{
		BackendUrl: backendUrl,
		Id:         methodId,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	sessionStore, err := session.NewStore(session.NewStoreOpts{
		Client: client,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	sessionStore.Initialize()
	if !sessionStore.IsLoggedIn() {
		fmt.Println("⚠️ You must be logged-in to run this command")
		fmt.Println("⚠️ Please login using `procounsel login`")
		return nil, nil, ErrorNotAuthenticated
	}

	return sessionStore, client, nil
}
