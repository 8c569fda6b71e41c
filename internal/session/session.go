package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"procounsel/pkg/backend"
)

const (
	DefaultSessionPath = "/.procounsel/session"

	tokenFilename   = "token"
	adminIdFilename = "adminId"
	userFilename    = "user"
)

// User is the authenticated admin identity as returned by the
// backend's signin endpoint
type User struct {
	UserId              string `json:"userId"`
	JwtToken            string `json:"jwtToken"`
	FirebaseCustomToken string `json:"firebaseCustomToken"`
}

// GetSessionDir returns the directory holding the persisted session
// entries, provisioning it when it doesn't exist yet
func GetSessionDir() (string, error) {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user's home directory: %s", err)
	}
	sessionDir := filepath.Join(userHomeDir, DefaultSessionPath)
	fileInfo, err := os.Lstat(sessionDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(sessionDir, 0700); err != nil {
				return "", fmt.Errorf("failed to provision session directory at path[%s]: %s", sessionDir, err)
			}
			fileInfo, _ = os.Lstat(sessionDir)
		} else {
			return "", fmt.Errorf("path[%s] for session information does not exist: %s", sessionDir, err)
		}
	}
	if !fileInfo.IsDir() {
		return "", fmt.Errorf("path[%s] exists but is not a directory, it should be", sessionDir)
	}
	return sessionDir, nil
}

type NewStoreOpts struct {
	// Dir is the directory the session entries are persisted in;
	// defaults to the user-level session directory when left empty
	Dir string

	// Client performs the signin exchange; its bearer token is set
	// once a session is established or restored
	Client *backend.Client
}

func NewStore(opts NewStoreOpts) (*Store, error) {
	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = GetSessionDir()
		if err != nil {
			return nil, err
		}
	}
	return &Store{
		dir:    dir,
		client: opts.Client,
	}, nil
}

// Store holds the authenticated admin identity, restoring and
// persisting it across invocations. At most one session is active;
// a nil user means logged out.
type Store struct {
	dir    string
	client *backend.Client

	user          *User
	isInitialized bool
	loading       bool
	err           string
}

// Initialize restores a persisted session; it transitions the store
// to initialized exactly once and is a no-op afterwards. A corrupt
// stored user is discarded and the store proceeds as logged out.
func (s *Store) Initialize() {
	if s.isInitialized {
		return
	}
	s.isInitialized = true

	userPath := filepath.Join(s.dir, userFilename)
	storedUser, err := os.ReadFile(userPath)
	if err != nil {
		return
	}
	var user User
	if err := json.Unmarshal(storedUser, &user); err != nil || user.UserId == "" {
		// corrupt entry, drop it and carry on logged out
		os.Remove(userPath)
		return
	}
	s.user = &user
	s.applyAuth()
}

func (s *Store) IsInitialized() bool {
	return s.isInitialized
}

// Login exchanges credentials for a session, persisting the identity
// on success. On failure the state is untouched and `Err` carries a
// human-readable message.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.loading = true
	defer func() { s.loading = false }()

	output, err := s.client.AdminSigninV1(ctx, backend.AdminSigninV1Input{
		Email:    email,
		Password: password,
	})
	if err != nil {
		message := "request failed"
		if output != nil && output.Message != "" {
			message = output.Message
		} else if err.Error() != "" {
			message = err.Error()
		}
		s.err = message
		return err
	}

	user := User{
		UserId:              output.Data.UserId,
		JwtToken:            output.Data.JwtToken,
		FirebaseCustomToken: output.Data.FirebaseCustomToken,
	}
	s.user = &user
	s.applyAuth()
	return s.persist()
}

// Logout clears the in-memory and persisted session
func (s *Store) Logout() error {
	s.user = nil
	if s.client != nil {
		s.client.BearerAuth = nil
	}
	for _, filename := range []string{tokenFilename, adminIdFilename, userFilename} {
		path := filepath.Join(s.dir, filename)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session entry at path[%s]: %s", path, err)
		}
	}
	return nil
}

func (s *Store) Current() *User {
	return s.user
}

func (s *Store) IsLoggedIn() bool {
	return s.user != nil
}

func (s *Store) Loading() bool {
	return s.loading
}

// Err returns the last login failure message, empty when none
func (s *Store) Err() string {
	return s.err
}

// ClearError resets the error after it has been surfaced once so it
// doesn't fire again on the next read
func (s *Store) ClearError() {
	s.err = ""
}

func (s *Store) applyAuth() {
	if s.client == nil || s.user == nil {
		return
	}
	s.client.AdminId = s.user.UserId
	s.client.BearerAuth = &backend.NewClientBearerAuthOpts{
		Token: s.user.JwtToken,
	}
}

func (s *Store) persist() error {
	userData, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %s", err)
	}
	entries := map[string][]byte{
		tokenFilename:   []byte(s.user.JwtToken),
		adminIdFilename: []byte(s.user.UserId),
		userFilename:    userData,
	}
	for filename, data := range entries {
		path := filepath.Join(s.dir, filename)
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write session entry to path[%s]: %s", path, err)
		}
	}
	return nil
}
