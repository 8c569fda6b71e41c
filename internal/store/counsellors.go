package store

import (
	"context"
	"sync"

	"procounsel/pkg/backend"
)

func NewCounsellorStore(client *backend.Client) *CounsellorStore {
	return &CounsellorStore{
		client: client,
	}
}

// CounsellorStore owns the in-memory counsellor collection; it is
// populated wholesale by Fetch and never patched partially, so a
// mutation is always followed by a refresh rather than a local merge
type CounsellorStore struct {
	client *backend.Client

	mu          sync.RWMutex
	counsellors []backend.Counsellor
	loading     bool
	err         string
	hasFetched  bool
}

// Fetch replaces the stored collection with the backend's current
// one. On failure the previous collection is left untouched and the
// error message is recorded. Safe to call repeatedly; when several
// fetches race, the last one to complete wins.
func (s *CounsellorStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	output, err := s.client.ListCounsellorsV1(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errorMessage(err)
		return err
	}
	s.counsellors = output.Data
	s.hasFetched = true
	return nil
}

// FetchOnce fetches only when no fetch has succeeded yet; callers
// that mount repeatedly use this to avoid redundant refetching
func (s *CounsellorStore) FetchOnce(ctx context.Context) error {
	s.mu.RLock()
	hasFetched := s.hasFetched
	s.mu.RUnlock()
	if hasFetched {
		return nil
	}
	return s.Fetch(ctx)
}

// Counsellors returns the current collection; callers must not
// mutate the returned slice
func (s *CounsellorStore) Counsellors() []backend.Counsellor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counsellors
}

// Find returns the counsellor with the given userName, if present
func (s *CounsellorStore) Find(userName string) (backend.Counsellor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, counsellor := range s.counsellors {
		if counsellor.UserName == userName {
			return counsellor, true
		}
	}
	return backend.Counsellor{}, false
}

func (s *CounsellorStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CounsellorStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *CounsellorStore) HasFetched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasFetched
}
