package store

import (
	"context"
	"sync"

	"procounsel/pkg/backend"
)

func NewWithdrawalStore(client *backend.Client) *WithdrawalStore {
	return &WithdrawalStore{
		client: client,
	}
}

// WithdrawalStore owns the in-memory withdrawal-request collection
type WithdrawalStore struct {
	client *backend.Client

	mu          sync.RWMutex
	withdrawals []backend.Withdrawal
	loading     bool
	err         string
	hasFetched  bool
}

// Fetch replaces the stored collection wholesale; a failure leaves
// the previous collection untouched
func (s *WithdrawalStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	output, err := s.client.ListWithdrawalsV1(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errorMessage(err)
		return err
	}
	s.withdrawals = output.Data
	s.hasFetched = true
	return nil
}

func (s *WithdrawalStore) FetchOnce(ctx context.Context) error {
	s.mu.RLock()
	hasFetched := s.hasFetched
	s.mu.RUnlock()
	if hasFetched {
		return nil
	}
	return s.Fetch(ctx)
}

func (s *WithdrawalStore) Withdrawals() []backend.Withdrawal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.withdrawals
}

// Find returns the withdrawal with the given paymentId, if present
func (s *WithdrawalStore) Find(paymentId string) (backend.Withdrawal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, withdrawal := range s.withdrawals {
		if withdrawal.PaymentId == paymentId {
			return withdrawal, true
		}
	}
	return backend.Withdrawal{}, false
}

func (s *WithdrawalStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *WithdrawalStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *WithdrawalStore) HasFetched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasFetched
}
