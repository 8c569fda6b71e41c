package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"procounsel/pkg/backend"
)

func newSwitchableBackend(t *testing.T) (*backend.Client, *bool) {
	t.Helper()
	failing := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"backend exploded"}`))
			return
		}
		switch r.URL.Path {
		case "/api/admin/getAllCounsellors":
			w.Write([]byte(`[{"userName":"jdoe","firstName":"Jane","lastName":"Doe","verified":true},{"userName":"asmith","firstName":"Alan","lastName":"Smith","verified":false}]`))
		case "/api/admin/getAllWithdrawals":
			w.Write([]byte(`[{"paymentId":"pay_1","counsellorFullName":"Jane Doe","requestStatus":"processing","requestApproved":false}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	client, err := backend.NewClient(backend.NewClientOpts{
		BackendUrl: server.URL,
		AdminId:    "admin@procounsel.co.in",
		Id:         "store/test",
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client, &failing
}

func TestCounsellorStoreFetchReplacesWholesale(t *testing.T) {
	client, _ := newSwitchableBackend(t)
	s := NewCounsellorStore(client)

	if s.HasFetched() {
		t.Fatalf("expected a fresh store to report hasFetched=false")
	}
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got := len(s.Counsellors()); got != 2 {
		t.Fatalf("expected 2 counsellors, got %d", got)
	}
	if !s.HasFetched() {
		t.Errorf("expected hasFetched to be set after a successful fetch")
	}
	if s.Loading() {
		t.Errorf("expected loading to be cleared after the fetch")
	}
}

func TestFailedFetchKeepsPreviousCollection(t *testing.T) {
	client, failing := newSwitchableBackend(t)
	s := NewCounsellorStore(client)

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	*failing = true
	if err := s.Fetch(context.Background()); err == nil {
		t.Fatalf("expected the second fetch to fail")
	}
	if got := len(s.Counsellors()); got != 2 {
		t.Errorf("expected the previous collection to survive a failed fetch, got %d items", got)
	}
	if s.Err() == "" {
		t.Errorf("expected a non-empty error message after a failed fetch")
	}
	if s.Err() != "backend exploded" {
		t.Errorf("expected the server message to be preferred, got %q", s.Err())
	}

	// a later successful fetch clears the error again
	*failing = false
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if s.Err() != "" {
		t.Errorf("expected the error to be cleared by a successful fetch, got %q", s.Err())
	}
}

func TestFetchOnceSkipsAfterSuccess(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	client, err := backend.NewClient(backend.NewClientOpts{BackendUrl: server.URL, Id: "store/test"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	s := NewWithdrawalStore(client)
	for i := 0; i < 3; i++ {
		if err := s.FetchOnce(context.Background()); err != nil {
			t.Fatalf("FetchOnce returned error: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("expected exactly 1 request across repeated FetchOnce calls, got %d", requests)
	}
}

func TestWithdrawalStoreFind(t *testing.T) {
	client, _ := newSwitchableBackend(t)
	s := NewWithdrawalStore(client)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	withdrawal, ok := s.Find("pay_1")
	if !ok {
		t.Fatalf("expected pay_1 to be found")
	}
	if !withdrawal.IsActionable() {
		t.Errorf("expected an unapproved processing request to be actionable")
	}
	if _, ok := s.Find("pay_404"); ok {
		t.Errorf("expected an unknown paymentId to not be found")
	}
}
