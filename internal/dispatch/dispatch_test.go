package dispatch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"procounsel/internal/store"
	"procounsel/pkg/backend"
)

type silentNotifier struct{}

func (n silentNotifier) Successf(format string, args ...any) {}
func (n silentNotifier) Errorf(format string, args ...any)   {}

func newTestDispatcher(t *testing.T, handler http.Handler) (*Dispatcher, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := backend.NewClient(backend.NewClientOpts{
		BackendUrl: server.URL,
		AdminId:    "admin-1",
		Id:         "test",
	})
	if err != nil {
		t.Fatalf("failed to create client: %s", err)
	}
	return NewDispatcher(NewDispatcherOpts{
		Client:      client,
		Counsellors: store.NewCounsellorStore(client),
		Withdrawals: store.NewWithdrawalStore(client),
		Notifier:    silentNotifier{},
	}), server
}

func TestApproveCounsellorSecondInvocationIsNoOp(t *testing.T) {
	var verifyCalls atomic.Int64
	release := make(chan struct{})
	entered := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/admin/verifyCounsellor" {
			verifyCalls.Add(1)
			if r.URL.Query().Get("counsellorId") == "john-doe" {
				entered <- struct{}{}
				<-release
			}
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`[]`))
	})
	dispatcher, _ := newTestDispatcher(t, handler)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		dispatcher.ApproveCounsellor(context.Background(), "john-doe")
	}()
	<-entered

	if !dispatcher.IsInFlight("john-doe") {
		t.Errorf("expected approval to be in flight")
	}
	if err := dispatcher.ApproveCounsellor(context.Background(), "john-doe"); !errors.Is(err, ErrorActionInFlight) {
		t.Errorf("expected ErrorActionInFlight, got %v", err)
	}
	if err := dispatcher.ApproveCounsellor(context.Background(), "jane-doe"); errors.Is(err, ErrorActionInFlight) {
		t.Errorf("approval for a different counsellor should not be blocked")
	}

	close(release)
	wg.Wait()
	if verifyCalls.Load() != 2 {
		t.Errorf("expected 2 verify calls (john-doe once, jane-doe once), got %d", verifyCalls.Load())
	}
	if dispatcher.IsInFlight("john-doe") {
		t.Errorf("in-flight marker should clear after the action settles")
	}
}

func TestMarkWithdrawalTransferredSettlesOnFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "transfer failed"}`))
	})
	dispatcher, _ := newTestDispatcher(t, handler)

	if err := dispatcher.MarkWithdrawalTransferred(context.Background(), "pay-1"); err == nil {
		t.Fatalf("expected the transfer to fail")
	}
	if dispatcher.IsInFlight("pay-1") {
		t.Errorf("in-flight marker should clear after a failed action")
	}
	if err := dispatcher.MarkWithdrawalTransferred(context.Background(), "pay-1"); errors.Is(err, ErrorActionInFlight) {
		t.Errorf("retry after failure should not be blocked")
	}
}

func TestBroadcastEmptyBodyMakesNoNetworkCall(t *testing.T) {
	var requests atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	dispatcher, _ := newTestDispatcher(t, handler)

	err := dispatcher.BroadcastNotification(context.Background(), backend.Notification{
		Id:    "notif-1",
		Type:  "all",
		Title: "Scheduled maintenance",
		Body:  "",
	})
	if !errors.Is(err, ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
	if requests.Load() != 0 {
		t.Errorf("expected no network call for an invalid payload, got %d requests", requests.Load())
	}

	err = dispatcher.BroadcastNotification(context.Background(), backend.Notification{
		Id:    "notif-1",
		Type:  "all",
		Title: "Scheduled maintenance",
		Body:  "The platform will be down briefly tonight",
	})
	if err != nil {
		t.Errorf("expected a valid broadcast to succeed: %s", err)
	}
	if requests.Load() != 1 {
		t.Errorf("expected exactly 1 request, got %d", requests.Load())
	}
}

func TestApproveCounsellorRefreshesStore(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/admin/getAllCounsellors" {
			w.Write([]byte(`[{"userName": "john-doe", "verified": true}]`))
			return
		}
		w.Write([]byte(`{}`))
	})
	dispatcher, _ := newTestDispatcher(t, handler)

	if err := dispatcher.ApproveCounsellor(context.Background(), "john-doe"); err != nil {
		t.Fatalf("failed to approve counsellor: %s", err)
	}
	counsellor, exists := dispatcher.counsellors.Find("john-doe")
	if !exists {
		t.Fatalf("expected the counsellor collection to be refreshed")
	}
	if !counsellor.Verified {
		t.Errorf("expected the refreshed counsellor to be verified")
	}
}

func TestValidateNotification(t *testing.T) {
	if err := ValidateNotification(backend.Notification{}); !errors.Is(err, ErrorValidation) {
		t.Errorf("expected an empty notification to fail validation")
	}
	err := ValidateNotification(backend.Notification{
		Id:    "notif-1",
		Type:  "all",
		Title: "Hello",
		Body:  "World",
	})
	if err != nil {
		t.Errorf("expected a complete notification to pass validation: %s", err)
	}
}
