package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"procounsel/internal/store"
	"procounsel/pkg/backend"
)

var (
	// ErrorActionInFlight indicates a mutation for the same entity
	// has not settled yet; the caller's invocation was a no-op
	ErrorActionInFlight = errors.New("action_in_flight")

	// ErrorValidation indicates required input was missing; no
	// network call was made
	ErrorValidation = errors.New("validation_failed")
)

// Notifier surfaces transient action outcomes to the user
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
}

type NewDispatcherOpts struct {
	Client      *backend.Client
	Counsellors *store.CounsellorStore
	Withdrawals *store.WithdrawalStore
	Notifier    Notifier
}

func NewDispatcher(opts NewDispatcherOpts) *Dispatcher {
	return &Dispatcher{
		client:      opts.Client,
		counsellors: opts.Counsellors,
		withdrawals: opts.Withdrawals,
		notifier:    opts.Notifier,
		inFlight:    map[string]struct{}{},
	}
}

// Dispatcher performs the admin mutations. Per target entity at most
// one mutation is in flight: a second invocation while the first has
// not settled is a no-op. After a successful mutation the owning
// store is refreshed wholesale instead of patched locally.
type Dispatcher struct {
	client      *backend.Client
	counsellors *store.CounsellorStore
	withdrawals *store.WithdrawalStore
	notifier    Notifier

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// begin marks the entity as having a mutation in flight; returns
// false when one already is
func (d *Dispatcher) begin(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.inFlight[id]; exists {
		return false
	}
	d.inFlight[id] = struct{}{}
	return true
}

// settle clears the in-flight marker; runs on success and failure
func (d *Dispatcher) settle(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, id)
}

// IsInFlight reports whether a mutation for the entity is pending
func (d *Dispatcher) IsInFlight(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, exists := d.inFlight[id]
	return exists
}

// ApproveCounsellor verifies a counsellor profile and refreshes the
// counsellor collection
func (d *Dispatcher) ApproveCounsellor(ctx context.Context, userName string) error {
	if strings.TrimSpace(userName) == "" {
		return ErrorValidation
	}
	if !d.begin(userName) {
		return ErrorActionInFlight
	}
	defer d.settle(userName)

	_, err := d.client.VerifyCounsellorV1(ctx, backend.VerifyCounsellorV1Input{
		CounsellorId: userName,
	})
	if err != nil {
		d.notifier.Errorf("Failed to approve counsellor %s: %s", userName, err)
		return err
	}
	d.notifier.Successf("Counsellor %s has been approved", userName)
	return d.counsellors.Fetch(ctx)
}

// UpdateCounsellorRates patches the numeric pricing fields and
// refreshes the counsellor collection; at least one field must be set
func (d *Dispatcher) UpdateCounsellorRates(ctx context.Context, userName string, rates backend.Rates) error {
	if strings.TrimSpace(userName) == "" || rates.IsZero() {
		return ErrorValidation
	}
	if !d.begin(userName) {
		return ErrorActionInFlight
	}
	defer d.settle(userName)

	_, err := d.client.UpdateCounsellorV1(ctx, backend.UpdateCounsellorV1Input{
		CounsellorId: userName,
		Rates:        rates,
	})
	if err != nil {
		d.notifier.Errorf("Failed to update rates for counsellor %s: %s", userName, err)
		return err
	}
	d.notifier.Successf("Rates for counsellor %s have been updated", userName)
	return d.counsellors.Fetch(ctx)
}

// MarkWithdrawalTransferred settles a withdrawal request and
// refreshes the withdrawal collection
func (d *Dispatcher) MarkWithdrawalTransferred(ctx context.Context, paymentId string) error {
	if strings.TrimSpace(paymentId) == "" {
		return ErrorValidation
	}
	if !d.begin(paymentId) {
		return ErrorActionInFlight
	}
	defer d.settle(paymentId)

	_, err := d.client.MarkRequestAsTransferredV1(ctx, backend.MarkRequestAsTransferredV1Input{
		PaymentId: paymentId,
	})
	if err != nil {
		d.notifier.Errorf("Failed to approve the payment %s: %s", paymentId, err)
		return err
	}
	d.notifier.Successf("Transaction %s has been completed successfully", paymentId)
	return d.withdrawals.Fetch(ctx)
}

// BroadcastNotification pushes a notification to all platforms; all
// four fields are required before anything is sent
func (d *Dispatcher) BroadcastNotification(ctx context.Context, notification backend.Notification) error {
	if err := ValidateNotification(notification); err != nil {
		return err
	}
	if !d.begin(notification.Id) {
		return ErrorActionInFlight
	}
	defer d.settle(notification.Id)

	_, err := d.client.BroadcastNotificationV1(ctx, backend.BroadcastNotificationV1Input{
		Notification: notification,
	})
	if err != nil {
		d.notifier.Errorf("Failed to send notification: %s", err)
		return err
	}
	d.notifier.Successf("Notification sent")
	return nil
}

// ValidateNotification enforces the all-fields-required rule for
// broadcast payloads
func ValidateNotification(notification backend.Notification) error {
	missing := []string{}
	for field, value := range map[string]string{
		"id":    notification.Id,
		"type":  notification.Type,
		"title": notification.Title,
		"body":  notification.Body,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing field(s) [%s]", ErrorValidation, strings.Join(missing, ", "))
	}
	return nil
}
