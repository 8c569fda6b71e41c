package listview

import (
	"strings"

	"procounsel/pkg/backend"
)

// CounsellorStatus is the categorical filter over counsellor
// verification state
type CounsellorStatus string

const (
	CounsellorStatusAll      CounsellorStatus = "all"
	CounsellorStatusApproved CounsellorStatus = "approved"
	CounsellorStatusPending  CounsellorStatus = "pending"
)

var CounsellorStatuses = []CounsellorStatus{
	CounsellorStatusAll,
	CounsellorStatusApproved,
	CounsellorStatusPending,
}

// WithdrawalStatus is the categorical filter over withdrawal request
// state; values the backend introduces outside this set never match
// a concrete status and only appear under "all"
type WithdrawalStatus string

const (
	WithdrawalStatusAll         WithdrawalStatus = "all"
	WithdrawalStatusProcessing  WithdrawalStatus = "processing"
	WithdrawalStatusCompleted   WithdrawalStatus = "completed"
	WithdrawalStatusTransferred WithdrawalStatus = "transferred"
)

var WithdrawalStatuses = []WithdrawalStatus{
	WithdrawalStatusAll,
	WithdrawalStatusProcessing,
	WithdrawalStatusCompleted,
	WithdrawalStatusTransferred,
}

// FilterCounsellors derives the visible subset: a case-insensitive
// substring match of `search` against the counsellor's full name,
// intersected with the status filter
func FilterCounsellors(items []backend.Counsellor, search string, status CounsellorStatus) []backend.Counsellor {
	needle := strings.ToLower(search)
	filtered := []backend.Counsellor{}
	for _, counsellor := range items {
		if !strings.Contains(strings.ToLower(counsellor.FullName()), needle) {
			continue
		}
		switch status {
		case CounsellorStatusApproved:
			if !counsellor.Verified {
				continue
			}
		case CounsellorStatusPending:
			if counsellor.Verified {
				continue
			}
		}
		filtered = append(filtered, counsellor)
	}
	return filtered
}

// FilterWithdrawals derives the visible subset: search matches the
// counsellor's full name or the payment id, intersected with the
// status filter over the raw request status
func FilterWithdrawals(items []backend.Withdrawal, search string, status WithdrawalStatus) []backend.Withdrawal {
	needle := strings.ToLower(search)
	filtered := []backend.Withdrawal{}
	for _, withdrawal := range items {
		matchesSearch := strings.Contains(strings.ToLower(withdrawal.CounsellorFullName), needle) ||
			strings.Contains(strings.ToLower(withdrawal.PaymentId), needle)
		if !matchesSearch {
			continue
		}
		if status != WithdrawalStatusAll && withdrawal.RequestStatus != string(status) {
			continue
		}
		filtered = append(filtered, withdrawal)
	}
	return filtered
}

// WithdrawalDisplayStatus maps a request's raw state onto the label
// shown to staff; unrecognized states render as Unknown
func WithdrawalDisplayStatus(w backend.Withdrawal) string {
	switch {
	case w.RequestStatus == backend.WithdrawalStatusCompleted:
		return "Completed"
	case w.RequestStatus == backend.WithdrawalStatusTransferred:
		return "Completed"
	case w.RequestStatus == backend.WithdrawalStatusProcessing && !w.RequestApproved:
		return "Processing"
	default:
		return "Unknown"
	}
}

// CounsellorCounts are the per-status totals over the unfiltered
// collection, shown on the filter tabs
type CounsellorCounts struct {
	All      int `json:"all"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

func CountCounsellors(items []backend.Counsellor) CounsellorCounts {
	counts := CounsellorCounts{All: len(items)}
	for _, counsellor := range items {
		if counsellor.Verified {
			counts.Approved++
		} else {
			counts.Pending++
		}
	}
	return counts
}

// WithdrawalCounts are the per-status totals over the unfiltered
// collection
type WithdrawalCounts struct {
	All         int `json:"all"`
	Processing  int `json:"processing"`
	Completed   int `json:"completed"`
	Transferred int `json:"transferred"`
}

func CountWithdrawals(items []backend.Withdrawal) WithdrawalCounts {
	counts := WithdrawalCounts{All: len(items)}
	for _, withdrawal := range items {
		switch withdrawal.RequestStatus {
		case backend.WithdrawalStatusProcessing:
			counts.Processing++
		case backend.WithdrawalStatusCompleted:
			counts.Completed++
		case backend.WithdrawalStatusTransferred:
			counts.Transferred++
		}
	}
	return counts
}
