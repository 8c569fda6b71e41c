package listview

import (
	"strings"
	"testing"

	"procounsel/pkg/backend"
)

func makeCounsellors() []backend.Counsellor {
	names := [][2]string{
		{"Jane", "Doe"}, {"Alan", "Smith"}, {"Priya", "Sharma"},
		{"Rahul", "Verma"}, {"Anita", "Desai"}, {"Vikram", "Rao"},
		{"Neha", "Kapoor"}, {"Arjun", "Mehta"}, {"Sara", "Khan"},
		{"Dev", "Patel"}, {"Maya", "Iyer"}, {"Rohan", "Joshi"},
	}
	counsellors := make([]backend.Counsellor, 0, len(names))
	for i, name := range names {
		counsellors = append(counsellors, backend.Counsellor{
			UserName:  strings.ToLower(name[0]),
			FirstName: name[0],
			LastName:  name[1],
			Verified:  i < 4,
		})
	}
	return counsellors
}

func TestSearchMatchesDisplayNameCaseInsensitively(t *testing.T) {
	counsellors := makeCounsellors()
	filtered := FilterCounsellors(counsellors, "AN", CounsellorStatusAll)
	if len(filtered) == 0 {
		t.Fatalf("expected matches for 'AN'")
	}
	for _, counsellor := range filtered {
		if !strings.Contains(strings.ToLower(counsellor.FullName()), "an") {
			t.Errorf("counsellor %q does not match the search term", counsellor.FullName())
		}
	}
}

func TestEmptySearchMatchesEverything(t *testing.T) {
	counsellors := makeCounsellors()
	filtered := FilterCounsellors(counsellors, "", CounsellorStatusAll)
	if len(filtered) != len(counsellors) {
		t.Errorf("expected the full collection, got %d of %d", len(filtered), len(counsellors))
	}
}

func TestStatusFilterPartitionsCollection(t *testing.T) {
	counsellors := makeCounsellors()
	approved := FilterCounsellors(counsellors, "", CounsellorStatusApproved)
	pending := FilterCounsellors(counsellors, "", CounsellorStatusPending)
	for _, counsellor := range approved {
		if !counsellor.Verified {
			t.Errorf("unverified counsellor %q under the approved filter", counsellor.UserName)
		}
	}
	for _, counsellor := range pending {
		if counsellor.Verified {
			t.Errorf("verified counsellor %q under the pending filter", counsellor.UserName)
		}
	}
	if len(approved)+len(pending) != len(counsellors) {
		t.Errorf("approved (%d) + pending (%d) should partition all %d", len(approved), len(pending), len(counsellors))
	}
}

func TestApprovedScenario(t *testing.T) {
	// 12 counselors, page size 5, no search, filter approved, 4
	// verified: one page showing all 4
	counsellors := makeCounsellors()
	filtered := FilterCounsellors(counsellors, "", CounsellorStatusApproved)
	if len(filtered) != 4 {
		t.Fatalf("expected 4 approved counsellors, got %d", len(filtered))
	}
	page := Paginate(len(filtered), 1, CounsellorPageSize)
	if page.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", page.TotalPages)
	}
	if got := len(filtered[page.Start:page.End]); got != 4 {
		t.Errorf("expected page 1 to show all 4, got %d", got)
	}
}

func TestUnknownWithdrawalStatusOnlyAppearsUnderAll(t *testing.T) {
	withdrawals := []backend.Withdrawal{
		{PaymentId: "pay_1", RequestStatus: "processing"},
		{PaymentId: "pay_2", RequestStatus: "completed"},
		{PaymentId: "pay_3", RequestStatus: "rejected??"},
	}
	for _, status := range []WithdrawalStatus{WithdrawalStatusProcessing, WithdrawalStatusCompleted, WithdrawalStatusTransferred} {
		for _, withdrawal := range FilterWithdrawals(withdrawals, "", status) {
			if withdrawal.PaymentId == "pay_3" {
				t.Errorf("unrecognized status leaked into the %q filter", status)
			}
		}
	}
	all := FilterWithdrawals(withdrawals, "", WithdrawalStatusAll)
	if len(all) != 3 {
		t.Errorf("expected the all filter to return every request, got %d", len(all))
	}
	if got := WithdrawalDisplayStatus(withdrawals[2]); got != "Unknown" {
		t.Errorf("expected an unrecognized status to display as Unknown, got %q", got)
	}
}

func TestWithdrawalSearchMatchesNameOrPaymentId(t *testing.T) {
	withdrawals := []backend.Withdrawal{
		{PaymentId: "pay_abc", CounsellorFullName: "Jane Doe", RequestStatus: "processing"},
		{PaymentId: "pay_xyz", CounsellorFullName: "Alan Smith", RequestStatus: "processing"},
	}
	byName := FilterWithdrawals(withdrawals, "jane", WithdrawalStatusAll)
	if len(byName) != 1 || byName[0].PaymentId != "pay_abc" {
		t.Errorf("expected the name search to match pay_abc, got %+v", byName)
	}
	byId := FilterWithdrawals(withdrawals, "XYZ", WithdrawalStatusAll)
	if len(byId) != 1 || byId[0].PaymentId != "pay_xyz" {
		t.Errorf("expected the payment-id search to match pay_xyz, got %+v", byId)
	}
}

func TestWithdrawalDisplayStatus(t *testing.T) {
	cases := []struct {
		status   string
		approved bool
		want     string
	}{
		{"completed", false, "Completed"},
		{"transferred", true, "Completed"},
		{"processing", false, "Processing"},
		{"processing", true, "Unknown"},
		{"", false, "Unknown"},
	}
	for _, c := range cases {
		got := WithdrawalDisplayStatus(backend.Withdrawal{RequestStatus: c.status, RequestApproved: c.approved})
		if got != c.want {
			t.Errorf("status %q approved=%v: expected %q, got %q", c.status, c.approved, got, c.want)
		}
	}
}

func TestCounts(t *testing.T) {
	counts := CountCounsellors(makeCounsellors())
	if counts.All != 12 || counts.Approved != 4 || counts.Pending != 8 {
		t.Errorf("unexpected counts: %+v", counts)
	}

	withdrawalCounts := CountWithdrawals([]backend.Withdrawal{
		{RequestStatus: "processing"},
		{RequestStatus: "completed"},
		{RequestStatus: "transferred"},
		{RequestStatus: "???"},
	})
	if withdrawalCounts.All != 4 || withdrawalCounts.Processing != 1 ||
		withdrawalCounts.Completed != 1 || withdrawalCounts.Transferred != 1 {
		t.Errorf("unexpected withdrawal counts: %+v", withdrawalCounts)
	}
}
