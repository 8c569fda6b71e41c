package dashboard

import (
	"net/http"
	"strconv"

	"procounsel/internal/common"
	"procounsel/internal/listview"
	"procounsel/internal/store"
	"procounsel/pkg/backend"
)

type listCounsellorsResponse struct {
	Items  []backend.Counsellor      `json:"items"`
	Counts listview.CounsellorCounts `json:"counts"`
	Page   listview.Page             `json:"page"`
}

type listWithdrawalsResponse struct {
	Items  []withdrawalView          `json:"items"`
	Counts listview.WithdrawalCounts `json:"counts"`
	Page   listview.Page             `json:"page"`
}

type withdrawalView struct {
	backend.Withdrawal

	DisplayStatus string `json:"displayStatus"`
}

type overviewResponse struct {
	Counsellors listview.CounsellorCounts `json:"counsellors"`
	Withdrawals listview.WithdrawalCounts `json:"withdrawals"`
}

func getListCounsellorsHandler(counsellors *store.CounsellorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := refreshCounsellors(r, counsellors); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadGateway, "failed to fetch counsellors", err)
			return
		}

		search := r.URL.Query().Get("search")
		status := listview.CounsellorStatus(r.URL.Query().Get("status"))
		if status == "" {
			status = listview.CounsellorStatusAll
		}

		all := counsellors.Counsellors()
		filtered := listview.FilterCounsellors(all, search, status)
		page := listview.Paginate(len(filtered), getPageParam(r), listview.CounsellorPageSize)

		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", listCounsellorsResponse{
			Items:  filtered[page.Start:page.End],
			Counts: listview.CountCounsellors(all),
			Page:   page,
		})
	}
}

func getListWithdrawalsHandler(withdrawals *store.WithdrawalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := refreshWithdrawals(r, withdrawals); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadGateway, "failed to fetch withdrawals", err)
			return
		}

		search := r.URL.Query().Get("search")
		status := listview.WithdrawalStatus(r.URL.Query().Get("status"))
		if status == "" {
			status = listview.WithdrawalStatusAll
		}

		all := withdrawals.Withdrawals()
		filtered := listview.FilterWithdrawals(all, search, status)
		page := listview.Paginate(len(filtered), getPageParam(r), listview.WithdrawalPageSize)

		items := []withdrawalView{}
		for _, withdrawal := range filtered[page.Start:page.End] {
			items = append(items, withdrawalView{
				Withdrawal:    withdrawal,
				DisplayStatus: listview.WithdrawalDisplayStatus(withdrawal),
			})
		}

		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", listWithdrawalsResponse{
			Items:  items,
			Counts: listview.CountWithdrawals(all),
			Page:   page,
		})
	}
}

func getOverviewHandler(counsellors *store.CounsellorStore, withdrawals *store.WithdrawalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := refreshCounsellors(r, counsellors); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadGateway, "failed to fetch counsellors", err)
			return
		}
		if err := refreshWithdrawals(r, withdrawals); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadGateway, "failed to fetch withdrawals", err)
			return
		}

		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", overviewResponse{
			Counsellors: listview.CountCounsellors(counsellors.Counsellors()),
			Withdrawals: listview.CountWithdrawals(withdrawals.Withdrawals()),
		})
	}
}

// refreshCounsellors fetches the collection on first use; subsequent
// requests serve the cached copy unless `refresh=true` is given
func refreshCounsellors(r *http.Request, counsellors *store.CounsellorStore) error {
	if r.URL.Query().Get("refresh") == "true" {
		return counsellors.Fetch(r.Context())
	}
	return counsellors.FetchOnce(r.Context())
}

func refreshWithdrawals(r *http.Request, withdrawals *store.WithdrawalStore) error {
	if r.URL.Query().Get("refresh") == "true" {
		return withdrawals.Fetch(r.Context())
	}
	return withdrawals.FetchOnce(r.Context())
}

func getPageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
