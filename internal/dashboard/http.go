package dashboard

import (
	"fmt"
	"net/http"

	"procounsel/internal/common"
	"procounsel/internal/store"

	"github.com/gorilla/mux"
)

type StartHttpServerOpts struct {
	Addr        string
	BasicAuth   *StartHttpServerBasicAuthOpts
	Counsellors *store.CounsellorStore
	Done        chan common.Done
	IpAllowlist *StartHttpServerIpAllowlistOpts
	ServiceLogs chan<- common.ServiceLog
	Withdrawals *store.WithdrawalStore
}

type StartHttpServerBasicAuthOpts struct {
	Username string
	Password string
}

type StartHttpServerIpAllowlistOpts struct {
	AllowedIps []string
}

// StartHttpServer serves a read-only JSON view over the counsellor
// and withdrawal collections; it blocks until the server is closed
// via the Done channel
func StartHttpServer(opts StartHttpServerOpts) error {
	router := getRouter(routerOpts{
		Counsellors: opts.Counsellors,
		Withdrawals: opts.Withdrawals,
		ServiceLogs: opts.ServiceLogs,
	})

	serverOpts := common.NewHttpServerOpts{
		Addr:        opts.Addr,
		Done:        opts.Done,
		Handler:     router,
		ServiceLogs: opts.ServiceLogs,
	}

	if opts.BasicAuth != nil {
		serverOpts.BasicAuth = &common.NewHttpServerBasicAuthOpts{
			Username: opts.BasicAuth.Username,
			Password: opts.BasicAuth.Password,
		}
	}

	if opts.IpAllowlist != nil {
		serverOpts.IpAllowlist = &common.NewHttpServerIpAllowlistOpts{
			AllowedIps: opts.IpAllowlist.AllowedIps,
		}
	}

	server, err := common.NewHttpServer(serverOpts)
	if err != nil {
		return fmt.Errorf("failed to create a http server: %w", err)
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

type routerOpts struct {
	Counsellors *store.CounsellorStore
	Withdrawals *store.WithdrawalStore
	ServiceLogs chan<- common.ServiceLog
}

func getRouter(opts routerOpts) *mux.Router {
	router := mux.NewRouter()

	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:      router,
		ServiceLogs: opts.ServiceLogs,
	})

	router.HandleFunc("/api/v1/counsellors", getListCounsellorsHandler(opts.Counsellors)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/withdrawals", getListWithdrawalsHandler(opts.Withdrawals)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/overview", getOverviewHandler(opts.Counsellors, opts.Withdrawals)).Methods(http.MethodGet)

	router.NotFoundHandler = common.GetNotFoundHandler()

	return router
}
