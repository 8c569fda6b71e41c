package dashboard

import (
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/common"
	"procounsel/internal/config"
	"procounsel/internal/dashboard"
	"procounsel/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "basic-auth-username",
		DefaultValue: "",
		Usage:        "when specified together with --basic-auth-password, protects the dashboard with basic auth",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "basic-auth-password",
		DefaultValue: "",
		Usage:        "when specified together with --basic-auth-username, protects the dashboard with basic auth",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "allowed-ips",
		DefaultValue: []string{},
		Usage:        "when specified, restricts dashboard access to these IPs/CIDRs",
		Type:         cli.FlagTypeStringSlice,
	},
}

func init() {
	flags.
		Append(config.GetBackendUrlFlags()).
		Append(config.GetListenAddrFlags(11633)).
		AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"d"},
	Short:   "Starts a read-only dashboard server over the platform's data",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.
			Append(config.GetBackendUrlFlags()).
			Append(config.GetListenAddrFlags(11633)).
			BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/start/dashboard")
		if err != nil {
			return err
		}

		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)

		opts := dashboard.StartHttpServerOpts{
			Addr:        viper.GetString("listen-addr"),
			Counsellors: store.NewCounsellorStore(client),
			Done:        make(chan common.Done),
			ServiceLogs: serviceLogs,
			Withdrawals: store.NewWithdrawalStore(client),
		}

		basicAuthUsername := viper.GetString("basic-auth-username")
		basicAuthPassword := viper.GetString("basic-auth-password")
		if basicAuthUsername != "" || basicAuthPassword != "" {
			opts.BasicAuth = &dashboard.StartHttpServerBasicAuthOpts{
				Username: basicAuthUsername,
				Password: basicAuthPassword,
			}
		}

		allowedIps := viper.GetStringSlice("allowed-ips")
		if len(allowedIps) > 0 {
			opts.IpAllowlist = &dashboard.StartHttpServerIpAllowlistOpts{
				AllowedIps: allowedIps,
			}
		}

		logrus.Infof("starting the dashboard server on addr[%s]...", opts.Addr)
		if err := dashboard.StartHttpServer(opts); err != nil {
			return fmt.Errorf("failed to run the dashboard server: %s", err)
		}
		return nil
	},
}
