package withdrawals

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/listview"
	"procounsel/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "search",
		Short:        's',
		DefaultValue: "",
		Usage:        "filters the list down to withdrawal requests whose counsellor name or payment id contains this text",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "status",
		DefaultValue: string(listview.WithdrawalStatusAll),
		Usage:        fmt.Sprintf("filters the list by request status (one of [%s])", joinWithdrawalStatuses()),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "page",
		Short:        'p',
		DefaultValue: 1,
		Usage:        "selects the page of results to display",
		Type:         cli.FlagTypeInteger,
	},
}

func joinWithdrawalStatuses() string {
	statuses := []string{}
	for _, status := range listview.WithdrawalStatuses {
		statuses = append(statuses, string(status))
	}
	return strings.Join(statuses, ", ")
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "withdrawals",
	Aliases: []string{"withdrawal", "w"},
	Short:   "Lists the withdrawal requests raised by counsellors",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/list/withdrawals")
		if err != nil {
			return err
		}

		withdrawalStore := store.NewWithdrawalStore(client)
		if err := withdrawalStore.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("failed to list withdrawals: %s", withdrawalStore.Err())
		}

		search := viper.GetString("search")
		status := listview.WithdrawalStatus(viper.GetString("status"))

		all := withdrawalStore.Withdrawals()
		counts := listview.CountWithdrawals(all)
		filtered := listview.FilterWithdrawals(all, search, status)

		var pages listview.State
		page := pages.Jump(search, string(status), viper.GetInt("page"), len(filtered), listview.WithdrawalPageSize)
		visible := filtered[page.Start:page.End]

		switch viper.GetString("output") {
		case "json":
			o, _ := json.MarshalIndent(visible, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			fmt.Printf(
				"All (%v) | Processing (%v) | Completed (%v) | Transferred (%v)\n",
				counts.All, counts.Processing, counts.Completed, counts.Transferred,
			)
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"payment id", "counsellor", "amount", "requested at", "status"},
				Rows: func(t *cli.Table) error {
					for _, withdrawal := range visible {
						// the backend reports this in milliseconds
						requestedAt := "N/A"
						if withdrawal.TimestampOfWithdrawalRequest != 0 {
							requestedAt = time.UnixMilli(withdrawal.TimestampOfWithdrawalRequest).Local().Format(cli.TimestampHuman)
						}
						if err := t.NewRow(
							withdrawal.PaymentId,
							withdrawal.CounsellorFullName,
							withdrawal.WithdrawalRequestAmount,
							requestedAt,
							listview.WithdrawalDisplayStatus(withdrawal),
						); err != nil {
							return err
						}
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
			fmt.Println(page.RangeLabel())
		}

		return nil
	},
}
