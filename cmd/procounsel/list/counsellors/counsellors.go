package counsellors

import (
	"encoding/json"
	"fmt"
	"strings"

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
		Usage:        "filters the list down to counsellors whose name contains this text",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "status",
		DefaultValue: string(listview.CounsellorStatusAll),
		Usage:        fmt.Sprintf("filters the list by approval status (one of [%s])", joinCounsellorStatuses()),
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

func formatRate(rate *float64) string {
	if rate == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *rate)
}

func joinCounsellorStatuses() string {
	statuses := []string{}
	for _, status := range listview.CounsellorStatuses {
		statuses = append(statuses, string(status))
	}
	return strings.Join(statuses, ", ")
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "counsellors",
	Aliases: []string{"counsellor", "c"},
	Short:   "Lists the counsellors registered on the platform",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/list/counsellors")
		if err != nil {
			return err
		}

		counsellorStore := store.NewCounsellorStore(client)
		if err := counsellorStore.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("failed to list counsellors: %s", counsellorStore.Err())
		}

		search := viper.GetString("search")
		status := listview.CounsellorStatus(viper.GetString("status"))

		all := counsellorStore.Counsellors()
		counts := listview.CountCounsellors(all)
		filtered := listview.FilterCounsellors(all, search, status)

		var pages listview.State
		page := pages.Jump(search, string(status), viper.GetInt("page"), len(filtered), listview.CounsellorPageSize)
		visible := filtered[page.Start:page.End]

		switch viper.GetString("output") {
		case "json":
			o, _ := json.MarshalIndent(visible, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			fmt.Printf("All (%v) | Approved (%v) | Pending (%v)\n", counts.All, counts.Approved, counts.Pending)
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"username", "name", "email", "verified", "rate/min", "rate/yr"},
				Rows: func(t *cli.Table) error {
					for _, counsellor := range visible {
						if err := t.NewRow(
							counsellor.UserName,
							counsellor.FullName(),
							counsellor.Email,
							counsellor.Verified,
							formatRate(counsellor.RatePerMinute),
							formatRate(counsellor.RatePerYear),
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
