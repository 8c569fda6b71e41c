package rates

import (
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/dispatch"
	"procounsel/internal/store"
	"procounsel/internal/validate"
	"procounsel/pkg/backend"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "rate-per-minute",
		DefaultValue: 0.0,
		Usage:        "sets the counsellor's per-minute consultation rate",
		Type:         cli.FlagTypeFloat,
	},
	{
		Name:         "rate-per-year",
		DefaultValue: 0.0,
		Usage:        "sets the counsellor's yearly subscription rate",
		Type:         cli.FlagTypeFloat,
	},
	{
		Name:         "plus-amount",
		DefaultValue: 0.0,
		Usage:        "sets the price of the counsellor's Plus plan",
		Type:         cli.FlagTypeFloat,
	},
	{
		Name:         "pro-amount",
		DefaultValue: 0.0,
		Usage:        "sets the price of the counsellor's Pro plan",
		Type:         cli.FlagTypeFloat,
	},
	{
		Name:         "elite-amount",
		DefaultValue: 0.0,
		Usage:        "sets the price of the counsellor's Elite plan",
		Type:         cli.FlagTypeFloat,
	},
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "rates <username>",
	Aliases: []string{"r"},
	Short:   "Updates a counsellor's pricing, only the specified rates are changed",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		userName := args[0]
		if err := validate.UserName(userName); err != nil {
			fmt.Printf("⚠️  The provided username (%s) was not valid\n", userName)
			return cli.ErrorInvalidInput
		}

		rates := backend.Rates{}
		if cmd.Flags().Changed("rate-per-minute") {
			value := viper.GetFloat64("rate-per-minute")
			rates.RatePerMinute = &value
		}
		if cmd.Flags().Changed("rate-per-year") {
			value := viper.GetFloat64("rate-per-year")
			rates.RatePerYear = &value
		}
		if cmd.Flags().Changed("plus-amount") {
			value := viper.GetFloat64("plus-amount")
			rates.PlusAmount = &value
		}
		if cmd.Flags().Changed("pro-amount") {
			value := viper.GetFloat64("pro-amount")
			rates.ProAmount = &value
		}
		if cmd.Flags().Changed("elite-amount") {
			value := viper.GetFloat64("elite-amount")
			rates.EliteAmount = &value
		}
		if rates.IsZero() {
			fmt.Println("⚠️  Specify at least one rate to update")
			return cli.ErrorInvalidInput
		}

		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/update/counsellor/rates")
		if err != nil {
			return err
		}

		counsellorStore := store.NewCounsellorStore(client)
		if err := counsellorStore.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("failed to retrieve counsellors: %s", counsellorStore.Err())
		}
		if _, exists := counsellorStore.Find(userName); !exists {
			return fmt.Errorf("counsellor[%s] could not be found", userName)
		}

		dispatcher := dispatch.NewDispatcher(dispatch.NewDispatcherOpts{
			Client:      client,
			Counsellors: counsellorStore,
			Withdrawals: store.NewWithdrawalStore(client),
			Notifier:    cli.PrintNotifier{},
		})
		return dispatcher.UpdateCounsellorRates(cmd.Context(), userName, rates)
	},
}
