package withdrawal

import (
	"errors"
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/dispatch"
	"procounsel/internal/listview"
	"procounsel/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "yes",
		Short:        'y',
		DefaultValue: false,
		Usage:        "skips the confirmation prompt",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "withdrawal <payment-id>",
	Aliases: []string{"w"},
	Short:   "Approves a withdrawal request, marking the payment as transferred",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paymentId := args[0]

		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/approve/withdrawal")
		if err != nil {
			return err
		}

		withdrawalStore := store.NewWithdrawalStore(client)
		if err := withdrawalStore.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("failed to retrieve withdrawals: %s", withdrawalStore.Err())
		}
		withdrawal, exists := withdrawalStore.Find(paymentId)
		if !exists {
			return fmt.Errorf("withdrawal request[%s] could not be found", paymentId)
		}
		if !withdrawal.IsActionable() {
			fmt.Printf(
				"Withdrawal request %s is in state '%s', only requests in state 'Processing' can be approved\n",
				paymentId, listview.WithdrawalDisplayStatus(withdrawal),
			)
			return nil
		}

		if !viper.GetBool("yes") {
			if err := cli.ShowConfirmation(cli.ShowConfirmationOpts{
				Title: "Approve withdrawal",
				Message: fmt.Sprintf(
					"Mark the withdrawal of %v by %s as transferred? Make sure the amount has actually reached their bank account (%s).",
					withdrawal.WithdrawalRequestAmount,
					withdrawal.CounsellorFullName,
					withdrawal.CounsellorBankDetails.AccountNumber,
				),
				ConfirmLabel: "Approve",
				CancelLabel:  "Cancel",
			}); err != nil {
				if errors.Is(err, cli.ErrorUserCancelled) {
					fmt.Println("Alright, nothing was done")
					return nil
				}
				return fmt.Errorf("failed to get a confirmation: %s", err)
			}
		}

		dispatcher := dispatch.NewDispatcher(dispatch.NewDispatcherOpts{
			Client:      client,
			Counsellors: store.NewCounsellorStore(client),
			Withdrawals: withdrawalStore,
			Notifier:    cli.PrintNotifier{},
		})
		return dispatcher.MarkWithdrawalTransferred(cmd.Context(), paymentId)
	},
}
