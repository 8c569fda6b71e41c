package counsellor

import (
	"errors"
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/dispatch"
	"procounsel/internal/store"
	"procounsel/internal/validate"

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
	Use:     "counsellor <username>",
	Aliases: []string{"c"},
	Short:   "Approves a counsellor's profile, making it visible to users",
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

		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/approve/counsellor")
		if err != nil {
			return err
		}

		counsellorStore := store.NewCounsellorStore(client)
		if err := counsellorStore.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("failed to retrieve counsellors: %s", counsellorStore.Err())
		}
		counsellor, exists := counsellorStore.Find(userName)
		if !exists {
			return fmt.Errorf("counsellor[%s] could not be found", userName)
		}
		if counsellor.Verified {
			fmt.Printf("Counsellor %s is already approved, there's nothing to do\n", userName)
			return nil
		}

		if !viper.GetBool("yes") {
			if err := cli.ShowConfirmation(cli.ShowConfirmationOpts{
				Title:        "Approve counsellor",
				Message:      fmt.Sprintf("Approve the profile of %s (%s)? Their profile becomes visible to every user on the platform.", counsellor.FullName(), userName),
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
			Counsellors: counsellorStore,
			Withdrawals: store.NewWithdrawalStore(client),
			Notifier:    cli.PrintNotifier{},
		})
		return dispatcher.ApproveCounsellor(cmd.Context(), userName)
	},
}
