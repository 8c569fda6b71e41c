package broadcast

import (
	"errors"
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/common"
	"procounsel/internal/config"
	"procounsel/internal/dispatch"
	"procounsel/internal/store"
	"procounsel/pkg/backend"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tea "github.com/charmbracelet/bubbletea"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "id",
		DefaultValue: "",
		Usage:        "sets the notification identifier, a random one is generated when left empty",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "type",
		Short:        't',
		DefaultValue: "",
		Usage:        "sets the notification type understood by the client apps",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "title",
		DefaultValue: "",
		Usage:        "sets the notification title",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "body",
		DefaultValue: "",
		Usage:        "sets the notification body",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "broadcast",
	Aliases: []string{"b"},
	Short:   "Broadcasts a notification to every user and counsellor on the platform",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/broadcast")
		if err != nil {
			return err
		}

		notificationId := viper.GetString("id")
		if notificationId == "" {
			notificationId, err = common.GenerateRandomString(16)
			if err != nil {
				return fmt.Errorf("failed to generate a notification id: %s", err)
			}
		}

		model := cli.CreatePrompt(cli.PromptOpts{
			Title: "Compose the notification to broadcast:",
			Buttons: []cli.PromptButton{
				{
					Label: "Send",
					Type:  cli.PromptButtonSubmit,
				},
				{
					Label: "Cancel / Ctrl + C",
					Type:  cli.PromptButtonCancel,
				},
			},
			Inputs: []cli.PromptInput{
				{
					Id:          "type",
					Placeholder: "Notification type (e.g. announcement)",
					Type:        cli.PromptString,
					Value:       viper.GetString("type"),
				},
				{
					Id:          "title",
					Placeholder: "Notification title",
					Type:        cli.PromptString,
					Value:       viper.GetString("title"),
				},
				{
					Id:          "body",
					Placeholder: "Notification body",
					Type:        cli.PromptString,
					Value:       viper.GetString("body"),
				},
			},
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			fmt.Println("Alright, nothing was sent")
			return nil
		}

		notification := backend.Notification{
			Id:    notificationId,
			Type:  model.GetValue("type"),
			Title: model.GetValue("title"),
			Body:  model.GetValue("body"),
		}

		dispatcher := dispatch.NewDispatcher(dispatch.NewDispatcherOpts{
			Client:      client,
			Counsellors: store.NewCounsellorStore(client),
			Withdrawals: store.NewWithdrawalStore(client),
			Notifier:    cli.PrintNotifier{},
		})
		if err := dispatcher.BroadcastNotification(cmd.Context(), notification); err != nil {
			if errors.Is(err, dispatch.ErrorValidation) {
				fmt.Printf("⚠️  The notification was incomplete and was not sent: %s\n", err)
				return cli.ErrorInvalidInput
			}
			return err
		}
		return nil
	},
}
