package logout

import (
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/session"
	"procounsel/pkg/backend"

	"github.com/spf13/cobra"
)

var flags cli.Flags = config.GetBackendUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "logout",
	Short: "Logs out of ProCounsel from your terminal",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := backend.NewClient(backend.NewClientOpts{
			BackendUrl: config.GetBackendUrl(),
			Id:         "procounsel/logout",
		})
		if err != nil {
			return fmt.Errorf("failed to create backend client: %s", err)
		}
		sessionStore, err := session.NewStore(session.NewStoreOpts{
			Client: client,
		})
		if err != nil {
			return fmt.Errorf("failed to open session store: %s", err)
		}
		sessionStore.Initialize()
		if !sessionStore.IsLoggedIn() {
			return fmt.Errorf("looks like you're not logged in")
		}

		adminId := sessionStore.Current().UserId
		if err := sessionStore.Logout(); err != nil {
			return fmt.Errorf("failed to clear session, please remove the files under ~%s yourself: %s", session.DefaultSessionPath, err)
		}

		fmt.Printf("\n%s\nAdmin '%s' is now logged out\n", cli.Logo, adminId)
		fmt.Printf("See you again <3\n")
		return nil
	},
}
