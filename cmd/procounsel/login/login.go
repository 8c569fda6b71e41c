package login

import (
	"errors"
	"fmt"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/session"
	"procounsel/internal/validate"
	"procounsel/pkg/backend"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tea "github.com/charmbracelet/bubbletea"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of your administrator account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password for your administrator account",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.Append(config.GetBackendUrlFlags()).AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "login",
	Short: "Login to ProCounsel as an administrator",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.Append(config.GetBackendUrlFlags()).BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := backend.NewClient(backend.NewClientOpts{
			BackendUrl: config.GetBackendUrl(),
			Id:         "procounsel/login",
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
		if sessionStore.IsLoggedIn() {
			return fmt.Errorf("looks like you're already logged in, run `procounsel logout` first before running this command")
		}

		inputEmail := viper.GetString("email")
		inputPassword := viper.GetString("password")
		if inputPassword != "" {
			fmt.Println(
				"⚠️ !!! WARNING !!! ⚠️\n" +
					"Using a password directly on the command line isn't generally recommended\n" +
					"since anyone can see it using the `history` command. Run `history -c` to\n" +
					"remove this from this shell if this is a shared shell")
		}

		fmt.Printf("\nLogging into\n%s\n", cli.Logo)
		if inputEmail == "" || inputPassword == "" {
			fmt.Printf("To get started, we'll need a couple of details from you:\n\n")
		}

		model := cli.CreatePrompt(cli.PromptOpts{
			Buttons: []cli.PromptButton{
				{
					Label: "Login",
					Type:  cli.PromptButtonSubmit,
				},
				{
					Label: "Cancel / Ctrl + C",
					Type:  cli.PromptButtonCancel,
				},
			},
			Inputs: []cli.PromptInput{
				{
					Id:          "email",
					Placeholder: "Your email address",
					Type:        cli.PromptString,
					Value:       inputEmail,
				},
				{
					Id:          "password",
					Placeholder: "Your password",
					Type:        cli.PromptPassword,
					Value:       inputPassword,
				},
			},
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("See you soon maybe?")
		}

		email := model.GetValue("email")
		if err := validate.Email(email); err != nil {
			fmt.Printf("⚠️  The provided email (%s) was not valid\n", email)
			return fmt.Errorf("email invalid")
		}
		password := model.GetValue("password")

		if err := sessionStore.Login(cmd.Context(), email, password); err != nil {
			if errors.Is(err, backend.ErrorInvalidCredentials) {
				fmt.Println("⚠️  The provided credentials doesn't seem correct, try again")
				return fmt.Errorf("credentials validation failed")
			}
			return fmt.Errorf("failed to create session: %s", sessionStore.Err())
		}

		fmt.Printf("Welcome back!\nAdmin ID: %s\n", sessionStore.Current().UserId)
		return nil
	},
}
