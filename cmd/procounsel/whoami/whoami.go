package whoami

import (
	"encoding/json"
	"fmt"
	"time"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/session"
	"procounsel/pkg/backend"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetBackendUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

type whoamiOutput struct {
	AdminId   string `json:"adminId"`
	Issuer    string `json:"issuer,omitempty"`
	Subject   string `json:"subject,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
	IssuedAt  string `json:"issuedAt,omitempty"`
}

var Command = &cobra.Command{
	Use:   "whoami",
	Short: "Displays the currently logged-in administrator",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := backend.NewClient(backend.NewClientOpts{
			BackendUrl: config.GetBackendUrl(),
			Id:         "procounsel/whoami",
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
			fmt.Println("⚠️ You are not logged in, login using `procounsel login`")
			return cli.ErrorNotAuthenticated
		}

		user := sessionStore.Current()
		output := whoamiOutput{
			AdminId: user.UserId,
		}

		// the token is displayed as-is without signature verification,
		// the backend remains the authority on its validity
		parser := jwt.NewParser()
		if token, _, err := parser.ParseUnverified(user.JwtToken, jwt.MapClaims{}); err == nil {
			if issuer, err := token.Claims.GetIssuer(); err == nil {
				output.Issuer = issuer
			}
			if subject, err := token.Claims.GetSubject(); err == nil {
				output.Subject = subject
			}
			if expiresAt, err := token.Claims.GetExpirationTime(); err == nil && expiresAt != nil {
				output.ExpiresAt = expiresAt.Local().Format(cli.TimestampHuman)
				if expiresAt.Before(time.Now()) {
					fmt.Println("⚠️ Your session token looks expired, login again using `procounsel login`")
				}
			}
			if issuedAt, err := token.Claims.GetIssuedAt(); err == nil && issuedAt != nil {
				output.IssuedAt = issuedAt.Local().Format(cli.TimestampHuman)
			}
		}

		switch viper.GetString("output") {
		case "json":
			o, _ := json.MarshalIndent(output, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			fmt.Printf("Admin ID: %s\n", output.AdminId)
			if output.Subject != "" {
				fmt.Printf("Subject: %s\n", output.Subject)
			}
			if output.Issuer != "" {
				fmt.Printf("Issuer: %s\n", output.Issuer)
			}
			if output.IssuedAt != "" {
				fmt.Printf("Issued at: %s\n", output.IssuedAt)
			}
			if output.ExpiresAt != "" {
				fmt.Printf("Expires at: %s\n", output.ExpiresAt)
			}
		}
		return nil
	},
}
