package counsellor

import (
	"encoding/json"
	"fmt"
	"strings"

	"procounsel/internal/cli"
	"procounsel/internal/config"
	"procounsel/internal/store"
	"procounsel/internal/validate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetBackendUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "counsellor <username>",
	Aliases: []string{"c"},
	Short:   "Displays a counsellor's profile",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		userName := args[0]
		if err := validate.UserName(userName); err != nil {
			fmt.Printf("⚠️  The provided username (%s) was not valid\n", userName)
			return cli.ErrorInvalidInput
		}

		_, client, err := cli.RequireSession(config.GetBackendUrl(), "procounsel/get/counsellor")
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

		switch viper.GetString("output") {
		case "json":
			o, _ := json.MarshalIndent(counsellor, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			status := "Pending"
			if counsellor.Verified {
				status = "Approved"
			}
			fmt.Printf("Name: %s\n", counsellor.FullName())
			fmt.Printf("Username: %s\n", counsellor.UserName)
			fmt.Printf("Email: %s\n", counsellor.Email)
			fmt.Printf("Phone: %s\n", counsellor.PhoneNumber)
			fmt.Printf("Organisation: %s\n", counsellor.OrganisationName)
			fmt.Printf("Status: %s\n", status)
			if len(counsellor.Expertise) > 0 {
				fmt.Printf("Expertise: %s\n", strings.Join(counsellor.Expertise, ", "))
			}
			if len(counsellor.LanguagesKnow) > 0 {
				fmt.Printf("Languages: %s\n", strings.Join(counsellor.LanguagesKnow, ", "))
			}
			if counsellor.Rating != nil {
				fmt.Printf("Rating: %v\n", *counsellor.Rating)
			}
			fmt.Printf("Wallet: %v\n", counsellor.WalletAmount)
			if counsellor.RatePerMinute != nil {
				fmt.Printf("Rate per minute: %v\n", *counsellor.RatePerMinute)
			}
			if counsellor.RatePerYear != nil {
				fmt.Printf("Rate per year: %v\n", *counsellor.RatePerYear)
			}
			fmt.Printf("Clients: %v\n", len(counsellor.Clients))
			fmt.Printf("Followers: %v\n", len(counsellor.FollowerIds))
		}

		return nil
	},
}
