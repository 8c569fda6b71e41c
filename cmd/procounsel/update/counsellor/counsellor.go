package counsellor

import (
	"procounsel/cmd/procounsel/update/counsellor/rates"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(rates.Command)
}

var Command = &cobra.Command{
	Use:     "counsellor",
	Aliases: []string{"c"},
	Short:   "Updates a counsellor's details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
