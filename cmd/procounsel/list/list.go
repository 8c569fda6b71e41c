package list

import (
	"procounsel/cmd/procounsel/list/counsellors"
	"procounsel/cmd/procounsel/list/withdrawals"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(counsellors.Command)
	Command.AddCommand(withdrawals.Command)
}

var Command = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Retrieves lists of resources on the ProCounsel platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
