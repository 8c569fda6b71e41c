package approve

import (
	"procounsel/cmd/procounsel/approve/counsellor"
	"procounsel/cmd/procounsel/approve/withdrawal"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(counsellor.Command)
	Command.AddCommand(withdrawal.Command)
}

var Command = &cobra.Command{
	Use:     "approve",
	Aliases: []string{"a"},
	Short:   "Approves pending requests on the ProCounsel platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
