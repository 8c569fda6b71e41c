package update

import (
	"procounsel/cmd/procounsel/update/counsellor"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(counsellor.Command)
}

var Command = &cobra.Command{
	Use:     "update",
	Aliases: []string{"u"},
	Short:   "Updates resources on the ProCounsel platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
