package get

import (
	"procounsel/cmd/procounsel/get/counsellor"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(counsellor.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves details of a resource on the ProCounsel platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
