package start

import (
	"procounsel/cmd/procounsel/start/dashboard"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(dashboard.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Starts long-running ProCounsel components",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
