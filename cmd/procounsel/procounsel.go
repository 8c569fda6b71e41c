package procounsel

import (
	"fmt"
	"os"
	"strings"

	"procounsel/cmd/procounsel/approve"
	"procounsel/cmd/procounsel/broadcast"
	"procounsel/cmd/procounsel/get"
	"procounsel/cmd/procounsel/list"
	"procounsel/cmd/procounsel/login"
	"procounsel/cmd/procounsel/logout"
	"procounsel/cmd/procounsel/start"
	"procounsel/cmd/procounsel/update"
	"procounsel/cmd/procounsel/whoami"
	"procounsel/internal/cli"
	"procounsel/internal/common"
	"procounsel/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableOutputs = []string{
	"text",
	"json",
}

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.procounsel/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}`)

	Command.AddCommand(approve.Command)
	Command.AddCommand(broadcast.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(list.Command)
	Command.AddCommand(login.Command)
	Command.AddCommand(logout.Command)
	Command.AddCommand(start.Command)
	Command.AddCommand(update.Command)
	Command.AddCommand(whoami.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
		configPath, err := common.ToAbsolutePath(viper.GetString("config"))
		if err != nil {
			logrus.Warnf("failed to resolve config path: %s", err)
			return
		}
		logrus.Debugf("using configuration at path[%s]", configPath)
		if err := config.LoadGlobal(configPath); err != nil {
			logrus.Warnf("failed to load global configuration: %s", err)
		}
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "procounsel",
	Short:   "Administration of the ProCounsel counselling platform from your terminal",
	Long:    "Administration of the ProCounsel counselling platform from your terminal",
	Version: config.GetVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
