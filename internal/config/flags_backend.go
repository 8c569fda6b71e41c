package config

import (
	"procounsel/internal/cli"

	"github.com/spf13/viper"
)

const DefaultBackendUrl = "https://api.procounsel.co.in"

func GetBackendUrlFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         "backend-url",
			Short:        'u',
			DefaultValue: DefaultBackendUrl,
			Usage:        "Defines the url where the platform backend is accessible at",
			Type:         cli.FlagTypeString,
		},
	}
}

// GetBackendUrl resolves the backend url, letting an explicitly set
// flag win over the global configuration file
func GetBackendUrl() string {
	backendUrl := viper.GetString("backend-url")
	if backendUrl == DefaultBackendUrl && Global.BackendUrl != "" {
		return Global.BackendUrl
	}
	return backendUrl
}
