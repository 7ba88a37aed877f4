package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tweetbook/internal/config"
)

// resolveConfig layers the config file named by --config (or the default
// one), env files, TWEETBOOK_* variables and the command's flags.
func resolveConfig(cmd *cobra.Command, flags config.Config) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Resolve(config.Sources{
		File:     path,
		EnvFiles: config.DefaultEnvFiles(),
		Flags:    flags,
	})
}
