package main

import (
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
)

// loadConfig resolves options from --config, the environment and the command's option flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	opts, err := config.Load(appFs, path, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	return opts.Resolve()
}

func parseVariants(s string) ([]config.Variant, error) {
	if s == "" || s == "both" {
		return config.Variants, nil
	}
	v, err := config.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []config.Variant{v}, nil
}
