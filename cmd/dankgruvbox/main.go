package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/log"
)

var Version = "dev"

// appFs backs every file the CLI reads or writes.
var appFs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "dankgruvbox",
	Short: "Gruvbox Material theme generator",
	Long:  "Generate and validate Gruvbox Material color themes for VSCode from a small set of options",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			log.SetLevel(level)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().String("config", "", "Options file (yaml, json or toml) with a gruvboxMaterial section")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd, validateCmd, paletteCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
