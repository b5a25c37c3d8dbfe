package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage option files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an options file with every default spelled out",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

func init() {
	configInitCmd.Flags().String("path", "dankgruvbox.yaml", "File to write")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	exists, err := afero.Exists(appFs, path)
	if err != nil {
		log.Fatalf("Error checking %s: %v", path, err)
	}
	if exists && !force {
		log.Fatalf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteFile(appFs, path, config.DefaultOptions()); err != nil {
		log.Fatalf("Error writing options: %v", err)
	}
	log.Infof("Wrote default options to %s", path)
}
