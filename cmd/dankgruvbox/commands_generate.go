package main

import (
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/log"
	"github.com/AvengeMedia/dankgruvbox/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate theme JSON files",
	Long:  "Generate the dark and light Gruvbox Material theme documents and write them to the output directory",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

func init() {
	generateCmd.Flags().String("out", theme.DefaultDir, "Output directory")
	generateCmd.Flags().String("variant", "both", "Variant to generate: dark, light or both")
	config.RegisterFlags(generateCmd.Flags())
}

func runGenerate(cmd *cobra.Command, args []string) {
	outDir, _ := cmd.Flags().GetString("out")
	variantFlag, _ := cmd.Flags().GetString("variant")

	variants, err := parseVariants(variantFlag)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf("Error loading options: %v", err)
	}
	log.Debugf("Resolved options: %+v", cfg)

	themes, err := theme.AssembleAll(cmd.Context(), cfg, variants...)
	if err != nil {
		log.Fatalf("Error generating themes: %v", err)
	}

	for _, t := range themes {
		path, err := theme.Write(appFs, outDir, t)
		if err != nil {
			log.Fatalf("Error writing theme: %v", err)
		}
		log.Infof("Generated %s -> %s", t.Name, path)
	}
}
