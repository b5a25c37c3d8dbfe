package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/log"
	"github.com/AvengeMedia/dankgruvbox/internal/theme"
	"github.com/AvengeMedia/dankgruvbox/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <theme.json>...",
	Short: "Validate theme JSON files",
	Long:  "Check theme documents for required fields, hex color format and variant consistency",
	Args:  cobra.MinimumNArgs(1),
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().String("variant", "", "Expected variant (default: the document's own type)")
}

func runValidate(cmd *cobra.Command, args []string) {
	expected, _ := cmd.Flags().GetString("variant")

	if failed := validateFiles(cmd.OutOrStdout(), args, expected); failed > 0 {
		log.Fatalf("%d of %d theme(s) failed validation", failed, len(args))
	}
}

// validateFiles checks every path, reporting to w, and returns how many failed.
func validateFiles(w io.Writer, paths []string, expected string) int {
	failed := 0
	for _, path := range paths {
		data, err := theme.Read(appFs, path)
		if err != nil {
			log.Errorf("%v", err)
			failed++
			continue
		}

		doc, err := validate.Decode(data)
		if err != nil {
			log.Errorf("%s: %v", path, err)
			failed++
			continue
		}

		variant := expected
		if variant == "" {
			if root, ok := doc.(map[string]any); ok {
				variant, _ = root["type"].(string)
			}
		}

		result := validate.CheckComplete(doc, variant)
		for _, e := range result.Errors {
			fmt.Fprintf(w, "%s: error: %s\n", path, e)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "%s: warning: %s\n", path, warning)
		}

		if !result.Valid {
			failed++
			continue
		}
		fmt.Fprintf(w, "%s: ok (%d colors, %d token rules)\n", path, validate.CountColors(doc), validate.CountTokenRules(doc))
	}
	return failed
}
