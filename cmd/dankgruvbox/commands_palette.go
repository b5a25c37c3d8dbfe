package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/log"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
	"github.com/AvengeMedia/dankgruvbox/internal/preview"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the resolved palette",
	Long:  "Print every named palette color for a variant, contrast and palette option. Piped output is plain name/hex pairs",
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func init() {
	paletteCmd.Flags().String("variant", "dark", "Variant: dark or light")
	paletteCmd.Flags().String("contrast", "", "Contrast: soft, medium or hard (default: from options)")
	paletteCmd.Flags().String("palette", "", "Palette: material, mix or original (default: from options)")
}

func runPalette(cmd *cobra.Command, args []string) {
	variantFlag, _ := cmd.Flags().GetString("variant")
	contrast, _ := cmd.Flags().GetString("contrast")
	option, _ := cmd.Flags().GetString("palette")

	variant, err := config.ParseVariant(variantFlag)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf("Error loading options: %v", err)
	}
	if contrast == "" {
		contrast = string(cfg.Contrast(variant))
	}
	if option == "" {
		option = string(cfg.Palette(variant))
	}

	p, err := palette.Resolve(variant, config.Contrast(contrast), config.PaletteOption(option))
	if err != nil {
		log.Fatalf("Error resolving palette: %v", err)
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		fmt.Fprint(out, preview.Plain(p))
		return
	}
	title := fmt.Sprintf("%s / %s / %s", variant.Title(), contrast, option)
	fmt.Fprint(out, preview.Render(p, title))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
