// Package workbench builds the UI color table of a theme: every editor and workbench
// color key the theme defines, mapped to a hex color.
//
// The table is layered. A shared base covers the editor itself, the selected workbench
// style paints the chrome around it, cursor, selection and diagnostic options are applied
// next, and the highContrast toggle adds its overrides last regardless of style.
package workbench

import (
	"fmt"

	"github.com/AvengeMedia/dankgruvbox/internal/colorutil"
	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
)

// MinContrastRatio is what the highContrast toggle lifts secondary text to against the editor background.
const MinContrastRatio = 4.5

// SecondaryForegroundKeys are the dim text colors the highContrast toggle lifts.
var SecondaryForegroundKeys = []string{
	"editorLineNumber.foreground",
	"editorCodeLens.foreground",
	"descriptionForeground",
	"disabledForeground",
	"input.placeholderForeground",
	"breadcrumb.foreground",
	"activityBar.inactiveForeground",
	"tab.inactiveForeground",
	"tab.unfocusedInactiveForeground",
	"titleBar.inactiveForeground",
	"panelTitle.inactiveForeground",
}

// BorderKeys are the borders the highContrast toggle makes visible.
var BorderKeys = []string{
	"contrastBorder",
	"focusBorder",
	"activityBar.border",
	"sideBar.border",
	"sideBarSectionHeader.border",
	"statusBar.border",
	"titleBar.border",
	"tab.border",
	"editorGroup.border",
	"editorGroupHeader.tabsBorder",
	"panel.border",
	"editorWidget.border",
	"editorSuggestWidget.border",
	"editorHoverWidget.border",
	"input.border",
	"dropdown.border",
}

// DiagnosticBackgroundKeys take their alpha from the diagnosticTextBackgroundOpacity option.
var DiagnosticBackgroundKeys = []string{
	"editorError.background",
	"editorWarning.background",
	"editorInfo.background",
	"editorHint.background",
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

func cursorColors(p palette.Palette, cursor config.Cursor) (map[string]string, error) {
	c, err := p.Lookup(string(cursor))
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"editorCursor.foreground":   c,
		"terminalCursor.foreground": c,
	}, nil
}

func selectionColors(p palette.Palette, selection config.Selection) (map[string]string, error) {
	c, err := p.Lookup(string(selection))
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"selection.background":                   c + "60",
		"editor.selectionBackground":             c + "40",
		"editor.inactiveSelectionBackground":     c + "28",
		"editor.selectionHighlightBackground":    c + "28",
		"terminal.selectionBackground":           c + "40",
		"editorSuggestWidget.selectedForeground": p.Fg,
	}, nil
}

func diagnosticColors(p palette.Palette, opacity config.Opacity) (map[string]string, error) {
	alpha, err := opacity.Alpha()
	if err != nil {
		return nil, err
	}
	colors := []string{p.Red, p.Yellow, p.Blue, p.Green}
	out := make(map[string]string, len(DiagnosticBackgroundKeys))
	for i, key := range DiagnosticBackgroundKeys {
		c, err := colorutil.WithAlpha(colors[i], alpha)
		if err != nil {
			return nil, err
		}
		out[key] = c
	}
	return out, nil
}

// highContrastOverrides is layered on top of any style.
func highContrastOverrides(colors map[string]string, p palette.Palette, isLight bool) map[string]string {
	out := make(map[string]string, len(BorderKeys)+len(SecondaryForegroundKeys))
	for _, key := range BorderKeys {
		out[key] = p.Grey0
	}
	for _, key := range SecondaryForegroundKeys {
		current, ok := colors[key]
		if !ok {
			current = p.Grey1
		}
		out[key] = colorutil.EnsureContrast(current, p.Bg0, MinContrastRatio, isLight)
	}
	return out
}

// Generate returns the workbench color table for variant.
func Generate(cfg config.Config, variant config.Variant) (map[string]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := palette.ForConfig(cfg, variant)
	if err != nil {
		return nil, err
	}
	isLight := variant == config.Light

	colors := base(p, isLight)

	style, ok := styles[cfg.Workbench(variant)]
	if !ok {
		return nil, fmt.Errorf("%w: workbench %q", config.ErrInvalidOption, string(cfg.Workbench(variant)))
	}
	merge(colors, chrome(p, style(p)))

	cursor, err := cursorColors(p, cfg.Cursor(variant))
	if err != nil {
		return nil, err
	}
	merge(colors, cursor)

	selection, err := selectionColors(p, cfg.Selection(variant))
	if err != nil {
		return nil, err
	}
	merge(colors, selection)

	diagnostics, err := diagnosticColors(p, cfg.DiagnosticTextBackgroundOpacity)
	if err != nil {
		return nil, err
	}
	merge(colors, diagnostics)

	if cfg.HighContrast {
		merge(colors, highContrastOverrides(colors, p, isLight))
	}

	for key, value := range colors {
		if !colorutil.IsHex(value) {
			return nil, fmt.Errorf("workbench color %s has non-hex value %q", key, value)
		}
	}
	return colors, nil
}
