// Package semantic maps semantic token types to styles, mirroring the syntax rules.
package semantic

import (
	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
)

func fg(color string) vscode.TokenSetting {
	return vscode.TokenSetting{Foreground: color}
}

func defaultTokens(p palette.Palette) map[string]vscode.TokenSetting {
	return map[string]vscode.TokenSetting{
		"comment":       fg(p.Grey1),
		"keyword":       fg(p.Red),
		"operator":      fg(p.Orange),
		"string":        fg(p.Aqua),
		"number":        fg(p.Purple),
		"regexp":        fg(p.Green),
		"function":      fg(p.Green),
		"method":        fg(p.Green),
		"macro":         fg(p.Aqua),
		"type":          fg(p.Yellow),
		"class":         fg(p.Yellow),
		"struct":        fg(p.Yellow),
		"interface":     fg(p.Yellow),
		"enum":          fg(p.Yellow),
		"typeParameter": fg(p.Yellow),
		"namespace":     fg(p.Yellow),
		"variable":      fg(p.Fg),
		"parameter":     fg(p.Fg),
		"property":      fg(p.Fg),
		"enumMember":    fg(p.Purple),
		"decorator":     fg(p.Aqua),
		"*.deprecated":  {Foreground: p.Purple, FontStyle: "strikethrough"},
	}
}

// colorfulTokens recolors members and parameters and adds modifier-specific entries.
func colorfulTokens(p palette.Palette) map[string]vscode.TokenSetting {
	tokens := defaultTokens(p)
	extra := map[string]vscode.TokenSetting{
		"property":                fg(p.Blue),
		"parameter":               fg(p.Fg1),
		"event":                   fg(p.Orange),
		"label":                   fg(p.Orange),
		"variable.readonly":       fg(p.Purple),
		"variable.defaultLibrary": fg(p.Purple),
		"property.readonly":       fg(p.Purple),
		"function.defaultLibrary": {Foreground: p.Green, FontStyle: "bold"},
		"type.defaultLibrary":     fg(p.Yellow),
		"class.defaultLibrary":    fg(p.Yellow),
		"selfParameter":           fg(p.Purple),
		"builtinType":             fg(p.Yellow),
		"lifetime":                fg(p.Orange),
		"formatSpecifier":         fg(p.Yellow),
		"keyword.controlFlow":     fg(p.Red),
	}
	for k, v := range extra {
		tokens[k] = v
	}
	return tokens
}

// Generate returns the semanticTokenColors table for variant.
func Generate(cfg config.Config, variant config.Variant) (map[string]vscode.TokenSetting, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := palette.ForConfig(cfg, variant)
	if err != nil {
		return nil, err
	}

	tokens := defaultTokens(p)
	if cfg.ColorfulSyntax {
		tokens = colorfulTokens(p)
	}

	if cfg.ItalicComments {
		tokens["comment"] = withItalic(tokens["comment"])
	}
	if cfg.ItalicKeywords {
		for _, key := range []string{"keyword", "keyword.controlFlow"} {
			if s, ok := tokens[key]; ok {
				tokens[key] = withItalic(s)
			}
		}
	}
	return tokens, nil
}

func withItalic(s vscode.TokenSetting) vscode.TokenSetting {
	if s.FontStyle == "" {
		s.FontStyle = "italic"
	} else {
		s.FontStyle += " italic"
	}
	return s
}
