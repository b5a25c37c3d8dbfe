// Package syntax builds the ordered TextMate token color rules of a theme.
package syntax

import (
	"strings"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
)

// CommentRuleName names the one rule that owns comment scopes.
const CommentRuleName = "Comment"

const italic = "italic"

// Generate returns the token color rules for variant. Order matters: the editor lets
// later rules override earlier ones for identical scopes.
func Generate(cfg config.Config, variant config.Variant) ([]vscode.TokenColor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := palette.ForConfig(cfg, variant)
	if err != nil {
		return nil, err
	}

	rules := defaultRules(p)
	if cfg.ColorfulSyntax {
		rules = colorfulRules(p)
	}

	if cfg.ItalicKeywords {
		rules = ItalicKeywords(rules)
	}
	return ItalicComments(rules, cfg.ItalicComments), nil
}

// IsKeywordScope matches keyword and storage-modifier scopes, excluding operators and units.
func IsKeywordScope(scope string) bool {
	switch {
	case strings.HasPrefix(scope, "keyword.operator"), strings.HasPrefix(scope, "keyword.other.unit"):
		return false
	case scope == "keyword", strings.HasPrefix(scope, "keyword."):
		return true
	case scope == "storage", strings.HasPrefix(scope, "storage.modifier"):
		return true
	}
	return false
}

func IsCommentScope(scope string) bool {
	return strings.Contains(scope, "comment")
}

func anyScope(rule vscode.TokenColor, match func(string) bool) bool {
	for _, s := range rule.Scope {
		if match(s) {
			return true
		}
	}
	return false
}

// mapRules copies rules, letting fn rewrite the settings of those matching scopeMatch.
func mapRules(rules []vscode.TokenColor, scopeMatch func(string) bool, fn func(vscode.TokenSetting) vscode.TokenSetting) []vscode.TokenColor {
	out := make([]vscode.TokenColor, len(rules))
	for i, r := range rules {
		if anyScope(r, scopeMatch) {
			r.Settings = fn(r.Settings)
		}
		out[i] = r
	}
	return out
}

// ItalicKeywords returns a copy of rules with italic added to every keyword-scoped rule.
func ItalicKeywords(rules []vscode.TokenColor) []vscode.TokenColor {
	return mapRules(rules, IsKeywordScope, func(s vscode.TokenSetting) vscode.TokenSetting {
		s.FontStyle = addFontStyle(s.FontStyle, italic)
		return s
	})
}

// ItalicComments returns a copy of rules with italic set or cleared on comment-scoped rules.
func ItalicComments(rules []vscode.TokenColor, on bool) []vscode.TokenColor {
	return mapRules(rules, IsCommentScope, func(s vscode.TokenSetting) vscode.TokenSetting {
		if on {
			s.FontStyle = addFontStyle(s.FontStyle, italic)
		} else {
			s.FontStyle = removeFontStyle(s.FontStyle, italic)
		}
		return s
	})
}

// FindComment returns the canonical comment rule.
func FindComment(rules []vscode.TokenColor) (vscode.TokenColor, bool) {
	for _, r := range rules {
		if r.Name == CommentRuleName {
			return r, true
		}
	}
	for _, r := range rules {
		if anyScope(r, IsCommentScope) {
			return r, true
		}
	}
	return vscode.TokenColor{}, false
}

func HasFontStyle(fontStyle, style string) bool {
	for _, f := range strings.Fields(fontStyle) {
		if f == style {
			return true
		}
	}
	return false
}

func addFontStyle(fontStyle, style string) string {
	if HasFontStyle(fontStyle, style) {
		return fontStyle
	}
	return strings.TrimSpace(fontStyle + " " + style)
}

func removeFontStyle(fontStyle, style string) string {
	fields := strings.Fields(fontStyle)
	kept := fields[:0]
	for _, f := range fields {
		if f != style {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
