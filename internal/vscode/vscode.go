// Package vscode holds the color theme document shape the editor loads.
package vscode

import (
	"encoding/json"
	"fmt"
)

type Theme struct {
	Name                 string                  `json:"name"`
	Type                 string                  `json:"type"`
	SemanticHighlighting bool                    `json:"semanticHighlighting"`
	SemanticTokenColors  map[string]TokenSetting `json:"semanticTokenColors"`
	Colors               map[string]string       `json:"colors"`
	TokenColors          []TokenColor            `json:"tokenColors"`
}

type TokenColor struct {
	Name     string       `json:"name,omitempty"`
	Scope    Scope        `json:"scope"`
	Settings TokenSetting `json:"settings"`
}

type TokenSetting struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scope is a list of TextMate scopes. A single scope is written as a bare string.
type Scope []string

func (s Scope) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Scope{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("scope must be a string or a list of strings: %w", err)
	}
	*s = Scope(many)
	return nil
}

// Marshal renders the theme as indented JSON with a trailing newline.
// Map keys come out sorted, so equal themes produce identical bytes.
func Marshal(theme Theme) ([]byte, error) {
	data, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func Unmarshal(data []byte) (Theme, error) {
	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}
