// Package validate checks theme documents for structural completeness and color format.
//
// Checks work on decoded JSON (any) rather than vscode.Theme so that documents with
// missing or mistyped fields can be described instead of failing to decode. Every
// problem found is reported; nothing here returns an error for a bad document.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/AvengeMedia/dankgruvbox/internal/colorutil"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
)

// RequiredFields are the top-level fields every theme document carries.
var RequiredFields = []string{"name", "type", "semanticHighlighting", "semanticTokenColors", "colors", "tokenColors"}

type Result struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() Result {
	return Result{Valid: true, Errors: []string{}, Warnings: []string{}}
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge concatenates results in order.
func Merge(results ...Result) Result {
	out := newResult()
	for _, r := range results {
		out.Errors = append(out.Errors, r.Errors...)
		out.Warnings = append(out.Warnings, r.Warnings...)
	}
	out.Valid = len(out.Errors) == 0
	return out
}

// Decode parses a JSON document for checking.
func Decode(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return doc, nil
}

// FromTheme converts an assembled theme to the form the checks read.
func FromTheme(t vscode.Theme) (any, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return Decode(data)
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

// CheckStructure verifies the required fields and their types.
func CheckStructure(doc any) Result {
	r := newResult()
	root, ok := doc.(map[string]any)
	if !ok {
		r.errorf("theme must be a JSON object, got %s", describe(doc))
		return r
	}

	for _, field := range RequiredFields {
		if _, ok := root[field]; !ok {
			r.errorf("missing required field %q", field)
		}
	}

	if v, ok := root["name"]; ok {
		if _, isString := v.(string); !isString {
			r.errorf("field \"name\" must be a string, got %s", describe(v))
		}
	}
	if v, ok := root["type"]; ok {
		if s, _ := v.(string); s != "dark" && s != "light" {
			r.errorf("field \"type\" must be \"dark\" or \"light\", got %v", v)
		}
	}
	if v, ok := root["semanticHighlighting"]; ok {
		if _, isBool := v.(bool); !isBool {
			r.errorf("field \"semanticHighlighting\" must be a boolean, got %s", describe(v))
		}
	}
	for _, field := range []string{"colors", "semanticTokenColors"} {
		if v, ok := root[field]; ok && !isObject(v) {
			r.errorf("field %q must be an object, got %s", field, describe(v))
		}
	}
	if v, ok := root["tokenColors"]; ok {
		if _, isArray := v.([]any); !isArray {
			r.errorf("field \"tokenColors\" must be an array, got %s", describe(v))
		}
	}
	return r
}

func ruleLabel(i int, rule map[string]any) string {
	if name, ok := rule["name"].(string); ok && name != "" {
		return fmt.Sprintf("tokenColors[%d] (%s)", i, name)
	}
	return fmt.Sprintf("tokenColors[%d]", i)
}

// CheckColors verifies every workbench color and token foreground is a hex color.
// Fields that are absent or of the wrong type are skipped; CheckStructure reports those.
func CheckColors(doc any) Result {
	r := newResult()
	root, ok := doc.(map[string]any)
	if !ok {
		return r
	}

	if colors, ok := root["colors"].(map[string]any); ok {
		keys := maps.Keys(colors)
		slices.Sort(keys)
		for _, key := range keys {
			value, isString := colors[key].(string)
			if !isString || !colorutil.IsHex(value) {
				r.errorf("colors[%q] is not a valid hex color: %v", key, colors[key])
			}
		}
	}

	if rules, ok := root["tokenColors"].([]any); ok {
		for i, raw := range rules {
			rule, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			settings, ok := rule["settings"].(map[string]any)
			if !ok {
				continue
			}
			fg, present := settings["foreground"]
			if !present {
				continue
			}
			if s, isString := fg.(string); !isString || !colorutil.IsHex(s) {
				r.errorf("%s foreground is not a valid hex color: %v", ruleLabel(i, rule), fg)
			}
		}
	}
	return r
}

// CheckComplete gates the deeper checks on a sound structure, then checks colors,
// the name's variant word and the declared type.
func CheckComplete(doc any, expectedVariant string) Result {
	structure := CheckStructure(doc)
	if !structure.Valid {
		return structure
	}

	r := Merge(structure, CheckColors(doc))
	root := doc.(map[string]any)

	name, _ := root["name"].(string)
	if !strings.Contains(strings.ToLower(name), strings.ToLower(expectedVariant)) {
		r.warnf("name %q does not mention variant %q", name, expectedVariant)
	}
	if typ, _ := root["type"].(string); typ != expectedVariant {
		r.errorf("type is %q, expected %q", typ, expectedVariant)
	}
	return r
}

func CountColors(doc any) int {
	root, _ := doc.(map[string]any)
	colors, _ := root["colors"].(map[string]any)
	return len(colors)
}

func CountTokenRules(doc any) int {
	root, _ := doc.(map[string]any)
	rules, _ := root["tokenColors"].([]any)
	return len(rules)
}
