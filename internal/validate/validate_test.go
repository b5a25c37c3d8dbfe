package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	doc, err := Decode([]byte(s))
	require.NoError(t, err)
	return doc
}

const goodDoc = `{
  "name": "Gruvbox Material Dark",
  "type": "dark",
  "semanticHighlighting": true,
  "semanticTokenColors": {"comment": {"foreground": "#928374"}},
  "colors": {"editor.background": "#282828", "editor.foreground": "#d4be98", "focusBorder": "#28282800"},
  "tokenColors": [
    {"name": "Comment", "scope": "comment", "settings": {"foreground": "#928374", "fontStyle": "italic"}},
    {"name": "Markup bold", "scope": "markup.bold", "settings": {"fontStyle": "bold"}}
  ]
}`

func TestCheckCompleteGood(t *testing.T) {
	doc := decode(t, goodDoc)
	r := CheckComplete(doc, "dark")
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.NotNil(t, r.Errors)
	assert.Equal(t, 3, CountColors(doc))
	assert.Equal(t, 2, CountTokenRules(doc))
}

func TestMissingColorsSkipsColorChecks(t *testing.T) {
	doc := decode(t, `{
  "name": "Gruvbox Material Dark",
  "type": "dark",
  "semanticHighlighting": true,
  "semanticTokenColors": {},
  "tokenColors": [{"scope": "comment", "settings": {"foreground": "bogus"}}]
}`)
	r := CheckComplete(doc, "dark")
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "colors")
	for _, e := range r.Errors {
		assert.NotContains(t, e, "hex")
	}
}

func TestStructureReportsEveryDefect(t *testing.T) {
	doc := decode(t, `{"name": 3, "type": "dim", "semanticHighlighting": "yes", "colors": [], "tokenColors": {}}`)
	r := CheckStructure(doc)
	assert.False(t, r.Valid)

	joined := strings.Join(r.Errors, "\n")
	assert.Contains(t, joined, `missing required field "semanticTokenColors"`)
	assert.Contains(t, joined, `"name" must be a string`)
	assert.Contains(t, joined, `"type" must be "dark" or "light"`)
	assert.Contains(t, joined, `"semanticHighlighting" must be a boolean`)
	assert.Contains(t, joined, `"colors" must be an object, got array`)
	assert.Contains(t, joined, `"tokenColors" must be an array, got object`)
	assert.Len(t, r.Errors, 6)
}

func TestNonObjectRoot(t *testing.T) {
	for _, input := range []string{`[]`, `"theme"`, `null`, `12`} {
		t.Run(input, func(t *testing.T) {
			r := CheckComplete(decode(t, input), "dark")
			assert.False(t, r.Valid)
			require.Len(t, r.Errors, 1)
			assert.Contains(t, r.Errors[0], "must be a JSON object")
			assert.Equal(t, 0, CountColors(decode(t, input)))
		})
	}
}

func TestCheckColorsNamesOffenders(t *testing.T) {
	doc := decode(t, `{
  "colors": {"b.key": "#12345", "a.key": "red", "ok": "#fff", "n": 5},
  "tokenColors": [
    {"name": "Comment", "scope": "comment", "settings": {"foreground": "#928374"}},
    {"name": "Broken", "scope": "string", "settings": {"foreground": "green"}},
    {"scope": "keyword", "settings": {"foreground": "#ggg"}}
  ]
}`)
	r := CheckColors(doc)
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 5)
	assert.Equal(t, `colors["a.key"] is not a valid hex color: red`, r.Errors[0])
	assert.Contains(t, r.Errors[1], `colors["b.key"]`)
	assert.Contains(t, r.Errors[2], `colors["n"]`)
	assert.Equal(t, "tokenColors[1] (Broken) foreground is not a valid hex color: green", r.Errors[3])
	assert.Equal(t, "tokenColors[2] foreground is not a valid hex color: #ggg", r.Errors[4])
}

func TestNameWarning(t *testing.T) {
	doc := decode(t, strings.Replace(goodDoc, "Gruvbox Material Dark", "Gruvbox Material", 1))
	r := CheckComplete(doc, "dark")
	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "dark")
}

func TestTypeMismatch(t *testing.T) {
	r := CheckComplete(decode(t, goodDoc), "light")
	assert.False(t, r.Valid)
	assert.Contains(t, strings.Join(r.Errors, "\n"), `type is "dark", expected "light"`)
	assert.Len(t, r.Warnings, 1)
}

func TestMerge(t *testing.T) {
	a := newResult()
	a.warnf("w1")
	b := newResult()
	b.errorf("e1")

	m := Merge(a, b)
	assert.False(t, m.Valid)
	assert.Equal(t, []string{"e1"}, m.Errors)
	assert.Equal(t, []string{"w1"}, m.Warnings)
	assert.True(t, Merge().Valid)
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte("{"))
	assert.Error(t, err)
}
