package vscode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeMarshal(t *testing.T) {
	single, err := json.Marshal(Scope{"comment"})
	require.NoError(t, err)
	assert.Equal(t, `"comment"`, string(single))

	many, err := json.Marshal(Scope{"string", "punctuation.definition.string"})
	require.NoError(t, err)
	assert.Equal(t, `["string","punctuation.definition.string"]`, string(many))
}

func TestScopeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scope
		wantErr bool
	}{
		{name: "string", input: `"keyword"`, want: Scope{"keyword"}},
		{name: "list", input: `["keyword", "storage"]`, want: Scope{"keyword", "storage"}},
		{name: "one element list", input: `["keyword"]`, want: Scope{"keyword"}},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scope
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestMarshalLayout(t *testing.T) {
	theme := Theme{
		Name:                 "Sample Dark",
		Type:                 "dark",
		SemanticHighlighting: true,
		SemanticTokenColors:  map[string]TokenSetting{"comment": {Foreground: "#928374", FontStyle: "italic"}},
		Colors:               map[string]string{"editor.foreground": "#d4be98", "editor.background": "#282828"},
		TokenColors: []TokenColor{
			{Name: "Comment", Scope: Scope{"comment"}, Settings: TokenSetting{Foreground: "#928374"}},
		},
	}

	data, err := Marshal(theme)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n  \"name\": \"Sample Dark\"")
	assert.Less(t, strings.Index(out, `"editor.background"`), strings.Index(out, `"editor.foreground"`))
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"tokenColors"`))
	assert.NotContains(t, out, `"fontStyle": ""`)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, theme, back)

	again, err := Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.Error(t, err)
}
