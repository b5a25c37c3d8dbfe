package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/validate"
)

func TestParseVariants(t *testing.T) {
	tests := []struct {
		input   string
		want    []config.Variant
		wantErr bool
	}{
		{input: "", want: config.Variants},
		{input: "both", want: config.Variants},
		{input: "dark", want: []config.Variant{config.Dark}},
		{input: "light", want: []config.Variant{config.Light}},
		{input: "dusk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVariants(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func useMemFs(t *testing.T) {
	t.Helper()
	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	return &buf
}

func TestConfigInitThenGenerate(t *testing.T) {
	useMemFs(t)

	rootCmd.SetArgs([]string{"config", "init", "--path", "/work/dankgruvbox.yaml"})
	require.NoError(t, rootCmd.Execute())

	exists, err := afero.Exists(appFs, "/work/dankgruvbox.yaml")
	require.NoError(t, err)
	require.True(t, exists)

	rootCmd.SetArgs([]string{"generate", "--config", "/work/dankgruvbox.yaml", "--out", "/work/themes", "--dark-contrast", "hard"})
	require.NoError(t, rootCmd.Execute())

	for _, v := range config.Variants {
		data, err := afero.ReadFile(appFs, "/work/themes/gruvbox-material-"+string(v)+".json")
		require.NoError(t, err)

		doc, err := validate.Decode(data)
		require.NoError(t, err)
		result := validate.CheckComplete(doc, string(v))
		assert.True(t, result.Valid, "%s: %v", v, result.Errors)
	}

	data, err := afero.ReadFile(appFs, "/work/themes/gruvbox-material-dark.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"editor.background": "#1d2021"`)
}

func TestValidateGeneratedTheme(t *testing.T) {
	useMemFs(t)
	out := captureOutput(t)

	rootCmd.SetArgs([]string{"generate", "--config=", "--out", "/gen", "--variant", "dark"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"validate", "/gen/gruvbox-material-dark.json"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "/gen/gruvbox-material-dark.json: ok (")
}

func TestValidateFilesKeepsGoing(t *testing.T) {
	useMemFs(t)

	rootCmd.SetArgs([]string{"generate", "--config=", "--out", "/gen", "--variant", "light"})
	require.NoError(t, rootCmd.Execute())

	good := "/gen/gruvbox-material-light.json"
	data, err := afero.ReadFile(appFs, good)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(appFs, "/gen/truncated.json", data[:len(data)/2], 0644))
	require.NoError(t, afero.WriteFile(appFs, "/gen/no-colors.json",
		[]byte(`{"name": "Gruvbox Material Light", "type": "light", "semanticHighlighting": true, "semanticTokenColors": {}, "tokenColors": []}`), 0644))

	var buf bytes.Buffer
	failed := validateFiles(&buf, []string{"/gen/missing.json", "/gen/truncated.json", "/gen/no-colors.json", good}, "")
	assert.Equal(t, 3, failed)

	report := buf.String()
	assert.Contains(t, report, `/gen/no-colors.json: error: missing required field "colors"`)
	assert.Contains(t, report, good+": ok (")
	assert.NotContains(t, report, "/gen/truncated.json: ok")
}

func TestValidateFilesExpectedVariant(t *testing.T) {
	useMemFs(t)

	rootCmd.SetArgs([]string{"generate", "--config=", "--out", "/gen", "--variant", "dark"})
	require.NoError(t, rootCmd.Execute())

	var buf bytes.Buffer
	failed := validateFiles(&buf, []string{"/gen/gruvbox-material-dark.json"}, "light")
	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), `type is "dark", expected "light"`)
}

func TestPalettePlainWhenPiped(t *testing.T) {
	useMemFs(t)
	out := captureOutput(t)

	rootCmd.SetArgs([]string{"palette", "--config=", "--variant", "light", "--contrast", "soft", "--palette", "original"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 32)
	assert.Contains(t, lines, "bg0 #f2e5bc")
	assert.Contains(t, lines, "red #9d0006")
	assert.NotContains(t, out.String(), "\x1b[")
}
