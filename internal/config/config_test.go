package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyOptionsYieldsDefaults(t *testing.T) {
	cfg, err := Options{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, Medium, d.DarkContrast)
	assert.Equal(t, Medium, d.LightContrast)
	assert.Equal(t, WorkbenchMaterial, d.DarkWorkbench)
	assert.Equal(t, PaletteMaterial, d.LightPalette)
	assert.Equal(t, Cursor("white"), d.DarkCursor)
	assert.Equal(t, Selection("grey"), d.LightSelection)
	assert.Equal(t, Opacity("0%"), d.DiagnosticTextBackgroundOpacity)
	assert.True(t, d.ItalicComments)
	assert.False(t, d.ItalicKeywords)
	assert.False(t, d.ColorfulSyntax)
	assert.False(t, d.HighContrast)
	assert.NoError(t, d.Validate())
}

func TestResolveKeepsSetFields(t *testing.T) {
	off := false
	cfg, err := Options{
		DarkContrast:   "hard",
		LightWorkbench: "flat",
		DarkCursor:     "purple",
		ItalicComments: &off,
	}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Hard, cfg.DarkContrast)
	assert.Equal(t, Medium, cfg.LightContrast)
	assert.Equal(t, WorkbenchFlat, cfg.LightWorkbench)
	assert.Equal(t, Cursor("purple"), cfg.Cursor(Dark))
	assert.Equal(t, Cursor("white"), cfg.Cursor(Light))
	assert.False(t, cfg.ItalicComments)
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		key  string
	}{
		{"contrast", Options{DarkContrast: "extreme"}, "darkContrast"},
		{"workbench", Options{LightWorkbench: "glass"}, "lightWorkbench"},
		{"palette", Options{DarkPalette: "neon"}, "darkPalette"},
		{"cursor", Options{LightCursor: "pink"}, "lightCursor"},
		{"selection", Options{DarkSelection: "white"}, "darkSelection"},
		{"opacity", Options{DiagnosticTextBackgroundOpacity: "33%"}, "diagnosticTextBackgroundOpacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Resolve()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOption))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateReportsEveryBadField(t *testing.T) {
	cfg := Defaults()
	cfg.DarkContrast = "x"
	cfg.LightPalette = "y"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "darkContrast")
	assert.Contains(t, err.Error(), "lightPalette")
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("light")
	require.NoError(t, err)
	assert.Equal(t, Light, v)
	assert.Equal(t, "Light", v.Title())
	assert.Equal(t, "Dark", Dark.Title())

	_, err = ParseVariant("Dark")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestOpacityAlpha(t *testing.T) {
	tests := []struct {
		opacity Opacity
		want    string
	}{
		{"0%", "00"},
		{"12.5%", "20"},
		{"25%", "40"},
		{"37.5%", "60"},
		{"50%", "80"},
	}
	for _, tt := range tests {
		got, err := tt.opacity.Alpha()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "opacity %s", tt.opacity)
	}

	_, err := Opacity("75%").Alpha()
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestFlagAndEnvNames(t *testing.T) {
	assert.Equal(t, "dark-contrast", FlagName("darkContrast"))
	assert.Equal(t, "diagnostic-text-background-opacity", FlagName("diagnosticTextBackgroundOpacity"))
	assert.Equal(t, "GRUVBOX_MATERIAL_DARK_CONTRAST", EnvName("darkContrast"))
	assert.Equal(t, "GRUVBOX_MATERIAL_ITALIC_COMMENTS", EnvName("italicComments"))
	assert.Len(t, Keys(), 15)
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadNothingSet(t *testing.T) {
	opts, err := Load(afero.NewMemMapFs(), "", newFlags(t))
	require.NoError(t, err)

	cfg, err := opts.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	file := `gruvboxMaterial:
  darkContrast: soft
  lightContrast: soft
  darkPalette: mix
  italicKeywords: true
`
	require.NoError(t, afero.WriteFile(fs, "/etc/dankgruvbox.yaml", []byte(file), 0644))

	t.Setenv("GRUVBOX_MATERIAL_LIGHT_CONTRAST", "hard")
	t.Setenv("GRUVBOX_MATERIAL_DARK_PALETTE", "original")

	flags := newFlags(t, "--dark-palette=material", "--italic-comments=false")
	opts, err := Load(fs, "/etc/dankgruvbox.yaml", flags)
	require.NoError(t, err)

	cfg, err := opts.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Soft, cfg.DarkContrast, "file value")
	assert.Equal(t, Hard, cfg.LightContrast, "env beats file")
	assert.Equal(t, PaletteMaterial, cfg.DarkPalette, "flag beats env")
	assert.True(t, cfg.ItalicKeywords)
	assert.False(t, cfg.ItalicComments)
	assert.Equal(t, WorkbenchMaterial, cfg.DarkWorkbench, "unset falls back to default")
}

func TestLoadUnchangedFlagsDoNotOverride(t *testing.T) {
	t.Setenv("GRUVBOX_MATERIAL_HIGH_CONTRAST", "true")

	opts, err := Load(afero.NewMemMapFs(), "", newFlags(t))
	require.NoError(t, err)
	require.NotNil(t, opts.HighContrast)
	assert.True(t, *opts.HighContrast)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml", nil)
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(fs, "/conf/dankgruvbox.yaml", DefaultOptions()))

	opts, err := Load(fs, "/conf/dankgruvbox.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestMarshalYAMLSection(t *testing.T) {
	data, err := MarshalYAML(Options{DarkContrast: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "gruvboxMaterial:\n    darkContrast: hard\n", string(data))
}
