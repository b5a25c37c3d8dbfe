package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Section is the top-level key options live under in a config file.
	Section   = "gruvboxMaterial"
	EnvPrefix = "GRUVBOX_MATERIAL"
)

type optionKey struct {
	name   string
	usage  string
	isBool bool
}

var optionKeys = []optionKey{
	{name: "darkContrast", usage: "Dark background contrast: soft, medium, hard"},
	{name: "lightContrast", usage: "Light background contrast: soft, medium, hard"},
	{name: "darkWorkbench", usage: "Dark workbench style: material, flat, high-contrast"},
	{name: "lightWorkbench", usage: "Light workbench style: material, flat, high-contrast"},
	{name: "darkPalette", usage: "Dark foreground palette: material, mix, original"},
	{name: "lightPalette", usage: "Light foreground palette: material, mix, original"},
	{name: "darkCursor", usage: "Dark cursor color: white, red, orange, yellow, green, aqua, blue, purple"},
	{name: "lightCursor", usage: "Light cursor color: white, red, orange, yellow, green, aqua, blue, purple"},
	{name: "darkSelection", usage: "Dark selection color: grey, red, orange, yellow, green, aqua, blue, purple"},
	{name: "lightSelection", usage: "Light selection color: grey, red, orange, yellow, green, aqua, blue, purple"},
	{name: "diagnosticTextBackgroundOpacity", usage: "Diagnostic text background opacity: 0%, 12.5%, 25%, 37.5%, 50%"},
	{name: "colorfulSyntax", usage: "Color a wider set of syntax scopes", isBool: true},
	{name: "italicKeywords", usage: "Render keywords in italic", isBool: true},
	{name: "italicComments", usage: "Render comments in italic", isBool: true},
	{name: "highContrast", usage: "Raise contrast of UI borders and secondary text", isBool: true},
}

// Keys returns every option key in declaration order.
func Keys() []string {
	keys := make([]string, len(optionKeys))
	for i, k := range optionKeys {
		keys[i] = k.name
	}
	return keys
}

func splitCamel(key string, sep rune, upper bool) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune(sep)
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FlagName maps an option key to its kebab-case flag, e.g. darkContrast -> dark-contrast.
func FlagName(key string) string { return splitCamel(key, '-', false) }

// EnvName maps an option key to its environment variable, e.g. darkContrast -> GRUVBOX_MATERIAL_DARK_CONTRAST.
func EnvName(key string) string { return EnvPrefix + "_" + splitCamel(key, '_', true) }

// RegisterFlags adds one flag per option key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultOptions()
	for _, k := range optionKeys {
		if k.isBool {
			def := false
			switch k.name {
			case "colorfulSyntax":
				def = *d.ColorfulSyntax
			case "italicKeywords":
				def = *d.ItalicKeywords
			case "italicComments":
				def = *d.ItalicComments
			case "highContrast":
				def = *d.HighContrast
			}
			fs.Bool(FlagName(k.name), def, k.usage)
			continue
		}
		fs.String(FlagName(k.name), "", k.usage)
	}
}

type fileConfig struct {
	GruvboxMaterial Options `mapstructure:"gruvboxMaterial"`
}

// Load merges options from an optional config file on fs, the environment and changed flags.
// Precedence: flags > env vars > config file. Unset options stay empty so Resolve applies defaults.
func Load(fs afero.Fs, path string, flags *pflag.FlagSet) (Options, error) {
	v := viper.New()
	v.SetFs(fs)

	for _, k := range optionKeys {
		full := Section + "." + k.name
		if err := v.BindEnv(full, EnvName(k.name)); err != nil {
			return Options{}, fmt.Errorf("bind env for %s: %w", k.name, err)
		}
		if flags == nil {
			continue
		}
		f := flags.Lookup(FlagName(k.name))
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(full, f); err != nil {
			return Options{}, fmt.Errorf("bind flag --%s: %w", f.Name, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return fc.GruvboxMaterial, nil
}
