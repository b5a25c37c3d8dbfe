package config

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by every error caused by a value outside an option's legal set.
var ErrInvalidOption = errors.New("invalid option")

type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

// Variants lists both polarities in generation order.
var Variants = []Variant{Dark, Light}

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Dark, Light:
		return v, nil
	}
	return "", fmt.Errorf("%w: variant %q (must be dark or light)", ErrInvalidOption, s)
}

// Title is the capitalised variant word used in theme names.
func (v Variant) Title() string {
	if v == Light {
		return "Light"
	}
	return "Dark"
}

type Contrast string

const (
	Soft   Contrast = "soft"
	Medium Contrast = "medium"
	Hard   Contrast = "hard"
)

var Contrasts = []Contrast{Soft, Medium, Hard}

type Workbench string

const (
	WorkbenchMaterial     Workbench = "material"
	WorkbenchFlat         Workbench = "flat"
	WorkbenchHighContrast Workbench = "high-contrast"
)

var Workbenches = []Workbench{WorkbenchMaterial, WorkbenchFlat, WorkbenchHighContrast}

type PaletteOption string

const (
	PaletteMaterial PaletteOption = "material"
	PaletteMix      PaletteOption = "mix"
	PaletteOriginal PaletteOption = "original"
)

var PaletteOptions = []PaletteOption{PaletteMaterial, PaletteMix, PaletteOriginal}

// Cursor and Selection name a palette color: an accent, or white/grey for the neutral choice.
type Cursor string

var Cursors = []Cursor{"white", "red", "orange", "yellow", "green", "aqua", "blue", "purple"}

type Selection string

var Selections = []Selection{"grey", "red", "orange", "yellow", "green", "aqua", "blue", "purple"}

type Opacity string

var Opacities = []Opacity{"0%", "12.5%", "25%", "37.5%", "50%"}

var opacityAlpha = map[Opacity]string{
	"0%":    "00",
	"12.5%": "20",
	"25%":   "40",
	"37.5%": "60",
	"50%":   "80",
}

// Alpha returns the two-digit hex alpha byte for the opacity.
func (o Opacity) Alpha() (string, error) {
	a, ok := opacityAlpha[o]
	if !ok {
		return "", fmt.Errorf("%w: diagnosticTextBackgroundOpacity %q", ErrInvalidOption, string(o))
	}
	return a, nil
}

// Options is the user-facing form: every field may be left empty and falls back to its default.
type Options struct {
	DarkContrast                    string `mapstructure:"darkContrast" yaml:"darkContrast,omitempty" json:"darkContrast,omitempty"`
	LightContrast                   string `mapstructure:"lightContrast" yaml:"lightContrast,omitempty" json:"lightContrast,omitempty"`
	DarkWorkbench                   string `mapstructure:"darkWorkbench" yaml:"darkWorkbench,omitempty" json:"darkWorkbench,omitempty"`
	LightWorkbench                  string `mapstructure:"lightWorkbench" yaml:"lightWorkbench,omitempty" json:"lightWorkbench,omitempty"`
	DarkPalette                     string `mapstructure:"darkPalette" yaml:"darkPalette,omitempty" json:"darkPalette,omitempty"`
	LightPalette                    string `mapstructure:"lightPalette" yaml:"lightPalette,omitempty" json:"lightPalette,omitempty"`
	DarkCursor                      string `mapstructure:"darkCursor" yaml:"darkCursor,omitempty" json:"darkCursor,omitempty"`
	LightCursor                     string `mapstructure:"lightCursor" yaml:"lightCursor,omitempty" json:"lightCursor,omitempty"`
	DarkSelection                   string `mapstructure:"darkSelection" yaml:"darkSelection,omitempty" json:"darkSelection,omitempty"`
	LightSelection                  string `mapstructure:"lightSelection" yaml:"lightSelection,omitempty" json:"lightSelection,omitempty"`
	DiagnosticTextBackgroundOpacity string `mapstructure:"diagnosticTextBackgroundOpacity" yaml:"diagnosticTextBackgroundOpacity,omitempty" json:"diagnosticTextBackgroundOpacity,omitempty"`
	ColorfulSyntax                  *bool  `mapstructure:"colorfulSyntax" yaml:"colorfulSyntax,omitempty" json:"colorfulSyntax,omitempty"`
	ItalicKeywords                  *bool  `mapstructure:"italicKeywords" yaml:"italicKeywords,omitempty" json:"italicKeywords,omitempty"`
	ItalicComments                  *bool  `mapstructure:"italicComments" yaml:"italicComments,omitempty" json:"italicComments,omitempty"`
	HighContrast                    *bool  `mapstructure:"highContrast" yaml:"highContrast,omitempty" json:"highContrast,omitempty"`
}

// Config is a fully resolved configuration. Build it with Options.Resolve or Defaults.
type Config struct {
	DarkContrast                    Contrast
	LightContrast                   Contrast
	DarkWorkbench                   Workbench
	LightWorkbench                  Workbench
	DarkPalette                     PaletteOption
	LightPalette                    PaletteOption
	DarkCursor                      Cursor
	LightCursor                     Cursor
	DarkSelection                   Selection
	LightSelection                  Selection
	DiagnosticTextBackgroundOpacity Opacity
	ColorfulSyntax                  bool
	ItalicKeywords                  bool
	ItalicComments                  bool
	HighContrast                    bool
}

func Defaults() Config {
	return Config{
		DarkContrast:                    Medium,
		LightContrast:                   Medium,
		DarkWorkbench:                   WorkbenchMaterial,
		LightWorkbench:                  WorkbenchMaterial,
		DarkPalette:                     PaletteMaterial,
		LightPalette:                    PaletteMaterial,
		DarkCursor:                      "white",
		LightCursor:                     "white",
		DarkSelection:                   "grey",
		LightSelection:                  "grey",
		DiagnosticTextBackgroundOpacity: "0%",
		ColorfulSyntax:                  false,
		ItalicKeywords:                  false,
		ItalicComments:                  true,
		HighContrast:                    false,
	}
}

// DefaultOptions returns Defaults in Options form with every field populated.
func DefaultOptions() Options {
	d := Defaults()
	return Options{
		DarkContrast:                    string(d.DarkContrast),
		LightContrast:                   string(d.LightContrast),
		DarkWorkbench:                   string(d.DarkWorkbench),
		LightWorkbench:                  string(d.LightWorkbench),
		DarkPalette:                     string(d.DarkPalette),
		LightPalette:                    string(d.LightPalette),
		DarkCursor:                      string(d.DarkCursor),
		LightCursor:                     string(d.LightCursor),
		DarkSelection:                   string(d.DarkSelection),
		LightSelection:                  string(d.LightSelection),
		DiagnosticTextBackgroundOpacity: string(d.DiagnosticTextBackgroundOpacity),
		ColorfulSyntax:                  boolPtr(d.ColorfulSyntax),
		ItalicKeywords:                  boolPtr(d.ItalicKeywords),
		ItalicComments:                  boolPtr(d.ItalicComments),
		HighContrast:                    boolPtr(d.HighContrast),
	}
}

func boolPtr(b bool) *bool { return &b }

func pick[T ~string](raw string, def T) T {
	if raw == "" {
		return def
	}
	return T(raw)
}

func pickBool(raw *bool, def bool) bool {
	if raw == nil {
		return def
	}
	return *raw
}

// Resolve fills absent fields with defaults and rejects values outside their legal sets.
func (o Options) Resolve() (Config, error) {
	d := Defaults()
	cfg := Config{
		DarkContrast:                    pick(o.DarkContrast, d.DarkContrast),
		LightContrast:                   pick(o.LightContrast, d.LightContrast),
		DarkWorkbench:                   pick(o.DarkWorkbench, d.DarkWorkbench),
		LightWorkbench:                  pick(o.LightWorkbench, d.LightWorkbench),
		DarkPalette:                     pick(o.DarkPalette, d.DarkPalette),
		LightPalette:                    pick(o.LightPalette, d.LightPalette),
		DarkCursor:                      pick(o.DarkCursor, d.DarkCursor),
		LightCursor:                     pick(o.LightCursor, d.LightCursor),
		DarkSelection:                   pick(o.DarkSelection, d.DarkSelection),
		LightSelection:                  pick(o.LightSelection, d.LightSelection),
		DiagnosticTextBackgroundOpacity: pick(o.DiagnosticTextBackgroundOpacity, d.DiagnosticTextBackgroundOpacity),
		ColorfulSyntax:                  pickBool(o.ColorfulSyntax, d.ColorfulSyntax),
		ItalicKeywords:                  pickBool(o.ItalicKeywords, d.ItalicKeywords),
		ItalicComments:                  pickBool(o.ItalicComments, d.ItalicComments),
		HighContrast:                    pickBool(o.HighContrast, d.HighContrast),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func oneOf[T comparable](v T, legal []T) bool {
	for _, l := range legal {
		if v == l {
			return true
		}
	}
	return false
}

func checkField[T ~string](key string, v T, legal []T) error {
	if oneOf(v, legal) {
		return nil
	}
	names := make([]string, len(legal))
	for i, l := range legal {
		names[i] = string(l)
	}
	return fmt.Errorf("%w: %s %q (must be one of %v)", ErrInvalidOption, key, string(v), names)
}

// Validate reports every field holding an illegal value.
func (c Config) Validate() error {
	return errors.Join(
		checkField("darkContrast", c.DarkContrast, Contrasts),
		checkField("lightContrast", c.LightContrast, Contrasts),
		checkField("darkWorkbench", c.DarkWorkbench, Workbenches),
		checkField("lightWorkbench", c.LightWorkbench, Workbenches),
		checkField("darkPalette", c.DarkPalette, PaletteOptions),
		checkField("lightPalette", c.LightPalette, PaletteOptions),
		checkField("darkCursor", c.DarkCursor, Cursors),
		checkField("lightCursor", c.LightCursor, Cursors),
		checkField("darkSelection", c.DarkSelection, Selections),
		checkField("lightSelection", c.LightSelection, Selections),
		checkField("diagnosticTextBackgroundOpacity", c.DiagnosticTextBackgroundOpacity, Opacities),
	)
}

func (c Config) Contrast(v Variant) Contrast {
	if v == Light {
		return c.LightContrast
	}
	return c.DarkContrast
}

func (c Config) Workbench(v Variant) Workbench {
	if v == Light {
		return c.LightWorkbench
	}
	return c.DarkWorkbench
}

func (c Config) Palette(v Variant) PaletteOption {
	if v == Light {
		return c.LightPalette
	}
	return c.DarkPalette
}

func (c Config) Cursor(v Variant) Cursor {
	if v == Light {
		return c.LightCursor
	}
	return c.DarkCursor
}

func (c Config) Selection(v Variant) Selection {
	if v == Light {
		return c.LightSelection
	}
	return c.DarkSelection
}
