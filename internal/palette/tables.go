package palette

import "github.com/AvengeMedia/dankgruvbox/internal/config"

// background holds the contrast-dependent half of a palette.
type background struct {
	Bg, Bg0, Bg1, Bg2, Bg3, Bg4, Bg5, Bg6, Bg7, Bg8, Bg9 string
	Grey0, Grey1, Grey2                                  string
	Shadow                                               string
}

// foreground holds the palette-option half. Each Dim* entry is its accent pulled a quarter of
// the way toward the variant's medium Bg0 in CIE-Lab.
type foreground struct {
	Fg, Fg0, Fg1                                                        string
	Red, Orange, Yellow, Green, Aqua, Blue, Purple                      string
	DimRed, DimOrange, DimYellow, DimGreen, DimAqua, DimBlue, DimPurple string
}

type bgKey struct {
	variant  config.Variant
	contrast config.Contrast
}

type fgKey struct {
	variant config.Variant
	option  config.PaletteOption
}

// Bg is the dimmest surface, Bg0 the editor background and Bg1..Bg6 step away from it.
// Bg7, Bg8 and Bg9 tint diff added, removed and changed regions.
var backgrounds = map[bgKey]background{
	{config.Dark, config.Hard}: {
		Bg: "#141617", Bg0: "#1d2021", Bg1: "#282828", Bg2: "#282828", Bg3: "#3c3836",
		Bg4: "#3c3836", Bg5: "#504945", Bg6: "#32302f", Bg7: "#32361a", Bg8: "#3c1f1e", Bg9: "#0d3138",
		Grey0: "#7c6f64", Grey1: "#928374", Grey2: "#a89984",
		Shadow: "#00000070",
	},
	{config.Dark, config.Medium}: {
		Bg: "#1b1b1b", Bg0: "#282828", Bg1: "#32302f", Bg2: "#32302f", Bg3: "#45403d",
		Bg4: "#45403d", Bg5: "#5a524c", Bg6: "#3a3735", Bg7: "#34381b", Bg8: "#402120", Bg9: "#0e363e",
		Grey0: "#7c6f64", Grey1: "#928374", Grey2: "#a89984",
		Shadow: "#00000070",
	},
	{config.Dark, config.Soft}: {
		Bg: "#252423", Bg0: "#32302f", Bg1: "#3c3836", Bg2: "#3c3836", Bg3: "#504945",
		Bg4: "#504945", Bg5: "#665c54", Bg6: "#45403d", Bg7: "#3d4220", Bg8: "#472322", Bg9: "#0f3a42",
		Grey0: "#7c6f64", Grey1: "#928374", Grey2: "#a89984",
		Shadow: "#00000070",
	},
	{config.Light, config.Hard}: {
		Bg: "#f3eac7", Bg0: "#f9f5d7", Bg1: "#f5edca", Bg2: "#f3eac7", Bg3: "#f2e5bc",
		Bg4: "#eee0b7", Bg5: "#ebdbb2", Bg6: "#f3eac7", Bg7: "#e4edc8", Bg8: "#fbe2d0", Bg9: "#dde9e3",
		Grey0: "#a89984", Grey1: "#928374", Grey2: "#7c6f64",
		Shadow: "#3c383630",
	},
	{config.Light, config.Medium}: {
		Bg: "#f2e5bc", Bg0: "#fbf1c7", Bg1: "#f4e8be", Bg2: "#f2e5bc", Bg3: "#eee0b7",
		Bg4: "#e5d5ad", Bg5: "#ddccab", Bg6: "#f2e5bc", Bg7: "#e6e9c1", Bg8: "#f9e0c5", Bg9: "#dbe3d6",
		Grey0: "#a89984", Grey1: "#928374", Grey2: "#7c6f64",
		Shadow: "#3c383630",
	},
	{config.Light, config.Soft}: {
		Bg: "#ebdbb2", Bg0: "#f2e5bc", Bg1: "#eddeb5", Bg2: "#ebdbb2", Bg3: "#e6d5ae",
		Bg4: "#dac9a5", Bg5: "#d5c4a1", Bg6: "#ebdbb2", Bg7: "#dee2b6", Bg8: "#f1d5b9", Bg9: "#d3dbc8",
		Grey0: "#a89984", Grey1: "#928374", Grey2: "#7c6f64",
		Shadow: "#3c383630",
	},
}

var foregrounds = map[fgKey]foreground{
	{config.Dark, config.PaletteMaterial}: {
		Fg: "#d4be98", Fg0: "#ddc7a1", Fg1: "#bdae93",
		Red: "#ea6962", Orange: "#e78a4e", Yellow: "#d8a657", Green: "#a9b665",
		Aqua: "#89b482", Blue: "#7daea3", Purple: "#d3869b",
		DimRed: "#b65953", DimOrange: "#b47045", DimYellow: "#a9844c", DimGreen: "#878f56",
		DimAqua: "#6f8e6a", DimBlue: "#678a82", DimPurple: "#a56d7c",
	},
	{config.Dark, config.PaletteMix}: {
		Fg: "#e2cca9", Fg0: "#ebd6b3", Fg1: "#c9b99a",
		Red: "#f2594b", Orange: "#f28534", Yellow: "#e9b143", Green: "#b0b846",
		Aqua: "#8bba7f", Blue: "#80aa9e", Purple: "#d3869b",
		DimRed: "#bd4f42", DimOrange: "#bc6d34", DimYellow: "#b58c3f", DimGreen: "#8c9140",
		DimAqua: "#719268", DimBlue: "#69877e", DimPurple: "#a56d7c",
	},
	{config.Dark, config.PaletteOriginal}: {
		Fg: "#ebdbb2", Fg0: "#fbf1c7", Fg1: "#d5c4a1",
		Red: "#fb4934", Orange: "#fe8019", Yellow: "#fabd2f", Green: "#b8bb26",
		Aqua: "#8ec07c", Blue: "#83a598", Purple: "#d3869b",
		DimRed: "#c44532", DimOrange: "#c56924", DimYellow: "#c29433", DimGreen: "#92932d",
		DimAqua: "#739766", DimBlue: "#6b837a", DimPurple: "#a56d7c",
	},
	{config.Light, config.PaletteMaterial}: {
		Fg: "#654735", Fg0: "#4f3829", Fg1: "#7a5f4b",
		Red: "#c14a4a", Orange: "#c35e0a", Yellow: "#b47109", Green: "#6c782e",
		Aqua: "#4c7a5d", Blue: "#45707a", Purple: "#945e80",
		DimRed: "#d37667", DimOrange: "#d6833f", DimYellow: "#c99040", DimGreen: "#8f9553",
		DimAqua: "#779776", DimBlue: "#748f8d", DimPurple: "#ae8192",
	},
	{config.Light, config.PaletteMix}: {
		Fg: "#514036", Fg0: "#3f3028", Fg1: "#6b5747",
		Red: "#af2528", Orange: "#b94c07", Yellow: "#b4730e", Green: "#72761e",
		Aqua: "#477a5b", Blue: "#266b79", Purple: "#924f79",
		DimRed: "#c75f4c", DimOrange: "#cf763b", DimYellow: "#c99142", DimGreen: "#949348",
		DimAqua: "#749775", DimBlue: "#638b8c", DimPurple: "#ad768c",
	},
	{config.Light, config.PaletteOriginal}: {
		Fg: "#3c3836", Fg0: "#282828", Fg1: "#504945",
		Red: "#9d0006", Orange: "#af3a03", Yellow: "#b57614", Green: "#79740e",
		Aqua: "#427b58", Blue: "#076678", Purple: "#8f3f71",
		DimRed: "#bb5133", DimOrange: "#c86a37", DimYellow: "#ca9345", DimGreen: "#9a9241",
		DimAqua: "#709872", DimBlue: "#5a878c", DimPurple: "#ab6b86",
	},
}
