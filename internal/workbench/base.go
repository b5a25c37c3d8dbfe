package workbench

import "github.com/AvengeMedia/dankgruvbox/internal/palette"

// base covers the editor surface and everything that does not change with the workbench style.
func base(p palette.Palette, isLight bool) map[string]string {
	ansiBlack, ansiWhite := p.Bg5, p.Fg
	ansiBrightBlack, ansiBrightWhite := p.Grey0, p.Fg0
	if isLight {
		ansiBlack, ansiWhite = p.Fg, p.Bg5
		ansiBrightBlack, ansiBrightWhite = p.Fg0, p.Grey0
	}

	return map[string]string{
		"foreground":            p.Fg,
		"descriptionForeground": p.Grey1,
		"disabledForeground":    p.Grey0,
		"errorForeground":       p.Red,
		"icon.foreground":       p.Fg,
		"widget.shadow":         p.Shadow,
		"scrollbar.shadow":      p.Shadow,

		"editor.background":                                   p.Bg0,
		"editor.foreground":                                   p.Fg,
		"editorLineNumber.foreground":                         p.Bg5,
		"editorLineNumber.activeForeground":                   p.Grey2,
		"editor.lineHighlightBackground":                      p.Bg1 + "90",
		"editor.lineHighlightBorder":                          p.Bg1 + "00",
		"editor.rangeHighlightBackground":                     p.Bg1 + "80",
		"editor.wordHighlightBackground":                      p.Bg3 + "48",
		"editor.wordHighlightStrongBackground":                p.Bg3 + "70",
		"editor.findMatchBackground":                          p.Orange + "40",
		"editor.findMatchHighlightBackground":                 p.Green + "40",
		"editor.findRangeHighlightBackground":                 p.Bg3 + "80",
		"editor.hoverHighlightBackground":                     p.Bg3 + "60",
		"editor.foldBackground":                               p.Grey0 + "20",
		"editor.snippetTabstopHighlightBackground":            p.Green + "30",
		"editor.snippetFinalTabstopHighlightBackground":       p.Yellow + "30",
		"editorLink.activeForeground":                         p.Blue,
		"editorWhitespace.foreground":                         p.Bg5,
		"editorIndentGuide.background1":                       p.Bg5 + "70",
		"editorIndentGuide.activeBackground1":                 p.Grey0,
		"editorRuler.foreground":                              p.Bg5 + "a0",
		"editorCodeLens.foreground":                           p.Grey0,
		"editorBracketMatch.background":                       p.Bg4,
		"editorBracketMatch.border":                           p.Bg0 + "00",
		"editorBracketHighlight.foreground1":                  p.Red,
		"editorBracketHighlight.foreground2":                  p.Yellow,
		"editorBracketHighlight.foreground3":                  p.Green,
		"editorBracketHighlight.foreground4":                  p.Blue,
		"editorBracketHighlight.foreground5":                  p.Purple,
		"editorBracketHighlight.foreground6":                  p.Aqua,
		"editorBracketHighlight.unexpectedBracket.foreground": p.Grey1,

		"editorError.foreground":   p.Red,
		"editorWarning.foreground": p.Yellow,
		"editorInfo.foreground":    p.Blue,
		"editorHint.foreground":    p.Green,

		"editorOverviewRuler.border":                   p.Bg0 + "00",
		"editorOverviewRuler.findMatchForeground":      p.Orange,
		"editorOverviewRuler.rangeHighlightForeground": p.Bg3,
		"editorOverviewRuler.errorForeground":          p.Red,
		"editorOverviewRuler.warningForeground":        p.Yellow,
		"editorOverviewRuler.infoForeground":           p.Purple,
		"editorOverviewRuler.addedForeground":          p.DimGreen,
		"editorOverviewRuler.modifiedForeground":       p.DimBlue,
		"editorOverviewRuler.deletedForeground":        p.DimRed,

		"editorGutter.addedBackground":          p.DimGreen,
		"editorGutter.modifiedBackground":       p.DimBlue,
		"editorGutter.deletedBackground":        p.DimRed,
		"editorGutter.foldingControlForeground": p.Grey1,
		"editorGutter.commentRangeForeground":   p.Grey0,

		"diffEditor.insertedTextBackground": p.Bg7,
		"diffEditor.removedTextBackground":  p.Bg8,
		"diffEditor.diagonalFill":           p.Bg4,
		"merge.currentHeaderBackground":     p.Green + "40",
		"merge.currentContentBackground":    p.Green + "20",
		"merge.incomingHeaderBackground":    p.Blue + "40",
		"merge.incomingContentBackground":   p.Blue + "20",
		"merge.commonHeaderBackground":      p.Bg9,
		"merge.commonContentBackground":     p.Bg9 + "80",
		"merge.border":                      p.Bg0 + "00",

		"editorWidget.background":                 p.Bg1,
		"editorWidget.border":                     p.Bg3,
		"editorSuggestWidget.background":          p.Bg1,
		"editorSuggestWidget.border":              p.Bg1,
		"editorSuggestWidget.foreground":          p.Fg,
		"editorSuggestWidget.highlightForeground": p.Green,
		"editorSuggestWidget.selectedBackground":  p.Bg3,
		"editorHoverWidget.background":            p.Bg1,
		"editorHoverWidget.border":                p.Bg3,
		"peekView.border":                         p.Bg4,
		"peekViewEditor.background":               p.Bg1,
		"peekViewEditor.matchHighlightBackground": p.Bg4,
		"peekViewResult.background":               p.Bg1,
		"peekViewResult.fileForeground":           p.Fg,
		"peekViewResult.lineForeground":           p.Grey1,
		"peekViewResult.matchHighlightBackground": p.Bg4,
		"peekViewResult.selectionBackground":      p.Blue + "2e",
		"peekViewTitle.background":                p.Bg3,
		"peekViewTitleDescription.foreground":     p.Fg,
		"peekViewTitleLabel.foreground":           p.Green,

		"terminal.foreground":        p.Fg,
		"terminal.ansiBlack":         ansiBlack,
		"terminal.ansiRed":           p.Red,
		"terminal.ansiGreen":         p.Green,
		"terminal.ansiYellow":        p.Yellow,
		"terminal.ansiBlue":          p.Blue,
		"terminal.ansiMagenta":       p.Purple,
		"terminal.ansiCyan":          p.Aqua,
		"terminal.ansiWhite":         ansiWhite,
		"terminal.ansiBrightBlack":   ansiBrightBlack,
		"terminal.ansiBrightRed":     p.Red,
		"terminal.ansiBrightGreen":   p.Green,
		"terminal.ansiBrightYellow":  p.Yellow,
		"terminal.ansiBrightBlue":    p.Blue,
		"terminal.ansiBrightMagenta": p.Purple,
		"terminal.ansiBrightCyan":    p.Aqua,
		"terminal.ansiBrightWhite":   ansiBrightWhite,

		"gitDecoration.addedResourceForeground":         p.Green,
		"gitDecoration.modifiedResourceForeground":      p.Blue,
		"gitDecoration.deletedResourceForeground":       p.Red,
		"gitDecoration.untrackedResourceForeground":     p.Yellow,
		"gitDecoration.ignoredResourceForeground":       p.Grey0,
		"gitDecoration.conflictingResourceForeground":   p.Purple,
		"gitDecoration.submoduleResourceForeground":     p.Aqua,
		"gitDecoration.stageModifiedResourceForeground": p.Blue,
		"gitDecoration.stageDeletedResourceForeground":  p.Red,

		"list.highlightForeground":         p.Green,
		"list.errorForeground":             p.Red,
		"list.warningForeground":           p.Yellow,
		"list.invalidItemForeground":       p.DimRed,
		"list.hoverBackground":             p.Bg1 + "a0",
		"list.activeSelectionBackground":   p.Bg5 + "70",
		"list.activeSelectionForeground":   p.Fg0,
		"list.inactiveSelectionBackground": p.Bg5 + "50",
		"list.dropBackground":              p.Bg3,
		"tree.indentGuidesStroke":          p.Grey0,

		"scrollbarSlider.background":       p.Bg5 + "80",
		"scrollbarSlider.hoverBackground":  p.Bg5,
		"scrollbarSlider.activeBackground": p.Grey0,
		"progressBar.background":           p.Green,

		"textLink.foreground":       p.Blue,
		"textLink.activeForeground": p.Aqua,
		"textBlockQuote.background": p.Bg1,
		"textBlockQuote.border":     p.Bg5,
		"textCodeBlock.background":  p.Bg1,
		"textPreformat.foreground":  p.Yellow,
		"textSeparator.foreground":  p.Bg5,

		"input.background":                  p.Bg0 + "00",
		"input.foreground":                  p.Fg,
		"input.border":                      p.Bg5,
		"input.placeholderForeground":       p.Grey0,
		"inputOption.activeBorder":          p.Green,
		"inputOption.activeBackground":      p.Green + "40",
		"inputValidation.errorBackground":   p.Bg8,
		"inputValidation.errorBorder":       p.Red,
		"inputValidation.warningBackground": p.Bg1,
		"inputValidation.warningBorder":     p.Yellow,
		"inputValidation.infoBackground":    p.Bg9,
		"inputValidation.infoBorder":        p.Blue,
		"dropdown.background":               p.Bg0,
		"dropdown.foreground":               p.Fg,
		"dropdown.border":                   p.Bg5,

		"notifications.background":            p.Bg1,
		"notifications.foreground":            p.Fg,
		"notificationLink.foreground":         p.Green,
		"notificationsErrorIcon.foreground":   p.Red,
		"notificationsWarningIcon.foreground": p.Yellow,
		"notificationsInfoIcon.foreground":    p.Blue,
		"pickerGroup.foreground":              p.Green,
		"pickerGroup.border":                  p.Bg1,

		"debugConsole.errorForeground":   p.Red,
		"debugConsole.warningForeground": p.Yellow,
		"debugConsole.infoForeground":    p.Blue,
		"debugConsole.sourceForeground":  p.Purple,
		"debugIcon.breakpointForeground": p.Red,
		"debugIcon.startForeground":      p.Green,
		"debugIcon.pauseForeground":      p.Yellow,
		"debugIcon.stopForeground":       p.Red,

		"charts.foreground": p.Fg,
		"charts.lines":      p.Grey0,
		"charts.red":        p.Red,
		"charts.orange":     p.Orange,
		"charts.yellow":     p.Yellow,
		"charts.green":      p.Green,
		"charts.blue":       p.Blue,
		"charts.purple":     p.Purple,

		"symbolIcon.arrayForeground":            p.Blue,
		"symbolIcon.booleanForeground":          p.Purple,
		"symbolIcon.classForeground":            p.Yellow,
		"symbolIcon.colorForeground":            p.Fg,
		"symbolIcon.constantForeground":         p.Fg,
		"symbolIcon.constructorForeground":      p.Green,
		"symbolIcon.enumeratorForeground":       p.Yellow,
		"symbolIcon.enumeratorMemberForeground": p.Purple,
		"symbolIcon.eventForeground":            p.Orange,
		"symbolIcon.fieldForeground":            p.Fg,
		"symbolIcon.functionForeground":         p.Green,
		"symbolIcon.interfaceForeground":        p.Yellow,
		"symbolIcon.keyForeground":              p.Red,
		"symbolIcon.keywordForeground":          p.Red,
		"symbolIcon.methodForeground":           p.Green,
		"symbolIcon.moduleForeground":           p.Yellow,
		"symbolIcon.namespaceForeground":        p.Yellow,
		"symbolIcon.nullForeground":             p.Aqua,
		"symbolIcon.numberForeground":           p.Purple,
		"symbolIcon.objectForeground":           p.Yellow,
		"symbolIcon.operatorForeground":         p.Orange,
		"symbolIcon.packageForeground":          p.Yellow,
		"symbolIcon.propertyForeground":         p.Blue,
		"symbolIcon.stringForeground":           p.Aqua,
		"symbolIcon.structForeground":           p.Yellow,
		"symbolIcon.textForeground":             p.Fg,
		"symbolIcon.typeParameterForeground":    p.Yellow,
		"symbolIcon.variableForeground":         p.Blue,

		"minimap.findMatchHighlight":       p.Green + "60",
		"minimap.selectionHighlight":       p.Bg5 + "f0",
		"minimapGutter.addedBackground":    p.DimGreen,
		"minimapGutter.modifiedBackground": p.DimBlue,
		"minimapGutter.deletedBackground":  p.DimRed,

		"breadcrumb.foreground":                    p.Grey1,
		"breadcrumb.focusForeground":               p.Fg,
		"breadcrumb.activeSelectionForeground":     p.Fg,
		"settings.headerForeground":                p.Green,
		"settings.modifiedItemIndicator":           p.Orange,
		"extensionButton.prominentBackground":      p.Green + "80",
		"extensionButton.prominentForeground":      p.Fg,
		"extensionButton.prominentHoverBackground": p.Green,
	}
}
