package workbench

import (
	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
)

// surfaces names the colors a style picks for the chrome around the editor.
type surfaces struct {
	chrome      string // activity bar, side bar, title bar
	status      string
	tabs        string
	panel       string
	border      string
	badge       string
	badgeFg     string
	accentLine  string
	inactiveFg  string
	sectionHead string
}

func materialSurfaces(p palette.Palette) surfaces {
	return surfaces{
		chrome:      p.Bg0,
		status:      p.Bg0,
		tabs:        p.Bg0,
		panel:       p.Bg0,
		border:      p.Bg0 + "00",
		badge:       p.Green,
		badgeFg:     p.Bg0,
		accentLine:  p.Green,
		inactiveFg:  p.Grey1,
		sectionHead: p.Bg0 + "00",
	}
}

func flatSurfaces(p palette.Palette) surfaces {
	return surfaces{
		chrome:      p.Bg1,
		status:      p.Bg1,
		tabs:        p.Bg1,
		panel:       p.Bg0,
		border:      p.Bg1,
		badge:       p.Blue,
		badgeFg:     p.Bg0,
		accentLine:  p.Blue,
		inactiveFg:  p.Grey1,
		sectionHead: p.Bg1,
	}
}

func highContrastSurfaces(p palette.Palette) surfaces {
	return surfaces{
		chrome:      p.Bg,
		status:      p.Bg,
		tabs:        p.Bg,
		panel:       p.Bg,
		border:      p.Bg,
		badge:       p.Green,
		badgeFg:     p.Bg,
		accentLine:  p.Orange,
		inactiveFg:  p.Grey1,
		sectionHead: p.Bg,
	}
}

var styles = map[config.Workbench]func(palette.Palette) surfaces{
	config.WorkbenchMaterial:     materialSurfaces,
	config.WorkbenchFlat:         flatSurfaces,
	config.WorkbenchHighContrast: highContrastSurfaces,
}

// chrome maps style surfaces onto the workbench keys they drive.
func chrome(p palette.Palette, s surfaces) map[string]string {
	return map[string]string{
		"activityBar.background":         s.chrome,
		"activityBar.foreground":         p.Fg,
		"activityBar.inactiveForeground": s.inactiveFg,
		"activityBar.border":             s.border,
		"activityBar.activeBorder":       s.accentLine,
		"activityBar.activeFocusBorder":  s.accentLine,
		"activityBarBadge.background":    s.badge,
		"activityBarBadge.foreground":    s.badgeFg,

		"sideBar.background":              s.chrome,
		"sideBar.foreground":              p.Fg,
		"sideBar.border":                  s.border,
		"sideBarTitle.foreground":         p.Fg,
		"sideBarSectionHeader.background": s.sectionHead,
		"sideBarSectionHeader.foreground": p.Fg,
		"sideBarSectionHeader.border":     s.border,

		"statusBar.background":              s.status,
		"statusBar.foreground":              p.Grey2,
		"statusBar.border":                  s.border,
		"statusBar.noFolderBackground":      s.status,
		"statusBar.debuggingBackground":     p.Orange,
		"statusBar.debuggingForeground":     s.badgeFg,
		"statusBarItem.hoverBackground":     p.Bg3,
		"statusBarItem.remoteBackground":    s.badge,
		"statusBarItem.remoteForeground":    s.badgeFg,
		"statusBarItem.prominentBackground": p.Bg3,

		"titleBar.activeBackground":   s.chrome,
		"titleBar.activeForeground":   p.Grey2,
		"titleBar.inactiveBackground": s.chrome,
		"titleBar.inactiveForeground": s.inactiveFg,
		"titleBar.border":             s.border,

		"tab.activeBackground":               p.Bg0,
		"tab.activeForeground":               p.Fg,
		"tab.inactiveBackground":             s.tabs,
		"tab.inactiveForeground":             s.inactiveFg,
		"tab.border":                         s.border,
		"tab.activeBorder":                   s.accentLine,
		"tab.hoverBackground":                p.Bg1,
		"tab.unfocusedActiveForeground":      p.Grey2,
		"tab.unfocusedInactiveForeground":    s.inactiveFg,
		"editorGroupHeader.tabsBackground":   s.tabs,
		"editorGroupHeader.noTabsBackground": s.tabs,
		"editorGroupHeader.tabsBorder":       s.border,
		"editorGroup.border":                 s.border,
		"editorGutter.background":            p.Bg0,

		"panel.background":              s.panel,
		"panel.border":                  s.border,
		"panelTitle.activeBorder":       s.accentLine,
		"panelTitle.activeForeground":   p.Fg,
		"panelTitle.inactiveForeground": s.inactiveFg,
		"panelSectionHeader.background": s.sectionHead,
		"terminal.background":           s.panel,

		"badge.background":         s.badge,
		"badge.foreground":         s.badgeFg,
		"button.background":        s.badge,
		"button.foreground":        s.badgeFg,
		"button.hoverBackground":   s.accentLine,
		"focusBorder":              p.Bg0 + "00",
		"contrastBorder":           p.Bg0 + "00",
		"menu.background":          s.chrome,
		"menu.foreground":          p.Fg,
		"menu.selectionBackground": p.Bg3,
		"menu.separatorBackground": p.Bg5,
	}
}
