package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankgruvbox/internal/colorutil"
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	nameStyle  = lipgloss.NewStyle().Width(12)
	hexStyle   = lipgloss.NewStyle().Width(11)
)

func swatch(hex string) string {
	opaque, err := colorutil.Opaque(hex)
	if err != nil {
		return "   "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(opaque)).Render("      ")
}

// Render draws one row per palette color: name, hex value and a color swatch.
func Render(p palette.Palette, title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, c := range p.Named() {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(c.Name),
			hexStyle.Render(c.Hex),
			swatch(c.Hex),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// Plain lists the palette as "name hex" lines for scripts.
func Plain(p palette.Palette) string {
	var b strings.Builder
	for _, c := range p.Named() {
		fmt.Fprintf(&b, "%s %s\n", c.Name, c.Hex)
	}
	return b.String()
}
