// Package colorutil works on the hex color strings themes are made of.
package colorutil

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHex reports whether s is #RGB, #RRGGBB or #RRGGBBAA.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Opaque drops an alpha byte from #RRGGBBAA and expands #RGB to #RRGGBB.
func Opaque(hex string) (string, error) {
	if !IsHex(hex) {
		return "", fmt.Errorf("not a hex color: %q", hex)
	}
	digits := hex[1:]
	switch len(digits) {
	case 3:
		return "#" + strings.Repeat(digits[0:1], 2) + strings.Repeat(digits[1:2], 2) + strings.Repeat(digits[2:3], 2), nil
	case 8:
		return "#" + digits[:6], nil
	}
	return hex, nil
}

func parse(hex string) (colorful.Color, error) {
	opaque, err := Opaque(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(opaque)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse %s: %w", hex, err)
	}
	return c, nil
}

// Luminance is the WCAG relative luminance of hex. Alpha is ignored and malformed input counts as black.
func Luminance(hex string) float64 {
	c, err := parse(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio between two colors, from 1 to 21.
func ContrastRatio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

const (
	contrastStep  = 0.02
	contrastSteps = 50
)

// EnsureContrast moves the HSV value of hexColor until it reaches minRatio against hexBg,
// keeping hue and saturation. Light themes try darker candidates first, dark themes lighter ones.
// The input is returned unchanged when it already passes, is malformed, or no candidate passes.
func EnsureContrast(hexColor, hexBg string, minRatio float64, isLight bool) string {
	if ContrastRatio(hexColor, hexBg) >= minRatio {
		return hexColor
	}
	c, err := parse(hexColor)
	if err != nil {
		return hexColor
	}

	h, s, v := c.Hsv()
	directions := []float64{1, -1}
	if isLight {
		directions = []float64{-1, 1}
	}

	for step := 1; step <= contrastSteps; step++ {
		for _, dir := range directions {
			value := math.Max(0, math.Min(1, v+dir*float64(step)*contrastStep))
			candidate := colorful.Hsv(h, s, value).Clamped().Hex()
			if ContrastRatio(candidate, hexBg) >= minRatio {
				return candidate
			}
		}
	}
	return hexColor
}

// Blend mixes hex toward target in CIE-Lab; t=0 returns hex, t=1 returns target.
func Blend(hex, target string, t float64) (string, error) {
	from, err := parse(hex)
	if err != nil {
		return "", err
	}
	to, err := parse(target)
	if err != nil {
		return "", err
	}
	return from.BlendLab(to, t).Clamped().Hex(), nil
}

// WithAlpha replaces any alpha on hex with the two-digit alpha byte.
func WithAlpha(hex, alpha string) (string, error) {
	opaque, err := Opaque(hex)
	if err != nil {
		return "", err
	}
	out := opaque + strings.ToLower(alpha)
	if !IsHex(out) {
		return "", fmt.Errorf("bad alpha %q for %s", alpha, hex)
	}
	return out, nil
}
