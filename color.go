package pie

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// cssNamedColors maps the CSS basic color keywords to hex, so that section
// colors like "red" render identically on the SVG and raster backends.
var cssNamedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"orange":  "#ffa500",
}

// NormalizeColor canonicalizes color strings to lowercase #rrggbb form,
// resolving the CSS basic color keywords along the way. Anything else is
// passed through unchanged; the SVG backend accepts such strings verbatim.
func NormalizeColor(s string) string {
	if hex, ok := cssNamedColors[strings.ToLower(s)]; ok {
		return hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return s
	}
	return c.Hex()
}

// TextColorFor picks a readable center-text color (black or white) for the
// given background, by lightness. Unparseable backgrounds get black, which
// matches the white default background.
func TextColorFor(background string) string {
	c, err := colorful.Hex(NormalizeColor(background))
	if err != nil {
		return "#000000"
	}
	if l, _, _ := c.Lab(); l < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}

// Palette generates n visually distinct section colors as hex strings, for
// callers that supply weights without colors. Sections still need a color
// by layout time; the palette is a convenience, not a default.
func Palette(n int) []string {
	if n <= 0 {
		return nil
	}
	colors, err := colorful.HappyPalette(n)
	if err != nil {
		// The constrained generator gives up when n exceeds what the happy
		// color space fits; the fast variant always succeeds.
		colors = colorful.FastHappyPalette(n)
	}
	out := make([]string, n)
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
