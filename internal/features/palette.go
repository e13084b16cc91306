package features

import "strings"

// MaxPaletteSize caps how many explicit colors a request contributes.
const MaxPaletteSize = 6

// genericPalette is the last-resort fallback when neither the text nor the
// archetype supplies colors.
var genericPalette = []string{"#3498db", "#e74c3c", "#f1c40f"}

// ResolvePalette collects every explicit color in the text (hex codes and
// color names alike, first-seen order, case-insensitive dedup) capped at
// MaxPaletteSize. With no colors in the text it returns fallback, and with
// an empty fallback the built-in generic palette.
func ResolvePalette(text string, fallback []string) []string {
	colors := allColors(strings.ToLower(strings.TrimSpace(text)))
	if len(colors) > MaxPaletteSize {
		colors = colors[:MaxPaletteSize]
	}
	if len(colors) > 0 {
		return colors
	}
	if len(fallback) > 0 {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	out := make([]string, len(genericPalette))
	copy(out, genericPalette)
	return out
}
