package features

import "regexp"

// namedColors maps color words to hex values. Lookup order within a text is
// first-seen, so the table itself needs no ordering.
var namedColors = map[string]string{
	"red":       "#e74c3c",
	"orange":    "#e67e22",
	"yellow":    "#f1c40f",
	"green":     "#2ecc71",
	"blue":      "#3498db",
	"purple":    "#9b59b6",
	"pink":      "#e91e63",
	"black":     "#111111",
	"white":     "#ffffff",
	"gray":      "#95a5a6",
	"grey":      "#95a5a6",
	"brown":     "#8d6e63",
	"cyan":      "#00bcd4",
	"magenta":   "#d81b60",
	"teal":      "#008080",
	"navy":      "#001f3f",
	"gold":      "#ffd700",
	"silver":    "#c0c0c0",
	"lime":      "#32cd32",
	"indigo":    "#4b0082",
	"violet":    "#8a2be2",
	"coral":     "#ff7f50",
	"turquoise": "#40e0d0",
}

var (
	hexColorRE   = regexp.MustCompile(`#([0-9a-fA-F]{3,8})\b`)
	namedColorRE = func() *regexp.Regexp {
		names := make([]string, 0, len(namedColors))
		for name := range namedColors {
			names = append(names, name)
		}
		return compileWordPattern(names)
	}()
)

// NamedColor looks up a color word, returning its hex value.
func NamedColor(name string) (string, bool) {
	hex, ok := namedColors[name]
	return hex, ok
}

// extractColor returns the first color mentioned in the text. An explicit
// hex code wins over a color name.
func extractColor(text string) string {
	if m := hexColorRE.FindString(text); m != "" {
		return m
	}
	if m := namedColorRE.FindString(text); m != "" {
		return namedColors[m]
	}
	return ""
}

// allColors returns every distinct color mentioned, hex codes and names
// alike, in first-seen order. Dedup is case-insensitive on the hex value.
func allColors(text string) []string {
	type hit struct {
		pos int
		hex string
	}
	var hits []hit
	for _, loc := range hexColorRE.FindAllStringIndex(text, -1) {
		hits = append(hits, hit{pos: loc[0], hex: text[loc[0]:loc[1]]})
	}
	for _, loc := range namedColorRE.FindAllStringIndex(text, -1) {
		hits = append(hits, hit{pos: loc[0], hex: namedColors[text[loc[0]:loc[1]]]})
	}

	// Insertion sort by position; hit counts are tiny.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	seen := make(map[string]bool, len(hits))
	var colors []string
	for _, h := range hits {
		key := normalizeHex(h.hex)
		if seen[key] {
			continue
		}
		seen[key] = true
		colors = append(colors, key)
	}
	return colors
}

// normalizeHex lower-cases a hex color for case-insensitive dedup.
func normalizeHex(hex string) string {
	b := []byte(hex)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
