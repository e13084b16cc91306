package features

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	countMin     = 1
	countMax     = 12
	transparency = 0.2
)

// numberWords covers spelled-out counts; digits always win over these.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"couple": 2, "pair": 2, "few": 3,
}

var (
	percentRE      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent\b)`)
	opacityTokenRE = regexp.MustCompile(`opacity\s*(?:of\s*)?(\d+(?:\.\d+)?)`)

	countDigitsRE = regexp.MustCompile(`\b(\d+)\s+(?:circles?|dots?|balls?|orbs?|rects?|rectangles?|squares?|boxes?|stars?|hearts?|lines?|shapes?|elements?|copies|particles?|items?)\b`)
	numberWordRE  = func() *regexp.Regexp {
		words := make([]string, 0, len(numberWords))
		for w := range numberWords {
			words = append(words, w)
		}
		return compileWordPattern(words)
	}()

	strokeWidthRE = regexp.MustCompile(`(?:stroke|border|line)\s*(?:width\s*)?(?:of\s*)?(\d+(?:\.\d+)?)\s*(?:px)?\b`)

	quotedTextRE  = regexp.MustCompile(`["“”']([^"“”']+)["“”']`)
	impliedTextRE = regexp.MustCompile(`(?:text|title|label|caption|heading)\s+(?:that\s+says\s+|saying\s+|says\s+|of\s+)?(.+)$`)

	fontSizeRE   = regexp.MustCompile(`font\s*size\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	pointSizeRE  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:pt|point)\b`)
	durationRE   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:seconds?|secs?|s)\b`)
	multiplierRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(?:speed)?\b`)

	radiusRE    = regexp.MustCompile(`radius\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
	dimensionRE = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:px\s*)?x\s*(\d+(?:\.\d+)?)\b`)
	widthRE     = regexp.MustCompile(`(?:width\s*(?:of\s*)?(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*(?:px\s*)?wide)`)
	heightRE    = regexp.MustCompile(`(?:height\s*(?:of\s*)?(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*(?:px\s*)?tall)`)
	squareRE    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:px\s*)?square`)
)

// trailingClauses are prepositions that start a clause to strip off implied
// text content ("a title hello in the corner" keeps only "hello").
var trailingClauses = []string{" in ", " at ", " on ", " with ", " near ", " above ", " below ", " over "}

// extractOpacity resolves opacity from text. "transparent" wins, then a bare
// percentage, then an explicit opacity token whose value is treated as a
// percentage when greater than 1. The result is clamped to [0,1].
func extractOpacity(text string) (float64, bool) {
	if compiledPatterns["transparent"].MatchString(text) {
		return transparency, true
	}
	if m := percentRE.FindStringSubmatch(text); m != nil {
		return clamp01(parseFloat(m[1]) / 100), true
	}
	if m := opacityTokenRE.FindStringSubmatch(text); m != nil {
		v := parseFloat(m[1])
		if v > 1 {
			v /= 100
		}
		return clamp01(v), true
	}
	return 0, false
}

// extractCount resolves how many shapes to create. Digits followed by a
// shape noun win over spelled-out number words. Always in [1,12].
func extractCount(text string) int {
	if m := countDigitsRE.FindStringSubmatch(text); m != nil {
		return clampCount(parseInt(m[1]))
	}
	if m := numberWordRE.FindString(text); m != "" {
		return clampCount(numberWords[m])
	}
	return countMin
}

// extractText resolves literal text content. A quoted substring from the
// original (case-preserving) text wins over an implied "text/title/label X"
// token, whose trailing preposition clauses are stripped.
func extractText(original, normalized string) string {
	if m := quotedTextRE.FindStringSubmatch(original); m != nil {
		return strings.TrimSpace(m[1])
	}
	m := impliedTextRE.FindStringSubmatch(normalized)
	if m == nil {
		return ""
	}
	content := m[1]
	for _, clause := range trailingClauses {
		if idx := strings.Index(content, clause); idx >= 0 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}

func extractFontSize(text string) float64 {
	if m := fontSizeRE.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	if m := pointSizeRE.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	return 0
}

func extractDuration(text string) float64 {
	if m := durationRE.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	return 0
}

// extractSpeed resolves a playback multiplier: an explicit "2x" token first,
// then double/half phrasing.
func extractSpeed(text string) float64 {
	if m := multiplierRE.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	if strings.Contains(text, "double speed") || strings.Contains(text, "twice as fast") {
		return 2
	}
	if strings.Contains(text, "half speed") {
		return 0.5
	}
	return 0
}

// extractStrokeWidth resolves an explicit stroke width in px, 0 if absent.
func extractStrokeWidth(text string) float64 {
	if m := strokeWidthRE.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	return 0
}

// extractSize resolves explicit numeric sizes. Qualitative "small"/"large"
// are left as flags; generators scale those from the artboard.
func extractSize(text string) Size {
	var s Size
	if m := radiusRE.FindStringSubmatch(text); m != nil {
		s.Radius = parseFloat(m[1])
	}
	if m := dimensionRE.FindStringSubmatch(text); m != nil {
		s.Width = parseFloat(m[1])
		s.Height = parseFloat(m[2])
		return s
	}
	if m := squareRE.FindStringSubmatch(text); m != nil {
		s.Width = parseFloat(m[1])
		s.Height = s.Width
		return s
	}
	if m := widthRE.FindStringSubmatch(text); m != nil {
		s.Width = parseFloat(firstNonEmpty(m[1], m[2]))
	}
	if m := heightRE.FindStringSubmatch(text); m != nil {
		s.Height = parseFloat(firstNonEmpty(m[1], m[2]))
	}
	return s
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampCount(n int) int {
	if n < countMin {
		return countMin
	}
	if n > countMax {
		return countMax
	}
	return n
}
