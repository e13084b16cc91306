// Package features turns free-form instruction text into a FeatureSet: a set
// of independent boolean keyword flags plus extracted scalar values. It is the
// first stage of the compile pipeline and has no dependencies on the rest.
package features

import "strings"

// Size carries shape-specific size tokens extracted from text. Zero means
// the token was absent.
type Size struct {
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// FeatureSet is the classification of one request text. Flags are mutually
// non-exclusive; scalar fields hold the first successful match of each
// extractor cascade.
type FeatureSet struct {
	Flags map[string]bool

	Color       string  // hex with leading #, "" if none
	Opacity     float64 // meaningful only when HasOpacity
	HasOpacity  bool
	StrokeWidth float64 // px, 0 if absent
	Count       int     // clamped 1..12, defaults to 1
	Text        string  // quoted or implied text content
	FontSize    float64
	Duration    float64 // seconds, 0 if absent
	Speed       float64 // playback multiplier, 0 if absent
	Size        Size
}

// Has reports whether the named keyword flag fired. Unknown names are false.
func (fs *FeatureSet) Has(name string) bool {
	return fs.Flags[name]
}

// Any reports whether at least one of the named flags fired.
func (fs *FeatureSet) Any(names ...string) bool {
	for _, n := range names {
		if fs.Flags[n] {
			return true
		}
	}
	return false
}

// Extract normalizes text and classifies it against the full keyword table,
// then runs the scalar extractor cascades. It is a pure function; the same
// text always yields the same FeatureSet.
func Extract(text string) *FeatureSet {
	normalized := strings.ToLower(strings.TrimSpace(text))

	fs := &FeatureSet{
		Flags: make(map[string]bool, len(compiledPatterns)),
	}
	for flag, re := range compiledPatterns {
		fs.Flags[flag] = re.MatchString(normalized)
	}

	fs.Color = extractColor(normalized)
	fs.Opacity, fs.HasOpacity = extractOpacity(normalized)
	fs.StrokeWidth = extractStrokeWidth(normalized)
	fs.Count = extractCount(normalized)
	fs.Text = extractText(text, normalized)
	fs.FontSize = extractFontSize(normalized)
	fs.Duration = extractDuration(normalized)
	fs.Speed = extractSpeed(normalized)
	fs.Size = extractSize(normalized)

	return fs
}
