package plan

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/features"
)

const (
	defaultDuration = 4.0
	minDuration     = 2.0

	introFraction  = 0.25
	actionFraction = 0.80
)

// sceneKeywords are the flags whose presence signals scene intent:
// landscapes, biomes, celestial bodies and weather.
var sceneKeywords = []string{
	"sunset", "ocean", "city", "forest", "mountain", "desert", "space",
	"studio", "neon", "meadow", "scene", "sky", "night", "day",
	"stars", "sun", "moon", "clouds", "rain", "snow", "storm",
}

// pathKeywords signal procedural path-shape intent. "wave" is handled
// separately because it is ambiguous with the character motion.
var pathKeywords = []string{"path", "blob", "spiral", "heart", "stars", "polygon", "zigzag"}

// archetypeRules is the ordered first-match-wins decision table for scene
// archetype selection. Order is the contract: only the first matching rule
// wins.
var archetypeRules = []struct {
	flags     []string
	archetype Archetype
}{
	{[]string{"sunset"}, ArchetypeSunset},
	{[]string{"ocean"}, ArchetypeOcean},
	{[]string{"city"}, ArchetypeCity},
	{[]string{"forest"}, ArchetypeForest},
	{[]string{"mountain"}, ArchetypeMountain},
	{[]string{"desert"}, ArchetypeDesert},
	{[]string{"space"}, ArchetypeSpace},
	{[]string{"studio", "neon"}, ArchetypeNeon},
	{[]string{"meadow"}, ArchetypeMeadow},
	{[]string{"scene"}, ArchetypeGeneric},
}

// motionRules is the ordered preset cascade; first match wins.
var motionRules = []struct {
	flag   string
	motion Motion
}{
	{"walk", MotionWalk},
	{"wave", MotionWave},
	{"idle", MotionIdle},
	{"bounce", MotionBounce},
	{"spin", MotionSpin},
	{"pulse", MotionPulse},
}

// Build resolves one Plan from the extracted features and editor context.
// It is total: any input yields a usable Plan, with no intents set when
// nothing matched (which drives the fallback generator).
func Build(req Request, fs *features.FeatureSet) *Plan {
	p := &Plan{
		Archetype: ArchetypeNone,
		Motion:    MotionNone,
		Weather:   WeatherNone,
		Layout:    resolveLayout(fs),
		Features:  fs,
		Artboard:  normalizeArtboard(req.Artboard),
		Selected:  req.Selected,
		Elements:  req.Elements,
	}

	p.WantsCreate = fs.Any("create", "new")

	// Explicit modification intent beats scene generation: a request about
	// "existing"/"selected" content with real elements in context never
	// spawns a fresh scene.
	p.WantsScene = fs.Any(sceneKeywords...)
	if fs.Any("existing", "selected") && len(req.Elements) > 0 {
		p.WantsScene = false
	}

	if p.WantsScene {
		p.Archetype = resolveArchetype(fs)
	}

	p.WantsCharacter = fs.Any("character", "robot", "animal")

	selectedImage := req.Selected != nil && req.Selected.Kind == actions.ElementImage
	p.WantsPhoto = fs.Has("photo") ||
		(selectedImage && fs.Any("animate", "kenburns", "parallax"))
	p.PhotoTier2 = p.WantsPhoto && fs.Any("subject", "bbox", "foreground", "background")

	// "wave" is ambiguous between a path shape and a character motion;
	// character intent wins the tie.
	p.WantsPath = fs.Any(pathKeywords...) || (fs.Has("wave") && !p.WantsCharacter)

	for _, rule := range motionRules {
		if fs.Has(rule.flag) {
			p.Motion = rule.motion
			break
		}
	}

	p.Style = resolveStyle(fs)
	p.CameraMotion = fs.Any("camera", "pan", "zoom", "kenburns", "parallax")

	switch {
	case fs.Has("rain") || fs.Has("storm"):
		p.Weather = WeatherRain
	case fs.Has("snow"):
		p.Weather = WeatherSnow
	}

	p.Duration = resolveDuration(req, fs)
	p.Beats = Beats{
		IntroEnd:  p.Duration * introFraction,
		ActionEnd: p.Duration * actionFraction,
		SettleEnd: p.Duration,
	}

	p.Palette = features.ResolvePalette(req.Text, DefaultPalette(p.Archetype))

	return p
}

// resolveArchetype walks the ordered decision table; any scene keyword that
// names no specific archetype yields the generic scene.
func resolveArchetype(fs *features.FeatureSet) Archetype {
	for _, rule := range archetypeRules {
		if fs.Any(rule.flags...) {
			return rule.archetype
		}
	}
	return ArchetypeGeneric
}

func resolveStyle(fs *features.FeatureSet) string {
	switch {
	case fs.Has("gradient"):
		return "gradient"
	case fs.Has("neon"):
		return "neon"
	case fs.Has("pastel"):
		return "pastel"
	}
	return ""
}

// normalizeArtboard substitutes the editor's default canvas when the
// request carries no usable dimensions.
func normalizeArtboard(a Artboard) Artboard {
	if a.Width <= 0 {
		a.Width = 800
	}
	if a.Height <= 0 {
		a.Height = 600
	}
	return a
}

func resolveLayout(fs *features.FeatureSet) Layout {
	switch {
	case fs.Has("grid"):
		return LayoutGrid
	case fs.Has("column"):
		return LayoutColumn
	}
	return LayoutRow
}

// resolveDuration applies the context hint, then the text-extracted
// duration, then the default, with a hard 2s floor.
func resolveDuration(req Request, fs *features.FeatureSet) float64 {
	d := req.Duration
	if d == 0 {
		d = fs.Duration
	}
	if d == 0 {
		d = defaultDuration
	}
	if d < minDuration {
		d = minDuration
	}
	return d
}
