package features

import (
	"regexp"
	"strings"
)

// keywordPatterns is the static classifier table. Every entry becomes one
// independent boolean flag; a flag fires when any of its words or phrases
// appears in the normalized text on whole-word boundaries. Flags are
// mutually non-exclusive and no flag's evaluation depends on another.
var keywordPatterns = map[string][]string{
	// creation and modification references
	"create":   {"create", "make", "draw", "add", "generate", "build"},
	"new":      {"new"},
	"existing": {"existing", "current"},
	"selected": {"selected", "this one"},

	// landscapes, biomes, celestial bodies
	"sunset":   {"sunset", "sundown", "dusk"},
	"ocean":    {"ocean", "sea", "beach", "underwater"},
	"city":     {"city", "skyline", "urban", "downtown", "buildings"},
	"forest":   {"forest", "woods", "jungle", "trees"},
	"mountain": {"mountain", "mountains", "hills", "alps"},
	"desert":   {"desert", "dunes", "sahara"},
	"space":    {"space", "galaxy", "cosmos", "planet", "planets", "nebula"},
	"studio":   {"studio", "room", "stage"},
	"neon":     {"neon", "cyberpunk", "synthwave"},
	"meadow":   {"meadow", "field", "grass", "garden"},
	"scene":    {"scene", "landscape", "environment", "scenery", "backdrop"},
	"sky":      {"sky"},
	"night":    {"night", "dark", "midnight"},
	"day":      {"day", "daytime", "morning"},
	"stars":    {"star", "stars", "starry"},
	"sun":      {"sun"},
	"moon":     {"moon"},
	"clouds":   {"cloud", "clouds", "cloudy"},

	// weather
	"rain":  {"rain", "raining", "rainy", "drizzle"},
	"snow":  {"snow", "snowing", "snowy", "blizzard"},
	"storm": {"storm", "thunder"},

	// characters
	"character": {"character", "figure", "person", "man", "woman", "guy", "girl", "stickman", "stick figure"},
	"robot":     {"robot", "android", "bot", "mech"},
	"animal":    {"animal", "cat", "dog", "bird", "creature", "monster"},

	// motion presets
	"walk":   {"walk", "walks", "walking", "stroll"},
	"wave":   {"wave", "waves", "waving"},
	"idle":   {"idle", "float", "floats", "floating", "hover", "hovering", "breathe", "breathing"},
	"bounce": {"bounce", "bounces", "bouncing", "jump", "jumps", "jumping", "hop"},
	"spin":   {"spin", "spins", "spinning", "rotate", "rotates", "rotating", "twirl"},
	"pulse":  {"pulse", "pulses", "pulsing", "throb", "heartbeat"},

	// path shapes
	"path":    {"path", "curve", "squiggle", "line"},
	"blob":    {"blob", "blobby", "amoeba"},
	"spiral":  {"spiral", "swirl", "coil"},
	"heart":   {"heart", "hearts"},
	"polygon": {"polygon", "pentagon", "hexagon", "octagon", "triangle"},
	"zigzag":  {"zigzag", "zig zag", "lightning bolt"},

	// photo animation
	"photo":      {"photo", "photograph", "picture", "pic", "image", "selfie", "portrait"},
	"kenburns":   {"ken burns", "kenburns"},
	"parallax":   {"parallax", "depth effect"},
	"subject":    {"subject", "main subject", "focal point"},
	"bbox":       {"bounding box", "bbox"},
	"foreground": {"foreground"},
	"background": {"background", "bg"},

	// animation verbs
	"animate": {"animate", "animated", "animation", "motion"},
	"move":    {"move", "moves", "moving", "slide", "slides", "sliding", "glide"},
	"fade":    {"fade", "fades", "fading", "appear", "disappear", "vanish"},
	"reveal":  {"reveal", "draw itself", "draws itself", "draw on", "unfold", "trace"},

	// camera
	"camera": {"camera"},
	"pan":    {"pan", "panning"},
	"zoom":   {"zoom", "zooms", "zooming"},

	// directions
	"left":  {"left", "leftward", "west"},
	"right": {"right", "rightward", "east"},
	"up":    {"up", "upward", "upwards", "top"},
	"down":  {"down", "downward", "bottom"},

	// primitive shapes
	"circle": {"circle", "circles", "dot", "dots", "ball", "balls", "orb", "orbs"},
	"rect":   {"rect", "rectangle", "rectangles", "square", "squares", "box", "boxes"},
	"text":   {"text", "word", "words", "title", "label", "caption", "heading"},

	// visual styles
	"gradient": {"gradient", "gradients"},
	"pastel":   {"pastel", "muted", "soft colors"},
	"outline":  {"outline", "outlined", "unfilled", "hollow"},
	"stroke":   {"stroke", "stroked", "border"},
	"glow":     {"glow", "glowing", "luminous"},

	// sizing
	"small":   {"small", "tiny", "little", "mini"},
	"large":   {"large", "big", "huge", "giant", "massive"},
	"bigger":  {"bigger", "larger", "grow", "enlarge", "increase"},
	"smaller": {"smaller", "shrink", "reduce", "decrease"},

	// layout
	"row":    {"row", "in a row", "horizontal", "horizontally"},
	"column": {"column", "in a column", "vertical", "vertically", "stacked"},
	"grid":   {"grid", "in a grid", "tiled", "tiles"},

	// playback
	"faster":      {"faster", "speed up", "quicker"},
	"slower":      {"slower", "slow down", "slow motion", "slowmo"},
	"loop":        {"loop", "looping", "forever"},
	"transparent": {"transparent", "translucent", "see through", "see-through"},
}

// compiledPatterns holds one regexp per flag, built once at init.
var compiledPatterns = func() map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(keywordPatterns))
	for flag, words := range keywordPatterns {
		compiled[flag] = compileWordPattern(words)
	}
	return compiled
}()

// compileWordPattern builds a case-insensitive whole-word alternation.
// Phrases match across any run of whitespace.
func compileWordPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), ` `, `\s+`)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// FlagNames returns every flag known to the classifier table.
func FlagNames() []string {
	names := make([]string, 0, len(keywordPatterns))
	for name := range keywordPatterns {
		names = append(names, name)
	}
	return names
}
