package plan

import (
	"testing"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/features"
)

func buildFor(t *testing.T, text string) *Plan {
	t.Helper()
	req := Request{Text: text, Artboard: Artboard{Width: 800, Height: 600}}
	return Build(req, features.Extract(text))
}

func TestBuild_ArchetypeCascadeOrder(t *testing.T) {
	tests := []struct {
		text string
		want Archetype
	}{
		{"a sunset over the ocean", ArchetypeSunset}, // sunset beats ocean
		{"a city by the sea", ArchetypeOcean},        // ocean beats city
		{"a forest near the city", ArchetypeCity},
		{"mountains behind a forest", ArchetypeForest},
		{"a desert mountain", ArchetypeMountain},
		{"a desert planet", ArchetypeDesert}, // desert beats space
		{"deep space", ArchetypeSpace},
		{"a neon stage", ArchetypeNeon},
		{"a flower meadow", ArchetypeMeadow},
		{"a pretty landscape", ArchetypeGeneric},
		{"under a starry sky", ArchetypeGeneric}, // celestial words with no named archetype
	}

	for _, tt := range tests {
		p := buildFor(t, tt.text)
		if !p.WantsScene {
			t.Errorf("Build(%q): expected scene intent", tt.text)
			continue
		}
		if p.Archetype != tt.want {
			t.Errorf("Build(%q).Archetype = %q, want %q", tt.text, p.Archetype, tt.want)
		}
	}
}

func TestBuild_NoIntentsYieldsBasicPlan(t *testing.T) {
	p := buildFor(t, "draw a blue circle")
	if p.WantsScene || p.WantsCharacter || p.WantsPath || p.WantsPhoto {
		t.Errorf("expected no high-level intent, got %+v", p)
	}
	if p.Archetype != ArchetypeNone {
		t.Errorf("Archetype = %q, want none", p.Archetype)
	}
	if !p.WantsCreate {
		t.Error("expected create intent from 'draw'")
	}
}

func TestBuild_ExistingContentSuppressesScene(t *testing.T) {
	text := "make the existing sky darker"
	req := Request{
		Text:     text,
		Artboard: Artboard{Width: 800, Height: 600},
		Elements: []ElementRef{{ID: "el-1", Kind: actions.ElementRect}},
	}
	p := Build(req, features.Extract(text))
	if p.WantsScene {
		t.Error("explicit existing-content reference with context elements should suppress scene intent")
	}

	// Without context elements the scene keyword still wins.
	p = buildFor(t, text)
	if !p.WantsScene {
		t.Error("with no context elements the scene keyword should fire")
	}
}

func TestBuild_WaveTieBreak(t *testing.T) {
	p := buildFor(t, "a robot waves hello")
	if p.WantsPath {
		t.Error("wave with character intent should not produce a path")
	}
	if !p.WantsCharacter || p.Motion != MotionWave {
		t.Errorf("expected character waving, got character=%v motion=%q", p.WantsCharacter, p.Motion)
	}

	p = buildFor(t, "a smooth wave")
	if !p.WantsPath {
		t.Error("wave with no character intent should produce a path shape")
	}
}

func TestBuild_MotionPriority(t *testing.T) {
	p := buildFor(t, "a character walks and waves and spins")
	if p.Motion != MotionWalk {
		t.Errorf("Motion = %q, want walk (highest priority)", p.Motion)
	}
}

func TestBuild_PhotoIntents(t *testing.T) {
	img := &ElementRef{ID: "img-1", Kind: actions.ElementImage, Width: 400, Height: 300}

	text := "give it a ken burns animation"
	req := Request{Text: text, Artboard: Artboard{Width: 800, Height: 600}, Selected: img}
	p := Build(req, features.Extract(text))
	if !p.WantsPhoto {
		t.Fatal("selected image + ken burns should imply photo intent")
	}
	if p.PhotoTier2 {
		t.Error("no subject/bbox keywords: expected tier 1")
	}

	text = "ken burns with a bounding box around the subject"
	req.Text = text
	p = Build(req, features.Extract(text))
	if !p.WantsPhoto || !p.PhotoTier2 {
		t.Errorf("expected tier 2 photo intent, got photo=%v tier2=%v", p.WantsPhoto, p.PhotoTier2)
	}

	// Photo keyword alone is enough even without a selected image.
	p = buildFor(t, "animate this photo")
	if !p.WantsPhoto {
		t.Error("photo keyword alone should imply photo intent")
	}
}

func TestBuild_DurationAndBeats(t *testing.T) {
	req := Request{Text: "a sunset", Artboard: Artboard{Width: 800, Height: 600}, Duration: 8}
	p := Build(req, features.Extract(req.Text))
	if p.Duration != 8 {
		t.Fatalf("Duration = %v, want 8", p.Duration)
	}
	if p.Beats.IntroEnd != 2 || p.Beats.ActionEnd != 6.4 || p.Beats.SettleEnd != 8 {
		t.Errorf("Beats = %+v, want 2/6.4/8", p.Beats)
	}

	// Floor at 2s.
	req.Duration = 0.5
	p = Build(req, features.Extract(req.Text))
	if p.Duration != 2 {
		t.Errorf("Duration = %v, want floor 2", p.Duration)
	}

	// Text extraction supplies the hint when the request has none.
	p = buildFor(t, "a sunset over 10 seconds")
	if p.Duration != 10 {
		t.Errorf("Duration = %v, want 10 from text", p.Duration)
	}

	// Default.
	p = buildFor(t, "a sunset")
	if p.Duration != 4 {
		t.Errorf("Duration = %v, want default 4", p.Duration)
	}
}

func TestBuild_WeatherAndCamera(t *testing.T) {
	p := buildFor(t, "a rainy city with the camera panning left")
	if p.Weather != WeatherRain {
		t.Errorf("Weather = %q, want rain", p.Weather)
	}
	if !p.CameraMotion {
		t.Error("expected camera motion")
	}

	p = buildFor(t, "snow falling on a forest")
	if p.Weather != WeatherSnow {
		t.Errorf("Weather = %q, want snow", p.Weather)
	}
}

func TestBuild_PaletteFallsBackToArchetype(t *testing.T) {
	p := buildFor(t, "a sunset")
	want := DefaultPalette(ArchetypeSunset)
	if len(p.Palette) != len(want) {
		t.Fatalf("palette = %v, want archetype default %v", p.Palette, want)
	}
	for i := range want {
		if p.Palette[i] != want[i] {
			t.Errorf("palette[%d] = %q, want %q", i, p.Palette[i], want[i])
		}
	}

	p = buildFor(t, "a red and gold sunset")
	if len(p.Palette) != 2 || p.Palette[0] != "#e74c3c" {
		t.Errorf("explicit colors should win: %v", p.Palette)
	}
}

func TestBuild_StyleAndLayout(t *testing.T) {
	if p := buildFor(t, "a gradient neon scene"); p.Style != "gradient" {
		t.Errorf("Style = %q, want gradient (highest priority)", p.Style)
	}
	if p := buildFor(t, "a neon room"); p.Style != "neon" {
		t.Errorf("Style = %q, want neon", p.Style)
	}
	if p := buildFor(t, "5 circles in a grid"); p.Layout != LayoutGrid {
		t.Errorf("Layout = %q, want grid", p.Layout)
	}
	if p := buildFor(t, "5 circles stacked vertically"); p.Layout != LayoutColumn {
		t.Errorf("Layout = %q, want column", p.Layout)
	}
	if p := buildFor(t, "5 circles"); p.Layout != LayoutRow {
		t.Errorf("Layout = %q, want default row", p.Layout)
	}
}
