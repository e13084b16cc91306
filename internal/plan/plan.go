// Package plan resolves a FeatureSet plus editor context into a single
// coherent Plan that drives every generator downstream.
package plan

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/features"
)

// Archetype names one of the fixed scene templates.
type Archetype string

const (
	ArchetypeNone     Archetype = "none"
	ArchetypeSunset   Archetype = "sunset"
	ArchetypeOcean    Archetype = "ocean"
	ArchetypeCity     Archetype = "city"
	ArchetypeForest   Archetype = "forest"
	ArchetypeMountain Archetype = "mountain"
	ArchetypeDesert   Archetype = "desert"
	ArchetypeSpace    Archetype = "space"
	ArchetypeNeon     Archetype = "neon-studio"
	ArchetypeMeadow   Archetype = "meadow"
	ArchetypeGeneric  Archetype = "generic-scene"
)

// Motion names a character motion preset.
type Motion string

const (
	MotionNone   Motion = "none"
	MotionWalk   Motion = "walk"
	MotionWave   Motion = "wave"
	MotionIdle   Motion = "idle"
	MotionBounce Motion = "bounce"
	MotionSpin   Motion = "spin"
	MotionPulse  Motion = "pulse"
)

// Weather names an overlay effect.
type Weather string

const (
	WeatherNone Weather = "none"
	WeatherRain Weather = "rain"
	WeatherSnow Weather = "snow"
)

// Layout names how the fallback generator arranges multiple new shapes.
type Layout string

const (
	LayoutRow    Layout = "row"
	LayoutColumn Layout = "column"
	LayoutGrid   Layout = "grid"
)

// Artboard is the editor canvas size.
type Artboard struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ElementRef describes an existing editor element supplied as context.
type ElementRef struct {
	ID       string              `json:"id"`
	Kind     actions.ElementKind `json:"kind"`
	X        float64             `json:"x"`
	Y        float64             `json:"y"`
	Width    float64             `json:"width,omitempty"`
	Height   float64             `json:"height,omitempty"`
	Props    actions.Props       `json:"props,omitempty"`
	ParentID string              `json:"parentId,omitempty"`
}

// Request is the inbound compile request: free text plus editor context.
type Request struct {
	Text     string       `json:"text" binding:"required"`
	Artboard Artboard     `json:"artboard"`
	Duration float64      `json:"duration,omitempty"`
	Selected *ElementRef  `json:"selected,omitempty"`
	Elements []ElementRef `json:"elements,omitempty"`
}

// Beats are the three named timing windows partitioning the animation:
// intro 0-25%, action 25-80%, settle 80-100% of the duration.
type Beats struct {
	IntroEnd  float64 `json:"introEnd"`
	ActionEnd float64 `json:"actionEnd"`
	SettleEnd float64 `json:"settleEnd"`
}

// Plan is the single resolved interpretation of one request. More than one
// wants-* intent may be true; every enabled generator runs.
type Plan struct {
	Archetype      Archetype
	WantsCreate    bool
	WantsScene     bool
	WantsCharacter bool
	WantsPath      bool
	WantsPhoto     bool
	PhotoTier2     bool
	Motion         Motion
	Style          string // "gradient", "neon", "pastel" or ""
	Layout         Layout
	CameraMotion   bool
	Weather        Weather
	Duration       float64
	Beats          Beats
	Palette        []string

	Features *features.FeatureSet
	Artboard Artboard
	Selected *ElementRef
	Elements []ElementRef
}
