// Package compiler is the top-level entry point: free text in, validated
// scene-mutation actions out. It sequences feature extraction, planning,
// generation, composition and validation, and recovers from total
// generation failure with a known-good scene.
package compiler

import (
	"log"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/compose"
	"github.com/motifworks/motif-api/internal/features"
	"github.com/motifworks/motif-api/internal/generate"
	"github.com/motifworks/motif-api/internal/plan"
)

// Response is the outbound contract consumed by the editor's state-apply
// layer. New element ids are {{NEW_ID_n}} placeholders the editor remaps.
type Response struct {
	Summary string           `json:"summary"`
	Actions []actions.Action `json:"actions"`

	// Archetype is surfaced for metrics only, never serialized.
	Archetype plan.Archetype `json:"-"`
}

const failureSummary = "I couldn't turn that into anything drawable, sorry."

// Compile runs the whole pipeline for one request. It is total: any input
// yields a Response, never an error.
func Compile(req plan.Request) Response {
	fs := features.Extract(req.Text)
	p := plan.Build(req, fs)

	out := runGenerators(p)
	result := actions.Validate(out.Actions)
	if !result.OK {
		log.Printf("⚠️ validation dropped %d action(s): %v", len(out.Actions)-len(result.Actions), result.Errors)
	}

	// A generator may legitimately emit nothing (a no-op update); that is
	// not a failure. Producing actions and losing them all to validation is.
	if len(result.Actions) == 0 && len(out.Actions) > 0 {
		return recoverWithScene(p)
	}

	return Response{Summary: out.Summary, Actions: result.Actions, Archetype: p.Archetype}
}

// runGenerators fires every generator the plan enabled. Photo intent is
// exclusive and skips composition entirely, including camera and weather.
func runGenerators(p *plan.Plan) compose.Output {
	if p.WantsPhoto {
		res := generate.BuildPhoto(p)
		return compose.Output{Summary: res.Summary, Actions: res.Actions}
	}

	var results []generate.Result
	if p.WantsScene {
		results = append(results, generate.BuildScene(p))
	}
	if p.WantsCharacter {
		results = append(results, generate.BuildCharacter(p))
	}
	if p.WantsPath {
		results = append(results, generate.BuildPathShape(p))
	}
	if len(results) == 0 {
		results = append(results, generate.BuildFallback(p))
	}
	return compose.Merge(p, results...)
}

// recoverWithScene substitutes the generic scene template when nothing
// usable survived validation. The template is fixed and known-good, so the
// second validation pass should always succeed; if it somehow does not,
// the response degrades to an empty action list rather than an error.
func recoverWithScene(p *plan.Plan) Response {
	fallback := *p
	fallback.Archetype = plan.ArchetypeGeneric
	fallback.Palette = plan.DefaultPalette(plan.ArchetypeGeneric)

	res := generate.BuildScene(&fallback)
	result := actions.Validate(res.Actions)
	if len(result.Actions) == 0 {
		log.Printf("⚠️ safe-fallback scene failed validation: %v", result.Errors)
		return Response{Summary: failureSummary, Actions: []actions.Action{}, Archetype: fallback.Archetype}
	}
	log.Printf("✅ recovered with the generic scene fallback")
	return Response{Summary: res.Summary, Actions: result.Actions, Archetype: fallback.Archetype}
}
