// Package compose merges generator outputs into one action sequence,
// renumbers placeholder ids so they never collide, and layers camera
// motion and weather on top.
package compose

import (
	"strings"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/generate"
	"github.com/motifworks/motif-api/internal/plan"
)

// Output is the composed result handed to validation.
type Output struct {
	Summary string
	Actions []actions.Action
}

// Merge concatenates results in the order given (callers pass scene, then
// character, then path), rewrites every placeholder id into one global
// sequence, and appends camera and weather tracks anchored on the first
// result's root.
func Merge(p *plan.Plan, results ...generate.Result) Output {
	ids := generate.NewIDAllocator()
	var out Output
	var summaries []string
	anchor := ""

	for _, res := range results {
		if len(res.Actions) == 0 && res.Summary == "" {
			continue
		}
		remap := renumber(res.Actions, ids)
		out.Actions = append(out.Actions, res.Actions...)
		if res.Summary != "" {
			summaries = append(summaries, res.Summary)
		}
		if anchor == "" && res.RootID != "" {
			anchor = remapped(res.RootID, remap)
		}
	}
	out.Summary = strings.Join(summaries, " ")

	if p.CameraMotion && anchor != "" {
		if x0, y0, ok := anchorOrigin(p, out.Actions, anchor); ok {
			out.Actions = append(out.Actions, cameraTrack(p, anchor, x0, y0)...)
		}
	}
	if p.Weather != plan.WeatherNone {
		out.Actions = append(out.Actions, weatherOverlay(p, anchor, ids)...)
	}
	return out
}

func isPlaceholder(id string) bool {
	return strings.HasPrefix(id, "{{NEW_ID_")
}

func remapped(id string, remap map[string]string) string {
	if to, ok := remap[id]; ok {
		return to
	}
	return id
}

// renumber rewrites one generator's local placeholder sequence into the
// global one, in place. Pre-existing editor ids pass through untouched.
func renumber(acts []actions.Action, ids *generate.IDAllocator) map[string]string {
	remap := map[string]string{}
	for i := range acts {
		a := &acts[i]
		if a.Kind == actions.AddElement {
			if old, ok := a.Props["id"].(string); ok && isPlaceholder(old) {
				remap[old] = ids.Next()
				a.Props["id"] = remap[old]
			}
		}
		if a.TargetID != "" {
			a.TargetID = remapped(a.TargetID, remap)
		}
		if a.Props != nil {
			if parent, ok := a.Props["parentId"].(string); ok {
				a.Props["parentId"] = remapped(parent, remap)
			}
			if crop, ok := a.Props["cropOf"].(string); ok {
				a.Props["cropOf"] = remapped(crop, remap)
			}
		}
	}
	return remap
}

// anchorOrigin reads the anchor's starting position so camera motion
// offsets rather than teleports it: from the creation action when this
// request made the anchor, from the editor context when the anchor is the
// selected element. With neither, camera motion is skipped.
func anchorOrigin(p *plan.Plan, acts []actions.Action, anchor string) (x, y float64, ok bool) {
	for _, a := range acts {
		if a.Kind != actions.AddElement {
			continue
		}
		if id, _ := a.Props["id"].(string); id == anchor {
			if v, ok := a.Props["x"].(float64); ok {
				x = v
			}
			if v, ok := a.Props["y"].(float64); ok {
				y = v
			}
			return x, y, true
		}
	}
	if p.Selected != nil && p.Selected.ID == anchor {
		return p.Selected.X, p.Selected.Y, true
	}
	return 0, 0, false
}

// cameraTrack pushes the anchor through a pan and zoom between the intro
// and settle beats: six keyframes covering x, y and scale.
func cameraTrack(p *plan.Plan, anchor string, x0, y0 float64) []actions.Action {
	fs := p.Features
	dx := p.Artboard.Width * 0.06
	dy := p.Artboard.Height * 0.04
	if fs.Has("left") && !fs.Has("right") {
		dx = -dx
	}
	if fs.Has("up") && !fs.Has("down") {
		dy = -dy
	}
	zoom := 1.05
	if fs.Has("zoom") {
		zoom = 1.12
	}

	start, end := p.Beats.IntroEnd, p.Beats.SettleEnd
	key := func(prop string, t float64, v float64) actions.Action {
		return actions.Action{
			Kind:     actions.AddKeyframe,
			TargetID: anchor,
			Property: prop,
			Time:     t,
			Value:    v,
			Easing:   generate.EaseInOut,
		}
	}
	return []actions.Action{
		key("x", start, x0),
		key("x", end, x0-dx),
		key("y", start, y0),
		key("y", end, y0-dy),
		key("scale", start, 1.0),
		key("scale", end, zoom),
	}
}

const (
	rainParticles = 14
	snowParticles = 16
)

// Fixed fractional offsets spread particles across the width without any
// per-request randomness.
var particleSpread = []float64{
	0.07, 0.61, 0.33, 0.88, 0.19, 0.74, 0.45, 0.96,
	0.12, 0.53, 0.27, 0.81, 0.39, 0.68, 0.02, 0.92,
}

// weatherOverlay builds a particle group above the composition. Rain falls
// straight in thin streaks; snow drifts down with a horizontal sway.
func weatherOverlay(p *plan.Plan, anchor string, ids *generate.IDAllocator) []actions.Action {
	w, h, d := p.Artboard.Width, p.Artboard.Height, p.Duration
	snow := p.Weather == plan.WeatherSnow

	groupProps := actions.Props{"name": string(p.Weather), "x": 0.0, "y": 0.0}
	if anchor != "" {
		groupProps["parentId"] = anchor
	}
	groupID := ids.Next()
	groupProps["id"] = groupID
	acts := []actions.Action{{
		Kind:        actions.AddElement,
		ElementKind: actions.ElementGroup,
		Props:       groupProps,
	}}

	count := rainParticles
	if snow {
		count = snowParticles
	}
	for i := 0; i < count; i++ {
		x := w * particleSpread[i%len(particleSpread)]
		y0 := -h * 0.05 * float64(1+i%4)
		phase := d * particleSpread[(i+5)%len(particleSpread)] * 0.3

		id := ids.Next()
		props := actions.Props{
			"id":       id,
			"parentId": groupID,
			"x":        x,
			"y":        y0,
		}
		var kind actions.ElementKind
		if snow {
			kind = actions.ElementCircle
			props["radius"] = 2.0 + float64(i%3)
			props["fill"] = "#ffffff"
			props["opacity"] = 0.85
		} else {
			kind = actions.ElementRect
			props["width"] = 2.0
			props["height"] = 12.0
			props["fill"] = "#9bbcf2"
			props["opacity"] = 0.7
		}
		acts = append(acts, actions.Action{Kind: actions.AddElement, ElementKind: kind, Props: props})

		fall := func(t, v float64) actions.Action {
			return actions.Action{
				Kind:     actions.AddKeyframe,
				TargetID: id,
				Property: "y",
				Time:     t,
				Value:    v,
				Easing:   generate.EaseLinear,
			}
		}
		acts = append(acts, fall(phase, y0), fall(d, h*1.05))

		if snow {
			sway := w * 0.02
			acts = append(acts,
				actions.Action{Kind: actions.AddKeyframe, TargetID: id, Property: "x", Time: 0, Value: x, Easing: generate.EaseInOut},
				actions.Action{Kind: actions.AddKeyframe, TargetID: id, Property: "x", Time: d / 2, Value: x + sway, Easing: generate.EaseInOut},
				actions.Action{Kind: actions.AddKeyframe, TargetID: id, Property: "x", Time: d, Value: x, Easing: generate.EaseInOut},
			)
		}
	}
	return acts
}
