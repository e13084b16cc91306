package compose

import (
	"strings"
	"testing"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/features"
	"github.com/motifworks/motif-api/internal/generate"
	"github.com/motifworks/motif-api/internal/plan"
)

func planFor(t *testing.T, text string) *plan.Plan {
	t.Helper()
	req := plan.Request{Text: text, Artboard: plan.Artboard{Width: 800, Height: 600}}
	return plan.Build(req, features.Extract(text))
}

func TestMergeRenumbersAcrossGenerators(t *testing.T) {
	p := planFor(t, "a robot waves in a neon room")
	out := Merge(p, generate.BuildScene(p), generate.BuildCharacter(p))

	seen := map[string]bool{}
	for i, a := range out.Actions {
		if a.Kind != actions.AddElement {
			continue
		}
		id, _ := a.Props["id"].(string)
		if seen[id] {
			t.Fatalf("action %d: id %q allocated twice after merge", i, id)
		}
		seen[id] = true
	}
	if !seen["{{NEW_ID_1}}"] {
		t.Error("global sequence should restart at {{NEW_ID_1}}")
	}

	// Every keyframe and parent reference must resolve to a created id.
	for i, a := range out.Actions {
		switch a.Kind {
		case actions.AddKeyframe:
			if !seen[a.TargetID] {
				t.Errorf("action %d: dangling keyframe target %q", i, a.TargetID)
			}
		case actions.AddElement:
			if parent, ok := a.Props["parentId"].(string); ok && !seen[parent] {
				t.Errorf("action %d: dangling parent %q", i, parent)
			}
		}
	}
}

func TestMergeJoinsSummaries(t *testing.T) {
	out := Merge(planFor(t, "shapes"),
		generate.Result{Summary: "a sunset scene"},
		generate.Result{Summary: "a robot waving"},
	)
	if out.Summary != "a sunset scene a robot waving" {
		t.Errorf("summary = %q", out.Summary)
	}
}

func TestCameraTrackOnAnchor(t *testing.T) {
	p := planFor(t, "a sunset with the camera zooming in")
	if !p.CameraMotion {
		t.Fatal("camera flag not set")
	}
	scene := generate.BuildScene(p)
	out := Merge(p, scene)

	anchor := "{{NEW_ID_1}}" // scene root, renumbered first
	props := map[string]int{}
	var scaleEnd float64
	for _, a := range out.Actions {
		if a.Kind == actions.AddKeyframe && a.TargetID == anchor && a.Time >= p.Beats.IntroEnd {
			props[a.Property]++
			if a.Property == "scale" && a.Time == p.Beats.SettleEnd {
				scaleEnd = a.Value.(float64)
			}
		}
	}
	for _, prop := range []string{"x", "y", "scale"} {
		if props[prop] < 2 {
			t.Errorf("camera track has %d %s keyframes, want 2", props[prop], prop)
		}
	}
	if scaleEnd != 1.12 {
		t.Errorf("zoom scale = %v, want 1.12", scaleEnd)
	}
}

func TestCameraPanLeft(t *testing.T) {
	p := planFor(t, "a sunset, camera panning left")
	scene := generate.BuildScene(p)
	out := Merge(p, scene)

	var xs []float64
	for _, a := range out.Actions {
		if a.Kind == actions.AddKeyframe && a.TargetID == "{{NEW_ID_1}}" && a.Property == "x" {
			xs = append(xs, a.Value.(float64))
		}
	}
	if len(xs) < 2 {
		t.Fatal("no camera x track")
	}
	// Panning left moves the anchor right.
	last := xs[len(xs)-1]
	if last <= xs[len(xs)-2] {
		t.Errorf("pan left should increase anchor x, got %v -> %v", xs[len(xs)-2], last)
	}
}

func TestCameraOnSelectedElementKeepsPosition(t *testing.T) {
	text := "pan right"
	req := plan.Request{
		Text:     text,
		Artboard: plan.Artboard{Width: 800, Height: 600},
		Selected: &plan.ElementRef{ID: "circ-1", Kind: actions.ElementCircle, X: 400, Y: 300},
	}
	p := plan.Build(req, features.Extract(text))
	if !p.CameraMotion {
		t.Fatal("camera flag not set")
	}
	out := Merge(p, generate.BuildFallback(p))

	var x0, y0 float64
	found := false
	for _, a := range out.Actions {
		if a.Kind != actions.AddKeyframe || a.TargetID != "circ-1" || a.Time != p.Beats.IntroEnd {
			continue
		}
		switch a.Property {
		case "x":
			x0 = a.Value.(float64)
			found = true
		case "y":
			y0 = a.Value.(float64)
		}
	}
	if !found {
		t.Fatal("no camera track on the selected element")
	}
	// The track starts where the element already sits.
	if x0 != 400 || y0 != 300 {
		t.Errorf("camera origin = (%v, %v), want (400, 300)", x0, y0)
	}
}

func TestCameraSkippedWhenOriginUnknown(t *testing.T) {
	p := planFor(t, "a sunset, camera panning")
	out := Merge(p, generate.Result{Summary: "untracked", RootID: "ghost-9"})

	for _, a := range out.Actions {
		if a.Kind == actions.AddKeyframe && a.TargetID == "ghost-9" {
			t.Fatalf("camera keyed an element with no known position: %+v", a)
		}
	}
}

func TestWeatherRain(t *testing.T) {
	p := planFor(t, "a rainy city")
	if p.Weather != plan.WeatherRain {
		t.Fatalf("weather = %s", p.Weather)
	}
	out := Merge(p, generate.BuildScene(p))

	var groupID string
	drops := 0
	for _, a := range out.Actions {
		if a.Kind != actions.AddElement {
			continue
		}
		if name, _ := a.Props["name"].(string); name == "rain" {
			groupID, _ = a.Props["id"].(string)
		}
		if a.ElementKind == actions.ElementRect && a.Props["parentId"] == groupID && groupID != "" {
			drops++
		}
	}
	if groupID == "" {
		t.Fatal("no rain group created")
	}
	if drops != 14 {
		t.Errorf("got %d raindrops, want 14", drops)
	}
}

func TestWeatherSnowSways(t *testing.T) {
	p := planFor(t, "snow over the mountains")
	out := Merge(p, generate.BuildScene(p))

	flakes := map[string]bool{}
	for _, a := range out.Actions {
		if a.Kind == actions.AddElement && a.ElementKind == actions.ElementCircle {
			if name, _ := a.Props["name"].(string); name == "" {
				if id, ok := a.Props["id"].(string); ok {
					flakes[id] = true
				}
			}
		}
	}
	if len(flakes) != 16 {
		t.Fatalf("got %d snowflakes, want 16", len(flakes))
	}
	swayed := map[string]bool{}
	for _, a := range out.Actions {
		if a.Kind == actions.AddKeyframe && flakes[a.TargetID] && a.Property == "x" {
			swayed[a.TargetID] = true
		}
	}
	if len(swayed) != len(flakes) {
		t.Errorf("%d of %d flakes sway", len(swayed), len(flakes))
	}
}

func TestMergeKeepsPreExistingIDs(t *testing.T) {
	res := generate.Result{
		Summary: "animated the selection",
		Actions: []actions.Action{{
			Kind:     actions.AddKeyframe,
			TargetID: "el-42",
			Property: "rotation",
			Time:     1,
			Value:    360.0,
			Easing:   "linear",
		}},
		RootID: "el-42",
	}
	out := Merge(planFor(t, "spin it"), res)
	if out.Actions[0].TargetID != "el-42" {
		t.Errorf("pre-existing id rewritten to %q", out.Actions[0].TargetID)
	}
	if !strings.Contains(out.Summary, "selection") {
		t.Errorf("summary = %q", out.Summary)
	}
}
