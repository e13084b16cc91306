package compiler

import (
	"testing"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

func compileText(text string) Response {
	return Compile(plan.Request{
		Text:     text,
		Artboard: plan.Artboard{Width: 800, Height: 600},
	})
}

func TestRobotInNeonRoom(t *testing.T) {
	resp := compileText("a robot waves in a neon room")
	if resp.Summary == "" {
		t.Error("empty summary")
	}
	if len(resp.Actions) == 0 {
		t.Fatal("no actions")
	}

	groups, scenery := 0, false
	for _, a := range resp.Actions {
		if a.Kind != actions.AddElement {
			continue
		}
		if a.ElementKind == actions.ElementGroup {
			groups++
		}
		if name, _ := a.Props["name"].(string); name == "sky" {
			scenery = true
		}
	}
	if groups < 2 {
		t.Errorf("got %d groups, want the scene root and the rig", groups)
	}
	if !scenery {
		t.Error("no scene background element")
	}
}

func TestBlueCircleFallback(t *testing.T) {
	resp := compileText("draw a blue circle")
	adds, keyframes := 0, 0
	var circle actions.Action
	for _, a := range resp.Actions {
		switch a.Kind {
		case actions.AddElement:
			adds++
			circle = a
		case actions.AddKeyframe:
			keyframes++
		}
	}
	if adds != 1 {
		t.Fatalf("got %d ADD_ELEMENT actions, want 1", adds)
	}
	if circle.ElementKind != actions.ElementCircle {
		t.Errorf("kind = %s, want circle", circle.ElementKind)
	}
	if circle.Props["fill"] != "#3498db" {
		t.Errorf("fill = %v, want the blue hex", circle.Props["fill"])
	}
	if keyframes != 0 {
		t.Errorf("got %d keyframes, want none", keyframes)
	}
}

func TestPhotoShortCircuits(t *testing.T) {
	sel := &plan.ElementRef{ID: "img-9", Kind: actions.ElementImage, Width: 640, Height: 480}
	resp := Compile(plan.Request{
		Text:     "ken burns this photo of a sunset",
		Artboard: plan.Artboard{Width: 800, Height: 600},
		Selected: sel,
		Elements: []plan.ElementRef{*sel},
	})
	// Photo intent wins even though "sunset" would otherwise fire a scene.
	for _, a := range resp.Actions {
		if a.Kind == actions.AddElement {
			t.Fatalf("photo tier 1 should not create elements, got %+v", a)
		}
	}
	scaled := false
	for _, a := range resp.Actions {
		if a.Kind == actions.AddKeyframe && a.TargetID == "img-9" && a.Property == "scale" {
			scaled = true
		}
	}
	if !scaled {
		t.Error("no ken burns scale track on the photo")
	}
}

func TestPhotoTierSelection(t *testing.T) {
	sel := &plan.ElementRef{ID: "img-1", Kind: actions.ElementImage, Width: 640, Height: 480}
	req := plan.Request{
		Text:     "give this image a ken burns treatment",
		Artboard: plan.Artboard{Width: 800, Height: 600},
		Selected: sel,
	}
	tier1 := Compile(req)
	for _, a := range tier1.Actions {
		if a.Kind == actions.AddElement && a.ElementKind == actions.ElementRect {
			t.Error("tier 1 emitted a bounding box")
		}
	}

	req.Text = "give this image a ken burns treatment with a bounding box"
	tier2 := Compile(req)
	boxed := false
	for _, a := range tier2.Actions {
		if a.Kind == actions.AddElement && a.ElementKind == actions.ElementRect && a.Props["stroke"] != nil {
			boxed = true
		}
	}
	if !boxed {
		t.Error("tier 2 emitted no bounding box rect")
	}
}

func TestValidatedOutputInvariants(t *testing.T) {
	texts := []string{
		"a sunset over the ocean",
		"a robot walks through a snowy forest",
		"a spiral that draws itself",
		"make 7 squares in a grid",
		"a cat bounces in a meadow, camera zooming",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			resp := compileText(text)
			if len(resp.Actions) == 0 {
				t.Fatal("no actions")
			}
			ids := map[string]bool{}
			for i, a := range resp.Actions {
				switch a.Kind {
				case actions.AddElement:
					id, _ := a.Props["id"].(string)
					if ids[id] {
						t.Fatalf("action %d: duplicate id %q", i, id)
					}
					ids[id] = true
					if op, ok := a.Props["opacity"].(float64); ok && (op < 0 || op > 1) {
						t.Errorf("action %d: opacity %v out of range", i, op)
					}
				case actions.AddKeyframe:
					if a.Time < 0 {
						t.Errorf("action %d: negative keyframe time", i)
					}
					if !ids[a.TargetID] {
						t.Errorf("action %d: keyframe targets unknown id %q", i, a.TargetID)
					}
				}
			}
		})
	}
}

func TestSafeFallbackRecovery(t *testing.T) {
	// Direct exercise of the recovery path: all generated actions invalid.
	resp := recoverWithScene(&plan.Plan{
		Archetype: plan.ArchetypeNone,
		Duration:  4,
		Palette:   []string{"#3498db"},
		Artboard:  plan.Artboard{Width: 800, Height: 600},
	})
	if len(resp.Actions) == 0 {
		t.Fatal("safe fallback produced nothing")
	}
	if resp.Summary == "" {
		t.Error("safe fallback has no summary")
	}
	result := actions.Validate(resp.Actions)
	if !result.OK {
		t.Errorf("fallback scene is not fully valid: %v", result.Errors)
	}
}

func TestCompileIsTotalOnEmptyText(t *testing.T) {
	resp := Compile(plan.Request{Text: "", Artboard: plan.Artboard{Width: 800, Height: 600}})
	if resp.Actions == nil {
		t.Error("actions must be an empty list, never nil")
	}
}
