package actions

import (
	"math"
	"testing"
)

func addRect(id string, props Props) Action {
	if props == nil {
		props = Props{}
	}
	props["id"] = id
	return Action{Kind: AddElement, ElementKind: ElementRect, Props: props}
}

func TestValidate_DropsUnknownKind(t *testing.T) {
	result := Validate([]Action{
		addRect("a", nil),
		{Kind: Kind("PAINT_EVERYTHING_GOLD")},
		addRect("b", nil),
	})

	if result.OK {
		t.Error("expected OK=false when an action is dropped")
	}
	if len(result.Actions) != 2 {
		t.Fatalf("expected 2 surviving actions, got %d", len(result.Actions))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Index != 1 || result.Errors[0].Tag != ErrUnknownKind {
		t.Errorf("unexpected error: %+v", result.Errors[0])
	}
}

func TestValidate_Idempotent(t *testing.T) {
	in := []Action{
		addRect("a", Props{"opacity": 0.5, "x": 10.0}),
		{Kind: AddKeyframe, TargetID: "a", Property: "opacity", Time: 1.5, Value: 0.9},
		{Kind: SetArtboardProps, Props: Props{"width": 640.0}},
	}

	first := Validate(in)
	if !first.OK {
		t.Fatalf("first pass not ok: %+v", first.Errors)
	}

	second := Validate(first.Actions)
	if !second.OK {
		t.Fatalf("second pass not ok: %+v", second.Errors)
	}
	if len(second.Actions) != len(first.Actions) {
		t.Fatalf("validation changed length: %d -> %d", len(first.Actions), len(second.Actions))
	}
	for i := range first.Actions {
		if first.Actions[i].Kind != second.Actions[i].Kind {
			t.Errorf("action %d changed kind", i)
		}
	}
}

func TestValidate_ClampsElementProps(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		key      string
		expected float64
	}{
		{"opacity above one", Props{"opacity": 1.8}, "opacity", 1},
		{"opacity below zero", Props{"opacity": -0.2}, "opacity", 0},
		{"scale floor", Props{"scale": 0.0001}, "scale", 0.01},
		{"negative stroke width", Props{"strokeWidth": -4.0}, "strokeWidth", 0},
		{"tiny font size", Props{"fontSize": 0.2}, "fontSize", 1},
		{"draw end percent", Props{"drawEndPercent": 3.0}, "drawEndPercent", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]Action{addRect("a", tt.props)})
			if !result.OK {
				t.Fatalf("expected ok, got errors %+v", result.Errors)
			}
			got, ok := result.Actions[0].Props[tt.key].(float64)
			if !ok || got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.key, tt.expected, result.Actions[0].Props[tt.key])
			}
		})
	}
}

func TestValidate_Keyframes(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		tag    string
	}{
		{
			name:   "valid keyframe",
			action: Action{Kind: AddKeyframe, TargetID: "a", Property: "x", Time: 0, Value: 10.0},
		},
		{
			name:   "missing target",
			action: Action{Kind: AddKeyframe, Property: "x", Time: 0, Value: 10.0},
			tag:    ErrMissingTarget,
		},
		{
			name:   "unknown property",
			action: Action{Kind: AddKeyframe, TargetID: "a", Property: "happiness", Time: 0, Value: 1.0},
			tag:    ErrUnknownProperty,
		},
		{
			name:   "negative time",
			action: Action{Kind: AddKeyframe, TargetID: "a", Property: "x", Time: -1, Value: 10.0},
			tag:    ErrBadTime,
		},
		{
			name:   "NaN time",
			action: Action{Kind: AddKeyframe, TargetID: "a", Property: "x", Time: math.NaN(), Value: 10.0},
			tag:    ErrBadTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]Action{tt.action})
			if tt.tag == "" {
				if !result.OK {
					t.Fatalf("expected ok, got %+v", result.Errors)
				}
				return
			}
			if result.OK || len(result.Errors) != 1 {
				t.Fatalf("expected single error %q, got %+v", tt.tag, result.Errors)
			}
			if result.Errors[0].Tag != tt.tag {
				t.Errorf("expected tag %q, got %q", tt.tag, result.Errors[0].Tag)
			}
		})
	}
}

func TestValidate_ClampsKeyframeValue(t *testing.T) {
	result := Validate([]Action{
		{Kind: AddKeyframe, TargetID: "a", Property: "opacity", Time: 2, Value: 5.0},
		{Kind: AddKeyframe, TargetID: "a", Property: "scale", Time: 2, Value: -1.0},
	})
	if !result.OK {
		t.Fatalf("expected ok, got %+v", result.Errors)
	}
	if v := result.Actions[0].Value.(float64); v != 1 {
		t.Errorf("expected opacity clamped to 1, got %v", v)
	}
	if v := result.Actions[1].Value.(float64); v != 0.01 {
		t.Errorf("expected scale clamped to 0.01, got %v", v)
	}
}

func TestValidate_PassThroughKinds(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		tag    string
	}{
		{
			name:   "reparent ok",
			action: Action{Kind: ReparentElement, TargetID: "a", Payload: Props{"parentId": "g"}},
		},
		{
			name:   "reparent missing parent",
			action: Action{Kind: ReparentElement, TargetID: "a", Payload: Props{}},
			tag:    ErrBadPayload,
		},
		{
			name:   "reorder by index",
			action: Action{Kind: ReorderElement, TargetID: "a", Payload: Props{"index": 2.0}},
		},
		{
			name:   "reorder by direction",
			action: Action{Kind: ReorderElement, TargetID: "a", Payload: Props{"direction": "front"}},
		},
		{
			name:   "reorder malformed",
			action: Action{Kind: ReorderElement, TargetID: "a", Payload: Props{"direction": "sideways"}},
			tag:    ErrBadPayload,
		},
		{
			name:   "set duration ok",
			action: Action{Kind: SetDuration, Payload: Props{"duration": 4.0}},
		},
		{
			name:   "set duration zero",
			action: Action{Kind: SetDuration, Payload: Props{"duration": 0.0}},
			tag:    ErrBadPayload,
		},
		{
			name:   "set current time ok",
			action: Action{Kind: SetCurrentTime, Payload: Props{"time": 0.0}},
		},
		{
			name:   "set playback speed ok",
			action: Action{Kind: SetPlaybackSpeed, Payload: Props{"speed": 1.5}},
		},
		{
			name:   "set playback speed negative",
			action: Action{Kind: SetPlaybackSpeed, Payload: Props{"speed": -1.0}},
			tag:    ErrBadPayload,
		},
		{
			name:   "set playback state ok",
			action: Action{Kind: SetPlaybackState, Payload: Props{"state": "playing"}},
		},
		{
			name:   "set playback state bogus",
			action: Action{Kind: SetPlaybackState, Payload: Props{"state": "rewinding"}},
			tag:    ErrBadPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]Action{tt.action})
			if tt.tag == "" {
				if !result.OK {
					t.Fatalf("expected ok, got %+v", result.Errors)
				}
				return
			}
			if result.OK {
				t.Fatal("expected rejection")
			}
			if result.Errors[0].Tag != tt.tag {
				t.Errorf("expected tag %q, got %q", tt.tag, result.Errors[0].Tag)
			}
		})
	}
}

func TestValidate_AddElementRequiresID(t *testing.T) {
	result := Validate([]Action{
		{Kind: AddElement, ElementKind: ElementCircle, Props: Props{"fill": "#ff0000"}},
	})
	if result.OK {
		t.Fatal("expected rejection")
	}
	if result.Errors[0].Tag != ErrMissingID {
		t.Errorf("expected %q, got %q", ErrMissingID, result.Errors[0].Tag)
	}
}

func TestValidate_UnknownElementKind(t *testing.T) {
	result := Validate([]Action{
		{Kind: AddElement, ElementKind: ElementKind("hologram"), Props: Props{"id": "a"}},
	})
	if result.OK {
		t.Fatal("expected rejection")
	}
	if result.Errors[0].Tag != ErrUnknownElementKind {
		t.Errorf("expected %q, got %q", ErrUnknownElementKind, result.Errors[0].Tag)
	}
}
