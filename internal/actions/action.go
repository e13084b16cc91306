// Package actions defines the scene-mutation command model shared by the
// compiler, the validator and the HTTP layer. An Action is a tagged variant
// over a closed set of kinds; the editor's state layer applies them in order.
package actions

// Kind discriminates the action variants.
type Kind string

const (
	AddElement         Kind = "ADD_ELEMENT"
	UpdateElementProps Kind = "UPDATE_ELEMENT_PROPS"
	SetArtboardProps   Kind = "SET_ARTBOARD_PROPS"
	AddKeyframe        Kind = "ADD_KEYFRAME"

	// Pass-through kinds: the compiler's generators never emit these, but
	// editor UI code routes through the same validation gate, so the
	// validator must recognize and sanitize them.
	ReparentElement  Kind = "REPARENT_ELEMENT"
	ReorderElement   Kind = "REORDER_ELEMENT"
	SetDuration      Kind = "SET_DURATION"
	SetCurrentTime   Kind = "SET_CURRENT_TIME"
	SetPlaybackSpeed Kind = "SET_PLAYBACK_SPEED"
	SetPlaybackState Kind = "SET_PLAYBACK_STATE"
)

// ElementKind enumerates the element types ADD_ELEMENT can create.
type ElementKind string

const (
	ElementRect   ElementKind = "rect"
	ElementCircle ElementKind = "circle"
	ElementPath   ElementKind = "path"
	ElementText   ElementKind = "text"
	ElementGroup  ElementKind = "group"
	ElementImage  ElementKind = "image"
)

// Props is a partial property mapping for an element or the artboard.
type Props map[string]any

// Action is the wire representation of one scene mutation. Which fields are
// meaningful depends on Kind:
//
//	ADD_ELEMENT           ElementKind + Props (Props must carry "id")
//	UPDATE_ELEMENT_PROPS  TargetID + Props
//	SET_ARTBOARD_PROPS    Props
//	ADD_KEYFRAME          TargetID + Property + Time + Value (+ Easing)
//	pass-through kinds    TargetID and/or Payload
type Action struct {
	Kind        Kind        `json:"kind"`
	ElementKind ElementKind `json:"elementKind,omitempty"`
	Props       Props       `json:"props,omitempty"`
	TargetID    string      `json:"targetId,omitempty"`
	Property    string      `json:"property,omitempty"`
	Time        float64     `json:"time,omitempty"`
	Value       any         `json:"value,omitempty"`
	Easing      string      `json:"easing,omitempty"`
	Payload     Props       `json:"payload,omitempty"`
}

// knownKinds is the validator's whitelist.
var knownKinds = map[Kind]bool{
	AddElement:         true,
	UpdateElementProps: true,
	SetArtboardProps:   true,
	AddKeyframe:        true,
	ReparentElement:    true,
	ReorderElement:     true,
	SetDuration:        true,
	SetCurrentTime:     true,
	SetPlaybackSpeed:   true,
	SetPlaybackState:   true,
}

var knownElementKinds = map[ElementKind]bool{
	ElementRect:   true,
	ElementCircle: true,
	ElementPath:   true,
	ElementText:   true,
	ElementGroup:  true,
	ElementImage:  true,
}

// animatableProps is the whitelist of keyframe property names.
var animatableProps = map[string]bool{
	"x":                 true,
	"y":                 true,
	"width":             true,
	"height":            true,
	"radius":            true,
	"scale":             true,
	"rotation":          true,
	"opacity":           true,
	"fill":              true,
	"stroke":            true,
	"strokeWidth":       true,
	"fontSize":          true,
	"drawStartPercent":  true,
	"drawEndPercent":    true,
	"motionPathPercent": true,
}

// IsAnimatable reports whether property is a recognized keyframe property.
func IsAnimatable(property string) bool {
	return animatableProps[property]
}
