package actions

import "math"

// Error tags recorded per rejected action index.
const (
	ErrUnknownKind        = "unknown_kind"
	ErrUnknownElementKind = "unknown_element_kind"
	ErrMissingID          = "missing_id"
	ErrMissingTarget      = "missing_target"
	ErrMissingProps       = "missing_props"
	ErrUnknownProperty    = "unknown_property"
	ErrBadTime            = "bad_time"
	ErrBadPayload         = "bad_payload"
)

// IndexedError ties an error tag to the index of the offending action in the
// input sequence.
type IndexedError struct {
	Index int    `json:"index"`
	Tag   string `json:"tag"`
}

// ValidationResult reports the sanitized sequence. OK is true only if no
// action was dropped.
type ValidationResult struct {
	OK      bool           `json:"ok"`
	Actions []Action       `json:"actions"`
	Errors  []IndexedError `json:"errors,omitempty"`
}

// Validate sanitizes an action sequence. Structurally invalid actions are
// dropped and tagged; out-of-range numeric fields are clamped in place.
// Rejection is local: one bad action never aborts validation of the rest.
func Validate(in []Action) ValidationResult {
	result := ValidationResult{
		OK:      true,
		Actions: make([]Action, 0, len(in)),
	}

	for i, a := range in {
		if tag := validateOne(&a); tag != "" {
			result.OK = false
			result.Errors = append(result.Errors, IndexedError{Index: i, Tag: tag})
			continue
		}
		result.Actions = append(result.Actions, a)
	}

	return result
}

// validateOne checks one action, clamping numeric fields in place. Returns
// an error tag, or "" if the action is acceptable.
func validateOne(a *Action) string {
	if !knownKinds[a.Kind] {
		return ErrUnknownKind
	}

	switch a.Kind {
	case AddElement:
		if !knownElementKinds[a.ElementKind] {
			return ErrUnknownElementKind
		}
		id, ok := a.Props["id"].(string)
		if !ok || id == "" {
			return ErrMissingID
		}
		clampProps(a.Props)
		return ""

	case UpdateElementProps:
		if a.TargetID == "" {
			return ErrMissingTarget
		}
		if len(a.Props) == 0 {
			return ErrMissingProps
		}
		clampProps(a.Props)
		return ""

	case SetArtboardProps:
		if len(a.Props) == 0 {
			return ErrMissingProps
		}
		clampProps(a.Props)
		return ""

	case AddKeyframe:
		if a.TargetID == "" {
			return ErrMissingTarget
		}
		if !IsAnimatable(a.Property) {
			return ErrUnknownProperty
		}
		if math.IsNaN(a.Time) || math.IsInf(a.Time, 0) || a.Time < 0 {
			return ErrBadTime
		}
		if v, ok := toFloat(a.Value); ok {
			a.Value = clampProp(a.Property, v)
		}
		return ""

	case ReparentElement:
		if a.TargetID == "" {
			return ErrMissingTarget
		}
		if s, ok := a.Payload["parentId"].(string); !ok || s == "" {
			return ErrBadPayload
		}
		return ""

	case ReorderElement:
		if a.TargetID == "" {
			return ErrMissingTarget
		}
		_, hasIndex := toFloat(a.Payload["index"])
		dir, _ := a.Payload["direction"].(string)
		if !hasIndex && dir != "forward" && dir != "backward" && dir != "front" && dir != "back" {
			return ErrBadPayload
		}
		return ""

	case SetDuration:
		v, ok := toFloat(a.Payload["duration"])
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrBadPayload
		}
		return ""

	case SetCurrentTime:
		v, ok := toFloat(a.Payload["time"])
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrBadPayload
		}
		return ""

	case SetPlaybackSpeed:
		v, ok := toFloat(a.Payload["speed"])
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrBadPayload
		}
		return ""

	case SetPlaybackState:
		s, _ := a.Payload["state"].(string)
		if s != "playing" && s != "paused" {
			return ErrBadPayload
		}
		return ""
	}

	return ErrUnknownKind
}

// clampProps applies property-specific numeric clamps to a property map.
func clampProps(props Props) {
	for key, raw := range props {
		v, ok := toFloat(raw)
		if !ok {
			continue
		}
		clamped := clampProp(key, v)
		if clamped != v {
			props[key] = clamped
		}
	}
}

// clampProp clamps a single numeric property value to its legal range.
func clampProp(key string, v float64) float64 {
	switch key {
	case "opacity", "drawStartPercent", "drawEndPercent", "motionPathPercent":
		return clamp(v, 0, 1)
	case "scale":
		if v < 0.01 {
			return 0.01
		}
	case "strokeWidth":
		if v < 0 {
			return 0
		}
	case "fontSize":
		if v < 1 {
			return 1
		}
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toFloat normalizes the numeric types that survive JSON decoding and the
// compiler's own literals.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
