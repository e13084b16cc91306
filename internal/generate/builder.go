// Package generate holds the template builders that turn a resolved Plan
// into concrete action sequences: scene archetypes, the character rig with
// its motion presets, procedural path shapes, photo animation and the
// direct-manipulation fallback.
package generate

import (
	"fmt"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

// Easing tags attached to generated keyframes.
const (
	EaseLinear = "linear"
	EaseInOut  = "ease-in-out"
	EaseOut    = "ease-out"
	EaseIn     = "ease-in"
)

// Result is one generator's output. RootID, when set, anchors camera motion
// and weather overlays during composition.
type Result struct {
	Summary string
	Actions []actions.Action
	RootID  string
}

// IDAllocator hands out placeholder ids, strictly increasing from 1. Each
// generator owns its own allocator; the composer renumbers at merge time so
// ids never collide across generators. The counter is an explicit value, not
// captured state, so concurrent compiles cannot interfere.
type IDAllocator struct {
	next int
}

// NewIDAllocator starts a fresh sequence at 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next placeholder id token.
func (a *IDAllocator) Next() string {
	id := fmt.Sprintf("{{NEW_ID_%d}}", a.next)
	a.next++
	return id
}

// builder accumulates one generator's action sequence.
type builder struct {
	ids  *IDAllocator
	acts []actions.Action
}

func newBuilder() *builder {
	return &builder{ids: NewIDAllocator()}
}

// add emits an ADD_ELEMENT and returns the allocated placeholder id.
func (b *builder) add(kind actions.ElementKind, props actions.Props) string {
	if props == nil {
		props = actions.Props{}
	}
	id := b.ids.Next()
	props["id"] = id
	b.acts = append(b.acts, actions.Action{
		Kind:        actions.AddElement,
		ElementKind: kind,
		Props:       props,
	})
	return id
}

// key emits an ADD_KEYFRAME.
func (b *builder) key(target, property string, t float64, value any, easing string) {
	b.acts = append(b.acts, actions.Action{
		Kind:     actions.AddKeyframe,
		TargetID: target,
		Property: property,
		Time:     t,
		Value:    value,
		Easing:   easing,
	})
}

// update emits an UPDATE_ELEMENT_PROPS.
func (b *builder) update(target string, props actions.Props) {
	b.acts = append(b.acts, actions.Action{
		Kind:     actions.UpdateElementProps,
		TargetID: target,
		Props:    props,
	})
}

// paletteColor cycles through the plan's palette.
func paletteColor(p *plan.Plan, i int) string {
	return p.Palette[i%len(p.Palette)]
}

// linearGradient builds a two-stop gradient fill value.
func linearGradient(from, to string, angle float64) map[string]any {
	return map[string]any{
		"type":  "linear",
		"angle": angle,
		"stops": []map[string]any{
			{"offset": 0.0, "color": from},
			{"offset": 1.0, "color": to},
		},
	}
}

// fill picks a flat color or a gradient depending on the plan's style tag.
func fill(p *plan.Plan, flat, gradientTo string, angle float64) any {
	if p.Style != "" {
		return linearGradient(flat, gradientTo, angle)
	}
	return flat
}
