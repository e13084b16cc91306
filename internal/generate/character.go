package generate

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

// rig names the parts a motion preset can key. Variants that lack a part
// leave its id empty and the preset skips it.
type rig struct {
	root     string
	head     string
	torso    string
	leftArm  string
	rightArm string
	leftLeg  string
	rightLeg string
}

// BuildCharacter assembles a stick-figure, robot or blob rig and applies
// the plan's motion preset across its beats.
func BuildCharacter(p *plan.Plan) Result {
	b := newBuilder()

	variant := "figure"
	switch {
	case p.Features.Has("robot"):
		variant = "robot"
	case p.Features.Has("animal"):
		variant = "blob"
	}

	cx := p.Artboard.Width * 0.5
	baseY := p.Artboard.Height * 0.75

	var r rig
	switch variant {
	case "robot":
		r = buildRobotRig(b, p, cx, baseY)
	case "blob":
		r = buildBlobRig(b, p, cx, baseY)
	default:
		r = buildFigureRig(b, p, cx, baseY)
	}

	summary := "a " + variant
	switch p.Motion {
	case plan.MotionWalk:
		applyWalk(b, p, r, baseY)
		summary += " walking across the canvas"
	case plan.MotionWave:
		applyWave(b, p, r)
		summary += " waving"
	case plan.MotionBounce:
		applyBounce(b, p, r, baseY)
		summary += " bouncing"
	case plan.MotionSpin:
		applySpin(b, p, r)
		summary += " spinning"
	case plan.MotionPulse:
		applyPulse(b, p, r)
		summary += " pulsing"
	default:
		applyIdle(b, p, r)
	}

	return Result{Summary: summary, Actions: b.acts, RootID: r.root}
}

func buildFigureRig(b *builder, p *plan.Plan, cx, baseY float64) rig {
	h := p.Artboard.Height * 0.3
	unit := h / 6
	skin := paletteColor(p, 0)

	var r rig
	r.root = b.add(actions.ElementGroup, actions.Props{
		"name": "figure",
		"x":    cx,
		"y":    baseY - h,
	})
	part := func(kind actions.ElementKind, name string, props actions.Props) string {
		props["name"] = name
		props["parentId"] = r.root
		return b.add(kind, props)
	}
	r.head = part(actions.ElementCircle, "head", actions.Props{
		"x": 0.0, "y": unit, "radius": unit, "fill": skin,
	})
	r.torso = part(actions.ElementRect, "torso", actions.Props{
		"x": -unit * 0.5, "y": unit * 2, "width": unit, "height": unit * 2.2, "fill": skin,
	})
	r.leftArm = part(actions.ElementRect, "left-arm", actions.Props{
		"x": -unit * 1.4, "y": unit * 2.2, "width": unit * 0.9, "height": unit * 0.35, "fill": skin,
	})
	r.rightArm = part(actions.ElementRect, "right-arm", actions.Props{
		"x": unit * 0.5, "y": unit * 2.2, "width": unit * 0.9, "height": unit * 0.35, "fill": skin,
	})
	r.leftLeg = part(actions.ElementRect, "left-leg", actions.Props{
		"x": -unit * 0.5, "y": unit * 4.2, "width": unit * 0.4, "height": unit * 1.8, "fill": skin,
	})
	r.rightLeg = part(actions.ElementRect, "right-leg", actions.Props{
		"x": unit * 0.1, "y": unit * 4.2, "width": unit * 0.4, "height": unit * 1.8, "fill": skin,
	})
	return r
}

func buildRobotRig(b *builder, p *plan.Plan, cx, baseY float64) rig {
	h := p.Artboard.Height * 0.3
	unit := h / 6
	body := "#8395a7"
	accent := paletteColor(p, 0)

	var r rig
	r.root = b.add(actions.ElementGroup, actions.Props{
		"name": "robot",
		"x":    cx,
		"y":    baseY - h,
	})
	part := func(kind actions.ElementKind, name string, props actions.Props) string {
		props["name"] = name
		props["parentId"] = r.root
		return b.add(kind, props)
	}
	// Antenna with a glowing tip.
	part(actions.ElementRect, "antenna", actions.Props{
		"x": -1.5, "y": -unit * 0.8, "width": 3.0, "height": unit * 0.8, "fill": body,
	})
	tip := part(actions.ElementCircle, "antenna-tip", actions.Props{
		"x": 0.0, "y": -unit * 0.9, "radius": unit * 0.2, "fill": accent,
	})
	d := p.Duration
	b.key(tip, "opacity", 0, 1.0, EaseInOut)
	b.key(tip, "opacity", d/2, 0.3, EaseInOut)
	b.key(tip, "opacity", d, 1.0, EaseInOut)

	r.head = part(actions.ElementRect, "head", actions.Props{
		"x": -unit, "y": 0.0, "width": unit * 2, "height": unit * 1.6, "fill": body,
	})
	part(actions.ElementCircle, "eye-left", actions.Props{
		"x": -unit * 0.4, "y": unit * 0.7, "radius": unit * 0.18, "fill": accent,
	})
	part(actions.ElementCircle, "eye-right", actions.Props{
		"x": unit * 0.4, "y": unit * 0.7, "radius": unit * 0.18, "fill": accent,
	})
	r.torso = part(actions.ElementRect, "torso", actions.Props{
		"x": -unit * 1.1, "y": unit * 1.8, "width": unit * 2.2, "height": unit * 2.4, "fill": body,
	})
	r.leftArm = part(actions.ElementRect, "left-arm", actions.Props{
		"x": -unit * 1.9, "y": unit * 2, "width": unit * 0.7, "height": unit * 0.4, "fill": body,
	})
	r.rightArm = part(actions.ElementRect, "right-arm", actions.Props{
		"x": unit * 1.2, "y": unit * 2, "width": unit * 0.7, "height": unit * 0.4, "fill": body,
	})
	r.leftLeg = part(actions.ElementRect, "left-leg", actions.Props{
		"x": -unit * 0.8, "y": unit * 4.2, "width": unit * 0.6, "height": unit * 1.8, "fill": body,
	})
	r.rightLeg = part(actions.ElementRect, "right-leg", actions.Props{
		"x": unit * 0.2, "y": unit * 4.2, "width": unit * 0.6, "height": unit * 1.8, "fill": body,
	})
	return r
}

func buildBlobRig(b *builder, p *plan.Plan, cx, baseY float64) rig {
	size := p.Artboard.Height * 0.12

	var r rig
	r.root = b.add(actions.ElementGroup, actions.Props{
		"name": "blob",
		"x":    cx,
		"y":    baseY - size,
	})
	part := func(kind actions.ElementKind, name string, props actions.Props) string {
		props["name"] = name
		props["parentId"] = r.root
		return b.add(kind, props)
	}
	r.torso = part(actions.ElementPath, "body", actions.Props{
		"d":    blobPath(0, 0, size),
		"fill": paletteColor(p, 0),
	})
	part(actions.ElementCircle, "eye-left", actions.Props{
		"x": -size * 0.3, "y": -size * 0.2, "radius": size * 0.1, "fill": "#2d3436",
	})
	part(actions.ElementCircle, "eye-right", actions.Props{
		"x": size * 0.3, "y": -size * 0.2, "radius": size * 0.1, "fill": "#2d3436",
	})
	return r
}

// applyWalk translates the root across roughly a third of the artboard with
// a bobbing y and swings whatever limbs the rig has in opposite phase.
func applyWalk(b *builder, p *plan.Plan, r rig, baseY float64) {
	x0 := p.Artboard.Width * 0.5
	dx := p.Artboard.Width * 0.3
	if p.Features.Has("left") && !p.Features.Has("right") {
		dx = -dx
	}
	start, end := p.Beats.IntroEnd, p.Beats.ActionEnd
	y0 := baseY - p.Artboard.Height*0.3
	if r.leftLeg == "" { // blob sits lower
		y0 = baseY - p.Artboard.Height*0.12
	}

	b.key(r.root, "x", start, x0, EaseInOut)
	b.key(r.root, "x", end, x0+dx, EaseInOut)

	// Two bobs per stride.
	quarter := (end - start) / 4
	bob := p.Artboard.Height * 0.01
	b.key(r.root, "y", start, y0, EaseInOut)
	b.key(r.root, "y", start+quarter, y0-bob, EaseInOut)
	b.key(r.root, "y", start+2*quarter, y0, EaseInOut)
	b.key(r.root, "y", start+3*quarter, y0-bob, EaseInOut)
	b.key(r.root, "y", end, y0, EaseInOut)

	swing := func(id string, phase float64) {
		if id == "" {
			return
		}
		b.key(id, "rotation", start, 25*phase, EaseInOut)
		b.key(id, "rotation", (start+end)/2, -25*phase, EaseInOut)
		b.key(id, "rotation", end, 25*phase, EaseInOut)
	}
	swing(r.leftLeg, 1)
	swing(r.rightLeg, -1)
	swing(r.leftArm, -1)
	swing(r.rightArm, 1)
}

// applyWave oscillates the arm through the action beat and keeps the torso
// breathing underneath.
func applyWave(b *builder, p *plan.Plan, r rig) {
	arm := r.rightArm
	if arm == "" {
		arm = r.torso
	}
	start, end := p.Beats.IntroEnd, p.Beats.ActionEnd
	span := end - start
	for i := 0; i <= 4; i++ {
		angle := 0.0
		if i%2 == 1 {
			angle = -60.0
		}
		b.key(arm, "rotation", start+span*float64(i)/4, angle, EaseInOut)
	}
	applyIdle(b, p, r)
}

func applyBounce(b *builder, p *plan.Plan, r rig, baseY float64) {
	y0 := baseY - p.Artboard.Height*0.3
	if r.leftLeg == "" { // blob sits lower
		y0 = baseY - p.Artboard.Height*0.12
	}
	hop := p.Artboard.Height * 0.15
	start, end := p.Beats.IntroEnd, p.Beats.ActionEnd
	b.key(r.root, "y", start, y0, EaseOut)
	b.key(r.root, "y", (start+end)/2, y0-hop, EaseInOut)
	b.key(r.root, "y", end, y0, EaseIn)
}

func applySpin(b *builder, p *plan.Plan, r rig) {
	b.key(r.root, "rotation", p.Beats.IntroEnd, 0.0, EaseLinear)
	b.key(r.root, "rotation", p.Beats.ActionEnd, 360.0, EaseLinear)
}

func applyPulse(b *builder, p *plan.Plan, r rig) {
	start, end := p.Beats.IntroEnd, p.Beats.ActionEnd
	b.key(r.root, "scale", start, 1.0, EaseInOut)
	b.key(r.root, "scale", (start+end)/2, 1.15, EaseInOut)
	b.key(r.root, "scale", end, 1.0, EaseInOut)
}

// applyIdle is the resting breath cycle, also layered under wave.
func applyIdle(b *builder, p *plan.Plan, r rig) {
	target := r.torso
	if target == "" {
		target = r.root
	}
	d := p.Duration
	b.key(target, "scale", 0, 1.0, EaseInOut)
	b.key(target, "scale", d/2, 1.03, EaseInOut)
	b.key(target, "scale", d, 1.0, EaseInOut)
}
