package generate

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

// Effective duration floors for photo work: quick cuts read badly on Ken
// Burns, and the two-layer treatment needs even more room.
const (
	minPhotoDuration        = 3.0
	minLayeredPhotoDuration = 6.0
)

// photoTarget is the image being animated, new or pre-existing.
type photoTarget struct {
	id string
	x  float64
	y  float64
	w  float64
	h  float64
}

// BuildPhoto animates a photo: tier one is a Ken Burns drift with optional
// parallax dressing, tier two splits the image into background and subject
// layers moving at different rates. Photo intent is exclusive, so this
// result is the whole response.
func BuildPhoto(p *plan.Plan) Result {
	b := newBuilder()
	t := resolvePhotoTarget(b, p)

	if p.PhotoTier2 {
		return buildLayeredPhoto(b, p, t)
	}
	return buildKenBurns(b, p, t)
}

// resolvePhotoTarget prefers the selected image, then the first image in
// the editor context, and synthesizes a canvas-sized placeholder otherwise.
func resolvePhotoTarget(b *builder, p *plan.Plan) photoTarget {
	if p.Selected != nil && p.Selected.Kind == actions.ElementImage {
		return targetFromRef(p, *p.Selected)
	}
	for _, el := range p.Elements {
		if el.Kind == actions.ElementImage {
			return targetFromRef(p, el)
		}
	}
	id := b.add(actions.ElementImage, actions.Props{
		"name":        "photo",
		"x":           0.0,
		"y":           0.0,
		"width":       p.Artboard.Width,
		"height":      p.Artboard.Height,
		"src":         "",
		"placeholder": true,
	})
	return photoTarget{id: id, w: p.Artboard.Width, h: p.Artboard.Height}
}

func targetFromRef(p *plan.Plan, ref plan.ElementRef) photoTarget {
	t := photoTarget{id: ref.ID, x: ref.X, y: ref.Y, w: ref.Width, h: ref.Height}
	if t.w == 0 {
		t.w = p.Artboard.Width
	}
	if t.h == 0 {
		t.h = p.Artboard.Height
	}
	return t
}

func buildKenBurns(b *builder, p *plan.Plan, t photoTarget) Result {
	d := p.Duration
	if d < minPhotoDuration {
		d = minPhotoDuration
	}

	// Slow push-in with a diagonal drift of a few percent.
	b.key(t.id, "scale", 0, 1.0, EaseInOut)
	b.key(t.id, "scale", d, 1.08, EaseInOut)
	b.key(t.id, "x", 0, t.x, EaseInOut)
	b.key(t.id, "x", d, t.x-t.w*0.04, EaseInOut)
	b.key(t.id, "y", 0, t.y, EaseInOut)
	b.key(t.id, "y", d, t.y-t.h*0.03, EaseInOut)

	summary := "a ken burns drift on the photo"
	if p.Features.Has("parallax") {
		// A soft orb and a bottom silhouette moving against the drift sell
		// the depth.
		orb := b.add(actions.ElementCircle, actions.Props{
			"name":    "parallax-orb",
			"x":       t.x + t.w*0.8,
			"y":       t.y + t.h*0.2,
			"radius":  t.h * 0.05,
			"fill":    "#ffffff",
			"opacity": 0.35,
		})
		b.key(orb, "x", 0, t.x+t.w*0.8, EaseInOut)
		b.key(orb, "x", d, t.x+t.w*0.86, EaseInOut)

		sil := b.add(actions.ElementPath, actions.Props{
			"name":    "silhouette",
			"d":       archPath(t.x, t.y+t.h, t.x+t.w*0.5, t.y+t.h*0.82, t.x+t.w, t.y+t.h),
			"fill":    "#0a0a14",
			"opacity": 0.55,
		})
		b.key(sil, "x", 0, 0.0, EaseInOut)
		b.key(sil, "x", d, t.w*0.02, EaseInOut)
		summary = "a parallax ken burns treatment on the photo"
	}

	return Result{Summary: summary, Actions: b.acts, RootID: t.id}
}

func buildLayeredPhoto(b *builder, p *plan.Plan, t photoTarget) Result {
	d := p.Duration
	if d < minLayeredPhotoDuration {
		d = minLayeredPhotoDuration
	}

	// Background layer: the photo itself, creeping in slowly.
	b.key(t.id, "scale", 0, 1.0, EaseInOut)
	b.key(t.id, "scale", d, 1.05, EaseInOut)

	// Subject crop, centered on the frame unless the request carried a
	// bounding box, scaling faster than the background.
	bx, by, bw, bh := subjectBox(p, t)
	subject := b.add(actions.ElementImage, actions.Props{
		"name":   "subject",
		"x":      bx,
		"y":      by,
		"width":  bw,
		"height": bh,
		"src":    "",
		"cropOf": t.id,
	})
	b.key(subject, "scale", 0, 1.0, EaseInOut)
	b.key(subject, "scale", d, 1.15, EaseInOut)
	b.key(subject, "y", 0, by, EaseInOut)
	b.key(subject, "y", d, by-bh*0.04, EaseInOut)

	if p.Features.Any("subject", "bbox") {
		box := b.add(actions.ElementRect, actions.Props{
			"name":        "subject-box",
			"x":           bx,
			"y":           by,
			"width":       bw,
			"height":      bh,
			"fill":        "none",
			"stroke":      paletteColor(p, 0),
			"strokeWidth": 2.0,
		})
		b.key(box, "opacity", 0, 0.8, EaseInOut)
		b.key(box, "opacity", d/2, 0.3, EaseInOut)
		b.key(box, "opacity", d, 0.8, EaseInOut)
	}

	return Result{
		Summary: "a layered subject and background treatment on the photo",
		Actions: b.acts,
		RootID:  t.id,
	}
}

// subjectBox reads an explicit bounding box from the selected element's
// props when present, otherwise assumes a centered subject covering 40% by
// 50% of the frame.
func subjectBox(p *plan.Plan, t photoTarget) (x, y, w, h float64) {
	if p.Selected != nil {
		if bb, ok := p.Selected.Props["subjectBox"].(map[string]any); ok {
			x, xok := num(bb["x"])
			y, yok := num(bb["y"])
			w, wok := num(bb["width"])
			h, hok := num(bb["height"])
			if xok && yok && wok && hok && w > 0 && h > 0 {
				return x, y, w, h
			}
		}
	}
	w = t.w * 0.4
	h = t.h * 0.5
	x = t.x + (t.w-w)/2
	y = t.y + (t.h-h)/2
	return x, y, w, h
}

func num(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
