package generate

import (
	"fmt"
	"math"

	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/features"
	"github.com/motifworks/motif-api/internal/plan"
)

const (
	scaleStep = 0.2
	scaleMin  = 0.1
	scaleMax  = 10.0
)

// BuildFallback handles requests with no scene, character, path or photo
// intent: either an in-place edit of the selected element, or creating a
// handful of plain shapes.
func BuildFallback(p *plan.Plan) Result {
	if p.Selected != nil && !wantsNewShape(p) {
		return updateSelected(p)
	}
	return createShapes(p)
}

// wantsNewShape distinguishes "draw a blue circle" from "make it bigger":
// creation verbs alone are ambiguous, so a fresh shape is only created over
// a live selection when the request names a shape or says "new".
func wantsNewShape(p *plan.Plan) bool {
	if p.Features.Has("new") {
		return true
	}
	return p.WantsCreate && p.Features.Any("circle", "rect", "text")
}

// updateSelected turns the extracted scalars into a single property update
// on the selected element, plus motion keyframes when asked for.
func updateSelected(p *plan.Plan) Result {
	b := newBuilder()
	fs := p.Features
	sel := p.Selected
	props := actions.Props{}

	if fs.Color != "" {
		if fs.Any("stroke", "outline") {
			props["stroke"] = fs.Color
		} else {
			props["fill"] = fs.Color
		}
	}
	if fs.HasOpacity {
		props["opacity"] = fs.Opacity
	}
	if fs.StrokeWidth > 0 {
		props["strokeWidth"] = fs.StrokeWidth
	}
	if fs.Size.Radius > 0 && sel.Kind == actions.ElementCircle {
		props["radius"] = fs.Size.Radius
	}
	if fs.Size.Width > 0 {
		props["width"] = fs.Size.Width
	}
	if fs.Size.Height > 0 {
		props["height"] = fs.Size.Height
	}
	if fs.FontSize > 0 && sel.Kind == actions.ElementText {
		props["fontSize"] = fs.FontSize
	}
	if fs.Text != "" && sel.Kind == actions.ElementText {
		props["text"] = fs.Text
	}

	// Relative resize nudges the current scale by a fixed step.
	if fs.Any("bigger", "smaller") {
		cur := 1.0
		if v, ok := num(sel.Props["scale"]); ok && v > 0 {
			cur = v
		}
		if fs.Has("bigger") {
			cur *= 1 + scaleStep
		} else {
			cur *= 1 - scaleStep
		}
		props["scale"] = math.Min(math.Max(cur, scaleMin), scaleMax)
	}

	if len(props) > 0 {
		b.update(sel.ID, props)
	}

	animated := applyShapeMotion(b, p, sel.ID, sel.X, sel.Y)

	summary := summarizeUpdate(sel, props, animated)
	return Result{Summary: summary, Actions: b.acts, RootID: sel.ID}
}

func summarizeUpdate(sel *plan.ElementRef, props actions.Props, animated bool) string {
	switch {
	case len(props) > 0 && animated:
		return fmt.Sprintf("updated and animated the selected %s", sel.Kind)
	case animated:
		return fmt.Sprintf("animated the selected %s", sel.Kind)
	case len(props) > 0:
		return fmt.Sprintf("updated the selected %s", sel.Kind)
	}
	return "nothing to change on the selection"
}

// createShapes lays out N new shapes in a row, column or grid.
func createShapes(p *plan.Plan) Result {
	b := newBuilder()
	fs := p.Features

	kind := resolveShapeKind(fs)
	n := fs.Count
	if n < 1 {
		n = 1
	}

	// Explicit sizes win; qualitative "small"/"large" scale off the
	// artboard's shorter dimension.
	size := fs.Size.Radius
	if size == 0 {
		size = math.Min(p.Artboard.Width, p.Artboard.Height) * 0.08
		if fs.Has("small") {
			size *= 0.5
		} else if fs.Has("large") {
			size *= 1.8
		}
	}
	w, h := fs.Size.Width, fs.Size.Height
	if w == 0 {
		w = size * 2
	}
	if h == 0 {
		h = size * 2
	}

	positions := layoutPositions(p, n, w, h)
	first := ""
	for i, pos := range positions {
		color := fs.Color
		if color == "" {
			color = paletteColor(p, i)
		}
		props := actions.Props{
			"x":    pos[0],
			"y":    pos[1],
			"fill": color,
		}
		if fs.HasOpacity {
			props["opacity"] = fs.Opacity
		}
		switch kind {
		case actions.ElementCircle:
			props["radius"] = size
		case actions.ElementText:
			text := fs.Text
			if text == "" {
				text = "Text"
			}
			props["text"] = text
			if fs.FontSize > 0 {
				props["fontSize"] = fs.FontSize
			}
		default:
			props["width"] = w
			props["height"] = h
		}
		id := b.add(kind, props)
		if first == "" {
			first = id
		}
		applyShapeMotion(b, p, id, pos[0], pos[1])
	}

	noun := string(kind)
	summary := fmt.Sprintf("a new %s", noun)
	if n > 1 {
		summary = fmt.Sprintf("%d new %ss in a %s", n, noun, p.Layout)
	}
	return Result{Summary: summary, Actions: b.acts, RootID: first}
}

// resolveShapeKind picks circle over rect over text; bare literal text with
// no shape keyword becomes a text element.
func resolveShapeKind(fs *features.FeatureSet) actions.ElementKind {
	switch {
	case fs.Has("circle"):
		return actions.ElementCircle
	case fs.Has("rect"):
		return actions.ElementRect
	case fs.Has("text"):
		return actions.ElementText
	case fs.Text != "":
		return actions.ElementText
	}
	return actions.ElementRect
}

// layoutPositions spreads N shapes across the artboard center. Grids use
// ceil(sqrt(N)) columns.
func layoutPositions(p *plan.Plan, n int, w, h float64) [][2]float64 {
	cx := p.Artboard.Width * 0.5
	cy := p.Artboard.Height * 0.5
	gapX := w * 1.4
	gapY := h * 1.4

	out := make([][2]float64, 0, n)
	switch p.Layout {
	case plan.LayoutColumn:
		start := cy - gapY*float64(n-1)/2
		for i := 0; i < n; i++ {
			out = append(out, [2]float64{cx, start + gapY*float64(i)})
		}
	case plan.LayoutGrid:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		rows := int(math.Ceil(float64(n) / float64(cols)))
		x0 := cx - gapX*float64(cols-1)/2
		y0 := cy - gapY*float64(rows-1)/2
		for i := 0; i < n; i++ {
			out = append(out, [2]float64{
				x0 + gapX*float64(i%cols),
				y0 + gapY*float64(i/cols),
			})
		}
	default: // row
		start := cx - gapX*float64(n-1)/2
		for i := 0; i < n; i++ {
			out = append(out, [2]float64{start + gapX*float64(i), cy})
		}
	}
	return out
}

// applyShapeMotion maps animation keywords onto keyframes anchored at the
// element's position. Returns whether anything was keyed.
func applyShapeMotion(b *builder, p *plan.Plan, id string, x, y float64) bool {
	fs := p.Features
	start, end := p.Beats.IntroEnd, p.Beats.ActionEnd
	mid := (start + end) / 2

	switch {
	case fs.Has("move"):
		dx := p.Artboard.Width * 0.25
		if fs.Has("left") && !fs.Has("right") {
			dx = -dx
		}
		dy := 0.0
		if fs.Has("up") && !fs.Has("down") {
			dy = -p.Artboard.Height * 0.2
		} else if fs.Has("down") {
			dy = p.Artboard.Height * 0.2
		}
		b.key(id, "x", start, x, EaseInOut)
		b.key(id, "x", end, x+dx, EaseInOut)
		if dy != 0 {
			b.key(id, "y", start, y, EaseInOut)
			b.key(id, "y", end, y+dy, EaseInOut)
		}
	case fs.Has("bounce"):
		b.key(id, "y", start, y, EaseOut)
		b.key(id, "y", mid, y-p.Artboard.Height*0.12, EaseInOut)
		b.key(id, "y", end, y, EaseIn)
	case fs.Has("spin"):
		b.key(id, "rotation", start, 0.0, EaseLinear)
		b.key(id, "rotation", end, 360.0, EaseLinear)
	case fs.Has("pulse"):
		b.key(id, "scale", start, 1.0, EaseInOut)
		b.key(id, "scale", mid, 1.15, EaseInOut)
		b.key(id, "scale", end, 1.0, EaseInOut)
	case fs.Has("fade"):
		b.key(id, "opacity", start, 1.0, EaseInOut)
		b.key(id, "opacity", end, 0.0, EaseInOut)
	case fs.Has("animate"):
		// Bare "animate" with no specific verb gets the pulse treatment.
		b.key(id, "scale", start, 1.0, EaseInOut)
		b.key(id, "scale", mid, 1.1, EaseInOut)
		b.key(id, "scale", end, 1.0, EaseInOut)
	default:
		return false
	}
	return true
}
