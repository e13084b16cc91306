package generate

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

// shapeRules is the ordered shape cascade; first flag present wins, with
// blob as the catch-all for bare "path"/"curve" requests.
var shapeRules = []struct {
	flag  string
	shape string
}{
	{"spiral", "spiral"},
	{"wave", "wave"},
	{"heart", "heart"},
	{"stars", "star"},
	{"zigzag", "zigzag"},
	{"polygon", "polygon"},
	{"blob", "blob"},
}

// BuildPathShape draws one procedural path centered on the artboard, with
// an optional draw-on reveal animation.
func BuildPathShape(p *plan.Plan) Result {
	b := newBuilder()

	shape := "blob"
	for _, rule := range shapeRules {
		if p.Features.Has(rule.flag) {
			shape = rule.shape
			break
		}
	}

	cx := p.Artboard.Width * 0.5
	cy := p.Artboard.Height * 0.5
	size := p.Artboard.Height * 0.22

	var d string
	closed := false
	switch shape {
	case "spiral":
		d = spiralPath(cx, cy, size)
	case "wave":
		d = wavePath(cx-p.Artboard.Width*0.3, cy, p.Artboard.Width*0.6, size*0.4)
	case "heart":
		d = heartPath(cx, cy, size)
		closed = true
	case "star":
		d = starPath(cx, cy, size)
		closed = true
	case "zigzag":
		d = zigzagPath(cx-p.Artboard.Width*0.3, cy, p.Artboard.Width*0.6, size*0.35)
	case "polygon":
		d = polygonPath(cx, cy, size, 6)
		closed = true
	default:
		d = blobPath(cx, cy, size)
		closed = true
	}

	color := paletteColor(p, 0)
	props := actions.Props{
		"name": shape,
		"d":    d,
	}

	// Open curves always render as strokes; closed ones fill unless the
	// request asked for an outline.
	outlined := !closed || p.Features.Any("outline", "stroke")
	if outlined {
		width := p.Features.StrokeWidth
		if width == 0 {
			width = 3
		}
		props["fill"] = "none"
		props["stroke"] = color
		props["strokeWidth"] = width
	} else {
		props["fill"] = fill(p, color, paletteColor(p, 1), 45)
	}

	id := b.add(actions.ElementPath, props)

	if p.Features.Any("reveal", "animate") {
		b.update(id, actions.Props{"drawStartPercent": 0.0, "drawEndPercent": 0.05})
		b.key(id, "drawEndPercent", 0, 0.05, EaseInOut)
		b.key(id, "drawEndPercent", p.Beats.ActionEnd, 1.0, EaseInOut)
	} else {
		// A resting shape still gets a gentle float.
		b.key(id, "y", 0, 0.0, EaseInOut)
		b.key(id, "y", p.Duration/2, -p.Artboard.Height*0.015, EaseInOut)
		b.key(id, "y", p.Duration, 0.0, EaseInOut)
	}

	return Result{Summary: "a " + shape + " path", Actions: b.acts, RootID: id}
}
