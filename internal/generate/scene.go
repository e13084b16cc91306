package generate

import (
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/plan"
)

// sceneBuilders maps each archetype to its template. Every template fills a
// root group covering the artboard, so the composer can attach camera motion
// and weather to a single anchor.
var sceneBuilders = map[plan.Archetype]func(*sceneCtx){
	plan.ArchetypeSunset:   buildSunset,
	plan.ArchetypeOcean:    buildOcean,
	plan.ArchetypeCity:     buildCity,
	plan.ArchetypeForest:   buildForest,
	plan.ArchetypeMountain: buildMountain,
	plan.ArchetypeDesert:   buildDesert,
	plan.ArchetypeSpace:    buildSpace,
	plan.ArchetypeNeon:     buildNeon,
	plan.ArchetypeMeadow:   buildMeadow,
	plan.ArchetypeGeneric:  buildGeneric,
}

var sceneSummaries = map[plan.Archetype]string{
	plan.ArchetypeSunset:   "a sunset scene",
	plan.ArchetypeOcean:    "an ocean scene",
	plan.ArchetypeCity:     "a city skyline",
	plan.ArchetypeForest:   "a forest scene",
	plan.ArchetypeMountain: "a mountain landscape",
	plan.ArchetypeDesert:   "a desert scene",
	plan.ArchetypeSpace:    "a space scene",
	plan.ArchetypeNeon:     "a neon studio",
	plan.ArchetypeMeadow:   "a meadow scene",
	plan.ArchetypeGeneric:  "a simple scene",
}

// sceneCtx bundles what every archetype template needs.
type sceneCtx struct {
	*builder
	p    *plan.Plan
	root string
	w    float64
	h    float64
}

// child adds an element parented to the scene root.
func (c *sceneCtx) child(kind actions.ElementKind, props actions.Props) string {
	props["parentId"] = c.root
	return c.add(kind, props)
}

// BuildScene renders the plan's archetype into actions. Archetypes that
// resolved to none fall back to the generic template.
func BuildScene(p *plan.Plan) Result {
	build, ok := sceneBuilders[p.Archetype]
	summary := sceneSummaries[p.Archetype]
	if !ok {
		build = buildGeneric
		summary = sceneSummaries[plan.ArchetypeGeneric]
	}

	c := &sceneCtx{
		builder: newBuilder(),
		p:       p,
		w:       p.Artboard.Width,
		h:       p.Artboard.Height,
	}
	c.root = c.add(actions.ElementGroup, actions.Props{
		"name": "scene",
		"x":    0.0,
		"y":    0.0,
	})
	build(c)

	return Result{Summary: summary, Actions: c.acts, RootID: c.root}
}

// sky fills the upper band with a flat or gradient color.
func (c *sceneCtx) sky(top, bottom string) string {
	return c.child(actions.ElementRect, actions.Props{
		"name":   "sky",
		"x":      0.0,
		"y":      0.0,
		"width":  c.w,
		"height": c.h,
		"fill":   linearGradient(top, bottom, 90),
	})
}

// ground fills the lower band.
func (c *sceneCtx) ground(color string, fraction float64) string {
	y := c.h * (1 - fraction)
	return c.child(actions.ElementRect, actions.Props{
		"name":   "ground",
		"x":      0.0,
		"y":      y,
		"width":  c.w,
		"height": c.h - y,
		"fill":   color,
	})
}

// drift adds a slow horizontal idle loop keyed to the plan's duration.
func (c *sceneCtx) drift(id string, x0, dx float64) {
	d := c.p.Duration
	c.key(id, "x", 0, x0, EaseInOut)
	c.key(id, "x", d/2, x0+dx, EaseInOut)
	c.key(id, "x", d, x0, EaseInOut)
}

// twinkle adds an opacity flicker loop.
func (c *sceneCtx) twinkle(id string, lo float64) {
	d := c.p.Duration
	c.key(id, "opacity", 0, 1.0, EaseInOut)
	c.key(id, "opacity", d/2, lo, EaseInOut)
	c.key(id, "opacity", d, 1.0, EaseInOut)
}

func buildSunset(c *sceneCtx) {
	c.sky("#ff7e5f", "#feb47b")
	sunX, sunY := c.w*0.5, c.h*0.62
	sun := c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      sunX,
		"y":      sunY,
		"radius": c.h * 0.12,
		"fill":   "#ffd700",
	})
	c.ground("#2c3e50", 0.28)
	for i := 0; i < 2; i++ {
		cloud := c.child(actions.ElementCircle, actions.Props{
			"name":    "cloud",
			"x":       c.w * (0.22 + 0.45*float64(i)),
			"y":       c.h * 0.2,
			"radius":  c.h * 0.06,
			"fill":    "#ffffff",
			"opacity": 0.6,
		})
		c.drift(cloud, c.w*(0.22+0.45*float64(i)), c.w*0.05)
	}
	// The sun sinks a little toward the horizon over the full duration.
	c.key(sun, "y", 0, sunY, EaseInOut)
	c.key(sun, "y", c.p.Duration, sunY+c.h*0.05, EaseInOut)
}

func buildOcean(c *sceneCtx) {
	c.sky("#87ceeb", "#b3e5fc")
	sea := c.child(actions.ElementRect, actions.Props{
		"name":   "sea",
		"x":      0.0,
		"y":      c.h * 0.55,
		"width":  c.w,
		"height": c.h * 0.45,
		"fill":   linearGradient("#0077be", "#003f6b", 90),
	})
	c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      c.w * 0.75,
		"y":      c.h * 0.18,
		"radius": c.h * 0.08,
		"fill":   "#fff176",
	})
	for i := 0; i < 3; i++ {
		foam := c.child(actions.ElementCircle, actions.Props{
			"name":    "foam",
			"x":       c.w * (0.2 + 0.3*float64(i)),
			"y":       c.h * 0.6,
			"radius":  c.h * 0.015,
			"fill":    "#ffffff",
			"opacity": 0.7,
		})
		c.drift(foam, c.w*(0.2+0.3*float64(i)), c.w*0.04)
	}
	// Gentle tide bob.
	d := c.p.Duration
	c.key(sea, "y", 0, c.h*0.55, EaseInOut)
	c.key(sea, "y", d/2, c.h*0.53, EaseInOut)
	c.key(sea, "y", d, c.h*0.55, EaseInOut)
}

func buildCity(c *sceneCtx) {
	c.sky("#1a1a2e", "#16213e")
	c.child(actions.ElementCircle, actions.Props{
		"name":   "moon",
		"x":      c.w * 0.8,
		"y":      c.h * 0.15,
		"radius": c.h * 0.06,
		"fill":   "#f5f3ce",
	})
	heights := []float64{0.45, 0.6, 0.35, 0.55, 0.4}
	bw := c.w / float64(len(heights)+1)
	for i, hf := range heights {
		bh := c.h * hf
		c.child(actions.ElementRect, actions.Props{
			"name":   "building",
			"x":      bw * (0.5 + float64(i)),
			"y":      c.h - bh,
			"width":  bw * 0.8,
			"height": bh,
			"fill":   paletteDark(i),
		})
	}
	for i := 0; i < 3; i++ {
		win := c.child(actions.ElementRect, actions.Props{
			"name":   "window",
			"x":      bw*(0.7+float64(i)*1.5) + 4,
			"y":      c.h * 0.6,
			"width":  8.0,
			"height": 10.0,
			"fill":   "#ffd866",
		})
		c.twinkle(win, 0.2)
	}
}

// paletteDark cycles muted building tones independent of the plan palette,
// which would make skyscrapers look like candy.
func paletteDark(i int) string {
	tones := []string{"#2c2c54", "#40407a", "#474787"}
	return tones[i%len(tones)]
}

func buildForest(c *sceneCtx) {
	c.sky("#a8e6cf", "#dcedc1")
	c.ground("#3b7a57", 0.25)
	for i := 0; i < 3; i++ {
		x := c.w * (0.2 + 0.3*float64(i))
		trunkH := c.h * 0.18
		c.child(actions.ElementRect, actions.Props{
			"name":   "trunk",
			"x":      x - 6,
			"y":      c.h*0.75 - trunkH,
			"width":  12.0,
			"height": trunkH,
			"fill":   "#6b4226",
		})
		crown := c.child(actions.ElementCircle, actions.Props{
			"name":   "crown",
			"x":      x,
			"y":      c.h*0.75 - trunkH - c.h*0.08,
			"radius": c.h * 0.1,
			"fill":   "#2d6a4f",
		})
		// Canopy sway, phase-shifted per tree.
		d := c.p.Duration
		c.key(crown, "rotation", 0, 0.0, EaseInOut)
		c.key(crown, "rotation", d*(0.4+0.1*float64(i)), 4.0, EaseInOut)
		c.key(crown, "rotation", d, 0.0, EaseInOut)
	}
}

func buildMountain(c *sceneCtx) {
	c.sky("#cfd9df", "#e2ebf0")
	c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      c.w * 0.2,
		"y":      c.h * 0.18,
		"radius": c.h * 0.07,
		"fill":   "#ffe082",
	})
	peaks := []struct{ cx, base, hf float64 }{
		{0.3, 1.0, 0.55},
		{0.62, 1.0, 0.7},
		{0.85, 1.0, 0.45},
	}
	for _, pk := range peaks {
		cx := c.w * pk.cx
		top := c.h * (1 - pk.hf)
		half := c.w * 0.18
		c.child(actions.ElementPath, actions.Props{
			"name": "peak",
			"d":    trianglePath(cx-half, c.h, cx, top, cx+half, c.h),
			"fill": "#546e7a",
		})
		c.child(actions.ElementPath, actions.Props{
			"name": "snowcap",
			"d":    trianglePath(cx-half*0.3, top+c.h*0.12, cx, top, cx+half*0.3, top+c.h*0.12),
			"fill": "#ffffff",
		})
	}
	mist := c.child(actions.ElementCircle, actions.Props{
		"name":    "mist",
		"x":       c.w * 0.5,
		"y":       c.h * 0.55,
		"radius":  c.h * 0.09,
		"fill":    "#ffffff",
		"opacity": 0.35,
	})
	c.drift(mist, c.w*0.5, c.w*0.08)
}

func buildDesert(c *sceneCtx) {
	c.sky("#ffb347", "#ffcc80")
	c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      c.w * 0.7,
		"y":      c.h * 0.2,
		"radius": c.h * 0.09,
		"fill":   "#fff3e0",
	})
	c.ground("#e3a857", 0.35)
	c.child(actions.ElementPath, actions.Props{
		"name": "dune",
		"d":    archPath(0, c.h*0.75, c.w*0.5, c.h*0.58, c.w, c.h*0.75),
		"fill": "#d4934a",
	})
	// A lone cactus: trunk and one arm.
	cx := c.w * 0.25
	c.child(actions.ElementRect, actions.Props{
		"name":   "cactus",
		"x":      cx,
		"y":      c.h * 0.52,
		"width":  14.0,
		"height": c.h * 0.16,
		"fill":   "#3a7d44",
	})
	c.child(actions.ElementRect, actions.Props{
		"name":   "cactus-arm",
		"x":      cx + 14,
		"y":      c.h * 0.56,
		"width":  18.0,
		"height": 8.0,
		"fill":   "#3a7d44",
	})
	heat := c.child(actions.ElementCircle, actions.Props{
		"name":    "heat",
		"x":       c.w * 0.55,
		"y":       c.h * 0.5,
		"radius":  c.h * 0.02,
		"fill":    "#ffffff",
		"opacity": 0.3,
	})
	c.twinkle(heat, 0.05)
}

func buildSpace(c *sceneCtx) {
	c.sky("#0b0c2a", "#1b1b3a")
	starXs := []float64{0.12, 0.3, 0.48, 0.66, 0.82, 0.92}
	starYs := []float64{0.2, 0.65, 0.12, 0.5, 0.3, 0.72}
	for i := range starXs {
		star := c.child(actions.ElementCircle, actions.Props{
			"name":   "star",
			"x":      c.w * starXs[i],
			"y":      c.h * starYs[i],
			"radius": 2.0 + float64(i%3),
			"fill":   "#ffffff",
		})
		if i%2 == 0 {
			c.twinkle(star, 0.3)
		}
	}
	planet := c.child(actions.ElementCircle, actions.Props{
		"name":   "planet",
		"x":      c.w * 0.6,
		"y":      c.h * 0.45,
		"radius": c.h * 0.14,
		"fill":   linearGradient("#c76b98", "#8551a8", 45),
	})
	ring := c.child(actions.ElementCircle, actions.Props{
		"name":        "ring",
		"x":           c.w * 0.6,
		"y":           c.h * 0.45,
		"radius":      c.h * 0.2,
		"fill":        "none",
		"stroke":      "#d7b9e8",
		"strokeWidth": 3.0,
		"opacity":     0.8,
	})
	c.drift(planet, c.w*0.6, c.w*0.03)
	c.drift(ring, c.w*0.6, c.w*0.03)
}

func buildNeon(c *sceneCtx) {
	c.sky("#0f0f1a", "#1a0f2e")
	c.ground("#141428", 0.2)
	accent := paletteColor(c.p, 0)
	frame := c.child(actions.ElementRect, actions.Props{
		"name":        "frame",
		"x":           c.w * 0.25,
		"y":           c.h * 0.25,
		"width":       c.w * 0.5,
		"height":      c.h * 0.4,
		"fill":        "none",
		"stroke":      accent,
		"strokeWidth": 4.0,
	})
	c.twinkle(frame, 0.55)
	orb := c.child(actions.ElementCircle, actions.Props{
		"name":   "orb",
		"x":      c.w * 0.5,
		"y":      c.h * 0.45,
		"radius": c.h * 0.07,
		"fill":   linearGradient(accent, paletteColor(c.p, 1), 45),
	})
	d := c.p.Duration
	c.key(orb, "scale", 0, 1.0, EaseInOut)
	c.key(orb, "scale", d/2, 1.18, EaseInOut)
	c.key(orb, "scale", d, 1.0, EaseInOut)
	// Floor reflection strip.
	c.child(actions.ElementRect, actions.Props{
		"name":    "glow-strip",
		"x":       0.0,
		"y":       c.h * 0.8,
		"width":   c.w,
		"height":  3.0,
		"fill":    accent,
		"opacity": 0.6,
	})
}

func buildMeadow(c *sceneCtx) {
	c.sky("#aee1f9", "#d6f0ff")
	c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      c.w * 0.82,
		"y":      c.h * 0.15,
		"radius": c.h * 0.07,
		"fill":   "#ffe066",
	})
	c.ground("#7ec850", 0.3)
	for i := 0; i < 4; i++ {
		x := c.w * (0.15 + 0.22*float64(i))
		c.child(actions.ElementRect, actions.Props{
			"name":   "stem",
			"x":      x - 2,
			"y":      c.h * 0.72,
			"width":  4.0,
			"height": c.h * 0.1,
			"fill":   "#4a8f29",
		})
		petal := c.child(actions.ElementCircle, actions.Props{
			"name":   "flower",
			"x":      x,
			"y":      c.h * 0.7,
			"radius": c.h * 0.03,
			"fill":   paletteColor(c.p, i),
		})
		d := c.p.Duration
		c.key(petal, "rotation", 0, 0.0, EaseInOut)
		c.key(petal, "rotation", d*(0.45+0.05*float64(i)), 8.0, EaseInOut)
		c.key(petal, "rotation", d, 0.0, EaseInOut)
	}
}

func buildGeneric(c *sceneCtx) {
	c.sky(paletteColor(c.p, 0), shade(paletteColor(c.p, 0)))
	c.ground(paletteColor(c.p, 1), 0.25)
	sun := c.child(actions.ElementCircle, actions.Props{
		"name":   "sun",
		"x":      c.w * 0.78,
		"y":      c.h * 0.18,
		"radius": c.h * 0.08,
		"fill":   "#ffd700",
	})
	accent := c.child(actions.ElementCircle, actions.Props{
		"name":   "accent",
		"x":      c.w * 0.35,
		"y":      c.h * 0.5,
		"radius": c.h * 0.06,
		"fill":   paletteColor(c.p, 2),
	})
	c.drift(accent, c.w*0.35, c.w*0.06)
	c.twinkle(sun, 0.8)
}
