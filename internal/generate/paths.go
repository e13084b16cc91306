package generate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fp formats a coordinate for a path d-string.
func fp(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func trianglePath(x1, y1, x2, y2, x3, y3 float64) string {
	return fmt.Sprintf("M %s %s L %s %s L %s %s Z",
		fp(x1), fp(y1), fp(x2), fp(y2), fp(x3), fp(y3))
}

// archPath draws a quadratic arc from the left point over the apex to the
// right point and closes along the bottom.
func archPath(x1, y1, cx, cy, x2, y2 float64) string {
	return fmt.Sprintf("M %s %s Q %s %s %s %s L %s %s Z",
		fp(x1), fp(y1), fp(cx), fp(cy), fp(x2), fp(y2), fp(x2), fp(y1))
}

// shade darkens a #rrggbb color for cheap gradient pairs. Unparseable input
// comes back unchanged.
func shade(hex string) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return hex
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return hex
	}
	r := uint8(float64(v>>16&0xff) * 0.6)
	g := uint8(float64(v>>8&0xff) * 0.6)
	b := uint8(float64(v&0xff) * 0.6)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// polyline joins points into an open path.
func polyline(pts [][2]float64) string {
	var sb strings.Builder
	for i, pt := range pts {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(fp(pt[0]))
		sb.WriteString(" ")
		sb.WriteString(fp(pt[1]))
	}
	return sb.String()
}

// spiralPath is an Archimedean spiral sampled densely enough to look smooth.
func spiralPath(cx, cy, maxR float64) string {
	const turns = 3.0
	const steps = 72
	pts := make([][2]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		theta := t * turns * 2 * math.Pi
		r := t * maxR
		pts = append(pts, [2]float64{cx + r*math.Cos(theta), cy + r*math.Sin(theta)})
	}
	return polyline(pts)
}

// wavePath is a sine curve spanning the given width.
func wavePath(x0, cy, width, amp float64) string {
	const cycles = 2.5
	const steps = 48
	pts := make([][2]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		pts = append(pts, [2]float64{
			x0 + t*width,
			cy + amp*math.Sin(t*cycles*2*math.Pi),
		})
	}
	return polyline(pts)
}

// heartPath is the classic two-lobe cubic heart, sized to fit a box of the
// given half-width.
func heartPath(cx, cy, s float64) string {
	return fmt.Sprintf(
		"M %s %s C %s %s %s %s %s %s C %s %s %s %s %s %s Z",
		fp(cx), fp(cy+s*0.9),
		fp(cx-s*1.3), fp(cy-s*0.2), fp(cx-s*0.6), fp(cy-s), fp(cx), fp(cy-s*0.3),
		fp(cx+s*0.6), fp(cy-s), fp(cx+s*1.3), fp(cy-s*0.2), fp(cx), fp(cy+s*0.9),
	)
}

// starPath is a five-point star alternating outer and inner radii.
func starPath(cx, cy, outer float64) string {
	inner := outer * 0.4
	pts := make([][2]float64, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, [2]float64{cx + r*math.Cos(theta), cy + r*math.Sin(theta)})
	}
	return polyline(pts) + " Z"
}

// zigzagPath alternates peaks and valleys across the width.
func zigzagPath(x0, cy, width, amp float64) string {
	const segments = 8
	pts := make([][2]float64, 0, segments+1)
	for i := 0; i <= segments; i++ {
		y := cy + amp
		if i%2 == 1 {
			y = cy - amp
		}
		pts = append(pts, [2]float64{x0 + float64(i)*width/segments, y})
	}
	return polyline(pts)
}

// polygonPath is a regular n-gon, point-up.
func polygonPath(cx, cy, r float64, sides int) string {
	if sides < 3 {
		sides = 6
	}
	pts := make([][2]float64, 0, sides)
	for i := 0; i < sides; i++ {
		theta := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		pts = append(pts, [2]float64{cx + r*math.Cos(theta), cy + r*math.Sin(theta)})
	}
	return polyline(pts) + " Z"
}

// blobPath is a closed organic curve built from a fixed offset table so the
// same input always yields the same blob.
var blobOffsets = []float64{1.0, 0.82, 1.12, 0.9, 1.05, 0.78, 1.1, 0.88}

func blobPath(cx, cy, r float64) string {
	n := len(blobOffsets)
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		rr := r * blobOffsets[i]
		pts[i] = [2]float64{cx + rr*math.Cos(theta), cy + rr*math.Sin(theta)}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %s %s", fp(pts[0][0]), fp(pts[0][1]))
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		mx, my := (p0[0]+p1[0])/2, (p0[1]+p1[1])/2
		// Push the control point outward for a rounded, lumpy edge.
		dx, dy := mx-cx, my-cy
		fmt.Fprintf(&sb, " Q %s %s %s %s", fp(cx+dx*1.25), fp(cy+dy*1.25), fp(p1[0]), fp(p1[1]))
	}
	sb.WriteString(" Z")
	return sb.String()
}
