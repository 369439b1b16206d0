package plot

import (
	"math"
	"sort"
)

// Hatch returns the segments of parallel lines, spacing apart and at angle
// degrees from the x axis, that lie inside the polygon poly. Lines sit at
// offsets (k+phase)·spacing along the normal. Inside is decided by the
// even-odd rule, so self-intersecting outlines hatch like PGPLOT does.
//
// Coordinates are taken as given; callers hatch in a y-up plane so the
// angle reads counter-clockwise.
func Hatch(poly []Pt, angle, spacing, phase float64) [][2]Pt {
	if len(poly) < 3 || spacing <= 0 {
		return nil
	}
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad) // along the lines
	nx, ny := -dy, dx                      // across the lines

	along := func(p Pt) float64 { return p.X*dx + p.Y*dy }
	across := func(p Pt) float64 { return p.X*nx + p.Y*ny }

	smin, smax := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		s := across(p)
		smin = math.Min(smin, s)
		smax = math.Max(smax, s)
	}

	offset := phase * spacing
	var segs [][2]Pt
	var us []float64
	for k := math.Ceil((smin - offset) / spacing); ; k++ {
		s := offset + k*spacing
		if s > smax {
			break
		}
		us = us[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			sa, sb := across(a), across(b)
			// Half-open crossing test counts shared vertices once.
			if (sa < s) == (sb < s) {
				continue
			}
			t := (s - sa) / (sb - sa)
			q := Pt{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
			us = append(us, along(q))
		}
		sort.Float64s(us)
		for i := 0; i+1 < len(us); i += 2 {
			segs = append(segs, [2]Pt{
				{X: s*nx + us[i]*dx, Y: s*ny + us[i]*dy},
				{X: s*nx + us[i+1]*dx, Y: s*ny + us[i+1]*dy},
			})
		}
	}
	return segs
}

// Inside reports whether p lies inside poly by the even-odd rule.
func Inside(poly []Pt, p Pt) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
