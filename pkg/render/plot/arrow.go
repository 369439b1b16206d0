package plot

import "math"

// ArrowHead returns the outline of an arrow head with its point at tip,
// aimed along from→tip, length long, with the given acute point angle in
// degrees. barb is the fraction of the triangle cut away from the back:
// 0 gives a solid wedge, 1 an open chevron. The outline runs tip, left
// barb, back notch, right barb. A zero-length shaft yields nil.
func ArrowHead(from, tip Pt, length, angle, barb float64) []Pt {
	dx, dy := tip.X-from.X, tip.Y-from.Y
	d := math.Hypot(dx, dy)
	if d == 0 || length <= 0 {
		return nil
	}
	ux, uy := dx/d, dy/d
	half := angle * math.Pi / 360

	back := func(rot float64) Pt {
		c, s := math.Cos(rot), math.Sin(rot)
		rx, ry := ux*c-uy*s, ux*s+uy*c
		return Pt{X: tip.X - length*rx, Y: tip.Y - length*ry}
	}
	depth := length * math.Cos(half) * (1 - barb)
	notch := Pt{X: tip.X - depth*ux, Y: tip.Y - depth*uy}

	return []Pt{tip, back(half), notch, back(-half)}
}
