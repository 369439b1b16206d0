package render

import (
	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/tessellate"
)

// DrawCurve issues c as a move to its first point followed by draws.
func DrawCurve(r Renderer, c geom.Curve) {
	for i, p := range c {
		if i == 0 {
			r.Move(p)
		} else {
			r.Draw(p)
		}
	}
}

// DrawCurves issues each curve in order.
func DrawCurves(r Renderer, cs []geom.Curve) {
	for _, c := range cs {
		DrawCurve(r, c)
	}
}

// DrawLine draws the single segment from a to b.
func DrawLine(r Renderer, a, b geom.Point3) {
	r.Move(a)
	r.Draw(b)
}

// DrawEllipsoid tessellates and draws an ellipsoid wireframe.
func DrawEllipsoid(r Renderer, center geom.Point3, axes geom.Semiaxes) {
	DrawCurves(r, tessellate.Ellipsoid(center, axes))
}

// DrawRegime renders the regime's trapezoid in two passes: first hatched at
// the regime's hatch angle, then outlined, so the block reads as a shaded
// quadrilateral with a crisp border. The fill style is left as outline.
func DrawRegime(r Renderer, reg tessellate.Regime) {
	poly := reg.Polygon()

	r.SetFillStyle(FillHatched)
	r.SetHatch(HatchStyle{Angle: reg.HatchAngle(), Separation: 1, Phase: 0})
	r.Poly(poly)

	r.SetFillStyle(FillOutline)
	r.Poly(poly)
}
