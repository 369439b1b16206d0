package tessellate

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
)

// EllipsoidCurves is the number of curves in every ellipsoid wireframe.
const EllipsoidCurves = 180/MeridianStep + 150/ParallelStep

// Ellipsoid returns the wireframe of the ellipsoid centred on center with the
// given semi-axes: the meridians through axis 0 followed by the parallels
// stacked along it. The semi-axes are assumed mutually orthogonal.
func Ellipsoid(center geom.Point3, axes geom.Semiaxes) []geom.Curve {
	curves := make([]geom.Curve, 0, EllipsoidCurves)
	curves = append(curves, Meridians(center, axes)...)
	curves = append(curves, Parallels(center, axes)...)
	return curves
}

// Meridians returns the lines of longitude, 0° <= φ < 180°.
//
// The secondary axis of each meridian already carries its extent, so it is
// passed to Ellipse with a radius of exactly 1.
func Meridians(center geom.Point3, axes geom.Semiaxes) []geom.Curve {
	var curves []geom.Curve
	for deg := 0; deg < 180; deg += MeridianStep {
		phi := radians(deg)
		other := axes[1].Dir.Scale(axes[1].Length * math.Cos(phi)).
			Add(axes[2].Dir.Scale(axes[2].Length * math.Sin(phi)))
		curves = append(curves, Ellipse(center, axes[0].Dir, axes[0].Length, other, 1.0))
	}
	return curves
}

// Parallels returns the lines of latitude, -60° <= λ < 90°.
func Parallels(center geom.Point3, axes geom.Semiaxes) []geom.Curve {
	var curves []geom.Curve
	for deg := -60; deg < 90; deg += ParallelStep {
		lambda := radians(deg)
		c := center.Add(axes[0].Dir.Scale(axes[0].Length * math.Sin(lambda)))
		a1 := axes[1].Length * math.Cos(lambda)
		a2 := axes[2].Length * math.Cos(lambda)
		curves = append(curves, Ellipse(c, axes[1].Dir, a1, axes[2].Dir, a2))
	}
	return curves
}
