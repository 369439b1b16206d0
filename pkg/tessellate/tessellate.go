// Package tessellate turns the physical parameters of a polarization-mode
// diagram into drawable geometry: ellipses, wireframe ellipsoids and regime
// trapezoids. Every function is pure; rendering is left to the caller.
package tessellate

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
)

// Fixed angular steps, in degrees. The density is chosen for legibility of
// the printed figure, not for numerical accuracy.
const (
	EllipseStep  = 2
	MeridianStep = 30
	ParallelStep = 30
)

// EllipseSamples is the number of points on every ellipse curve.
const EllipseSamples = 360/EllipseStep + 1

// radians converts whole degrees to radians.
func radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Ellipse samples center + a·cos(θ)·axisA + b·sin(θ)·axisB for θ from 0° to
// 360° inclusive. The axes need not be orthogonal; a sheared basis yields a
// sheared closed loop. A zero radius collapses the loop onto a segment.
func Ellipse(center, axisA geom.Point3, a float64, axisB geom.Point3, b float64) geom.Curve {
	c := make(geom.Curve, 0, EllipseSamples)
	for deg := 0; deg <= 360; deg += EllipseStep {
		theta := radians(deg)
		p := center.
			Add(axisA.Scale(a * math.Cos(theta))).
			Add(axisB.Scale(b * math.Sin(theta)))
		c = append(c, p)
	}
	return c
}
