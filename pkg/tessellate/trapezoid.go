package tessellate

import "github.com/chazu/polplot/pkg/geom"

// DefaultHatchAngle is the hatch angle of a regime when none is given.
const DefaultHatchAngle = 45.0

// Regime describes one mode block of a regime diagram: a trapezoid standing
// on the base edge Left-Right, Height tall, with its top edge pulled in by
// Inset at each end. Angle selects the hatch direction in degrees; nil means
// DefaultHatchAngle. Angle never affects the vertices.
type Regime struct {
	Left   geom.Point3 `json:"left"`
	Right  geom.Point3 `json:"right"`
	Height float64     `json:"height"`
	Inset  float64     `json:"inset"`
	Angle  *float64    `json:"angle,omitempty"`
}

// HatchAngle returns Angle, or DefaultHatchAngle when unset.
func (r Regime) HatchAngle() float64 {
	if r.Angle == nil {
		return DefaultHatchAngle
	}
	return *r.Angle
}

// WithAngle returns a copy of r hatched at angle degrees.
func (r Regime) WithAngle(angle float64) Regime {
	r.Angle = &angle
	return r
}

// Polygon returns the regime's outline; see Trapezoid.
func (r Regime) Polygon() geom.Polygon {
	return Trapezoid(r.Left, r.Right, r.Height, r.Inset)
}

// Trapezoid returns the four vertices left, right, right+(-inset, 0, height)
// and left+(inset, 0, height). A negative inset flares the top edge outward.
func Trapezoid(left, right geom.Point3, height, inset float64) geom.Polygon {
	return geom.Polygon{
		left,
		right,
		right.Add(geom.P(-inset, 0, height)),
		left.Add(geom.P(inset, 0, height)),
	}
}
