package geom

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point3 is a point or direction in the diagram's 3-D coordinate frame.
// It shares its layout with the sdfx vector so the algebra is delegated.
type Point3 v3.Vec

// Canonical unit directions. Z is the diagram's up axis.
var (
	Origin = Point3{}
	UnitX  = Point3{X: 1}
	UnitY  = Point3{Y: 1}
	UnitZ  = Point3{Z: 1}
)

// P is shorthand for Point3{X: x, Y: y, Z: z}.
func P(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Vec returns p as an sdfx vector.
func (p Point3) Vec() v3.Vec {
	return v3.Vec(p)
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3(v3.Vec(p).Add(v3.Vec(q)))
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3(v3.Vec(p).Sub(v3.Vec(q)))
}

// Scale returns k·p.
func (p Point3) Scale(k float64) Point3 {
	return Point3(v3.Vec(p).MulScalar(k))
}

// Dot returns the scalar product p·q.
func (p Point3) Dot(q Point3) float64 {
	return v3.Vec(p).Dot(v3.Vec(q))
}

// Cross returns the vector product p×q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3(v3.Vec(p).Cross(v3.Vec(q)))
}

// Length returns the Euclidean norm of p.
func (p Point3) Length() float64 {
	return v3.Vec(p).Length()
}

// Equals reports whether every component of p and q differs by at most tol.
func (p Point3) Equals(q Point3, tol float64) bool {
	d := v3.Vec(p).Sub(v3.Vec(q))
	return math.Abs(d.X) <= tol && math.Abs(d.Y) <= tol && math.Abs(d.Z) <= tol
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
