package render

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
)

// Camera orients the projection of the 3-D frame onto the page. The viewer
// looks at the origin from the direction given by Longitude (degrees about
// the z axis, from +x toward +y) and Latitude (degrees above the x-y plane).
type Camera struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Frame returns the unit view vector (toward the viewer) and the unit
// vectors of the screen's right and up directions.
func (c Camera) Frame() (view, right, up geom.Point3) {
	lon := c.Longitude * math.Pi / 180
	lat := c.Latitude * math.Pi / 180
	view = geom.P(math.Cos(lat)*math.Cos(lon), math.Cos(lat)*math.Sin(lon), math.Sin(lat))
	right = geom.P(-math.Sin(lon), math.Cos(lon), 0)
	up = view.Cross(right)
	return view, right, up
}

// Project returns the screen coordinates of p and its depth toward the
// viewer. Projection is orthographic; depth only orders points.
func (c Camera) Project(p geom.Point3) (x, y, depth float64) {
	view, right, up := c.Frame()
	return p.Dot(right), p.Dot(up), p.Dot(view)
}
