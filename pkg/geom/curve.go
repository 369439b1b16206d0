package geom

// Curve is a polyline. The first point is a pen-up move; every later point
// is a pen-down segment from its predecessor.
type Curve []Point3

// Closed reports whether the first and last points coincide within tol.
// Curves with fewer than two points are not closed.
func (c Curve) Closed(tol float64) bool {
	if len(c) < 2 {
		return false
	}
	return c[0].Equals(c[len(c)-1], tol)
}

// Polygon is a closed planar outline. Vertex order determines the winding.
type Polygon []Point3

// Edges returns the vertex pairs of the closed boundary, including the
// closing edge from the last vertex back to the first.
func (p Polygon) Edges() [][2]Point3 {
	if len(p) < 2 {
		return nil
	}
	edges := make([][2]Point3, 0, len(p))
	for i := range p {
		edges = append(edges, [2]Point3{p[i], p[(i+1)%len(p)]})
	}
	return edges
}
