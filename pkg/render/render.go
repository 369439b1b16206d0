// Package render defines the abstract drawing interface consumed by the
// diagram generators. Implementations (the recording Diagram, the projecting
// Plotter behind each output device) perform the actual drawing behind this
// interface, so figures can be produced without knowing the backend.
package render

import "github.com/chazu/polplot/pkg/geom"

// Renderer receives primitive 3-D drawing instructions. Calls never fail;
// backends that can fail report the first error when they are closed.
//
// A Renderer is single-writer state owned by the caller: style setters
// affect every later primitive until changed again.
type Renderer interface {
	// Pen movement
	Move(p geom.Point3)
	Draw(p geom.Point3)

	// Primitives
	Poly(vertices []geom.Point3)
	Arrow(from, to geom.Point3)
	Text(at geom.Point3, s string, just float64)
	Dot(at geom.Point3)

	// Projection
	SetCamera(longitude, latitude float64) // degrees

	// Style state
	SetLineStyle(s LineStyle)
	SetLineWidth(w float64)
	SetFillStyle(s FillStyle)
	SetHatch(h HatchStyle)
	SetArrowStyle(a ArrowStyle)
	SetCharHeight(h float64)
}
