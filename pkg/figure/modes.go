package figure

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

const (
	modesWindow = 5.0

	dotHeight  = 8.0
	axisLength = 3.0
	labelX     = -4.5
)

// Mode row heights.
const (
	rowSingle     = 3.0
	rowDisjoint   = 1.5
	rowComposite  = 0.0
	rowSuperposed = -2.5
)

// Stokes parameters of the sample mode.
const (
	stokesI = 0.8
	stokesP = 0.7
)

// modeAxes returns the coherency ellipsoid of a mode with total intensity s0
// and polarized intensity p: elongated along x by √(s0²+p²), with the two
// transverse semiaxes √(s0²−p²).
func modeAxes(s0, p float64) geom.Semiaxes {
	norm := math.Sqrt(s0*s0 + p*p)
	inv := math.Sqrt(s0*s0 - p*p)
	return geom.Aligned(norm, inv, inv)
}

func drawAxis(r render.Renderer, z, length float64) {
	r.SetLineStyle(render.LineDashed)
	render.DrawLine(r, geom.P(-length, 0, z), geom.P(length, 0, z))
	r.SetLineStyle(render.LineSolid)
}

// modeRow draws the ellipsoids of one row, then its origin marker and axis.
func modeRow(r render.Renderer, name string, z float64, axes geom.Semiaxes, xs ...float64) {
	panel(r, name)
	for _, x := range xs {
		render.DrawEllipsoid(r, geom.P(x, 0, z), axes)
	}
	r.SetCharHeight(dotHeight)
	r.Dot(geom.P(0, 0, z))
	drawAxis(r, z, axisLength)
}

// Modes draws the four mode configurations as coherency ellipsoids viewed
// side-on: a single mode, two disjoint modes, their composite and the
// unpolarized superposition.
func Modes(r render.Renderer) {
	r.SetCamera(90, 0)

	axes := modeAxes(stokesI, stokesP)
	modeRow(r, "single", rowSingle, axes, 1.5)
	modeRow(r, "disjoint", rowDisjoint, axes, -1.5, 1.5)
	modeRow(r, "composite", rowComposite, axes, 0)
	modeRow(r, "superposed", rowSuperposed, modeAxes(2*stokesI, 0), 0)

	panel(r, "labels")
	r.SetCharHeight(1)
	r.SetCamera(90, 0)
	const offset = 0.25
	r.Text(geom.P(labelX, 0, rowSingle+offset), "Single Mode", 1)
	r.Text(geom.P(labelX, 0, rowDisjoint+offset), "Disjoint", 1)
	r.Text(geom.P(labelX, 0, rowComposite+offset), "Composite", 1)
	r.Text(geom.P(labelX, 0, rowSuperposed+offset), "Superposed", 1)
}
