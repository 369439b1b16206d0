package figure

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
	"github.com/chazu/polplot/pkg/tessellate"
)

const regimesWindow = 6.0

// Regime row layout. Each row has a left and a right block separated by
// blockGap; composite rows split each block at compositeSplit.
const (
	rowRegimeSuperposed = -1.5

	blockLeft      = -2.0
	blockWidth     = 2.0
	blockGap       = 0.1
	compositeSplit = 1.2
)

// Stokes sample annotation.
const (
	sampleSeparation = 0.25
	sampleHeight     = 4.5 + sampleSeparation
	sampleStart      = -2.0 + sampleSeparation/2
	sampleEnd        = 0.0
	intWidth         = 0.3
)

// regimeGeometry returns the block height and top inset shared by every
// regime, derived from the sample mode's Stokes parameters.
func regimeGeometry() (height, inset float64) {
	norm := math.Sqrt(stokesI*stokesI + stokesP*stokesP)
	return norm, norm / 8
}

// Regimes draws the time-domain regimes of the four mode configurations
// as hatched trapezoids, with the Stokes sample annotation above them.
// Hatch direction marks the mode: 45° for one, -45° for the other.
func Regimes(r render.Renderer) {
	r.SetCamera(-90, 0)
	height, inset := regimeGeometry()

	stokesSample(r, height)

	left0 := blockLeft
	left1 := left0 + blockWidth
	right0 := left1 + blockGap
	right1 := right0 + blockWidth

	block := func(x0, x1, z float64) tessellate.Regime {
		return tessellate.Regime{
			Left:   geom.P(x0, 0, z),
			Right:  geom.P(x1, 0, z),
			Height: height,
			Inset:  inset,
		}
	}

	panel(r, "single")
	render.DrawRegime(r, block(left0, left1, rowSingle))
	render.DrawRegime(r, block(right0, right1, rowSingle))

	panel(r, "disjoint")
	render.DrawRegime(r, block(left0, left1, rowDisjoint))
	render.DrawRegime(r, block(right0, right1, rowDisjoint).WithAngle(-45))

	panel(r, "composite")
	render.DrawRegime(r, block(left0, left0+compositeSplit, rowComposite))
	render.DrawRegime(r, block(left0+compositeSplit, left1, rowComposite).WithAngle(-45))
	render.DrawRegime(r, block(right0, right0+compositeSplit, rowComposite))
	render.DrawRegime(r, block(right0+compositeSplit, right1, rowComposite).WithAngle(-45))

	// Superposed blocks are cross-hatched by overlaying both directions.
	panel(r, "superposed")
	z := rowRegimeSuperposed
	render.DrawRegime(r, block(left0, left1, z))
	render.DrawRegime(r, block(left0, left1, z).WithAngle(-45))
	render.DrawRegime(r, block(right0, right1, z))
	render.DrawRegime(r, block(right0, right1, z).WithAngle(-45))

	panel(r, "labels")
	r.SetCamera(-90, 0)
	r.Text(geom.P(labelX, 0, rowSingle+height/2), "Single Mode", 0)
	r.Text(geom.P(labelX, 0, rowDisjoint+height/2), "Disjoint", 0)
	r.Text(geom.P(labelX, 0, rowComposite+height/2), "Composite", 0)
	r.Text(geom.P(labelX, 0, z+height/2), "Superposed", 0)

	r.SetLineStyle(render.LineDashed)
	x := left1 + blockGap/2
	render.DrawLine(r, geom.P(x, 0, z), geom.P(x, 0, rowSingle+height))
}

// stokesSample draws the row of sample arrows with the sampling interval
// t_samp and integration time T_int marked above and below it.
func stokesSample(r render.Renderer, height float64) {
	panel(r, "stokes-sample")
	sep := sampleSeparation

	r.SetCharHeight(0.5)
	r.SetArrowStyle(render.ArrowStyle{Fill: render.FillOutline, Angle: 45, Barb: 1})
	for s := sampleStart; s <= sampleEnd; s += sep {
		r.Arrow(geom.P(s, 0, sampleHeight), geom.P(s, 0, sampleHeight+height/2))
	}

	r.SetArrowStyle(render.ArrowStyle{Fill: render.FillSolid, Angle: 45, Barb: 0})

	tSamp := sampleHeight + height/2 + sep
	r.Arrow(geom.P(sampleStart-2*sep, 0, tSamp), geom.P(sampleStart, 0, tSamp))
	r.Arrow(geom.P(sampleStart+3*sep, 0, tSamp), geom.P(sampleStart+sep, 0, tSamp))

	tInt := sampleHeight - sep
	r.Arrow(geom.P(-1-intWidth, 0, tInt), geom.P(-2, 0, tInt))
	r.Arrow(geom.P(-1+intWidth, 0, tInt), geom.P(0, 0, tInt))

	r.SetCharHeight(0.75)
	r.Text(geom.P(labelX, 0, sampleHeight+height/6), "Stokes Sample", 0)
	r.Text(geom.P(sampleStart+3.5*sep, 0, tSamp), `\fit\fr\dsamp`, 0)
	r.Text(geom.P(-1, 0, tInt-sep/4), `\fiT\fr\dint`, 0.5)
}
