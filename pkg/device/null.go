package device

import "github.com/chazu/polplot/pkg/render/plot"

// nullSurface accepts everything and writes nothing.
type nullSurface struct {
	w, h       float64
	primitives int
}

func openNull(_ string, o options) (plot.Surface, error) {
	return &nullSurface{w: float64(o.width), h: float64(o.height)}, nil
}

func (n *nullSurface) Size() (float64, float64)                   { return n.w, n.h }
func (n *nullSurface) Polyline([]plot.Pt, plot.Pen)               { n.primitives++ }
func (n *nullSurface) Polygon([]plot.Pt)                          { n.primitives++ }
func (n *nullSurface) Text(plot.Pt, []plot.Run, float64, float64) { n.primitives++ }
func (n *nullSurface) Dot(plot.Pt, float64)                       { n.primitives++ }

func (n *nullSurface) Close() error {
	plot.Logger().Debug("device: null surface closed", "primitives", n.primitives)
	return nil
}
