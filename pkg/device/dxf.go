package device

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/chazu/polplot/pkg/render/plot"
)

// DXF layer names.
const (
	layerSolid  = "POLPLOT"
	layerDashed = "POLPLOT-DASHED"
	layerFill   = "POLPLOT-FILL"
	layerText   = "POLPLOT-TEXT"
)

// advance approximates a glyph's width in text heights; DXF viewers lay out
// text themselves so only the justification offset needs it.
const advance = 0.6

// dxfSurface writes the projected drawing in model space with y up and one
// device unit per drawing unit.
type dxfSurface struct {
	path  string
	d     *drawing.Drawing
	w, h  float64
	layer string
	err   error
}

func openDXF(path string, o options) (plot.Surface, error) {
	d := dxf.NewDrawing()
	d.AddLayer(layerSolid, dxf.DefaultColor, dxf.DefaultLineType, false)
	d.AddLayer(layerDashed, dxf.DefaultColor, table.LT_HIDDEN, false)
	d.AddLayer(layerFill, dxf.DefaultColor, dxf.DefaultLineType, false)
	d.AddLayer(layerText, dxf.DefaultColor, dxf.DefaultLineType, false)
	return &dxfSurface{path: path, d: d, w: float64(o.width), h: float64(o.height)}, nil
}

func (s *dxfSurface) Size() (float64, float64) { return s.w, s.h }

func (s *dxfSurface) keep(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *dxfSurface) use(layer string) {
	if s.layer == layer {
		return
	}
	s.keep(s.d.ChangeLayer(layer))
	s.layer = layer
}

func (s *dxfSurface) lines(pts []plot.Pt) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		_, err := s.d.Line(a.X, s.h-a.Y, 0, b.X, s.h-b.Y, 0)
		s.keep(err)
	}
}

func (s *dxfSurface) Polyline(pts []plot.Pt, pen plot.Pen) {
	if len(pen.Dashes) > 0 {
		s.use(layerDashed)
	} else {
		s.use(layerSolid)
	}
	s.lines(pts)
}

// Polygon draws the closed outline on the fill layer.
func (s *dxfSurface) Polygon(pts []plot.Pt) {
	if len(pts) < 2 {
		return
	}
	s.use(layerFill)
	s.lines(append(pts, pts[0]))
}

func (s *dxfSurface) Text(at plot.Pt, runs []plot.Run, just, height float64) {
	str := plot.PlainText(runs)
	if str == "" {
		return
	}
	s.use(layerText)
	x := at.X - float64(len([]rune(str)))*advance*height*just
	_, err := s.d.Text(str, x, s.h-at.Y, 0, height)
	s.keep(err)
}

func (s *dxfSurface) Dot(at plot.Pt, radius float64) {
	s.use(layerFill)
	_, err := s.d.Circle(at.X, s.h-at.Y, 0, radius)
	s.keep(err)
}

func (s *dxfSurface) Close() error {
	if s.err != nil {
		return s.err
	}
	return s.d.SaveAs(s.path)
}
