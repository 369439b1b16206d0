package device

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/chazu/polplot/pkg/render/plot"
)

// subScale is the size of sub- and superscript runs relative to the label.
const subScale = 0.7

type faceKey struct {
	size   float64
	italic bool
}

type pngSurface struct {
	path   string
	dc     *gg.Context
	w, h   int
	roman  *text.FontSource
	italic *text.FontSource
	faces  map[faceKey]text.Face
	err    error
}

func openPNG(path string, o options) (plot.Surface, error) {
	roman, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	italic, err := text.NewFontSource(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	// Fail early on an unwritable path rather than after rendering.
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	return &pngSurface{
		path:   path,
		dc:     dc,
		w:      o.width,
		h:      o.height,
		roman:  roman,
		italic: italic,
		faces:  make(map[faceKey]text.Face),
	}, nil
}

func (s *pngSurface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func (s *pngSurface) keep(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *pngSurface) path2d(pts []plot.Pt) {
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
}

func (s *pngSurface) Polyline(pts []plot.Pt, pen plot.Pen) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetLineWidth(pen.Width)
	if len(pen.Dashes) > 0 {
		s.dc.SetDash(pen.Dashes...)
	} else {
		s.dc.ClearDash()
	}
	s.path2d(pts)
	s.keep(s.dc.Stroke())
}

func (s *pngSurface) Polygon(pts []plot.Pt) {
	if len(pts) < 3 {
		return
	}
	s.path2d(pts)
	s.dc.ClosePath()
	s.keep(s.dc.Fill())
}

func (s *pngSurface) face(size float64, italic bool) text.Face {
	k := faceKey{size: size, italic: italic}
	if f, ok := s.faces[k]; ok {
		return f
	}
	src := s.roman
	if italic {
		src = s.italic
	}
	f := src.Face(size)
	s.faces[k] = f
	return f
}

// Text lays out runs left to right from a baseline origin shifted by the
// justification.
func (s *pngSurface) Text(at plot.Pt, runs []plot.Run, just, height float64) {
	size := func(r plot.Run) float64 {
		if r.Shift != 0 {
			return height * subScale
		}
		return height
	}

	var total float64
	for _, r := range runs {
		w, _ := text.Measure(r.Text, s.face(size(r), r.Italic))
		total += w
	}

	x := at.X - total*just
	for _, r := range runs {
		f := s.face(size(r), r.Italic)
		s.dc.SetFont(f)
		s.dc.DrawString(r.Text, x, at.Y-float64(r.Shift)*height/2)
		w, _ := text.Measure(r.Text, f)
		x += w
	}
}

func (s *pngSurface) Dot(at plot.Pt, radius float64) {
	s.dc.DrawCircle(at.X, at.Y, radius)
	s.keep(s.dc.Fill())
}

func (s *pngSurface) Close() error {
	defer s.dc.Close()
	if s.err != nil {
		return fmt.Errorf("png: %w", s.err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = s.dc.EncodePNG(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
