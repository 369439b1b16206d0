package device

import (
	"bufio"
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/polplot/pkg/render/plot"
)

type svgSurface struct {
	f      *os.File
	buf    *bufio.Writer
	canvas *svg.SVG
	w, h   int
}

func openSVG(path string, o options) (plot.Surface, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	s := &svgSurface{f: f, buf: buf, canvas: svg.New(buf), w: o.width, h: o.height}
	s.canvas.Start(s.w, s.h)
	s.canvas.Rect(0, 0, s.w, s.h, "fill:white")
	return s, nil
}

func (s *svgSurface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func ints(pts []plot.Pt) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(math.Round(p.X))
		ys[i] = int(math.Round(p.Y))
	}
	return xs, ys
}

func strokeStyle(pen plot.Pen) string {
	style := fmt.Sprintf("fill:none;stroke:black;stroke-width:%.2f;stroke-linecap:round;stroke-linejoin:round", pen.Width)
	if len(pen.Dashes) > 0 {
		parts := make([]string, len(pen.Dashes))
		for i, d := range pen.Dashes {
			parts[i] = fmt.Sprintf("%.1f", d)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
	}
	return style
}

func (s *svgSurface) Polyline(pts []plot.Pt, pen plot.Pen) {
	xs, ys := ints(pts)
	s.canvas.Polyline(xs, ys, strokeStyle(pen))
}

func (s *svgSurface) Polygon(pts []plot.Pt) {
	xs, ys := ints(pts)
	s.canvas.Polygon(xs, ys, "fill:black;stroke:none")
}

func anchor(just float64) string {
	switch {
	case just < 0.25:
		return "start"
	case just > 0.75:
		return "end"
	default:
		return "middle"
	}
}

// Text writes a <text> element with one <tspan> per run; svgo has no
// helper for mixed-style spans.
func (s *svgSurface) Text(at plot.Pt, runs []plot.Run, just, height float64) {
	w := s.canvas.Writer
	fmt.Fprintf(w, `<text x="%.1f" y="%.1f" style="font-family:serif;font-size:%.1fpx;text-anchor:%s">`,
		at.X, at.Y, height, anchor(just))
	shift := 0
	for _, r := range runs {
		var attrs []string
		if r.Italic {
			attrs = append(attrs, `font-style="italic"`)
		}
		if d := r.Shift - shift; d != 0 {
			attrs = append(attrs, fmt.Sprintf(`dy="%.1f"`, -float64(d)*height/2))
			shift = r.Shift
		}
		if r.Shift != 0 {
			attrs = append(attrs, `font-size="70%"`)
		}
		fmt.Fprintf(w, "<tspan %s>%s</tspan>", strings.Join(attrs, " "), html.EscapeString(r.Text))
	}
	fmt.Fprintln(w, "</text>")
}

func (s *svgSurface) Dot(at plot.Pt, radius float64) {
	r := int(math.Max(1, math.Round(radius)))
	s.canvas.Circle(int(math.Round(at.X)), int(math.Round(at.Y)), r, "fill:black")
}

func (s *svgSurface) Close() error {
	s.canvas.End()
	err := s.buf.Flush()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}
