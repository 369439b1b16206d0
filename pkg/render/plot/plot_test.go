package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

// fakeSurface records every primitive it receives.
type fakeSurface struct {
	w, h      float64
	polylines [][]Pt
	pens      []Pen
	polygons  [][]Pt
	texts     []string
	justs     []float64
	dots      []Pt
	radii     []float64
	closed    bool
	closeErr  error
}

func (f *fakeSurface) Size() (float64, float64) { return f.w, f.h }

func (f *fakeSurface) Polyline(pts []Pt, pen Pen) {
	f.polylines = append(f.polylines, append([]Pt(nil), pts...))
	f.pens = append(f.pens, pen)
}

func (f *fakeSurface) Polygon(pts []Pt) {
	f.polygons = append(f.polygons, append([]Pt(nil), pts...))
}

func (f *fakeSurface) Text(at Pt, runs []Run, just, height float64) {
	f.texts = append(f.texts, PlainText(runs))
	f.justs = append(f.justs, just)
}

func (f *fakeSurface) Dot(at Pt, radius float64) {
	f.dots = append(f.dots, at)
	f.radii = append(f.radii, radius)
}

func (f *fakeSurface) Close() error {
	f.closed = true
	return f.closeErr
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestWindowAspect(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		xmax, ymax float64
	}{
		{"square", 400, 400, 5, 5},
		{"landscape", 800, 400, 10, 5},
		{"portrait", 400, 800, 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&fakeSurface{w: tt.w, h: tt.h}, WithWindow(5))
			xmin, xmax, ymin, ymax := p.Window()
			if !near(xmax, tt.xmax) || !near(ymax, tt.ymax) {
				t.Errorf("window = (%g, %g), want (%g, %g)", xmax, ymax, tt.xmax, tt.ymax)
			}
			if !near(xmin, -xmax) || !near(ymin, -ymax) {
				t.Errorf("window not centred: %g %g %g %g", xmin, xmax, ymin, ymax)
			}
			if !near(p.AspectRatio(), tt.h/tt.w) {
				t.Errorf("AspectRatio = %g", p.AspectRatio())
			}
		})
	}
}

func TestDrawBuffersPolyline(t *testing.T) {
	f := &fakeSurface{w: 100, h: 100}
	p := New(f)
	p.SetCamera(-90, 0) // x right, z up

	p.Move(geom.P(0, 0, 0))
	p.Draw(geom.P(1, 0, 0))
	p.Draw(geom.P(1, 0, 1))
	p.Move(geom.P(2, 0, 0))
	p.Draw(geom.P(3, 0, 0))
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	if len(f.polylines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(f.polylines))
	}
	if len(f.polylines[0]) != 3 {
		t.Errorf("first polyline has %d points, want 3", len(f.polylines[0]))
	}
	// origin maps to the centre, +x to the right, +z up
	first := f.polylines[0]
	if !near(first[0].X, 50) || !near(first[0].Y, 50) {
		t.Errorf("origin at %v, want centre", first[0])
	}
	if !(first[1].X > first[0].X) {
		t.Errorf("+x should map right: %v", first)
	}
	if !(first[2].Y < first[1].Y) {
		t.Errorf("+z should map up: %v", first)
	}
	if !f.closed {
		t.Error("surface not closed")
	}
}

func TestMoveAloneDrawsNothing(t *testing.T) {
	f := &fakeSurface{w: 100, h: 100}
	p := New(f)
	p.Move(geom.P(1, 1, 1))
	p.Move(geom.P(2, 2, 2))
	p.Close()
	if len(f.polylines) != 0 {
		t.Errorf("got %d polylines, want 0", len(f.polylines))
	}
}

func TestLineStyleFlushes(t *testing.T) {
	f := &fakeSurface{w: 100, h: 100}
	p := New(f)
	p.Move(geom.P(0, 0, 0))
	p.Draw(geom.P(1, 0, 0))
	p.SetLineStyle(render.LineDashed)
	p.Draw(geom.P(2, 0, 0))
	p.Close()

	if len(f.polylines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(f.polylines))
	}
	if f.pens[0].Dashes != nil {
		t.Error("first run should be solid")
	}
	if f.pens[1].Dashes == nil {
		t.Error("second run should be dashed")
	}
	// the dashed run continues from the pen position
	if f.polylines[1][0] != f.polylines[0][1] {
		t.Errorf("dashed run starts at %v, want %v", f.polylines[1][0], f.polylines[0][1])
	}
}

func TestPolyFillStyles(t *testing.T) {
	square := []geom.Point3{
		geom.P(-1, 0, -1), geom.P(1, 0, -1), geom.P(1, 0, 1), geom.P(-1, 0, 1),
	}
	tests := []struct {
		fill          render.FillStyle
		polygons      int
		minPolylines  int
		exactPolyline int
	}{
		{render.FillSolid, 1, 0, 0},
		{render.FillOutline, 0, 1, 1},
		{render.FillHatched, 0, 1, -1},
		{render.FillCrossHatched, 0, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.fill.String(), func(t *testing.T) {
			f := &fakeSurface{w: 200, h: 200}
			p := New(f)
			p.SetCamera(-90, 0)
			p.SetFillStyle(tt.fill)
			p.Poly(square)
			p.Close()
			if len(f.polygons) != tt.polygons {
				t.Errorf("polygons = %d, want %d", len(f.polygons), tt.polygons)
			}
			if len(f.polylines) < tt.minPolylines {
				t.Errorf("polylines = %d, want at least %d", len(f.polylines), tt.minPolylines)
			}
			if tt.exactPolyline >= 0 && len(f.polylines) != tt.exactPolyline {
				t.Errorf("polylines = %d, want %d", len(f.polylines), tt.exactPolyline)
			}
		})
	}
}

func TestCrossHatchDoublesLines(t *testing.T) {
	square := []geom.Point3{
		geom.P(-1, 0, -1), geom.P(1, 0, -1), geom.P(1, 0, 1), geom.P(-1, 0, 1),
	}
	count := func(fill render.FillStyle) int {
		f := &fakeSurface{w: 200, h: 200}
		p := New(f)
		p.SetCamera(-90, 0)
		p.SetFillStyle(fill)
		p.SetHatch(render.HatchStyle{Angle: 0, Separation: 2, Phase: 0.5})
		p.Poly(square)
		p.Close()
		return len(f.polylines)
	}
	single, cross := count(render.FillHatched), count(render.FillCrossHatched)
	if cross != 2*single {
		t.Errorf("cross-hatch = %d lines, want 2 × %d", cross, single)
	}
}

func TestArrowHeadFill(t *testing.T) {
	for _, fill := range []render.FillStyle{render.FillSolid, render.FillOutline} {
		t.Run(fill.String(), func(t *testing.T) {
			f := &fakeSurface{w: 100, h: 100}
			p := New(f)
			p.SetArrowStyle(render.ArrowStyle{Fill: fill, Angle: 45, Barb: 0.3})
			p.Arrow(geom.P(0, -1, 0), geom.P(0, 1, 0))
			p.Close()
			wantPolygons, wantLines := 1, 1
			if fill != render.FillSolid {
				wantPolygons, wantLines = 0, 2
			}
			if len(f.polygons) != wantPolygons || len(f.polylines) != wantLines {
				t.Errorf("polygons=%d polylines=%d, want %d %d",
					len(f.polygons), len(f.polylines), wantPolygons, wantLines)
			}
		})
	}
}

func TestTextAndDot(t *testing.T) {
	f := &fakeSurface{w: 400, h: 400}
	p := New(f)
	p.SetCharHeight(2)
	p.Text(geom.Origin, `\fiE\fn\d0`, 1)
	p.Dot(geom.Origin)
	p.Close()

	if len(f.texts) != 1 || f.texts[0] != "E0" {
		t.Errorf("texts = %q", f.texts)
	}
	if f.justs[0] != 1 {
		t.Errorf("just = %g", f.justs[0])
	}
	if len(f.dots) != 1 {
		t.Fatalf("dots = %d", len(f.dots))
	}
	// 400/40 per unit height, doubled, times dotScale
	if want := dotScale * 2 * 10; !near(f.radii[0], want) {
		t.Errorf("dot radius = %g, want %g", f.radii[0], want)
	}
}

func TestCloseReturnsSurfaceError(t *testing.T) {
	want := errors.New("disk full")
	p := New(&fakeSurface{w: 10, h: 10, closeErr: want})
	if err := p.Close(); !errors.Is(err, want) {
		t.Errorf("Close = %v, want %v", err, want)
	}
}

func TestHatchSegmentsInside(t *testing.T) {
	poly := []Pt{{0, 0}, {10, 0}, {8, 5}, {2, 5}}
	for _, angle := range []float64{0, 45, -45, 90, 30} {
		segs := Hatch(poly, angle, 0.7, 0.5)
		if len(segs) == 0 {
			t.Fatalf("angle %g: no segments", angle)
		}
		for _, s := range segs {
			mid := Pt{X: (s[0].X + s[1].X) / 2, Y: (s[0].Y + s[1].Y) / 2}
			if !Inside(poly, mid) {
				t.Errorf("angle %g: segment %v midpoint outside", angle, s)
			}
		}
	}
}

func TestHatchCount(t *testing.T) {
	square := []Pt{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	// horizontal lines at y = 0.5, 1.5, ... 9.5
	segs := Hatch(square, 0, 1, 0.5)
	if len(segs) != 10 {
		t.Fatalf("got %d segments, want 10", len(segs))
	}
	for _, s := range segs {
		if !near(math.Abs(s[1].X-s[0].X), 10) {
			t.Errorf("segment %v should span the square", s)
		}
	}
}

func TestHatchConcave(t *testing.T) {
	// U shape: a horizontal line through both arms yields two segments.
	u := []Pt{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}}
	segs := Hatch(u, 0, 1, 0.5)
	var upper int
	for _, s := range segs {
		if s[0].Y > 1 {
			upper++
		}
	}
	if upper != 4 {
		t.Errorf("got %d segments in the arms, want 4", upper)
	}
}

func TestHatchDegenerate(t *testing.T) {
	if Hatch([]Pt{{0, 0}, {1, 1}}, 45, 1, 0) != nil {
		t.Error("two-point polygon should not hatch")
	}
	if Hatch([]Pt{{0, 0}, {1, 0}, {0, 1}}, 45, 0, 0) != nil {
		t.Error("zero spacing should not hatch")
	}
}

func TestArrowHead(t *testing.T) {
	head := ArrowHead(Pt{0, 0}, Pt{10, 0}, 2, 90, 0)
	if len(head) != 4 {
		t.Fatalf("got %d points", len(head))
	}
	if head[0] != (Pt{10, 0}) {
		t.Errorf("tip = %v", head[0])
	}
	// 45° each side of the shaft
	h := 2 / math.Sqrt2
	if !near(head[1].X, 10-h) || !near(math.Abs(head[1].Y), h) {
		t.Errorf("barb = %v", head[1])
	}
	if !near(head[1].Y, -head[3].Y) {
		t.Errorf("barbs not symmetric: %v %v", head[1], head[3])
	}
	if !near(head[2].X, 10-h) || !near(head[2].Y, 0) {
		t.Errorf("notch = %v for a solid wedge", head[2])
	}

	chevron := ArrowHead(Pt{0, 0}, Pt{10, 0}, 2, 90, 1)
	if !near(chevron[2].X, 10) {
		t.Errorf("chevron notch = %v, want at the tip", chevron[2])
	}

	if ArrowHead(Pt{1, 1}, Pt{1, 1}, 2, 45, 0) != nil {
		t.Error("zero-length shaft should give no head")
	}
}

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want []Run
	}{
		{"plain", []Run{{Text: "plain"}}},
		{`\fiE\fn\d0`, []Run{{Text: "E", Italic: true}, {Text: "0", Shift: -1}}},
		{`x\u2\d+1`, []Run{{Text: "x"}, {Text: "2", Shift: 1}, {Text: "+1"}}},
		{`a\\b`, []Run{{Text: `a\b`}}},
		{`\q`, []Run{{Text: `\q`}}},
		{`end\`, []Run{{Text: `end\`}}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseMarkup(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseMarkup(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
