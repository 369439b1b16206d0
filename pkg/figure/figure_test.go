package figure_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/chazu/polplot/pkg/figure"
	"github.com/chazu/polplot/pkg/render/plot"
	"github.com/chazu/polplot/pkg/scene"
	"github.com/chazu/polplot/pkg/tessellate"
)

func record(t *testing.T, name string) *scene.Diagram {
	t.Helper()
	f, err := figure.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return f.Record()
}

func TestLookup(t *testing.T) {
	if got := figure.Names(); !reflect.DeepEqual(got, []string{"modes", "regimes"}) {
		t.Errorf("Names = %v", got)
	}
	if _, err := figure.Lookup("spirals"); !errors.Is(err, figure.ErrUnknownFigure) {
		t.Errorf("Lookup(spirals) error = %v", err)
	}
}

func TestModesCounts(t *testing.T) {
	d := record(t, "modes")
	c := d.Counts()

	// five ellipsoids of eleven curves, plus four dashed axes
	curves := 5 * tessellate.EllipsoidCurves
	if got, want := c[scene.OpMove], curves+4; got != want {
		t.Errorf("moves = %d, want %d", got, want)
	}
	if got, want := c[scene.OpDraw], curves*(tessellate.EllipseSamples-1)+4; got != want {
		t.Errorf("draws = %d, want %d", got, want)
	}
	if c[scene.OpDot] != 4 {
		t.Errorf("dots = %d, want 4", c[scene.OpDot])
	}
	if c[scene.OpText] != 4 {
		t.Errorf("labels = %d, want 4", c[scene.OpText])
	}
	if c[scene.OpPoly] != 0 || c[scene.OpArrow] != 0 {
		t.Errorf("unexpected polys or arrows: %v", c)
	}
	if d.Window != 5 {
		t.Errorf("window = %g, want 5", d.Window)
	}
}

func TestModesPanels(t *testing.T) {
	d := record(t, "modes")
	for _, name := range []string{"single", "disjoint", "composite", "superposed", "labels"} {
		if d.Lookup(name) == nil {
			t.Errorf("missing panel %q", name)
		}
	}
	// the disjoint row has two ellipsoids
	var moves int
	for _, op := range d.Lookup("disjoint").Ops {
		if op.Kind == scene.OpMove {
			moves++
		}
	}
	if moves != 2*tessellate.EllipsoidCurves+1 {
		t.Errorf("disjoint moves = %d", moves)
	}
}

func TestModesBounds(t *testing.T) {
	d := record(t, "modes")
	box, ok := d.Bounds()
	if !ok {
		t.Fatal("no geometry")
	}
	// superposed sphere of radius 1.6 centred at z = -2.5
	if math.Abs(box.Min.Z-(-4.1)) > 1e-9 {
		t.Errorf("min z = %g, want -4.1", box.Min.Z)
	}
	if box.Min.X > -4.5 || box.Max.X < 3 {
		t.Errorf("x range [%g, %g] too narrow", box.Min.X, box.Max.X)
	}
}

func TestRegimesCounts(t *testing.T) {
	d := record(t, "regimes")
	c := d.Counts()

	// twelve regimes, each hatched then outlined
	if c[scene.OpPoly] != 24 {
		t.Errorf("polys = %d, want 24", c[scene.OpPoly])
	}
	// eight sample arrows and four dimension arrows
	if c[scene.OpArrow] != 12 {
		t.Errorf("arrows = %d, want 12", c[scene.OpArrow])
	}
	// three annotation labels and four row labels
	if c[scene.OpText] != 7 {
		t.Errorf("labels = %d, want 7", c[scene.OpText])
	}
	if c[scene.OpMove] != 1 || c[scene.OpDraw] != 1 {
		t.Errorf("divider: moves=%d draws=%d", c[scene.OpMove], c[scene.OpDraw])
	}
	if d.Window != 6 {
		t.Errorf("window = %g, want 6", d.Window)
	}
}

func TestRegimesHatchAngles(t *testing.T) {
	d := record(t, "regimes")
	want := map[string][]float64{
		"single":     {45, 45},
		"disjoint":   {45, -45},
		"composite":  {45, -45, 45, -45},
		"superposed": {45, -45, 45, -45},
	}
	for name, angles := range want {
		p := d.Lookup(name)
		if p == nil {
			t.Fatalf("missing panel %q", name)
		}
		var got []float64
		for _, op := range p.Ops {
			if op.Kind == scene.OpHatch {
				got = append(got, op.Hatch.Angle)
			}
		}
		if !reflect.DeepEqual(got, angles) {
			t.Errorf("%s hatch angles = %v, want %v", name, got, angles)
		}
	}
}

func TestRegimesTrapezoidShape(t *testing.T) {
	d := record(t, "regimes")
	norm := math.Sqrt(0.8*0.8 + 0.7*0.7)
	for _, op := range d.Lookup("single").Ops {
		if op.Kind != scene.OpPoly {
			continue
		}
		v := op.Points
		if len(v) != 4 {
			t.Fatalf("poly has %d vertices", len(v))
		}
		if math.Abs(v[2].Z-v[1].Z-norm) > 1e-12 {
			t.Errorf("height = %g, want %g", v[2].Z-v[1].Z, norm)
		}
		if math.Abs(v[1].X-v[2].X-norm/8) > 1e-12 {
			t.Errorf("inset = %g, want %g", v[1].X-v[2].X, norm/8)
		}
	}
}

// countingSurface tallies what reaches the device.
type countingSurface struct {
	lines, polys, texts, dots int
}

func (c *countingSurface) Size() (float64, float64)                   { return 800, 600 }
func (c *countingSurface) Polyline([]plot.Pt, plot.Pen)               { c.lines++ }
func (c *countingSurface) Polygon([]plot.Pt)                          { c.polys++ }
func (c *countingSurface) Text(plot.Pt, []plot.Run, float64, float64) { c.texts++ }
func (c *countingSurface) Dot(plot.Pt, float64)                       { c.dots++ }
func (c *countingSurface) Close() error                               { return nil }

func TestFiguresPlot(t *testing.T) {
	for _, name := range figure.Names() {
		t.Run(name, func(t *testing.T) {
			f, _ := figure.Lookup(name)
			s := &countingSurface{}
			p := plot.New(s, plot.WithWindow(f.Window))
			f.Draw(p)
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}
			if s.lines == 0 || s.texts == 0 {
				t.Errorf("surface saw %+v", *s)
			}
		})
	}
}

func TestRecordReplayMatches(t *testing.T) {
	for _, name := range figure.Names() {
		t.Run(name, func(t *testing.T) {
			d := record(t, name)
			again := scene.New()
			d.Replay(again)
			if !reflect.DeepEqual(d.Ops(), again.Ops()) {
				t.Error("replayed ops differ from the recording")
			}
		})
	}
}
