// Package plot projects the 3-D instruction stream of a diagram onto a 2-D
// Surface. It owns the pen position, the style state and the window
// mapping; devices only see device-space polylines, polygons and labels.
package plot

import (
	"math"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

// Compile-time interface check.
var _ render.Renderer = (*Plotter)(nil)

const (
	// DefaultWindow is the half-extent of the square plotting window.
	DefaultWindow = 5.0

	// charDivisions is the number of unit character heights that span the
	// smaller viewport dimension.
	charDivisions = 40

	// dotScale is a dot's radius in character heights.
	dotScale = 0.04

	// dashUnit scales LineStyle dash patterns, in line widths.
	dashUnit = 1.5
)

// Option configures a Plotter.
type Option func(*options)

type options struct {
	window    float64
	lineWidth float64
}

func defaultOptions() options {
	return options{window: DefaultWindow, lineWidth: 1}
}

// WithWindow sets the half-extent of the plotting window in world units.
// The window is widened along one axis to match the surface aspect ratio.
func WithWindow(max float64) Option {
	return func(o *options) {
		if max > 0 {
			o.window = max
		}
	}
}

// WithLineWidth sets the device width of a line of width 1.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// Plotter implements render.Renderer on top of a Surface.
type Plotter struct {
	surf Surface
	opts options

	// window mapping
	width, height float64
	scale         float64 // device units per world unit
	charUnit      float64 // device units per character height

	// style state
	cam   render.Camera
	line  render.LineStyle
	lw    float64
	fill  render.FillStyle
	hatch render.HatchStyle
	arrow render.ArrowStyle
	ch    float64

	// pen state
	pos  Pt
	path []Pt

	segments int
	polygons int
}

// New returns a Plotter drawing onto s.
func New(s Surface, opts ...Option) *Plotter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := s.Size()
	// Portrait surfaces keep the full window across x; landscape ones
	// keep it along y.
	xf := 1.0
	if aspect := h / w; aspect <= 1 {
		xf = 1 / aspect
	}

	p := &Plotter{
		surf:     s,
		opts:     o,
		width:    w,
		height:   h,
		scale:    w / (2 * o.window * xf),
		charUnit: math.Min(w, h) / charDivisions,
		line:     render.LineSolid,
		lw:       1,
		fill:     render.FillSolid,
		hatch:    render.DefaultHatch,
		arrow:    render.DefaultArrow,
		ch:       1,
	}
	p.pos = p.device(0, 0)
	return p
}

// AspectRatio returns the surface height divided by its width.
func (p *Plotter) AspectRatio() float64 {
	return p.height / p.width
}

// Window returns the world extent visible on the surface.
func (p *Plotter) Window() (xmin, xmax, ymin, ymax float64) {
	hx := p.width / (2 * p.scale)
	hy := p.height / (2 * p.scale)
	return -hx, hx, -hy, hy
}

// screen projects p through the camera into world-unit screen coordinates
// with y up.
func (p *Plotter) screen(pt geom.Point3) Pt {
	x, y, _ := p.cam.Project(pt)
	return Pt{X: x, Y: y}
}

// device maps y-up screen coordinates to the surface.
func (p *Plotter) device(x, y float64) Pt {
	return Pt{X: p.width/2 + x*p.scale, Y: p.height/2 - y*p.scale}
}

func (p *Plotter) project(pt geom.Point3) Pt {
	s := p.screen(pt)
	return p.device(s.X, s.Y)
}

func (p *Plotter) pen() Pen {
	w := p.lw * p.opts.lineWidth
	pen := Pen{Width: w}
	if d := p.line.Dashes(); d != nil {
		unit := math.Max(w, 1) * dashUnit
		pen.Dashes = make([]float64, len(d))
		for i, v := range d {
			pen.Dashes[i] = v * unit
		}
	}
	return pen
}

func (p *Plotter) solidPen() Pen {
	return Pen{Width: p.lw * p.opts.lineWidth}
}

// flush emits the pending polyline, if any.
func (p *Plotter) flush() {
	if len(p.path) >= 2 {
		p.surf.Polyline(p.path, p.pen())
		p.segments += len(p.path) - 1
	}
	p.path = nil
}

// ---------------------------------------------------------------------------
// render.Renderer
// ---------------------------------------------------------------------------

func (p *Plotter) Move(pt geom.Point3) {
	p.flush()
	p.pos = p.project(pt)
	p.path = []Pt{p.pos}
}

func (p *Plotter) Draw(pt geom.Point3) {
	if len(p.path) == 0 {
		p.path = []Pt{p.pos}
	}
	p.pos = p.project(pt)
	p.path = append(p.path, p.pos)
}

func (p *Plotter) Poly(vertices []geom.Point3) {
	p.flush()
	if len(vertices) < 2 {
		return
	}
	p.polygons++

	dev := make([]Pt, len(vertices))
	for i, v := range vertices {
		dev[i] = p.project(v)
	}

	switch p.fill {
	case render.FillOutline:
		p.surf.Polyline(append(dev, dev[0]), p.pen())
	case render.FillHatched:
		p.hatchPass(vertices, p.hatch.Angle)
	case render.FillCrossHatched:
		p.hatchPass(vertices, p.hatch.Angle)
		p.hatchPass(vertices, p.hatch.Angle+90)
	default:
		p.surf.Polygon(dev)
	}
}

// hatchPass hatches in y-up screen space so the angle is counter-clockwise
// on the page, then maps each segment to the device.
func (p *Plotter) hatchPass(vertices []geom.Point3, angle float64) {
	scr := make([]Pt, len(vertices))
	for i, v := range vertices {
		scr[i] = p.screen(v)
	}
	sep := p.hatch.Separation
	if sep <= 0 {
		sep = render.DefaultHatch.Separation
	}
	spacing := sep / 100 * math.Min(p.width, p.height) / p.scale
	pen := p.pen()
	for _, seg := range Hatch(scr, angle, spacing, p.hatch.Phase) {
		p.surf.Polyline([]Pt{p.device(seg[0].X, seg[0].Y), p.device(seg[1].X, seg[1].Y)}, pen)
	}
}

func (p *Plotter) Arrow(from, to geom.Point3) {
	p.flush()
	a, b := p.project(from), p.project(to)
	p.surf.Polyline([]Pt{a, b}, p.pen())

	head := ArrowHead(a, b, p.ch*p.charUnit, p.arrow.Angle, p.arrow.Barb)
	if head == nil {
		return
	}
	if p.arrow.Fill == render.FillSolid {
		p.surf.Polygon(head)
		return
	}
	p.surf.Polyline(append(head, head[0]), p.solidPen())
}

func (p *Plotter) Text(at geom.Point3, s string, just float64) {
	p.flush()
	p.surf.Text(p.project(at), ParseMarkup(s), just, p.ch*p.charUnit)
}

func (p *Plotter) Dot(at geom.Point3) {
	p.flush()
	r := math.Max(p.lw*p.opts.lineWidth/2, dotScale*p.ch*p.charUnit)
	p.surf.Dot(p.project(at), r)
}

func (p *Plotter) SetCamera(longitude, latitude float64) {
	p.flush()
	p.cam = render.Camera{Longitude: longitude, Latitude: latitude}
}

func (p *Plotter) SetLineStyle(s render.LineStyle) {
	p.flush()
	p.line = s
}

func (p *Plotter) SetLineWidth(w float64) {
	p.flush()
	p.lw = w
}

func (p *Plotter) SetFillStyle(s render.FillStyle)   { p.fill = s }
func (p *Plotter) SetHatch(h render.HatchStyle)      { p.hatch = h }
func (p *Plotter) SetArrowStyle(a render.ArrowStyle) { p.arrow = a }
func (p *Plotter) SetCharHeight(h float64)           { p.ch = h }

// Close flushes pending output and closes the surface.
func (p *Plotter) Close() error {
	p.flush()
	Logger().Debug("plot: closing surface",
		"segments", p.segments,
		"polygons", p.polygons,
		"scale", p.scale)
	return p.surf.Close()
}
