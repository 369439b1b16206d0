package scene

import (
	"encoding/json"
	"io"

	"github.com/deadsy/sdfx/sdf"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

// Compile-time interface check.
var _ render.Renderer = (*Diagram)(nil)

// DefaultWindow is the half-extent of the plotting window used when a
// diagram does not set one.
const DefaultWindow = 5.0

// Panel is a named run of consecutive ops, such as one row of a figure.
type Panel struct {
	Name string `json:"name,omitempty"`
	Ops  []Op   `json:"ops"`
}

// Diagram is the recorded output of a figure or script. The zero value is
// not usable; call New.
type Diagram struct {
	Title     string         `json:"title,omitempty"`
	Window    float64        `json:"window"`
	Panels    []*Panel       `json:"panels"`
	NameIndex map[string]int `json:"-"`
}

// New creates an empty diagram with the default window.
func New() *Diagram {
	return &Diagram{
		Window:    DefaultWindow,
		NameIndex: make(map[string]int),
	}
}

// Panel starts a new panel; later ops are recorded into it. Naming a panel
// that already exists starts a second one and the index points at the newest.
func (d *Diagram) Panel(name string) *Panel {
	p := &Panel{Name: name}
	d.Panels = append(d.Panels, p)
	if name != "" {
		d.NameIndex[name] = len(d.Panels) - 1
	}
	return p
}

// Lookup returns the panel with the given name, or nil.
func (d *Diagram) Lookup(name string) *Panel {
	i, ok := d.NameIndex[name]
	if !ok {
		return nil
	}
	return d.Panels[i]
}

// current returns the panel being recorded, starting an anonymous one if
// nothing has been recorded yet.
func (d *Diagram) current() *Panel {
	if len(d.Panels) == 0 {
		return d.Panel("")
	}
	return d.Panels[len(d.Panels)-1]
}

func (d *Diagram) record(op Op) {
	p := d.current()
	p.Ops = append(p.Ops, op)
}

// Ops returns every op of every panel in recording order.
func (d *Diagram) Ops() []Op {
	var ops []Op
	for _, p := range d.Panels {
		ops = append(ops, p.Ops...)
	}
	return ops
}

// OpCount returns the total number of recorded ops.
func (d *Diagram) OpCount() int {
	n := 0
	for _, p := range d.Panels {
		n += len(p.Ops)
	}
	return n
}

// Counts returns the number of ops of each kind.
func (d *Diagram) Counts() map[OpKind]int {
	counts := make(map[OpKind]int)
	for _, p := range d.Panels {
		for _, op := range p.Ops {
			counts[op.Kind]++
		}
	}
	return counts
}

// Replay issues every recorded op against r in order.
func (d *Diagram) Replay(r render.Renderer) {
	for _, p := range d.Panels {
		p.Replay(r)
	}
}

// Replay issues the panel's ops against r in order.
func (p *Panel) Replay(r render.Renderer) {
	for _, op := range p.Ops {
		op.Apply(r)
	}
}

// Bounds returns the axis-aligned box enclosing every recorded point.
// ok is false when the diagram holds no geometry.
func (d *Diagram) Bounds() (box sdf.Box3, ok bool) {
	for _, p := range d.Panels {
		for _, op := range p.Ops {
			for _, pt := range op.Points {
				v := pt.Vec()
				if !ok {
					box = sdf.Box3{Min: v, Max: v}
					ok = true
					continue
				}
				box = box.Include(v)
			}
		}
	}
	return box, ok
}

// WriteJSON encodes the diagram as indented JSON.
func (d *Diagram) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ---------------------------------------------------------------------------
// render.Renderer
// ---------------------------------------------------------------------------

func (d *Diagram) Move(p geom.Point3) {
	d.record(Op{Kind: OpMove, Points: []geom.Point3{p}})
}

func (d *Diagram) Draw(p geom.Point3) {
	d.record(Op{Kind: OpDraw, Points: []geom.Point3{p}})
}

func (d *Diagram) Poly(vertices []geom.Point3) {
	pts := make([]geom.Point3, len(vertices))
	copy(pts, vertices)
	d.record(Op{Kind: OpPoly, Points: pts})
}

func (d *Diagram) Arrow(from, to geom.Point3) {
	d.record(Op{Kind: OpArrow, Points: []geom.Point3{from, to}})
}

func (d *Diagram) Text(at geom.Point3, s string, just float64) {
	d.record(Op{Kind: OpText, Points: []geom.Point3{at}, Text: s, Value: just})
}

func (d *Diagram) Dot(at geom.Point3) {
	d.record(Op{Kind: OpDot, Points: []geom.Point3{at}})
}

func (d *Diagram) SetCamera(longitude, latitude float64) {
	d.record(Op{Kind: OpCamera, Camera: &render.Camera{Longitude: longitude, Latitude: latitude}})
}

func (d *Diagram) SetLineStyle(s render.LineStyle) {
	d.record(Op{Kind: OpLineStyle, Line: s})
}

func (d *Diagram) SetLineWidth(w float64) {
	d.record(Op{Kind: OpLineWidth, Value: w})
}

func (d *Diagram) SetFillStyle(s render.FillStyle) {
	d.record(Op{Kind: OpFillStyle, Fill: s})
}

func (d *Diagram) SetHatch(h render.HatchStyle) {
	d.record(Op{Kind: OpHatch, Hatch: &h})
}

func (d *Diagram) SetArrowStyle(a render.ArrowStyle) {
	d.record(Op{Kind: OpArrowStyle, Arrow: &a})
}

func (d *Diagram) SetCharHeight(h float64) {
	d.record(Op{Kind: OpCharHeight, Value: h})
}
