package scene

import (
	"fmt"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

// OpKind enumerates the recorded renderer calls.
type OpKind int

const (
	OpMove OpKind = iota
	OpDraw
	OpPoly
	OpArrow
	OpText
	OpDot
	OpCamera
	OpLineStyle
	OpLineWidth
	OpFillStyle
	OpHatch
	OpArrowStyle
	OpCharHeight
)

var opNames = [...]string{
	OpMove:       "move",
	OpDraw:       "draw",
	OpPoly:       "poly",
	OpArrow:      "arrow",
	OpText:       "text",
	OpDot:        "dot",
	OpCamera:     "camera",
	OpLineStyle:  "line-style",
	OpLineWidth:  "line-width",
	OpFillStyle:  "fill-style",
	OpHatch:      "hatch",
	OpArrowStyle: "arrow-style",
	OpCharHeight: "char-height",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *OpKind) UnmarshalText(b []byte) error {
	for i, name := range opNames {
		if name == string(b) {
			*k = OpKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown op kind %q", b)
}

// Op is one recorded renderer call. Only the fields relevant to Kind are set:
//   - Points: move/draw/dot/text position, arrow endpoints, polygon vertices
//   - Text: label string
//   - Value: text justification, line width, character height
//   - Line, Fill, Camera, Hatch, Arrow: style arguments
type Op struct {
	Kind   OpKind             `json:"kind"`
	Points []geom.Point3      `json:"points,omitempty"`
	Text   string             `json:"text,omitempty"`
	Value  float64            `json:"value,omitempty"`
	Line   render.LineStyle   `json:"line,omitempty"`
	Fill   render.FillStyle   `json:"fill,omitempty"`
	Camera *render.Camera     `json:"camera,omitempty"`
	Hatch  *render.HatchStyle `json:"hatch,omitempty"`
	Arrow  *render.ArrowStyle `json:"arrow,omitempty"`
}

// Apply issues the op against r.
func (op Op) Apply(r render.Renderer) {
	switch op.Kind {
	case OpMove:
		r.Move(op.Points[0])
	case OpDraw:
		r.Draw(op.Points[0])
	case OpPoly:
		r.Poly(op.Points)
	case OpArrow:
		r.Arrow(op.Points[0], op.Points[1])
	case OpText:
		r.Text(op.Points[0], op.Text, op.Value)
	case OpDot:
		r.Dot(op.Points[0])
	case OpCamera:
		r.SetCamera(op.Camera.Longitude, op.Camera.Latitude)
	case OpLineStyle:
		r.SetLineStyle(op.Line)
	case OpLineWidth:
		r.SetLineWidth(op.Value)
	case OpFillStyle:
		r.SetFillStyle(op.Fill)
	case OpHatch:
		r.SetHatch(*op.Hatch)
	case OpArrowStyle:
		r.SetArrowStyle(*op.Arrow)
	case OpCharHeight:
		r.SetCharHeight(op.Value)
	}
}
