package render

import "fmt"

// LineStyle selects the dash pattern of lines. Values follow the PGPLOT
// numbering so scripts written against it keep their meaning.
type LineStyle int

const (
	LineSolid      LineStyle = iota + 1 // full line
	LineDashed                          // long dashes
	LineDotDash                         // dash-dot-dash-dot
	LineDotted                          // dots
	LineDashDotDot                      // dash-dot-dot-dot
)

func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDotDash:
		return "dot-dash"
	case LineDotted:
		return "dotted"
	case LineDashDotDot:
		return "dash-dot-dot"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// Dashes returns the on/off pattern for the style in units of the line
// width, or nil for a solid line.
func (s LineStyle) Dashes() []float64 {
	switch s {
	case LineDashed:
		return []float64{8, 4}
	case LineDotDash:
		return []float64{8, 3, 1, 3}
	case LineDotted:
		return []float64{1, 3}
	case LineDashDotDot:
		return []float64{8, 3, 1, 3, 1, 3}
	default:
		return nil
	}
}

// ParseLineStyle maps a style name to its LineStyle.
func ParseLineStyle(name string) (LineStyle, error) {
	for s := LineSolid; s <= LineDashDotDot; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown line style %q", name)
}

// FillStyle selects how Poly paints the interior of a polygon.
type FillStyle int

const (
	FillSolid        FillStyle = iota + 1 // solid fill
	FillOutline                           // boundary only
	FillHatched                           // parallel lines at the hatch angle
	FillCrossHatched                      // two perpendicular hatch passes
)

func (s FillStyle) String() string {
	switch s {
	case FillSolid:
		return "solid"
	case FillOutline:
		return "outline"
	case FillHatched:
		return "hatched"
	case FillCrossHatched:
		return "cross-hatched"
	default:
		return fmt.Sprintf("FillStyle(%d)", int(s))
	}
}

// ParseFillStyle maps a style name to its FillStyle.
func ParseFillStyle(name string) (FillStyle, error) {
	for s := FillSolid; s <= FillCrossHatched; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown fill style %q", name)
}

// HatchStyle configures FillHatched polygons. Angle is in degrees measured
// counter-clockwise from the screen x axis; Separation is the line spacing
// as a percentage of the smaller viewport dimension; Phase shifts the lines
// by that fraction of the separation.
type HatchStyle struct {
	Angle      float64 `json:"angle"`
	Separation float64 `json:"separation"`
	Phase      float64 `json:"phase"`
}

// DefaultHatch is the hatch style in effect before any SetHatch call.
var DefaultHatch = HatchStyle{Angle: 45, Separation: 1, Phase: 0}

// ArrowStyle configures arrow heads. Fill is FillSolid or FillOutline;
// Angle is the acute angle of the point in degrees; Barb is the fraction of
// the triangular head cut away from the back (0 wedge, 1 open ">").
type ArrowStyle struct {
	Fill  FillStyle `json:"fill"`
	Angle float64   `json:"angle"`
	Barb  float64   `json:"barb"`
}

// DefaultArrow is the arrow style in effect before any SetArrowStyle call.
var DefaultArrow = ArrowStyle{Fill: FillSolid, Angle: 45, Barb: 0.3}
