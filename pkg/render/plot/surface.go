package plot

// Pt is a point in device coordinates: origin top-left, y down.
type Pt struct {
	X, Y float64
}

// Pen describes how a line is stroked. Dashes alternate on and off lengths
// in device units; nil is a solid line.
type Pen struct {
	Width  float64
	Dashes []float64
}

// Surface is a 2-D output device. The Plotter projects, clips and styles
// everything before it reaches a Surface, so implementations only translate
// primitives into their file format.
type Surface interface {
	// Size returns the drawable area in device units.
	Size() (width, height float64)

	Polyline(pts []Pt, pen Pen)
	Polygon(pts []Pt) // solid fill
	Text(at Pt, runs []Run, just, height float64)
	Dot(at Pt, radius float64)

	// Close finishes the output and reports any write error.
	Close() error
}
