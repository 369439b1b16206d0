// Package device opens plot surfaces from PGPLOT-style device strings such
// as "figure.svg/SVG" or "/NULL".
package device

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/chazu/polplot/pkg/render"
	"github.com/chazu/polplot/pkg/render/plot"
)

var (
	// ErrUnknownType is returned for a device type that is not registered.
	ErrUnknownType = errors.New("unknown device type")

	// ErrBadSpec is returned for a device string without a /TYPE suffix.
	ErrBadSpec = errors.New("malformed device string")
)

// DefaultBase is the file name stem used when a device string names no file.
const DefaultBase = "polplot"

// Device is an open plot: a Renderer whose output is finished by Close.
type Device interface {
	render.Renderer
	Close() error
	AspectRatio() float64
}

// Type describes a registered device type.
type Type struct {
	Name        string
	Ext         string // empty for devices that write no file
	Description string

	open func(path string, o options) (plot.Surface, error)
}

var types = map[string]Type{
	"SVG":  {Name: "SVG", Ext: "svg", Description: "Scalable Vector Graphics file", open: openSVG},
	"PNG":  {Name: "PNG", Ext: "png", Description: "Portable Network Graphics image", open: openPNG},
	"DXF":  {Name: "DXF", Ext: "dxf", Description: "AutoCAD drawing exchange file", open: openDXF},
	"NULL": {Name: "NULL", Description: "discards all output", open: openNull},
}

// List returns the registered device types sorted by name.
func List() []Type {
	out := make([]Type, 0, len(types))
	for _, t := range types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Spec is a parsed device string.
type Spec struct {
	File string
	Type Type
}

func (s Spec) String() string {
	return s.File + "/" + s.Type.Name
}

// ParseSpec parses "file/TYPE". The type is case-insensitive; the file may
// be quoted and defaults to DefaultBase with the type's extension.
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return Spec{}, fmt.Errorf("device %q: %w", s, ErrBadSpec)
	}
	file := strings.Trim(strings.TrimSpace(s[:i]), `"`)
	name := strings.ToUpper(strings.TrimSpace(s[i+1:]))

	t, ok := types[name]
	if !ok {
		return Spec{}, fmt.Errorf("device %q: %w: %q", s, ErrUnknownType, name)
	}
	if file == "" && t.Ext != "" {
		file = DefaultBase + "." + t.Ext
	}
	return Spec{File: file, Type: t}, nil
}

// Option configures an opened device.
type Option func(*options)

type options struct {
	width, height int
	lineWidth     float64
	window        float64
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		width:     800,
		height:    600,
		lineWidth: 1,
		window:    plot.DefaultWindow,
	}
}

// WithSize sets the surface size in device units (pixels for PNG).
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithLineWidth sets the device width of a unit line.
func WithLineWidth(w float64) Option {
	return func(o *options) { o.lineWidth = w }
}

// WithWindow sets the half-extent of the plotting window in world units.
func WithWindow(max float64) Option {
	return func(o *options) { o.window = max }
}

// WithLogger sets the logger for device events. The default is plot.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open parses spec and returns a Device drawing to it.
func Open(spec string, opts ...Option) (Device, error) {
	sp, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = plot.Logger()
	}

	surf, err := sp.Type.open(sp.File, o)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", sp, err)
	}
	log.Debug("device: opened",
		"type", sp.Type.Name,
		"file", sp.File,
		"width", o.width,
		"height", o.height)

	return plot.New(surf, plot.WithWindow(o.window), plot.WithLineWidth(o.lineWidth)), nil
}

// Prompt asks for a device string on r, listing the device types on w,
// until a parseable answer arrives. An empty answer selects "/NULL".
func Prompt(r io.Reader, w io.Writer) (string, error) {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprintln(w, "Device types (file/TYPE):")
		for _, t := range List() {
			fmt.Fprintf(w, "  %-5s %s\n", t.Name, t.Description)
		}
		fmt.Fprint(w, "Graphics device/type (? to see list, default /NULL): ")

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read device: %w", err)
			}
			return "", fmt.Errorf("read device: %w", io.EOF)
		}
		ans := strings.TrimSpace(sc.Text())
		switch ans {
		case "":
			return "/NULL", nil
		case "?":
			continue
		}
		if _, err := ParseSpec(ans); err != nil {
			fmt.Fprintf(w, "%v\n", err)
			continue
		}
		return ans, nil
	}
}
