// Package figure holds the built-in polarization-mode diagrams. Each figure
// draws onto any render.Renderer, so the same code feeds a recorded
// scene.Diagram or a device plot.
package figure

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chazu/polplot/pkg/render"
	"github.com/chazu/polplot/pkg/scene"
)

// ErrUnknownFigure is returned by Lookup for a name with no figure.
var ErrUnknownFigure = errors.New("unknown figure")

// Figure is a named diagram with its plotting window.
type Figure struct {
	Name   string
	Title  string
	Window float64 // half-extent in world units
	Draw   func(r render.Renderer)
}

var registry = map[string]Figure{
	"modes": {
		Name:   "modes",
		Title:  "Coherency ellipsoids of single, disjoint, composite and superposed modes",
		Window: modesWindow,
		Draw:   Modes,
	},
	"regimes": {
		Name:   "regimes",
		Title:  "Polarization regimes and the Stokes sample",
		Window: regimesWindow,
		Draw:   Regimes,
	},
}

// Lookup returns the figure registered under name.
func Lookup(name string) (Figure, error) {
	f, ok := registry[name]
	if !ok {
		return Figure{}, fmt.Errorf("figure %q: %w", name, ErrUnknownFigure)
	}
	return f, nil
}

// Names returns the registered figure names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Record draws f into a new diagram.
func (f Figure) Record() *scene.Diagram {
	d := scene.New()
	d.Title = f.Title
	d.Window = f.Window
	f.Draw(d)
	return d
}

// paneler is implemented by renderers that group output into named panels.
type paneler interface {
	Panel(name string) *scene.Panel
}

// panel starts a named panel when r records panels.
func panel(r render.Renderer, name string) {
	if p, ok := r.(paneler); ok {
		p.Panel(name)
	}
}
