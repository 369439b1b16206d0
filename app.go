package main

import (
	"fmt"
	"log"

	"github.com/chazu/polplot/pkg/device"
	"github.com/chazu/polplot/pkg/engine"
	"github.com/chazu/polplot/pkg/figure"
	"github.com/chazu/polplot/pkg/scene"
)

// App ties script evaluation, the built-in figures and the output devices
// together. The CLI is a thin layer over it.
type App struct {
	engine *engine.Engine
}

// PanelData summarises one recorded panel.
type PanelData struct {
	Name   string         `json:"name"`
	Ops    int            `json:"ops"`
	Counts map[string]int `json:"counts"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Diagram  *scene.Diagram  `json:"diagram,omitempty"`
	Panels   []PanelData     `json:"panels"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with a fresh engine.
func NewApp() *App {
	return &App{engine: engine.NewEngine()}
}

// Evaluate runs a diagram script and returns the recorded diagram with its
// errors and warnings. Diagram is nil whenever Errors is non-empty.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Panels:   []PanelData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a diagram.
	res, err := a.engine.EvaluateWithWarnings(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the reporting format.
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.String()})
	}

	// Step 3: Summarise the panels.
	result.Diagram = res.Diagram
	result.Panels = summarize(res.Diagram)
	return result
}

// Figure records the named built-in figure.
func (a *App) Figure(name string) (*scene.Diagram, error) {
	f, err := figure.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Record(), nil
}

// Plot replays d onto the device named by spec, using the diagram's window.
func (a *App) Plot(d *scene.Diagram, spec string, opts ...device.Option) error {
	opts = append([]device.Option{device.WithWindow(d.Window)}, opts...)
	dev, err := device.Open(spec, opts...)
	if err != nil {
		return err
	}
	d.Replay(dev)
	if err := dev.Close(); err != nil {
		log.Printf("Plot error on %s: %v", spec, err)
		return fmt.Errorf("plot %s: %w", spec, err)
	}
	return nil
}

func summarize(d *scene.Diagram) []PanelData {
	panels := make([]PanelData, 0, len(d.Panels))
	for _, p := range d.Panels {
		pd := PanelData{Name: p.Name, Ops: len(p.Ops), Counts: map[string]int{}}
		for _, op := range p.Ops {
			pd.Counts[op.Kind.String()]++
		}
		panels = append(panels, pd)
	}
	return panels
}
