// Command polplot draws polarization-mode diagrams: coherency ellipsoids,
// regime trapezoids and whatever a diagram script describes.
//
// Usage:
//
//	polplot [-figure modes|regimes] [-script file] [-json] [-v] [device]
//
// The device is a PGPLOT-style string such as "modes.svg/SVG" or "/PNG".
// Without one, polplot asks for it on standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chazu/polplot/pkg/device"
	"github.com/chazu/polplot/pkg/figure"
	"github.com/chazu/polplot/pkg/render/plot"
	"github.com/chazu/polplot/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "polplot:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		figName = fs.String("figure", "modes", "built-in figure: "+strings.Join(figure.Names(), ", "))
		script  = fs.String("script", "", "diagram script to evaluate instead of a figure")
		asJSON  = fs.Bool("json", false, "print the recorded diagram as JSON instead of plotting")
		verbose = fs.Bool("v", false, "log debug output")
		width   = fs.Int("width", 800, "device width")
		height  = fs.Int("height", 600, "device height")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: polplot [flags] [device]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("expected at most one device argument, got %d", fs.NArg())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	plot.SetLogger(logger)
	defer plot.SetLogger(nil)

	app := NewApp()

	var d *scene.Diagram
	if *script != "" {
		src, err := os.ReadFile(*script)
		if err != nil {
			return err
		}
		res := app.Evaluate(string(src))
		for _, w := range res.Warnings {
			logger.Warn("script warning", "file", *script, "warning", w.Message)
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				fmt.Fprintf(stderr, "%s:%d: %s\n", *script, e.Line, e.Message)
			}
			return fmt.Errorf("%s: %d errors", *script, len(res.Errors))
		}
		d = res.Diagram
	} else {
		var err error
		if d, err = app.Figure(*figName); err != nil {
			return err
		}
	}

	if *asJSON {
		return d.WriteJSON(stdout)
	}

	spec := fs.Arg(0)
	if spec == "" || spec == "?" {
		var err error
		if spec, err = device.Prompt(stdin, stdout); err != nil {
			return err
		}
	}

	logger.Debug("plotting", "device", spec, "ops", d.OpCount(), "window", d.Window)
	return app.Plot(d, spec, device.WithSize(*width, *height), device.WithLogger(logger))
}
