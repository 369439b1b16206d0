package device

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in      string
		file    string
		typ     string
		wantErr error
	}{
		{"out.svg/SVG", "out.svg", "SVG", nil},
		{"out.png/png", "out.png", "PNG", nil},
		{"/svg", "polplot.svg", "SVG", nil},
		{"/DXF", "polplot.dxf", "DXF", nil},
		{"/NULL", "", "NULL", nil},
		{`"my plot.svg"/SVG`, "my plot.svg", "SVG", nil},
		{"dir/sub/out.svg/SVG", "dir/sub/out.svg", "SVG", nil},
		{"  /Png  ", "polplot.png", "PNG", nil},
		{"/XWIN", "", "", ErrUnknownType},
		{"out.svg", "", "", ErrBadSpec},
		{"", "", "", ErrBadSpec},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sp, err := ParseSpec(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSpec(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpec(%q): %v", tt.in, err)
			}
			if sp.File != tt.file || sp.Type.Name != tt.typ {
				t.Errorf("ParseSpec(%q) = %q/%s, want %q/%s", tt.in, sp.File, sp.Type.Name, tt.file, tt.typ)
			}
		})
	}
}

func TestList(t *testing.T) {
	var names []string
	for _, ty := range List() {
		names = append(names, ty.Name)
	}
	if got := strings.Join(names, ","); got != "DXF,NULL,PNG,SVG" {
		t.Errorf("List = %s", got)
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty selects null", "\n", "/NULL"},
		{"direct answer", "x.svg/SVG\n", "x.svg/SVG"},
		{"help then answer", "?\n/png\n", "/png"},
		{"bad then good", "/BOGUS\n/DXF\n", "/DXF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Prompt(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Prompt = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "SVG") {
				t.Errorf("prompt did not list devices:\n%s", out.String())
			}
		})
	}
}

func TestPromptEOF(t *testing.T) {
	if _, err := Prompt(strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("expected error at end of input")
	}
}

// drawSample exercises every primitive once.
func drawSample(r render.Renderer) {
	r.SetCamera(-90, 0)
	r.Move(geom.P(-2, 0, -2))
	r.Draw(geom.P(2, 0, 2))
	r.SetLineStyle(render.LineDashed)
	r.Move(geom.P(-2, 0, 2))
	r.Draw(geom.P(2, 0, -2))
	r.SetLineStyle(render.LineSolid)
	r.SetFillStyle(render.FillHatched)
	r.Poly([]geom.Point3{geom.P(0, 0, 0), geom.P(1, 0, 0), geom.P(0.8, 0, 1), geom.P(0.2, 0, 1)})
	r.Arrow(geom.P(-3, 0, 0), geom.P(-1, 0, 0))
	r.Text(geom.P(0, 0, 3), `\fiE\fn\d0 <&>`, 0.5)
	r.Dot(geom.Origin)
}

func TestOpenNull(t *testing.T) {
	d, err := Open("/NULL")
	if err != nil {
		t.Fatal(err)
	}
	drawSample(d)
	if err := d.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("/GIF"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Open(/GIF) error = %v, want ErrUnknownType", err)
	}
}

func TestAspectRatio(t *testing.T) {
	d, err := Open("/NULL", WithSize(400, 800))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if got := d.AspectRatio(); got != 2 {
		t.Errorf("AspectRatio = %g, want 2", got)
	}
}

func TestSVGOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	d, err := Open(path+"/SVG", WithSize(300, 200))
	if err != nil {
		t.Fatal(err)
	}
	drawSample(d)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"<svg",
		`width="300"`,
		"<polyline",
		"stroke-dasharray",
		"<polygon",
		"<circle",
		`font-style="italic"`,
		"&lt;&amp;&gt;",
		"text-anchor:middle",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestSVGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	if _, err := Open(path + "/SVG"); err == nil {
		t.Error("expected error for a missing directory")
	}
}
