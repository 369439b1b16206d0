package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/polplot/pkg/geom"
	"github.com/chazu/polplot/pkg/render"
	"github.com/chazu/polplot/pkg/scene"
	"github.com/chazu/polplot/pkg/tessellate"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms diagram script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: line-style -> line_style
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a geom.Point3.
type sexpVec3 struct {
	p geom.Point3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.p.X, v.p.Y, v.p.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
// A trailing keyword stays positional, so (fill-style :hatched) reads
// :hatched as the style.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok || i+1 >= len(args) {
			result.positional = append(result.positional, args[i])
			continue
		}
		result.kw[name] = args[i+1]
		i++
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_dashed) and plain strings ("dashed").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toVec3 extracts a point from a sexpVec3.
func toVec3(s zygo.Sexp) (geom.Point3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.p, nil
	}
	return geom.Point3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toLineStyle accepts a style keyword or a PGPLOT style number.
func toLineStyle(s zygo.Sexp) (render.LineStyle, error) {
	if n, ok := s.(*zygo.SexpInt); ok {
		ls := render.LineStyle(n.Val)
		if ls < render.LineSolid || ls > render.LineDashDotDot {
			return 0, fmt.Errorf("line style %d out of range 1-5", n.Val)
		}
		return ls, nil
	}
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return render.ParseLineStyle(name)
}

// toFillStyle accepts a style keyword or a PGPLOT fill-area style number.
func toFillStyle(s zygo.Sexp) (render.FillStyle, error) {
	if n, ok := s.(*zygo.SexpInt); ok {
		fs := render.FillStyle(n.Val)
		if fs < render.FillSolid || fs > render.FillCrossHatched {
			return 0, fmt.Errorf("fill style %d out of range 1-4", n.Val)
		}
		return fs, nil
	}
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return render.ParseFillStyle(name)
}

// floats extracts n numbers from the front of args.
func floats(args []zygo.Sexp, names ...string) ([]float64, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("requires %s", strings.Join(names, ", "))
	}
	out := make([]float64, len(names))
	for i, n := range names {
		f, err := toFloat64(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		out[i] = f
	}
	return out, nil
}

// vecs extracts n points from the front of args.
func vecs(args []zygo.Sexp, names ...string) ([]geom.Point3, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("requires %s", strings.Join(names, ", "))
	}
	out := make([]geom.Point3, len(names))
	for i, n := range names {
		p, err := toVec3(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		out[i] = p
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Diagram builder
// ---------------------------------------------------------------------------

// orthoTolerance is the largest cosine between ellipsoid axes accepted
// without a warning.
const orthoTolerance = 1e-6

// builder collects the diagram and warnings of one evaluation.
type builder struct {
	d        *scene.Diagram
	warnings []EvalWarning
}

func newBuilder() *builder {
	return &builder{d: scene.New()}
}

func (b *builder) warn(builtin, format string, args ...any) {
	b.warnings = append(b.warnings, EvalWarning{
		Builtin: builtin,
		Message: fmt.Sprintf(format, args...),
		Op:      b.d.OpCount(),
	})
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type builtinFunc = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs the diagram builtins into a zygomys environment.
// Drawing builtins record into b.d and return nil.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals and
// kebab-case names such as line-style reach zygomys as line_style.
func registerBuiltins(env *zygo.Zlisp, b *builder) {
	d := b.d
	add := func(name string, fn builtinFunc) {
		env.AddFunction(strings.ReplaceAll(name, "-", "_"), fn)
	}

	// -----------------------------------------------------------------------
	// Math: (sqrt x) (sin deg) (cos deg)
	// -----------------------------------------------------------------------
	unary := func(label string, f func(float64) float64) builtinFunc {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", label, len(args))
			}
			x, err := toFloat64(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			return &zygo.SexpFloat{Val: f(x)}, nil
		}
	}
	add("sqrt", unary("sqrt", math.Sqrt))
	add("sin", unary("sin", func(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }))
	add("cos", unary("cos", func(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }))

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	add("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		xyz, err := floats(args, "x", "y", "z")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
		}
		return &sexpVec3{p: geom.P(xyz[0], xyz[1], xyz[2])}, nil
	})

	// -----------------------------------------------------------------------
	// Diagram metadata: (panel "single") (title "...") (window 6)
	// -----------------------------------------------------------------------
	add("panel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("panel requires a name argument")
		}
		n, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: name: %w", err)
		}
		d.Panel(n)
		return zygo.SexpNull, nil
	})

	add("title", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("title requires a string argument")
		}
		s, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("title: %w", err)
		}
		d.Title = s
		return zygo.SexpNull, nil
	})

	add("window", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, "half-extent")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("window: %w", err)
		}
		if f[0] <= 0 {
			return zygo.SexpNull, fmt.Errorf("window: half-extent must be positive, got %g", f[0])
		}
		d.Window = f[0]
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (ellipse center axis-a a axis-b b)
	// -----------------------------------------------------------------------
	add("ellipse", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("ellipse requires center, axis-a, a, axis-b, b")
		}
		c, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: center: %w", err)
		}
		ax, err := vecs([]zygo.Sexp{args[1], args[3]}, "axis-a", "axis-b")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
		}
		r, err := floats([]zygo.Sexp{args[2], args[4]}, "a", "b")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
		}
		if r[0] < 0 || r[1] < 0 {
			b.warn("ellipse", "negative radius (%g, %g)", r[0], r[1])
		}
		render.DrawCurve(d, tessellate.Ellipse(c, ax[0], r[0], ax[1], r[1]))
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (ellipsoid center a b c)
	// (ellipsoid center :axes (list x y z) :lengths (list a b c))
	// -----------------------------------------------------------------------
	add("ellipsoid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("ellipsoid requires a center")
		}
		c, err := toVec3(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipsoid: center: %w", err)
		}

		basis := geom.CanonicalBasis
		if v, ok := pa.kw["axes"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipsoid: axes: %w", err)
			}
			if len(items) != 3 {
				return zygo.SexpNull, fmt.Errorf("ellipsoid: axes: expected 3 vectors, got %d", len(items))
			}
			ax, err := vecs(items, "axis 0", "axis 1", "axis 2")
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipsoid: axes: %w", err)
			}
			basis = geom.Basis{ax[0], ax[1], ax[2]}
		}

		lenArgs := pa.positional[1:]
		if v, ok := pa.kw["lengths"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipsoid: lengths: %w", err)
			}
			lenArgs = items
		}
		if len(lenArgs) != 3 {
			return zygo.SexpNull, fmt.Errorf("ellipsoid: expected 3 lengths, got %d", len(lenArgs))
		}
		l, err := floats(lenArgs, "length 0", "length 1", "length 2")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipsoid: %w", err)
		}

		axes := geom.NewSemiaxes(basis, geom.Lengths{l[0], l[1], l[2]})
		if axes.Negative() {
			b.warn("ellipsoid", "negative length in %v", l)
		}
		if !axes.Orthogonal(orthoTolerance) {
			b.warn("ellipsoid", "axes are not mutually orthogonal")
		}
		render.DrawEllipsoid(d, c, axes)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (trapezoid left right height inset)
	// (regime left right height inset :angle -45)
	// -----------------------------------------------------------------------
	parseRegime := func(label string, args []zygo.Sexp) (tessellate.Regime, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 4 {
			return tessellate.Regime{}, fmt.Errorf("%s requires left, right, height, inset", label)
		}
		lr, err := vecs(pa.positional, "left", "right")
		if err != nil {
			return tessellate.Regime{}, fmt.Errorf("%s: %w", label, err)
		}
		hi, err := floats(pa.positional[2:], "height", "inset")
		if err != nil {
			return tessellate.Regime{}, fmt.Errorf("%s: %w", label, err)
		}
		reg := tessellate.Regime{Left: lr[0], Right: lr[1], Height: hi[0], Inset: hi[1]}
		if v, ok := pa.kw["angle"]; ok {
			a, err := toFloat64(v)
			if err != nil {
				return tessellate.Regime{}, fmt.Errorf("%s: angle: %w", label, err)
			}
			reg = reg.WithAngle(a)
		}
		if reg.Height < 0 {
			b.warn(label, "negative height %g", reg.Height)
		}
		return reg, nil
	}

	add("trapezoid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		reg, err := parseRegime("trapezoid", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		d.Poly(reg.Polygon())
		return zygo.SexpNull, nil
	})

	add("regime", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		reg, err := parseRegime("regime", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		render.DrawRegime(d, reg)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Pen and primitives
	// -----------------------------------------------------------------------
	point := func(label string, f func(geom.Point3)) builtinFunc {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires a vec3", label)
			}
			p, err := toVec3(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			f(p)
			return zygo.SexpNull, nil
		}
	}
	add("move", point("move", d.Move))
	add("draw", point("draw", d.Draw))
	add("dot", point("dot", d.Dot))

	segment := func(label string, f func(a, b geom.Point3)) builtinFunc {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires from and to", label)
			}
			ab, err := vecs(args, "from", "to")
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			f(ab[0], ab[1])
			return zygo.SexpNull, nil
		}
	}
	add("line", segment("line", func(a, b geom.Point3) { render.DrawLine(d, a, b) }))
	add("arrow", segment("arrow", d.Arrow))

	// (text at "label" :just 0.5) or (text at "label" 0.5)
	add("text", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("text requires a position and a string")
		}
		at, err := toVec3(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("text: position: %w", err)
		}
		s, err := toString(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("text: %w", err)
		}
		var just float64
		switch {
		case pa.kw["just"] != nil:
			just, err = toFloat64(pa.kw["just"])
		case len(pa.positional) > 2:
			just, err = toFloat64(pa.positional[2])
		}
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("text: just: %w", err)
		}
		d.Text(at, s, just)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Style state
	// -----------------------------------------------------------------------
	add("camera", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, "longitude", "latitude")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: %w", err)
		}
		d.SetCamera(f[0], f[1])
		return zygo.SexpNull, nil
	})

	add("line-style", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("line-style requires a style")
		}
		ls, err := toLineStyle(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line-style: %w", err)
		}
		d.SetLineStyle(ls)
		return zygo.SexpNull, nil
	})

	add("fill-style", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("fill-style requires a style")
		}
		fs, err := toFillStyle(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fill-style: %w", err)
		}
		d.SetFillStyle(fs)
		return zygo.SexpNull, nil
	})

	scalar := func(label string, f func(float64)) builtinFunc {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			v, err := floats(args, "value")
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			if v[0] <= 0 {
				return zygo.SexpNull, fmt.Errorf("%s: must be positive, got %g", label, v[0])
			}
			f(v[0])
			return zygo.SexpNull, nil
		}
	}
	add("line-width", scalar("line-width", d.SetLineWidth))
	add("char-height", scalar("char-height", d.SetCharHeight))

	// (hatch :angle 45 :separation 1 :phase 0) or (hatch 45 1 0)
	add("hatch", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		h := render.DefaultHatch
		fields := []struct {
			name string
			dst  *float64
		}{{"angle", &h.Angle}, {"separation", &h.Separation}, {"phase", &h.Phase}}
		for i, f := range fields {
			v, ok := pa.kw[f.name]
			if !ok && i < len(pa.positional) {
				v, ok = pa.positional[i], true
			}
			if !ok {
				continue
			}
			x, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hatch: %s: %w", f.name, err)
			}
			*f.dst = x
		}
		if h.Separation <= 0 {
			return zygo.SexpNull, fmt.Errorf("hatch: separation must be positive, got %g", h.Separation)
		}
		d.SetHatch(h)
		return zygo.SexpNull, nil
	})

	// (arrow-style :fill :outline :angle 45 :barb 1)
	add("arrow-style", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		a := render.DefaultArrow
		if v, ok := pa.kw["fill"]; ok {
			fs, err := toFillStyle(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arrow-style: fill: %w", err)
			}
			// PGPLOT treats anything but solid as outline.
			if fs != render.FillSolid {
				fs = render.FillOutline
			}
			a.Fill = fs
		}
		if v, ok := pa.kw["angle"]; ok {
			x, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arrow-style: angle: %w", err)
			}
			a.Angle = x
		}
		if v, ok := pa.kw["barb"]; ok {
			x, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arrow-style: barb: %w", err)
			}
			a.Barb = x
		}
		d.SetArrowStyle(a)
		return zygo.SexpNull, nil
	})
}
