package plot

import "strings"

// Run is a span of label text with uniform style. Shift counts baseline
// steps: negative is subscript, positive superscript.
type Run struct {
	Text   string
	Italic bool
	Shift  int
}

// ParseMarkup splits a label containing PGPLOT escape sequences into runs.
// Recognised escapes: \fi italic, \fr \fn \fs roman, \d down, \u up and \\
// for a literal backslash. Unknown escapes are kept verbatim.
func ParseMarkup(s string) []Run {
	var runs []Run
	var cur strings.Builder
	italic, shift := false, 0

	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, Run{Text: cur.String(), Italic: italic, Shift: shift})
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			cur.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			cur.WriteByte('\\')
			i++
		case 'd':
			flush()
			shift--
			i++
		case 'u':
			flush()
			shift++
			i++
		case 'f':
			if i+2 < len(s) {
				switch s[i+2] {
				case 'i':
					flush()
					italic = true
					i += 2
					continue
				case 'r', 'n', 's':
					flush()
					italic = false
					i += 2
					continue
				}
			}
			cur.WriteByte(s[i])
		default:
			cur.WriteByte(s[i])
		}
	}
	flush()
	return runs
}

// PlainText concatenates the text of runs, dropping all styling.
func PlainText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
