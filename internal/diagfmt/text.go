package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"moc/internal/diag"
)

const sepLen = 80

// Separator is the rule printed around a failing summary.
var Separator = strings.Repeat("-", sepLen)

// TextReporter renders diagnostics as human-readable text, one message per line.
//
//	Got 2 illegal character(s) in line 3 :
//		l:003 c:005 GRINNING FACE
//		l:003 c:007 CJK UNIFIED IDEOGRAPH-4E2D
//
// Write errors are sticky and available through Err.
type TextReporter struct {
	w    io.Writer
	opts TextOpts

	header *color.Color
	entry  *color.Color
	caret  *color.Color

	line string // content of the line being reported, for previews
	err  error
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer, opts TextOpts) *TextReporter {
	r := &TextReporter{
		w:      w,
		opts:   opts,
		header: color.New(color.FgRed, color.Bold),
		entry:  color.New(color.FgYellow),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.header, r.entry, r.caret} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Err returns the first write error, if any.
func (r *TextReporter) Err() error {
	return r.err
}

func (r *TextReporter) BeginLine(line uint32, text string, count int) {
	r.line = strings.TrimSuffix(text, "\n")
	r.printf(r.header, "Got %d illegal character(s) in line %d :\n", count, line)
	if r.opts.Preview {
		r.printf(nil, "\t>>> %s\n", previewText(r.line))
	}
}

func (r *TextReporter) ReportIllegalChar(d diag.Diagnostic) {
	r.printf(r.entry, "\t%s %s\n", d.Position(), d.Message)
	if r.opts.Preview && d.Col > 0 {
		pad, width := caretSpan(r.line, d.Col)
		r.printf(r.caret, "\t    %s%s\n", strings.Repeat(" ", pad), strings.Repeat("^", width))
	}
}

func (r *TextReporter) ReportSuppressed(_ uint32, count int) {
	r.printf(r.entry, "\t ... and %d other(s).\n", count)
}

func (r *TextReporter) ReportSummary(s diag.Summary) {
	if s.Clean() {
		if r.opts.CleanMessage {
			r.printf(nil, "Input file contains only legal characters. Great!\n")
		}
		return
	}
	r.printf(nil, "%s\n", Separator)
	r.printf(r.header, "Input file contains %d illegal characters.\n", s.Illegal)
	if r.opts.Hint {
		r.printf(nil, "Please review previous error messages and fix them before submitting your results.\n")
	}
	r.printf(nil, "%s\n", Separator)
}

func (r *TextReporter) printf(c *color.Color, format string, args ...any) {
	if r.err != nil || r.w == nil {
		return
	}
	if c != nil {
		// перевод строки печатаем без цвета, иначе escape-коды уезжают на следующую строку
		msg := fmt.Sprintf(format, args...)
		body := strings.TrimSuffix(msg, "\n")
		_, r.err = fmt.Fprint(r.w, c.Sprint(body), msg[len(body):])
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
