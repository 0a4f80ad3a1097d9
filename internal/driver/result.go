// Package driver runs the line-by-line loops behind moc check, moc normalize
// and moc explore. It never opens files: callers pass readers and writers.
package driver

import (
	"fmt"

	"moc/internal/charset"
	"moc/internal/diag"
	"moc/internal/source"
	"moc/internal/uname"
)

// Result summarises one pass over an input.
type Result struct {
	Lines   uint32
	Illegal int
}

// Clean reports whether no illegal character was found.
func (r Result) Clean() bool { return r.Illegal == 0 }

// Summary converts the result for diag.Reporter.ReportSummary.
func (r Result) Summary() diag.Summary {
	return diag.Summary{Lines: r.Lines, Illegal: r.Illegal}
}

// WriteError marks a failure of the output side, as opposed to the input.
type WriteError struct {
	Line uint32 // line being written, 0 when flushing
	Err  error
}

func (e *WriteError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("write output: %v", e.Err)
	}
	return fmt.Sprintf("write line %d: %v", e.Line, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// checkLine reports the illegal characters of line and returns their number.
func checkLine(rep diag.Reporter, allow *charset.Set, line source.Line) int {
	findings := charset.CheckLine(line.Text, allow)
	if len(findings) == 0 {
		return 0
	}
	diags := make([]diag.Diagnostic, len(findings))
	for i, f := range findings {
		name := ""
		if i < diag.CharErrLimit {
			name = uname.Name(f.Char)
		}
		diags[i] = diag.IllegalChar(line.Num, f.Col, f.Char, name)
	}
	diag.EmitLine(rep, line.Num, line.Text, diags)
	return len(findings)
}

func reporterOrNop(rep diag.Reporter) diag.Reporter {
	if rep == nil {
		return diag.NopReporter{}
	}
	return rep
}

func allowOrDefault(allow *charset.Set) *charset.Set {
	if allow == nil {
		return charset.Default
	}
	return allow
}
