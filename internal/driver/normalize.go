package driver

import (
	"bufio"
	"errors"
	"io"

	"moc/internal/charset"
	"moc/internal/diag"
	"moc/internal/normalize"
	"moc/internal/source"
)

// Normalize writes the normalized form of every line of r to w. Each line
// is checked against allow before it is normalized, so the Result counts
// characters of the input as read; the output is written in full either way.
//
// Output failures are returned as *WriteError. Lines already written stay written.
func Normalize(r io.Reader, w io.Writer, rep diag.Reporter, allow *charset.Set) (Result, error) {
	rep = reporterOrNop(rep)
	allow = allowOrDefault(allow)

	bw := bufio.NewWriter(w)
	var res Result
	lr := source.NewLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// keep what was produced before the bad line
			_ = bw.Flush()
			return res, err
		}
		res.Lines = line.Num
		res.Illegal += checkLine(rep, allow, line)

		if _, err := bw.WriteString(normalize.Line(line.Text)); err != nil {
			return res, &WriteError{Line: line.Num, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return res, &WriteError{Err: err}
	}
	rep.ReportSummary(res.Summary())
	return res, nil
}
