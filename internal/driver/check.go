package driver

import (
	"errors"
	"io"

	"moc/internal/charset"
	"moc/internal/diag"
	"moc/internal/source"
)

// Check verifies that every character of r is a line break or belongs to
// allow (charset.Default when nil). Findings go to rep line by line and the
// summary is reported once the whole input has been read.
//
// A decode or read error stops the pass; the partial Result is returned
// with it and no summary is reported.
func Check(r io.Reader, rep diag.Reporter, allow *charset.Set) (Result, error) {
	rep = reporterOrNop(rep)
	allow = allowOrDefault(allow)

	var res Result
	lr := source.NewLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}
		res.Lines = line.Num
		res.Illegal += checkLine(rep, allow, line)
	}
	rep.ReportSummary(res.Summary())
	return res, nil
}
