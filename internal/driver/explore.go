package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"moc/internal/source"
	"moc/internal/uname"
)

// Explore lists every line of r followed by one entry per character:
//
//	l:001 (4 char.)
//	>>> abc
//		c:001 U+0061 LATIN SMALL LETTER A
//
// The line break is listed like any other character.
func Explore(r io.Reader, w io.Writer) (Result, error) {
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
		if err := exploreLine(bw, line); err != nil {
			return res, &WriteError{Line: line.Num, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return res, &WriteError{Err: err}
	}
	return res, nil
}

func exploreLine(w *bufio.Writer, line source.Line) error {
	if _, err := fmt.Fprintf(w, "l:%03d (%d char.)\n>>> %s\n", line.Num, line.RuneCount(), line.Content()); err != nil {
		return err
	}
	col := 0
	for _, r := range line.Text {
		col++
		if _, err := fmt.Fprintf(w, "\tc:%03d U+%04x %s\n", col, r, uname.Name(r)); err != nil {
			return err
		}
	}
	return nil
}
