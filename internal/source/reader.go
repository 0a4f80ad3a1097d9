// Package source turns an input stream into numbered, strictly decoded
// UTF-8 lines with LF line endings.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/transform"
)

// Line is one decoded line of the source.
type Line struct {
	Num  uint32 // 1-based
	Text string // with its trailing "\n", if the source had a line break there
}

// Content returns the line without its terminator.
func (l Line) Content() string {
	return strings.TrimSuffix(l.Text, "\n")
}

// RuneCount returns the number of characters of the line, terminator included.
func (l Line) RuneCount() int {
	return utf8.RuneCountInString(l.Text)
}

// DecodeError reports the first byte sequence that is not valid UTF-8.
type DecodeError struct {
	Line   uint32
	Offset int // 0-based byte offset within the line
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte sequence in line %d at byte %d", e.Line, e.Offset+1)
}

// LineReader yields the lines of an input one at a time.
type LineReader struct {
	br  *bufio.Reader
	n   int
	err error
}

// NewLineReader wraps r. CR, LF and CRLF are all read as a single LF.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		br: bufio.NewReader(transform.NewReader(r, Newlines())),
	}
}

// Next returns the next line, or io.EOF once the input is exhausted.
// A *DecodeError or a read error is sticky: every later call returns it too.
func (lr *LineReader) Next() (Line, error) {
	if lr.err != nil {
		return Line{}, lr.err
	}
	text, err := lr.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		lr.err = fmt.Errorf("read line %d: %w", lr.n+1, err)
		return Line{}, lr.err
	}
	if text == "" {
		lr.err = io.EOF
		return Line{}, io.EOF
	}

	lr.n++
	num, convErr := safecast.Conv[uint32](lr.n)
	if convErr != nil {
		lr.err = fmt.Errorf("line count overflow: %w", convErr)
		return Line{}, lr.err
	}
	if off := invalidOffset(text); off >= 0 {
		lr.err = &DecodeError{Line: num, Offset: off}
		return Line{}, lr.err
	}
	return Line{Num: num, Text: text}, nil
}

// ReadAll drains the reader; used by tests and small inputs.
func ReadAll(r io.Reader) ([]Line, error) {
	lr := NewLineReader(r)
	var out []Line
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, line)
	}
}

func invalidOffset(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
