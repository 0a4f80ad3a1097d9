package diagfmt

import (
	"fmt"
	"strings"
)

// TextOpts configures TextReporter.
type TextOpts struct {
	Color   bool
	Preview bool // echo the offending line with a caret under each reported column
	// Hint appends the "please review" advice to a failing summary.
	Hint bool
	// CleanMessage prints a line for a clean summary too.
	CleanMessage bool
}

// Format selects the encoding of a machine-readable report.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat accepts "json" and "msgpack" (also "mp"), case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("unsupported report format %q (must be json or msgpack)", s)
}
