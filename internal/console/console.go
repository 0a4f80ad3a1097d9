// Package console adapts text output to the encoding of the terminal or
// pipe it is written to.
package console

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto asks Resolve to read the encoding from the locale environment.
const Auto = "auto"

// Resolution is the outcome of choosing an output encoding.
type Resolution struct {
	Requested string // what was asked for, after locale lookup
	Name      string // canonical WHATWG name actually used
	Encoding  encoding.Encoding

	// Fallback is set when Requested is unknown and UTF-8 was used instead.
	Fallback bool
}

// IsUTF8 reports whether output needs no conversion.
func (r Resolution) IsUTF8() bool {
	return r.Encoding == nil || r.Encoding == unicode.UTF8
}

// Resolve picks the output encoding. requested is an encoding label
// ("utf-8", "latin1", "windows-1252", ...) or Auto; getenv is usually os.Getenv.
func Resolve(requested string, getenv func(string) string) Resolution {
	label := strings.TrimSpace(requested)
	if label == "" || strings.EqualFold(label, Auto) {
		label = localeCharset(getenv)
	}
	if label == "" {
		return Resolution{Requested: "utf-8", Name: "utf-8", Encoding: unicode.UTF8}
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return Resolution{Requested: label, Name: "utf-8", Encoding: unicode.UTF8, Fallback: true}
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(label)
	}
	return Resolution{Requested: label, Name: name, Encoding: enc}
}

// Writer wraps w so that text is encoded for the resolved encoding. Runes
// the encoding cannot represent are written as XML character references
// (&#233;). Close flushes buffered output; it does not close w.
func (r Resolution) Writer(w io.Writer) io.WriteCloser {
	if r.IsUTF8() {
		return nopCloser{w}
	}
	return transform.NewWriter(w, encoding.HTMLEscapeUnsupported(r.Encoding.NewEncoder()))
}

// localeCharset extracts the codeset of the first set locale variable,
// e.g. "ISO-8859-1" from "fr_FR.ISO-8859-1@euro". C and POSIX mean UTF-8.
func localeCharset(getenv func(string) string) string {
	if getenv == nil {
		return ""
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			return ""
		}
		dot := strings.IndexByte(v, '.')
		if dot < 0 {
			return ""
		}
		cs := v[dot+1:]
		if at := strings.IndexByte(cs, '@'); at >= 0 {
			cs = cs[:at]
		}
		return cs
	}
	return ""
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
