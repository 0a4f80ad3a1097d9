// Package normalize rewrites OCR result lines into the canonical form used
// for accuracy evaluation: NFKC followed by the substitutions of Rules.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Line normalizes one line of decoded text. It is idempotent:
// Line(Line(s)) == Line(s) for every valid UTF-8 s.
func Line(s string) string {
	return Apply(norm.NFKC.String(s), Rules)
}

// Apply runs rules, in order, over an NFKC-normal string. When any rule
// changed the string, NFKC is applied once more to the result, so the
// output is not plain substitution. rules must pass CheckRules.
func Apply(s string, rules []Rule) string {
	out := s
	for _, rule := range rules {
		out = strings.ReplaceAll(out, rule.From, rule.To)
	}
	if out == s {
		return out
	}
	// Removing SOFT HYPHEN or BOM can put a combining mark right after its
	// base; recompose so a second pass finds nothing to do.
	return norm.NFKC.String(out)
}
