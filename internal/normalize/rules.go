package normalize

import "fmt"

// Rule is a literal substitution applied after NFKC.
type Rule struct {
	From string
	To   string
}

// Rules is applied in order. Every To is ASCII or empty, so no rule can
// produce the From of another one.
//
// Characters folded by NFKC itself are not listed: ª ² ³ ¹ º become letters
// and digits, ¨ ¯ ´ ¸ ˜ become SPACE plus a combining mark, µ becomes μ,
// … becomes "...", ™ becomes "TM", ﬀ..ﬄ are split, and ¼ ½ ¾ expand to
// digit, FRACTION SLASH, digit, which the FRACTION SLASH rule then turns
// into an ASCII slash.
var Rules = MustRules([]Rule{
	// blanks
	{From: "\u0009", To: " "},
	{From: "\u00A0", To: " "},

	{From: "¦", To: "|"},
	{From: "«", To: `"`},
	{From: "\u00AD", To: ""},
	{From: "»", To: `"`},

	{From: "Æ", To: "AE"},
	{From: "æ", To: "ae"},
	{From: "Œ", To: "OE"},
	{From: "œ", To: "oe"},

	// en dash, em dash
	{From: "–", To: "-"},
	{From: "—", To: "-"},

	{From: "‘", To: "'"},
	{From: "’", To: "'"},
	{From: "‚", To: "'"},
	{From: "“", To: `"`},
	{From: "”", To: `"`},
	{From: "„", To: `"`},
	{From: "‹", To: "'"},
	{From: "›", To: "'"},

	// Ligatures ﬀ..ﬄ are left to NFKC. FRACTION SLASH must come after it.
	{From: "⁄", To: "/"},
	{From: "\uFEFF", To: ""},
})

// CheckRules rejects a table Apply cannot run: a rule with an empty From
// would match between every pair of characters.
func CheckRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.From == "" {
			return fmt.Errorf("normalize: rule %d has an empty source (to %q)", i, rule.To)
		}
	}
	return nil
}

// MustRules is CheckRules for package-level tables; it panics on a bad table.
func MustRules(rules []Rule) []Rule {
	if err := CheckRules(rules); err != nil {
		panic(err)
	}
	return rules
}
