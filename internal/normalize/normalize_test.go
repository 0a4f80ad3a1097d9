package normalize

import (
	"strings"
	"testing"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"moc/internal/charset"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "clean line unchanged", in: "café\n", want: "café\n"},
		{name: "tab and nbsp", in: "a\tb\u00A0c\n", want: "a b c\n"},
		{name: "em dash and curly quotes", in: "“x”—y", want: `"x"-y`},
		{name: "en dash", in: "1–2", want: "1-2"},
		{name: "single quotes", in: "‘a’ ‚b‹c›", want: "'a' 'b'c'"},
		{name: "low double quote", in: "„a“", want: `"a"`},
		{name: "guillemets", in: "«oui»", want: `"oui"`},
		{name: "broken bar", in: "a¦b", want: "a|b"},
		{name: "soft hyphen removed", in: "co\u00ADop", want: "coop"},
		{name: "ligature letters", in: "Æsop æther Œuvre cœur", want: "AEsop aether OEuvre coeur"},
		{name: "vulgar fraction", in: "¼ ½ ¾", want: "1/4 1/2 3/4"},
		{name: "fraction slash", in: "1⁄8", want: "1/8"},
		{name: "bom removed", in: "\uFEFFtitle\n", want: "title\n"},
		{name: "fi ligature split by nfkc", in: "ﬁn ﬀ ﬃ", want: "fin ff ffi"},
		{name: "ellipsis and trademark", in: "wait… Acme™", want: "wait... AcmeTM"},
		{name: "superscripts", in: "m² x³ ¹", want: "m2 x3 1"},
		{name: "ordinal indicators", in: "1ª 2º", want: "1a 2o"},
		{name: "micro sign", in: "5µm", want: "5μm"},
		{name: "decomposed accent recomposed", in: "e\u0301", want: "é"},
		{name: "emoji untouched", in: "ok 😀\n", want: "ok 😀\n"},
		{name: "cjk untouched", in: "中文", want: "中文"},
		{name: "soft hyphen between base and mark", in: "e\u00AD\u0301", want: "é"},
		{name: "bom between base and mark", in: "a\uFEFF\u0308", want: "ä"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.in); got != tt.want {
				t.Fatalf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFractionGoesThroughFractionSlash(t *testing.T) {
	mid := norm.NFKC.String("¼")
	if mid != "1⁄4" {
		t.Fatalf("NFKC(¼) = %q, want 1⁄4", mid)
	}
	if got := Apply(mid, Rules); got != "1/4" {
		t.Fatalf("Apply(%q) = %q, want 1/4", mid, got)
	}
}

func TestLineIdempotent(t *testing.T) {
	var samples []string
	for _, r := range charset.Default.Runes() {
		samples = append(samples, string(r), "a"+string(r)+"\u0301", string(r)+"\u00AD\u0308")
	}
	samples = append(samples,
		"¨", "¯", "´", "¸", "˜", "x¨\u0301",
		"\u00AD\u00AD\u0301", "\uFEFF\uFEFF",
		"\t\u00A0\u00AD\uFEFF",
		"½⁄¼",
		"😀中文",
		strings.Repeat("–—‘’“”", 4),
	)
	for _, s := range samples {
		once := Line(s)
		if twice := Line(once); twice != once {
			t.Fatalf("not idempotent on %q: %q then %q", s, once, twice)
		}
	}
}

func TestCleanNFKCInputIsIdentity(t *testing.T) {
	var b strings.Builder
	for _, r := range charset.Default.Runes() {
		s := string(r)
		if r == '\n' || unicode.Is(unicode.Mn, r) || !norm.NFKC.IsNormalString(s) {
			continue
		}
		if Apply(s, Rules) != s {
			continue // a rule source
		}
		b.WriteRune(r)
	}
	line := b.String() + "\n"
	if got := Line(line); got != line {
		t.Fatalf("Line changed clean input:\n in: %q\nout: %q", line, got)
	}
}

func TestRulesDoNotFeedEachOther(t *testing.T) {
	for i, rule := range Rules {
		if rule.From == "" {
			t.Fatalf("rule %d has empty source", i)
		}
		for j, other := range Rules {
			if strings.Contains(rule.To, other.From) {
				t.Fatalf("rule %d output %q contains source of rule %d", i, rule.To, j)
			}
		}
	}
}

func TestCheckRules(t *testing.T) {
	if err := CheckRules(Rules); err != nil {
		t.Fatalf("shipped table rejected: %v", err)
	}
	bad := []Rule{{From: "a", To: "b"}, {From: "", To: "x"}}
	if err := CheckRules(bad); err == nil {
		t.Fatal("CheckRules must reject an empty source")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustRules must panic on an empty source")
		}
	}()
	MustRules(bad)
}

func TestApplyRenormalizesAfterRules(t *testing.T) {
	// removing the BOM puts U+0301 right after 'e'
	if got := Apply("e\uFEFF\u0301", Rules); got != "\u00e9" {
		t.Fatalf("Apply = %q, want composed e acute", got)
	}
}

func TestApplyRespectsOrder(t *testing.T) {
	rules := []Rule{{From: "a", To: "b"}, {From: "b", To: "c"}}
	if got := Apply("ab", rules); got != "cc" {
		t.Fatalf("chained rules: got %q, want cc", got)
	}
	reversed := []Rule{rules[1], rules[0]}
	if got := Apply("ab", reversed); got != "bc" {
		t.Fatalf("reversed rules: got %q, want bc", got)
	}
}
