package charset

import (
	"reflect"
	"testing"
)

func TestDefaultSetSize(t *testing.T) {
	// 95 ASCII + 96 Latin-1 + 27 cp1252 extras + 5 ligatures + 7 NFKC marks + TAB + LF + BOM
	if got, want := Default.Len(), 233; got != want {
		t.Fatalf("Default.Len() = %d, want %d", got, want)
	}
}

func TestDefaultContains(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "ascii letter", r: 'a', want: true},
		{name: "space", r: ' ', want: true},
		{name: "tilde", r: '~', want: true},
		{name: "tab", r: '\t', want: true},
		{name: "line feed", r: '\n', want: true},
		{name: "carriage return", r: '\r', want: false},
		{name: "delete", r: 0x7F, want: false},
		{name: "c1 control", r: 0x85, want: false},
		{name: "nbsp", r: 0xA0, want: true},
		{name: "soft hyphen", r: 0xAD, want: true},
		{name: "e acute", r: 'é', want: true},
		{name: "y diaeresis", r: 'ÿ', want: true},
		{name: "oe ligature", r: 'œ', want: true},
		{name: "euro", r: '€', want: true},
		{name: "fi ligature", r: 'ﬁ', want: true},
		{name: "st ligature", r: 0xFB05, want: false},
		{name: "combining acute", r: 0x0301, want: true},
		{name: "combining grave", r: 0x0300, want: false},
		{name: "micro sign", r: 'µ', want: true},
		{name: "greek mu", r: 'μ', want: true},
		{name: "fraction slash", r: '⁄', want: true},
		{name: "bom", r: 0xFEFF, want: true},
		{name: "emoji", r: '😀', want: false},
		{name: "cjk", r: '中', want: false},
		{name: "horizontal ellipsis", r: '…', want: true},
		{name: "two dot leader", r: '‥', want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Default.Contains(tt.r); got != tt.want {
				t.Fatalf("Contains(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestCheckLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Finding
	}{
		{name: "empty", line: "", want: nil},
		{name: "clean", line: "café\n", want: nil},
		{name: "line break only", line: "\n", want: nil},
		{
			name: "emoji counted in runes",
			line: "é😀x\n",
			want: []Finding{{Char: '😀', Col: 2}},
		},
		{
			name: "collects every occurrence",
			line: "中a中\r",
			want: []Finding{{Char: '中', Col: 1}, {Char: '中', Col: 3}, {Char: '\r', Col: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckLine(tt.line, Default)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CheckLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCheckLineFlagsIffNotAllowed(t *testing.T) {
	for r := rune(0); r < 0x3000; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		got := CheckLine(string(r), Default)
		flagged := len(got) == 1
		if flagged == Default.Contains(r) {
			t.Fatalf("rune %U: flagged=%v contains=%v", r, flagged, Default.Contains(r))
		}
	}
}

func TestBuildRejectsInvertedSpan(t *testing.T) {
	if _, err := Build([]Span{{Lo: 'z', Hi: 'a'}}); err == nil {
		t.Fatal("expected error for inverted span")
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Contains('a') || s.Len() != 0 || s.Runes() != nil {
		t.Fatal("nil set must be empty")
	}
	if got := CheckLine("ab", s); len(got) != 2 {
		t.Fatalf("nil set flags everything, got %+v", got)
	}
}

func TestRunesSorted(t *testing.T) {
	s := MustBuild([]Span{one('c'), {Lo: 'a', Hi: 'b'}})
	if got := string(s.Runes()); got != "abc" {
		t.Fatalf("Runes() = %q", got)
	}
}
