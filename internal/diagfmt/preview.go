package diagfmt

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// previewText makes a line printable on one terminal row: TAB becomes a
// single space and other invisible runes become '?', so caret columns computed
// by caretSpan line up with what is shown.
func previewText(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		b.WriteRune(previewRune(r))
	}
	return b.String()
}

func previewRune(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case unicode.IsControl(r), unicode.Is(unicode.Cf, r), runewidth.RuneWidth(r) == 0 && !unicode.Is(unicode.Mn, r):
		return '?'
	}
	return r
}

// caretSpan returns the display offset of column col (1-based, in runes) and
// the display width of the rune found there.
func caretSpan(line string, col uint32) (pad, width int) {
	var n uint32
	for _, r := range line {
		n++
		shown := previewRune(r)
		if n == col {
			return pad, max(runewidth.RuneWidth(shown), 1)
		}
		pad += runewidth.RuneWidth(shown)
	}
	// колонка за концом строки (перевод строки)
	return pad, 1
}
