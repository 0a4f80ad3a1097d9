package charset

// Span is an inclusive rune interval of the allow-list table.
type Span struct {
	Lo, Hi rune
}

func one(r rune) Span { return Span{Lo: r, Hi: r} }

// DefaultTable lists every character accepted in a submitted OCR result.
// Windows-1252 repertoire, a few ligatures, the marks produced by NFKC on
// that repertoire, and the byte order mark.
var DefaultTable = []Span{
	one('\t'), // CHARACTER TABULATION
	one('\n'), // LINE FEED, the only line break left after source normalization

	{Lo: 0x0020, Hi: 0x007E}, // printable ASCII
	{Lo: 0x00A0, Hi: 0x00FF}, // Latin-1 Supplement, NBSP and SOFT HYPHEN included

	one('Œ'), one('œ'),
	one('Š'), one('š'),
	one('Ÿ'),
	one('Ž'), one('ž'),
	one('ƒ'),
	one('ˆ'), one('˜'),
	one('–'), one('—'),
	one('‘'), one('’'), one('‚'),
	one('“'), one('”'), one('„'),
	one('†'), one('‡'), one('•'), one('…'), one('‰'),
	one('‹'), one('›'),
	one('€'), one('™'),

	{Lo: 0xFB00, Hi: 0xFB04}, // ﬀ ﬁ ﬂ ﬃ ﬄ

	// появляются после NFKC
	one(0x0301), // COMBINING ACUTE ACCENT
	one(0x0303), // COMBINING TILDE
	one(0x0304), // COMBINING MACRON
	one(0x0308), // COMBINING DIAERESIS
	one(0x0327), // COMBINING CEDILLA
	one(0x03BC), // GREEK SMALL LETTER MU
	one(0x2044), // FRACTION SLASH

	one(0xFEFF), // ZERO WIDTH NO-BREAK SPACE
}
