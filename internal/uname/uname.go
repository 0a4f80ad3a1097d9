// Package uname gives Unicode display names for runes shown in diagnostics.
package uname

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Name returns the Unicode character name of r, for example
// "LATIN SMALL LETTER E WITH ACUTE". Runes without an assigned name
// (controls, private use, unassigned code points) are rendered as a quoted
// ASCII literal such as '\t' or '\U000f0000'.
func Name(r rune) string {
	name := runenames.Name(r)
	switch {
	case isUnifiedIdeograph(r) && (name == "" || strings.HasPrefix(name, "<")):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", r)
	case isHangulSyllable(r) && (name == "" || strings.HasPrefix(name, "<")):
		return hangulName(r)
	case name == "" || strings.HasPrefix(name, "<"):
		return Raw(r)
	}
	return name
}

// Raw is the fallback rendering used when a rune has no name.
func Raw(r rune) string {
	return strconv.QuoteRuneToASCII(r)
}

func isUnifiedIdeograph(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DBF, // Extension A
		r >= 0x4E00 && r <= 0x9FFF,
		r >= 0x20000 && r <= 0x2A6DF, // Extension B
		r >= 0x2A700 && r <= 0x2EBEF, // Extensions C..F
		r >= 0x30000 && r <= 0x323AF: // Extensions G, H
		return true
	}
	return false
}

// Hangul syllable names are derived algorithmically (Unicode §3.12).
const (
	hangulBase  = 0xAC00
	hangulLast  = 0xD7A3
	hangulVCnt  = 21
	hangulTCnt  = 28
	hangulNCnt  = hangulVCnt * hangulTCnt
	hangulNameP = "HANGUL SYLLABLE "
)

var (
	jamoL = []string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
	jamoV = []string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
	jamoT = []string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}
)

func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

func hangulName(r rune) string {
	s := int(r - hangulBase)
	l := s / hangulNCnt
	v := (s % hangulNCnt) / hangulTCnt
	t := s % hangulTCnt
	return hangulNameP + jamoL[l] + jamoV[v] + jamoT[t]
}
