package charset

// Finding is one character of a line that is not in the allow-list.
type Finding struct {
	Char rune
	Col  uint32 // 1-based, counted in runes
}

// CheckLine scans line once and returns every rune missing from allow,
// in column order. A nil result means the line is clean.
func CheckLine(line string, allow *Set) []Finding {
	var out []Finding
	var col uint32
	for _, r := range line {
		col++
		if !allow.Contains(r) {
			out = append(out, Finding{Char: r, Col: col})
		}
	}
	return out
}
