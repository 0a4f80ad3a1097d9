package diag

import "fmt"

// Diagnostic records one finding at a position of the input.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Char     rune   // the offending character, 0 for line-level entries
	Line     uint32 // 1-based
	Col      uint32 // 1-based, in characters; 0 for line-level entries
	Message  string
}

// Position renders "l:001 c:004", the layout used by every text output.
func (d Diagnostic) Position() string {
	if d.Col == 0 {
		return fmt.Sprintf("l:%03d", d.Line)
	}
	return fmt.Sprintf("l:%03d c:%03d", d.Line, d.Col)
}

// IllegalChar builds the diagnostic for a character missing from the allow-list.
// name is its display name.
func IllegalChar(line, col uint32, char rune, name string) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     CharIllegal,
		Char:     char,
		Line:     line,
		Col:      col,
		Message:  name,
	}
}

// Suppressed builds the line-level entry standing for n diagnostics that
// were not reported individually.
func Suppressed(line uint32, n int) Diagnostic {
	return Diagnostic{
		Severity: SevInfo,
		Code:     CharSuppressed,
		Line:     line,
		Message:  fmt.Sprintf("... and %d other(s).", n),
	}
}
