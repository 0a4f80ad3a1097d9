package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Символы
	CharIllegal    Code = 1001
	CharSuppressed Code = 1002

	// Ошибки I/O
	IOOpenFailed Code = 4001
	IODecode     Code = 4002
	IOWrite      Code = 4003
	IORead       Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode:    "Unknown error",
	CharIllegal:    "Illegal character",
	CharSuppressed: "Further illegal characters not shown",
	IOOpenFailed:   "Cannot open file",
	IODecode:       "Invalid UTF-8 input",
	IOWrite:        "Cannot write output",
	IORead:         "Cannot read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CHR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
