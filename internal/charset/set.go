// Package charset holds the allow-list of characters accepted in OCR results
// and the legality check run over every input line.
package charset

import (
	"fmt"
	"sort"
)

// Set is an immutable set of runes.
type Set struct {
	members map[rune]struct{}
}

// Default is the allow-list shared by every front-end.
var Default = MustBuild(DefaultTable)

// Build materialises a table into a Set.
func Build(table []Span) (*Set, error) {
	size := 0
	for _, sp := range table {
		if sp.Hi < sp.Lo {
			return nil, fmt.Errorf("charset: inverted span U+%04X..U+%04X", sp.Lo, sp.Hi)
		}
		size += int(sp.Hi-sp.Lo) + 1
	}
	s := &Set{members: make(map[rune]struct{}, size)}
	for _, sp := range table {
		for r := sp.Lo; r <= sp.Hi; r++ {
			s.members[r] = struct{}{}
		}
	}
	return s, nil
}

// MustBuild is Build for package-level tables; it panics on a malformed table.
func MustBuild(table []Span) *Set {
	s, err := Build(table)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s *Set) Contains(r rune) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[r]
	return ok
}

// Len returns the number of runes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Runes returns the members in ascending order.
func (s *Set) Runes() []rune {
	if s == nil {
		return nil
	}
	out := make([]rune, 0, len(s.members))
	for r := range s.members {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
