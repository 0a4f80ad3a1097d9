package diag

import (
	"math"
	"sort"
)

// Bag is a bounded collection of diagnostics.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag holding at most limit diagnostics; limit <= 0 means unbounded.
func NewBag(limit int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, min(max(limit, 0), 64)),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped returns how many diagnostics were refused because the bag was full.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort сортирует диагностики по: line, col, severity (desc), code (asc)
// Line-level entries (Col 0) go after the characters of their line.
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if ci, cj := sortCol(di.Col), sortCol(dj.Col); ci != cj {
			return ci < cj
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

func sortCol(col uint32) uint32 {
	if col == 0 {
		return math.MaxUint32
	}
	return col
}
