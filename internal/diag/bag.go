package diag

import (
	"fmt"
	"sort"
)

// Bag is a bounded collection of diagnostics.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag holding at most max diagnostics; max <= 0 means unbounded.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends d unless the limit is reached. It reports whether d was kept.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped counts diagnostics rejected because the bag was full.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any diagnostic is SevError or worse.
func (b *Bag) HasErrors() bool {
	return b.count(SevError) > 0
}

// HasWarnings reports whether any diagnostic is SevWarning or worse.
func (b *Bag) HasWarnings() bool {
	return b.count(SevWarning) > 0
}

func (b *Bag) count(atLeast Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= atLeast {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the internal slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders by file, start, end, severity (desc) and code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics sharing Code and Primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := b.items[:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%d:%s", d.Code, d.Primary)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}
