package diag

import (
	"testing"

	"svast/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	for i := range 4 {
		r.Report(LexDroppedChar, SevInfo, source.Span{Start: uint32(i), End: uint32(i + 1)}, "dropped", nil)
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if bag.Dropped() != 2 {
		t.Fatalf("Dropped = %d, want 2", bag.Dropped())
	}
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info diagnostics must not count as warnings")
	}
}

func TestBagUnbounded(t *testing.T) {
	bag := NewBag(0)
	for range 100 {
		bag.Add(Diagnostic{Severity: SevWarning})
	}
	if bag.Len() != 100 || !bag.HasWarnings() {
		t.Fatalf("unbounded bag lost items: %d", bag.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Diagnostic{Code: SynMissingTerminator, Severity: SevWarning, Primary: source.Span{Start: 10, End: 10}})
	bag.Add(Diagnostic{Code: LexDroppedChar, Severity: SevInfo, Primary: source.Span{Start: 2, End: 3}})
	bag.Add(Diagnostic{Code: SynMissingTerminator, Severity: SevWarning, Primary: source.Span{Start: 10, End: 10}})
	bag.Add(Diagnostic{Code: IOLoadFileError, Severity: SevError, Primary: source.Span{Start: 10, End: 10}})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexDroppedChar {
		t.Fatalf("first item should be the earliest span, got %v", items[0].Code)
	}
	if items[1].Severity != SevError {
		t.Fatalf("errors sort before warnings at the same span, got %v", items[1].Severity)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexDroppedChar:       "LEX1001",
		SynMissingTerminator: "SYN2001",
		IOLoadFileError:      "IO4001",
		UnknownCode:          "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Fatalf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if SynNestingTooDeep.Title() == UnknownCode.Title() {
		t.Fatalf("missing description for SynNestingTooDeep")
	}
}
