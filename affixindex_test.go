package nuspell

import "testing"

func mustEntry(t *testing.T, kind AffixKind, flag Flag, cross bool) *AffixEntry {
	e, err := newAffixEntry(kind, flag, cross, "", "s", ".", FlagSet{}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestAffixIndexInsertAndEntries(t *testing.T) {
	ix := newAffixIndex()
	e1 := mustEntry(t, Suffix, Flag('A'), true)
	e2 := mustEntry(t, Suffix, Flag('A'), true)
	if err := ix.Insert(e1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ix.Insert(e2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := ix.Entries(Flag('A'))
	if len(entries) != 2 || entries[0] != e1 || entries[1] != e2 {
		t.Fatalf("expected insertion order preserved, got %v", entries)
	}
}

func TestAffixIndexCrossProductConflict(t *testing.T) {
	ix := newAffixIndex()
	e1 := mustEntry(t, Suffix, Flag('A'), true)
	e2 := mustEntry(t, Suffix, Flag('A'), false)
	if err := ix.Insert(e1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ix.Insert(e2)
	if err == nil {
		t.Fatalf("expected a cross-product conflict error")
	}
	le, ok := err.(*LoaderError)
	if !ok || le.Kind != ErrKindAffixCrossProductConflict {
		t.Fatalf("expected ErrKindAffixCrossProductConflict, got %v", err)
	}
}

func TestAffixIndexFlagsOrder(t *testing.T) {
	ix := newAffixIndex()
	_ = ix.Insert(mustEntry(t, Suffix, Flag('B'), true))
	_ = ix.Insert(mustEntry(t, Suffix, Flag('A'), true))
	flags := ix.Flags()
	if len(flags) != 2 || flags[0] != Flag('B') || flags[1] != Flag('A') {
		t.Fatalf("expected insertion order, got %v", flags)
	}
}
