package nuspell

import "testing"

func TestAffixEntrySuffixToRootAndDerived(t *testing.T) {
	e, err := newAffixEntry(Suffix, Flag('A'), true, "y", "ied", "[^aeiou]y", FlagSet{}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.CheckCondition("cry") {
		t.Fatalf("expected condition to match 'cry'")
	}
	derived := e.ToDerivedCopy("cry")
	if derived != "cried" {
		t.Fatalf("got %q, want %q", derived, "cried")
	}
	root := e.ToRootCopy(derived)
	if root != "cry" {
		t.Fatalf("got %q, want %q", root, "cry")
	}
}

func TestAffixEntryPrefixToDerived(t *testing.T) {
	e, err := newAffixEntry(Prefix, Flag('B'), false, "0", "un", ".", FlagSet{}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Stripping != "" {
		t.Fatalf("expected '0' stripping to canonicalize to empty, got %q", e.Stripping)
	}
	if got := e.ToDerivedCopy("happy"); got != "unhappy" {
		t.Fatalf("got %q, want %q", got, "unhappy")
	}
	if got := e.ToRootCopy("unhappy"); got != "happy" {
		t.Fatalf("got %q, want %q", got, "happy")
	}
}

func TestAffixEntryWideCountsCodePoints(t *testing.T) {
	e, err := newAffixEntry(Suffix, Flag('C'), false, "", "é", ".", FlagSet{}, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	derived := e.ToDerivedCopy("caf")
	if derived != "café" {
		t.Fatalf("got %q, want %q", derived, "café")
	}
	root := e.ToRootCopy(derived)
	if root != "caf" {
		t.Fatalf("got %q, want %q", root, "caf")
	}
}

func TestAffixEntryShorterThanAppendingIsNoop(t *testing.T) {
	e, err := newAffixEntry(Suffix, Flag('D'), false, "", "ing", ".", FlagSet{}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.ToRootCopy("go"); got != "go" {
		t.Fatalf("expected no-op for a word shorter than the affix, got %q", got)
	}
}
