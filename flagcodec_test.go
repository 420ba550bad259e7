package nuspell

import "testing"

func collectDiags() (DiagnosticSink, *[]Diagnostic) {
	var got []Diagnostic
	return DiagnosticSinkFunc(func(d Diagnostic) { got = append(got, d) }), &got
}

func TestDecodeFlagsSingleChar(t *testing.T) {
	sink, diags := collectDiags()
	s := decodeFlags("ABC", SingleChar, "", sink, "t", 1)
	if s.Len() != 3 {
		t.Fatalf("expected 3 flags, got %d", s.Len())
	}
	if len(*diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *diags)
	}
}

func TestDecodeFlagsDoubleCharOddLength(t *testing.T) {
	sink, _ := collectDiags()
	s := decodeFlags("ABC", DoubleChar, "", sink, "t", 1)
	want := []Flag{Flag('A')<<8 | Flag('B'), Flag('C')}
	got := s.Slice()
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDecodeFlagsDecimalList(t *testing.T) {
	sink, diags := collectDiags()
	s := decodeFlags("10,20,30", DecimalNumber, "", sink, "t", 1)
	if s.Len() != 3 || !s.Has(10) || !s.Has(20) || !s.Has(30) {
		t.Fatalf("unexpected set: %v", s.Slice())
	}
	if len(*diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *diags)
	}
}

func TestDecodeFlagsDecimalTrailingComma(t *testing.T) {
	sink, diags := collectDiags()
	decodeFlags("10,", DecimalNumber, "", sink, "t", 1)
	if len(*diags) == 0 {
		t.Fatalf("expected a warning for trailing comma")
	}
}

func TestDecodeFlagsDecimalOutOfRange(t *testing.T) {
	sink, diags := collectDiags()
	s := decodeFlags("70000", DecimalNumber, "", sink, "t", 1)
	if s.Len() != 0 {
		t.Fatalf("expected the out-of-range value to be skipped")
	}
	if len(*diags) != 1 || (*diags)[0].Kind != ErrKindFlagSyntax {
		t.Fatalf("expected one FlagSyntax warning, got %v", *diags)
	}
}

func TestDecodeFlagsUtf8BmpSkipsNonBmp(t *testing.T) {
	sink, diags := collectDiags()
	s := decodeFlags("a\U0001F600b", Utf8Bmp, "UTF-8", sink, "t", 1)
	if s.Len() != 2 {
		t.Fatalf("expected 2 flags (emoji skipped), got %d", s.Len())
	}
	found := false
	for _, d := range *diags {
		if d.Kind == ErrKindNonBmpFlag {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a NonBmpFlag warning, got %v", *diags)
	}
}

func TestAddFlagCheckedRejectsHiddenHomonym(t *testing.T) {
	sink, diags := collectDiags()
	var s FlagSet
	addFlagChecked(&s, HiddenHomonymFlag, sink, "t", 1)
	if s.Len() != 0 {
		t.Fatalf("expected the reserved flag to be rejected, not added")
	}
	if len(*diags) != 1 || (*diags)[0].Kind != ErrKindFlagSyntax {
		t.Fatalf("expected a FlagSyntax warning, got %v", *diags)
	}
}

func TestDecodeFlagsOrAliasResolvesIndex(t *testing.T) {
	sink, _ := collectDiags()
	af := []FlagSet{NewFlagSet(1, 2), NewFlagSet(3)}
	s := decodeFlagsOrAlias("2", SingleChar, "", af, sink, "t", 1)
	if !s.Equal(NewFlagSet(3)) {
		t.Fatalf("expected alias 2 to resolve to {3}, got %v", s.Slice())
	}
}

func TestDecodeFlagsOrAliasOutOfRange(t *testing.T) {
	sink, diags := collectDiags()
	af := []FlagSet{NewFlagSet(1)}
	s := decodeFlagsOrAlias("5", SingleChar, "", af, sink, "t", 1)
	if s.Len() != 0 {
		t.Fatalf("expected empty set on out-of-range alias")
	}
	if len(*diags) != 1 || (*diags)[0].Kind != ErrKindAliasIndex {
		t.Fatalf("expected an AliasIndex warning, got %v", *diags)
	}
}

func TestDecodeFlagsOrAliasPassthroughWithoutTable(t *testing.T) {
	sink, _ := collectDiags()
	s := decodeFlagsOrAlias("AB", SingleChar, "", nil, sink, "t", 1)
	if s.Len() != 2 {
		t.Fatalf("expected literal decode when no AF table is present")
	}
}
