package nuspell

import "testing"

func TestWordMapInsertLowercase(t *testing.T) {
	wm := newWordMap("", nil)
	wm.Insert("cat", NewFlagSet(1), nil)
	got := wm.Find("cat")
	if len(got) != 1 || !got[0].Flags.Equal(NewFlagSet(1)) {
		t.Fatalf("unexpected entries: %v", got)
	}
}

func TestWordMapInsertTitleSynthesizesHiddenHomonym(t *testing.T) {
	wm := newWordMap("", nil)
	wm.Insert("Paris", NewFlagSet(1), nil)
	plain := wm.Find("Paris")
	if len(plain) != 1 {
		t.Fatalf("expected the plain entry to be stored, got %v", plain)
	}
	hidden := wm.Find("PARIS")
	if len(hidden) != 1 || !hidden[0].Flags.Has(HiddenHomonymFlag) {
		t.Fatalf("expected a hidden-homonym entry under the upper-cased key, got %v", hidden)
	}
}

func TestWordMapInsertAllUpperOverwritesHidden(t *testing.T) {
	wm := newWordMap("", nil)
	wm.Insert("Nasa", NewFlagSet(1), nil)
	wm.Insert("NASA", NewFlagSet(2), nil)
	got := wm.Find("NASA")
	if len(got) != 1 {
		t.Fatalf("expected the hidden entry to be overwritten in place, got %v", got)
	}
	if !got[0].Flags.Equal(NewFlagSet(2)) {
		t.Fatalf("expected the overwritten flags to be {2}, got %v", got[0].Flags.Slice())
	}
	if got[0].Flags.Has(HiddenHomonymFlag) {
		t.Fatalf("expected the hidden-homonym flag to be replaced, not retained")
	}
}

func TestWordMapPrefixLookup(t *testing.T) {
	wm := newWordMap("", nil)
	wm.Insert("cat", NewFlagSet(1), nil)
	wm.Insert("car", NewFlagSet(1), nil)
	wm.Insert("dog", NewFlagSet(1), nil)
	got := wm.PrefixLookup("ca")
	if len(got) != 2 {
		t.Fatalf("expected 2 prefix matches, got %v", got)
	}
}

func TestWordMapInsertNarrowEncodingClassifiesViaTranscode(t *testing.T) {
	wm := newWordMap("ISO-8859-1", nil)
	// "Café" in ISO-8859-1: C a f 0xE9. Classified narrowly (without
	// transcoding first) the trailing 0xE9 byte is not valid UTF-8 on its
	// own and would not count as a letter, misclassifying the word and
	// skipping hidden-homonym synthesis.
	narrow := "Caf\xe9"
	wm.Insert(narrow, NewFlagSet(1), nil)
	plain := wm.Find(narrow)
	if len(plain) != 1 {
		t.Fatalf("expected the plain entry stored under its native-encoded key, got %v", plain)
	}
	hidden := wm.Find("CAF\xc9")
	if len(hidden) != 1 || !hidden[0].Flags.Has(HiddenHomonymFlag) {
		t.Fatalf("expected a hidden-homonym entry under the native-encoded upper-cased key, got %v", hidden)
	}
}

func TestWordMapLen(t *testing.T) {
	wm := newWordMap("", nil)
	wm.Insert("Word", NewFlagSet(1), nil) // Title case adds a second, hidden key
	if wm.Len() != 2 {
		t.Fatalf("expected 2 distinct headwords (plain + hidden), got %d", wm.Len())
	}
}
