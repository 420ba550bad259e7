package nuspell

import "testing"

func TestClassifyCasing(t *testing.T) {
	cases := map[string]Casing{
		"cat":     AllLower,
		"CAT":     AllUpper,
		"Cat":     Title,
		"CaT":     Mixed,
		"caT":     Camel,
		"123":     AllLower,
		"I":       Title,
	}
	for word, want := range cases {
		if got := classifyCasing(word, nil); got != want {
			t.Errorf("classifyCasing(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestUpperStringDefault(t *testing.T) {
	if got := upperString("café", nil); got != "CAFÉ" {
		t.Fatalf("got %q, want %q", got, "CAFÉ")
	}
}

func TestCasingString(t *testing.T) {
	if AllUpper.String() != "AllUpper" {
		t.Fatalf("got %q", AllUpper.String())
	}
}
