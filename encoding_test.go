package nuspell

import "testing"

func TestNormalizeEncoding(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"utf8":       "UTF-8",
		"UTF8":       "UTF-8",
		"iso8859-1":  "ISO8859-1",
		"ISO-8859-1": "ISO-8859-1",
	}
	for in, want := range cases {
		if got := normalizeEncoding(in); got != want {
			t.Errorf("normalizeEncoding(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateUtf8(t *testing.T) {
	if !validateUtf8([]byte("hello")) {
		t.Fatalf("expected plain ASCII to validate")
	}
	if validateUtf8([]byte{0xff, 0xfe}) {
		t.Fatalf("expected ill-formed bytes to fail validation")
	}
}

func TestStripBOM(t *testing.T) {
	withBOM := append([]byte{0xef, 0xbb, 0xbf}, []byte("SET UTF-8")...)
	got := stripBOM(withBOM)
	if string(got) != "SET UTF-8" {
		t.Fatalf("got %q", got)
	}
	noBOM := []byte("SET UTF-8")
	if got := stripBOM(noBOM); string(got) != "SET UTF-8" {
		t.Fatalf("expected no-op without a BOM, got %q", got)
	}
}

func TestResolveEncodingUTF8IsNop(t *testing.T) {
	enc, err := resolveEncoding("UTF-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc == nil {
		t.Fatalf("expected a non-nil encoding for UTF-8")
	}
}

func TestTranscodeToWide(t *testing.T) {
	if got := transcodeToWide("café", true, "UTF-8"); got != "café" {
		t.Fatalf("wide input should pass through unchanged, got %q", got)
	}
	narrow := string([]byte{'c', 'a', 'f', 0xe9}) // "café" in ISO-8859-1
	if got := transcodeToWide(narrow, false, "ISO-8859-1"); got != "café" {
		t.Fatalf("got %q, want %q", got, "café")
	}
}

func TestTranscodeRoundTripISO88591(t *testing.T) {
	utf8Str := "café"
	narrow, err := transcodeFromUTF8(utf8Str, "ISO-8859-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := transcodeToUTF8(narrow, "ISO-8859-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != utf8Str {
		t.Fatalf("got %q, want %q", back, utf8Str)
	}
}
