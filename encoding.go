package nuspell

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when SET is absent from the aff file.
const DefaultEncoding = "ISO-8859-1"

// normalizeEncoding uppercases an encoding name and rewrites the synonym
// UTF8 to UTF-8, per spec.md §3. Empty stays empty ("unset").
func normalizeEncoding(s string) string {
	if s == "" {
		return ""
	}
	u := strings.ToUpper(s)
	if u == "UTF8" {
		return "UTF-8"
	}
	return u
}

// validateUtf8 rejects ill-formed UTF-8.
func validateUtf8(b []byte) bool {
	return utf8.Valid(b)
}

// resolveEncoding looks up a normalized encoding name through
// golang.org/x/text's IANA registry, the same way
// temporal-IPA-tipa/pkg/conversion/encoding.go resolves a concrete
// encoding.Encoding for transcoding.
func resolveEncoding(name string) (encoding.Encoding, error) {
	norm := normalizeEncoding(name)
	if norm == "" {
		norm = DefaultEncoding
	}
	if norm == "UTF-8" {
		return encoding.Nop, nil
	}
	enc, err := ianaindex.IANA.Encoding(norm)
	if err != nil || enc == nil {
		return nil, &LoaderError{Kind: ErrKindIO, Err: io.EOF}
	}
	return enc, nil
}

// transcodeToUTF8 decodes narrow bytes in the named encoding into a UTF-8
// string, via transform.NewReader wrapping the resolved encoding.Encoding
// (the exact shape of ToUTF8 in temporal-IPA-tipa/pkg/conversion/encoding.go).
func transcodeToUTF8(b []byte, name string) (string, error) {
	enc, err := resolveEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == encoding.Nop {
		return string(b), nil
	}
	r := transform.NewReader(bytes.NewReader(b), enc.NewDecoder())
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// transcodeFromUTF8 is the inverse of transcodeToUTF8.
func transcodeFromUTF8(s string, name string) ([]byte, error) {
	enc, err := resolveEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == encoding.Nop {
		return []byte(s), nil
	}
	r := transform.NewReader(strings.NewReader(s), enc.NewEncoder())
	return io.ReadAll(r)
}

// transcodeToWide returns s unchanged when wide is true; otherwise it
// decodes s's bytes out of enc into UTF-8, per spec.md §4.1 ("narrow-only
// files first transcode via the C1 encoding conversion before
// classification"). An unresolvable encoding or malformed byte sequence
// falls back to s unchanged rather than failing a caller with no
// diagnostic sink to report through.
func transcodeToWide(s string, wide bool, enc string) string {
	if wide {
		return s
	}
	out, err := transcodeToUTF8([]byte(s), enc)
	if err != nil {
		return s
	}
	return out
}

// stripBOM removes a single leading UTF-8 BOM (EF BB BF), if present.
func stripBOM(b []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if bytes.HasPrefix(b, []byte(bom)) {
		return b[len(bom):]
	}
	return b
}
