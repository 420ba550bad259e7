// Package dic is the syntax-level line parser for Hunspell .dic word-list
// files. Like aff, it stops at the syntax boundary: it locates the
// headword, the raw (not yet decoded) flag field, and any morphological
// text, but leaves flag-codec decoding and word-map insertion to the
// caller.
package dic

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shannonyu/nuspell/linescan"
)

// Entry is one parsed dic line.
type Entry struct {
	Headword   string
	FlagsToken string // "" if the line had no unescaped '/'
	HasFlags   bool
	Morph      []string
	Line       int
}

// Raw is the complete syntax-level parse of one .dic file.
type Raw struct {
	DeclaredCount int // from the first line; -1 if it was missing/invalid
	Entries       []Entry
}

// WarnKind tags the category of a syntax-level warning.
type WarnKind int

const (
	WarnGeneric WarnKind = iota
	WarnBadCount
	WarnEmptyHeadword
	WarnInvalidUTF8
)

// Warning is one non-fatal parse event.
type Warning struct {
	Kind WarnKind
	Line int
	Msg  string
}

// WarnFunc receives warnings as they occur, in line order.
type WarnFunc func(Warning)

// Parse reads a complete .dic stream per spec.md §4.9. encoding is the
// SET value declared in the companion .aff file (the word list shares its
// encoding, it does not declare its own); lines are checked against it for
// well-formed UTF-8 the same way aff.Parse checks its own lines. The only
// error Parse returns is an I/O failure from the reader.
func Parse(r io.Reader, encoding string, warn WarnFunc) (*Raw, error) {
	if warn == nil {
		warn = func(Warning) {}
	}
	lines, err := linescan.ReadAllLines(r)
	if err != nil {
		return nil, err
	}
	checkUTF8 := isUTF8Encoding(encoding)
	raw := &Raw{DeclaredCount: -1}
	first := true
	for _, ln := range lines {
		if checkUTF8 && !utf8.Valid(ln.Bytes) {
			warn(Warning{Kind: WarnInvalidUTF8, Line: ln.Number, Msg: "line is not valid UTF-8"})
		}
		text := string(ln.Bytes)
		if strings.TrimSpace(text) == "" {
			continue
		}
		if first {
			first = false
			n, ok := parseCount(strings.TrimSpace(text))
			if !ok {
				warn(Warning{Kind: WarnBadCount, Line: ln.Number, Msg: "first dic line is not a decimal count: " + text})
			} else {
				raw.DeclaredCount = n
			}
			continue
		}
		entry, ok := parseEntryLine(text, ln.Number)
		if !ok {
			warn(Warning{Kind: WarnEmptyHeadword, Line: ln.Number, Msg: "empty headword, line skipped"})
			continue
		}
		raw.Entries = append(raw.Entries, entry)
	}
	return raw, nil
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// parseEntryLine applies the headword/flag-field/morphology split rules
// from spec.md §4.9, steps 1-5.
func parseEntryLine(line string, lineNo int) (Entry, bool) {
	if idx, ok := findUnescapedSlash(line); ok {
		head := unescapeSlashes(line[:idx])
		rest := line[idx+1:]
		flagsToken, morph := splitFlagsAndMorph(rest)
		if head == "" {
			return Entry{}, false
		}
		return Entry{Headword: head, FlagsToken: flagsToken, HasFlags: true, Morph: morph, Line: lineNo}, true
	}
	if tab := strings.IndexByte(line, '\t'); tab >= 0 {
		head := unescapeSlashes(line[:tab])
		if head == "" {
			return Entry{}, false
		}
		morph := strings.Fields(line[tab+1:])
		return Entry{Headword: head, Morph: morph, Line: lineNo}, true
	}
	if idx := findMorphHeuristic(line); idx >= 0 {
		head := unescapeSlashes(strings.TrimRight(line[:idx], " "))
		if head == "" {
			return Entry{}, false
		}
		morph := strings.Fields(line[idx:])
		return Entry{Headword: head, Morph: morph, Line: lineNo}, true
	}
	head := unescapeSlashes(line)
	if head == "" {
		return Entry{}, false
	}
	return Entry{Headword: head, Line: lineNo}, true
}

// splitFlagsAndMorph splits the text after the headword's '/' into the
// flag token (up to the first whitespace) and any morphological fields
// after it.
func splitFlagsAndMorph(rest string) (flagsToken string, morph []string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// findUnescapedSlash returns the index of the first '/' not preceded by
// an odd number of backslashes.
func findUnescapedSlash(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '/' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i, true
		}
	}
	return -1, false
}

func unescapeSlashes(s string) string {
	return strings.ReplaceAll(s, `\/`, `/`)
}

// findMorphHeuristic finds the earliest whitespace run followed by a
// token shaped like a morphological tag ([a-z][a-z]:), per spec.md
// §4.9 step 4. Returns the index of that whitespace run's start, or -1.
func findMorphHeuristic(line string) int {
	i := 0
	for i < len(line) {
		if line[i] != ' ' {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == ' ' {
			j++
		}
		if isMorphTag(line[j:]) {
			return i
		}
		i = j
	}
	return -1
}

// isUTF8Encoding mirrors aff.isUTF8Encoding's synonym handling; duplicated
// rather than imported to keep dic free of any dependency on aff (see
// DESIGN.md).
func isUTF8Encoding(enc string) bool {
	u := strings.ToUpper(enc)
	return u == "UTF-8" || u == "UTF8"
}

func isMorphTag(s string) bool {
	if len(s) < 3 {
		return false
	}
	isLower := func(b byte) bool { return b >= 'a' && b <= 'z' }
	return isLower(s[0]) && isLower(s[1]) && s[2] == ':'
}
