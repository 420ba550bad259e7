// Package linescan is the shared byte-oriented line reader used by both the
// aff and dic syntax-level parsers. It strips a leading UTF-8 BOM, accepts
// both LF and CRLF terminated lines, and hands back raw bytes: decoding
// those bytes into text is the caller's job, since the declared encoding
// (Hunspell's SET command) is only known once the caller has already
// scanned past earlier lines.
package linescan

import (
	"bufio"
	"bytes"
	"io"
)

const bom = "\xef\xbb\xbf"

// Line is one physical line, 1-based, with its CRLF/LF terminator removed.
type Line struct {
	Number int
	Bytes  []byte
}

// Scanner yields physical lines from a reader, the same bufio.Scanner
// idiom the teacher's texpatterns.PatternReader uses over a text stream,
// generalized here to track line numbers and strip a BOM on the first
// line only.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
	err     error
	strip   bool
}

// New wraps r in a Scanner. A leading BOM, if present, is stripped from the
// very first line.
func New(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Scanner{scanner: s, strip: true}
}

// Scan advances to the next line, returning false at EOF or on error; check
// Err after Scan returns false.
func (s *Scanner) Scan() (Line, bool) {
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return Line{}, false
	}
	s.line++
	b := s.scanner.Bytes()
	if s.strip {
		s.strip = false
		b = bytes.TrimPrefix(b, []byte(bom))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Line{Number: s.line, Bytes: out}, true
}

// Err returns the first non-EOF error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// ReadAllLines drains r into a slice of Lines; used by callers (such as
// tests) that do not need streaming behavior.
func ReadAllLines(r io.Reader) ([]Line, error) {
	sc := New(r)
	var out []Line
	for {
		ln, ok := sc.Scan()
		if !ok {
			break
		}
		out = append(out, ln)
	}
	return out, sc.Err()
}
