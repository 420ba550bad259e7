package nuspell

import "strings"

// BreakTable partitions break patterns into three disjoint regions by
// caret/dollar anchoring of the source patterns (spec.md §4.4). Anchor
// characters are stripped from the stored patterns; empty patterns after
// stripping are dropped.
type BreakTable struct {
	Start  []string // from "^prefix"
	End    []string // from "suffix$"
	Middle []string // everything else
}

// DefaultBreaks is applied when no BREAK command appeared in the aff
// file (spec.md §4.8).
var DefaultBreaks = []string{"-", "^-", "-$"}

// newBreakTable partitions raw patterns, preserving source order within
// each region.
func newBreakTable(patterns []string) *BreakTable {
	t := &BreakTable{}
	for _, p := range patterns {
		switch {
		case strings.HasPrefix(p, "^") && strings.HasSuffix(p, "$") && len(p) > 1:
			// Anchored on both ends degrades to a middle pattern in
			// Hunspell's own grammar; keep both anchors stripped.
			inner := p[1 : len(p)-1]
			if inner != "" {
				t.Middle = append(t.Middle, inner)
			}
		case strings.HasPrefix(p, "^"):
			inner := p[1:]
			if inner != "" {
				t.Start = append(t.Start, inner)
			}
		case strings.HasSuffix(p, "$"):
			inner := p[:len(p)-1]
			if inner != "" {
				t.End = append(t.End, inner)
			}
		default:
			if p != "" {
				t.Middle = append(t.Middle, p)
			}
		}
	}
	return t
}

// SpellFunc reports whether word is a correctly spelled word on its own,
// for use by tryBreaks. The loader is agnostic to how spelling is
// actually decided; this hook lets a downstream spellcheck pipeline
// plug itself in without this package depending on it (spec.md §1).
type SpellFunc func(word string) bool

// TryBreaks implements spec.md §4.4's break-and-retry search: start
// patterns first, then end patterns, then middle patterns. For each middle
// pattern only its first (leftmost) occurrence after position 0 is tried;
// later occurrences are not tried even if that split fails.
func (t *BreakTable) TryBreaks(word string, spell SpellFunc) bool {
	for _, p := range t.Start {
		if strings.HasPrefix(word, p) {
			if spell(word[len(p):]) {
				return true
			}
		}
	}
	for _, p := range t.End {
		if strings.HasSuffix(word, p) {
			if spell(word[:len(word)-len(p)]) {
				return true
			}
		}
	}
	for _, p := range t.Middle {
		if len(p) == 0 {
			continue
		}
		limit := len(word) - len(p)
		for i := 1; i < limit; i++ {
			if word[i:i+len(p)] == p {
				if spell(word[:i]) && spell(word[i+len(p):]) {
					return true
				}
				break
			}
		}
	}
	return false
}
