package nuspell

import (
	"regexp"
	"unicode/utf8"
)

// AffixKind distinguishes a prefix from a suffix entry.
type AffixKind int

const (
	Prefix AffixKind = iota
	Suffix
)

// AffixEntry is one prefix or suffix rule (spec.md §3/§4.5).
type AffixEntry struct {
	Flag          Flag
	Kind          AffixKind
	CrossProduct  bool
	Stripping     string
	Appending     string
	Continuation  FlagSet
	ConditionText string
	condition     *regexp.Regexp
	Morphological []string
	wide          bool // counting unit for Stripping/Appending: runes if true, bytes if false
}

// newAffixEntry builds an entry, canonicalizing "0" stripping to "" and an
// empty condition source to "." before anchoring and compiling the
// regex (spec.md §3/§4.5): prefixes anchor with ^, suffixes with $. wide
// selects the counting unit ToRoot/ToDerived use, per the build-time
// narrow/wide choice recorded on the owning AffixData (spec.md §3/§9).
func newAffixEntry(kind AffixKind, flag Flag, crossProduct bool, stripping, appending, condition string, continuation FlagSet, morph []string, wide bool) (*AffixEntry, error) {
	if stripping == "0" {
		stripping = ""
	}
	if condition == "" {
		condition = "."
	}
	var pattern string
	if kind == Prefix {
		pattern = "^(?:" + condition + ")"
	} else {
		pattern = "(?:" + condition + ")$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &AffixEntry{
		Flag:          flag,
		Kind:          kind,
		CrossProduct:  crossProduct,
		Stripping:     stripping,
		Appending:     appending,
		Continuation:  continuation,
		ConditionText: condition,
		condition:     re,
		Morphological: morph,
		wide:          wide,
	}, nil
}

// textUnits returns the length of s in the entry's counting unit (code
// points when wide, bytes when narrow).
func (a *AffixEntry) textUnits(s string) int {
	if a.wide {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

// dropUnits returns s with its first (fromStart) or last (!fromStart) n
// counting units removed.
func (a *AffixEntry) dropUnits(s string, n int, fromStart bool) string {
	if !a.wide {
		if fromStart {
			return s[n:]
		}
		return s[:len(s)-n]
	}
	runes := []rune(s)
	if fromStart {
		return string(runes[n:])
	}
	return string(runes[:len(runes)-n])
}

// CheckCondition reports whether the compiled, anchored condition matches
// word.
func (a *AffixEntry) CheckCondition(word string) bool {
	return a.condition.MatchString(word)
}

// ToRoot strips the affix in place, converting a derived word back to its
// root (spec.md §4.5).
func (a *AffixEntry) ToRoot(w *string) {
	*w = a.toRootCopy(*w)
}

// ToRootCopy returns to_root(w) without mutating w.
func (a *AffixEntry) ToRootCopy(w string) string {
	return a.toRootCopy(w)
}

func (a *AffixEntry) toRootCopy(w string) string {
	n := a.textUnits(a.Appending)
	if a.textUnits(w) < n {
		return w
	}
	if a.Kind == Prefix {
		return a.Stripping + a.dropUnits(w, n, true)
	}
	return a.dropUnits(w, n, false) + a.Stripping
}

// ToDerived appends the affix in place, converting a root to a derived
// word (spec.md §4.5).
func (a *AffixEntry) ToDerived(w *string) {
	*w = a.toDerivedCopy(*w)
}

// ToDerivedCopy returns to_derived(w) without mutating w.
func (a *AffixEntry) ToDerivedCopy(w string) string {
	return a.toDerivedCopy(w)
}

func (a *AffixEntry) toDerivedCopy(w string) string {
	n := a.textUnits(a.Stripping)
	if a.textUnits(w) < n {
		return w
	}
	if a.Kind == Prefix {
		return a.Appending + a.dropUnits(w, n, true)
	}
	return a.dropUnits(w, n, false) + a.Appending
}
