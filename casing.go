package nuspell

import "unicode"

// Casing classifies the letter casing pattern of a word.
type Casing int

const (
	// AllLower: no letter is uppercase (or the word has no letters).
	AllLower Casing = iota
	// AllUpper: every letter is uppercase, and there is more than one.
	AllUpper
	// Title: the first letter is uppercase, the rest are lowercase.
	Title
	// Camel: the first letter is lowercase and at least one later
	// letter is uppercase.
	Camel
	// Mixed: the first letter is uppercase, at least one later letter is
	// uppercase and at least one letter is lowercase.
	Mixed
)

func (c Casing) String() string {
	switch c {
	case AllLower:
		return "AllLower"
	case AllUpper:
		return "AllUpper"
	case Title:
		return "Title"
	case Camel:
		return "Camel"
	case Mixed:
		return "Mixed"
	}
	return "Unknown"
}

// classifyCasing classifies the casing of word following Unicode default
// case folding. A non-nil locale (installed via WithLocale) decides which
// letters count as uppercase; with a nil locale the classification uses
// the locale-neutral unicode package, matching how the rest of the loader
// treats §5's "neutral C/POSIX locale" guidance.
func classifyCasing(word string, locale *caseFolder) Casing {
	runes := []rune(word)
	nLetters, nUpper := 0, 0
	firstUpper := false
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		nLetters++
		upper := isUpper(r, locale)
		if upper {
			nUpper++
		}
		if nLetters == 1 {
			firstUpper = upper
		}
	}
	switch {
	case nLetters == 0:
		return AllLower
	case nUpper == nLetters:
		if nLetters > 1 {
			return AllUpper
		}
		return Title
	case nUpper == 0:
		return AllLower
	case firstUpper && nUpper == 1:
		return Title
	case !firstUpper:
		return Camel
	default:
		return Mixed
	}
}

// caseFolder overrides default Unicode case folding for a specific
// locale. A nil *caseFolder means "use unicode.ToUpper/ToLower as-is."
type caseFolder struct {
	upper func(rune) rune
	lower func(rune) rune
}

func isUpper(r rune, locale *caseFolder) bool {
	if locale != nil {
		return locale.lower(r) != r && locale.upper(r) == r
	}
	return unicode.IsUpper(r)
}

// upperString upper-cases s per the given locale (or unicode default if
// locale is nil), matching Hunspell's "upper(w, locale)" used by the
// hidden-homonym rule (spec.md §4.7).
func upperString(s string, locale *caseFolder) string {
	if locale == nil {
		return toUpperDefault(s)
	}
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = locale.upper(r)
	}
	return string(runes)
}

func toUpperDefault(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return string(runes)
}
