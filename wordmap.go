package nuspell

import (
	"github.com/derekparker/trie"
)

// WordEntry is one entry stored under a headword: its flag set plus any
// morphological tags carried on the dic line (spec.md §3/§9 supplement).
type WordEntry struct {
	Flags         FlagSet
	Morphological []string
}

// WordMap is the multimap headword -> flag set described by spec.md §4.7.
// Storage of record is a plain Go map (guarantees the exact multimap and
// equal-range semantics the spec requires); headwords are additionally
// indexed into a github.com/derekparker/trie.Trie so a downstream
// suggestion/spellcheck consumer gets prefix lookups for free, the same
// value the teacher repo gets from keeping its Dictionary's pattern trie
// directly reachable.
type WordMap struct {
	entries  map[string][]*WordEntry
	index    *trie.Trie
	locale   *caseFolder
	encoding string // native encoding headwords are stored in; "" == UTF-8/wide
}

func newWordMap(encoding string, locale *caseFolder) *WordMap {
	return &WordMap{
		entries:  make(map[string][]*WordEntry),
		index:    trie.New(),
		locale:   locale,
		encoding: encoding,
	}
}

func (wm *WordMap) rawAppend(key string, e *WordEntry) {
	if _, ok := wm.entries[key]; !ok {
		wm.index.Add(key, key)
	}
	wm.entries[key] = append(wm.entries[key], e)
}

// hiddenHomonymEntry returns the entry under key that carries the
// reserved hidden-homonym flag, or nil if there is none.
func (wm *WordMap) hiddenHomonymEntry(key string) *WordEntry {
	for _, e := range wm.entries[key] {
		if e.Flags.Has(HiddenHomonymFlag) {
			return e
		}
	}
	return nil
}

// isWide reports whether headwords are already stored in Unicode text,
// i.e. no narrow->wide transcode is needed before classification.
func (wm *WordMap) isWide() bool {
	return wm.encoding == "" || normalizeEncoding(wm.encoding) == "UTF-8"
}

// Insert applies the C8 insertion algorithm from spec.md §4.7: classify
// casing of w, then either overwrite an existing hidden-homonym entry,
// insert plainly, or synthesize the upper-cased hidden-homonym entry.
// Storage stays keyed by w in its native on-disk encoding (spec.md §4.7,
// SPEC_FULL §2's word-map trie note); only classification and upper-casing run
// over the transcoded wide form, per spec.md §4.1.
func (wm *WordMap) Insert(w string, flags FlagSet, morph []string) {
	wide := wm.isWide()
	wideWord := transcodeToWide(w, wide, wm.encoding)
	casing := classifyCasing(wideWord, wm.locale)
	switch casing {
	case AllUpper:
		if hidden := wm.hiddenHomonymEntry(w); hidden != nil {
			hidden.Flags = flags
			hidden.Morphological = morph
			return
		}
		wm.rawAppend(w, &WordEntry{Flags: flags, Morphological: morph})
	case Title, Camel:
		wm.rawAppend(w, &WordEntry{Flags: flags, Morphological: morph})
		upperWide := upperString(wideWord, wm.locale)
		upper := upperWide
		if !wide {
			if native, err := transcodeFromUTF8(upperWide, wm.encoding); err == nil {
				upper = string(native)
			} else {
				upper = w
			}
		}
		if wm.hiddenHomonymEntry(upper) == nil {
			hiddenFlags := flags.Union(NewFlagSet(HiddenHomonymFlag))
			wm.rawAppend(upper, &WordEntry{Flags: hiddenFlags})
		}
	default:
		wm.rawAppend(w, &WordEntry{Flags: flags, Morphological: morph})
	}
}

// Find returns the entries stored under the exact headword w, in its
// native encoding.
func (wm *WordMap) Find(w string) []*WordEntry {
	return wm.entries[w]
}

// EqualRange is an alias for Find matching spec.md §4.7's naming; both
// return the same stable slice reference.
func (wm *WordMap) EqualRange(w string) []*WordEntry { return wm.Find(w) }

// FindUTF8 transcodes a UTF-8 query into the map's native encoding before
// looking it up (spec.md §4.7's "wide-string overloads transcode through
// UTF-8"). When the map is already wide (encoding == "" or UTF-8) this is
// equivalent to Find.
func (wm *WordMap) FindUTF8(w string) ([]*WordEntry, error) {
	if wm.isWide() {
		return wm.Find(w), nil
	}
	native, err := transcodeFromUTF8(w, wm.encoding)
	if err != nil {
		return nil, err
	}
	return wm.Find(string(native)), nil
}

// PrefixLookup returns every headword beginning with prefix, using the
// trie index rather than scanning the whole map.
func (wm *WordMap) PrefixLookup(prefix string) []string {
	return wm.index.PrefixSearch(prefix)
}

// Len returns the number of distinct headwords stored (not entry count).
func (wm *WordMap) Len() int { return len(wm.entries) }
