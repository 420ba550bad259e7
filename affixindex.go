package nuspell

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// AffixIndex is a flag-keyed multimap of affix entries, preserving
// insertion order of entries sharing a flag (spec.md §4.6). It is backed
// by an emirpasic/gods linked hash map so that iteration over flags (for
// grouped, per-flag traversal) is deterministic in insertion order, the
// exact property a plain Go map does not give.
type AffixIndex struct {
	byFlag       *linkedhashmap.Map // Flag -> []*AffixEntry
	crossProduct map[Flag]bool
}

func newAffixIndex() *AffixIndex {
	return &AffixIndex{
		byFlag:       linkedhashmap.New(),
		crossProduct: make(map[Flag]bool),
	}
}

// Insert adds entry under its flag, enforcing the cross-product invariant:
// all entries sharing a flag must agree on CrossProduct (spec.md §4.6).
// Returns ErrKindAffixCrossProductConflict (fatal) on violation.
func (ix *AffixIndex) Insert(entry *AffixEntry) error {
	if existing, ok := ix.crossProduct[entry.Flag]; ok {
		if existing != entry.CrossProduct {
			return fatalf(ErrKindAffixCrossProductConflict, "", 0,
				"flag %d used with conflicting cross-product values", entry.Flag)
		}
	} else {
		ix.crossProduct[entry.Flag] = entry.CrossProduct
	}
	v, found := ix.byFlag.Get(entry.Flag)
	if !found {
		ix.byFlag.Put(entry.Flag, []*AffixEntry{entry})
		return nil
	}
	entries := v.([]*AffixEntry)
	ix.byFlag.Put(entry.Flag, append(entries, entry))
	return nil
}

// Entries returns the entries registered under flag, in insertion order.
func (ix *AffixIndex) Entries(flag Flag) []*AffixEntry {
	v, found := ix.byFlag.Get(flag)
	if !found {
		return nil
	}
	return v.([]*AffixEntry)
}

// CrossProduct reports the cross-product discipline recorded for flag.
func (ix *AffixIndex) CrossProduct(flag Flag) (bool, bool) {
	v, ok := ix.crossProduct[flag]
	return v, ok
}

// Flags returns every flag with at least one entry, in the order the
// first entry for that flag was inserted.
func (ix *AffixIndex) Flags() []Flag {
	keys := ix.byFlag.Keys()
	out := make([]Flag, len(keys))
	for i, k := range keys {
		out[i] = k.(Flag)
	}
	return out
}

// Len returns the number of distinct flags indexed.
func (ix *AffixIndex) Len() int { return ix.byFlag.Size() }
