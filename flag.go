package nuspell

import "sort"

// Flag is an unsigned 16-bit tag attached to words and affixes that
// licenses rule application. Zero is the sentinel "no flag."
type Flag uint16

// NoFlag is the sentinel value meaning "no flag."
const NoFlag Flag = 0

// HiddenHomonymFlag is the reserved sentinel marking a synthesized
// upper-cased word-map entry (see WordMap). A user-declared flag equal to
// this value is rejected at decode time with ErrKindFlagSyntax.
const HiddenHomonymFlag Flag = 0xFFFF

// FlagMode selects how flag sequences are textually encoded in the aff
// file. It drives decoding of every flag-bearing field.
type FlagMode int

const (
	// SingleChar: one byte per flag (the default when FLAG is absent).
	SingleChar FlagMode = iota
	// DoubleChar: two bytes per flag ("long" flags).
	DoubleChar
	// DecimalNumber: comma-separated decimal integers.
	DecimalNumber
	// Utf8Bmp: one UTF-8 encoded BMP code point per flag.
	Utf8Bmp
)

func (m FlagMode) String() string {
	switch m {
	case SingleChar:
		return "SingleChar"
	case DoubleChar:
		return "DoubleChar"
	case DecimalNumber:
		return "DecimalNumber"
	case Utf8Bmp:
		return "Utf8Bmp"
	}
	return "Unknown"
}

// FlagSet is a sorted, deduplicated multiset of flags. The zero value is
// an empty set ready to use.
type FlagSet struct {
	flags []Flag
}

// NewFlagSet builds a FlagSet from an arbitrary slice of flags.
func NewFlagSet(flags ...Flag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

// Len returns the number of distinct flags in the set.
func (s *FlagSet) Len() int { return len(s.flags) }

// Slice returns the sorted flags as a new slice; callers may not mutate
// the FlagSet's backing array through it.
func (s *FlagSet) Slice() []Flag {
	out := make([]Flag, len(s.flags))
	copy(out, s.flags)
	return out
}

func (s *FlagSet) search(f Flag) (int, bool) {
	i := sort.Search(len(s.flags), func(i int) bool { return s.flags[i] >= f })
	return i, i < len(s.flags) && s.flags[i] == f
}

// Has reports whether f is a member of the set.
func (s *FlagSet) Has(f Flag) bool {
	_, found := s.search(f)
	return found
}

// Add inserts f, preserving the sorted/deduplicated invariant. Returns
// true if f was newly added.
func (s *FlagSet) Add(f Flag) bool {
	i, found := s.search(f)
	if found {
		return false
	}
	s.flags = append(s.flags, NoFlag)
	copy(s.flags[i+1:], s.flags[i:])
	s.flags[i] = f
	return true
}

// Union returns a new FlagSet containing the members of both sets.
func (s FlagSet) Union(other FlagSet) FlagSet {
	out := NewFlagSet(s.flags...)
	for _, f := range other.flags {
		out.Add(f)
	}
	return out
}

// Equal reports whether two flag sets have exactly the same members.
func (s FlagSet) Equal(other FlagSet) bool {
	if len(s.flags) != len(other.flags) {
		return false
	}
	for i, f := range s.flags {
		if other.flags[i] != f {
			return false
		}
	}
	return true
}
