package nuspell

// CompoundCheckPattern is one CHECKCOMPOUNDPATTERN entry (spec.md §4.3).
type CompoundCheckPattern struct {
	FirstWordEnd    string
	FirstWordFlag   Flag
	SecondWordBegin string
	SecondWordFlag  Flag
	Replacement     string
}

// CompoundRule is a compiled COMPOUNDRULE pattern: a sequence of flags,
// where the meta-characters '?' and '*' are stored as their own literal
// 16-bit code units, per spec.md §4.8.
type CompoundRule []Flag

// CompoundSyllable holds the COMPOUNDSYLLABLE fields: a maximum syllable
// count and the vowel character set used to count them.
type CompoundSyllable struct {
	Max    int16
	Vowels string
}

// PhoneRule is one PHONE (phonetic transcription) rewrite rule.
type PhoneRule struct {
	Pattern     string
	Replacement string
}

// AffixData is the immutable snapshot Load produces (spec.md §6). Nothing
// in it is mutated after Load returns; it is safe to share across
// concurrent spellcheck workers.
type AffixData struct {
	// Core scalars (spec.md §3/§4.8).
	FlagMode FlagMode
	Encoding string
	Language string
	Wide     bool // true when Encoding resolved to UTF-8 (see DESIGN.md)

	// Scalar strings (first occurrence wins).
	Ignore    string
	Key       string
	Try       string
	WordChars string

	// Boolean options.
	ComplexPrefixes      bool
	OnlyMaxDiff          bool
	NoSplitSugs          bool
	SugsWithDots         bool
	ForbidWarn           bool
	CompoundMoreSuffixes bool
	CheckCompoundDup     bool
	CheckCompoundRep     bool
	CheckCompoundCase    bool
	CheckCompoundTriple  bool
	SimplifiedTriple     bool
	FullStrip            bool
	CheckSharps          bool

	// Short integer options.
	MaxCpdSugs      int16
	MaxNgramSugs    int16
	MaxDiff         int16
	CompoundMin     int16
	CompoundWordMax int16

	// Flag-value options.
	NoSuggestFlag      Flag
	WarnFlag           Flag
	CompoundFlag       Flag
	CompoundBeginFlag  Flag
	CompoundLastFlag   Flag
	CompoundMiddleFlag Flag
	CompoundRootFlag   Flag
	OnlyInCompoundFlag Flag
	CompoundPermitFlag Flag
	CompoundForbidFlag Flag
	ForceUCaseFlag     Flag
	CircumfixFlag      Flag
	ForbiddenWordFlag  Flag
	KeepCaseFlag       Flag
	NeedAffixFlag      Flag
	SubstandardFlag    Flag

	// Tables.
	Replacer       *SubstringReplacer
	IconvReplacer  *SubstringReplacer
	OconvReplacer  *SubstringReplacer
	PhoneRules     []PhoneRule
	MapGroups      []string
	Breaks         *BreakTable
	Affixes        *AffixIndex
	CompoundRules  []CompoundRule
	CompoundChecks []CompoundCheckPattern
	CompoundSyll   CompoundSyllable
	SyllableNum    FlagSet
	IgnoreChars    FlagSet // code points of IGNORE (narrow input transcoded first), per SPEC_FULL §3
	Aliases        AliasTables
	Words          *WordMap
}

func newAffixData() *AffixData {
	return &AffixData{
		CompoundMin: 3, // original nuspell default, see DESIGN.md
		Breaks:      newBreakTable(DefaultBreaks),
		Affixes:     newAffixIndex(),
	}
}
